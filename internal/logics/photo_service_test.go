package logics_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/OuserDev/Connected-Car-BE/internal/logics"
	"github.com/OuserDev/Connected-Car-BE/internal/models"
	apperrors "github.com/OuserDev/Connected-Car-BE/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryStorage is an in-memory FileStorage for tests
type memoryStorage struct {
	files map[string][]byte
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{files: make(map[string][]byte)}
}

func (m *memoryStorage) Save(ctx context.Context, key string, data []byte, contentType string) error {
	m.files[key] = data
	return nil
}

func (m *memoryStorage) Load(ctx context.Context, key string) ([]byte, error) {
	return m.files[key], nil
}

func (m *memoryStorage) Delete(ctx context.Context, key string) error {
	delete(m.files, key)
	return nil
}

func (m *memoryStorage) URL(ctx context.Context, key string) (string, error) {
	return "", nil
}

func testLimits() logics.PhotoLimits {
	return logics.PhotoLimits{
		MaxPerUser:  12,
		MaxBytes:    2 * 1024 * 1024,
		MaxWidth:    1600,
		MinWidth:    320,
		JpegQuality: 85,
	}
}

func encodeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func encodeTransparentPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{R: 0, G: 0, B: 0, A: 0})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPhotoService_Upload(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("first photo becomes main and is re-encoded as jpeg", func(t *testing.T) {
		photoRepo := new(MockPhotoRepository)
		photoRepo.On("CountByUser", mock.Anything, uint(10)).Return(int64(0), nil)
		photoRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.CarPhoto")).Return(nil)

		storage := newMemoryStorage()
		service := logics.NewPhotoService(logger, photoRepo, storage, testLimits())

		photo, err := service.Upload(ctx, 10, encodeJPEG(t, 800, 600), "car.jpg")
		require.NoError(t, err)

		assert.True(t, photo.IsMain)
		assert.Equal(t, "image/jpeg", photo.ContentType)
		assert.Equal(t, 800, photo.Width)
		assert.Equal(t, 600, photo.Height)
		assert.Len(t, storage.files, 1)

		// 저장된 바이트가 유효한 JPEG인지 확인
		stored := storage.files[photo.StorageKey]
		_, format, err := image.Decode(bytes.NewReader(stored))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
	})

	t.Run("wide image is resized preserving aspect ratio", func(t *testing.T) {
		photoRepo := new(MockPhotoRepository)
		photoRepo.On("CountByUser", mock.Anything, uint(10)).Return(int64(0), nil)
		photoRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.CarPhoto")).Return(nil)

		service := logics.NewPhotoService(logger, photoRepo, newMemoryStorage(), testLimits())

		photo, err := service.Upload(ctx, 10, encodeJPEG(t, 3200, 1600), "wide.jpg")
		require.NoError(t, err)

		assert.Equal(t, 1600, photo.Width)
		assert.Equal(t, 800, photo.Height)
	})

	t.Run("transparent png is flattened onto white", func(t *testing.T) {
		photoRepo := new(MockPhotoRepository)
		photoRepo.On("CountByUser", mock.Anything, uint(10)).Return(int64(0), nil)
		photoRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.CarPhoto")).Return(nil)

		storage := newMemoryStorage()
		service := logics.NewPhotoService(logger, photoRepo, storage, testLimits())

		photo, err := service.Upload(ctx, 10, encodeTransparentPNG(t, 400, 300), "transparent.png")
		require.NoError(t, err)

		stored := storage.files[photo.StorageKey]
		decoded, _, err := image.Decode(bytes.NewReader(stored))
		require.NoError(t, err)

		// 투명 픽셀이 흰색으로 평탄화되었는지 확인
		r, g, b, _ := decoded.At(5, 5).RGBA()
		assert.Greater(t, r>>8, uint32(240))
		assert.Greater(t, g>>8, uint32(240))
		assert.Greater(t, b>>8, uint32(240))
	})

	t.Run("photo limit is enforced before any write", func(t *testing.T) {
		photoRepo := new(MockPhotoRepository)
		photoRepo.On("CountByUser", mock.Anything, uint(10)).Return(int64(12), nil)

		storage := newMemoryStorage()
		service := logics.NewPhotoService(logger, photoRepo, storage, testLimits())

		_, err := service.Upload(ctx, 10, encodeJPEG(t, 800, 600), "car.jpg")
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrInvalidArgument, appErr.Code())
		assert.Empty(t, storage.files)
		photoRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("undersized image is rejected", func(t *testing.T) {
		photoRepo := new(MockPhotoRepository)
		photoRepo.On("CountByUser", mock.Anything, uint(10)).Return(int64(0), nil)

		service := logics.NewPhotoService(logger, photoRepo, newMemoryStorage(), testLimits())

		_, err := service.Upload(ctx, 10, encodeJPEG(t, 200, 200), "tiny.jpg")
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrInvalidArgument, appErr.Code())
	})

	t.Run("non-image payload is rejected", func(t *testing.T) {
		photoRepo := new(MockPhotoRepository)
		photoRepo.On("CountByUser", mock.Anything, uint(10)).Return(int64(0), nil)

		service := logics.NewPhotoService(logger, photoRepo, newMemoryStorage(), testLimits())

		_, err := service.Upload(ctx, 10, []byte("not an image"), "note.txt")
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrInvalidArgument, appErr.Code())
	})

	t.Run("orphan file is cleaned up when metadata insert fails", func(t *testing.T) {
		photoRepo := new(MockPhotoRepository)
		photoRepo.On("CountByUser", mock.Anything, uint(10)).Return(int64(0), nil)
		photoRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.CarPhoto")).
			Return(apperrors.New("insert failed"))

		storage := newMemoryStorage()
		service := logics.NewPhotoService(logger, photoRepo, storage, testLimits())

		_, err := service.Upload(ctx, 10, encodeJPEG(t, 800, 600), "car.jpg")
		require.Error(t, err)
		assert.Empty(t, storage.files)
	})
}

func TestPhotoService_Delete(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("delete removes the stored file", func(t *testing.T) {
		photoRepo := new(MockPhotoRepository)
		photoRepo.On("FindByID", mock.Anything, uint(5)).
			Return(&models.CarPhoto{ID: 5, UserID: 10, StorageKey: "abc.jpg"}, nil)
		photoRepo.On("DeleteAndPromote", mock.Anything, uint(10), uint(5)).
			Return(&models.CarPhoto{ID: 5, UserID: 10, StorageKey: "abc.jpg"}, nil)

		storage := newMemoryStorage()
		storage.files["abc.jpg"] = []byte("data")

		service := logics.NewPhotoService(logger, photoRepo, storage, testLimits())

		require.NoError(t, service.Delete(ctx, 10, 5))
		assert.Empty(t, storage.files)
	})

	t.Run("other user's photo is forbidden", func(t *testing.T) {
		photoRepo := new(MockPhotoRepository)
		photoRepo.On("FindByID", mock.Anything, uint(5)).
			Return(&models.CarPhoto{ID: 5, UserID: 99, StorageKey: "abc.jpg"}, nil)

		service := logics.NewPhotoService(logger, photoRepo, newMemoryStorage(), testLimits())

		err := service.Delete(ctx, 10, 5)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code())
		photoRepo.AssertNotCalled(t, "DeleteAndPromote", mock.Anything, mock.Anything, mock.Anything)
	})
}
