package logics

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/OuserDev/Connected-Car-BE/internal/models"
	"github.com/OuserDev/Connected-Car-BE/internal/repositories"
	apperrors "github.com/OuserDev/Connected-Car-BE/pkg/errors"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PhotoLimits 사진 업로드 제약
type PhotoLimits struct {
	MaxPerUser  int
	MaxBytes    int64
	MaxWidth    int
	MinWidth    int
	JpegQuality int
}

// PhotoService 사진 업로드 파이프라인과 메타데이터 관리를 담당합니다.
// 업로드는 항상 재인코딩을 거칩니다: 디코드 → 흰 배경 평탄화 → 리사이즈 → JPEG 재인코딩.
// 원본 바이트를 그대로 저장하는 경로는 없습니다.
type PhotoService struct {
	logger    *zap.Logger
	photoRepo repositories.PhotoRepository
	storage   FileStorage
	limits    PhotoLimits
}

// NewPhotoService 사진 서비스 생성
func NewPhotoService(logger *zap.Logger, photoRepo repositories.PhotoRepository, storage FileStorage, limits PhotoLimits) *PhotoService {
	return &PhotoService{
		logger:    logger,
		photoRepo: photoRepo,
		storage:   storage,
		limits:    limits,
	}
}

// Upload은 원본 바이트를 검증/가공하여 저장합니다.
// 모든 검증은 어떤 쓰기도 일어나기 전에 수행합니다.
func (s *PhotoService) Upload(ctx context.Context, userID uint, data []byte, originalName string) (*models.CarPhoto, error) {
	// 1. 보유 장수 제한
	count, err := s.photoRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("사진 수 조회 실패", err)
	}
	if count >= int64(s.limits.MaxPerUser) {
		return nil, apperrors.InvalidArgument(fmt.Sprintf("사진은 최대 %d장까지 보관할 수 있습니다.", s.limits.MaxPerUser))
	}

	// 2. 원본 크기 제한
	if int64(len(data)) > s.limits.MaxBytes {
		return nil, apperrors.InvalidArgument(fmt.Sprintf("파일 크기는 최대 %dMB입니다.", s.limits.MaxBytes/(1024*1024)))
	}
	if len(data) == 0 {
		return nil, apperrors.InvalidArgument("빈 파일입니다.")
	}

	// 3. 디코드 (jpeg/png/gif)
	src, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, apperrors.InvalidArgument("이미지를 해석할 수 없습니다.")
	}

	width := src.Bounds().Dx()
	if width < s.limits.MinWidth {
		return nil, apperrors.InvalidArgument(fmt.Sprintf("이미지 가로 크기는 최소 %dpx입니다.", s.limits.MinWidth))
	}

	// 4. 흰 배경 평탄화 + 리사이즈
	processed := s.process(src)

	// 5. JPEG 재인코딩
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, processed, imaging.JPEG, imaging.JPEGQuality(s.limits.JpegQuality)); err != nil {
		return nil, apperrors.Internal("이미지 인코딩 실패", err)
	}

	// 6. 저장 (무작위 키로 충돌 방지)
	key := uuid.New().String() + ".jpg"
	if err := s.storage.Save(ctx, key, buf.Bytes(), "image/jpeg"); err != nil {
		return nil, apperrors.Internal("사진 저장 실패", err)
	}

	photo := &models.CarPhoto{
		UserID:       userID,
		StorageKey:   key,
		OriginalName: originalName,
		ContentType:  "image/jpeg",
		SizeBytes:    int64(buf.Len()),
		Width:        processed.Bounds().Dx(),
		Height:       processed.Bounds().Dy(),
		IsMain:       count == 0, // 첫 사진이 대표 사진
	}

	if err := s.photoRepo.Create(ctx, photo); err != nil {
		// 메타데이터 기록 실패 시 고아 파일 정리
		if cleanupErr := s.storage.Delete(ctx, key); cleanupErr != nil {
			s.logger.Warn("고아 파일 정리 실패", zap.String("key", key), zap.Error(cleanupErr))
		}
		return nil, apperrors.Internal("사진 메타데이터 저장 실패", err)
	}

	return photo, nil
}

// process는 투명 픽셀을 흰 배경으로 평탄화하고 최대 가로 크기로 줄입니다.
func (s *PhotoService) process(src image.Image) image.Image {
	bounds := src.Bounds()

	// 흰 배경 평탄화 (PNG/GIF 투명도 대응)
	background := imaging.New(bounds.Dx(), bounds.Dy(), imaging.White)
	flattened := imaging.Overlay(background, src, image.Pt(0, 0), 1.0)

	// 가로 크기 제한, 비율 유지
	if bounds.Dx() > s.limits.MaxWidth {
		return imaging.Resize(flattened, s.limits.MaxWidth, 0, imaging.Lanczos)
	}
	return flattened
}

// List 사용자의 사진 목록
func (s *PhotoService) List(ctx context.Context, userID uint) ([]models.CarPhoto, error) {
	photos, err := s.photoRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("사진 목록 조회 실패", err)
	}
	return photos, nil
}

// GetFile은 사진 바이트 또는 presigned URL을 반환합니다. 소유자만 접근할 수 있습니다.
func (s *PhotoService) GetFile(ctx context.Context, userID, photoID uint) (data []byte, contentType, redirectURL string, err error) {
	photo, err := s.requirePhoto(ctx, userID, photoID)
	if err != nil {
		return nil, "", "", err
	}

	// S3 백엔드는 presigned URL로 리다이렉트
	url, err := s.storage.URL(ctx, photo.StorageKey)
	if err != nil {
		return nil, "", "", apperrors.Internal("다운로드 링크 생성 실패", err)
	}
	if url != "" {
		return nil, "", url, nil
	}

	raw, err := s.storage.Load(ctx, photo.StorageKey)
	if err != nil {
		return nil, "", "", apperrors.Internal("사진 파일 읽기 실패", err)
	}

	return raw, photo.ContentType, "", nil
}

// SetMain은 대표 사진을 전환합니다.
func (s *PhotoService) SetMain(ctx context.Context, userID, photoID uint) error {
	if _, err := s.requirePhoto(ctx, userID, photoID); err != nil {
		return err
	}

	if err := s.photoRepo.SetMain(ctx, userID, photoID); err != nil {
		return apperrors.Internal("대표 사진 전환 실패", err)
	}
	return nil
}

// Delete는 사진을 삭제합니다. 대표 사진 삭제 시 가장 최근 사진이 승격됩니다.
// 파일 삭제는 커밋 후 best-effort로 수행합니다.
func (s *PhotoService) Delete(ctx context.Context, userID, photoID uint) error {
	if _, err := s.requirePhoto(ctx, userID, photoID); err != nil {
		return err
	}

	deleted, err := s.photoRepo.DeleteAndPromote(ctx, userID, photoID)
	if err != nil {
		return apperrors.Internal("사진 삭제 실패", err)
	}

	if err := s.storage.Delete(ctx, deleted.StorageKey); err != nil {
		s.logger.Warn("사진 파일 삭제 실패",
			zap.String("key", deleted.StorageKey),
			zap.Error(err),
		)
	}

	return nil
}

// requirePhoto는 사진 존재와 소유권을 확인합니다.
func (s *PhotoService) requirePhoto(ctx context.Context, userID, photoID uint) (*models.CarPhoto, error) {
	photo, err := s.photoRepo.FindByID(ctx, photoID)
	if err != nil {
		return nil, apperrors.Internal("사진 조회 실패", err)
	}
	if photo == nil {
		return nil, apperrors.NotFound("사진을 찾을 수 없습니다.")
	}
	if photo.UserID != userID {
		return nil, apperrors.Unauthorized("해당 사진에 대한 권한이 없습니다.")
	}
	return photo, nil
}
