package logics_test

import (
	"context"
	"testing"

	"github.com/OuserDev/Connected-Car-BE/internal/logics"
	"github.com/OuserDev/Connected-Car-BE/internal/models"
	apperrors "github.com/OuserDev/Connected-Car-BE/pkg/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMarketService_Create(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("new post starts in sale status", func(t *testing.T) {
		marketRepo := new(MockMarketRepository)
		marketRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.MarketPost")).Return(nil)

		service := logics.NewMarketService(logger, marketRepo)

		post, err := service.Create(ctx, 10, models.MarketPostCreateRequest{
			Title: "블랙박스 팝니다",
			Body:  "구매 후 한 달 사용했습니다.",
			Price: decimal.NewFromInt(50000),
		})
		require.NoError(t, err)
		assert.Equal(t, models.MarketStatusSale, post.Status)
		assert.Equal(t, uint(10), post.UserID)
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		marketRepo := new(MockMarketRepository)
		service := logics.NewMarketService(logger, marketRepo)

		_, err := service.Create(ctx, 10, models.MarketPostCreateRequest{
			Title: "무료 나눔?",
			Body:  "본문",
			Price: decimal.NewFromInt(-100),
		})
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrInvalidArgument, appErr.Code())
		marketRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestMarketService_Update(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	existing := func() *models.MarketPost {
		return &models.MarketPost{
			ID:     7,
			UserID: 10,
			Title:  "블랙박스 팝니다",
			Body:   "본문",
			Price:  decimal.NewFromInt(50000),
			Status: models.MarketStatusSale,
		}
	}

	t.Run("author updates only provided fields", func(t *testing.T) {
		marketRepo := new(MockMarketRepository)
		marketRepo.On("FindByID", mock.Anything, uint(7)).Return(existing(), nil)
		marketRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.MarketPost")).Return(nil)

		service := logics.NewMarketService(logger, marketRepo)

		status := models.MarketStatusSold
		post, err := service.Update(ctx, 10, 7, models.MarketPostUpdateRequest{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, models.MarketStatusSold, post.Status)
		assert.Equal(t, "블랙박스 팝니다", post.Title)
	})

	t.Run("non-author update is forbidden", func(t *testing.T) {
		marketRepo := new(MockMarketRepository)
		marketRepo.On("FindByID", mock.Anything, uint(7)).Return(existing(), nil)

		service := logics.NewMarketService(logger, marketRepo)

		_, err := service.Update(ctx, 99, 7, models.MarketPostUpdateRequest{})
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code())
		marketRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("invalid status value is rejected", func(t *testing.T) {
		marketRepo := new(MockMarketRepository)
		marketRepo.On("FindByID", mock.Anything, uint(7)).Return(existing(), nil)

		service := logics.NewMarketService(logger, marketRepo)

		status := "expired"
		_, err := service.Update(ctx, 10, 7, models.MarketPostUpdateRequest{Status: &status})
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrInvalidArgument, appErr.Code())
	})
}

func TestMarketService_Get(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("detail view increments the view count atomically", func(t *testing.T) {
		marketRepo := new(MockMarketRepository)
		marketRepo.On("IncrementViewAndGet", mock.Anything, uint(7)).
			Return(&models.MarketPost{ID: 7, ViewCount: 13}, nil)

		service := logics.NewMarketService(logger, marketRepo)

		post, err := service.Get(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(13), post.ViewCount)
		marketRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("missing post is not found", func(t *testing.T) {
		marketRepo := new(MockMarketRepository)
		marketRepo.On("IncrementViewAndGet", mock.Anything, uint(7)).Return(nil, nil)

		service := logics.NewMarketService(logger, marketRepo)

		_, err := service.Get(ctx, 7)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrNotFound, appErr.Code())
	})
}

func TestMarketService_List(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("limit defaults and clamps are applied", func(t *testing.T) {
		marketRepo := new(MockMarketRepository)
		marketRepo.On("List", mock.Anything, "", 20, 0).Return([]models.MarketPost{}, nil)

		service := logics.NewMarketService(logger, marketRepo)

		_, err := service.List(ctx, "", 0, 0)
		require.NoError(t, err)
		marketRepo.AssertCalled(t, "List", mock.Anything, "", 20, 0)
	})

	t.Run("unknown status filter is rejected", func(t *testing.T) {
		marketRepo := new(MockMarketRepository)
		service := logics.NewMarketService(logger, marketRepo)

		_, err := service.List(ctx, "expired", 0, 0)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrInvalidArgument, appErr.Code())
	})
}
