package logics_test

import (
	"context"
	"testing"
	"time"

	"github.com/OuserDev/Connected-Car-BE/internal/logics"
	"github.com/OuserDev/Connected-Car-BE/internal/models"
	apperrors "github.com/OuserDev/Connected-Car-BE/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDrivingRecordService_Create(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	now := time.Now()

	validReq := models.DrivingRecordCreateRequest{
		CarID:       1,
		StartedAt:   now.Add(-time.Hour),
		EndedAt:     now,
		DistanceKm:  42.5,
		AvgSpeedKmh: 42.5,
		MaxSpeedKmh: 88,
		FuelUsedL:   3.1,
	}

	t.Run("owner can record a trip", func(t *testing.T) {
		carRepo := new(MockCarRepository)
		recordRepo := new(MockDrivingRecordRepository)
		carRepo.On("FindByID", mock.Anything, uint(1)).Return(ownedCar(1, 10), nil)
		recordRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.DrivingRecord")).Return(nil)

		service := logics.NewDrivingRecordService(logger, recordRepo, carRepo)

		record, err := service.Create(ctx, 10, validReq)
		require.NoError(t, err)
		assert.Equal(t, uint(10), record.UserID)
		assert.Equal(t, uint(1), record.CarID)
	})

	t.Run("trip on another user's car is forbidden", func(t *testing.T) {
		carRepo := new(MockCarRepository)
		recordRepo := new(MockDrivingRecordRepository)
		carRepo.On("FindByID", mock.Anything, uint(1)).Return(ownedCar(1, 99), nil)

		service := logics.NewDrivingRecordService(logger, recordRepo, carRepo)

		_, err := service.Create(ctx, 10, validReq)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code())
		recordRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("trip ending before it starts is rejected", func(t *testing.T) {
		carRepo := new(MockCarRepository)
		recordRepo := new(MockDrivingRecordRepository)
		carRepo.On("FindByID", mock.Anything, uint(1)).Return(ownedCar(1, 10), nil)

		service := logics.NewDrivingRecordService(logger, recordRepo, carRepo)

		req := validReq
		req.StartedAt = now
		req.EndedAt = now.Add(-time.Hour)

		_, err := service.Create(ctx, 10, req)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrInvalidArgument, appErr.Code())
	})
}

func TestDrivingRecordService_List(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("car filter requires ownership", func(t *testing.T) {
		carRepo := new(MockCarRepository)
		recordRepo := new(MockDrivingRecordRepository)
		carRepo.On("FindByID", mock.Anything, uint(1)).Return(ownedCar(1, 99), nil)

		service := logics.NewDrivingRecordService(logger, recordRepo, carRepo)

		_, err := service.List(ctx, 10, 1)
		require.Error(t, err)
		recordRepo.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unfiltered list skips the ownership lookup", func(t *testing.T) {
		carRepo := new(MockCarRepository)
		recordRepo := new(MockDrivingRecordRepository)
		recordRepo.On("ListByUser", mock.Anything, uint(10), uint(0)).Return([]models.DrivingRecord{}, nil)

		service := logics.NewDrivingRecordService(logger, recordRepo, carRepo)

		_, err := service.List(ctx, 10, 0)
		require.NoError(t, err)
		carRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}
