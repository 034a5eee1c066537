package logics

import (
	"context"

	"github.com/OuserDev/Connected-Car-BE/internal/models"
	"github.com/OuserDev/Connected-Car-BE/internal/repositories"
	apperrors "github.com/OuserDev/Connected-Car-BE/pkg/errors"

	"go.uber.org/zap"
)

// DrivingRecordService 주행 기록 등록/조회 서비스입니다.
type DrivingRecordService struct {
	logger     *zap.Logger
	recordRepo repositories.DrivingRecordRepository
	carRepo    repositories.CarRepository
}

// NewDrivingRecordService 주행 기록 서비스 생성
func NewDrivingRecordService(logger *zap.Logger, recordRepo repositories.DrivingRecordRepository, carRepo repositories.CarRepository) *DrivingRecordService {
	return &DrivingRecordService{
		logger:     logger,
		recordRepo: recordRepo,
		carRepo:    carRepo,
	}
}

// List 사용자의 주행 기록 목록. carID가 0이면 전체를 반환합니다.
func (s *DrivingRecordService) List(ctx context.Context, userID, carID uint) ([]models.DrivingRecord, error) {
	if carID != 0 {
		if _, err := RequireCarOwnership(ctx, s.carRepo, carID, userID); err != nil {
			return nil, err
		}
	}

	records, err := s.recordRepo.ListByUser(ctx, userID, carID)
	if err != nil {
		return nil, apperrors.Internal("주행 기록 조회 실패", err)
	}
	return records, nil
}

// Create 주행 기록 등록. 본인 소유 차량에만 기록할 수 있습니다.
func (s *DrivingRecordService) Create(ctx context.Context, userID uint, req models.DrivingRecordCreateRequest) (*models.DrivingRecord, error) {
	if _, err := RequireCarOwnership(ctx, s.carRepo, req.CarID, userID); err != nil {
		return nil, err
	}

	if req.EndedAt.Before(req.StartedAt) {
		return nil, apperrors.InvalidArgument("종료 시각은 시작 시각보다 빠를 수 없습니다.")
	}

	record := &models.DrivingRecord{
		UserID:      userID,
		CarID:       req.CarID,
		StartedAt:   req.StartedAt,
		EndedAt:     req.EndedAt,
		DistanceKm:  req.DistanceKm,
		AvgSpeedKmh: req.AvgSpeedKmh,
		MaxSpeedKmh: req.MaxSpeedKmh,
		FuelUsedL:   req.FuelUsedL,
	}

	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, apperrors.Internal("주행 기록 등록 실패", err)
	}

	return record, nil
}

// Summary 사용자 주행 기록 합계
func (s *DrivingRecordService) Summary(ctx context.Context, userID uint) (*models.DrivingSummary, error) {
	summary, err := s.recordRepo.Summary(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("주행 기록 합계 조회 실패", err)
	}
	return summary, nil
}
