package repositories

import (
	"context"

	"github.com/OuserDev/Connected-Car-BE/internal/models"

	"gorm.io/gorm"
)

// DrivingRecordRepository 주행 기록 저장소 인터페이스
type DrivingRecordRepository interface {
	ListByUser(ctx context.Context, userID uint, carID uint) ([]models.DrivingRecord, error)
	Create(ctx context.Context, record *models.DrivingRecord) error
	Summary(ctx context.Context, userID uint) (*models.DrivingSummary, error)
}

type drivingRecordRepository struct {
	db *gorm.DB
}

// NewDrivingRecordRepository 주행 기록 레포지토리 구현체 생성
func NewDrivingRecordRepository(db *gorm.DB) DrivingRecordRepository {
	return &drivingRecordRepository{db: db}
}

// ListByUser 사용자의 주행 기록 (최신순, carID가 0이 아니면 차량 필터)
func (r *drivingRecordRepository) ListByUser(ctx context.Context, userID uint, carID uint) ([]models.DrivingRecord, error) {
	var records []models.DrivingRecord

	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("started_at DESC, id DESC")
	if carID != 0 {
		query = query.Where("car_id = ?", carID)
	}

	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

// Create 주행 기록 등록
func (r *drivingRecordRepository) Create(ctx context.Context, record *models.DrivingRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// Summary 사용자 주행 기록 합계
func (r *drivingRecordRepository) Summary(ctx context.Context, userID uint) (*models.DrivingSummary, error) {
	var summary models.DrivingSummary

	err := r.db.WithContext(ctx).Model(&models.DrivingRecord{}).
		Select("COUNT(*) AS record_count, COALESCE(SUM(distance_km), 0) AS total_distance_km, COALESCE(SUM(fuel_used_l), 0) AS total_fuel_used_l, COALESCE(MAX(max_speed_kmh), 0) AS max_speed_kmh").
		Where("user_id = ?", userID).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}

	return &summary, nil
}
