package repositories

import (
	"context"

	"github.com/OuserDev/Connected-Car-BE/internal/models"

	"gorm.io/gorm"
)

// HistoryRepository 차량 제어 이력 저장소. 추가와 조회만 제공합니다.
type HistoryRepository interface {
	Append(ctx context.Context, entry *models.CarHistory) error
	ListByCar(ctx context.Context, carID uint, limit, offset int) ([]models.CarHistory, error)
	CountByCar(ctx context.Context, carID uint) (int64, error)
}

type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository 이력 레포지토리 구현체 생성
func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

// Append 이력 1행 추가
func (r *historyRepository) Append(ctx context.Context, entry *models.CarHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListByCar 차량 이력 조회 (최신순)
func (r *historyRepository) ListByCar(ctx context.Context, carID uint, limit, offset int) ([]models.CarHistory, error) {
	var entries []models.CarHistory

	err := r.db.WithContext(ctx).
		Where("car_id = ?", carID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// CountByCar 차량 이력 총 개수
func (r *historyRepository) CountByCar(ctx context.Context, carID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CarHistory{}).
		Where("car_id = ?", carID).
		Count(&count).Error
	return count, err
}
