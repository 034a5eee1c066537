package repositories

import (
	"context"
	"errors"

	"github.com/OuserDev/Connected-Car-BE/internal/models"

	"gorm.io/gorm"
)

// CarRepository 차량 저장소 인터페이스
type CarRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Car, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Car, error)
	Create(ctx context.Context, car *models.Car) error
	ExistsVIN(ctx context.Context, vin string) (bool, error)
	ExistsPlate(ctx context.Context, plate string) (bool, error)
	ClearOwner(ctx context.Context, carID uint) error
	ReleaseAllByOwner(ctx context.Context, ownerID uint) error
}

type carRepository struct {
	db *gorm.DB
}

// NewCarRepository 차량 레포지토리 구현체 생성
func NewCarRepository(db *gorm.DB) CarRepository {
	return &carRepository{db: db}
}

// FindByID ID로 차량 조회 (스펙 조인 포함)
func (r *carRepository) FindByID(ctx context.Context, id uint) (*models.Car, error) {
	var car models.Car

	if err := r.db.WithContext(ctx).Preload("Spec").First(&car, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &car, nil
}

// ListByOwner 소유자의 차량 목록 조회
func (r *carRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Car, error) {
	var cars []models.Car

	err := r.db.WithContext(ctx).
		Preload("Spec").
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&cars).Error
	if err != nil {
		return nil, err
	}

	return cars, nil
}

// Create 차량 등록. VIN/번호판 유니크 인덱스 위반은 호출부에서 중복으로 해석합니다.
func (r *carRepository) Create(ctx context.Context, car *models.Car) error {
	return r.db.WithContext(ctx).Create(car).Error
}

// ExistsVIN 동일 VIN 존재 여부
func (r *carRepository) ExistsVIN(ctx context.Context, vin string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Car{}).
		Where("vin = ?", vin).
		Count(&count).Error
	return count > 0, err
}

// ExistsPlate 동일 번호판 존재 여부
func (r *carRepository) ExistsPlate(ctx context.Context, plate string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Car{}).
		Where("license_plate = ?", plate).
		Count(&count).Error
	return count > 0, err
}

// ClearOwner 차량을 미배정 풀로 되돌립니다. 이력은 보존됩니다.
func (r *carRepository) ClearOwner(ctx context.Context, carID uint) error {
	return r.db.WithContext(ctx).Model(&models.Car{}).
		Where("id = ?", carID).
		Update("owner_id", nil).Error
}

// ReleaseAllByOwner 탈퇴 사용자의 모든 차량을 미배정 풀로 되돌립니다.
func (r *carRepository) ReleaseAllByOwner(ctx context.Context, ownerID uint) error {
	return r.db.WithContext(ctx).Model(&models.Car{}).
		Where("owner_id = ?", ownerID).
		Update("owner_id", nil).Error
}
