package repositories

import (
	"context"
	"errors"

	"github.com/OuserDev/Connected-Car-BE/internal/models"

	"gorm.io/gorm"
)

// SpecRepository 차량 스펙 카탈로그 저장소. 읽기 전용입니다.
type SpecRepository interface {
	List(ctx context.Context) ([]models.VehicleSpec, error)
	FindByID(ctx context.Context, id uint) (*models.VehicleSpec, error)
	Search(ctx context.Context, keyword string) ([]models.VehicleSpec, error)
	Random(ctx context.Context) (*models.VehicleSpec, error)
}

type specRepository struct {
	db *gorm.DB
}

// NewSpecRepository 스펙 레포지토리 구현체 생성
func NewSpecRepository(db *gorm.DB) SpecRepository {
	return &specRepository{db: db}
}

// List 전체 카탈로그 조회
func (r *specRepository) List(ctx context.Context) ([]models.VehicleSpec, error) {
	var specs []models.VehicleSpec

	if err := r.db.WithContext(ctx).Order("brand ASC, model ASC").Find(&specs).Error; err != nil {
		return nil, err
	}

	return specs, nil
}

// FindByID ID로 스펙 조회
func (r *specRepository) FindByID(ctx context.Context, id uint) (*models.VehicleSpec, error) {
	var spec models.VehicleSpec

	if err := r.db.WithContext(ctx).First(&spec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &spec, nil
}

// Search 브랜드/모델/트림에 대한 부분 일치 검색.
// 파라미터 바인딩으로만 검색어를 전달하며 검색어를 템플릿에 넣지 않습니다.
func (r *specRepository) Search(ctx context.Context, keyword string) ([]models.VehicleSpec, error) {
	var specs []models.VehicleSpec

	pattern := "%" + keyword + "%"
	err := r.db.WithContext(ctx).
		Where("brand LIKE ? OR model LIKE ? OR trim LIKE ?", pattern, pattern, pattern).
		Order("brand ASC, model ASC").
		Find(&specs).Error
	if err != nil {
		return nil, err
	}

	return specs, nil
}

// Random 무작위 스펙 1건. 회원가입 시 차량 자동 배정에 사용합니다.
func (r *specRepository) Random(ctx context.Context) (*models.VehicleSpec, error) {
	var spec models.VehicleSpec

	if err := r.db.WithContext(ctx).Order("RAND()").First(&spec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &spec, nil
}
