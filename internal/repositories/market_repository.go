package repositories

import (
	"context"
	"errors"

	"github.com/OuserDev/Connected-Car-BE/internal/models"

	"gorm.io/gorm"
)

// MarketRepository 중고거래 게시글 저장소 인터페이스
type MarketRepository interface {
	List(ctx context.Context, status string, limit, offset int) ([]models.MarketPost, error)
	FindByID(ctx context.Context, id uint) (*models.MarketPost, error)
	IncrementViewAndGet(ctx context.Context, id uint) (*models.MarketPost, error)
	Create(ctx context.Context, post *models.MarketPost) error
	Update(ctx context.Context, post *models.MarketPost) error
	Delete(ctx context.Context, id uint) error
}

type marketRepository struct {
	db *gorm.DB
}

// NewMarketRepository 게시글 레포지토리 구현체 생성
func NewMarketRepository(db *gorm.DB) MarketRepository {
	return &marketRepository{db: db}
}

// List 게시글 목록 (최신순, 상태 필터 선택)
func (r *marketRepository) List(ctx context.Context, status string, limit, offset int) ([]models.MarketPost, error) {
	var posts []models.MarketPost

	query := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit).Offset(offset)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}

	return posts, nil
}

// FindByID ID로 게시글 조회 (조회수 증가 없음)
func (r *marketRepository) FindByID(ctx context.Context, id uint) (*models.MarketPost, error) {
	var post models.MarketPost

	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &post, nil
}

// IncrementViewAndGet 조회수를 원자적으로 1 증가시킨 뒤 게시글을 반환합니다.
func (r *marketRepository) IncrementViewAndGet(ctx context.Context, id uint) (*models.MarketPost, error) {
	result := r.db.WithContext(ctx).Model(&models.MarketPost{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.FindByID(ctx, id)
}

// Create 게시글 작성
func (r *marketRepository) Create(ctx context.Context, post *models.MarketPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// Update 게시글 수정
func (r *marketRepository) Update(ctx context.Context, post *models.MarketPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// Delete 게시글 삭제
func (r *marketRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.MarketPost{}, "id = ?", id).Error
}
