package repositories

import (
	"context"
	"errors"

	"github.com/OuserDev/Connected-Car-BE/internal/models"

	"gorm.io/gorm"
)

// CommunityRepository 공지사항/FAQ 저장소. 읽기 전용입니다.
type CommunityRepository interface {
	ListNotices(ctx context.Context) ([]models.Notice, error)
	FindNotice(ctx context.Context, id uint) (*models.Notice, error)
	ListFAQs(ctx context.Context) ([]models.FAQ, error)
}

type communityRepository struct {
	db *gorm.DB
}

// NewCommunityRepository 커뮤니티 레포지토리 구현체 생성
func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

// ListNotices 공지 목록 (고정 공지 우선, 최신순)
func (r *communityRepository) ListNotices(ctx context.Context) ([]models.Notice, error) {
	var notices []models.Notice

	err := r.db.WithContext(ctx).
		Order("pinned DESC, created_at DESC").
		Find(&notices).Error
	if err != nil {
		return nil, err
	}

	return notices, nil
}

// FindNotice ID로 공지 조회
func (r *communityRepository) FindNotice(ctx context.Context, id uint) (*models.Notice, error) {
	var notice models.Notice

	if err := r.db.WithContext(ctx).First(&notice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &notice, nil
}

// ListFAQs FAQ 목록 (카테고리, 정렬 순서대로)
func (r *communityRepository) ListFAQs(ctx context.Context) ([]models.FAQ, error) {
	var faqs []models.FAQ

	err := r.db.WithContext(ctx).
		Order("category ASC, sort_order ASC, id ASC").
		Find(&faqs).Error
	if err != nil {
		return nil, err
	}

	return faqs, nil
}
