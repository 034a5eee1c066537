package repositories

import (
	"context"
	"errors"

	"github.com/OuserDev/Connected-Car-BE/internal/models"

	"gorm.io/gorm"
)

// CardRepository 결제 카드 저장소 인터페이스.
// 기본 카드 승격/전환은 트랜잭션 안에서 처리하여 "사용자당 기본 카드 1장" 불변식을 지킵니다.
type CardRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.RegisteredCard, error)
	FindByID(ctx context.Context, id uint) (*models.RegisteredCard, error)
	ExistsByHash(ctx context.Context, userID uint, hash string) (bool, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	Create(ctx context.Context, card *models.RegisteredCard) error
	SetDefault(ctx context.Context, userID, cardID uint) error
	DeleteAndPromote(ctx context.Context, userID, cardID uint) error
}

type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository 카드 레포지토리 구현체 생성
func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{db: db}
}

// ListByUser 사용자의 카드 목록 (등록순)
func (r *cardRepository) ListByUser(ctx context.Context, userID uint) ([]models.RegisteredCard, error) {
	var cards []models.RegisteredCard

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&cards).Error
	if err != nil {
		return nil, err
	}

	return cards, nil
}

// FindByID ID로 카드 조회
func (r *cardRepository) FindByID(ctx context.Context, id uint) (*models.RegisteredCard, error) {
	var card models.RegisteredCard

	if err := r.db.WithContext(ctx).First(&card, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &card, nil
}

// ExistsByHash 동일 카드 번호(해시) 등록 여부
func (r *cardRepository) ExistsByHash(ctx context.Context, userID uint, hash string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.RegisteredCard{}).
		Where("user_id = ? AND card_hash = ?", userID, hash).
		Count(&count).Error
	return count > 0, err
}

// CountByUser 사용자 카드 수
func (r *cardRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.RegisteredCard{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// Create 카드 등록
func (r *cardRepository) Create(ctx context.Context, card *models.RegisteredCard) error {
	return r.db.WithContext(ctx).Create(card).Error
}

// SetDefault 기본 카드 전환. 기존 기본 해제와 새 기본 지정을 한 트랜잭션으로 처리합니다.
func (r *cardRepository) SetDefault(ctx context.Context, userID, cardID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.RegisteredCard{}).
			Where("user_id = ? AND is_default = ?", userID, true).
			Update("is_default", false).Error; err != nil {
			return err
		}

		result := tx.Model(&models.RegisteredCard{}).
			Where("id = ? AND user_id = ?", cardID, userID).
			Update("is_default", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// DeleteAndPromote 카드 삭제. 삭제 대상이 기본 카드였고 카드가 남아 있으면
// 가장 오래된 카드(created_at, id 순)를 기본으로 승격합니다. 전체가 한 트랜잭션입니다.
func (r *cardRepository) DeleteAndPromote(ctx context.Context, userID, cardID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var card models.RegisteredCard
		if err := tx.Where("id = ? AND user_id = ?", cardID, userID).First(&card).Error; err != nil {
			return err
		}

		if err := tx.Delete(&card).Error; err != nil {
			return err
		}

		if !card.IsDefault {
			return nil
		}

		// 가장 오래된 남은 카드를 기본으로 승격. 남은 카드가 없으면 기본 카드 0장.
		var oldest models.RegisteredCard
		err := tx.Where("user_id = ?", userID).
			Order("created_at ASC, id ASC").
			First(&oldest).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		return tx.Model(&oldest).Update("is_default", true).Error
	})
}
