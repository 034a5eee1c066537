package repositories

import (
	"context"
	"errors"

	"github.com/OuserDev/Connected-Car-BE/internal/models"

	"gorm.io/gorm"
)

// PhotoRepository 사진 메타데이터 저장소 인터페이스.
// 대표 사진 전환/승격은 트랜잭션으로 처리하여 "사용자당 대표 사진 1장" 불변식을 지킵니다.
type PhotoRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.CarPhoto, error)
	FindByID(ctx context.Context, id uint) (*models.CarPhoto, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	Create(ctx context.Context, photo *models.CarPhoto) error
	SetMain(ctx context.Context, userID, photoID uint) error
	DeleteAndPromote(ctx context.Context, userID, photoID uint) (*models.CarPhoto, error)
}

type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository 사진 레포지토리 구현체 생성
func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

// ListByUser 사용자의 사진 목록 (최신순)
func (r *photoRepository) ListByUser(ctx context.Context, userID uint) ([]models.CarPhoto, error) {
	var photos []models.CarPhoto

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}

	return photos, nil
}

// FindByID ID로 사진 조회
func (r *photoRepository) FindByID(ctx context.Context, id uint) (*models.CarPhoto, error) {
	var photo models.CarPhoto

	if err := r.db.WithContext(ctx).First(&photo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &photo, nil
}

// CountByUser 사용자 사진 수
func (r *photoRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CarPhoto{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// Create 사진 메타데이터 등록
func (r *photoRepository) Create(ctx context.Context, photo *models.CarPhoto) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

// SetMain 대표 사진 전환. 기존 대표 해제와 새 대표 지정을 한 트랜잭션으로 처리합니다.
func (r *photoRepository) SetMain(ctx context.Context, userID, photoID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.CarPhoto{}).
			Where("user_id = ? AND is_main = ?", userID, true).
			Update("is_main", false).Error; err != nil {
			return err
		}

		result := tx.Model(&models.CarPhoto{}).
			Where("id = ? AND user_id = ?", photoID, userID).
			Update("is_main", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// DeleteAndPromote 사진 삭제. 삭제 대상이 대표 사진이었고 사진이 남아 있으면
// 가장 최근 사진을 대표로 승격합니다. 삭제된 사진을 반환하여 파일 정리에 사용합니다.
func (r *photoRepository) DeleteAndPromote(ctx context.Context, userID, photoID uint) (*models.CarPhoto, error) {
	var deleted models.CarPhoto

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", photoID, userID).First(&deleted).Error; err != nil {
			return err
		}

		if err := tx.Delete(&deleted).Error; err != nil {
			return err
		}

		if !deleted.IsMain {
			return nil
		}

		// 가장 최근 남은 사진을 대표로 승격
		var newest models.CarPhoto
		err := tx.Where("user_id = ?", userID).
			Order("created_at DESC, id DESC").
			First(&newest).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		return tx.Model(&newest).Update("is_main", true).Error
	})
	if err != nil {
		return nil, err
	}

	return &deleted, nil
}
