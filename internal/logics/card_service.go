package logics

import (
	"context"
	"errors"

	"github.com/OuserDev/Connected-Car-BE/internal/models"
	"github.com/OuserDev/Connected-Car-BE/internal/repositories"
	"github.com/OuserDev/Connected-Car-BE/internal/utils"
	apperrors "github.com/OuserDev/Connected-Car-BE/pkg/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CardService 결제 카드 등록/삭제와 기본 카드 관리를 담당하는 서비스입니다.
type CardService struct {
	logger   *zap.Logger
	cardRepo repositories.CardRepository
}

// NewCardService 카드 서비스 생성
func NewCardService(logger *zap.Logger, cardRepo repositories.CardRepository) *CardService {
	return &CardService{
		logger:   logger,
		cardRepo: cardRepo,
	}
}

// List 사용자의 카드 목록
func (s *CardService) List(ctx context.Context, userID uint) ([]models.RegisteredCard, error) {
	cards, err := s.cardRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("카드 목록 조회 실패", err)
	}
	return cards, nil
}

// Register는 카드를 등록합니다. 동일 번호 재등록은 충돌로 거절하며,
// 첫 카드는 자동으로 기본 카드가 됩니다. 번호 원문은 저장하지 않습니다.
func (s *CardService) Register(ctx context.Context, userID uint, req models.CardRegisterRequest) (*models.RegisteredCard, error) {
	hash := utils.HashCardNumber(req.CardNumber)

	exists, err := s.cardRepo.ExistsByHash(ctx, userID, hash)
	if err != nil {
		return nil, apperrors.Internal("카드 중복 확인 실패", err)
	}
	if exists {
		return nil, apperrors.Conflict("이미 등록된 카드입니다.")
	}

	count, err := s.cardRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("카드 수 조회 실패", err)
	}

	card := &models.RegisteredCard{
		UserID:           userID,
		CardNumberMasked: utils.MaskCardNumber(req.CardNumber),
		CardHash:         hash,
		HolderName:       req.HolderName,
		ExpiryMonth:      req.ExpiryMonth,
		ExpiryYear:       req.ExpiryYear,
		Brand:            utils.DetectCardBrand(req.CardNumber),
		IsTest:           utils.IsTestCard(req.CardNumber),
		IsDefault:        count == 0, // 첫 카드는 기본 카드
	}

	if err := s.cardRepo.Create(ctx, card); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("이미 등록된 카드입니다.")
		}
		return nil, apperrors.Internal("카드 등록 실패", err)
	}

	return card, nil
}

// SetDefault 기본 카드 전환
func (s *CardService) SetDefault(ctx context.Context, userID, cardID uint) error {
	if _, err := s.requireCard(ctx, userID, cardID); err != nil {
		return err
	}

	if err := s.cardRepo.SetDefault(ctx, userID, cardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("카드를 찾을 수 없습니다.")
		}
		return apperrors.Internal("기본 카드 전환 실패", err)
	}
	return nil
}

// Delete는 카드를 삭제합니다. 기본 카드를 삭제하면 남은 카드 중
// 가장 오래된 카드가 기본으로 승격됩니다. 마지막 카드를 삭제하면 기본 카드가 없는 상태가 됩니다.
func (s *CardService) Delete(ctx context.Context, userID, cardID uint) error {
	if _, err := s.requireCard(ctx, userID, cardID); err != nil {
		return err
	}

	if err := s.cardRepo.DeleteAndPromote(ctx, userID, cardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("카드를 찾을 수 없습니다.")
		}
		return apperrors.Internal("카드 삭제 실패", err)
	}
	return nil
}

// requireCard는 카드 존재와 소유권을 확인합니다.
func (s *CardService) requireCard(ctx context.Context, userID, cardID uint) (*models.RegisteredCard, error) {
	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		return nil, apperrors.Internal("카드 조회 실패", err)
	}
	if card == nil {
		return nil, apperrors.NotFound("카드를 찾을 수 없습니다.")
	}
	if card.UserID != userID {
		return nil, apperrors.Unauthorized("해당 카드에 대한 권한이 없습니다.")
	}
	return card, nil
}
