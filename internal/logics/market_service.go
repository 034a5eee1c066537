package logics

import (
	"context"

	"github.com/OuserDev/Connected-Car-BE/internal/models"
	"github.com/OuserDev/Connected-Car-BE/internal/repositories"
	apperrors "github.com/OuserDev/Connected-Car-BE/pkg/errors"

	"go.uber.org/zap"
)

// 게시글 목록 페이지 크기
const (
	marketDefaultLimit = 20
	marketMaxLimit     = 100
)

// MarketService 중고거래 게시판 서비스입니다.
// 목록/상세는 누구나(로그인 사용자) 볼 수 있고 수정/삭제는 작성자만 가능합니다.
type MarketService struct {
	logger     *zap.Logger
	marketRepo repositories.MarketRepository
}

// NewMarketService 중고거래 서비스 생성
func NewMarketService(logger *zap.Logger, marketRepo repositories.MarketRepository) *MarketService {
	return &MarketService{
		logger:     logger,
		marketRepo: marketRepo,
	}
}

// List 게시글 목록. status가 비어 있으면 전체를 반환합니다.
func (s *MarketService) List(ctx context.Context, status string, limit, offset int) ([]models.MarketPost, error) {
	if status != "" && !validMarketStatus(status) {
		return nil, apperrors.InvalidArgument("올바르지 않은 게시글 상태입니다.")
	}

	if limit <= 0 {
		limit = marketDefaultLimit
	}
	if limit > marketMaxLimit {
		limit = marketMaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	posts, err := s.marketRepo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, apperrors.Internal("게시글 목록 조회 실패", err)
	}
	return posts, nil
}

// Get 게시글 상세 조회. 조회수를 원자적으로 1 증가시킵니다.
func (s *MarketService) Get(ctx context.Context, postID uint) (*models.MarketPost, error) {
	post, err := s.marketRepo.IncrementViewAndGet(ctx, postID)
	if err != nil {
		return nil, apperrors.Internal("게시글 조회 실패", err)
	}
	if post == nil {
		return nil, apperrors.NotFound("게시글을 찾을 수 없습니다.")
	}
	return post, nil
}

// Create 게시글 작성. 가격은 음수일 수 없습니다.
func (s *MarketService) Create(ctx context.Context, userID uint, req models.MarketPostCreateRequest) (*models.MarketPost, error) {
	if req.Price.IsNegative() {
		return nil, apperrors.InvalidArgument("가격은 0 이상이어야 합니다.")
	}

	post := &models.MarketPost{
		UserID: userID,
		Title:  req.Title,
		Body:   req.Body,
		Price:  req.Price,
		Status: models.MarketStatusSale,
	}

	if err := s.marketRepo.Create(ctx, post); err != nil {
		return nil, apperrors.Internal("게시글 작성 실패", err)
	}

	return post, nil
}

// Update 게시글 수정. 작성자만 수정할 수 있으며 nil 필드는 변경하지 않습니다.
func (s *MarketService) Update(ctx context.Context, userID, postID uint, req models.MarketPostUpdateRequest) (*models.MarketPost, error) {
	post, err := s.requirePost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Body != nil {
		post.Body = *req.Body
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, apperrors.InvalidArgument("가격은 0 이상이어야 합니다.")
		}
		post.Price = *req.Price
	}
	if req.Status != nil {
		if !validMarketStatus(*req.Status) {
			return nil, apperrors.InvalidArgument("올바르지 않은 게시글 상태입니다.")
		}
		post.Status = *req.Status
	}

	if err := s.marketRepo.Update(ctx, post); err != nil {
		return nil, apperrors.Internal("게시글 수정 실패", err)
	}

	return post, nil
}

// Delete 게시글 삭제. 작성자만 삭제할 수 있습니다.
func (s *MarketService) Delete(ctx context.Context, userID, postID uint) error {
	if _, err := s.requirePost(ctx, userID, postID); err != nil {
		return err
	}

	if err := s.marketRepo.Delete(ctx, postID); err != nil {
		return apperrors.Internal("게시글 삭제 실패", err)
	}
	return nil
}

// requirePost는 게시글 존재와 작성자 여부를 확인합니다.
func (s *MarketService) requirePost(ctx context.Context, userID, postID uint) (*models.MarketPost, error) {
	post, err := s.marketRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, apperrors.Internal("게시글 조회 실패", err)
	}
	if post == nil {
		return nil, apperrors.NotFound("게시글을 찾을 수 없습니다.")
	}
	if post.UserID != userID {
		return nil, apperrors.Unauthorized("해당 게시글에 대한 권한이 없습니다.")
	}
	return post, nil
}

func validMarketStatus(status string) bool {
	switch status {
	case models.MarketStatusSale, models.MarketStatusReserved, models.MarketStatusSold:
		return true
	}
	return false
}
