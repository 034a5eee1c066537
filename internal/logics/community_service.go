package logics

import (
	"context"

	"github.com/OuserDev/Connected-Car-BE/internal/models"
	"github.com/OuserDev/Connected-Car-BE/internal/repositories"
	apperrors "github.com/OuserDev/Connected-Car-BE/pkg/errors"

	"go.uber.org/zap"
)

// CommunityService 공지사항/FAQ 조회 서비스입니다. 쓰기는 운영 도구에서 직접 수행합니다.
type CommunityService struct {
	logger        *zap.Logger
	communityRepo repositories.CommunityRepository
}

// NewCommunityService 커뮤니티 서비스 생성
func NewCommunityService(logger *zap.Logger, communityRepo repositories.CommunityRepository) *CommunityService {
	return &CommunityService{
		logger:        logger,
		communityRepo: communityRepo,
	}
}

// ListNotices 공지 목록
func (s *CommunityService) ListNotices(ctx context.Context) ([]models.Notice, error) {
	notices, err := s.communityRepo.ListNotices(ctx)
	if err != nil {
		return nil, apperrors.Internal("공지 목록 조회 실패", err)
	}
	return notices, nil
}

// GetNotice 공지 상세
func (s *CommunityService) GetNotice(ctx context.Context, noticeID uint) (*models.Notice, error) {
	notice, err := s.communityRepo.FindNotice(ctx, noticeID)
	if err != nil {
		return nil, apperrors.Internal("공지 조회 실패", err)
	}
	if notice == nil {
		return nil, apperrors.NotFound("공지를 찾을 수 없습니다.")
	}
	return notice, nil
}

// ListFAQs FAQ 목록
func (s *CommunityService) ListFAQs(ctx context.Context) ([]models.FAQ, error) {
	faqs, err := s.communityRepo.ListFAQs(ctx)
	if err != nil {
		return nil, apperrors.Internal("FAQ 목록 조회 실패", err)
	}
	return faqs, nil
}
