package logics

import (
	"context"
	"strings"

	"github.com/OuserDev/Connected-Car-BE/internal/models"
	"github.com/OuserDev/Connected-Car-BE/internal/repositories"
	apperrors "github.com/OuserDev/Connected-Car-BE/pkg/errors"

	"go.uber.org/zap"
)

// SpecService 차량 스펙 카탈로그 조회/검색 서비스입니다.
type SpecService struct {
	logger   *zap.Logger
	specRepo repositories.SpecRepository
}

// NewSpecService 스펙 서비스 생성
func NewSpecService(logger *zap.Logger, specRepo repositories.SpecRepository) *SpecService {
	return &SpecService{
		logger:   logger,
		specRepo: specRepo,
	}
}

// List 전체 카탈로그
func (s *SpecService) List(ctx context.Context) ([]models.VehicleSpec, error) {
	specs, err := s.specRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal("스펙 목록 조회 실패", err)
	}
	return specs, nil
}

// Get 스펙 상세
func (s *SpecService) Get(ctx context.Context, specID uint) (*models.VehicleSpec, error) {
	spec, err := s.specRepo.FindByID(ctx, specID)
	if err != nil {
		return nil, apperrors.Internal("스펙 조회 실패", err)
	}
	if spec == nil {
		return nil, apperrors.NotFound("차량 스펙을 찾을 수 없습니다.")
	}
	return spec, nil
}

// Search 키워드 검색. 빈 검색어는 전체 목록과 동일합니다.
func (s *SpecService) Search(ctx context.Context, keyword string) ([]models.VehicleSpec, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return s.List(ctx)
	}

	specs, err := s.specRepo.Search(ctx, keyword)
	if err != nil {
		return nil, apperrors.Internal("스펙 검색 실패", err)
	}
	return specs, nil
}
