package logics

import (
	"context"
	"errors"

	"github.com/OuserDev/Connected-Car-BE/internal/models"
	"github.com/OuserDev/Connected-Car-BE/internal/repositories"
	apperrors "github.com/OuserDev/Connected-Car-BE/pkg/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 이력 조회 페이지 크기
const (
	historyDefaultLimit = 50
	historyMaxLimit     = 200
)

// HistoryPage 이력 조회 결과
type HistoryPage struct {
	Entries []models.CarHistory `json:"entries"`
	Total   int64               `json:"total"`
	Limit   int                 `json:"limit"`
	Offset  int                 `json:"offset"`
}

// CarService 차량 등록/조회/삭제와 이력 조회를 담당하는 서비스입니다.
type CarService struct {
	logger      *zap.Logger
	carRepo     repositories.CarRepository
	specRepo    repositories.SpecRepository
	historyRepo repositories.HistoryRepository
}

// NewCarService 차량 서비스 생성
func NewCarService(logger *zap.Logger, carRepo repositories.CarRepository, specRepo repositories.SpecRepository, historyRepo repositories.HistoryRepository) *CarService {
	return &CarService{
		logger:      logger,
		carRepo:     carRepo,
		specRepo:    specRepo,
		historyRepo: historyRepo,
	}
}

// List 사용자의 차량 목록
func (s *CarService) List(ctx context.Context, userID uint) ([]models.Car, error) {
	cars, err := s.carRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("차량 목록 조회 실패", err)
	}
	return cars, nil
}

// Get 차량 상세 조회. 소유자만 조회할 수 있습니다.
func (s *CarService) Get(ctx context.Context, carID, userID uint) (*models.Car, error) {
	return RequireCarOwnership(ctx, s.carRepo, carID, userID)
}

// Register는 차량을 등록합니다. VIN/번호판이 저장소 어디에든 이미 존재하면
// 충돌로 거절하며 어떤 insert도 수행하지 않습니다.
func (s *CarService) Register(ctx context.Context, userID uint, req models.CarRegisterRequest) (*models.Car, error) {
	spec, err := s.specRepo.FindByID(ctx, req.SpecID)
	if err != nil {
		return nil, apperrors.Internal("차량 스펙 조회 실패", err)
	}
	if spec == nil {
		return nil, apperrors.InvalidArgument("존재하지 않는 차량 스펙입니다.")
	}

	exists, err := s.carRepo.ExistsVIN(ctx, req.VIN)
	if err != nil {
		return nil, apperrors.Internal("VIN 중복 확인 실패", err)
	}
	if exists {
		return nil, apperrors.Conflict("이미 등록된 VIN입니다.")
	}

	exists, err = s.carRepo.ExistsPlate(ctx, req.LicensePlate)
	if err != nil {
		return nil, apperrors.Internal("번호판 중복 확인 실패", err)
	}
	if exists {
		return nil, apperrors.Conflict("이미 등록된 번호판입니다.")
	}

	car := &models.Car{
		OwnerID:      &userID,
		SpecID:       req.SpecID,
		VIN:          req.VIN,
		LicensePlate: req.LicensePlate,
		Nickname:     req.Nickname,
	}

	if err := s.carRepo.Create(ctx, car); err != nil {
		// 사전 확인과 insert 사이의 경합은 유니크 인덱스가 막습니다
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("이미 등록된 VIN 또는 번호판입니다.")
		}
		return nil, apperrors.Internal("차량 등록 실패", err)
	}

	car.Spec = spec
	return car, nil
}

// Delete는 차량을 미배정 풀로 되돌립니다. 이력은 보존됩니다.
func (s *CarService) Delete(ctx context.Context, carID, userID uint) error {
	if _, err := RequireCarOwnership(ctx, s.carRepo, carID, userID); err != nil {
		return err
	}

	if err := s.carRepo.ClearOwner(ctx, carID); err != nil {
		return apperrors.Internal("차량 삭제 실패", err)
	}

	return nil
}

// ListHistory는 차량 제어 이력을 최신순으로 조회합니다.
// limit 기본 50, 최대 200으로 제한합니다.
func (s *CarService) ListHistory(ctx context.Context, carID, userID uint, limit, offset int) (*HistoryPage, error) {
	if _, err := RequireCarOwnership(ctx, s.carRepo, carID, userID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = historyDefaultLimit
	}
	if limit > historyMaxLimit {
		limit = historyMaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := s.historyRepo.ListByCar(ctx, carID, limit, offset)
	if err != nil {
		return nil, apperrors.Internal("이력 조회 실패", err)
	}

	total, err := s.historyRepo.CountByCar(ctx, carID)
	if err != nil {
		return nil, apperrors.Internal("이력 수 조회 실패", err)
	}

	return &HistoryPage{
		Entries: entries,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}
