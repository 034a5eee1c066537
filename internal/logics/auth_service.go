package logics

import (
	"context"
	"time"

	"github.com/OuserDev/Connected-Car-BE/internal/models"
	"github.com/OuserDev/Connected-Car-BE/internal/repositories"
	"github.com/OuserDev/Connected-Car-BE/internal/utils"
	apperrors "github.com/OuserDev/Connected-Car-BE/pkg/errors"

	"go.uber.org/zap"
)

// 차량 자동 배정 시 VIN/번호판 중복 재생성 한도
const maxAssignAttempts = 10

// AuthService 회원가입/로그인을 담당하는 서비스입니다.
// 회원가입 시 카탈로그에서 무작위 차량 1대를 자동 배정합니다.
type AuthService struct {
	logger   *zap.Logger
	userRepo repositories.UserRepository
	carRepo  repositories.CarRepository
	specRepo repositories.SpecRepository
}

// NewAuthService 인증 서비스 생성
func NewAuthService(logger *zap.Logger, userRepo repositories.UserRepository, carRepo repositories.CarRepository, specRepo repositories.SpecRepository) *AuthService {
	return &AuthService{
		logger:   logger,
		userRepo: userRepo,
		carRepo:  carRepo,
		specRepo: specRepo,
	}
}

// Register는 새 사용자를 생성하고 차량을 자동 배정합니다.
// 차량 배정 실패는 회원가입 자체를 실패시키지 않습니다.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	existing, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperrors.Internal("사용자 조회 실패", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("이미 사용 중인 아이디입니다.")
	}

	hash, salt, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Internal("비밀번호 해싱 실패", err)
	}

	user := &models.User{
		Username: req.Username,
		Password: hash,
		Salt:     salt,
		Email:    req.Email,
		Name:     req.Name,
		Phone:    req.Phone,
		Status:   models.UserStatusActive,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperrors.Internal("사용자 생성 실패", err)
	}

	// 무작위 차량 자동 배정
	if err := s.assignRandomCar(ctx, user.ID); err != nil {
		s.logger.Warn("차량 자동 배정 실패",
			zap.Uint("user_id", user.ID),
			zap.Error(err),
		)
	}

	return user, nil
}

// Login은 자격 증명을 검증하고 사용자 정보를 반환합니다.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperrors.Internal("사용자 조회 실패", err)
	}
	if user == nil {
		return nil, apperrors.Unauthenticated("아이디 또는 비밀번호가 올바르지 않습니다.")
	}

	if err := utils.VerifyPassword(user.Password, req.Password, user.Salt); err != nil {
		return nil, apperrors.Unauthenticated("아이디 또는 비밀번호가 올바르지 않습니다.")
	}

	// 자격 증명 확인 후 계정 상태 검사
	switch user.Status {
	case models.UserStatusDeleted:
		return nil, apperrors.Unauthorized("탈퇴한 계정입니다.")
	case models.UserStatusSuspended:
		return nil, apperrors.Unauthorized("정지된 계정입니다.")
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.logger.Warn("마지막 로그인 시각 갱신 실패", zap.Error(err))
	}
	user.LastLoginAt = &now

	return user, nil
}

// assignRandomCar는 무작위 스펙으로 차량 1대를 생성해 사용자에게 배정합니다.
// VIN/번호판은 중복 시 최대 10회까지 재생성합니다.
func (s *AuthService) assignRandomCar(ctx context.Context, userID uint) error {
	spec, err := s.specRepo.Random(ctx)
	if err != nil {
		return err
	}
	if spec == nil {
		return apperrors.Internal("차량 스펙 카탈로그가 비어 있습니다.", nil)
	}

	vin, err := s.uniqueVIN(ctx)
	if err != nil {
		return err
	}

	plate, err := s.uniquePlate(ctx)
	if err != nil {
		return err
	}

	car := &models.Car{
		OwnerID:      &userID,
		SpecID:       spec.ID,
		VIN:          vin,
		LicensePlate: plate,
	}

	if err := s.carRepo.Create(ctx, car); err != nil {
		return err
	}

	s.logger.Info("차량 자동 배정 완료",
		zap.Uint("user_id", userID),
		zap.Uint("car_id", car.ID),
		zap.String("vin", vin),
	)
	return nil
}

func (s *AuthService) uniqueVIN(ctx context.Context) (string, error) {
	for i := 0; i < maxAssignAttempts; i++ {
		vin := utils.GenerateVIN()
		exists, err := s.carRepo.ExistsVIN(ctx, vin)
		if err != nil {
			return "", err
		}
		if !exists {
			return vin, nil
		}
	}
	return "", apperrors.Internal("사용 가능한 VIN 생성 실패", nil)
}

func (s *AuthService) uniquePlate(ctx context.Context) (string, error) {
	for i := 0; i < maxAssignAttempts; i++ {
		plate := utils.GenerateLicensePlate()
		exists, err := s.carRepo.ExistsPlate(ctx, plate)
		if err != nil {
			return "", err
		}
		if !exists {
			return plate, nil
		}
	}
	return "", apperrors.Internal("사용 가능한 번호판 생성 실패", nil)
}
