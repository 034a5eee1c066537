package logics

import (
	"context"

	"github.com/OuserDev/Connected-Car-BE/internal/models"
	"github.com/OuserDev/Connected-Car-BE/internal/repositories"
	"github.com/OuserDev/Connected-Car-BE/internal/utils"
	apperrors "github.com/OuserDev/Connected-Car-BE/pkg/errors"

	"go.uber.org/zap"
)

// UserService 프로필 조회/수정과 탈퇴를 담당하는 서비스입니다.
type UserService struct {
	logger   *zap.Logger
	userRepo repositories.UserRepository
	carRepo  repositories.CarRepository
}

// NewUserService 사용자 서비스 생성
func NewUserService(logger *zap.Logger, userRepo repositories.UserRepository, carRepo repositories.CarRepository) *UserService {
	return &UserService{
		logger:   logger,
		userRepo: userRepo,
		carRepo:  carRepo,
	}
}

// GetProfile 프로필 조회
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("사용자 조회 실패", err)
	}
	if user == nil || user.Status == models.UserStatusDeleted {
		return nil, apperrors.NotFound("사용자를 찾을 수 없습니다.")
	}
	return user, nil
}

// UpdateProfile 프로필 수정. nil 필드는 변경하지 않습니다.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, req models.ProfileUpdateRequest) (*models.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperrors.Internal("프로필 수정 실패", err)
	}

	return user, nil
}

// ChangePassword 비밀번호 변경. 현재 비밀번호 검증 후 재해싱합니다.
func (s *UserService) ChangePassword(ctx context.Context, userID uint, req models.PasswordChangeRequest) error {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	if err := utils.VerifyPassword(user.Password, req.CurrentPassword, user.Salt); err != nil {
		return apperrors.InvalidArgument("현재 비밀번호가 올바르지 않습니다.")
	}

	hash, salt, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.Internal("비밀번호 해싱 실패", err)
	}

	user.Password = hash
	user.Salt = salt

	if err := s.userRepo.Update(ctx, user); err != nil {
		return apperrors.Internal("비밀번호 변경 실패", err)
	}

	return nil
}

// Delete 회원 탈퇴. 행을 지우지 않고 status를 deleted로 전환하며,
// 보유 차량은 미배정 풀로 되돌립니다.
func (s *UserService) Delete(ctx context.Context, userID uint) error {
	if _, err := s.GetProfile(ctx, userID); err != nil {
		return err
	}

	if err := s.userRepo.UpdateStatus(ctx, userID, models.UserStatusDeleted); err != nil {
		return apperrors.Internal("회원 탈퇴 처리 실패", err)
	}

	if err := s.carRepo.ReleaseAllByOwner(ctx, userID); err != nil {
		s.logger.Error("탈퇴 사용자 차량 반환 실패",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
	}

	return nil
}
