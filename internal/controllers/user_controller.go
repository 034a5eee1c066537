package controllers

import (
	"net/http"

	"github.com/OuserDev/Connected-Car-BE/internal/logics"
	"github.com/OuserDev/Connected-Car-BE/internal/middlewares"
	"github.com/OuserDev/Connected-Car-BE/internal/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UserController 프로필 조회/수정/탈퇴 HTTP 요청을 처리합니다.
type UserController struct {
	BaseController
	userService    *logics.UserService
	sessionService *logics.SessionService
}

// NewUserController UserController 생성
func NewUserController(logger *zap.Logger, userService *logics.UserService, sessionService *logics.SessionService) *UserController {
	return &UserController{
		BaseController: NewBaseController(logger),
		userService:    userService,
		sessionService: sessionService,
	}
}

// GetProfile 내 프로필 조회
func (uc *UserController) GetProfile(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return uc.Fail(c, err)
	}

	user, err := uc.userService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return uc.Fail(c, err)
	}

	return uc.OK(c, http.StatusOK, user)
}

// UpdateProfile 내 프로필 수정
func (uc *UserController) UpdateProfile(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return uc.Fail(c, err)
	}

	var req models.ProfileUpdateRequest
	if err := uc.bindAndValidate(c, &req); err != nil {
		return uc.Fail(c, err)
	}

	user, err := uc.userService.UpdateProfile(c.Request().Context(), userID, req)
	if err != nil {
		return uc.Fail(c, err)
	}

	return uc.OK(c, http.StatusOK, user)
}

// ChangePassword 비밀번호 변경
func (uc *UserController) ChangePassword(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return uc.Fail(c, err)
	}

	var req models.PasswordChangeRequest
	if err := uc.bindAndValidate(c, &req); err != nil {
		return uc.Fail(c, err)
	}

	if err := uc.userService.ChangePassword(c.Request().Context(), userID, req); err != nil {
		return uc.Fail(c, err)
	}

	return uc.OK(c, http.StatusOK, map[string]string{"message": "비밀번호가 변경되었습니다."})
}

// DeleteAccount 회원 탈퇴. 처리 후 현재 세션을 폐기합니다.
func (uc *UserController) DeleteAccount(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return uc.Fail(c, err)
	}

	if err := uc.userService.Delete(c.Request().Context(), userID); err != nil {
		return uc.Fail(c, err)
	}

	if err := uc.sessionService.Revoke(c); err != nil {
		uc.logger.Warn("탈퇴 후 세션 폐기 실패", zap.Error(err))
	}

	return uc.OK(c, http.StatusOK, map[string]string{"message": "탈퇴 처리되었습니다."})
}
