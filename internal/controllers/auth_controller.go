package controllers

import (
	"net/http"

	"github.com/OuserDev/Connected-Car-BE/internal/logics"
	"github.com/OuserDev/Connected-Car-BE/internal/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthController 회원가입/로그인/로그아웃 HTTP 요청을 처리합니다.
type AuthController struct {
	BaseController
	authService    *logics.AuthService
	sessionService *logics.SessionService
}

// NewAuthController AuthController 생성
func NewAuthController(logger *zap.Logger, authService *logics.AuthService, sessionService *logics.SessionService) *AuthController {
	return &AuthController{
		BaseController: NewBaseController(logger),
		authService:    authService,
		sessionService: sessionService,
	}
}

// Register 회원가입. 성공 시 차량 1대가 자동 배정됩니다.
func (ac *AuthController) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := ac.bindAndValidate(c, &req); err != nil {
		return ac.Fail(c, err)
	}

	user, err := ac.authService.Register(c.Request().Context(), req)
	if err != nil {
		return ac.Fail(c, err)
	}

	return ac.OK(c, http.StatusCreated, user)
}

// Login 로그인. 자격 증명 검증 후 세션을 발급합니다.
func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := ac.bindAndValidate(c, &req); err != nil {
		return ac.Fail(c, err)
	}

	user, err := ac.authService.Login(c.Request().Context(), req)
	if err != nil {
		return ac.Fail(c, err)
	}

	if err := ac.sessionService.Create(c, user); err != nil {
		return ac.Fail(c, err)
	}

	return ac.OK(c, http.StatusOK, user)
}

// Logout 로그아웃. 세션을 폐기합니다. 이미 만료된 세션도 성공으로 처리합니다.
func (ac *AuthController) Logout(c echo.Context) error {
	if err := ac.sessionService.Revoke(c); err != nil {
		return ac.Fail(c, err)
	}

	return ac.OK(c, http.StatusOK, map[string]string{"message": "로그아웃되었습니다."})
}
