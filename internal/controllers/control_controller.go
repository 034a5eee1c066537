package controllers

import (
	"net/http"

	"github.com/OuserDev/Connected-Car-BE/internal/logics"
	"github.com/OuserDev/Connected-Car-BE/internal/middlewares"
	"github.com/OuserDev/Connected-Car-BE/internal/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ControlController 차량 상태 조회와 제어 명령 HTTP 요청을 처리합니다.
type ControlController struct {
	BaseController
	controlService *logics.ControlService
}

// NewControlController ControlController 생성
func NewControlController(logger *zap.Logger, controlService *logics.ControlService) *ControlController {
	return &ControlController{
		BaseController: NewBaseController(logger),
		controlService: controlService,
	}
}

// GetStatus 차량 상태 조회
func (cc *ControlController) GetStatus(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return cc.Fail(c, err)
	}

	carID, err := cc.paramUint(c, "id")
	if err != nil {
		return cc.Fail(c, err)
	}

	status, err := cc.controlService.GetStatus(c.Request().Context(), carID, userID)
	if err != nil {
		return cc.Fail(c, err)
	}

	return cc.OK(c, http.StatusOK, status)
}

// Control 제어 명령 전달
func (cc *ControlController) Control(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return cc.Fail(c, err)
	}

	carID, err := cc.paramUint(c, "id")
	if err != nil {
		return cc.Fail(c, err)
	}

	var req models.ControlRequest
	if err := cc.bindAndValidate(c, &req); err != nil {
		return cc.Fail(c, err)
	}

	result, err := cc.controlService.Control(c.Request().Context(), carID, userID, req.Property, req.Value)
	if err != nil {
		return cc.Fail(c, err)
	}

	return cc.OK(c, http.StatusOK, result)
}

// GetLocation 차량 위치 조회
func (cc *ControlController) GetLocation(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return cc.Fail(c, err)
	}

	carID, err := cc.paramUint(c, "id")
	if err != nil {
		return cc.Fail(c, err)
	}

	location, err := cc.controlService.GetLocation(c.Request().Context(), carID, userID)
	if err != nil {
		return cc.Fail(c, err)
	}

	return cc.OK(c, http.StatusOK, location)
}

// GetDiagnostics 차량 진단 정보 조회
func (cc *ControlController) GetDiagnostics(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return cc.Fail(c, err)
	}

	carID, err := cc.paramUint(c, "id")
	if err != nil {
		return cc.Fail(c, err)
	}

	diagnostics, err := cc.controlService.GetDiagnostics(c.Request().Context(), carID, userID)
	if err != nil {
		return cc.Fail(c, err)
	}

	return cc.OK(c, http.StatusOK, diagnostics)
}
