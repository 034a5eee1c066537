package controllers

import (
	"net/http"

	"github.com/OuserDev/Connected-Car-BE/internal/logics"
	"github.com/OuserDev/Connected-Car-BE/internal/middlewares"
	"github.com/OuserDev/Connected-Car-BE/internal/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CarController 차량 등록/조회/삭제와 이력 조회 HTTP 요청을 처리합니다.
type CarController struct {
	BaseController
	carService *logics.CarService
}

// NewCarController CarController 생성
func NewCarController(logger *zap.Logger, carService *logics.CarService) *CarController {
	return &CarController{
		BaseController: NewBaseController(logger),
		carService:     carService,
	}
}

// List 내 차량 목록
func (cc *CarController) List(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return cc.Fail(c, err)
	}

	cars, err := cc.carService.List(c.Request().Context(), userID)
	if err != nil {
		return cc.Fail(c, err)
	}

	return cc.OK(c, http.StatusOK, cars)
}

// Get 차량 상세
func (cc *CarController) Get(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return cc.Fail(c, err)
	}

	carID, err := cc.paramUint(c, "id")
	if err != nil {
		return cc.Fail(c, err)
	}

	car, err := cc.carService.Get(c.Request().Context(), carID, userID)
	if err != nil {
		return cc.Fail(c, err)
	}

	return cc.OK(c, http.StatusOK, car)
}

// Register 차량 등록
func (cc *CarController) Register(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return cc.Fail(c, err)
	}

	var req models.CarRegisterRequest
	if err := cc.bindAndValidate(c, &req); err != nil {
		return cc.Fail(c, err)
	}

	car, err := cc.carService.Register(c.Request().Context(), userID, req)
	if err != nil {
		return cc.Fail(c, err)
	}

	return cc.OK(c, http.StatusCreated, car)
}

// Delete 차량 삭제 (미배정 풀로 반환)
func (cc *CarController) Delete(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return cc.Fail(c, err)
	}

	carID, err := cc.paramUint(c, "id")
	if err != nil {
		return cc.Fail(c, err)
	}

	if err := cc.carService.Delete(c.Request().Context(), carID, userID); err != nil {
		return cc.Fail(c, err)
	}

	return cc.OK(c, http.StatusOK, map[string]string{"message": "차량이 삭제되었습니다."})
}

// ListHistory 차량 제어 이력 (최신순, limit/offset 페이지네이션)
func (cc *CarController) ListHistory(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return cc.Fail(c, err)
	}

	carID, err := cc.paramUint(c, "id")
	if err != nil {
		return cc.Fail(c, err)
	}

	limit := cc.queryInt(c, "limit", 0)
	offset := cc.queryInt(c, "offset", 0)

	page, err := cc.carService.ListHistory(c.Request().Context(), carID, userID, limit, offset)
	if err != nil {
		return cc.Fail(c, err)
	}

	return cc.OK(c, http.StatusOK, page)
}
