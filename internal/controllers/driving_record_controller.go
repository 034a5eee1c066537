package controllers

import (
	"net/http"

	"github.com/OuserDev/Connected-Car-BE/internal/logics"
	"github.com/OuserDev/Connected-Car-BE/internal/middlewares"
	"github.com/OuserDev/Connected-Car-BE/internal/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// DrivingRecordController 주행 기록 HTTP 요청을 처리합니다.
type DrivingRecordController struct {
	BaseController
	recordService *logics.DrivingRecordService
}

// NewDrivingRecordController DrivingRecordController 생성
func NewDrivingRecordController(logger *zap.Logger, recordService *logics.DrivingRecordService) *DrivingRecordController {
	return &DrivingRecordController{
		BaseController: NewBaseController(logger),
		recordService:  recordService,
	}
}

// List 주행 기록 목록 (?car_id= 필터)
func (dc *DrivingRecordController) List(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return dc.Fail(c, err)
	}

	carID := uint(dc.queryInt(c, "car_id", 0))

	records, err := dc.recordService.List(c.Request().Context(), userID, carID)
	if err != nil {
		return dc.Fail(c, err)
	}

	return dc.OK(c, http.StatusOK, records)
}

// Create 주행 기록 등록
func (dc *DrivingRecordController) Create(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return dc.Fail(c, err)
	}

	var req models.DrivingRecordCreateRequest
	if err := dc.bindAndValidate(c, &req); err != nil {
		return dc.Fail(c, err)
	}

	record, err := dc.recordService.Create(c.Request().Context(), userID, req)
	if err != nil {
		return dc.Fail(c, err)
	}

	return dc.OK(c, http.StatusCreated, record)
}

// Summary 주행 기록 합계
func (dc *DrivingRecordController) Summary(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return dc.Fail(c, err)
	}

	summary, err := dc.recordService.Summary(c.Request().Context(), userID)
	if err != nil {
		return dc.Fail(c, err)
	}

	return dc.OK(c, http.StatusOK, summary)
}
