package controllers

import (
	"net/http"

	"github.com/OuserDev/Connected-Car-BE/internal/logics"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SpecController 차량 스펙 카탈로그 HTTP 요청을 처리합니다.
type SpecController struct {
	BaseController
	specService *logics.SpecService
}

// NewSpecController SpecController 생성
func NewSpecController(logger *zap.Logger, specService *logics.SpecService) *SpecController {
	return &SpecController{
		BaseController: NewBaseController(logger),
		specService:    specService,
	}
}

// List 전체 카탈로그
func (sc *SpecController) List(c echo.Context) error {
	specs, err := sc.specService.List(c.Request().Context())
	if err != nil {
		return sc.Fail(c, err)
	}

	return sc.OK(c, http.StatusOK, specs)
}

// Get 스펙 상세
func (sc *SpecController) Get(c echo.Context) error {
	specID, err := sc.paramUint(c, "id")
	if err != nil {
		return sc.Fail(c, err)
	}

	spec, err := sc.specService.Get(c.Request().Context(), specID)
	if err != nil {
		return sc.Fail(c, err)
	}

	return sc.OK(c, http.StatusOK, spec)
}

// Search 키워드 검색 (?q= 쿼리 파라미터)
func (sc *SpecController) Search(c echo.Context) error {
	specs, err := sc.specService.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return sc.Fail(c, err)
	}

	return sc.OK(c, http.StatusOK, specs)
}
