package controllers

import (
	"net/http"

	"github.com/OuserDev/Connected-Car-BE/internal/logics"
	"github.com/OuserDev/Connected-Car-BE/internal/middlewares"
	"github.com/OuserDev/Connected-Car-BE/internal/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// MarketController 중고거래 게시판 HTTP 요청을 처리합니다.
type MarketController struct {
	BaseController
	marketService *logics.MarketService
}

// NewMarketController MarketController 생성
func NewMarketController(logger *zap.Logger, marketService *logics.MarketService) *MarketController {
	return &MarketController{
		BaseController: NewBaseController(logger),
		marketService:  marketService,
	}
}

// List 게시글 목록 (status/limit/offset 쿼리 파라미터)
func (mc *MarketController) List(c echo.Context) error {
	status := c.QueryParam("status")
	limit := mc.queryInt(c, "limit", 0)
	offset := mc.queryInt(c, "offset", 0)

	posts, err := mc.marketService.List(c.Request().Context(), status, limit, offset)
	if err != nil {
		return mc.Fail(c, err)
	}

	return mc.OK(c, http.StatusOK, posts)
}

// Get 게시글 상세 (조회수 증가)
func (mc *MarketController) Get(c echo.Context) error {
	postID, err := mc.paramUint(c, "id")
	if err != nil {
		return mc.Fail(c, err)
	}

	post, err := mc.marketService.Get(c.Request().Context(), postID)
	if err != nil {
		return mc.Fail(c, err)
	}

	return mc.OK(c, http.StatusOK, post)
}

// Create 게시글 작성
func (mc *MarketController) Create(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return mc.Fail(c, err)
	}

	var req models.MarketPostCreateRequest
	if err := mc.bindAndValidate(c, &req); err != nil {
		return mc.Fail(c, err)
	}

	post, err := mc.marketService.Create(c.Request().Context(), userID, req)
	if err != nil {
		return mc.Fail(c, err)
	}

	return mc.OK(c, http.StatusCreated, post)
}

// Update 게시글 수정
func (mc *MarketController) Update(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return mc.Fail(c, err)
	}

	postID, err := mc.paramUint(c, "id")
	if err != nil {
		return mc.Fail(c, err)
	}

	var req models.MarketPostUpdateRequest
	if err := mc.bindAndValidate(c, &req); err != nil {
		return mc.Fail(c, err)
	}

	post, err := mc.marketService.Update(c.Request().Context(), userID, postID, req)
	if err != nil {
		return mc.Fail(c, err)
	}

	return mc.OK(c, http.StatusOK, post)
}

// Delete 게시글 삭제
func (mc *MarketController) Delete(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return mc.Fail(c, err)
	}

	postID, err := mc.paramUint(c, "id")
	if err != nil {
		return mc.Fail(c, err)
	}

	if err := mc.marketService.Delete(c.Request().Context(), userID, postID); err != nil {
		return mc.Fail(c, err)
	}

	return mc.OK(c, http.StatusOK, map[string]string{"message": "게시글이 삭제되었습니다."})
}
