package controllers

import (
	"net/http"

	"github.com/OuserDev/Connected-Car-BE/internal/logics"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CommunityController 공지사항/FAQ HTTP 요청을 처리합니다.
type CommunityController struct {
	BaseController
	communityService *logics.CommunityService
}

// NewCommunityController CommunityController 생성
func NewCommunityController(logger *zap.Logger, communityService *logics.CommunityService) *CommunityController {
	return &CommunityController{
		BaseController:   NewBaseController(logger),
		communityService: communityService,
	}
}

// ListNotices 공지 목록
func (cc *CommunityController) ListNotices(c echo.Context) error {
	notices, err := cc.communityService.ListNotices(c.Request().Context())
	if err != nil {
		return cc.Fail(c, err)
	}

	return cc.OK(c, http.StatusOK, notices)
}

// GetNotice 공지 상세
func (cc *CommunityController) GetNotice(c echo.Context) error {
	noticeID, err := cc.paramUint(c, "id")
	if err != nil {
		return cc.Fail(c, err)
	}

	notice, err := cc.communityService.GetNotice(c.Request().Context(), noticeID)
	if err != nil {
		return cc.Fail(c, err)
	}

	return cc.OK(c, http.StatusOK, notice)
}

// ListFAQs FAQ 목록
func (cc *CommunityController) ListFAQs(c echo.Context) error {
	faqs, err := cc.communityService.ListFAQs(c.Request().Context())
	if err != nil {
		return cc.Fail(c, err)
	}

	return cc.OK(c, http.StatusOK, faqs)
}
