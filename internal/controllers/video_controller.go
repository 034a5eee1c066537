package controllers

import (
	"net/http"

	"github.com/OuserDev/Connected-Car-BE/internal/logics"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// VideoController 안내 영상 목록 HTTP 요청을 처리합니다.
type VideoController struct {
	BaseController
	videoService *logics.VideoService
}

// NewVideoController VideoController 생성
func NewVideoController(logger *zap.Logger, videoService *logics.VideoService) *VideoController {
	return &VideoController{
		BaseController: NewBaseController(logger),
		videoService:   videoService,
	}
}

// List 영상 목록 (?category= 필터)
func (vc *VideoController) List(c echo.Context) error {
	return vc.OK(c, http.StatusOK, vc.videoService.List(c.QueryParam("category")))
}
