package controllers

import (
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	"github.com/OuserDev/Connected-Car-BE/internal/logics"
	"github.com/OuserDev/Connected-Car-BE/internal/middlewares"
	"github.com/OuserDev/Connected-Car-BE/internal/models"
	apperrors "github.com/OuserDev/Connected-Car-BE/pkg/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PhotoController 차량 사진 HTTP 요청을 처리합니다.
// 업로드는 multipart(photo 필드)와 base64 JSON 두 가지를 받습니다.
type PhotoController struct {
	BaseController
	photoService *logics.PhotoService
}

// NewPhotoController PhotoController 생성
func NewPhotoController(logger *zap.Logger, photoService *logics.PhotoService) *PhotoController {
	return &PhotoController{
		BaseController: NewBaseController(logger),
		photoService:   photoService,
	}
}

// List 내 사진 목록
func (pc *PhotoController) List(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return pc.Fail(c, err)
	}

	photos, err := pc.photoService.List(c.Request().Context(), userID)
	if err != nil {
		return pc.Fail(c, err)
	}

	return pc.OK(c, http.StatusOK, photos)
}

// Upload 사진 업로드
func (pc *PhotoController) Upload(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return pc.Fail(c, err)
	}

	data, originalName, err := pc.readUpload(c)
	if err != nil {
		return pc.Fail(c, err)
	}

	photo, err := pc.photoService.Upload(c.Request().Context(), userID, data, originalName)
	if err != nil {
		return pc.Fail(c, err)
	}

	return pc.OK(c, http.StatusCreated, photo)
}

// readUpload는 multipart 또는 base64 JSON 본문에서 원본 바이트를 읽습니다.
func (pc *PhotoController) readUpload(c echo.Context) ([]byte, string, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)

	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		file, err := c.FormFile("photo")
		if err != nil {
			return nil, "", apperrors.InvalidArgument("photo 파일이 필요합니다.")
		}

		src, err := file.Open()
		if err != nil {
			return nil, "", apperrors.Internal("업로드 파일 열기 실패", err)
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			return nil, "", apperrors.Internal("업로드 파일 읽기 실패", err)
		}

		return data, file.Filename, nil
	}

	var req models.PhotoUploadRequest
	if err := pc.bindAndValidate(c, &req); err != nil {
		return nil, "", err
	}

	// data URI 접두사 제거 (data:image/png;base64,...)
	encoded := req.ImageData
	if idx := strings.Index(encoded, ";base64,"); idx >= 0 {
		encoded = encoded[idx+len(";base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", apperrors.InvalidArgument("base64 이미지를 해석할 수 없습니다.")
	}

	return data, req.OriginalName, nil
}

// GetFile 사진 파일 다운로드. S3 백엔드는 presigned URL로 리다이렉트합니다.
func (pc *PhotoController) GetFile(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return pc.Fail(c, err)
	}

	photoID, err := pc.paramUint(c, "id")
	if err != nil {
		return pc.Fail(c, err)
	}

	data, contentType, redirectURL, err := pc.photoService.GetFile(c.Request().Context(), userID, photoID)
	if err != nil {
		return pc.Fail(c, err)
	}

	if redirectURL != "" {
		return c.Redirect(http.StatusFound, redirectURL)
	}

	return c.Blob(http.StatusOK, contentType, data)
}

// SetMain 대표 사진 전환
func (pc *PhotoController) SetMain(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return pc.Fail(c, err)
	}

	photoID, err := pc.paramUint(c, "id")
	if err != nil {
		return pc.Fail(c, err)
	}

	if err := pc.photoService.SetMain(c.Request().Context(), userID, photoID); err != nil {
		return pc.Fail(c, err)
	}

	return pc.OK(c, http.StatusOK, map[string]string{"message": "대표 사진이 변경되었습니다."})
}

// Delete 사진 삭제
func (pc *PhotoController) Delete(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return pc.Fail(c, err)
	}

	photoID, err := pc.paramUint(c, "id")
	if err != nil {
		return pc.Fail(c, err)
	}

	if err := pc.photoService.Delete(c.Request().Context(), userID, photoID); err != nil {
		return pc.Fail(c, err)
	}

	return pc.OK(c, http.StatusOK, map[string]string{"message": "사진이 삭제되었습니다."})
}
