package controllers

import (
	"net/http"
	"strconv"

	"github.com/OuserDev/Connected-Car-BE/internal/models"
	apperrors "github.com/OuserDev/Connected-Car-BE/pkg/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// BaseController는 모든 컨트롤러가 공유하는 응답/바인딩 헬퍼를 제공합니다.
// 성공/실패 응답은 항상 models.APIResponse 포맷을 사용합니다.
type BaseController struct {
	logger *zap.Logger
}

// NewBaseController BaseController 생성
func NewBaseController(logger *zap.Logger) BaseController {
	return BaseController{logger: logger}
}

// OK 성공 응답
func (bc *BaseController) OK(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, models.NewSuccessResponse(data))
}

// Fail은 에러를 AppError로 정규화해 상태 코드와 응답 본문을 만듭니다.
// 5xx는 내부 원인까지 로그로 남기고, 응답에는 사용자 메시지만 싣습니다.
func (bc *BaseController) Fail(c echo.Context, err error) error {
	appErr := apperrors.FromError(err)
	status := apperrors.ToHTTPStatus(appErr.Code())

	if status >= http.StatusInternalServerError {
		apperrors.LogError(bc.logger, err, "요청 처리 실패",
			zap.String("path", c.Request().URL.Path),
			zap.String("method", c.Request().Method),
		)
	}

	return c.JSON(status, models.NewErrorResponse(appErr.Code(), appErr.Message()))
}

// bindAndValidate는 요청 본문 바인딩과 validator 태그 검증을 수행합니다.
func (bc *BaseController) bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperrors.InvalidArgument("요청 본문을 해석할 수 없습니다.")
	}
	if err := c.Validate(req); err != nil {
		return apperrors.InvalidArgument(err.Error())
	}
	return nil
}

// paramUint는 경로 파라미터를 uint로 변환합니다.
func (bc *BaseController) paramUint(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, apperrors.InvalidArgument("올바르지 않은 " + name + " 값입니다.")
	}
	return uint(v), nil
}

// queryInt는 쿼리 파라미터를 int로 변환합니다. 비어 있으면 기본값을 반환합니다.
func (bc *BaseController) queryInt(c echo.Context, name string, defaultValue int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return v
}
