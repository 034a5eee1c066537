package middlewares

import (
	"net/http"

	"github.com/OuserDev/Connected-Car-BE/internal/logics"
	"github.com/OuserDev/Connected-Car-BE/internal/models"
	apperrors "github.com/OuserDev/Connected-Car-BE/pkg/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// 컨텍스트 키 상수
const (
	UserIDKey   = "user_id"
	UsernameKey = "username"
)

// SessionAuthMiddleware는 세션 인증을 처리하는 미들웨어입니다.
// 세션 검증은 SessionService에 위임하고, 실패 시 핸들러 실행 전에 401로 차단합니다.
type SessionAuthMiddleware struct {
	sessionService *logics.SessionService
	logger         *zap.Logger
}

// NewSessionAuthMiddleware는 새로운 세션 인증 미들웨어를 생성합니다.
func NewSessionAuthMiddleware(sessionService *logics.SessionService, logger *zap.Logger) *SessionAuthMiddleware {
	return &SessionAuthMiddleware{
		sessionService: sessionService,
		logger:         logger,
	}
}

// Handle는 요청의 세션을 검증하는 핸들러 함수를 반환합니다.
func (m *SessionAuthMiddleware) Handle() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, username, err := m.sessionService.Validate(c)
			if err != nil {
				m.sessionService.Reset(c)
				m.logger.Info("세션 인증 실패",
					zap.String("error", err.Error()),
					zap.String("ip", c.RealIP()),
					zap.String("path", c.Request().URL.Path),
				)
				appErr := apperrors.FromError(err)
				return c.JSON(http.StatusUnauthorized, models.NewErrorResponse(appErr.Code(), appErr.Message()))
			}

			// 검증된 사용자 정보를 컨텍스트에 저장
			c.Set(UserIDKey, userID)
			c.Set(UsernameKey, username)

			return next(c)
		}
	}
}

// GetUserIDFromContext는 미들웨어가 저장한 사용자 ID를 꺼냅니다.
func GetUserIDFromContext(c echo.Context) (uint, error) {
	userID, ok := c.Get(UserIDKey).(uint)
	if !ok || userID == 0 {
		return 0, apperrors.Unauthenticated("로그인이 필요합니다.")
	}
	return userID, nil
}

// GetUsernameFromContext는 미들웨어가 저장한 사용자 이름을 꺼냅니다.
func GetUsernameFromContext(c echo.Context) (string, error) {
	username, ok := c.Get(UsernameKey).(string)
	if !ok {
		return "", apperrors.Unauthenticated("로그인이 필요합니다.")
	}
	return username, nil
}
