package httpEngine

import (
	"context"
	"net/http"

	"github.com/OuserDev/Connected-Car-BE/configs"
	"github.com/OuserDev/Connected-Car-BE/internal/models"
	apperrors "github.com/OuserDev/Connected-Car-BE/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	e *echo.Echo
}

// requestValidator는 echo의 Validator 인터페이스를 validator/v10으로 구현합니다.
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func initCustomRequestLoggerConfig() *middleware.RequestLoggerConfig {
	return &middleware.RequestLoggerConfig{
		// 루트/헬스 체크는 로그에서 제외
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return path == "/" || path == "/health"
		},
		HandleError: true,

		LogLatency:      true,
		LogRemoteIP:     true,
		LogMethod:       true,
		LogURI:          true,
		LogURIPath:      true,
		LogRoutePath:    true,
		LogRequestID:    true,
		LogUserAgent:    true,
		LogStatus:       true,
		LogError:        true,
		LogResponseSize: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("remote_ip", v.RemoteIP),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.String("route", v.RoutePath),
				zap.String("user_agent", v.UserAgent),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
				zap.Int64("response_size", v.ResponseSize),
			}

			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
				configs.Logger.Error("Request log with error", fields...)
				return nil
			}

			configs.Logger.Info("Request log", fields...)
			return nil
		},
	}
}

// NewServer instantiates Echo, initializes session store, and registers routes
func NewServer() *Server {
	e := echo.New()
	e.HideBanner = true
	e.IPExtractor = echo.ExtractIPFromRealIPHeader()
	e.Validator = &requestValidator{validate: validator.New()}

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     configs.Configs.Service.AllowOrigins,
		AllowCredentials: true, // 세션 쿠키 전송 허용
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	e.Use(middleware.RequestLoggerWithConfig(*initCustomRequestLoggerConfig()))
	e.Use(middleware.Recover())

	// 세션 쿠키 서명 키는 환경 변수에서만 읽습니다
	store := sessions.NewCookieStore([]byte(configs.Configs.Secrets.SessionSecret))
	e.Use(session.Middleware(store))

	// 라우팅되지 않은 에러도 단일 응답 포맷으로 변환
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		appErr := apperrors.FromError(err)
		status := apperrors.ToHTTPStatus(appErr.Code())

		if jsonErr := c.JSON(status, models.NewErrorResponse(appErr.Code(), appErr.Message())); jsonErr != nil {
			configs.Logger.Error("에러 응답 직렬화 실패", zap.Error(jsonErr))
		}
	}

	RegisterRoutes(e)

	return &Server{e: e}
}

// Start는 설정된 포트로 HTTP 서버를 시작합니다.
func (s *Server) Start() error {
	return s.e.Start(":" + configs.Configs.Service.HttpPort)
}

// Shutdown은 진행 중인 요청을 기다리며 서버를 종료합니다.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

// Echo는 테스트를 위해 내부 echo 인스턴스를 노출합니다.
func (s *Server) Echo() *echo.Echo {
	return s.e
}
