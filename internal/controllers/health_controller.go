package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/OuserDev/Connected-Car-BE/internal/logics"
	"github.com/OuserDev/Connected-Car-BE/internal/repositories"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HealthController 서버와 의존 서비스(MySQL, Redis, car-api)의 헬스 상태를 보고합니다.
type HealthController struct {
	BaseController
	controlService *logics.ControlService
	startedAt      time.Time
}

// NewHealthController HealthController 생성
func NewHealthController(logger *zap.Logger, controlService *logics.ControlService) *HealthController {
	return &HealthController{
		BaseController: NewBaseController(logger),
		controlService: controlService,
		startedAt:      time.Now(),
	}
}

// Health 헬스 체크. 각 의존 서비스를 독립적으로 보고하고,
// 일부 장애는 degraded로 표시하되 200을 유지합니다.
func (hc *HealthController) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	mysqlHealthy := hc.checkMySQL(ctx)
	redisHealthy := hc.checkRedis(ctx)
	carAPIHealthy, _ := hc.controlService.Health(ctx)

	status := "ok"
	if !mysqlHealthy || !redisHealthy || !carAPIHealthy {
		status = "degraded"
	}

	return hc.OK(c, http.StatusOK, map[string]interface{}{
		"status":         status,
		"mysql":          mysqlHealthy,
		"redis":          redisHealthy,
		"car_api":        carAPIHealthy,
		"uptime_seconds": int64(time.Since(hc.startedAt).Seconds()),
	})
}

func (hc *HealthController) checkMySQL(ctx context.Context) bool {
	if repositories.DBS.MySQL == nil {
		return false
	}
	sqlDB, err := repositories.DBS.MySQL.DB()
	if err != nil {
		hc.logger.Warn("MySQL 핸들 조회 실패", zap.Error(err))
		return false
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		hc.logger.Warn("MySQL 헬스 체크 실패", zap.Error(err))
		return false
	}
	return true
}

func (hc *HealthController) checkRedis(ctx context.Context) bool {
	if repositories.DBS.Redis == nil {
		return false
	}
	if err := repositories.DBS.Redis.Ping(ctx).Err(); err != nil {
		hc.logger.Warn("Redis 헬스 체크 실패", zap.Error(err))
		return false
	}
	return true
}

// Root 루트 경로 안내
func (hc *HealthController) Root(c echo.Context) error {
	return hc.OK(c, http.StatusOK, map[string]string{
		"service": "connected-car-backend",
		"version": "1.0.0",
	})
}
