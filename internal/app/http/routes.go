package httpEngine

import (
	"time"

	"github.com/OuserDev/Connected-Car-BE/configs"
	"github.com/OuserDev/Connected-Car-BE/internal/controllers"
	"github.com/OuserDev/Connected-Car-BE/internal/logics"
	"github.com/OuserDev/Connected-Car-BE/internal/middlewares"
	"github.com/OuserDev/Connected-Car-BE/internal/repositories"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RegisterRoutes는 서버의 모든 라우트를 등록합니다.
func RegisterRoutes(e *echo.Echo) {
	logger := configs.Logger

	// 레포지토리 초기화
	userRepo := repositories.NewUserRepository(repositories.DBS.MySQL)
	carRepo := repositories.NewCarRepository(repositories.DBS.MySQL)
	specRepo := repositories.NewSpecRepository(repositories.DBS.MySQL)
	historyRepo := repositories.NewHistoryRepository(repositories.DBS.MySQL)
	cardRepo := repositories.NewCardRepository(repositories.DBS.MySQL)
	photoRepo := repositories.NewPhotoRepository(repositories.DBS.MySQL)
	marketRepo := repositories.NewMarketRepository(repositories.DBS.MySQL)
	communityRepo := repositories.NewCommunityRepository(repositories.DBS.MySQL)
	recordRepo := repositories.NewDrivingRecordRepository(repositories.DBS.MySQL)

	// 사진 스토리지 백엔드 선택
	storage := newFileStorage(logger)

	// car-api 클라이언트
	carAPIClient := logics.NewCarAPIClient(
		logger,
		configs.Configs.CarAPI.BaseURL,
		time.Duration(configs.Configs.CarAPI.TimeoutSeconds)*time.Second,
		time.Duration(configs.Configs.CarAPI.HealthTimeoutSeconds)*time.Second,
		logics.RetryPolicy{
			MaxAttempts:     configs.Configs.CarAPI.RetryMaxAttempts,
			InitialInterval: time.Duration(configs.Configs.CarAPI.RetryInitialIntervalMs) * time.Millisecond,
			Multiplier:      configs.Configs.CarAPI.RetryMultiplier,
		},
	)

	// 서비스 초기화
	sessionService := logics.NewSessionService(
		logger,
		repositories.DBS.Redis,
		configs.Configs.Session.CookieName,
		configs.Configs.Session.MaxAgeSeconds,
		configs.Configs.Session.Secure,
	)
	authService := logics.NewAuthService(logger, userRepo, carRepo, specRepo)
	userService := logics.NewUserService(logger, userRepo, carRepo)
	carService := logics.NewCarService(logger, carRepo, specRepo, historyRepo)
	controlService := logics.NewControlService(logger, carRepo, historyRepo, carAPIClient)
	cardService := logics.NewCardService(logger, cardRepo)
	photoService := logics.NewPhotoService(logger, photoRepo, storage, logics.PhotoLimits{
		MaxPerUser:  configs.Configs.Uploads.MaxPhotosPerUser,
		MaxBytes:    configs.Configs.Uploads.MaxFileSizeBytes,
		MaxWidth:    configs.Configs.Uploads.MaxWidth,
		MinWidth:    configs.Configs.Uploads.MinWidth,
		JpegQuality: configs.Configs.Uploads.JpegQuality,
	})
	marketService := logics.NewMarketService(logger, marketRepo)
	communityService := logics.NewCommunityService(logger, communityRepo)
	recordService := logics.NewDrivingRecordService(logger, recordRepo, carRepo)
	videoService := logics.NewVideoService()
	specService := logics.NewSpecService(logger, specRepo)

	// 컨트롤러 초기화
	authController := controllers.NewAuthController(logger, authService, sessionService)
	userController := controllers.NewUserController(logger, userService, sessionService)
	carController := controllers.NewCarController(logger, carService)
	controlController := controllers.NewControlController(logger, controlService)
	cardController := controllers.NewCardController(logger, cardService)
	photoController := controllers.NewPhotoController(logger, photoService)
	marketController := controllers.NewMarketController(logger, marketService)
	communityController := controllers.NewCommunityController(logger, communityService)
	recordController := controllers.NewDrivingRecordController(logger, recordService)
	videoController := controllers.NewVideoController(logger, videoService)
	specController := controllers.NewSpecController(logger, specService)
	healthController := controllers.NewHealthController(logger, controlService)

	// 공개 엔드포인트 (세션 미들웨어 없음)
	e.GET("/", healthController.Root)
	e.GET("/health", healthController.Health)
	e.POST("/api/auth/register", authController.Register)
	e.POST("/api/auth/login", authController.Login)
	e.GET("/api/notices", communityController.ListNotices)
	e.GET("/api/notices/:id", communityController.GetNotice)
	e.GET("/api/faqs", communityController.ListFAQs)
	e.GET("/api/videos", videoController.List)
	e.GET("/api/specs", specController.List)
	e.GET("/api/specs/search", specController.Search)
	e.GET("/api/specs/:id", specController.Get)

	// 인증이 필요한 엔드포인트
	sessionAuth := middlewares.NewSessionAuthMiddleware(sessionService, logger)
	api := e.Group("/api")
	api.Use(sessionAuth.Handle())

	api.POST("/auth/logout", authController.Logout)

	// 프로필
	api.GET("/users/me", userController.GetProfile)
	api.PUT("/users/me", userController.UpdateProfile)
	api.PUT("/users/me/password", userController.ChangePassword)
	api.DELETE("/users/me", userController.DeleteAccount)

	// 차량
	api.GET("/cars", carController.List)
	api.POST("/cars", carController.Register)
	api.GET("/cars/:id", carController.Get)
	api.DELETE("/cars/:id", carController.Delete)
	api.GET("/cars/:id/history", carController.ListHistory)

	// 차량 상태/제어
	api.GET("/cars/:id/status", controlController.GetStatus)
	api.POST("/cars/:id/control", controlController.Control)
	api.GET("/cars/:id/location", controlController.GetLocation)
	api.GET("/cars/:id/diagnostics", controlController.GetDiagnostics)

	// 결제 카드
	api.GET("/cards", cardController.List)
	api.POST("/cards", cardController.Register)
	api.PUT("/cards/:id/default", cardController.SetDefault)
	api.DELETE("/cards/:id", cardController.Delete)

	// 차량 사진
	api.GET("/photos", photoController.List)
	api.POST("/photos", photoController.Upload)
	api.GET("/photos/:id/file", photoController.GetFile)
	api.PUT("/photos/:id/main", photoController.SetMain)
	api.DELETE("/photos/:id", photoController.Delete)

	// 중고거래
	api.GET("/market", marketController.List)
	api.POST("/market", marketController.Create)
	api.GET("/market/:id", marketController.Get)
	api.PUT("/market/:id", marketController.Update)
	api.DELETE("/market/:id", marketController.Delete)

	// 주행 기록
	api.GET("/driving-records", recordController.List)
	api.POST("/driving-records", recordController.Create)
	api.GET("/driving-records/summary", recordController.Summary)
}

// newFileStorage는 설정에 따라 local 또는 s3 스토리지를 선택합니다.
func newFileStorage(logger *zap.Logger) logics.FileStorage {
	if configs.Configs.Uploads.Backend == "s3" {
		return logics.NewS3Storage(repositories.DBS.S3, configs.Configs.S3.BucketName)
	}

	storage, err := logics.NewLocalStorage(configs.Configs.Uploads.Dir)
	if err != nil {
		logger.Fatal("사진 저장 디렉토리 초기화 실패", zap.Error(err))
	}
	return storage
}
