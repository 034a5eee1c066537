package repositories

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"time"

	"github.com/OuserDev/Connected-Car-BE/configs"
	"github.com/OuserDev/Connected-Car-BE/internal/loggers"
	"github.com/OuserDev/Connected-Car-BE/internal/models"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type dbs struct {
	Redis *redis.Client
	MySQL *gorm.DB
	S3    *s3.Client
}

// Singleton 패턴으로 한번만 초기화
var DBS dbs

func Init() {
	initRedis()
	initMySQL()
	if configs.Configs.Uploads.Backend == "s3" {
		initS3()
	}
}

// initRedis initializes the Redis connection
func initRedis() {
	opt := &redis.Options{
		Addr:     configs.Configs.Redis.Address,
		Username: configs.Configs.Redis.Username,
		Password: configs.Configs.Secrets.RedisPassword,
		DB:       configs.Configs.Redis.Database,
	}

	// TLS가 true이면 TLSConfig 설정
	if configs.Configs.Redis.Tls {
		opt.TLSConfig = &tls.Config{}
	}

	DBS.Redis = redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := DBS.Redis.Ping(ctx).Result()
	if err != nil {
		configs.Logger.Fatal("Failed to connect to Redis", zap.Error(err))
		return
	}

	configs.Logger.Info("Redis connected successfully", zap.String("result", result))
}

// initMySQL initializes the MySQL connection
func initMySQL() {
	host, port, err := net.SplitHostPort(configs.Configs.MySQL.Address)
	if err != nil {
		configs.Logger.Fatal("Invalid MySQL address", zap.Error(err))
		return
	}

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		configs.Configs.MySQL.Username,
		configs.Configs.Secrets.MySQLPassword,
		host,
		port,
		configs.Configs.MySQL.Database,
	)

	// Create custom GORM logger
	gormLogger := loggers.NewZapGormLogger(
		logger.Warn,          // LogLevel
		200*time.Millisecond, // SlowThreshold
		true,                 // IgnoreRecordNotFoundError
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		configs.Logger.Fatal("Failed to connect to MySQL", zap.Error(err))
		return
	}

	// 자동 마이그레이션 실행
	err = autoMigrateInOrder(db)
	if err != nil {
		configs.Logger.Fatal("Failed to migrate database", zap.Error(err))
		return
	}

	DBS.MySQL = db
	configs.Logger.Info("MySQL connected successfully")

	seedVehicleSpecs(db)
}

func autoMigrateInOrder(db *gorm.DB) error {
	// 의존 관계에 따른 마이그레이션 순서
	modelsInOrder := []interface{}{
		&models.User{},
		&models.VehicleSpec{},
		&models.Car{},
		&models.CarHistory{},
		&models.RegisteredCard{},
		&models.CarPhoto{},
		&models.MarketPost{},
		&models.Notice{},
		&models.FAQ{},
		&models.DrivingRecord{},
	}

	for _, model := range modelsInOrder {
		if err := db.AutoMigrate(model); err != nil {
			return err
		}
	}
	return nil
}

func initS3() {
	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(configs.Configs.S3.Region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				configs.Configs.Secrets.S3AccessKey,
				configs.Configs.Secrets.S3SecretKey,
				"",
			),
		),
	)
	if err != nil {
		configs.Logger.Fatal("AWS S3 설정 로드 실패", zap.Error(err))
		return
	}

	// S3 클라이언트 생성
	DBS.S3 = s3.NewFromConfig(cfg)
	configs.Logger.Info("S3 클라이언트가 성공적으로 초기화되었습니다")
}

// seedVehicleSpecs는 카탈로그가 비어 있을 때 기본 차량 스펙을 채웁니다.
// 회원가입 시 무작위 차량 배정에 사용됩니다.
func seedVehicleSpecs(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.VehicleSpec{}).Count(&count).Error; err != nil {
		configs.Logger.Error("Failed to count vehicle specs", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	specs := []models.VehicleSpec{
		{Brand: "Hyundai", Model: "IONIQ 5", Trim: "Long Range AWD", EngineType: "electric", FuelType: "electric", Seats: 5, MaxSpeedKmh: 185, RangeKm: 458, Category: "suv", PriceMin: 52000000, PriceMax: 61000000, WidthMm: 1890, LengthMm: 4635, HeightMm: 1605, Efficiency: 5.1},
		{Brand: "Hyundai", Model: "Sonata", Trim: "2.0 Premium", EngineType: "gasoline", Displacement: 1999, FuelType: "gasoline", Seats: 5, MaxSpeedKmh: 210, Category: "sedan", PriceMin: 27000000, PriceMax: 35000000, WidthMm: 1860, LengthMm: 4900, HeightMm: 1445, Efficiency: 13.3},
		{Brand: "Kia", Model: "EV6", Trim: "GT-Line", EngineType: "electric", FuelType: "electric", Seats: 5, MaxSpeedKmh: 188, RangeKm: 475, Category: "suv", PriceMin: 55000000, PriceMax: 65000000, WidthMm: 1880, LengthMm: 4695, HeightMm: 1550, Efficiency: 5.2},
		{Brand: "Kia", Model: "K5", Trim: "1.6 Turbo", EngineType: "gasoline", Displacement: 1598, FuelType: "gasoline", Seats: 5, MaxSpeedKmh: 215, Category: "sedan", PriceMin: 26000000, PriceMax: 33000000, WidthMm: 1860, LengthMm: 4905, HeightMm: 1445, Efficiency: 13.1},
		{Brand: "Genesis", Model: "G80", Trim: "2.5T AWD", EngineType: "gasoline", Displacement: 2497, FuelType: "gasoline", Seats: 5, MaxSpeedKmh: 240, Category: "sedan", PriceMin: 56000000, PriceMax: 72000000, WidthMm: 1925, LengthMm: 4995, HeightMm: 1465, Efficiency: 10.7},
		{Brand: "Tesla", Model: "Model 3", Trim: "Long Range", EngineType: "electric", FuelType: "electric", Seats: 5, MaxSpeedKmh: 201, RangeKm: 528, Category: "sedan", PriceMin: 52000000, PriceMax: 60000000, WidthMm: 1850, LengthMm: 4694, HeightMm: 1443, Efficiency: 5.6},
		{Brand: "Hyundai", Model: "Tucson", Trim: "Hybrid Inspiration", EngineType: "hybrid", Displacement: 1598, FuelType: "hybrid", Seats: 5, MaxSpeedKmh: 193, Category: "suv", PriceMin: 31000000, PriceMax: 41000000, WidthMm: 1865, LengthMm: 4630, HeightMm: 1665, Efficiency: 16.2},
		{Brand: "Kia", Model: "Sorento", Trim: "Diesel 2.2 AWD", EngineType: "diesel", Displacement: 2151, FuelType: "diesel", Seats: 7, MaxSpeedKmh: 205, Category: "suv", PriceMin: 35000000, PriceMax: 47000000, WidthMm: 1900, LengthMm: 4810, HeightMm: 1700, Efficiency: 13.4},
	}

	if err := db.Create(&specs).Error; err != nil {
		configs.Logger.Error("Failed to seed vehicle specs", zap.Error(err))
		return
	}
	configs.Logger.Info("Vehicle spec catalog seeded", zap.Int("count", len(specs)))
}
