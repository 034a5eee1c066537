package models

import (
	"time"
)

// DrivingRecord 주행 기록
type DrivingRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	CarID       uint      `gorm:"not null;index" json:"car_id"`
	StartedAt   time.Time `gorm:"not null" json:"started_at"`
	EndedAt     time.Time `gorm:"not null" json:"ended_at"`
	DistanceKm  float64   `gorm:"not null" json:"distance_km"`
	AvgSpeedKmh float64   `json:"avg_speed_kmh"`
	MaxSpeedKmh float64   `json:"max_speed_kmh"`
	FuelUsedL   float64   `json:"fuel_used_l"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (DrivingRecord) TableName() string {
	return "driving_records"
}

// DrivingRecordCreateRequest 주행 기록 등록 요청
type DrivingRecordCreateRequest struct {
	CarID       uint      `json:"car_id" validate:"required"`
	StartedAt   time.Time `json:"started_at" validate:"required"`
	EndedAt     time.Time `json:"ended_at" validate:"required"`
	DistanceKm  float64   `json:"distance_km" validate:"min=0"`
	AvgSpeedKmh float64   `json:"avg_speed_kmh" validate:"min=0"`
	MaxSpeedKmh float64   `json:"max_speed_kmh" validate:"min=0"`
	FuelUsedL   float64   `json:"fuel_used_l" validate:"min=0"`
}

// DrivingSummary 사용자 주행 기록 합계
type DrivingSummary struct {
	RecordCount     int64   `json:"record_count"`
	TotalDistanceKm float64 `json:"total_distance_km"`
	TotalFuelUsedL  float64 `json:"total_fuel_used_l"`
	MaxSpeedKmh     float64 `json:"max_speed_kmh"`
}
