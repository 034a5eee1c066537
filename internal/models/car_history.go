package models

import (
	"time"

	"gorm.io/datatypes"
)

// 제어 이력 결과값
const (
	HistoryResultSuccess = "success"
	HistoryResultError   = "error"
)

// CarHistory 차량 제어 감사 이력. 추가 전용이며 수정/삭제하지 않습니다.
// 제어 시도 1회당 정확히 1행을 기록합니다 (성공, 로컬 처리, 재시도 소진 실패 모두).
type CarHistory struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	CarID      uint           `gorm:"not null;index" json:"car_id"`
	UserID     uint           `gorm:"not null" json:"user_id"`
	Action     string         `gorm:"size:100;not null" json:"action"`
	Parameters datatypes.JSON `json:"parameters"`
	Result     string         `gorm:"size:20;not null" json:"result"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

func (CarHistory) TableName() string {
	return "car_histories"
}

// ControlRequest 차량 제어 요청
type ControlRequest struct {
	Property string `json:"property" validate:"required,max=50"`
	Value    string `json:"value" validate:"max=50"`
}
