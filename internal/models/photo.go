package models

import (
	"time"
)

// CarPhoto 사용자가 업로드한 차량 사진 메타데이터.
// 사용자당 is_main=true는 최대 1행입니다. 바이트는 스토리지 백엔드에 보관합니다.
type CarPhoto struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	StorageKey   string    `gorm:"size:100;not null;uniqueIndex" json:"storage_key"`
	OriginalName string    `gorm:"size:200" json:"original_name"`
	ContentType  string    `gorm:"size:50;not null" json:"content_type"`
	SizeBytes    int64     `gorm:"not null" json:"size_bytes"`
	Width        int       `gorm:"not null" json:"width"`
	Height       int       `gorm:"not null" json:"height"`
	IsMain       bool      `gorm:"not null;default:false" json:"is_main"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CarPhoto) TableName() string {
	return "car_photos"
}

// PhotoUploadRequest base64 업로드 요청 (multipart가 아닌 경우)
type PhotoUploadRequest struct {
	ImageData    string `json:"image_data" validate:"required"`
	OriginalName string `json:"original_name" validate:"max=200"`
}
