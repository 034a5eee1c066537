package models

import (
	"time"
)

// Car 등록 차량. OwnerID가 NULL이면 미배정 풀에 있는 차량입니다.
// VIN과 번호판은 전역 유니크입니다.
type Car struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	OwnerID      *uint     `gorm:"index" json:"owner_id,omitempty"`
	SpecID       uint      `gorm:"not null;index" json:"spec_id"`
	VIN          string    `gorm:"column:vin;size:17;not null;uniqueIndex" json:"vin"`
	LicensePlate string    `gorm:"size:20;not null;uniqueIndex" json:"license_plate"`
	Nickname     string    `gorm:"size:50" json:"nickname"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	Spec *VehicleSpec `gorm:"foreignKey:SpecID" json:"spec,omitempty"`
}

func (Car) TableName() string {
	return "cars"
}

// CarRegisterRequest 차량 등록 요청
type CarRegisterRequest struct {
	SpecID       uint   `json:"spec_id" validate:"required"`
	VIN          string `json:"vin" validate:"required,len=17,alphanum"`
	LicensePlate string `json:"license_plate" validate:"required,max=20"`
	Nickname     string `json:"nickname" validate:"max=50"`
}
