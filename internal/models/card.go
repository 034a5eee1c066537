package models

import (
	"time"
)

// 카드 브랜드
const (
	CardBrandVisa       = "VISA"
	CardBrandMastercard = "Mastercard"
	CardBrandAmex       = "Amex"
	CardBrandDiscover   = "Discover"
	CardBrandUnknown    = "UNKNOWN"
)

// RegisteredCard 등록된 결제 카드. 사용자당 is_default=true는 최대 1행입니다.
// 카드 번호 원문은 저장하지 않고 마스킹 값과 중복 검출용 해시만 보관합니다.
type RegisteredCard struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;index;uniqueIndex:idx_user_card" json:"user_id"`
	CardNumberMasked string    `gorm:"size:25;not null" json:"card_number_masked"`
	CardHash         string    `gorm:"size:64;not null;uniqueIndex:idx_user_card" json:"-"`
	HolderName       string    `gorm:"size:50;not null" json:"holder_name"`
	ExpiryMonth      int       `gorm:"not null" json:"expiry_month"`
	ExpiryYear       int       `gorm:"not null" json:"expiry_year"`
	Brand            string    `gorm:"size:20;not null" json:"brand"`
	IsTest           bool      `gorm:"not null;default:false" json:"is_test"`
	IsDefault        bool      `gorm:"not null;default:false" json:"is_default"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (RegisteredCard) TableName() string {
	return "registered_cards"
}

// CardRegisterRequest 카드 등록 요청
type CardRegisterRequest struct {
	CardNumber  string `json:"card_number" validate:"required,numeric,min=15,max=16"`
	HolderName  string `json:"holder_name" validate:"required,max=50"`
	ExpiryMonth int    `json:"expiry_month" validate:"required,min=1,max=12"`
	ExpiryYear  int    `json:"expiry_year" validate:"required,min=2024,max=2099"`
}
