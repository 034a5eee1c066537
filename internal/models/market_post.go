package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// 중고거래 게시글 상태
const (
	MarketStatusSale     = "sale"
	MarketStatusReserved = "reserved"
	MarketStatusSold     = "sold"
)

// MarketPost 중고거래 게시글. 작성자만 수정/삭제할 수 있습니다.
// ViewCount는 상세 조회 시 원자적으로 1 증가합니다.
type MarketPost struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"not null;index" json:"user_id"`
	Title     string          `gorm:"size:200;not null" json:"title"`
	Body      string          `gorm:"type:text;not null" json:"body"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Status    string          `gorm:"size:20;not null;default:'sale'" json:"status"`
	ViewCount int64           `gorm:"not null;default:0" json:"view_count"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MarketPost) TableName() string {
	return "market_posts"
}

// MarketPostCreateRequest 게시글 작성 요청
type MarketPostCreateRequest struct {
	Title string          `json:"title" validate:"required,max=200"`
	Body  string          `json:"body" validate:"required,max=5000"`
	Price decimal.Decimal `json:"price" validate:"required"`
}

// MarketPostUpdateRequest 게시글 수정 요청 (nil 필드는 변경하지 않음)
type MarketPostUpdateRequest struct {
	Title  *string          `json:"title" validate:"omitempty,max=200"`
	Body   *string          `json:"body" validate:"omitempty,max=5000"`
	Price  *decimal.Decimal `json:"price"`
	Status *string          `json:"status" validate:"omitempty,oneof=sale reserved sold"`
}
