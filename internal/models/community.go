package models

import (
	"time"
)

// Notice 공지사항
type Notice struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Pinned    bool      `gorm:"not null;default:false" json:"pinned"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Notice) TableName() string {
	return "notices"
}

// FAQ 자주 묻는 질문
type FAQ struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Category  string `gorm:"size:50;not null" json:"category"`
	Question  string `gorm:"size:300;not null" json:"question"`
	Answer    string `gorm:"type:text;not null" json:"answer"`
	SortOrder int    `gorm:"not null;default:0" json:"sort_order"`
}

func (FAQ) TableName() string {
	return "faqs"
}
