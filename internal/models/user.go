package models

import (
	"time"
)

// 사용자 상태값
const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
	UserStatusDeleted   = "deleted"
)

// User 사용자 계정. 탈퇴 시 행을 지우지 않고 status만 deleted로 전환합니다.
type User struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Username    string     `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Password    string     `gorm:"size:250;not null" json:"-"`
	Salt        string     `gorm:"size:250;not null" json:"-"`
	Email       string     `gorm:"size:120" json:"email"`
	Name        string     `gorm:"size:50" json:"name"`
	Phone       string     `gorm:"size:20" json:"phone"`
	Status      string     `gorm:"size:20;not null;default:'active'" json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// RegisterRequest 회원가입 요청
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
	Email    string `json:"email" validate:"omitempty,email"`
	Name     string `json:"name" validate:"max=50"`
	Phone    string `json:"phone" validate:"max=20"`
}

// LoginRequest 로그인 요청
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ProfileUpdateRequest 프로필 수정 요청 (nil 필드는 변경하지 않음)
type ProfileUpdateRequest struct {
	Email *string `json:"email" validate:"omitempty,email"`
	Name  *string `json:"name" validate:"omitempty,max=50"`
	Phone *string `json:"phone" validate:"omitempty,max=20"`
}

// PasswordChangeRequest 비밀번호 변경 요청
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}
