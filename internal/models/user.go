package models

import (
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model `json:"-"`
	ID         uint   `json:"id" gorm:"primaryKey"`
	Username   string `json:"username" gorm:"uniqueIndex;size:150"`
	Email      string `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all users
	Password   string `json:"-"`                        // Store hashed password, ignore for JSON serialization
	IsStaff    bool   `json:"is_staff,omitempty"`       // Staff users can access the popularity dashboard
}

// Profile holds per-user supplementary attributes. Exactly one row per user,
// created in the same transaction as the user itself.
type Profile struct {
	gorm.Model  `json:"-"`
	ID          uint   `json:"id" gorm:"primaryKey"`
	UserID      uint   `json:"user_id" gorm:"uniqueIndex"`
	DisplayName string `json:"display_name" gorm:"size:150"`
	Bio         string `json:"bio" gorm:"size:500"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

type SignUpRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
}

type SignInRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Username string `json:"username" form:"username" validate:"omitempty,min=3,max=150"`
	Bio      string `json:"bio" form:"bio" validate:"omitempty,max=500"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
