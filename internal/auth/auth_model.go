package auth

import (
	"gorm.io/gorm"
)

// User is a scout account. All scouting documents are scoped to a user.
type User struct {
	gorm.Model
	Username     string `json:"username" gorm:"uniqueIndex;size:64;not null"`
	Email        string `json:"email" gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
	FullName     string `json:"full_name"`
	Organization string `json:"organization"`
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Username     string `json:"username" binding:"required,min=3,max=64"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	FullName     string `json:"full_name"`
	Organization string `json:"organization"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the access token and the authenticated user.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}
