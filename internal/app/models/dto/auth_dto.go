package dto

import "time"

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	FirstName  string `json:"firstName" binding:"required,min=2,max=100" example:"Ana"`
	LastName   string `json:"lastName" binding:"required,min=2,max=100" example:"Souza"`
	Email      string `json:"email" binding:"required,email" example:"ana@example.com"`
	Password   string `json:"password" binding:"required,min=8" example:"s3cret-pass"`
	NationalID string `json:"nationalId" binding:"required" example:"12345678901"`
	BirthDate  string `json:"birthDate" binding:"required" example:"1990-05-20"`
	Phone      string `json:"phone" binding:"required" example:"+5511999990000"`
	Role       string `json:"role" binding:"required,oneof=RESIDENT ADMINISTRATOR" example:"RESIDENT"`
}

// RegisterResponse represents the created account summary
type RegisterResponse struct {
	UserID int64  `json:"userId" example:"1"`
	Email  string `json:"email" example:"ana@example.com"`
	Role   string `json:"role" example:"RESIDENT"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ana@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse represents an issued token pair
type TokenResponse struct {
	AccessToken      string        `json:"accessToken"`
	RefreshToken     string        `json:"refreshToken"`
	ExpiresIn        int           `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int           `json:"refreshExpiresIn" example:"2592000"`
	TokenType        string        `json:"tokenType" example:"Bearer"`
	User             *UserResponse `json:"user,omitempty"`
}

// UserResponse represents full user profile data
type UserResponse struct {
	ID         int64     `json:"id" example:"1"`
	Email      string    `json:"email" example:"ana@example.com"`
	FirstName  string    `json:"firstName" example:"Ana"`
	LastName   string    `json:"lastName" example:"Souza"`
	NationalID string    `json:"nationalId" example:"12345678901"`
	BirthDate  time.Time `json:"birthDate"`
	Phone      string    `json:"phone" example:"+5511999990000"`
	Role       string    `json:"role" example:"RESIDENT"`
	CreatedAt  time.Time `json:"createdAt"`
}

// UpdateProfileRequest represents a profile update request
type UpdateProfileRequest struct {
	FirstName string `json:"firstName" binding:"omitempty,min=2,max=100"`
	LastName  string `json:"lastName" binding:"omitempty,min=2,max=100"`
	Phone     string `json:"phone" binding:"omitempty"`
}
