package dto

import "time"

// CreateAssemblyRequest represents an assembly creation request
type CreateAssemblyRequest struct {
	Title       string    `json:"title" binding:"required,min=2,max=150" example:"Annual budget assembly"`
	Description string    `json:"description" binding:"omitempty,max=1000"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required" example:"2024-09-15T19:00:00Z"`
}

// AssemblyResponse represents an assembly in API responses
type AssemblyResponse struct {
	ID            int64              `json:"id" example:"1"`
	Title         string             `json:"title" example:"Annual budget assembly"`
	Description   string             `json:"description,omitempty"`
	ScheduledAt   time.Time          `json:"scheduledAt"`
	CondominiumID int64              `json:"condominiumId" example:"1"`
	Creator       *UserBasicResponse `json:"creator,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// AttendanceResponse reports an attendance confirmation. AlreadyConfirmed
// is true when the (assembly, user) pair had been confirmed before.
type AttendanceResponse struct {
	AssemblyID       int64              `json:"assemblyId" example:"1"`
	UserID           int64              `json:"userId" example:"2"`
	ConfirmedAt      time.Time          `json:"confirmedAt"`
	AlreadyConfirmed bool               `json:"alreadyConfirmed" example:"false"`
	User             *UserBasicResponse `json:"user,omitempty"`
}
