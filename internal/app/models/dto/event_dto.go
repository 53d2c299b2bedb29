package dto

import "time"

// CreateEventRequest represents an event creation request
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required,min=2,max=150" example:"June festival"`
	Description string    `json:"description" binding:"omitempty,max=1000"`
	Location    string    `json:"location" binding:"required,min=2,max=150" example:"Pool deck"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required" example:"2024-06-20T18:00:00Z"`
}

// EventResponse represents an event in API responses
type EventResponse struct {
	ID            int64              `json:"id" example:"1"`
	Title         string             `json:"title" example:"June festival"`
	Description   string             `json:"description,omitempty"`
	Location      string             `json:"location" example:"Pool deck"`
	ScheduledAt   time.Time          `json:"scheduledAt"`
	CondominiumID int64              `json:"condominiumId" example:"1"`
	Creator       *UserBasicResponse `json:"creator,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}
