package dto

import "time"

// CreateReservationRequest represents a booking request for a common area
type CreateReservationRequest struct {
	CommonAreaID  int64     `json:"commonAreaId" binding:"required" example:"1"`
	CondominiumID int64     `json:"condominiumId" binding:"required" example:"1"`
	StartTime     time.Time `json:"startTime" binding:"required" example:"2024-06-01T13:00:00Z"`
	EndTime       time.Time `json:"endTime" binding:"required,gtfield=StartTime" example:"2024-06-01T16:00:00Z"`
	Title         string    `json:"title" binding:"required,min=2,max=100" example:"Birthday party"`
	Notes         string    `json:"notes" binding:"omitempty,max=500"`
}

// UpdateReservationStatusRequest represents an administrator's decision
type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=APPROVED DECLINED CANCELLED" example:"APPROVED"`
}

// ReservationResponse represents a reservation in API responses
type ReservationResponse struct {
	ID            int64               `json:"id" example:"1"`
	CommonAreaID  int64               `json:"commonAreaId" example:"1"`
	CondominiumID int64               `json:"condominiumId" example:"1"`
	UserID        int64               `json:"userId" example:"2"`
	StartTime     time.Time           `json:"startTime"`
	EndTime       time.Time           `json:"endTime"`
	Status        string              `json:"status" example:"PENDING"`
	Title         string              `json:"title" example:"Birthday party"`
	Notes         string              `json:"notes,omitempty"`
	User          *UserBasicResponse  `json:"user,omitempty"`
	CommonArea    *CommonAreaResponse `json:"commonArea,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// SlotResponse represents one fixed 3-hour availability slot
type SlotResponse struct {
	StartTime   time.Time `json:"startTime" example:"2024-06-01T10:00:00Z"`
	EndTime     time.Time `json:"endTime" example:"2024-06-01T13:00:00Z"`
	IsAvailable bool      `json:"isAvailable" example:"true"`
}

// AvailabilityResponse is the same-day slot view for a common area
type AvailabilityResponse struct {
	CommonAreaID int64          `json:"commonAreaId" example:"1"`
	Date         string         `json:"date" example:"2024-06-01"`
	Slots        []SlotResponse `json:"slots"`
}
