package dto

import "time"

// CreateNoticeRequest represents a notice creation request
type CreateNoticeRequest struct {
	Title   string `json:"title" binding:"required,min=2,max=150" example:"Water maintenance"`
	Message string `json:"message" binding:"required" example:"Water will be shut off on Friday morning."`
}

// NoticeResponse represents a notice in API responses
type NoticeResponse struct {
	ID            int64              `json:"id" example:"1"`
	Title         string             `json:"title" example:"Water maintenance"`
	Message       string             `json:"message"`
	CondominiumID int64              `json:"condominiumId" example:"1"`
	Date          time.Time          `json:"date"`
	Author        *UserBasicResponse `json:"author,omitempty"`
}
