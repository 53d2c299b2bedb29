package dto

import "time"

// UpdateMembershipStatusRequest represents an accept/reject decision
type UpdateMembershipStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE REJECTED" example:"ACTIVE"`
}

// MembershipResponse represents a membership in API responses
type MembershipResponse struct {
	ID            int64                `json:"id" example:"1"`
	UserID        int64                `json:"userId" example:"2"`
	CondominiumID int64                `json:"condominiumId" example:"1"`
	Status        string               `json:"status" example:"PENDING"`
	User          *UserBasicResponse   `json:"user,omitempty"`
	Condominium   *CondominiumResponse `json:"condominium,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
}
