package dto

import "time"

// CommonAreaRequest describes a common area created with a condominium
type CommonAreaRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100" example:"Party Hall"`
	IsAvailable *bool  `json:"isAvailable" binding:"omitempty" example:"true"`
}

// CreateCondominiumRequest represents a condominium creation request.
// Common areas are created alongside the condominium in one transaction.
type CreateCondominiumRequest struct {
	Name        string              `json:"name" binding:"required,min=2,max=100" example:"Residencial Jardim"`
	TaxID       string              `json:"taxId" binding:"required" example:"12345678000199"`
	Address     string              `json:"address" binding:"required" example:"Rua das Flores 120"`
	CommonAreas []CommonAreaRequest `json:"commonAreas" binding:"omitempty,dive"`
}

// CommonAreaResponse represents a common area in API responses
type CommonAreaResponse struct {
	ID          int64  `json:"id" example:"1"`
	Name        string `json:"name" example:"Party Hall"`
	IsAvailable bool   `json:"isAvailable" example:"true"`
}

// CondominiumResponse represents a condominium in API responses
type CondominiumResponse struct {
	ID          int64                `json:"id" example:"1"`
	Name        string               `json:"name" example:"Residencial Jardim"`
	TaxID       string               `json:"taxId" example:"12345678000199"`
	Address     string               `json:"address" example:"Rua das Flores 120"`
	CreatedBy   int64                `json:"createdBy" example:"1"`
	CommonAreas []CommonAreaResponse `json:"commonAreas,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// CondominiumListResponse wraps a paginated condominium list
type CondominiumListResponse struct {
	Condominiums []CondominiumResponse `json:"condominiums"`
	Pagination   PaginationInfo        `json:"pagination"`
}
