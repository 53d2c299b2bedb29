package models

import (
	"time"
)

// Condominium defines the condominium model based on the 'condominiums' table
type Condominium struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" example:"Residencial Jardim"`
	TaxID     string    `json:"taxId" db:"tax_id" example:"12345678000199"`
	Address   string    `json:"address" db:"address"`
	CreatedBy int64     `json:"createdBy" db:"created_by"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	CommonAreas []CommonArea `json:"commonAreas,omitempty"` // Relation, no db tag
}

// CommonArea defines a bookable shared amenity based on the 'common_areas' table
type CommonArea struct {
	ID            int64     `json:"id" db:"id"`
	CondominiumID int64     `json:"condominiumId" db:"condominium_id"`
	Name          string    `json:"name" db:"name" example:"Party Hall"`
	IsAvailable   bool      `json:"isAvailable" db:"is_available"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
