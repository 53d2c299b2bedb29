package models

import (
	"time"
)

// Membership links a user to a condominium with an approval status,
// based on the 'memberships' table. Unique per (user, condominium).
type Membership struct {
	ID            int64            `json:"id" db:"id"`
	UserID        int64            `json:"userId" db:"user_id"`
	CondominiumID int64            `json:"condominiumId" db:"condominium_id"`
	Status        MembershipStatus `json:"status" db:"status"`
	CreatedAt     time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time        `json:"updatedAt" db:"updated_at"`

	User        *User        `json:"user,omitempty"`        // Relation, no db tag
	Condominium *Condominium `json:"condominium,omitempty"` // Relation, no db tag
}
