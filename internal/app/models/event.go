package models

import (
	"time"
)

// Event defines a condominium event based on the 'events' table.
// Same shape as Assembly plus a location; no attendance tracking.
type Event struct {
	ID            int64     `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Description   string    `json:"description" db:"description"`
	Location      string    `json:"location" db:"location"`
	ScheduledAt   time.Time `json:"scheduledAt" db:"scheduled_at"`
	CondominiumID int64     `json:"condominiumId" db:"condominium_id"`
	CreatedBy     int64     `json:"createdBy" db:"created_by"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`

	Creator *User `json:"creator,omitempty"` // Relation, no db tag
}
