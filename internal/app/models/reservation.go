package models

import (
	"time"
)

// Reservation defines a common-area booking based on the 'reservations'
// table. The time range is immutable once created.
type Reservation struct {
	ID            int64             `json:"id" db:"id"`
	CommonAreaID  int64             `json:"commonAreaId" db:"common_area_id"`
	UserID        int64             `json:"userId" db:"user_id"`
	CondominiumID int64             `json:"condominiumId" db:"condominium_id"`
	StartTime     time.Time         `json:"startTime" db:"start_time"`
	EndTime       time.Time         `json:"endTime" db:"end_time"`
	Status        ReservationStatus `json:"status" db:"status"`
	Title         string            `json:"title" db:"title"`
	Notes         string            `json:"notes" db:"notes"`
	CreatedAt     time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time         `json:"updatedAt" db:"updated_at"`

	User       *User       `json:"user,omitempty"`       // Relation, no db tag
	CommonArea *CommonArea `json:"commonArea,omitempty"` // Relation, no db tag
}

// Overlaps reports whether the reservation's half-open interval
// [StartTime, EndTime) intersects [start, end).
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartTime.Before(end) && r.EndTime.After(start)
}
