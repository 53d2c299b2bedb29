package models

import (
	"time"
)

// Assembly defines a condominium assembly based on the 'assemblies' table
type Assembly struct {
	ID            int64     `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Description   string    `json:"description" db:"description"`
	ScheduledAt   time.Time `json:"scheduledAt" db:"scheduled_at"`
	CondominiumID int64     `json:"condominiumId" db:"condominium_id"`
	CreatedBy     int64     `json:"createdBy" db:"created_by"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`

	Creator       *User `json:"creator,omitempty"`       // Relation, no db tag
	AttendeeCount int64 `json:"attendeeCount,omitempty"` // Computed, no db tag
}

// Attendance records a user's presence confirmation for an assembly,
// based on the 'assembly_attendances' table. Unique per (assembly, user).
type Attendance struct {
	ID          int64     `json:"id" db:"id"`
	AssemblyID  int64     `json:"assemblyId" db:"assembly_id"`
	UserID      int64     `json:"userId" db:"user_id"`
	ConfirmedAt time.Time `json:"confirmedAt" db:"confirmed_at"`

	User *User `json:"user,omitempty"` // Relation, no db tag
}
