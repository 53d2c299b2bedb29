package models

import (
	"time"
)

// Notice defines a condominium notice based on the 'notices' table
type Notice struct {
	ID            int64     `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Message       string    `json:"message" db:"message"`
	AuthorID      int64     `json:"authorId" db:"author_id"`
	CondominiumID int64     `json:"condominiumId" db:"condominium_id"`
	Date          time.Time `json:"date" db:"date"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`

	Author *User `json:"author,omitempty"` // Relation, no db tag
}
