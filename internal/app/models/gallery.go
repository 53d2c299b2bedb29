package models

import (
	"time"
)

// Gallery defines a photo gallery based on the 'galleries' table.
// CoverPhotoURL is derived from the most recently approved photo.
type Gallery struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	CondominiumID int64     `json:"condominiumId" db:"condominium_id"`
	CreatedBy     int64     `json:"createdBy" db:"created_by"`
	CoverPhotoURL *string   `json:"coverPhotoUrl,omitempty" db:"cover_photo_url"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// Photo defines a gallery photo based on the 'photos' table
type Photo struct {
	ID          int64       `json:"id" db:"id"`
	URL         string      `json:"url" db:"url"`
	Description string      `json:"description" db:"description"`
	GalleryID   int64       `json:"galleryId" db:"gallery_id"`
	UploadedBy  int64       `json:"uploadedBy" db:"uploaded_by"`
	Status      PhotoStatus `json:"status" db:"status"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt" db:"updated_at"`

	Uploader *User `json:"uploader,omitempty"` // Relation, no db tag
}
