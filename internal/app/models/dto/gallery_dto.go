package dto

import "time"

// CreateGalleryRequest represents a gallery creation request
type CreateGalleryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100" example:"Summer 2024"`
}

// GalleryResponse represents a gallery in API responses
type GalleryResponse struct {
	ID            int64     `json:"id" example:"1"`
	Name          string    `json:"name" example:"Summer 2024"`
	CondominiumID int64     `json:"condominiumId" example:"1"`
	CreatedBy     int64     `json:"createdBy" example:"1"`
	CoverPhotoURL *string   `json:"coverPhotoUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// UploadPhotoRequest carries the multipart form fields of a photo upload;
// the file itself arrives as the "photo" form file.
type UploadPhotoRequest struct {
	Description string `form:"description" binding:"omitempty,max=500" example:"Pool opening day"`
}

// UpdatePhotoStatusRequest represents a moderation decision
type UpdatePhotoStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected" example:"approved"`
}

// PhotoResponse represents a photo in API responses
type PhotoResponse struct {
	ID          int64              `json:"id" example:"1"`
	URL         string             `json:"url" example:"http://localhost:8080/uploads/users/2/3e2a.jpg"`
	Description string             `json:"description,omitempty"`
	GalleryID   int64              `json:"galleryId" example:"1"`
	Status      string             `json:"status" example:"pending"`
	Uploader    *UserBasicResponse `json:"uploader,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
}
