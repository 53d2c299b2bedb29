package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/morada/morada/internal/app/auth"
	"github.com/morada/morada/internal/app/models"
	"github.com/morada/morada/internal/app/models/dto"
	"github.com/morada/morada/internal/app/repositories"
	"github.com/morada/morada/internal/pkg/apperrors"
	"github.com/morada/morada/internal/pkg/filestorage"
)

var allowedPhotoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// GalleryService handles galleries, photo uploads, moderation and the
// derived cover photo.
type GalleryService struct {
	galleryRepo  repositories.IGalleryRepository
	fileStorage  filestorage.Storage
	authzService *auth.AuthorizationService
	logger       zerolog.Logger
}

// NewGalleryService creates a new GalleryService
func NewGalleryService(
	galleryRepo repositories.IGalleryRepository,
	fileStorage filestorage.Storage,
	authzService *auth.AuthorizationService,
	logger zerolog.Logger,
) *GalleryService {
	return &GalleryService{
		galleryRepo:  galleryRepo,
		fileStorage:  fileStorage,
		authzService: authzService,
		logger:       logger,
	}
}

// CreateGallery creates a gallery in a condominium. Only administrators
// of the condominium may create galleries.
func (s *GalleryService) CreateGallery(ctx context.Context, creatorID, condominiumID int64, req *dto.CreateGalleryRequest) (*dto.GalleryResponse, error) {
	if err := s.authzService.ValidateCondominiumAdmin(ctx, creatorID, condominiumID); err != nil {
		return nil, err
	}

	gallery := &models.Gallery{
		Name:          req.Name,
		CondominiumID: condominiumID,
		CreatedBy:     creatorID,
	}

	id, err := s.galleryRepo.Create(ctx, gallery)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("galleryID", id).Int64("condominiumID", condominiumID).Msg("Gallery created")

	created, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapGalleryResponse(created)
	return &resp, nil
}

// GetByCondominium lists a condominium's galleries for its members.
func (s *GalleryService) GetByCondominium(ctx context.Context, userID, condominiumID int64) ([]dto.GalleryResponse, error) {
	if err := s.authzService.ValidateActiveMember(ctx, userID, condominiumID); err != nil {
		return nil, err
	}

	galleries, err := s.galleryRepo.GetByCondominiumID(ctx, condominiumID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.GalleryResponse, 0, len(galleries))
	for _, g := range galleries {
		responses = append(responses, mapGalleryResponse(g))
	}
	return responses, nil
}

// UploadPhoto stores a photo file and records it in pending status.
// Members of the gallery's condominium may upload.
func (s *GalleryService) UploadPhoto(ctx context.Context, userID, galleryID int64, fileHeader *multipart.FileHeader, description string) (*dto.PhotoResponse, error) {
	if fileHeader == nil {
		return nil, apperrors.ErrMissingPhotoUpload
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedPhotoExtensions[ext] {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unsupported image type %q", ext))
	}

	gallery, err := s.galleryRepo.GetByID(ctx, galleryID)
	if err != nil {
		return nil, err
	}

	if err := s.authzService.ValidateActiveMember(ctx, userID, gallery.CondominiumID); err != nil {
		return nil, err
	}

	url, err := s.fileStorage.SaveFileWithPath(fileHeader, fmt.Sprintf("galleries/%d", galleryID))
	if err != nil {
		s.logger.Error().Err(err).Int64("galleryID", galleryID).Msg("Failed to store photo file")
		return nil, err
	}

	photo := &models.Photo{
		URL:         url,
		Description: description,
		GalleryID:   galleryID,
		UploadedBy:  userID,
	}

	id, err := s.galleryRepo.CreatePhoto(ctx, photo)
	if err != nil {
		// Keep storage consistent with the database
		if delErr := s.fileStorage.DeleteFile(url); delErr != nil {
			s.logger.Warn().Err(delErr).Str("url", url).Msg("Failed to remove orphaned photo file")
		}
		return nil, err
	}

	s.logger.Info().Int64("photoID", id).Int64("galleryID", galleryID).Int64("uploadedBy", userID).Msg("Photo uploaded")

	created, err := s.galleryRepo.GetPhotoByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapPhotoResponse(created)
	return &resp, nil
}

// GetPhotos lists a gallery's photos for members, optionally filtered by
// moderation status.
func (s *GalleryService) GetPhotos(ctx context.Context, userID, galleryID int64, status string) ([]dto.PhotoResponse, error) {
	gallery, err := s.galleryRepo.GetByID(ctx, galleryID)
	if err != nil {
		return nil, err
	}

	if err := s.authzService.ValidateActiveMember(ctx, userID, gallery.CondominiumID); err != nil {
		return nil, err
	}

	var filter *models.PhotoStatus
	if status != "" {
		parsed, ok := parsePhotoStatus(status)
		if !ok {
			return nil, apperrors.ErrInvalidPhotoStatus
		}
		filter = &parsed
	}

	photos, err := s.galleryRepo.GetPhotosByGalleryID(ctx, galleryID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PhotoResponse, 0, len(photos))
	for _, p := range photos {
		responses = append(responses, mapPhotoResponse(p))
	}
	return responses, nil
}

// ModeratePhoto applies an administrator's approval decision and keeps
// the gallery cover in sync. Approving makes the photo the cover when it
// is the most recent approved one; rejecting never touches the cover.
func (s *GalleryService) ModeratePhoto(ctx context.Context, adminID, photoID int64, status string) (*dto.PhotoResponse, error) {
	target, ok := parsePhotoStatus(status)
	if !ok || target == models.PhotoPending {
		return nil, apperrors.ErrInvalidPhotoStatus
	}

	photo, err := s.galleryRepo.GetPhotoByID(ctx, photoID)
	if err != nil {
		return nil, err
	}

	gallery, err := s.galleryRepo.GetByID(ctx, photo.GalleryID)
	if err != nil {
		return nil, err
	}

	if err := s.authzService.ValidateCondominiumAdmin(ctx, adminID, gallery.CondominiumID); err != nil {
		return nil, err
	}

	if err := s.galleryRepo.UpdatePhotoStatus(ctx, photoID, target); err != nil {
		return nil, err
	}

	if target == models.PhotoApproved {
		if err := s.refreshCover(ctx, photo.GalleryID); err != nil {
			s.logger.Warn().Err(err).Int64("galleryID", photo.GalleryID).Msg("Failed to refresh gallery cover")
		}
	}

	s.logger.Info().
		Int64("photoID", photoID).
		Int64("adminID", adminID).
		Str("status", string(target)).
		Msg("Photo moderated")

	photo, err = s.galleryRepo.GetPhotoByID(ctx, photoID)
	if err != nil {
		return nil, err
	}
	resp := mapPhotoResponse(photo)
	return &resp, nil
}

// refreshCover points the gallery cover at its most recent approved photo.
func (s *GalleryService) refreshCover(ctx context.Context, galleryID int64) error {
	latest, err := s.galleryRepo.GetLatestApprovedPhoto(ctx, galleryID)
	if err != nil {
		return err
	}

	var url *string
	if latest != nil {
		url = &latest.URL
	}
	return s.galleryRepo.SetCoverPhotoURL(ctx, galleryID, url)
}

func parsePhotoStatus(s string) (models.PhotoStatus, bool) {
	switch models.PhotoStatus(s) {
	case models.PhotoPending:
		return models.PhotoPending, true
	case models.PhotoApproved:
		return models.PhotoApproved, true
	case models.PhotoRejected:
		return models.PhotoRejected, true
	}
	return "", false
}

func mapGalleryResponse(g *models.Gallery) dto.GalleryResponse {
	return dto.GalleryResponse{
		ID:            g.ID,
		Name:          g.Name,
		CondominiumID: g.CondominiumID,
		CreatedBy:     g.CreatedBy,
		CoverPhotoURL: g.CoverPhotoURL,
		CreatedAt:     g.CreatedAt,
	}
}

func mapPhotoResponse(p *models.Photo) dto.PhotoResponse {
	return dto.PhotoResponse{
		ID:          p.ID,
		URL:         p.URL,
		Description: p.Description,
		GalleryID:   p.GalleryID,
		Status:      string(p.Status),
		Uploader:    mapUserBasic(p.Uploader),
		CreatedAt:   p.CreatedAt,
	}
}
