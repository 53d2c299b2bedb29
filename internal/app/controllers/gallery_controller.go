package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/morada/morada/internal/app/models/dto"
	"github.com/morada/morada/internal/app/services"
	"github.com/morada/morada/internal/middleware"
	"github.com/morada/morada/internal/pkg/apperrors"
)

// GalleryController handles gallery and photo endpoints
type GalleryController struct {
	galleryService *services.GalleryService
}

// NewGalleryController creates a new GalleryController
func NewGalleryController(galleryService *services.GalleryService) *GalleryController {
	return &GalleryController{galleryService: galleryService}
}

// CreateGallery creates a gallery in a condominium
// @Summary Create a gallery
// @Tags galleries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Condominium ID"
// @Param request body dto.CreateGalleryRequest true "Gallery data"
// @Success 201 {object} dto.APIResponse{data=dto.GalleryResponse} "Gallery created"
// @Failure 403 {object} dto.ErrorResponse "Not an administrator of this condominium"
// @Router /condominiums/{id}/galleries [post]
func (c *GalleryController) CreateGallery(ctx *gin.Context) {
	creatorID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	condominiumID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateGalleryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.galleryService.CreateGallery(ctx, creatorID, condominiumID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// GetByCondominium lists a condominium's galleries
// @Summary List galleries
// @Tags galleries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Condominium ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.GalleryResponse} "Galleries"
// @Failure 403 {object} dto.ErrorResponse "Not an active member"
// @Router /condominiums/{id}/galleries [get]
func (c *GalleryController) GetByCondominium(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	condominiumID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.galleryService.GetByCondominium(ctx, userID, condominiumID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// UploadPhoto stores a photo in pending status
// @Summary Upload a photo
// @Description Uploads a photo into a gallery. The file arrives as the "photo" multipart form field and starts in pending status.
// @Tags galleries
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Gallery ID"
// @Param photo formData file true "Image file"
// @Param description formData string false "Photo description"
// @Success 201 {object} dto.APIResponse{data=dto.PhotoResponse} "Photo uploaded"
// @Failure 400 {object} dto.ErrorResponse "Missing or unsupported file"
// @Failure 403 {object} dto.ErrorResponse "Not an active member"
// @Router /galleries/{id}/photos [post]
func (c *GalleryController) UploadPhoto(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	galleryID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UploadPhotoRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrMissingPhotoUpload)
		return
	}

	resp, err := c.galleryService.UploadPhoto(ctx, userID, galleryID, fileHeader, req.Description)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// GetPhotos lists a gallery's photos
// @Summary List photos
// @Tags galleries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Gallery ID"
// @Param status query string false "Filter by moderation status (pending, approved, rejected)"
// @Success 200 {object} dto.APIResponse{data=[]dto.PhotoResponse} "Photos"
// @Failure 404 {object} dto.ErrorResponse "Gallery not found"
// @Router /galleries/{id}/photos [get]
func (c *GalleryController) GetPhotos(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	galleryID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.galleryService.GetPhotos(ctx, userID, galleryID, ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// ModeratePhoto applies an approval decision to a photo
// @Summary Moderate a photo
// @Description Approves or rejects a photo. Approving the most recent photo updates the gallery cover; rejecting never does.
// @Tags galleries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Param request body dto.UpdatePhotoStatusRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=dto.PhotoResponse} "Photo moderated"
// @Failure 403 {object} dto.ErrorResponse "Not an administrator of this condominium"
// @Failure 404 {object} dto.ErrorResponse "Photo not found"
// @Router /photos/{id}/status [put]
func (c *GalleryController) ModeratePhoto(ctx *gin.Context) {
	adminID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	photoID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdatePhotoStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.galleryService.ModeratePhoto(ctx, adminID, photoID, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
