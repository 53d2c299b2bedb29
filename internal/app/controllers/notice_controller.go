package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/morada/morada/internal/app/models/dto"
	"github.com/morada/morada/internal/app/services"
	"github.com/morada/morada/internal/middleware"
)

// NoticeController handles notice endpoints
type NoticeController struct {
	noticeService *services.NoticeService
}

// NewNoticeController creates a new NoticeController
func NewNoticeController(noticeService *services.NoticeService) *NoticeController {
	return &NoticeController{noticeService: noticeService}
}

// Create posts a notice to a condominium
// @Summary Post a notice
// @Tags notices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Condominium ID"
// @Param request body dto.CreateNoticeRequest true "Notice data"
// @Success 201 {object} dto.APIResponse{data=dto.NoticeResponse} "Notice posted"
// @Failure 403 {object} dto.ErrorResponse "Not an administrator of this condominium"
// @Router /condominiums/{id}/notices [post]
func (c *NoticeController) Create(ctx *gin.Context) {
	authorID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	condominiumID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateNoticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.noticeService.Create(ctx, authorID, condominiumID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// GetByCondominium lists a condominium's notices
// @Summary List notices
// @Tags notices
// @Produce json
// @Security BearerAuth
// @Param id path int true "Condominium ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.NoticeResponse} "Notices"
// @Failure 403 {object} dto.ErrorResponse "Not an active member"
// @Router /condominiums/{id}/notices [get]
func (c *NoticeController) GetByCondominium(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	condominiumID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.noticeService.GetByCondominium(ctx, userID, condominiumID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
