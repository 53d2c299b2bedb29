package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/morada/morada/internal/app/models/dto"
	"github.com/morada/morada/internal/app/services"
	"github.com/morada/morada/internal/middleware"
	"github.com/morada/morada/internal/pkg/helpers"
)

// CondominiumController handles condominium endpoints
type CondominiumController struct {
	condoService *services.CondominiumService
}

// NewCondominiumController creates a new CondominiumController
func NewCondominiumController(condoService *services.CondominiumService) *CondominiumController {
	return &CondominiumController{condoService: condoService}
}

// Create registers a condominium with its common areas
// @Summary Create a condominium
// @Description Creates a condominium, its common areas and the creator's active membership in one transaction. Administrators only.
// @Tags condominiums
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCondominiumRequest true "Condominium data"
// @Success 201 {object} dto.APIResponse{data=dto.CondominiumResponse} "Condominium created"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Administrators only"
// @Failure 409 {object} dto.ErrorResponse "Tax id already registered"
// @Router /condominiums [post]
func (c *CondominiumController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateCondominiumRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.condoService.Create(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// GetAll lists condominiums with pagination
// @Summary List condominiums
// @Tags condominiums
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.CondominiumListResponse} "Condominiums"
// @Router /condominiums [get]
func (c *CondominiumController) GetAll(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	resp, err := c.condoService.GetAll(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetByID retrieves a condominium with its common areas
// @Summary Get a condominium
// @Tags condominiums
// @Produce json
// @Security BearerAuth
// @Param id path int true "Condominium ID"
// @Success 200 {object} dto.APIResponse{data=dto.CondominiumResponse} "Condominium"
// @Failure 404 {object} dto.ErrorResponse "Condominium not found"
// @Router /condominiums/{id} [get]
func (c *CondominiumController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.condoService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetCommonAreas lists a condominium's common areas
// @Summary List common areas
// @Tags condominiums
// @Produce json
// @Security BearerAuth
// @Param id path int true "Condominium ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.CommonAreaResponse} "Common areas"
// @Failure 404 {object} dto.ErrorResponse "Condominium not found"
// @Router /condominiums/{id}/common-areas [get]
func (c *CondominiumController) GetCommonAreas(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.condoService.GetCommonAreas(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
