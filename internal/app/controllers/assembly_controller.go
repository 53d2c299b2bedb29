package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/morada/morada/internal/app/models/dto"
	"github.com/morada/morada/internal/app/services"
	"github.com/morada/morada/internal/middleware"
)

// AssemblyController handles assembly endpoints
type AssemblyController struct {
	assemblyService *services.AssemblyService
}

// NewAssemblyController creates a new AssemblyController
func NewAssemblyController(assemblyService *services.AssemblyService) *AssemblyController {
	return &AssemblyController{assemblyService: assemblyService}
}

// Create schedules an assembly
// @Summary Schedule an assembly
// @Tags assemblies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Condominium ID"
// @Param request body dto.CreateAssemblyRequest true "Assembly data"
// @Success 201 {object} dto.APIResponse{data=dto.AssemblyResponse} "Assembly scheduled"
// @Failure 403 {object} dto.ErrorResponse "Not an administrator of this condominium"
// @Router /condominiums/{id}/assemblies [post]
func (c *AssemblyController) Create(ctx *gin.Context) {
	creatorID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	condominiumID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateAssemblyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.assemblyService.Create(ctx, creatorID, condominiumID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// GetByCondominium lists a condominium's assemblies
// @Summary List assemblies
// @Tags assemblies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Condominium ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.AssemblyResponse} "Assemblies"
// @Failure 403 {object} dto.ErrorResponse "Not an active member"
// @Router /condominiums/{id}/assemblies [get]
func (c *AssemblyController) GetByCondominium(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	condominiumID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.assemblyService.GetByCondominium(ctx, userID, condominiumID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// ConfirmAttendance records the caller's attendance
// @Summary Confirm attendance
// @Description Records the caller's presence for an assembly. Confirming twice reports alreadyConfirmed instead of creating a duplicate.
// @Tags assemblies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assembly ID"
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceResponse} "Attendance recorded"
// @Failure 403 {object} dto.ErrorResponse "Not an active member"
// @Failure 404 {object} dto.ErrorResponse "Assembly not found"
// @Router /assemblies/{id}/attendance [post]
func (c *AssemblyController) ConfirmAttendance(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	assemblyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.assemblyService.ConfirmAttendance(ctx, userID, assemblyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetAttendance lists an assembly's confirmed attendees
// @Summary List attendance
// @Tags assemblies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assembly ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.AttendanceResponse} "Attendees"
// @Failure 404 {object} dto.ErrorResponse "Assembly not found"
// @Router /assemblies/{id}/attendance [get]
func (c *AssemblyController) GetAttendance(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	assemblyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.assemblyService.GetAttendance(ctx, userID, assemblyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
