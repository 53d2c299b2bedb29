package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/morada/morada/internal/app/models/dto"
	"github.com/morada/morada/internal/app/services"
	"github.com/morada/morada/internal/middleware"
)

// EventController handles event endpoints
type EventController struct {
	eventService *services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService *services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// Create schedules an event
// @Summary Schedule an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Condominium ID"
// @Param request body dto.CreateEventRequest true "Event data"
// @Success 201 {object} dto.APIResponse{data=dto.EventResponse} "Event scheduled"
// @Failure 403 {object} dto.ErrorResponse "Not an administrator of this condominium"
// @Router /condominiums/{id}/events [post]
func (c *EventController) Create(ctx *gin.Context) {
	creatorID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	condominiumID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.eventService.Create(ctx, creatorID, condominiumID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// GetByCondominium lists a condominium's events
// @Summary List events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Condominium ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.EventResponse} "Events"
// @Failure 403 {object} dto.ErrorResponse "Not an active member"
// @Router /condominiums/{id}/events [get]
func (c *EventController) GetByCondominium(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	condominiumID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.eventService.GetByCondominium(ctx, userID, condominiumID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
