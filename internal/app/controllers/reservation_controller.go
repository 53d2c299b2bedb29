package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/morada/morada/internal/app/models/dto"
	"github.com/morada/morada/internal/app/services"
	"github.com/morada/morada/internal/middleware"
	"github.com/morada/morada/internal/pkg/helpers"
)

// ReservationController handles booking endpoints
type ReservationController struct {
	reservationService *services.ReservationService
}

// NewReservationController creates a new ReservationController
func NewReservationController(reservationService *services.ReservationService) *ReservationController {
	return &ReservationController{reservationService: reservationService}
}

// Create books a common area
// @Summary Create a reservation
// @Description Books a common area for the caller. The slot must not overlap any pending or approved reservation of the same area.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateReservationRequest true "Booking data"
// @Success 201 {object} dto.APIResponse{data=dto.ReservationResponse} "Reservation created"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Not an active member"
// @Failure 409 {object} dto.ErrorResponse "Time range conflicts with an existing reservation"
// @Router /reservations [post]
func (c *ReservationController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateReservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.reservationService.Create(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// UpdateStatus applies an administrator's decision
// @Summary Update reservation status
// @Description Moves a reservation to APPROVED, DECLINED or CANCELLED. Pending reservations accept any decision, approved ones may only be cancelled.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Param request body dto.UpdateReservationStatusRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=dto.ReservationResponse} "Reservation updated"
// @Failure 403 {object} dto.ErrorResponse "Not an administrator of this condominium"
// @Failure 404 {object} dto.ErrorResponse "Reservation not found"
// @Failure 409 {object} dto.ErrorResponse "Transition not allowed"
// @Router /reservations/{id}/status [put]
func (c *ReservationController) UpdateStatus(ctx *gin.Context) {
	adminID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	reservationID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateReservationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.reservationService.UpdateStatus(ctx, adminID, reservationID, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetAvailability returns the fixed slot view for an area and day
// @Summary Get slot availability
// @Description Returns the four fixed 3-hour slots (10-13, 13-16, 16-19, 19-22 UTC) for a common area on a given day.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Common area ID"
// @Param date query string true "Day in YYYY-MM-DD format"
// @Success 200 {object} dto.APIResponse{data=dto.AvailabilityResponse} "Slot view"
// @Failure 404 {object} dto.ErrorResponse "Common area not found"
// @Router /common-areas/{id}/availability [get]
func (c *ReservationController) GetAvailability(ctx *gin.Context) {
	commonAreaID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	date := ctx.Query("date")
	if date == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "date query parameter is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.reservationService.GetAvailability(ctx, commonAreaID, date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetByCondominium lists a condominium's reservations
// @Summary List reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Condominium ID"
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Reservations"
// @Failure 403 {object} dto.ErrorResponse "Not an active member"
// @Router /condominiums/{id}/reservations [get]
func (c *ReservationController) GetByCondominium(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	condominiumID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)

	resp, err := c.reservationService.GetByCondominium(ctx, userID, condominiumID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
