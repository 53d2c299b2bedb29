package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/morada/morada/internal/app/models/dto"
	"github.com/morada/morada/internal/app/services"
	"github.com/morada/morada/internal/middleware"
)

// MembershipController handles membership endpoints
type MembershipController struct {
	membershipService *services.MembershipService
}

// NewMembershipController creates a new MembershipController
func NewMembershipController(membershipService *services.MembershipService) *MembershipController {
	return &MembershipController{membershipService: membershipService}
}

// RequestJoin creates a pending membership for the caller
// @Summary Request to join a condominium
// @Tags memberships
// @Produce json
// @Security BearerAuth
// @Param id path int true "Condominium ID"
// @Success 201 {object} dto.APIResponse{data=dto.MembershipResponse} "Membership requested"
// @Failure 404 {object} dto.ErrorResponse "Condominium not found"
// @Failure 409 {object} dto.ErrorResponse "Membership already requested"
// @Router /condominiums/{id}/memberships [post]
func (c *MembershipController) RequestJoin(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	condominiumID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.membershipService.RequestJoin(ctx, userID, condominiumID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// UpdateStatus accepts or rejects a pending membership
// @Summary Decide a membership request
// @Description Sets a membership to ACTIVE or REJECTED. Administrators of the condominium only.
// @Tags memberships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Membership ID"
// @Param request body dto.UpdateMembershipStatusRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=dto.MembershipResponse} "Membership updated"
// @Failure 403 {object} dto.ErrorResponse "Not an administrator of this condominium"
// @Failure 404 {object} dto.ErrorResponse "Membership not found"
// @Router /memberships/{id}/status [put]
func (c *MembershipController) UpdateStatus(ctx *gin.Context) {
	adminID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	membershipID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateMembershipStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.membershipService.UpdateStatus(ctx, adminID, membershipID, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetMine lists the caller's active memberships
// @Summary List own active memberships
// @Tags memberships
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.MembershipResponse} "Active memberships"
// @Router /users/me/memberships [get]
func (c *MembershipController) GetMine(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	resp, err := c.membershipService.GetActiveForUser(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetPending lists a condominium's pending join requests
// @Summary List pending membership requests
// @Tags memberships
// @Produce json
// @Security BearerAuth
// @Param id path int true "Condominium ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.MembershipResponse} "Pending requests"
// @Failure 403 {object} dto.ErrorResponse "Not an administrator of this condominium"
// @Router /condominiums/{id}/memberships/pending [get]
func (c *MembershipController) GetPending(ctx *gin.Context) {
	adminID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	condominiumID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.membershipService.GetPendingForCondominium(ctx, adminID, condominiumID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
