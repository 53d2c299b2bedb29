package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/morada/morada/internal/app/auth"
	"github.com/morada/morada/internal/app/models"
	"github.com/morada/morada/internal/app/models/dto"
	"github.com/morada/morada/internal/app/repositories"
	"github.com/morada/morada/internal/pkg/apperrors"
)

// MembershipService handles join requests and their approval flow.
type MembershipService struct {
	membershipRepo repositories.IMembershipRepository
	condoRepo      repositories.ICondominiumRepository
	authzService   *auth.AuthorizationService
	logger         zerolog.Logger
}

// NewMembershipService creates a new MembershipService
func NewMembershipService(
	membershipRepo repositories.IMembershipRepository,
	condoRepo repositories.ICondominiumRepository,
	authzService *auth.AuthorizationService,
	logger zerolog.Logger,
) *MembershipService {
	return &MembershipService{
		membershipRepo: membershipRepo,
		condoRepo:      condoRepo,
		authzService:   authzService,
		logger:         logger,
	}
}

// RequestJoin creates a pending membership for the user in the condominium.
func (s *MembershipService) RequestJoin(ctx context.Context, userID, condominiumID int64) (*dto.MembershipResponse, error) {
	if _, err := s.condoRepo.GetByID(ctx, condominiumID); err != nil {
		return nil, err
	}

	id, err := s.membershipRepo.Create(ctx, userID, condominiumID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("membershipID", id).
		Int64("userID", userID).
		Int64("condominiumID", condominiumID).
		Msg("Membership requested")

	membership, err := s.membershipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapMembershipResponse(membership)
	return &resp, nil
}

// UpdateStatus accepts or rejects a pending membership. Only an
// administrator of the condominium may decide.
func (s *MembershipService) UpdateStatus(ctx context.Context, adminID, membershipID int64, status string) (*dto.MembershipResponse, error) {
	target, ok := models.ParseMembershipStatus(status)
	if !ok || target == models.MembershipPending {
		return nil, apperrors.NewValidationError("status must be ACTIVE or REJECTED")
	}

	membership, err := s.membershipRepo.GetByID(ctx, membershipID)
	if err != nil {
		return nil, err
	}

	if err := s.authzService.ValidateCondominiumAdmin(ctx, adminID, membership.CondominiumID); err != nil {
		return nil, err
	}

	if err := s.membershipRepo.UpdateStatus(ctx, membershipID, target); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("membershipID", membershipID).
		Int64("adminID", adminID).
		Str("status", status).
		Msg("Membership status updated")

	membership, err = s.membershipRepo.GetByID(ctx, membershipID)
	if err != nil {
		return nil, err
	}
	resp := mapMembershipResponse(membership)
	return &resp, nil
}

// GetActiveForUser lists the user's active memberships with condominium data.
func (s *MembershipService) GetActiveForUser(ctx context.Context, userID int64) ([]dto.MembershipResponse, error) {
	memberships, err := s.membershipRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapMembershipResponses(memberships), nil
}

// GetPendingForCondominium lists a condominium's pending join requests.
// Restricted to administrators of that condominium.
func (s *MembershipService) GetPendingForCondominium(ctx context.Context, adminID, condominiumID int64) ([]dto.MembershipResponse, error) {
	if err := s.authzService.ValidateCondominiumAdmin(ctx, adminID, condominiumID); err != nil {
		return nil, err
	}

	memberships, err := s.membershipRepo.GetPendingByCondominiumID(ctx, condominiumID)
	if err != nil {
		return nil, err
	}
	return mapMembershipResponses(memberships), nil
}

func mapMembershipResponses(memberships []*models.Membership) []dto.MembershipResponse {
	responses := make([]dto.MembershipResponse, 0, len(memberships))
	for _, m := range memberships {
		responses = append(responses, mapMembershipResponse(m))
	}
	return responses
}

func mapMembershipResponse(m *models.Membership) dto.MembershipResponse {
	resp := dto.MembershipResponse{
		ID:            m.ID,
		UserID:        m.UserID,
		CondominiumID: m.CondominiumID,
		Status:        m.Status.String(),
		User:          mapUserBasic(m.User),
		CreatedAt:     m.CreatedAt,
	}
	if m.Condominium != nil {
		condo := mapCondominiumResponse(m.Condominium)
		resp.Condominium = &condo
	}
	return resp
}
