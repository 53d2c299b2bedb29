// Package auth contains role and membership checks shared by services.
package auth

import (
	"context"
	"errors"

	"github.com/morada/morada/internal/app/models"
	"github.com/morada/morada/internal/app/repositories"
	"github.com/morada/morada/internal/pkg/apperrors"
	"github.com/morada/morada/internal/pkg/logger"
)

// AuthorizationService handles authorization checks against the
// requester's role and condominium membership.
type AuthorizationService struct {
	userRepo       repositories.IUserRepository
	membershipRepo repositories.IMembershipRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(userRepo repositories.IUserRepository, membershipRepo repositories.IMembershipRepository) *AuthorizationService {
	return &AuthorizationService{
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
	}
}

// IsAdministrator checks if the user holds the administrator role.
func (s *AuthorizationService) IsAdministrator(ctx context.Context, userID int64) (bool, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return false, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error getting user by ID in IsAdministrator")
		return false, err
	}
	return user.Role == models.RoleAdministrator, nil
}

// ValidateAdministrator returns ErrPermissionDenied unless the user is an
// administrator.
func (s *AuthorizationService) ValidateAdministrator(ctx context.Context, userID int64) error {
	isAdmin, err := s.IsAdministrator(ctx, userID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// ValidateActiveMember returns ErrMembershipNotActive unless the user has
// an active membership in the condominium.
func (s *AuthorizationService) ValidateActiveMember(ctx context.Context, userID, condominiumID int64) error {
	active, err := s.membershipRepo.IsActiveMember(ctx, userID, condominiumID)
	if err != nil {
		logger.Error().Err(err).
			Int64("userID", userID).
			Int64("condominiumID", condominiumID).
			Msg("Error checking active membership")
		return err
	}
	if !active {
		return apperrors.ErrMembershipNotActive
	}
	return nil
}

// ValidateCondominiumAdmin checks that the user is an administrator with
// an active membership in the condominium.
func (s *AuthorizationService) ValidateCondominiumAdmin(ctx context.Context, userID, condominiumID int64) error {
	if err := s.ValidateAdministrator(ctx, userID); err != nil {
		return err
	}
	return s.ValidateActiveMember(ctx, userID, condominiumID)
}
