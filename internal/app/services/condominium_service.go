package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/morada/morada/internal/app/auth"
	"github.com/morada/morada/internal/app/models"
	"github.com/morada/morada/internal/app/models/dto"
	"github.com/morada/morada/internal/app/repositories"
	"github.com/morada/morada/internal/pkg/apperrors"
	"github.com/morada/morada/internal/pkg/helpers"
	"github.com/morada/morada/internal/pkg/validation"
)

// CondominiumService handles condominium and common area operations.
type CondominiumService struct {
	condoRepo    repositories.ICondominiumRepository
	authzService *auth.AuthorizationService
	logger       zerolog.Logger
}

// NewCondominiumService creates a new CondominiumService
func NewCondominiumService(
	condoRepo repositories.ICondominiumRepository,
	authzService *auth.AuthorizationService,
	logger zerolog.Logger,
) *CondominiumService {
	return &CondominiumService{
		condoRepo:    condoRepo,
		authzService: authzService,
		logger:       logger,
	}
}

// Create registers a condominium with its common areas. Only
// administrators may create condominiums; the creator receives an active
// membership in the same transaction.
func (s *CondominiumService) Create(ctx context.Context, userID int64, req *dto.CreateCondominiumRequest) (*dto.CondominiumResponse, error) {
	if err := s.authzService.ValidateAdministrator(ctx, userID); err != nil {
		return nil, err
	}

	if !validation.CompiledPatterns.TaxID.MatchString(req.TaxID) {
		return nil, apperrors.NewValidationError("taxId must be a 14-digit number")
	}

	condo := &models.Condominium{
		Name:      req.Name,
		TaxID:     req.TaxID,
		Address:   req.Address,
		CreatedBy: userID,
	}

	areas := make([]models.CommonArea, 0, len(req.CommonAreas))
	for _, a := range req.CommonAreas {
		available := true
		if a.IsAvailable != nil {
			available = *a.IsAvailable
		}
		areas = append(areas, models.CommonArea{
			Name:        a.Name,
			IsAvailable: available,
		})
	}

	id, err := s.condoRepo.CreateWithAreas(ctx, condo, areas)
	if err != nil {
		s.logger.Error().Err(err).Str("taxId", req.TaxID).Msg("Failed to create condominium")
		return nil, err
	}

	s.logger.Info().Int64("condominiumID", id).Int64("createdBy", userID).Msg("Condominium created")
	return s.GetByID(ctx, id)
}

// GetByID retrieves a condominium with its common areas.
func (s *CondominiumService) GetByID(ctx context.Context, id int64) (*dto.CondominiumResponse, error) {
	condo, err := s.condoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapCondominiumResponse(condo)
	return &resp, nil
}

// GetAll retrieves condominiums with pagination.
func (s *CondominiumService) GetAll(ctx context.Context, page, size int) (*dto.CondominiumListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	condos, total, err := s.condoRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CondominiumResponse, 0, len(condos))
	for i := range condos {
		responses = append(responses, mapCondominiumResponse(&condos[i]))
	}

	return &dto.CondominiumListResponse{
		Condominiums: responses,
		Pagination:   helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// GetCommonAreas retrieves the common areas of a condominium.
func (s *CondominiumService) GetCommonAreas(ctx context.Context, condominiumID int64) ([]dto.CommonAreaResponse, error) {
	if _, err := s.condoRepo.GetByID(ctx, condominiumID); err != nil {
		return nil, err
	}

	areas, err := s.condoRepo.GetCommonAreas(ctx, condominiumID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommonAreaResponse, 0, len(areas))
	for _, a := range areas {
		responses = append(responses, mapCommonAreaResponse(a))
	}
	return responses, nil
}

func mapCondominiumResponse(condo *models.Condominium) dto.CondominiumResponse {
	resp := dto.CondominiumResponse{
		ID:        condo.ID,
		Name:      condo.Name,
		TaxID:     condo.TaxID,
		Address:   condo.Address,
		CreatedBy: condo.CreatedBy,
		CreatedAt: condo.CreatedAt,
	}
	for _, a := range condo.CommonAreas {
		resp.CommonAreas = append(resp.CommonAreas, mapCommonAreaResponse(a))
	}
	return resp
}

func mapCommonAreaResponse(area models.CommonArea) dto.CommonAreaResponse {
	return dto.CommonAreaResponse{
		ID:          area.ID,
		Name:        area.Name,
		IsAvailable: area.IsAvailable,
	}
}
