package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/morada/morada/internal/app/auth"
	"github.com/morada/morada/internal/app/models"
	"github.com/morada/morada/internal/app/models/dto"
	"github.com/morada/morada/internal/app/repositories"
)

// AssemblyService handles assemblies and attendance confirmations.
type AssemblyService struct {
	assemblyRepo repositories.IAssemblyRepository
	authzService *auth.AuthorizationService
	logger       zerolog.Logger
}

// NewAssemblyService creates a new AssemblyService
func NewAssemblyService(
	assemblyRepo repositories.IAssemblyRepository,
	authzService *auth.AuthorizationService,
	logger zerolog.Logger,
) *AssemblyService {
	return &AssemblyService{
		assemblyRepo: assemblyRepo,
		authzService: authzService,
		logger:       logger,
	}
}

// Create schedules an assembly. Only administrators of the condominium
// may schedule.
func (s *AssemblyService) Create(ctx context.Context, creatorID, condominiumID int64, req *dto.CreateAssemblyRequest) (*dto.AssemblyResponse, error) {
	if err := s.authzService.ValidateCondominiumAdmin(ctx, creatorID, condominiumID); err != nil {
		return nil, err
	}

	assembly := &models.Assembly{
		Title:         req.Title,
		Description:   req.Description,
		ScheduledAt:   req.ScheduledAt.UTC(),
		CondominiumID: condominiumID,
		CreatedBy:     creatorID,
	}

	id, err := s.assemblyRepo.Create(ctx, assembly)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("assemblyID", id).Int64("condominiumID", condominiumID).Msg("Assembly scheduled")

	created, err := s.assemblyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapAssemblyResponse(created)
	return &resp, nil
}

// GetByCondominium lists a condominium's assemblies for its members.
func (s *AssemblyService) GetByCondominium(ctx context.Context, userID, condominiumID int64) ([]dto.AssemblyResponse, error) {
	if err := s.authzService.ValidateActiveMember(ctx, userID, condominiumID); err != nil {
		return nil, err
	}

	assemblies, err := s.assemblyRepo.GetByCondominiumID(ctx, condominiumID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AssemblyResponse, 0, len(assemblies))
	for _, a := range assemblies {
		responses = append(responses, mapAssemblyResponse(a))
	}
	return responses, nil
}

// ConfirmAttendance records the user's attendance. Confirming twice never
// creates a second row; the response flags the repeat instead.
func (s *AssemblyService) ConfirmAttendance(ctx context.Context, userID, assemblyID int64) (*dto.AttendanceResponse, error) {
	assembly, err := s.assemblyRepo.GetByID(ctx, assemblyID)
	if err != nil {
		return nil, err
	}

	if err := s.authzService.ValidateActiveMember(ctx, userID, assembly.CondominiumID); err != nil {
		return nil, err
	}

	alreadyConfirmed, err := s.assemblyRepo.ConfirmAttendance(ctx, assemblyID, userID)
	if err != nil {
		return nil, err
	}

	if !alreadyConfirmed {
		s.logger.Info().Int64("assemblyID", assemblyID).Int64("userID", userID).Msg("Attendance confirmed")
	}

	return &dto.AttendanceResponse{
		AssemblyID:       assemblyID,
		UserID:           userID,
		ConfirmedAt:      time.Now().UTC(),
		AlreadyConfirmed: alreadyConfirmed,
	}, nil
}

// GetAttendance lists an assembly's confirmed attendees for members of
// the condominium.
func (s *AssemblyService) GetAttendance(ctx context.Context, userID, assemblyID int64) ([]dto.AttendanceResponse, error) {
	assembly, err := s.assemblyRepo.GetByID(ctx, assemblyID)
	if err != nil {
		return nil, err
	}

	if err := s.authzService.ValidateActiveMember(ctx, userID, assembly.CondominiumID); err != nil {
		return nil, err
	}

	attendances, err := s.assemblyRepo.GetAttendance(ctx, assemblyID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, dto.AttendanceResponse{
			AssemblyID:  att.AssemblyID,
			UserID:      att.UserID,
			ConfirmedAt: att.ConfirmedAt,
			User:        mapUserBasic(att.User),
		})
	}
	return responses, nil
}

func mapAssemblyResponse(a *models.Assembly) dto.AssemblyResponse {
	return dto.AssemblyResponse{
		ID:            a.ID,
		Title:         a.Title,
		Description:   a.Description,
		ScheduledAt:   a.ScheduledAt,
		CondominiumID: a.CondominiumID,
		Creator:       mapUserBasic(a.Creator),
		CreatedAt:     a.CreatedAt,
	}
}
