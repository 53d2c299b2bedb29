package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/morada/morada/internal/app/auth"
	"github.com/morada/morada/internal/app/models"
	"github.com/morada/morada/internal/app/models/dto"
	"github.com/morada/morada/internal/app/repositories"
)

// EventService handles condominium events.
type EventService struct {
	eventRepo    *repositories.EventRepository
	authzService *auth.AuthorizationService
	logger       zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(
	eventRepo *repositories.EventRepository,
	authzService *auth.AuthorizationService,
	logger zerolog.Logger,
) *EventService {
	return &EventService{
		eventRepo:    eventRepo,
		authzService: authzService,
		logger:       logger,
	}
}

// Create schedules an event. Only administrators of the condominium may
// schedule.
func (s *EventService) Create(ctx context.Context, creatorID, condominiumID int64, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	if err := s.authzService.ValidateCondominiumAdmin(ctx, creatorID, condominiumID); err != nil {
		return nil, err
	}

	event := &models.Event{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		ScheduledAt:   req.ScheduledAt.UTC(),
		CondominiumID: condominiumID,
		CreatedBy:     creatorID,
	}

	id, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("eventID", id).Int64("condominiumID", condominiumID).Msg("Event scheduled")

	created, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapEventResponse(created)
	return &resp, nil
}

// GetByCondominium lists a condominium's events for its members.
func (s *EventService) GetByCondominium(ctx context.Context, userID, condominiumID int64) ([]dto.EventResponse, error) {
	if err := s.authzService.ValidateActiveMember(ctx, userID, condominiumID); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.GetByCondominiumID(ctx, condominiumID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, mapEventResponse(e))
	}
	return responses, nil
}

func mapEventResponse(e *models.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		Location:      e.Location,
		ScheduledAt:   e.ScheduledAt,
		CondominiumID: e.CondominiumID,
		Creator:       mapUserBasic(e.Creator),
		CreatedAt:     e.CreatedAt,
	}
}
