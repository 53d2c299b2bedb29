package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/morada/morada/internal/app/auth"
	"github.com/morada/morada/internal/app/models"
	"github.com/morada/morada/internal/app/models/dto"
	"github.com/morada/morada/internal/app/repositories"
	"github.com/morada/morada/internal/pkg/apperrors"
	"github.com/morada/morada/internal/pkg/helpers"
)

// Fixed daily booking window: four 3-hour slots from 10:00 to 22:00 UTC.
const (
	slotOpeningHour = 10
	slotClosingHour = 22
	slotHours       = 3
)

// ReservationService handles common-area bookings, the availability slot
// view and status transitions.
type ReservationService struct {
	reservationRepo repositories.IReservationRepository
	condoRepo       repositories.ICondominiumRepository
	authzService    *auth.AuthorizationService
	logger          zerolog.Logger
}

// NewReservationService creates a new ReservationService
func NewReservationService(
	reservationRepo repositories.IReservationRepository,
	condoRepo repositories.ICondominiumRepository,
	authzService *auth.AuthorizationService,
	logger zerolog.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		condoRepo:       condoRepo,
		authzService:    authzService,
		logger:          logger,
	}
}

// Create books a common area for the requesting user. The conflict check
// against pending and approved reservations runs transactionally in the
// repository; a losing concurrent request gets ErrReservationConflict.
func (s *ReservationService) Create(ctx context.Context, userID int64, req *dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	start := req.StartTime.UTC()
	end := req.EndTime.UTC()
	if !end.After(start) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	if !sameUTCDay(start, end) {
		return nil, apperrors.ErrReservationOutsideDay
	}

	if err := s.authzService.ValidateActiveMember(ctx, userID, req.CondominiumID); err != nil {
		return nil, err
	}

	area, err := s.condoRepo.GetCommonAreaByID(ctx, req.CommonAreaID)
	if err != nil {
		return nil, err
	}
	if area.CondominiumID != req.CondominiumID {
		return nil, apperrors.ErrCommonAreaNotFound
	}
	if !area.IsAvailable {
		return nil, apperrors.ErrCommonAreaUnavailable
	}

	reservation := &models.Reservation{
		CommonAreaID:  req.CommonAreaID,
		UserID:        userID,
		CondominiumID: req.CondominiumID,
		StartTime:     start,
		EndTime:       end,
		Title:         req.Title,
		Notes:         req.Notes,
	}

	id, err := s.reservationRepo.CreateChecked(ctx, reservation)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("reservationID", id).
		Int64("userID", userID).
		Int64("commonAreaID", req.CommonAreaID).
		Time("start", start).
		Msg("Reservation created")

	created, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapReservationResponse(created)
	return &resp, nil
}

// UpdateStatus applies an administrator's decision to a reservation.
// Transitions outside the allowed set return ErrIllegalStatusChange.
func (s *ReservationService) UpdateStatus(ctx context.Context, adminID, reservationID int64, status string) (*dto.ReservationResponse, error) {
	target, ok := models.ParseReservationStatus(status)
	if !ok || target == models.ReservationPending {
		return nil, apperrors.NewValidationError("status must be APPROVED, DECLINED or CANCELLED")
	}

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if err := s.authzService.ValidateCondominiumAdmin(ctx, adminID, reservation.CondominiumID); err != nil {
		return nil, err
	}

	if !CanTransition(reservation.Status, target) {
		return nil, apperrors.ErrIllegalStatusChange
	}

	if err := s.reservationRepo.UpdateStatus(ctx, reservationID, target); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("reservationID", reservationID).
		Int64("adminID", adminID).
		Str("from", reservation.Status.String()).
		Str("to", target.String()).
		Msg("Reservation status updated")

	reservation, err = s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	resp := mapReservationResponse(reservation)
	return &resp, nil
}

// GetAvailability generates the fixed slot view for an area on a given
// UTC day, marking slots that overlap a pending or approved reservation.
func (s *ReservationService) GetAvailability(ctx context.Context, commonAreaID int64, date string) (*dto.AvailabilityResponse, error) {
	day, err := helpers.ParseDateUTC(date)
	if err != nil {
		return nil, apperrors.NewValidationError("date must be formatted as YYYY-MM-DD")
	}

	if _, err := s.condoRepo.GetCommonAreaByID(ctx, commonAreaID); err != nil {
		return nil, err
	}

	reservations, err := s.reservationRepo.GetBlockingForAreaOnDay(ctx, commonAreaID, day)
	if err != nil {
		return nil, err
	}

	return &dto.AvailabilityResponse{
		CommonAreaID: commonAreaID,
		Date:         date,
		Slots:        GenerateDaySlots(day, reservations),
	}, nil
}

// GetByCondominium lists a condominium's reservations for its members.
func (s *ReservationService) GetByCondominium(ctx context.Context, userID, condominiumID int64, page, size int) (*dto.PaginatedResponse, error) {
	if err := s.authzService.ValidateActiveMember(ctx, userID, condominiumID); err != nil {
		return nil, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	reservations, total, err := s.reservationRepo.GetByCondominiumID(ctx, condominiumID, offset, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		responses = append(responses, mapReservationResponse(r))
	}

	return &dto.PaginatedResponse{
		Items:      responses,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// CanTransition reports whether a reservation may move from one status to
// another. Pending reservations accept any decision, approved ones may
// still be cancelled, declined and cancelled are terminal.
func CanTransition(from, to models.ReservationStatus) bool {
	switch from {
	case models.ReservationPending:
		return to == models.ReservationApproved ||
			to == models.ReservationDeclined ||
			to == models.ReservationCancelled
	case models.ReservationApproved:
		return to == models.ReservationCancelled
	default:
		return false
	}
}

// GenerateDaySlots builds the fixed slot set for a UTC day and marks each
// slot unavailable when it overlaps any of the given reservations. The
// slot set is always exactly four entries; only the flags vary.
func GenerateDaySlots(day time.Time, reservations []*models.Reservation) []dto.SlotResponse {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	var slots []dto.SlotResponse
	for hour := slotOpeningHour; hour < slotClosingHour; hour += slotHours {
		start := dayStart.Add(time.Duration(hour) * time.Hour)
		end := start.Add(slotHours * time.Hour)

		available := true
		for _, r := range reservations {
			if r.Status.Blocking() && r.Overlaps(start, end) {
				available = false
				break
			}
		}

		slots = append(slots, dto.SlotResponse{
			StartTime:   start,
			EndTime:     end,
			IsAvailable: available,
		})
	}
	return slots
}

func sameUTCDay(start, end time.Time) bool {
	sy, sm, sd := start.Date()
	// The end bound is exclusive, so a reservation ending exactly at
	// midnight still belongs to the starting day.
	ey, em, ed := end.Add(-time.Nanosecond).Date()
	return sy == ey && sm == em && sd == ed
}

func mapReservationResponse(r *models.Reservation) dto.ReservationResponse {
	resp := dto.ReservationResponse{
		ID:            r.ID,
		CommonAreaID:  r.CommonAreaID,
		CondominiumID: r.CondominiumID,
		UserID:        r.UserID,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Status:        r.Status.String(),
		Title:         r.Title,
		Notes:         r.Notes,
		User:          mapUserBasic(r.User),
		CreatedAt:     r.CreatedAt,
	}
	if r.CommonArea != nil {
		area := mapCommonAreaResponse(*r.CommonArea)
		resp.CommonArea = &area
	}
	return resp
}
