package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/morada/morada/internal/app/models"
	"github.com/morada/morada/internal/app/models/dto"
	"github.com/morada/morada/internal/pkg/apperrors"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from models.ReservationStatus
		to   models.ReservationStatus
		want bool
	}{
		{"pending to approved", models.ReservationPending, models.ReservationApproved, true},
		{"pending to declined", models.ReservationPending, models.ReservationDeclined, true},
		{"pending to cancelled", models.ReservationPending, models.ReservationCancelled, true},
		{"approved to cancelled", models.ReservationApproved, models.ReservationCancelled, true},
		{"approved to declined", models.ReservationApproved, models.ReservationDeclined, false},
		{"approved to pending", models.ReservationApproved, models.ReservationPending, false},
		{"declined is terminal", models.ReservationDeclined, models.ReservationApproved, false},
		{"cancelled is terminal", models.ReservationCancelled, models.ReservationApproved, false},
		{"cancelled to pending", models.ReservationCancelled, models.ReservationPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s): got %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestGenerateDaySlotsEmptyDay(t *testing.T) {
	day := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

	slots := GenerateDaySlots(day, nil)

	if len(slots) != 4 {
		t.Fatalf("slot count: got %d, want 4", len(slots))
	}

	wantStarts := []int{10, 13, 16, 19}
	for i, slot := range slots {
		if slot.StartTime.Hour() != wantStarts[i] {
			t.Errorf("slot %d start hour: got %d, want %d", i, slot.StartTime.Hour(), wantStarts[i])
		}
		if got := slot.EndTime.Sub(slot.StartTime); got != 3*time.Hour {
			t.Errorf("slot %d duration: got %v, want 3h", i, got)
		}
		if !slot.IsAvailable {
			t.Errorf("slot %d on empty day should be available", i)
		}
	}
}

func TestGenerateDaySlotsBlockingReservation(t *testing.T) {
	day := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	reservations := []*models.Reservation{
		{
			StartTime: day.Add(13 * time.Hour),
			EndTime:   day.Add(16 * time.Hour),
			Status:    models.ReservationApproved,
		},
	}

	slots := GenerateDaySlots(day, reservations)

	wantAvailable := []bool{true, false, true, true}
	for i, slot := range slots {
		if slot.IsAvailable != wantAvailable[i] {
			t.Errorf("slot %d availability: got %v, want %v", i, slot.IsAvailable, wantAvailable[i])
		}
	}
}

func TestGenerateDaySlotsPendingAlsoBlocks(t *testing.T) {
	day := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	reservations := []*models.Reservation{
		{
			StartTime: day.Add(10 * time.Hour),
			EndTime:   day.Add(13 * time.Hour),
			Status:    models.ReservationPending,
		},
	}

	slots := GenerateDaySlots(day, reservations)

	if slots[0].IsAvailable {
		t.Error("slot overlapping a pending reservation should be unavailable")
	}
	for i := 1; i < len(slots); i++ {
		if !slots[i].IsAvailable {
			t.Errorf("slot %d should be available", i)
		}
	}
}

func TestGenerateDaySlotsTerminalStatusDoesNotBlock(t *testing.T) {
	day := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	reservations := []*models.Reservation{
		{
			StartTime: day.Add(13 * time.Hour),
			EndTime:   day.Add(16 * time.Hour),
			Status:    models.ReservationDeclined,
		},
		{
			StartTime: day.Add(16 * time.Hour),
			EndTime:   day.Add(19 * time.Hour),
			Status:    models.ReservationCancelled,
		},
	}

	slots := GenerateDaySlots(day, reservations)

	for i, slot := range slots {
		if !slot.IsAvailable {
			t.Errorf("slot %d should be available, declined and cancelled reservations do not block", i)
		}
	}
}

func TestGenerateDaySlotsPartialOverlapBlocks(t *testing.T) {
	day := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	// A reservation straddling two slots blocks both.
	reservations := []*models.Reservation{
		{
			StartTime: day.Add(15 * time.Hour),
			EndTime:   day.Add(17 * time.Hour),
			Status:    models.ReservationApproved,
		},
	}

	slots := GenerateDaySlots(day, reservations)

	wantAvailable := []bool{true, false, false, true}
	for i, slot := range slots {
		if slot.IsAvailable != wantAvailable[i] {
			t.Errorf("slot %d availability: got %v, want %v", i, slot.IsAvailable, wantAvailable[i])
		}
	}
}

func TestSameUTCDay(t *testing.T) {
	day := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"within day", day.Add(10 * time.Hour), day.Add(13 * time.Hour), true},
		{"ends at midnight", day.Add(19 * time.Hour), day.Add(24 * time.Hour), true},
		{"crosses midnight", day.Add(22 * time.Hour), day.Add(26 * time.Hour), false},
		{"different days", day, day.Add(48 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sameUTCDay(tt.start, tt.end); got != tt.want {
				t.Errorf("sameUTCDay(%v, %v): got %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func newReservationTestService() (*ReservationService, *memReservationRepo) {
	authz, _, _ := newTestAuthz()

	condos := newMemCondominiumRepo()
	condos.addCondo(models.Condominium{ID: 1, Name: "Residencial Jardim", TaxID: "12345678000199"})
	condos.addArea(models.CommonArea{ID: 10, CondominiumID: 1, Name: "Party Hall", IsAvailable: true})

	reservations := newMemReservationRepo()
	return NewReservationService(reservations, condos, authz, testLogger()), reservations
}

func bookingRequest(startHour, endHour int) *dto.CreateReservationRequest {
	day := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	return &dto.CreateReservationRequest{
		CommonAreaID:  10,
		CondominiumID: 1,
		StartTime:     day.Add(time.Duration(startHour) * time.Hour),
		EndTime:       day.Add(time.Duration(endHour) * time.Hour),
		Title:         "Birthday party",
	}
}

func TestCreateRejectsOverlappingBooking(t *testing.T) {
	svc, _ := newReservationTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, 2, bookingRequest(13, 16))
	if err != nil {
		t.Fatalf("first booking: unexpected error %v", err)
	}
	if first.Status != "PENDING" {
		t.Errorf("first booking status: got %s, want PENDING", first.Status)
	}

	// 14:00-17:00 intersects the 13:00-16:00 booking
	if _, err := svc.Create(ctx, 2, bookingRequest(14, 17)); !errors.Is(err, apperrors.ErrReservationConflict) {
		t.Fatalf("overlapping booking: got %v, want ErrReservationConflict", err)
	}

	// The end bound is exclusive, so a booking starting at 16:00 fits
	if _, err := svc.Create(ctx, 2, bookingRequest(16, 19)); err != nil {
		t.Fatalf("adjacent booking: unexpected error %v", err)
	}
}

func TestCreateAllowsRebookingAfterDecline(t *testing.T) {
	svc, reservations := newReservationTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 2, bookingRequest(13, 16))
	if err != nil {
		t.Fatalf("first booking: unexpected error %v", err)
	}

	if err := reservations.UpdateStatus(ctx, created.ID, models.ReservationDeclined); err != nil {
		t.Fatalf("decline: unexpected error %v", err)
	}

	if _, err := svc.Create(ctx, 2, bookingRequest(14, 17)); err != nil {
		t.Fatalf("booking over declined slot: unexpected error %v", err)
	}
}

func TestCreateRejectsNonMember(t *testing.T) {
	svc, _ := newReservationTestService()

	_, err := svc.Create(context.Background(), 99, bookingRequest(13, 16))
	if !errors.Is(err, apperrors.ErrMembershipNotActive) {
		t.Fatalf("non-member booking: got %v, want ErrMembershipNotActive", err)
	}
}
