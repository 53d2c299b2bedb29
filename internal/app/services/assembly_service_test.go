package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/morada/morada/internal/app/models"
	"github.com/morada/morada/internal/pkg/apperrors"
)

func newAssemblyTestService() (*AssemblyService, *memAssemblyRepo) {
	authz, _, _ := newTestAuthz()

	assemblies := newMemAssemblyRepo()
	assemblies.addAssembly(models.Assembly{
		ID:            5,
		Title:         "Annual budget assembly",
		ScheduledAt:   time.Date(2026, time.April, 10, 19, 0, 0, 0, time.UTC),
		CondominiumID: 1,
		CreatedBy:     1,
	})

	return NewAssemblyService(assemblies, authz, testLogger()), assemblies
}

func TestConfirmAttendanceIsIdempotent(t *testing.T) {
	svc, assemblies := newAssemblyTestService()
	ctx := context.Background()

	first, err := svc.ConfirmAttendance(ctx, 2, 5)
	if err != nil {
		t.Fatalf("first confirmation: unexpected error %v", err)
	}
	if first.AlreadyConfirmed {
		t.Error("first confirmation: alreadyConfirmed should be false")
	}

	second, err := svc.ConfirmAttendance(ctx, 2, 5)
	if err != nil {
		t.Fatalf("second confirmation: unexpected error %v", err)
	}
	if !second.AlreadyConfirmed {
		t.Error("second confirmation: alreadyConfirmed should be true")
	}

	if got := len(assemblies.attendances); got != 1 {
		t.Errorf("attendance rows: got %d, want 1", got)
	}
}

func TestConfirmAttendanceRequiresActiveMembership(t *testing.T) {
	svc, _ := newAssemblyTestService()

	_, err := svc.ConfirmAttendance(context.Background(), 99, 5)
	if !errors.Is(err, apperrors.ErrMembershipNotActive) {
		t.Fatalf("non-member confirmation: got %v, want ErrMembershipNotActive", err)
	}
}

func TestConfirmAttendanceUnknownAssembly(t *testing.T) {
	svc, _ := newAssemblyTestService()

	_, err := svc.ConfirmAttendance(context.Background(), 2, 42)
	if !errors.Is(err, apperrors.ErrAssemblyNotFound) {
		t.Fatalf("unknown assembly: got %v, want ErrAssemblyNotFound", err)
	}
}
