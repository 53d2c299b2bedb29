package models

import (
	"testing"
	"time"
)

func TestParseMembershipStatus(t *testing.T) {
	tests := []struct {
		input  string
		want   MembershipStatus
		wantOK bool
	}{
		{"PENDING", MembershipPending, true},
		{"ACTIVE", MembershipActive, true},
		{"REJECTED", MembershipRejected, true},
		{"active", 0, false},
		{"", 0, false},
		{"APPROVED", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseMembershipStatus(tt.input)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseMembershipStatus(%q): got (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseReservationStatus(t *testing.T) {
	tests := []struct {
		input  string
		want   ReservationStatus
		wantOK bool
	}{
		{"PENDING", ReservationPending, true},
		{"APPROVED", ReservationApproved, true},
		{"DECLINED", ReservationDeclined, true},
		{"CANCELLED", ReservationCancelled, true},
		{"CANCELED", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseReservationStatus(tt.input)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseReservationStatus(%q): got (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestReservationStatusBlocking(t *testing.T) {
	tests := []struct {
		status ReservationStatus
		want   bool
	}{
		{ReservationPending, true},
		{ReservationApproved, true},
		{ReservationDeclined, false},
		{ReservationCancelled, false},
	}

	for _, tt := range tests {
		if got := tt.status.Blocking(); got != tt.want {
			t.Errorf("%s.Blocking(): got %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestReservationOverlaps(t *testing.T) {
	day := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	reservation := &Reservation{
		StartTime: day.Add(13 * time.Hour),
		EndTime:   day.Add(16 * time.Hour),
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical range", day.Add(13 * time.Hour), day.Add(16 * time.Hour), true},
		{"contained range", day.Add(14 * time.Hour), day.Add(15 * time.Hour), true},
		{"overlaps start", day.Add(12 * time.Hour), day.Add(14 * time.Hour), true},
		{"overlaps end", day.Add(15 * time.Hour), day.Add(17 * time.Hour), true},
		{"adjacent before", day.Add(10 * time.Hour), day.Add(13 * time.Hour), false},
		{"adjacent after", day.Add(16 * time.Hour), day.Add(19 * time.Hour), false},
		{"fully before", day.Add(8 * time.Hour), day.Add(9 * time.Hour), false},
		{"fully after", day.Add(20 * time.Hour), day.Add(22 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reservation.Overlaps(tt.start, tt.end); got != tt.want {
				t.Errorf("Overlaps(%v, %v): got %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}
