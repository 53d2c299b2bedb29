package helpers

import (
	"testing"
	"time"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 20, 40, 20},
		{"zero page defaults to first", 0, 10, 0, 10},
		{"negative page defaults to first", -5, 10, 0, 10},
		{"zero size uses default", 2, 0, 10, DefaultPageSize},
		{"oversized uses default", 1, MaxPageSize + 1, 0, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Errorf("CalculateOffsetLimit(%d, %d): got (%d, %d), want (%d, %d)",
					tt.page, tt.size, offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	tests := []struct {
		name            string
		totalItems      int64
		page, size      int
		wantPages       int
		wantCurrentPage int
	}{
		{"even split", 40, 1, 10, 4, 1},
		{"partial last page", 41, 1, 10, 5, 1},
		{"empty result first page", 0, 1, 10, 1, 1},
		{"page beyond total clamps", 10, 5, 10, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPaginationInfo(tt.totalItems, tt.page, tt.size)
			if info.TotalPages != tt.wantPages {
				t.Errorf("TotalPages: got %d, want %d", info.TotalPages, tt.wantPages)
			}
			if info.CurrentPage != tt.wantCurrentPage {
				t.Errorf("CurrentPage: got %d, want %d", info.CurrentPage, tt.wantCurrentPage)
			}
			if info.TotalItems != tt.totalItems {
				t.Errorf("TotalItems: got %d, want %d", info.TotalItems, tt.totalItems)
			}
		})
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("2h", time.Minute); got != 2*time.Hour {
		t.Errorf("ParseDuration(2h): got %v, want 2h", got)
	}
	if got := ParseDuration("not-a-duration", time.Minute); got != time.Minute {
		t.Errorf("ParseDuration(invalid): got %v, want the default", got)
	}
	if got := ParseDuration("", 720*time.Hour); got != 720*time.Hour {
		t.Errorf("ParseDuration(empty): got %v, want the default", got)
	}
}

func TestParseDateUTC(t *testing.T) {
	day, err := ParseDateUTC("2026-03-14")
	if err != nil {
		t.Fatalf("ParseDateUTC: %v", err)
	}

	want := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	if !day.Equal(want) {
		t.Errorf("got %v, want %v", day, want)
	}
	if day.Location() != time.UTC {
		t.Errorf("location: got %v, want UTC", day.Location())
	}

	if _, err := ParseDateUTC("14/03/2026"); err == nil {
		t.Error("expected an error for a non ISO date")
	}
	if _, err := ParseDateUTC("2026-03-14T10:00:00Z"); err == nil {
		t.Error("expected an error for a timestamp")
	}
}
