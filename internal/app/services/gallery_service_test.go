package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/morada/morada/internal/app/models"
	"github.com/morada/morada/internal/pkg/apperrors"
)

func TestParsePhotoStatus(t *testing.T) {
	tests := []struct {
		input  string
		want   models.PhotoStatus
		wantOK bool
	}{
		{"pending", models.PhotoPending, true},
		{"approved", models.PhotoApproved, true},
		{"rejected", models.PhotoRejected, true},
		{"APPROVED", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := parsePhotoStatus(tt.input)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("parsePhotoStatus(%q): got (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestAllowedPhotoExtensions(t *testing.T) {
	allowed := []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	for _, ext := range allowed {
		if !allowedPhotoExtensions[ext] {
			t.Errorf("extension %s should be allowed", ext)
		}
	}

	rejected := []string{".pdf", ".exe", ".svg", ".mp4", ""}
	for _, ext := range rejected {
		if allowedPhotoExtensions[ext] {
			t.Errorf("extension %q should be rejected", ext)
		}
	}
}

func newGalleryTestService() (*GalleryService, *memGalleryRepo) {
	authz, _, _ := newTestAuthz()

	galleries := newMemGalleryRepo()
	galleries.addGallery(models.Gallery{ID: 7, Name: "Summer party", CondominiumID: 1, CreatedBy: 1})

	return NewGalleryService(galleries, nil, authz, testLogger()), galleries
}

func seedPendingPhoto(galleries *memGalleryRepo, url string, createdAt time.Time) int64 {
	photo := &models.Photo{
		URL:       url,
		GalleryID: 7,
		CreatedAt: createdAt,
	}
	id, _ := galleries.CreatePhoto(context.Background(), photo)
	return id
}

func TestModeratePhotoDerivesCoverFromNewestApproved(t *testing.T) {
	svc, galleries := newGalleryTestService()
	ctx := context.Background()

	base := time.Date(2026, time.May, 1, 12, 0, 0, 0, time.UTC)
	older := seedPendingPhoto(galleries, "/uploads/galleries/7/older.jpg", base)
	newer := seedPendingPhoto(galleries, "/uploads/galleries/7/newer.jpg", base.Add(time.Hour))

	if _, err := svc.ModeratePhoto(ctx, 1, older, "approved"); err != nil {
		t.Fatalf("approve older: unexpected error %v", err)
	}
	gallery, _ := galleries.GetByID(ctx, 7)
	if gallery.CoverPhotoURL == nil || *gallery.CoverPhotoURL != "/uploads/galleries/7/older.jpg" {
		t.Fatalf("cover after first approval: got %v, want older photo URL", gallery.CoverPhotoURL)
	}

	if _, err := svc.ModeratePhoto(ctx, 1, newer, "approved"); err != nil {
		t.Fatalf("approve newer: unexpected error %v", err)
	}
	gallery, _ = galleries.GetByID(ctx, 7)
	if gallery.CoverPhotoURL == nil || *gallery.CoverPhotoURL != "/uploads/galleries/7/newer.jpg" {
		t.Fatalf("cover after second approval: got %v, want newer photo URL", gallery.CoverPhotoURL)
	}
}

func TestModeratePhotoRejectionKeepsCover(t *testing.T) {
	svc, galleries := newGalleryTestService()
	ctx := context.Background()

	base := time.Date(2026, time.May, 1, 12, 0, 0, 0, time.UTC)
	approved := seedPendingPhoto(galleries, "/uploads/galleries/7/cover.jpg", base)
	pending := seedPendingPhoto(galleries, "/uploads/galleries/7/blurry.jpg", base.Add(time.Hour))

	if _, err := svc.ModeratePhoto(ctx, 1, approved, "approved"); err != nil {
		t.Fatalf("approve: unexpected error %v", err)
	}

	rejected, err := svc.ModeratePhoto(ctx, 1, pending, "rejected")
	if err != nil {
		t.Fatalf("reject: unexpected error %v", err)
	}
	if rejected.Status != string(models.PhotoRejected) {
		t.Errorf("rejected photo status: got %s, want rejected", rejected.Status)
	}

	gallery, _ := galleries.GetByID(ctx, 7)
	if gallery.CoverPhotoURL == nil || *gallery.CoverPhotoURL != "/uploads/galleries/7/cover.jpg" {
		t.Fatalf("cover after rejection: got %v, want unchanged cover URL", gallery.CoverPhotoURL)
	}
}

func TestModeratePhotoRequiresAdministrator(t *testing.T) {
	svc, galleries := newGalleryTestService()
	ctx := context.Background()

	photo := seedPendingPhoto(galleries, "/uploads/galleries/7/photo.jpg", time.Now().UTC())

	if _, err := svc.ModeratePhoto(ctx, 2, photo, "approved"); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("resident moderation: got %v, want ErrPermissionDenied", err)
	}
}
