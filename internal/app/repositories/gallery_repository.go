package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/morada/morada/internal/app/models"
	"github.com/morada/morada/internal/pkg/apperrors"
)

// IGalleryRepository abstracts gallery and photo persistence for services.
type IGalleryRepository interface {
	Create(ctx context.Context, gallery *models.Gallery) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Gallery, error)
	GetByCondominiumID(ctx context.Context, condominiumID int64) ([]*models.Gallery, error)
	SetCoverPhotoURL(ctx context.Context, galleryID int64, url *string) error
	CreatePhoto(ctx context.Context, photo *models.Photo) (int64, error)
	GetPhotoByID(ctx context.Context, id int64) (*models.Photo, error)
	GetPhotosByGalleryID(ctx context.Context, galleryID int64, status *models.PhotoStatus) ([]*models.Photo, error)
	UpdatePhotoStatus(ctx context.Context, id int64, status models.PhotoStatus) error
	GetLatestApprovedPhoto(ctx context.Context, galleryID int64) (*models.Photo, error)
}

// GalleryRepository handles database operations for galleries and photos
type GalleryRepository struct {
	db *pgxpool.Pool
}

// NewGalleryRepository creates a new GalleryRepository
func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepository {
	return &GalleryRepository{db: db}
}

// Create inserts a gallery and returns the generated id.
func (r *GalleryRepository) Create(ctx context.Context, gallery *models.Gallery) (int64, error) {
	query := squirrel.Insert("galleries").
		Columns("name", "condominium_id", "created_by").
		Values(gallery.Name, gallery.CondominiumID, gallery.CreatedBy).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// GetByID retrieves a gallery by id.
func (r *GalleryRepository) GetByID(ctx context.Context, id int64) (*models.Gallery, error) {
	query := squirrel.Select("id", "name", "condominium_id", "created_by",
		"cover_photo_url", "created_at", "updated_at").
		From("galleries").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var g models.Gallery
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&g.ID,
		&g.Name,
		&g.CondominiumID,
		&g.CreatedBy,
		&g.CoverPhotoURL,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGalleryNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &g, nil
}

// GetByCondominiumID retrieves a condominium's galleries with approved
// photo counts, newest first.
func (r *GalleryRepository) GetByCondominiumID(ctx context.Context, condominiumID int64) ([]*models.Gallery, error) {
	query := squirrel.Select("id", "name", "condominium_id", "created_by",
		"cover_photo_url", "created_at", "updated_at").
		From("galleries").
		Where("condominium_id = ?", condominiumID).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var galleries []*models.Gallery
	for rows.Next() {
		var g models.Gallery
		err := rows.Scan(
			&g.ID, &g.Name, &g.CondominiumID, &g.CreatedBy,
			&g.CoverPhotoURL, &g.CreatedAt, &g.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		galleries = append(galleries, &g)
	}

	return galleries, nil
}

// SetCoverPhotoURL updates a gallery's cover photo URL. A nil value
// clears the cover.
func (r *GalleryRepository) SetCoverPhotoURL(ctx context.Context, galleryID int64, url *string) error {
	query := squirrel.Update("galleries").
		Set("cover_photo_url", url).
		Set("updated_at", time.Now()).
		Where("id = ?", galleryID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrGalleryNotFound
	}

	return nil
}

// CreatePhoto inserts a photo in pending status and returns the generated id.
func (r *GalleryRepository) CreatePhoto(ctx context.Context, photo *models.Photo) (int64, error) {
	query := squirrel.Insert("photos").
		Columns("url", "description", "gallery_id", "uploaded_by", "status").
		Values(photo.URL, photo.Description, photo.GalleryID, photo.UploadedBy, models.PhotoPending).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// GetPhotoByID retrieves a photo by id.
func (r *GalleryRepository) GetPhotoByID(ctx context.Context, id int64) (*models.Photo, error) {
	query := squirrel.Select("id", "url", "description", "gallery_id",
		"uploaded_by", "status", "created_at", "updated_at").
		From("photos").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var p models.Photo
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&p.ID,
		&p.URL,
		&p.Description,
		&p.GalleryID,
		&p.UploadedBy,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPhotoNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &p, nil
}

// GetPhotosByGalleryID retrieves a gallery's photos with uploader
// summaries, optionally filtered by status, newest first.
func (r *GalleryRepository) GetPhotosByGalleryID(ctx context.Context, galleryID int64, status *models.PhotoStatus) ([]*models.Photo, error) {
	query := squirrel.Select(
		"p.id", "p.url", "p.description", "p.gallery_id", "p.uploaded_by",
		"p.status", "p.created_at", "p.updated_at",
		"u.id", "u.email", "u.first_name", "u.last_name",
	).
		From("photos p").
		Join("users u ON u.id = p.uploaded_by").
		Where("p.gallery_id = ?", galleryID).
		OrderBy("p.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if status != nil {
		query = query.Where("p.status = ?", *status)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var photos []*models.Photo
	for rows.Next() {
		var p models.Photo
		var u models.User
		err := rows.Scan(
			&p.ID, &p.URL, &p.Description, &p.GalleryID, &p.UploadedBy,
			&p.Status, &p.CreatedAt, &p.UpdatedAt,
			&u.ID, &u.Email, &u.FirstName, &u.LastName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		p.Uploader = &u
		photos = append(photos, &p)
	}

	return photos, nil
}

// UpdatePhotoStatus changes a photo's moderation status.
func (r *GalleryRepository) UpdatePhotoStatus(ctx context.Context, id int64, status models.PhotoStatus) error {
	query := squirrel.Update("photos").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrPhotoNotFound
	}

	return nil
}

// GetLatestApprovedPhoto retrieves a gallery's most recently created
// approved photo, or nil when the gallery has none.
func (r *GalleryRepository) GetLatestApprovedPhoto(ctx context.Context, galleryID int64) (*models.Photo, error) {
	query := squirrel.Select("id", "url", "description", "gallery_id",
		"uploaded_by", "status", "created_at", "updated_at").
		From("photos").
		Where("gallery_id = ? AND status = ?", galleryID, models.PhotoApproved).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var p models.Photo
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&p.ID,
		&p.URL,
		&p.Description,
		&p.GalleryID,
		&p.UploadedBy,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &p, nil
}
