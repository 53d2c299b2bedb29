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

// IReservationRepository abstracts reservation persistence for services.
type IReservationRepository interface {
	CreateChecked(ctx context.Context, res *models.Reservation) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status models.ReservationStatus) error
	GetBlockingForAreaOnDay(ctx context.Context, commonAreaID int64, day time.Time) ([]*models.Reservation, error)
	GetByCondominiumID(ctx context.Context, condominiumID int64, offset uint64, limit int) ([]*models.Reservation, int64, error)
}

// ReservationRepository handles database operations for reservations
type ReservationRepository struct {
	db *pgxpool.Pool
}

// NewReservationRepository creates a new ReservationRepository
func NewReservationRepository(db *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// CreateChecked inserts a reservation only if no blocking reservation of
// the same common area overlaps its [start, end) interval. The overlap
// check and the insert run in one transaction that first takes a row lock
// on the common area itself, so two concurrent requests for the same area
// serialize even when neither sees a conflicting row yet.
func (r *ReservationRepository) CreateChecked(ctx context.Context, res *models.Reservation) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var areaID int64
	err = tx.QueryRow(ctx,
		`SELECT id FROM common_areas WHERE id = $1 FOR UPDATE`,
		res.CommonAreaID,
	).Scan(&areaID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrCommonAreaNotFound
		}
		return 0, fmt.Errorf("error locking common area: %w", err)
	}

	var conflictID int64
	err = tx.QueryRow(ctx,
		`SELECT id FROM reservations
		 WHERE common_area_id = $1
		   AND status IN ($2, $3)
		   AND start_time < $4
		   AND end_time > $5
		 LIMIT 1`,
		res.CommonAreaID,
		models.ReservationPending, models.ReservationApproved,
		res.EndTime, res.StartTime,
	).Scan(&conflictID)
	if err == nil {
		return 0, apperrors.ErrReservationConflict
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("error checking for conflicts: %w", err)
	}

	var id int64
	err = tx.QueryRow(ctx,
		`INSERT INTO reservations
		   (common_area_id, user_id, condominium_id, start_time, end_time, status, title, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		res.CommonAreaID, res.UserID, res.CondominiumID,
		res.StartTime, res.EndTime, models.ReservationPending,
		res.Title, res.Notes,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, nil
}

// GetByID retrieves a reservation by id.
func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*models.Reservation, error) {
	query := squirrel.Select("id", "common_area_id", "user_id", "condominium_id",
		"start_time", "end_time", "status", "title", "notes", "created_at", "updated_at").
		From("reservations").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	res, err := scanReservation(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReservationNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return res, nil
}

func scanReservation(row pgx.Row) (*models.Reservation, error) {
	var res models.Reservation
	err := row.Scan(
		&res.ID,
		&res.CommonAreaID,
		&res.UserID,
		&res.CondominiumID,
		&res.StartTime,
		&res.EndTime,
		&res.Status,
		&res.Title,
		&res.Notes,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateStatus changes a reservation's status.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, status models.ReservationStatus) error {
	query := squirrel.Update("reservations").
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
		return apperrors.ErrReservationNotFound
	}

	return nil
}

// GetBlockingForAreaOnDay retrieves the pending/approved reservations of a
// common area whose interval intersects the given UTC day. Input for the
// availability slot view.
func (r *ReservationRepository) GetBlockingForAreaOnDay(ctx context.Context, commonAreaID int64, day time.Time) ([]*models.Reservation, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	query := squirrel.Select("id", "common_area_id", "user_id", "condominium_id",
		"start_time", "end_time", "status", "title", "notes", "created_at", "updated_at").
		From("reservations").
		Where("common_area_id = ?", commonAreaID).
		Where(squirrel.Eq{"status": []models.ReservationStatus{models.ReservationPending, models.ReservationApproved}}).
		Where("start_time < ? AND end_time > ?", dayEnd, dayStart).
		OrderBy("start_time").
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

	var reservations []*models.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		reservations = append(reservations, res)
	}

	return reservations, nil
}

// GetByCondominiumID retrieves a condominium's reservations joined with
// the booking user and common area summaries, newest first.
func (r *ReservationRepository) GetByCondominiumID(ctx context.Context, condominiumID int64, offset uint64, limit int) ([]*models.Reservation, int64, error) {
	query := squirrel.Select(
		"r.id", "r.common_area_id", "r.user_id", "r.condominium_id",
		"r.start_time", "r.end_time", "r.status", "r.title", "r.notes",
		"r.created_at", "r.updated_at",
		"u.id", "u.email", "u.first_name", "u.last_name",
		"a.id", "a.condominium_id", "a.name", "a.is_available", "a.created_at",
		"COUNT(*) OVER() AS total_count",
	).
		From("reservations r").
		Join("users u ON u.id = r.user_id").
		Join("common_areas a ON a.id = r.common_area_id").
		Where("r.condominium_id = ?", condominiumID).
		OrderBy("r.start_time DESC").
		Limit(uint64(limit)).
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var reservations []*models.Reservation
	var total int64
	for rows.Next() {
		var res models.Reservation
		var u models.User
		var a models.CommonArea
		err := rows.Scan(
			&res.ID, &res.CommonAreaID, &res.UserID, &res.CondominiumID,
			&res.StartTime, &res.EndTime, &res.Status, &res.Title, &res.Notes,
			&res.CreatedAt, &res.UpdatedAt,
			&u.ID, &u.Email, &u.FirstName, &u.LastName,
			&a.ID, &a.CondominiumID, &a.Name, &a.IsAvailable, &a.CreatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		res.User = &u
		res.CommonArea = &a
		reservations = append(reservations, &res)
	}

	return reservations, total, nil
}
