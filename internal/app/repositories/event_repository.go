package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/morada/morada/internal/app/models"
	"github.com/morada/morada/internal/pkg/apperrors"
)

// EventRepository handles database operations for events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts an event and returns the generated id.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) (int64, error) {
	query := squirrel.Insert("events").
		Columns("condominium_id", "title", "description", "location", "scheduled_at", "created_by").
		Values(event.CondominiumID, event.Title, event.Description,
			event.Location, event.ScheduledAt, event.CreatedBy).
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

// GetByID retrieves an event by id.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := squirrel.Select("id", "condominium_id", "title", "description",
		"location", "scheduled_at", "created_by", "created_at").
		From("events").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var e models.Event
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&e.ID,
		&e.CondominiumID,
		&e.Title,
		&e.Description,
		&e.Location,
		&e.ScheduledAt,
		&e.CreatedBy,
		&e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &e, nil
}

// GetByCondominiumID retrieves a condominium's events, soonest first.
func (r *EventRepository) GetByCondominiumID(ctx context.Context, condominiumID int64) ([]*models.Event, error) {
	query := squirrel.Select("id", "condominium_id", "title", "description",
		"location", "scheduled_at", "created_by", "created_at").
		From("events").
		Where("condominium_id = ?", condominiumID).
		OrderBy("scheduled_at").
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

	var events []*models.Event
	for rows.Next() {
		var e models.Event
		err := rows.Scan(
			&e.ID, &e.CondominiumID, &e.Title, &e.Description,
			&e.Location, &e.ScheduledAt, &e.CreatedBy, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		events = append(events, &e)
	}

	return events, nil
}
