package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/morada/morada/internal/app/models"
)

// NoticeRepository handles database operations for notices
type NoticeRepository struct {
	db *pgxpool.Pool
}

// NewNoticeRepository creates a new NoticeRepository
func NewNoticeRepository(db *pgxpool.Pool) *NoticeRepository {
	return &NoticeRepository{db: db}
}

// Create inserts a notice and returns the generated id.
func (r *NoticeRepository) Create(ctx context.Context, notice *models.Notice) (int64, error) {
	query := squirrel.Insert("notices").
		Columns("title", "message", "author_id", "condominium_id", "date").
		Values(notice.Title, notice.Message, notice.AuthorID, notice.CondominiumID, notice.Date).
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

// GetByCondominiumID retrieves a condominium's notices with author
// summaries, newest first.
func (r *NoticeRepository) GetByCondominiumID(ctx context.Context, condominiumID int64) ([]*models.Notice, error) {
	query := squirrel.Select(
		"n.id", "n.title", "n.message", "n.author_id", "n.condominium_id",
		"n.date", "n.created_at",
		"u.id", "u.email", "u.first_name", "u.last_name",
	).
		From("notices n").
		Join("users u ON u.id = n.author_id").
		Where("n.condominium_id = ?", condominiumID).
		OrderBy("n.date DESC").
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

	var notices []*models.Notice
	for rows.Next() {
		var n models.Notice
		var u models.User
		err := rows.Scan(
			&n.ID, &n.Title, &n.Message, &n.AuthorID, &n.CondominiumID,
			&n.Date, &n.CreatedAt,
			&u.ID, &u.Email, &u.FirstName, &u.LastName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		n.Author = &u
		notices = append(notices, &n)
	}

	return notices, nil
}
