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
	"github.com/morada/morada/internal/pkg/dberrors"
)

// IMembershipRepository abstracts membership persistence for services
// and authorization checks.
type IMembershipRepository interface {
	Create(ctx context.Context, userID, condominiumID int64) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Membership, error)
	GetByUserAndCondominium(ctx context.Context, userID, condominiumID int64) (*models.Membership, error)
	UpdateStatus(ctx context.Context, id int64, status models.MembershipStatus) error
	GetActiveByUserID(ctx context.Context, userID int64) ([]*models.Membership, error)
	GetPendingByCondominiumID(ctx context.Context, condominiumID int64) ([]*models.Membership, error)
	IsActiveMember(ctx context.Context, userID, condominiumID int64) (bool, error)
}

// MembershipRepository handles database operations for memberships
type MembershipRepository struct {
	db *pgxpool.Pool
}

// NewMembershipRepository creates a new MembershipRepository
func NewMembershipRepository(db *pgxpool.Pool) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create inserts a pending membership request. The unique constraint on
// (user_id, condominium_id) rejects duplicate requests.
func (r *MembershipRepository) Create(ctx context.Context, userID, condominiumID int64) (int64, error) {
	query := squirrel.Insert("memberships").
		Columns("user_id", "condominium_id", "status").
		Values(userID, condominiumID, models.MembershipPending).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "memberships_user_condo_key") {
			return 0, apperrors.ErrMembershipAlreadyExists
		}
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// GetByID retrieves a membership by id.
func (r *MembershipRepository) GetByID(ctx context.Context, id int64) (*models.Membership, error) {
	query := squirrel.Select("id", "user_id", "condominium_id", "status", "created_at", "updated_at").
		From("memberships").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var m models.Membership
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&m.ID,
		&m.UserID,
		&m.CondominiumID,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &m, nil
}

// GetByUserAndCondominium retrieves the membership for a (user, condominium) pair.
func (r *MembershipRepository) GetByUserAndCondominium(ctx context.Context, userID, condominiumID int64) (*models.Membership, error) {
	query := squirrel.Select("id", "user_id", "condominium_id", "status", "created_at", "updated_at").
		From("memberships").
		Where("user_id = ? AND condominium_id = ?", userID, condominiumID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var m models.Membership
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&m.ID,
		&m.UserID,
		&m.CondominiumID,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &m, nil
}

// UpdateStatus changes a membership's status.
func (r *MembershipRepository) UpdateStatus(ctx context.Context, id int64, status models.MembershipStatus) error {
	query := squirrel.Update("memberships").
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
		return apperrors.ErrMembershipNotFound
	}

	return nil
}

// GetActiveByUserID retrieves a user's active memberships joined with the
// condominium summary.
func (r *MembershipRepository) GetActiveByUserID(ctx context.Context, userID int64) ([]*models.Membership, error) {
	query := squirrel.Select(
		"m.id", "m.user_id", "m.condominium_id", "m.status", "m.created_at", "m.updated_at",
		"c.id", "c.name", "c.tax_id", "c.address", "c.created_by", "c.created_at", "c.updated_at",
	).
		From("memberships m").
		Join("condominiums c ON c.id = m.condominium_id").
		Where("m.user_id = ? AND m.status = ?", userID, models.MembershipActive).
		OrderBy("c.name").
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

	var memberships []*models.Membership
	for rows.Next() {
		var m models.Membership
		var c models.Condominium
		err := rows.Scan(
			&m.ID, &m.UserID, &m.CondominiumID, &m.Status, &m.CreatedAt, &m.UpdatedAt,
			&c.ID, &c.Name, &c.TaxID, &c.Address, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		m.Condominium = &c
		memberships = append(memberships, &m)
	}

	return memberships, nil
}

// GetPendingByCondominiumID retrieves a condominium's pending join requests
// joined with the requesting user's summary.
func (r *MembershipRepository) GetPendingByCondominiumID(ctx context.Context, condominiumID int64) ([]*models.Membership, error) {
	query := squirrel.Select(
		"m.id", "m.user_id", "m.condominium_id", "m.status", "m.created_at", "m.updated_at",
		"u.id", "u.email", "u.first_name", "u.last_name",
	).
		From("memberships m").
		Join("users u ON u.id = m.user_id").
		Where("m.condominium_id = ? AND m.status = ?", condominiumID, models.MembershipPending).
		OrderBy("m.created_at").
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

	var memberships []*models.Membership
	for rows.Next() {
		var m models.Membership
		var u models.User
		err := rows.Scan(
			&m.ID, &m.UserID, &m.CondominiumID, &m.Status, &m.CreatedAt, &m.UpdatedAt,
			&u.ID, &u.Email, &u.FirstName, &u.LastName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		m.User = &u
		memberships = append(memberships, &m)
	}

	return memberships, nil
}

// IsActiveMember reports whether the user has an active membership in the
// condominium.
func (r *MembershipRepository) IsActiveMember(ctx context.Context, userID, condominiumID int64) (bool, error) {
	query := squirrel.Select("1").
		From("memberships").
		Where("user_id = ? AND condominium_id = ? AND status = ?",
			userID, condominiumID, models.MembershipActive).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	var exists int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error executing query: %w", err)
	}

	return true, nil
}
