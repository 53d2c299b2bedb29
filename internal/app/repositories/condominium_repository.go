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
	"github.com/morada/morada/internal/pkg/dberrors"
)

// ICondominiumRepository abstracts condominium persistence for services.
type ICondominiumRepository interface {
	CreateWithAreas(ctx context.Context, condo *models.Condominium, areas []models.CommonArea) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Condominium, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]models.Condominium, int64, error)
	GetCommonAreas(ctx context.Context, condominiumID int64) ([]models.CommonArea, error)
	GetCommonAreaByID(ctx context.Context, id int64) (*models.CommonArea, error)
}

// CondominiumRepository handles database operations for condominiums and
// their common areas.
type CondominiumRepository struct {
	db *pgxpool.Pool
}

// NewCondominiumRepository creates a new CondominiumRepository
func NewCondominiumRepository(db *pgxpool.Pool) *CondominiumRepository {
	return &CondominiumRepository{db: db}
}

// CreateWithAreas inserts a condominium, its common areas, and the
// creator's active membership in a single transaction. A failure in any
// insert rolls everything back.
func (r *CondominiumRepository) CreateWithAreas(ctx context.Context, condo *models.Condominium, areas []models.CommonArea) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx,
		`INSERT INTO condominiums (name, tax_id, address, created_by)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		condo.Name, condo.TaxID, condo.Address, condo.CreatedBy,
	).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "condominiums_tax_id_key") {
			return 0, apperrors.ErrCondominiumAlreadyExists
		}
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	for _, area := range areas {
		_, err = tx.Exec(ctx,
			`INSERT INTO common_areas (condominium_id, name, is_available)
			 VALUES ($1, $2, $3)`,
			id, area.Name, area.IsAvailable,
		)
		if err != nil {
			return 0, fmt.Errorf("error inserting common area: %w", err)
		}
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO memberships (user_id, condominium_id, status)
		 VALUES ($1, $2, $3)`,
		condo.CreatedBy, id, models.MembershipActive,
	)
	if err != nil {
		return 0, fmt.Errorf("error inserting creator membership: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, nil
}

// GetByID retrieves a condominium with its common areas.
func (r *CondominiumRepository) GetByID(ctx context.Context, id int64) (*models.Condominium, error) {
	query := squirrel.Select("id", "name", "tax_id", "address", "created_by", "created_at", "updated_at").
		From("condominiums").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var condo models.Condominium
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&condo.ID,
		&condo.Name,
		&condo.TaxID,
		&condo.Address,
		&condo.CreatedBy,
		&condo.CreatedAt,
		&condo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCondominiumNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	areas, err := r.GetCommonAreas(ctx, id)
	if err != nil {
		return nil, err
	}
	condo.CommonAreas = areas

	return &condo, nil
}

// GetAll retrieves condominiums with pagination.
func (r *CondominiumRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]models.Condominium, int64, error) {
	query := squirrel.Select("id", "name", "tax_id", "address", "created_by",
		"created_at", "updated_at", "COUNT(*) OVER() AS total_count").
		From("condominiums").
		OrderBy("name").
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

	var condos []models.Condominium
	var total int64
	for rows.Next() {
		var condo models.Condominium
		err := rows.Scan(
			&condo.ID,
			&condo.Name,
			&condo.TaxID,
			&condo.Address,
			&condo.CreatedBy,
			&condo.CreatedAt,
			&condo.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		condos = append(condos, condo)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return condos, total, nil
}

// GetCommonAreas retrieves the common areas of a condominium.
func (r *CondominiumRepository) GetCommonAreas(ctx context.Context, condominiumID int64) ([]models.CommonArea, error) {
	query := squirrel.Select("id", "condominium_id", "name", "is_available", "created_at").
		From("common_areas").
		Where("condominium_id = ?", condominiumID).
		OrderBy("id").
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

	var areas []models.CommonArea
	for rows.Next() {
		var area models.CommonArea
		err := rows.Scan(
			&area.ID,
			&area.CondominiumID,
			&area.Name,
			&area.IsAvailable,
			&area.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		areas = append(areas, area)
	}

	return areas, nil
}

// GetCommonAreaByID retrieves a single common area.
func (r *CondominiumRepository) GetCommonAreaByID(ctx context.Context, id int64) (*models.CommonArea, error) {
	query := squirrel.Select("id", "condominium_id", "name", "is_available", "created_at").
		From("common_areas").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var area models.CommonArea
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&area.ID,
		&area.CondominiumID,
		&area.Name,
		&area.IsAvailable,
		&area.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommonAreaNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &area, nil
}
