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

// IAssemblyRepository abstracts assembly persistence for services.
type IAssemblyRepository interface {
	Create(ctx context.Context, assembly *models.Assembly) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Assembly, error)
	GetByCondominiumID(ctx context.Context, condominiumID int64) ([]*models.Assembly, error)
	ConfirmAttendance(ctx context.Context, assemblyID, userID int64) (alreadyConfirmed bool, err error)
	GetAttendance(ctx context.Context, assemblyID int64) ([]*models.Attendance, error)
}

// AssemblyRepository handles database operations for assemblies and
// attendance confirmations.
type AssemblyRepository struct {
	db *pgxpool.Pool
}

// NewAssemblyRepository creates a new AssemblyRepository
func NewAssemblyRepository(db *pgxpool.Pool) *AssemblyRepository {
	return &AssemblyRepository{db: db}
}

// Create inserts an assembly and returns the generated id.
func (r *AssemblyRepository) Create(ctx context.Context, assembly *models.Assembly) (int64, error) {
	query := squirrel.Insert("assemblies").
		Columns("condominium_id", "title", "description", "scheduled_at", "created_by").
		Values(assembly.CondominiumID, assembly.Title, assembly.Description,
			assembly.ScheduledAt, assembly.CreatedBy).
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

// GetByID retrieves an assembly by id.
func (r *AssemblyRepository) GetByID(ctx context.Context, id int64) (*models.Assembly, error) {
	query := squirrel.Select("id", "condominium_id", "title", "description",
		"scheduled_at", "created_by", "created_at").
		From("assemblies").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var a models.Assembly
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&a.ID,
		&a.CondominiumID,
		&a.Title,
		&a.Description,
		&a.ScheduledAt,
		&a.CreatedBy,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAssemblyNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &a, nil
}

// GetByCondominiumID retrieves a condominium's assemblies with attendee
// counts, soonest first.
func (r *AssemblyRepository) GetByCondominiumID(ctx context.Context, condominiumID int64) ([]*models.Assembly, error) {
	query := squirrel.Select(
		"a.id", "a.condominium_id", "a.title", "a.description",
		"a.scheduled_at", "a.created_by", "a.created_at",
		"COUNT(att.id) AS attendee_count",
	).
		From("assemblies a").
		LeftJoin("assembly_attendances att ON att.assembly_id = a.id").
		Where("a.condominium_id = ?", condominiumID).
		GroupBy("a.id").
		OrderBy("a.scheduled_at").
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

	var assemblies []*models.Assembly
	for rows.Next() {
		var a models.Assembly
		err := rows.Scan(
			&a.ID, &a.CondominiumID, &a.Title, &a.Description,
			&a.ScheduledAt, &a.CreatedBy, &a.CreatedAt,
			&a.AttendeeCount,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		assemblies = append(assemblies, &a)
	}

	return assemblies, nil
}

// ConfirmAttendance records the user's attendance for an assembly. The
// unique constraint on (assembly_id, user_id) absorbs repeated
// confirmations; the bool result reports whether the user had already
// confirmed.
func (r *AssemblyRepository) ConfirmAttendance(ctx context.Context, assemblyID, userID int64) (alreadyConfirmed bool, err error) {
	query := squirrel.Insert("assembly_attendances").
		Columns("assembly_id", "user_id").
		Values(assemblyID, userID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "assembly_attendances_assembly_user_key") {
			return true, nil
		}
		return false, fmt.Errorf("error executing query: %w", err)
	}

	return false, nil
}

// GetAttendance retrieves an assembly's confirmed attendees.
func (r *AssemblyRepository) GetAttendance(ctx context.Context, assemblyID int64) ([]*models.Attendance, error) {
	query := squirrel.Select(
		"att.id", "att.assembly_id", "att.user_id", "att.confirmed_at",
		"u.id", "u.email", "u.first_name", "u.last_name",
	).
		From("assembly_attendances att").
		Join("users u ON u.id = att.user_id").
		Where("att.assembly_id = ?", assemblyID).
		OrderBy("att.confirmed_at").
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

	var attendances []*models.Attendance
	for rows.Next() {
		var att models.Attendance
		var u models.User
		err := rows.Scan(
			&att.ID, &att.AssemblyID, &att.UserID, &att.ConfirmedAt,
			&u.ID, &u.Email, &u.FirstName, &u.LastName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		att.User = &u
		attendances = append(attendances, &att)
	}

	return attendances, nil
}
