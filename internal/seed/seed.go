// Package seed creates the default data the application needs on first run.
package seed

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/morada/morada/internal/app/models"
	appRepos "github.com/morada/morada/internal/app/repositories"
	"github.com/morada/morada/internal/pkg/apperrors"
	"github.com/morada/morada/internal/pkg/auth"
)

const defaultAdminEmail = "admin@morada.app"

// CreateDefaultData creates a default administrator account if one does not
// exist yet. The password comes from SEED_ADMIN_PASSWORD so deployments never
// ship with a hardcoded credential.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default administrator account...")

	if _, err := userRepo.FindByEmail(ctx, defaultAdminEmail); err == nil {
		lgr.Debug().Str("email", defaultAdminEmail).Msg("Default administrator already exists")
		return nil
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		lgr.Warn().Msg("SEED_ADMIN_PASSWORD not set, skipping default administrator creation")
		return nil
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &appModels.User{
		Email:      defaultAdminEmail,
		Password:   hashed,
		FirstName:  "Morada",
		LastName:   "Administrator",
		NationalID: "00000000000",
		BirthDate:  time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
		Phone:      "+0000000000",
		Role:       appModels.RoleAdministrator,
		IsActive:   true,
	}

	if _, err := userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default administrator")
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Default administrator created")
	return nil
}
