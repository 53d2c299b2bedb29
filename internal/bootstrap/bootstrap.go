// Package bootstrap wires configuration, database, and application
// dependencies together at startup.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/morada/morada/internal/app/auth"
	appControllers "github.com/morada/morada/internal/app/controllers"
	appMigrations "github.com/morada/morada/internal/app/migrations"
	appRepos "github.com/morada/morada/internal/app/repositories"
	appRoutes "github.com/morada/morada/internal/app/routes"
	appServices "github.com/morada/morada/internal/app/services"
	"github.com/morada/morada/internal/config"
	"github.com/morada/morada/internal/db"
	appMiddleware "github.com/morada/morada/internal/middleware"
	pkgAuth "github.com/morada/morada/internal/pkg/auth"
	"github.com/morada/morada/internal/pkg/filestorage"
	"github.com/morada/morada/internal/pkg/helpers"
	"github.com/morada/morada/internal/pkg/logger"
	"github.com/morada/morada/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService        *appServices.AuthService
	CondominiumService *appServices.CondominiumService
	MembershipService  *appServices.MembershipService
	ReservationService *appServices.ReservationService
	NoticeService      *appServices.NoticeService
	AssemblyService    *appServices.AssemblyService
	EventService       *appServices.EventService
	GalleryService     *appServices.GalleryService

	AuthController        *appControllers.AuthController
	UserController        *appControllers.UserController
	CondominiumController *appControllers.CondominiumController
	MembershipController  *appControllers.MembershipController
	ReservationController *appControllers.ReservationController
	NoticeController      *appControllers.NoticeController
	AssemblyController    *appControllers.AssemblyController
	EventController       *appControllers.EventController
	GalleryController     *appControllers.GalleryController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	AuthzService   *appAuth.AuthorizationService
	FileStorage    *filestorage.LocalStorage
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding failures are not fatal.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// The base URL must match the static file serving endpoint.
	var err error
	fileStorageBaseURL := "http://localhost:" + cfg.Server.Port + cfg.Storage.BaseURL
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.Path, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.AuthzService = appAuth.NewAuthorizationService(
		deps.Repos.UserRepository,
		deps.Repos.MembershipRepository,
	)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.CondominiumService = appServices.NewCondominiumService(
		deps.Repos.CondominiumRepository,
		deps.AuthzService,
		lgr,
	)
	deps.MembershipService = appServices.NewMembershipService(
		deps.Repos.MembershipRepository,
		deps.Repos.CondominiumRepository,
		deps.AuthzService,
		lgr,
	)
	deps.ReservationService = appServices.NewReservationService(
		deps.Repos.ReservationRepository,
		deps.Repos.CondominiumRepository,
		deps.AuthzService,
		lgr,
	)
	deps.NoticeService = appServices.NewNoticeService(deps.Repos.NoticeRepository, deps.AuthzService, lgr)
	deps.AssemblyService = appServices.NewAssemblyService(deps.Repos.AssemblyRepository, deps.AuthzService, lgr)
	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository, deps.AuthzService, lgr)
	deps.GalleryService = appServices.NewGalleryService(
		deps.Repos.GalleryRepository,
		deps.FileStorage,
		deps.AuthzService,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.AuthService)
	deps.CondominiumController = appControllers.NewCondominiumController(deps.CondominiumService)
	deps.MembershipController = appControllers.NewMembershipController(deps.MembershipService)
	deps.ReservationController = appControllers.NewReservationController(deps.ReservationService)
	deps.NoticeController = appControllers.NewNoticeController(deps.NoticeService)
	deps.AssemblyController = appControllers.NewAssemblyController(deps.AssemblyService)
	deps.EventController = appControllers.NewEventController(deps.EventService)
	deps.GalleryController = appControllers.NewGalleryController(deps.GalleryService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.CondominiumController,
		deps.MembershipController,
		deps.ReservationController,
		deps.NoticeController,
		deps.AssemblyController,
		deps.EventController,
		deps.GalleryController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
