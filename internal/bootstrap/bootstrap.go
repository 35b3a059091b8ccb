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

	appAuth "github.com/alumeee/alumniconnect/internal/app/auth"
	appControllers "github.com/alumeee/alumniconnect/internal/app/controllers"
	appMigrations "github.com/alumeee/alumniconnect/internal/app/migrations"
	appRepos "github.com/alumeee/alumniconnect/internal/app/repositories"
	appRoutes "github.com/alumeee/alumniconnect/internal/app/routes"
	appServices "github.com/alumeee/alumniconnect/internal/app/services"
	"github.com/alumeee/alumniconnect/internal/config"
	"github.com/alumeee/alumniconnect/internal/db"
	appMiddleware "github.com/alumeee/alumniconnect/internal/middleware"
	"github.com/alumeee/alumniconnect/internal/obs"
	pkgAuth "github.com/alumeee/alumniconnect/internal/pkg/auth"
	"github.com/alumeee/alumniconnect/internal/pkg/filestorage"
	"github.com/alumeee/alumniconnect/internal/pkg/helpers"
	"github.com/alumeee/alumniconnect/internal/pkg/logger"
	"github.com/alumeee/alumniconnect/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos        *appRepos.Repositories
	JWTService   *pkgAuth.JWTService
	RoleResolver *appAuth.RoleResolver
	FileStorage  *filestorage.LocalStorage

	AuthService         *appServices.AuthService
	ProfileService      *appServices.ProfileService
	AlumniService       *appServices.AlumniService
	MemoryService       *appServices.MemoryService
	FundService         *appServices.FundService
	EventService        *appServices.EventService
	NotificationService *appServices.NotificationService
	DepartmentService   *appServices.DepartmentService
	AdminService        *appServices.AdminService

	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
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
		// Seeding failures are logged but don't block startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// File storage base URL must match the static file serving path
	baseURL := "http://localhost:" + cfg.Server.Port
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.RoleResolver = appAuth.NewRoleResolver(deps.Repos.UserRepository)

	deps.AuthService = appServices.NewAuthService(
		db.NewPoolTxRunner(dbPool),
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.Repos.DepartmentRepository,
		deps.JWTService,
		deps.RoleResolver,
		lgr,
	)
	deps.ProfileService = appServices.NewProfileService(
		deps.Repos.UserRepository,
		deps.Repos.DepartmentRepository,
		deps.RoleResolver,
		deps.FileStorage,
		lgr,
	)
	deps.NotificationService = appServices.NewNotificationService(deps.Repos.NotificationRepository, lgr)
	deps.AlumniService = appServices.NewAlumniService(
		deps.Repos.AlumniRepository,
		deps.Repos.UserRepository,
		deps.Repos.DepartmentRepository,
		deps.NotificationService,
		lgr,
	)
	deps.MemoryService = appServices.NewMemoryService(deps.Repos.MemoryRepository, deps.FileStorage, lgr)
	deps.FundService = appServices.NewFundService(deps.Repos.FundRepository, lgr)
	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository, lgr)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository, lgr)
	deps.AdminService = appServices.NewAdminService(
		deps.Repos.UserRepository,
		deps.Repos.AlumniRepository,
		deps.Repos.MemoryRepository,
		deps.Repos.EventRepository,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.RoleResolver)

	deps.Controllers = appRoutes.Controllers{
		Auth:         appControllers.NewAuthController(deps.AuthService, lgr),
		Profile:      appControllers.NewProfileController(deps.ProfileService, lgr),
		Alumni:       appControllers.NewAlumniController(deps.AlumniService, lgr),
		Memory:       appControllers.NewMemoryController(deps.MemoryService, lgr),
		Fund:         appControllers.NewFundController(deps.FundService, lgr),
		Event:        appControllers.NewEventController(deps.EventService, lgr),
		Notification: appControllers.NewNotificationController(deps.NotificationService, lgr),
		Department:   appControllers.NewDepartmentController(deps.DepartmentService, lgr),
		Admin:        appControllers.NewAdminController(deps.AdminService, lgr),
	}

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

	obs.Init()
	router.Use(obs.Instrument())
	router.GET("/metrics", obs.Handler())

	authLimiter := appMiddleware.RateLimit(cfg.RateLimit.AuthPerSecond, cfg.RateLimit.AuthBurst)

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, authLimiter)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
