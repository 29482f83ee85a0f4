package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	_ "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/cmd/docs"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	portsrepo "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/repositories"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/services"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/dto"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/handlers"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/middleware"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/platform/cache"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/platform/config"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/repositories/database/pgsql"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Bar Management API
// @version 1.0
// @description Inventory, daily stock ledger and sales backend for a bar.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		os.Exit(1)
	}

	var reportCache cache.ReportCache = cache.NoopReportCache{}
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedisReportCache(cfg.RedisAddr, cfg.RedisPassword, 0)
		if err := redisCache.Ping(context.Background()); err != nil {
			logger.Warn("Redis unreachable, report caching disabled", slog.String("error", err.Error()))
		} else {
			reportCache = redisCache
			defer redisCache.Close()
			logger.Info("Report cache connected", slog.String("addr", cfg.RedisAddr))
		}
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(repos, cfg, reportCache)

	seedAllowlist(context.Background(), cfg, repos, logger)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dto.RegisterCustomValidators()

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending up migrations against the configured
// database using the pgx stdlib driver.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		logger.Error("Failed to ping database for migrations", slog.String("error", err.Error()))
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		return sourceErr
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// seedAllowlist loads the bootstrap allowlist entries so the first operator
// can sign in before any admin exists. Entries are idempotent.
func seedAllowlist(ctx context.Context, cfg *config.Config, repos *portsrepo.RepositoryProvider, logger *slog.Logger) {
	for _, email := range cfg.BootstrapAllowedEmails {
		err := repos.UserRepo.AddAllowedEmail(ctx, domain.AllowedEmail{
			Email:     email,
			AddedBy:   "bootstrap",
			CreatedAt: time.Now(),
		})
		if err != nil {
			logger.Error("Failed to seed allowlist entry", slog.String("email", email), slog.String("error", err.Error()))
			continue
		}
		logger.Info("Allowlist entry seeded", slog.String("email", email))
	}
}
