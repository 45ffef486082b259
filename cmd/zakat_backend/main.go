package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	adapterclients "github.com/ZakatAsean/zakat_platform_app/internal/adapters/clients"
	"github.com/ZakatAsean/zakat_platform_app/internal/adapters/database/pgsql"
	portsrepo "github.com/ZakatAsean/zakat_platform_app/internal/core/ports/repositories"
	"github.com/ZakatAsean/zakat_platform_app/internal/core/services"
	"github.com/ZakatAsean/zakat_platform_app/internal/handlers"
	"github.com/ZakatAsean/zakat_platform_app/internal/middleware"
	"github.com/ZakatAsean/zakat_platform_app/internal/platform/config"
	"github.com/ZakatAsean/zakat_platform_app/internal/utils"
	"github.com/ZakatAsean/zakat_platform_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Zakat Platform API
// @version 1.0
// @description Multi-country zakat calculation and payment backend.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	repos := portsrepo.RepositoryProvider{
		CurrencyRepo:    pgsql.NewPgxCurrencyRepository(dbPool),
		CharityRepo:     pgsql.NewPgxCharityRepository(dbPool),
		ZakatRepo:       pgsql.NewPgxZakatRepository(dbPool),
		ApplicationRepo: pgsql.NewPgxApplicationRepository(dbPool),
		TransactionRepo: pgsql.NewPgxTransactionRepository(dbPool),
		UserRepo:        pgsql.NewPgxUserRepository(dbPool),
	}

	clients := services.ClientProvider{
		PaymentGateway: adapterclients.NewSimulatedPaymentGateway(),
		CreditBureau:   adapterclients.NewSimulatedCreditBureau(),
		MarketData:     adapterclients.NewSimulatedMarketData(),
	}

	serviceContainer := services.NewServiceContainer(cfg, repos, clients)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.Default(),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, posthogClient)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending migrations using a short-lived database/sql
// connection; the pgx stdlib driver keeps it compatible with the main pool.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if err := migrationDB.Ping(); err != nil {
		_ = migrationDB.Close()
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
