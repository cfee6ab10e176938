package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/salescraft/outreach-backend/internal/api"
	authapi "github.com/salescraft/outreach-backend/internal/api/auth"
	generationapi "github.com/salescraft/outreach-backend/internal/api/generation"
	settingsapi "github.com/salescraft/outreach-backend/internal/api/settings"
	usageapi "github.com/salescraft/outreach-backend/internal/api/usage"
	usersapi "github.com/salescraft/outreach-backend/internal/api/users"
	"github.com/salescraft/outreach-backend/internal/config"
	"github.com/salescraft/outreach-backend/internal/integration/gemini"
	"github.com/salescraft/outreach-backend/internal/integration/google"
	"github.com/salescraft/outreach-backend/internal/pkg/formatter"
	"github.com/salescraft/outreach-backend/internal/pkg/validator"
	"github.com/salescraft/outreach-backend/internal/repository"
	authuc "github.com/salescraft/outreach-backend/internal/usecase/auth"
	generationuc "github.com/salescraft/outreach-backend/internal/usecase/generation"
	settingsuc "github.com/salescraft/outreach-backend/internal/usecase/settings"
	usageuc "github.com/salescraft/outreach-backend/internal/usecase/usage"
	useruc "github.com/salescraft/outreach-backend/internal/usecase/user"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Setup database connection
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	// Run database migrations
	logger.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize repositories
	userRepo := repository.NewUserPostgres(db)
	sessionRepo := repository.NewSessionPostgres(db)
	settingsRepo := repository.NewSettingsPostgres(db)
	usageRepo := repository.NewUsagePostgres(db)
	logger.Info("Repositories initialized")

	// Initialize external service connectors (with mock support)
	var geminiConnector generationuc.GeminiConnector
	var googleConnector authuc.GoogleConnector

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		geminiConnector = gemini.NewMockConnector(logger)
		googleConnector = google.NewMockConnector(logger, cfg.GoogleConnectorCfg.AllowedDomain)
	} else {
		logger.Info("Using real connectors for external services")
		geminiConnector = gemini.NewConnector(cfg.GeminiConnectorCfg, logger)
		googleConnector = google.NewConnector(cfg.GoogleConnectorCfg, logger)
	}

	// Initialize validators
	requestValidator := validator.NewValidator()

	// Initialize use cases
	settingsCache := gocache.New(cfg.SettingsCacheTTL, 2*cfg.SettingsCacheTTL)
	settingsUC := settingsuc.NewUsecase(settingsRepo, requestValidator, settingsCache, logger)

	usageUC := usageuc.NewUsecase(usageRepo, &cfg.UsageRetryCfg, formatter.NewFactory(), logger)

	generationUC := generationuc.NewUsecase(
		geminiConnector,
		settingsUC,
		usageUC,
		requestValidator,
		logger,
		cfg.EnableMocks,
	)

	authUC := authuc.NewUsecase(
		userRepo,
		sessionRepo,
		googleConnector,
		cfg.SessionCfg,
		cfg.GoogleConnectorCfg.AllowedDomain,
		logger,
	)

	userUC := useruc.NewUsecase(userRepo, logger)
	logger.Info("Use cases initialized")

	// Setup API handlers
	handlers := &api.Handlers{
		Auth:       authapi.NewHandler(authUC, cfg.SessionCfg),
		Generation: generationapi.NewHandler(generationUC),
		Settings:   settingsapi.NewHandler(settingsUC),
		Usage:      usageapi.NewHandler(usageUC),
		Users:      usersapi.NewHandler(userUC),
	}
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(handlers, authUC, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 150 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server:  server,
		db:      db,
		logger:  logger,
		cleanup: authUC.CleanupExpiredSessions,
	}, nil
}
