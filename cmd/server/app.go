package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/periodspal/periodspal-api/internal/chat"
	"github.com/periodspal/periodspal-api/internal/config"
	"github.com/periodspal/periodspal-api/internal/platform/postgres"
	"github.com/periodspal/periodspal-api/internal/service"
	"github.com/periodspal/periodspal-api/internal/service/auth"
	"github.com/periodspal/periodspal-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	accountStore      store.AccountStore
	cycleStore        store.CycleStore
	diaryStore        store.DiaryStore
	consultationStore store.ConsultationStore

	// Service interfaces
	jwtService          auth.JWTService
	accountService      service.AccountService
	cycleService        service.CycleService
	diaryService        service.DiaryService
	consultationService service.ConsultationService

	responder *chat.Responder
}

// newApplication creates a new application instance with all dependencies
// initialized. Configuration, logger and database connection must be
// established before application initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.accountStore = postgres.NewPostgresAccountStore(db, logger)
	app.cycleStore = postgres.NewPostgresCycleStore(db, logger)
	app.diaryStore = postgres.NewPostgresDiaryStore(db, logger)
	app.consultationStore = postgres.NewPostgresConsultationStore(db, logger)

	app.accountService = service.NewAccountService(
		app.accountStore,
		db,
		auth.NewBcryptHasher(bcrypt.DefaultCost),
		auth.NewBcryptVerifier(),
		logger,
	)
	app.cycleService = service.NewCycleService(app.cycleStore, db, logger)
	app.diaryService = service.NewDiaryService(app.diaryStore, db, logger)
	app.consultationService = service.NewConsultationService(
		app.consultationStore,
		app.accountStore,
		db,
		logger,
	)

	app.responder = chat.NewResponder()

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
