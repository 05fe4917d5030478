package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shutter-academy/academy-api/internal/api"
	"github.com/shutter-academy/academy-api/internal/config"
	"github.com/shutter-academy/academy-api/internal/platform/mongodb"
	"github.com/shutter-academy/academy-api/internal/platform/stripe"
	"github.com/shutter-academy/academy-api/internal/service/auth"
	"github.com/shutter-academy/academy-api/internal/service/payment"
	"github.com/shutter-academy/academy-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when the stores are supplied directly, as in tests.
	db     *mongodb.Database
	pinger api.Pinger

	userStore          store.UserStore
	classStore         store.ClassStore
	selectedClassStore store.SelectedClassStore
	paymentStore       store.PaymentStore

	jwtService auth.JWTService
	intents    api.IntentCreator
}

// newApplication wires the stores, the token service and the payment bridge
// around an established database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *mongodb.Database) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
		pinger: db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes,
		"enforce_owner_match", cfg.Auth.EnforceOwnerMatch)

	app.userStore = mongodb.NewUserStore(db.Collection(mongodb.UsersCollection), logger)
	app.classStore = mongodb.NewClassStore(db.Collection(mongodb.ClassesCollection), logger)
	app.selectedClassStore = mongodb.NewSelectedClassStore(db.Collection(mongodb.SelectedClassesCollection), logger)
	app.paymentStore = mongodb.NewPaymentStore(db.Collection(mongodb.PaymentsCollection), logger)

	provider, err := stripe.NewProvider(cfg.Payment, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize payment provider: %w", err)
	}
	app.intents, err = payment.NewService(provider, cfg.Payment.Currency, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
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
		disconnect(app.db, app.logger)
	}
	app.logger.Info("Application shutdown completed")
}
