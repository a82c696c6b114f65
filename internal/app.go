// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/jmoiron/sqlx"

	router "rentpay/internal/api"
	"rentpay/internal/api/handler"
	"rentpay/internal/auth"
	"rentpay/internal/config"
	"rentpay/internal/migrations"
	"rentpay/internal/repository"
	"rentpay/internal/repository/postgres"
	"rentpay/internal/service"
	"rentpay/internal/util"
	"rentpay/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UserRepository     repository.UserRepository
	PaymentRepository  repository.PaymentRepository
	PropertyRepository repository.PropertyRepository

	// Services
	AuthService     service.AuthService
	PaymentService  service.PaymentService
	PropertyService service.PropertyService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Initialize Logger, so configuration errors can be reported.
	util.InitLogger(os.Getenv("LOG_LEVEL"))
	app.Logger = util.GetLogger()

	// 2. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database
	database, err := db.NewPostgresDB(ctx, app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	if app.Config.AutoMigrate {
		if err := db.Migrate(ctx, app.DB, migrations.FS); err != nil {
			return err
		}
		app.Logger.Info("Database migrations applied.")
	}

	// 4. Initialize Repositories
	app.UserRepository = postgres.NewUserRepository()
	app.PaymentRepository = postgres.NewPaymentRepository()
	app.PropertyRepository = postgres.NewPropertyRepository()
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize Services
	app.AuthService = service.NewAuthService(
		app.DB,
		app.UserRepository,
		auth.NewBcryptHasher(app.Config.Auth.BcryptCost),
		auth.NewTokenManager(app.Config.Auth.JWTSecret, app.Config.Auth.TokenTTL),
	)
	// Pass the concrete db.BeginTx, db.CommitTx, db.RollbackTx functions from pkg/db
	app.PaymentService = service.NewPaymentService(
		app.DB, // This is the DBTxBeginner
		app.DB, // This is the DBExecutor
		app.PaymentRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.PropertyService = service.NewPropertyService(app.DB, app.PropertyRepository)
	app.Logger.Info("Services initialized.")

	// 6. Initialize HTTP Handlers and Router
	app.HTTPHandler = router.NewRouter(router.Handlers{
		Auth:     handler.NewAuthHandler(app.AuthService, app.Logger),
		Payment:  handler.NewPaymentHandler(app.PaymentService, app.Logger),
		Property: handler.NewPropertyHandler(app.PropertyService, app.Logger),
	}, app.AuthService)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	logger := app.Logger
	if logger == nil {
		logger = util.GetLogger()
	}
	logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		logger.Info("Database connection closed.")
	}
	logger.Info("Application shut down gracefully.")
	return nil
}
