package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/venuelaunch/venuelaunch/config"
	"github.com/venuelaunch/venuelaunch/internal/database"
	"github.com/venuelaunch/venuelaunch/internal/domain"
	httpHandler "github.com/venuelaunch/venuelaunch/internal/http"
	"github.com/venuelaunch/venuelaunch/internal/http/middleware"
	"github.com/venuelaunch/venuelaunch/internal/repository"
	"github.com/venuelaunch/venuelaunch/internal/service"
	"github.com/venuelaunch/venuelaunch/pkg/logger"
)

// App encapsulates the application dependencies and configuration
type App struct {
	config *config.Config
	logger logger.Logger
	db     *sql.DB
	mux    *http.ServeMux

	// Repositories
	userRepo        domain.UserRepository
	progressRepo    domain.ProgressRepository
	activityRepo    domain.ActivityRepository
	sessionRepo     domain.SessionRepository
	guideRepo       domain.GuideRepository
	venueRepo       domain.VenueRepository
	cmsAdminRepo    domain.CmsAdminRepository
	contentTypeRepo domain.ContentTypeRepository
	contentRepo     domain.ContentRepository
	activityLogRepo domain.CmsActivityLogRepository

	// Services
	userService     *service.UserService
	progressService *service.ProgressService
	activityService *service.ActivityService
	guideService    *service.GuideService
	venueService    *service.VenueService
	cmsAuthService  *service.CMSAuthService
	contentService  *service.ContentService

	// HTTP server
	server          *http.Server
	serverMu        sync.RWMutex
	shutdownTimeout time.Duration
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithMockDB configures the app to use a mock database
func WithMockDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
	}
}

// WithLogger sets a custom logger
func WithLogger(logger logger.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) *App {
	app := &App{
		config:          cfg,
		logger:          logger.NewLoggerWithLevel(cfg.LogLevel),
		mux:             http.NewServeMux(),
		shutdownTimeout: 30 * time.Second,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// InitDB connects to Postgres, ensures the schema exists and seeds the root
// CMS admin
func (a *App) InitDB() error {
	if a.db == nil {
		db, err := database.Connect(&a.config.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		a.db = db
	}

	if err := database.InitializeDatabase(a.db, a.config.Security.RootAdminEmail, a.config.Security.RootAdminPassword); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	a.logger.Info("Database initialized")
	return nil
}

// InitRepositories initializes all repositories
func (a *App) InitRepositories() error {
	a.userRepo = repository.NewUserRepository(a.db)
	a.progressRepo = repository.NewProgressRepository(a.db)
	a.activityRepo = repository.NewActivityRepository(a.db)
	a.sessionRepo = repository.NewSessionRepository(a.db)
	a.guideRepo = repository.NewGuideRepository(a.db)
	a.venueRepo = repository.NewVenueRepository(a.db)
	a.cmsAdminRepo = repository.NewCmsAdminRepository(a.db)
	a.contentTypeRepo = repository.NewContentTypeRepository(a.db)
	a.contentRepo = repository.NewContentRepository(a.db)
	a.activityLogRepo = repository.NewCmsActivityLogRepository(a.db)
	return nil
}

// InitServices initializes all services
func (a *App) InitServices() error {
	a.userService = service.NewUserService(a.userRepo, a.logger)
	a.progressService = service.NewProgressService(a.progressRepo, a.logger)
	a.activityService = service.NewActivityService(a.activityRepo, a.sessionRepo, a.logger)
	a.guideService = service.NewGuideService(a.guideRepo, a.logger)
	a.venueService = service.NewVenueService(a.venueRepo, a.logger)
	a.cmsAuthService = service.NewCMSAuthService(a.cmsAdminRepo, a.activityLogRepo, a.config.Security.CMSJWTSecret, a.logger)
	a.contentService = service.NewContentService(a.contentRepo, a.contentTypeRepo, a.activityLogRepo, a.cmsAuthService, a.logger)
	return nil
}

// InitHandlers initializes all HTTP handlers and registers their routes
func (a *App) InitHandlers() error {
	authMiddleware := middleware.NewCMSAuthMiddleware(a.cmsAuthService)

	rootHandler := httpHandler.NewRootHandler(a.config.Version, a.logger)
	userHandler := httpHandler.NewUserHandler(a.userService, a.logger)
	progressHandler := httpHandler.NewProgressHandler(a.progressService, a.logger)
	activityHandler := httpHandler.NewActivityHandler(a.activityService, a.logger)
	guideHandler := httpHandler.NewGuideHandler(a.guideService, a.logger)
	venueHandler := httpHandler.NewVenueHandler(a.venueService, a.logger)
	cmsAuthHandler := httpHandler.NewCMSAuthHandler(a.cmsAuthService, a.logger)
	contentHandler := httpHandler.NewContentHandler(a.contentService, authMiddleware, a.logger)
	cmsLogHandler := httpHandler.NewCmsLogHandler(a.contentService, authMiddleware, a.logger)

	rootHandler.RegisterRoutes(a.mux)
	userHandler.RegisterRoutes(a.mux)
	progressHandler.RegisterRoutes(a.mux)
	activityHandler.RegisterRoutes(a.mux)
	guideHandler.RegisterRoutes(a.mux)
	venueHandler.RegisterRoutes(a.mux)
	cmsAuthHandler.RegisterRoutes(a.mux)
	contentHandler.RegisterRoutes(a.mux)
	cmsLogHandler.RegisterRoutes(a.mux)

	return nil
}

// Initialize runs all initialization steps in order
func (a *App) Initialize() error {
	a.logger.WithField("version", a.config.Version).Info("Starting VenueLaunch API")

	if err := a.InitDB(); err != nil {
		return err
	}
	if err := a.InitRepositories(); err != nil {
		return err
	}
	if err := a.InitServices(); err != nil {
		return err
	}
	if err := a.InitHandlers(); err != nil {
		return err
	}

	a.logger.Info("Application successfully initialized")
	return nil
}

// Start runs the HTTP server. It blocks until the server stops.
func (a *App) Start() error {
	var handler http.Handler = a.mux
	handler = middleware.SignatureMiddleware(a.config.Security.SessionSecret)(handler)
	handler = middleware.CORSMiddleware(a.config.Server.CORSAllowOrigin)(handler)

	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.logger.WithField("address", addr).Info(fmt.Sprintf("Server starting on %s", addr))

	a.serverMu.Lock()
	a.server = &http.Server{
		Addr:    addr,
		Handler: handler,
	}
	a.serverMu.Unlock()

	return a.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server and closes the database
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Starting graceful shutdown...")

	a.serverMu.RLock()
	server := a.server
	a.serverMu.RUnlock()

	if server != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, a.shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			a.logger.WithField("error", err.Error()).Error("Server shutdown failed")
			return err
		}
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.WithField("error", err.Error()).Error("Failed to close database")
			return err
		}
	}

	a.logger.Info("Shutdown complete")
	return nil
}

// GetConfig returns the app's configuration
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetLogger returns the app's logger
func (a *App) GetLogger() logger.Logger {
	return a.logger
}

// GetMux returns the app's HTTP mux
func (a *App) GetMux() *http.ServeMux {
	return a.mux
}

// GetDB returns the app's database connection
func (a *App) GetDB() *sql.DB {
	return a.db
}
