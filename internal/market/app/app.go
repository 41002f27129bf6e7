package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpapi "github.com/kmrmotors/motodrive/internal/market/http"
	"github.com/kmrmotors/motodrive/internal/market/service"
	"github.com/kmrmotors/motodrive/internal/market/store"
	"github.com/kmrmotors/motodrive/internal/market/store/drivers/sqlite"
	"github.com/kmrmotors/motodrive/pkg/jwtx"
	"github.com/kmrmotors/motodrive/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags.
const BuildVersion = "v0.1.0"

// Application encapsulates the marketplace service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	jwks     *jwtx.RemoteJWKS
	verifier jwtx.Verifier

	directoryService    *service.DirectoryService
	inviteService       *service.InviteService
	catalogService      *service.CatalogService
	inventoryService    *service.InventoryService
	wishlistService     *service.WishlistService
	bookingService      *service.BookingService
	dashboardService    *service.DashboardService
	bootstrapService    *service.BootstrapService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "motodrive",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initVerifier()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("motodrive service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully stops the HTTP server, workers, and database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down motodrive service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("motodrive service stopped")
	return nil
}

func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initVerifier() {
	app.jwks = jwtx.NewRemoteJWKS(app.cfg.JWKSURL)
	app.verifier = jwtx.NewVerifierRS256(app.jwks, app.cfg.Issuer, app.cfg.Audience)

	// Warm the key cache; a cold cache just means the first verification
	// triggers the fetch instead.
	if err := app.jwks.Refresh(); err != nil {
		app.logger.Warn("initial JWKS fetch failed", "error", err)
	}
}

func (app *Application) initServices() {
	app.inviteService = &service.InviteService{
		Store:      app.db,
		AppBaseURL: app.cfg.AppBaseURL,
	}
	app.directoryService = &service.DirectoryService{
		Store:       app.db,
		Invites:     app.inviteService,
		AdminEmails: app.cfg.AdminEmails,
	}
	app.catalogService = &service.CatalogService{Store: app.db}
	app.inventoryService = &service.InventoryService{Store: app.db}
	app.wishlistService = &service.WishlistService{Store: app.db}
	app.bookingService = &service.BookingService{
		Store:             app.db,
		StrictTransitions: app.cfg.BookingStrictTransitions,
	}
	app.dashboardService = &service.DashboardService{Store: app.db}
	app.bootstrapService = &service.BootstrapService{
		Store: app.db,
		Token: app.cfg.BootstrapToken,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.jwks,
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.DirectoryService = app.directoryService
	router.InviteService = app.inviteService
	router.CatalogService = app.catalogService
	router.InventoryService = app.inventoryService
	router.WishlistService = app.wishlistService
	router.BookingService = app.bookingService
	router.DashboardService = app.dashboardService
	router.BootstrapService = app.bootstrapService

	router.ApplyRoutes()
	app.router = router

	app.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", app.cfg.Port),
		Handler: app.router,
	}
}
