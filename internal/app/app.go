package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/abrezinsky/skinvault/internal/handlers"
	"github.com/abrezinsky/skinvault/internal/loadout"
	"github.com/abrezinsky/skinvault/internal/logger"
	"github.com/abrezinsky/skinvault/internal/repository"
	"github.com/abrezinsky/skinvault/internal/services"
	"github.com/abrezinsky/skinvault/internal/websocket"
	"github.com/abrezinsky/skinvault/pkg/skinapi"
)

const (
	sessionPruneInterval = 5 * time.Minute
	sessionMaxIdle       = 2 * time.Hour
	shutdownTimeout      = 5 * time.Second
)

// App holds all application dependencies
type App struct {
	log           logger.Logger
	handlers      *handlers.Handlers
	repo          *repository.Repository
	settings      *services.SettingsService
	cancelPruning context.CancelFunc

	mu     sync.Mutex
	server *http.Server
}

// New creates and initializes a new application instance. A non-empty
// client base URL is stored as the catalog_url setting.
func New(log logger.Logger, dbPath string, client skinapi.Client, templatesFS, staticFS fs.FS) (*App, error) {
	repo, err := repository.New(dbPath)
	if err != nil {
		return nil, err
	}

	slots := loadout.DefaultCatalog()

	// Initialize services
	catalogService := services.NewCatalogService(log, repo, client, slots)
	inventoryService := services.NewInventoryService(log, repo)
	settingsService := services.NewSettingsService(log, repo)
	loadoutService := services.NewLoadoutService(log, repo, catalogService, settingsService, slots, loadout.NewClassifier(nil))

	if url := client.BaseURL(); url != "" {
		if err := settingsService.SetCatalogURL(context.Background(), url); err != nil {
			repo.Close()
			return nil, fmt.Errorf("failed to store catalog URL: %w", err)
		}
	}

	// Initialize WebSocket hub with DI
	hub := websocket.New(log, loadoutService)
	hub.Start()
	loadoutService.SetBroadcaster(hub)

	// Prune idle sessions until shutdown
	ctx, cancel := context.WithCancel(context.Background())
	go hub.StartSessionPruning(ctx, sessionPruneInterval, sessionMaxIdle)

	h, err := handlers.New(
		catalogService,
		inventoryService,
		loadoutService,
		settingsService,
		templatesFS,
		handlers.NewStaticServer(staticFS),
		hub,
		log,
	)
	if err != nil {
		cancel()
		repo.Close()
		return nil, fmt.Errorf("failed to initialize handlers: %w", err)
	}

	return &App{
		log:           log,
		handlers:      h,
		repo:          repo,
		settings:      settingsService,
		cancelPruning: cancel,
	}, nil
}

// Router returns the configured HTTP router
func (a *App) Router() chi.Router {
	return a.handlers.Router()
}

// Run starts the HTTP server and blocks until it stops. A server stopped by
// Shutdown returns nil.
func (a *App) Run(addr string) error {
	// Set default base URL if not configured, using detected LAN IP
	baseURL := lanBaseURL(getPreferredIP(realNetworkProvider{}), addr)
	a.setDefaultBaseURL(baseURL)

	server := &http.Server{
		Addr:              addr,
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.mu.Lock()
	a.server = server
	a.mu.Unlock()

	a.log.Info("Server starting", "url", baseURL)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (a *App) Shutdown(ctx context.Context) error {
	a.mu.Lock()
	server := a.server
	a.mu.Unlock()
	if server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return server.Shutdown(ctx)
}

// Close performs graceful shutdown of app resources
func (a *App) Close() {
	if a.cancelPruning != nil {
		a.cancelPruning()
	}
	if a.repo != nil {
		if err := a.repo.Close(); err != nil {
			a.log.Warn("Failed to close database", "error", err)
		}
	}
}

// setDefaultBaseURL sets the base URL setting if not already configured
// or if current value uses localhost (which isn't useful for QR codes)
func (a *App) setDefaultBaseURL(baseURL string) {
	ctx := context.Background()
	existing, err := a.settings.GetBaseURL(ctx)
	if err != nil {
		a.log.Warn("Failed to read base_url", "error", err)
		return
	}

	if existing != "" && !strings.Contains(existing, "localhost") {
		return
	}
	if err := a.settings.SetBaseURL(ctx, baseURL); err != nil {
		a.log.Warn("Failed to set default base_url", "error", err)
		return
	}
	a.log.Info("Default base URL set", "url", baseURL)
}
