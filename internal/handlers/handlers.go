package handlers

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/abrezinsky/skinvault/internal/logger"
	"github.com/abrezinsky/skinvault/internal/services"
	"github.com/abrezinsky/skinvault/internal/websocket"
)

// NewStaticServer creates a static file server from an fs.FS
func NewStaticServer(staticFS fs.FS) http.Handler {
	return http.FileServer(http.FS(staticFS))
}

// IndexPageData holds the data passed to the index template
type IndexPageData struct {
	Title       string
	LoadoutCode string
}

// Templates holds all parsed HTML templates
type Templates struct {
	Index *template.Template
}

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Catalog      services.CatalogServicer
	Inventory    services.InventoryServicer
	Loadout      services.LoadoutServicer
	Settings     services.SettingsServicer
	Hub          *websocket.Hub
	Log          logger.Logger
	templates    *Templates
	staticServer http.Handler
}

// New creates a new Handlers instance with all dependencies
func New(
	catalog services.CatalogServicer,
	inventory services.InventoryServicer,
	loadout services.LoadoutServicer,
	settings services.SettingsServicer,
	templatesFS fs.FS,
	staticServer http.Handler,
	hub *websocket.Hub,
	log logger.Logger,
) (*Handlers, error) {
	templates, err := loadTemplates(templatesFS)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return &Handlers{
		Catalog:      catalog,
		Inventory:    inventory,
		Loadout:      loadout,
		Settings:     settings,
		Hub:          hub,
		Log:          log,
		templates:    templates,
		staticServer: staticServer,
	}, nil
}

// NewForTesting creates a Handlers instance without templates or a websocket
// hub (for testing API endpoints)
func NewForTesting(
	catalog services.CatalogServicer,
	inventory services.InventoryServicer,
	loadout services.LoadoutServicer,
	settings services.SettingsServicer,
) *Handlers {
	return &Handlers{
		Catalog:   catalog,
		Inventory: inventory,
		Loadout:   loadout,
		Settings:  settings,
		Log:       logger.Discard(),
	}
}

// notify broadcasts a message to every websocket client when a hub is attached
func (h *Handlers) notify(msgType string, payload any) {
	if h.Hub != nil {
		h.Hub.BroadcastMessage(msgType, payload)
	}
}

// loadTemplates parses all templates once at startup
func loadTemplates(templatesFS fs.FS) (*Templates, error) {
	t := &Templates{}
	var err error

	if t.Index, err = template.ParseFS(templatesFS, "index.html"); err != nil {
		return nil, fmt.Errorf("index template: %w", err)
	}

	return t, nil
}
