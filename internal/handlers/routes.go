package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// conditionalHTTPLogger only logs HTTP requests when HTTP logging is enabled
func (h *Handlers) conditionalHTTPLogger(next http.Handler) http.Handler {
	logger := middleware.Logger(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.Log != nil && h.Log.IsHTTPLoggingEnabled() {
			logger.ServeHTTP(w, r)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.conditionalHTTPLogger) // Custom conditional HTTP logger
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Static files (served from embedded filesystem)
	r.Handle("/static/*", http.StripPrefix("/static/", h.staticServer))

	// Home page
	r.Get("/", h.handleIndex)
	r.Get("/health", h.handleHealth)

	// WebSocket (long-lived, outside the timeout group)
	r.Get("/ws", h.Hub.ServeWs)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Route("/api", func(r chi.Router) {
			// Slot layout
			r.Get("/slots", h.handleGetSlots)
			r.Get("/slots/{slotKey}/skins", h.handleGetSlotSkins)

			// Catalog
			r.Get("/skins", h.handleGetSkins)
			r.Get("/skins/{id}", h.handleGetSkin)
			r.Post("/skins/sync", h.handleSyncSkins)
			r.Post("/skins/seed", h.handleSeedSkins)

			// Inventory
			r.Get("/inventory", h.handleGetInventory)
			r.Post("/inventory", h.handleAddInventoryItem)
			r.Get("/inventory/{id}", h.handleGetInventoryItem)
			r.Delete("/inventory/{id}", h.handleDeleteInventoryItem)

			// Cooker sessions
			r.Post("/sessions", h.handleCreateSession)
			r.Route("/sessions/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetSession)
				r.Delete("/", h.handleDeleteSession)
				r.Post("/auto-equip", h.handleAutoEquip)
				r.Get("/pending", h.handleGetPending)
				r.Post("/pending/resolve", h.handleResolvePending)
				r.Post("/pending/skip", h.handleSkipPending)
				r.Put("/slots/{slotKey}/{team}", h.handleAssignSlot)
				r.Delete("/slots/{slotKey}/{team}", h.handleUnassignSlot)
				r.Post("/save", h.handleSaveLoadout)
			})

			// Saved loadouts
			r.Get("/loadouts", h.handleGetLoadouts)
			r.Get("/loadouts/{code}", h.handleGetLoadout)
			r.Delete("/loadouts/{code}", h.handleDeleteLoadout)
			r.Get("/loadouts/{code}/qr", h.handleGetLoadoutQR)
			r.Get("/loadouts/{code}/link", h.handleGetLoadoutLink)

			// Settings & database management
			r.Get("/settings", h.handleGetSettings)
			r.Put("/settings", h.handleUpdateSettings)
			r.Post("/settings/reset", h.handleResetDatabase)
			r.Get("/stats", h.handleGetStats)
		})
	})

	return r
}
