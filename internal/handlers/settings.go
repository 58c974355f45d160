package handlers

import (
	"net/http"

	"github.com/abrezinsky/skinvault/internal/services"
)

func (h *Handlers) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	catalogURL, err := h.Settings.GetCatalogURL(ctx)
	if err != nil {
		h.respondError(w, err)
		return
	}
	baseURL, err := h.Settings.GetBaseURL(ctx)
	if err != nil {
		h.respondError(w, err)
		return
	}

	respondOK(w, SettingsResponse{CatalogURL: catalogURL, BaseURL: baseURL})
}

func (h *Handlers) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	err := h.Settings.UpdateSettings(r.Context(), services.Settings{
		CatalogURL: req.CatalogURL,
		BaseURL:    req.BaseURL,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.handleGetSettings(w, r)
}

func (h *Handlers) handleGetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Settings.GetStats(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	stats["active_sessions"] = h.Loadout.SessionCount()
	respondOK(w, stats)
}

func (h *Handlers) handleResetDatabase(w http.ResponseWriter, r *http.Request) {
	var req DatabaseResetRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	result, err := h.Settings.ResetTables(r.Context(), req.Tables)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.notify(MsgCatalogUpdated, result)
	respondOK(w, result)
}
