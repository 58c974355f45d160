package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// MsgCatalogUpdated is broadcast after the catalog changes
const MsgCatalogUpdated = "catalog_updated"

// ==================== Slots ====================

func (h *Handlers) handleGetSlots(w http.ResponseWriter, r *http.Request) {
	respondOK(w, h.Catalog.Sections())
}

func (h *Handlers) handleGetSlotSkins(w http.ResponseWriter, r *http.Request) {
	result, err := h.Catalog.SlotSkins(r.Context(), chi.URLParam(r, "slotKey"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondOK(w, result)
}

// ==================== Skins ====================

func (h *Handlers) handleGetSkins(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		h.respondError(w, err)
		return
	}

	skins, err := h.Catalog.SearchSkins(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondOK(w, skins)
}

func (h *Handlers) handleGetSkin(w http.ResponseWriter, r *http.Request) {
	id, err := parseInt64Param(r, "id")
	if err != nil {
		h.respondError(w, err)
		return
	}

	skin, err := h.Catalog.GetSkin(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondOK(w, skin)
}

func (h *Handlers) handleSyncSkins(w http.ResponseWriter, r *http.Request) {
	var req SkinSyncRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	ctx := r.Context()
	catalogURL := req.CatalogURL
	if catalogURL == "" {
		var err error
		if catalogURL, err = h.Settings.GetCatalogURL(ctx); err != nil {
			h.respondError(w, err)
			return
		}
	}

	result, err := h.Catalog.SyncFromAPI(ctx, catalogURL)
	if err != nil && result == nil {
		h.respondError(w, err)
		return
	}
	if err != nil {
		// Partial sync: report counts, log the first failure
		h.Log.Warn("Catalog sync finished with errors", "errors", result.Errors, "error", err)
	}

	h.notify(MsgCatalogUpdated, result)
	respondOK(w, result)
}

func (h *Handlers) handleSeedSkins(w http.ResponseWriter, r *http.Request) {
	added, err := h.Catalog.SeedMockCatalog(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.notify(MsgCatalogUpdated, SeedResponse{Added: added})
	respondOK(w, SeedResponse{Added: added})
}
