package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abrezinsky/skinvault/internal/models"
)

func (h *Handlers) handleGetLoadouts(w http.ResponseWriter, r *http.Request) {
	loadouts, err := h.Loadout.ListLoadouts(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	if loadouts == nil {
		loadouts = []models.SavedLoadout{}
	}
	respondOK(w, loadouts)
}

func (h *Handlers) handleGetLoadout(w http.ResponseWriter, r *http.Request) {
	l, err := h.Loadout.GetLoadout(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondOK(w, l)
}

func (h *Handlers) handleDeleteLoadout(w http.ResponseWriter, r *http.Request) {
	if err := h.Loadout.DeleteLoadout(r.Context(), chi.URLParam(r, "code")); err != nil {
		h.respondError(w, err)
		return
	}
	respondDeleted(w)
}

func (h *Handlers) handleGetLoadoutQR(w http.ResponseWriter, r *http.Request) {
	png, err := h.Loadout.LoadoutQR(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondPNG(w, png)
}

func (h *Handlers) handleGetLoadoutLink(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	link, err := h.Loadout.ShareURL(r.Context(), code)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondOK(w, ShareLinkResponse{Code: code, URL: link})
}
