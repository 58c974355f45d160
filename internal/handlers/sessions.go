package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abrezinsky/skinvault/internal/loadout"
	"github.com/abrezinsky/skinvault/internal/services"
)

func (h *Handlers) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	state, err := h.Loadout.CreateSession(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondCreated(w, state)
}

func (h *Handlers) handleGetSession(w http.ResponseWriter, r *http.Request) {
	state, err := h.Loadout.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondOK(w, state)
}

func (h *Handlers) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.Loadout.DeleteSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, err)
		return
	}
	respondDeleted(w)
}

func (h *Handlers) handleAutoEquip(w http.ResponseWriter, r *http.Request) {
	state, err := h.Loadout.AutoEquip(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondOK(w, state)
}

func (h *Handlers) handleGetPending(w http.ResponseWriter, r *http.Request) {
	head, err := h.Loadout.Pending(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}

	resp := PendingResponse{State: loadout.StateIdle, Choice: head}
	if head != nil {
		resp.State = loadout.StateAwaitingChoice
	}
	respondOK(w, resp)
}

func (h *Handlers) handleResolvePending(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	if req.InventoryID == nil {
		h.respondError(w, BadRequest("inventory_id is required"))
		return
	}

	state, err := h.Loadout.Resolve(r.Context(), chi.URLParam(r, "id"), *req.InventoryID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondOK(w, state)
}

func (h *Handlers) handleSkipPending(w http.ResponseWriter, r *http.Request) {
	state, err := h.Loadout.Skip(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondOK(w, state)
}

func (h *Handlers) handleAssignSlot(w http.ResponseWriter, r *http.Request) {
	var req SlotAssignRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	state, err := h.Loadout.Assign(r.Context(),
		chi.URLParam(r, "id"),
		chi.URLParam(r, "slotKey"),
		chi.URLParam(r, "team"),
		services.AssignRequest{
			SkinID:      req.SkinID,
			InventoryID: req.InventoryID,
			SkinName:    req.SkinName,
		},
	)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondOK(w, state)
}

func (h *Handlers) handleUnassignSlot(w http.ResponseWriter, r *http.Request) {
	state, err := h.Loadout.Unassign(r.Context(),
		chi.URLParam(r, "id"),
		chi.URLParam(r, "slotKey"),
		chi.URLParam(r, "team"),
	)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondOK(w, state)
}

func (h *Handlers) handleSaveLoadout(w http.ResponseWriter, r *http.Request) {
	var req SaveLoadoutRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	saved, err := h.Loadout.Save(r.Context(), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondCreated(w, saved)
}
