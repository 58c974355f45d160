package handlers

import "net/http"

func (h *Handlers) handleGetInventory(w http.ResponseWriter, r *http.Request) {
	items, err := h.Inventory.ListInventory(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondOK(w, items)
}

func (h *Handlers) handleGetInventoryItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseInt64Param(r, "id")
	if err != nil {
		h.respondError(w, err)
		return
	}

	item, err := h.Inventory.GetItem(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondOK(w, item)
}

func (h *Handlers) handleAddInventoryItem(w http.ResponseWriter, r *http.Request) {
	var req InventoryAddRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	ctx := r.Context()
	skinID := req.SkinID
	if skinID == 0 {
		if req.SkinName == "" {
			h.respondError(w, BadRequest("skin_id or skin_name is required"))
			return
		}
		skin, err := h.Catalog.FindSkinByName(ctx, req.SkinName)
		if err != nil {
			h.respondError(w, err)
			return
		}
		skinID = skin.ID
	}

	item, err := h.Inventory.AddItem(ctx, skinID, req.Price)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondCreated(w, item)
}

func (h *Handlers) handleDeleteInventoryItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseInt64Param(r, "id")
	if err != nil {
		h.respondError(w, err)
		return
	}

	if err := h.Inventory.DeleteItem(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	respondDeleted(w)
}
