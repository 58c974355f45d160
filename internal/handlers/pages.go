package handlers

import "net/http"

func (h *Handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := IndexPageData{
		Title:       "SkinVault",
		LoadoutCode: r.URL.Query().Get("loadout"),
	}
	if err := h.templates.Index.Execute(w, data); err != nil {
		h.Log.Error("Failed to render index", "error", err)
	}
}

func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	sessions := 0
	if h.Loadout != nil {
		sessions = h.Loadout.SessionCount()
	}
	respondOK(w, HealthResponse{Status: "ok", Sessions: sessions})
}
