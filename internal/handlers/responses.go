package handlers

import "github.com/abrezinsky/skinvault/internal/loadout"

// PendingResponse is the response for the head pending choice
type PendingResponse struct {
	State  loadout.State          `json:"state"`
	Choice *loadout.PendingChoice `json:"choice"`
}

// SeedResponse is the response for seeding the mock catalog
type SeedResponse struct {
	Added int `json:"added"`
}

// ShareLinkResponse is the response for a saved loadout's share link
type ShareLinkResponse struct {
	Code string `json:"code"`
	URL  string `json:"url"`
}

// SettingsResponse is the response for settings
type SettingsResponse struct {
	CatalogURL string `json:"catalog_url"`
	BaseURL    string `json:"base_url"`
}

// HealthResponse is the response for the health check
type HealthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}
