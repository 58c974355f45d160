package handlers

// SkinSyncRequest represents a request to sync the catalog. An empty URL
// falls back to the catalog_url setting.
type SkinSyncRequest struct {
	CatalogURL string `json:"catalog_url"`
}

// InventoryAddRequest represents a request to record an owned item.
// The skin is identified by ID or, when skin_id is 0, by name.
type InventoryAddRequest struct {
	SkinID   int64   `json:"skin_id"`
	SkinName string  `json:"skin_name"`
	Price    float64 `json:"price"`
}

// ResolveRequest represents the user's answer to the head pending choice
type ResolveRequest struct {
	InventoryID *int64 `json:"inventory_id"`
}

// SlotAssignRequest represents a manual pick for a slot/team pair.
// Exactly one field must be set.
type SlotAssignRequest struct {
	SkinID      *int64 `json:"skin_id"`
	InventoryID *int64 `json:"inventory_id"`
	SkinName    string `json:"skin_name"`
}

// SaveLoadoutRequest represents a request to persist a session's loadout
type SaveLoadoutRequest struct {
	Name string `json:"name"`
}

// SettingsUpdateRequest represents a request to update settings
type SettingsUpdateRequest struct {
	CatalogURL string `json:"catalog_url"`
	BaseURL    string `json:"base_url"`
}

// DatabaseResetRequest represents a request to reset database tables
type DatabaseResetRequest struct {
	Tables []string `json:"tables"`
}
