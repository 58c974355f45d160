package models

// Skin is an entry of the full item catalog
type Skin struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Rarity       string   `json:"rarity"`
	Type         string   `json:"type"`
	Weapon       string   `json:"weapon,omitempty"`
	Collection   string   `json:"collection,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	DefaultPrice *float64 `json:"default_price,omitempty"`
}

// InventoryItem is a skin owned by the user
type InventoryItem struct {
	ID       int64   `json:"id"`
	SkinID   int64   `json:"skin_id"`
	SkinName string  `json:"skin_name"`
	Weapon   string  `json:"weapon,omitempty"`
	Type     string  `json:"type,omitempty"`
	ImageURL string  `json:"image_url,omitempty"`
	Price    float64 `json:"price"`
}

// LoadoutEntry is one populated slot/team pair of a loadout
type LoadoutEntry struct {
	SlotKey         string `json:"slot_key"`
	Team            string `json:"team"` // "CT" or "T"
	InventoryItemID *int64 `json:"inventory_item_id"`
	SkinID          *int64 `json:"skin_id"`
	SkinName        string `json:"skin_name"`
	ImageURL        string `json:"image_url,omitempty"`
	Weapon          string `json:"weapon,omitempty"`
	Type            string `json:"type,omitempty"`
}

// SavedLoadout is a named, persisted loadout
type SavedLoadout struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	ShareCode  string         `json:"share_code"`
	CreatedAt  string         `json:"created_at"`
	EntryCount int            `json:"entry_count"`
	Entries    []LoadoutEntry `json:"entries,omitempty"`
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}
