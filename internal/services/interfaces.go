package services

import (
	"context"
	"time"

	"github.com/abrezinsky/skinvault/internal/loadout"
	"github.com/abrezinsky/skinvault/internal/models"
)

// CatalogServicer defines the interface for catalog operations
type CatalogServicer interface {
	Sections() []loadout.Section
	ListSkins(ctx context.Context) ([]models.Skin, error)
	GetSkin(ctx context.Context, id int64) (*models.Skin, error)
	SearchSkins(ctx context.Context, query string, limit int) ([]models.Skin, error)
	FindSkinByName(ctx context.Context, name string) (*models.Skin, error)
	SlotSkins(ctx context.Context, slotKey string) (*SlotSkins, error)
	SyncFromAPI(ctx context.Context, catalogURL string) (*SyncResult, error)
	SeedMockCatalog(ctx context.Context) (int, error)
}

// InventoryServicer defines the interface for inventory operations
type InventoryServicer interface {
	ListInventory(ctx context.Context) ([]models.InventoryItem, error)
	GetItem(ctx context.Context, id int64) (*models.InventoryItem, error)
	AddItem(ctx context.Context, skinID int64, price float64) (*models.InventoryItem, error)
	DeleteItem(ctx context.Context, id int64) error
}

// LoadoutServicer defines the interface for cooker sessions and saved loadouts
type LoadoutServicer interface {
	CreateSession(ctx context.Context) (*SessionState, error)
	GetSession(ctx context.Context, id string) (*SessionState, error)
	DeleteSession(ctx context.Context, id string) error
	SessionCount() int
	PruneIdleSessions(maxIdle time.Duration) int
	AutoEquip(ctx context.Context, id string) (*SessionState, error)
	Pending(ctx context.Context, id string) (*loadout.PendingChoice, error)
	Resolve(ctx context.Context, id string, inventoryID int64) (*SessionState, error)
	Skip(ctx context.Context, id string) (*SessionState, error)
	Assign(ctx context.Context, id, slotKey, team string, req AssignRequest) (*SessionState, error)
	Unassign(ctx context.Context, id, slotKey, team string) (*SessionState, error)
	Save(ctx context.Context, id, name string) (*models.SavedLoadout, error)
	ListLoadouts(ctx context.Context) ([]models.SavedLoadout, error)
	GetLoadout(ctx context.Context, code string) (*models.SavedLoadout, error)
	DeleteLoadout(ctx context.Context, code string) error
	ShareURL(ctx context.Context, code string) (string, error)
	LoadoutQR(ctx context.Context, code string) ([]byte, error)
	SetBroadcaster(b SessionBroadcaster)
}

// SettingsServicer defines the interface for settings operations
type SettingsServicer interface {
	GetCatalogURL(ctx context.Context) (string, error)
	SetCatalogURL(ctx context.Context, url string) error
	GetBaseURL(ctx context.Context) (string, error)
	SetBaseURL(ctx context.Context, url string) error
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	AllSettings(ctx context.Context) (map[string]any, error)
	UpdateSettings(ctx context.Context, settings Settings) error
	GetStats(ctx context.Context) (map[string]any, error)
	ResetTables(ctx context.Context, tables []string) (*ResetTablesResult, error)
}

// Ensure concrete types implement interfaces
var (
	_ CatalogServicer   = (*CatalogService)(nil)
	_ InventoryServicer = (*InventoryService)(nil)
	_ LoadoutServicer   = (*LoadoutService)(nil)
	_ SettingsServicer  = (*SettingsService)(nil)
	_ SkinFinder        = (*CatalogService)(nil)
)
