package repository

import (
	"context"

	"github.com/abrezinsky/skinvault/internal/models"
)

// SkinRepository defines catalog data operations
type SkinRepository interface {
	ListSkins(ctx context.Context) ([]models.Skin, error)
	GetSkin(ctx context.Context, id int64) (*models.Skin, error)
	GetSkinByName(ctx context.Context, name string) (*models.Skin, error)
	UpsertSkin(ctx context.Context, skin models.Skin) (created bool, err error)
	CountSkins(ctx context.Context) (int, error)
}

// InventoryRepository defines owned item data operations
type InventoryRepository interface {
	ListInventory(ctx context.Context) ([]models.InventoryItem, error)
	GetInventoryItem(ctx context.Context, id int64) (*models.InventoryItem, error)
	AddInventoryItem(ctx context.Context, skinID int64, price float64) (int64, error)
	DeleteInventoryItem(ctx context.Context, id int64) error
}

// LoadoutRepository defines saved loadout data operations
type LoadoutRepository interface {
	CreateLoadout(ctx context.Context, name, shareCode string, entries []models.LoadoutEntry) (int64, error)
	ListLoadouts(ctx context.Context) ([]models.SavedLoadout, error)
	GetLoadoutByCode(ctx context.Context, shareCode string) (*models.SavedLoadout, error)
	DeleteLoadout(ctx context.Context, shareCode string) error
	ShareCodeExists(ctx context.Context, shareCode string) (bool, error)
}

// SettingsRepository defines settings data operations
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	GetStats(ctx context.Context) (map[string]any, error)
	ClearTable(ctx context.Context, table string) error
}

// FullRepository combines all repository interfaces
// Use this when a service needs access to multiple domains
type FullRepository interface {
	SkinRepository
	InventoryRepository
	LoadoutRepository
	SettingsRepository
}

// Ensure Repository implements all interfaces
var _ FullRepository = (*Repository)(nil)
