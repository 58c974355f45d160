package mock

import (
	"context"

	"github.com/abrezinsky/skinvault/internal/models"
	"github.com/abrezinsky/skinvault/internal/repository"
)

// Repository wraps a real repository and allows injecting errors for testing.
//
// Usage:
//
//	realRepo := testutil.NewTestRepository(t)
//	mockRepo := mock.NewRepository(realRepo)
//	mockRepo.UpsertSkinError = errors.New("database error")
//	svc := services.NewCatalogService(log, mockRepo, mockClient)
//	_, err := svc.SyncFromAPI(ctx, "http://catalog.local")
//	// err will now contain the injected error
type Repository struct {
	repository.FullRepository

	// ===== Skin Errors =====
	ListSkinsError     error
	GetSkinError       error
	GetSkinByNameError error
	UpsertSkinError    error
	CountSkinsError    error

	// ===== Inventory Errors =====
	ListInventoryError       error
	GetInventoryItemError    error
	AddInventoryItemError    error
	DeleteInventoryItemError error

	// ===== Loadout Errors =====
	CreateLoadoutError    error
	ListLoadoutsError     error
	GetLoadoutByCodeError error
	DeleteLoadoutError    error
	ShareCodeExistsError  error

	// ===== Settings Errors =====
	GetSettingError error
	SetSettingError error
	GetStatsError   error
	ClearTableError error
}

// NewRepository creates a mock repository wrapping a real one
func NewRepository(real repository.FullRepository) *Repository {
	return &Repository{
		FullRepository: real,
	}
}

// ===== Skin Methods =====

func (m *Repository) ListSkins(ctx context.Context) ([]models.Skin, error) {
	if m.ListSkinsError != nil {
		return nil, m.ListSkinsError
	}
	return m.FullRepository.ListSkins(ctx)
}

func (m *Repository) GetSkin(ctx context.Context, id int64) (*models.Skin, error) {
	if m.GetSkinError != nil {
		return nil, m.GetSkinError
	}
	return m.FullRepository.GetSkin(ctx, id)
}

func (m *Repository) GetSkinByName(ctx context.Context, name string) (*models.Skin, error) {
	if m.GetSkinByNameError != nil {
		return nil, m.GetSkinByNameError
	}
	return m.FullRepository.GetSkinByName(ctx, name)
}

func (m *Repository) UpsertSkin(ctx context.Context, skin models.Skin) (bool, error) {
	if m.UpsertSkinError != nil {
		return false, m.UpsertSkinError
	}
	return m.FullRepository.UpsertSkin(ctx, skin)
}

func (m *Repository) CountSkins(ctx context.Context) (int, error) {
	if m.CountSkinsError != nil {
		return 0, m.CountSkinsError
	}
	return m.FullRepository.CountSkins(ctx)
}

// ===== Inventory Methods =====

func (m *Repository) ListInventory(ctx context.Context) ([]models.InventoryItem, error) {
	if m.ListInventoryError != nil {
		return nil, m.ListInventoryError
	}
	return m.FullRepository.ListInventory(ctx)
}

func (m *Repository) GetInventoryItem(ctx context.Context, id int64) (*models.InventoryItem, error) {
	if m.GetInventoryItemError != nil {
		return nil, m.GetInventoryItemError
	}
	return m.FullRepository.GetInventoryItem(ctx, id)
}

func (m *Repository) AddInventoryItem(ctx context.Context, skinID int64, price float64) (int64, error) {
	if m.AddInventoryItemError != nil {
		return 0, m.AddInventoryItemError
	}
	return m.FullRepository.AddInventoryItem(ctx, skinID, price)
}

func (m *Repository) DeleteInventoryItem(ctx context.Context, id int64) error {
	if m.DeleteInventoryItemError != nil {
		return m.DeleteInventoryItemError
	}
	return m.FullRepository.DeleteInventoryItem(ctx, id)
}

// ===== Loadout Methods =====

func (m *Repository) CreateLoadout(ctx context.Context, name, shareCode string, entries []models.LoadoutEntry) (int64, error) {
	if m.CreateLoadoutError != nil {
		return 0, m.CreateLoadoutError
	}
	return m.FullRepository.CreateLoadout(ctx, name, shareCode, entries)
}

func (m *Repository) ListLoadouts(ctx context.Context) ([]models.SavedLoadout, error) {
	if m.ListLoadoutsError != nil {
		return nil, m.ListLoadoutsError
	}
	return m.FullRepository.ListLoadouts(ctx)
}

func (m *Repository) GetLoadoutByCode(ctx context.Context, shareCode string) (*models.SavedLoadout, error) {
	if m.GetLoadoutByCodeError != nil {
		return nil, m.GetLoadoutByCodeError
	}
	return m.FullRepository.GetLoadoutByCode(ctx, shareCode)
}

func (m *Repository) DeleteLoadout(ctx context.Context, shareCode string) error {
	if m.DeleteLoadoutError != nil {
		return m.DeleteLoadoutError
	}
	return m.FullRepository.DeleteLoadout(ctx, shareCode)
}

func (m *Repository) ShareCodeExists(ctx context.Context, shareCode string) (bool, error) {
	if m.ShareCodeExistsError != nil {
		return false, m.ShareCodeExistsError
	}
	return m.FullRepository.ShareCodeExists(ctx, shareCode)
}

// ===== Settings Methods =====

func (m *Repository) GetSetting(ctx context.Context, key string) (string, error) {
	if m.GetSettingError != nil {
		return "", m.GetSettingError
	}
	return m.FullRepository.GetSetting(ctx, key)
}

func (m *Repository) SetSetting(ctx context.Context, key, value string) error {
	if m.SetSettingError != nil {
		return m.SetSettingError
	}
	return m.FullRepository.SetSetting(ctx, key, value)
}

func (m *Repository) GetStats(ctx context.Context) (map[string]any, error) {
	if m.GetStatsError != nil {
		return nil, m.GetStatsError
	}
	return m.FullRepository.GetStats(ctx)
}

func (m *Repository) ClearTable(ctx context.Context, table string) error {
	if m.ClearTableError != nil {
		return m.ClearTableError
	}
	return m.FullRepository.ClearTable(ctx, table)
}
