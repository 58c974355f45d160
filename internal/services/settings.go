package services

import (
	"context"
	"strings"

	"github.com/abrezinsky/skinvault/internal/logger"
	"github.com/abrezinsky/skinvault/internal/repository"
)

// Setting keys
const (
	SettingCatalogURL = "catalog_url"
	SettingBaseURL    = "base_url"
)

// SettingsService handles settings-related business logic
type SettingsService struct {
	log  logger.Logger
	repo repository.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(log logger.Logger, repo repository.SettingsRepository) *SettingsService {
	return &SettingsService{log: log, repo: repo}
}

// getOptional returns "" instead of ErrNotFound for unset keys
func (s *SettingsService) getOptional(ctx context.Context, key string) (string, error) {
	value, err := s.repo.GetSetting(ctx, key)
	if err != nil {
		if err == repository.ErrNotFound {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// GetCatalogURL returns the configured item catalog URL
func (s *SettingsService) GetCatalogURL(ctx context.Context) (string, error) {
	return s.getOptional(ctx, SettingCatalogURL)
}

// SetCatalogURL saves the item catalog URL
func (s *SettingsService) SetCatalogURL(ctx context.Context, url string) error {
	return s.repo.SetSetting(ctx, SettingCatalogURL, strings.TrimRight(strings.TrimSpace(url), "/"))
}

// GetBaseURL returns the application base URL
func (s *SettingsService) GetBaseURL(ctx context.Context) (string, error) {
	return s.getOptional(ctx, SettingBaseURL)
}

// SetBaseURL saves the application base URL
func (s *SettingsService) SetBaseURL(ctx context.Context, url string) error {
	return s.repo.SetSetting(ctx, SettingBaseURL, strings.TrimRight(strings.TrimSpace(url), "/"))
}

// GetSetting retrieves an arbitrary setting
func (s *SettingsService) GetSetting(ctx context.Context, key string) (string, error) {
	return s.repo.GetSetting(ctx, key)
}

// SetSetting saves an arbitrary setting
func (s *SettingsService) SetSetting(ctx context.Context, key, value string) error {
	return s.repo.SetSetting(ctx, key, value)
}

// AllSettings returns the user-facing settings as a map
func (s *SettingsService) AllSettings(ctx context.Context) (map[string]any, error) {
	catalogURL, err := s.GetCatalogURL(ctx)
	if err != nil {
		return nil, err
	}
	baseURL, err := s.GetBaseURL(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		SettingCatalogURL: catalogURL,
		SettingBaseURL:    baseURL,
	}, nil
}

// Settings represents application settings for update operations.
// Empty fields are left unchanged.
type Settings struct {
	CatalogURL string
	BaseURL    string
}

// UpdateSettings updates multiple settings at once
func (s *SettingsService) UpdateSettings(ctx context.Context, settings Settings) error {
	if settings.CatalogURL != "" {
		if err := s.SetCatalogURL(ctx, settings.CatalogURL); err != nil {
			return err
		}
	}
	if settings.BaseURL != "" {
		if err := s.SetBaseURL(ctx, settings.BaseURL); err != nil {
			return err
		}
	}
	s.log.Info("Settings updated", "catalog_url", settings.CatalogURL, "base_url", settings.BaseURL)
	return nil
}

// GetStats returns catalog, inventory and saved loadout counts
func (s *SettingsService) GetStats(ctx context.Context) (map[string]any, error) {
	return s.repo.GetStats(ctx)
}

// ResetTablesResult contains the result of a database reset
type ResetTablesResult struct {
	Tables  []string `json:"tables"`
	Message string   `json:"message"`
}

// ValidTables defines which tables can be reset
var ValidTables = map[string]bool{
	"skins": true, "inventory_items": true, "loadouts": true, "settings": true,
}

// ResetTables validates and resets the specified database tables
func (s *SettingsService) ResetTables(ctx context.Context, tables []string) (*ResetTablesResult, error) {
	if len(tables) == 0 {
		return nil, ErrNoTablesSpecified
	}

	for _, table := range tables {
		if !ValidTables[table] {
			return nil, &InvalidTableError{Table: table}
		}
	}

	// Owned items reference catalog skins, so clear them first
	tablesToReset := append([]string(nil), tables...)
	if containsTable(tablesToReset, "skins") && !containsTable(tablesToReset, "inventory_items") {
		tablesToReset = append([]string{"inventory_items"}, tablesToReset...)
	}

	for _, table := range tablesToReset {
		if err := s.repo.ClearTable(ctx, table); err != nil {
			return nil, err
		}
	}

	s.log.Warn("Tables reset", "tables", tablesToReset)
	return &ResetTablesResult{
		Tables:  tablesToReset,
		Message: "Successfully deleted data from tables",
	}, nil
}

func containsTable(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
