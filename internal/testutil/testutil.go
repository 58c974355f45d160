package testutil

import (
	"context"
	"testing"

	"github.com/abrezinsky/skinvault/internal/models"
	"github.com/abrezinsky/skinvault/internal/repository"
)

// NewTestRepository creates a new in-memory repository for testing.
// Each call creates a fresh database with all migrations applied.
func NewTestRepository(t *testing.T) *repository.Repository {
	t.Helper()

	repo, err := repository.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}

	t.Cleanup(func() {
		repo.Close()
	})

	return repo
}

// SeedSkin inserts a catalog skin and returns its ID
func SeedSkin(t *testing.T, repo *repository.Repository, name, weapon, skinType string) int64 {
	t.Helper()
	ctx := context.Background()

	if _, err := repo.UpsertSkin(ctx, models.Skin{Name: name, Weapon: weapon, Type: skinType, Rarity: "Covert"}); err != nil {
		t.Fatalf("failed to seed skin %q: %v", name, err)
	}
	skin, err := repo.GetSkinByName(ctx, name)
	if err != nil {
		t.Fatalf("failed to load seeded skin %q: %v", name, err)
	}
	return skin.ID
}

// SeedInventory inserts a catalog skin plus one owned copy and returns the inventory ID
func SeedInventory(t *testing.T, repo *repository.Repository, name, weapon, skinType string) int64 {
	t.Helper()

	skinID := SeedSkin(t, repo, name, weapon, skinType)
	id, err := repo.AddInventoryItem(context.Background(), skinID, 0)
	if err != nil {
		t.Fatalf("failed to seed inventory item %q: %v", name, err)
	}
	return id
}
