package services

import (
	"context"

	"github.com/abrezinsky/skinvault/internal/logger"
	"github.com/abrezinsky/skinvault/internal/models"
	"github.com/abrezinsky/skinvault/internal/repository"
)

// InventoryServiceRepository defines the repository methods needed by InventoryService
type InventoryServiceRepository interface {
	repository.InventoryRepository
	GetSkin(ctx context.Context, id int64) (*models.Skin, error)
}

// InventoryService handles the user's owned items
type InventoryService struct {
	log  logger.Logger
	repo InventoryServiceRepository
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(log logger.Logger, repo InventoryServiceRepository) *InventoryService {
	return &InventoryService{log: log, repo: repo}
}

// ListInventory returns every owned item
func (s *InventoryService) ListInventory(ctx context.Context) ([]models.InventoryItem, error) {
	return s.repo.ListInventory(ctx)
}

// GetItem returns an owned item by ID
func (s *InventoryService) GetItem(ctx context.Context, id int64) (*models.InventoryItem, error) {
	item, err := s.repo.GetInventoryItem(ctx, id)
	if err == repository.ErrNotFound {
		return nil, ErrInventoryItemNotFound
	}
	return item, err
}

// AddItem records one owned copy of a catalog skin. A zero price falls back
// to the skin's default price.
func (s *InventoryService) AddItem(ctx context.Context, skinID int64, price float64) (*models.InventoryItem, error) {
	if price < 0 {
		return nil, ErrInvalidPrice
	}

	skin, err := s.repo.GetSkin(ctx, skinID)
	if err == repository.ErrNotFound {
		return nil, ErrSkinNotFound
	}
	if err != nil {
		return nil, err
	}
	if price == 0 && skin.DefaultPrice != nil {
		price = *skin.DefaultPrice
	}

	id, err := s.repo.AddInventoryItem(ctx, skinID, price)
	if err != nil {
		return nil, err
	}

	s.log.Info("Inventory item added", "id", id, "skin", skin.Name)
	return s.GetItem(ctx, id)
}

// DeleteItem removes an owned item
func (s *InventoryService) DeleteItem(ctx context.Context, id int64) error {
	err := s.repo.DeleteInventoryItem(ctx, id)
	if err == repository.ErrNotFound {
		return ErrInventoryItemNotFound
	}
	if err != nil {
		return err
	}
	s.log.Info("Inventory item deleted", "id", id)
	return nil
}
