package loadout

import "github.com/abrezinsky/skinvault/internal/models"

// inv builds an inventory item whose weapon is derived from the name
func inv(id int64, name string) models.InventoryItem {
	return models.InventoryItem{ID: id, SkinID: id + 1000, SkinName: name}
}

// typedInv builds an inventory item with an explicit type
func typedInv(id int64, name, itemType string) models.InventoryItem {
	return models.InventoryItem{ID: id, SkinID: id + 1000, SkinName: name, Type: itemType}
}

func entry(id int64, name string, team Team) InventoryEntry {
	return NewInventoryEntry(id, CatalogItem{ID: id + 1000, Name: name}, team)
}

func newTestCooker() *Cooker {
	return NewCooker(DefaultCatalog(), NewClassifier(nil))
}

func int64Ptr(v int64) *int64 {
	return &v
}
