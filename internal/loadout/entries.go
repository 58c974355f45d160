package loadout

import "github.com/abrezinsky/skinvault/internal/models"

// InventoryEntry is an owned item together with its derived team and reuse budget
type InventoryEntry struct {
	InventoryID int64       `json:"inventory_id"`
	Item        CatalogItem `json:"item"`
	Team        Team        `json:"team"`
	MaxUsage    int         `json:"max_usage"`
}

// NewInventoryEntry derives the reuse budget from team
func NewInventoryEntry(inventoryID int64, item CatalogItem, team Team) InventoryEntry {
	return InventoryEntry{
		InventoryID: inventoryID,
		Item:        item,
		Team:        team,
		MaxUsage:    team.MaxUsage(),
	}
}

// BuildEntries keeps every inventory item that belongs in at least one slot and
// classifies it against the first slot that holds it. Agents whose side cannot
// be determined are dropped.
func BuildEntries(items []models.InventoryItem, catalog *Catalog, classifier *Classifier) []InventoryEntry {
	entries := make([]InventoryEntry, 0, len(items))
	for _, inv := range items {
		item := ItemFromInventory(inv)
		slots := catalog.SlotsFor(item)
		if len(slots) == 0 {
			continue
		}
		team, ok := classifier.ClassifyForSlot(slots[0], item)
		if !ok {
			continue
		}
		entries = append(entries, NewInventoryEntry(inv.ID, item, team))
	}
	return entries
}
