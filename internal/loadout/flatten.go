package loadout

import "github.com/abrezinsky/skinvault/internal/models"

// Flatten lists every populated slot/team pair in catalog order, CT before T.
// Assignments for keys missing from the catalog are ignored.
func Flatten(selection Selection, catalog *Catalog) []models.LoadoutEntry {
	var out []models.LoadoutEntry
	for _, slot := range catalog.Slots() {
		for _, team := range []Team{TeamCT, TeamT} {
			a := selection.Get(slot.Key, team)
			if a == nil {
				continue
			}
			entry := models.LoadoutEntry{
				SlotKey:  slot.Key,
				Team:     string(team),
				SkinName: a.Item.Name,
				ImageURL: a.Item.ImageURL,
				Weapon:   a.Item.Weapon,
				Type:     a.Item.Type,
			}
			if a.InventoryID != nil {
				id := *a.InventoryID
				entry.InventoryItemID = &id
			}
			if a.Item.ID != 0 {
				skinID := a.Item.ID
				entry.SkinID = &skinID
			}
			out = append(out, entry)
		}
	}
	return out
}
