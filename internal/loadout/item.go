package loadout

import (
	"strings"

	"github.com/abrezinsky/skinvault/internal/models"
)

// CatalogItem is the item shape consumed by slot membership and the classifier.
// It is produced from either the skin catalog or the owned inventory.
type CatalogItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Weapon   string `json:"weapon,omitempty"`
	Type     string `json:"type,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// ItemFromSkin converts a catalog skin
func ItemFromSkin(s models.Skin) CatalogItem {
	return CatalogItem{
		ID:       s.ID,
		Name:     s.Name,
		Weapon:   s.Weapon,
		Type:     s.Type,
		ImageURL: s.ImageURL,
	}
}

// ItemFromInventory converts an owned inventory item. The item ID is the skin ID.
func ItemFromInventory(inv models.InventoryItem) CatalogItem {
	return CatalogItem{
		ID:       inv.SkinID,
		Name:     inv.SkinName,
		Weapon:   inv.Weapon,
		Type:     inv.Type,
		ImageURL: inv.ImageURL,
	}
}

var namePrefixes = []string{"★ ", "★", "StatTrak™ ", "Souvenir "}

// stripPrefixes removes quality markers from a market name
func stripPrefixes(name string) string {
	name = strings.TrimSpace(name)
	for changed := true; changed; {
		changed = false
		for _, p := range namePrefixes {
			if strings.HasPrefix(name, p) {
				name = strings.TrimSpace(strings.TrimPrefix(name, p))
				changed = true
			}
		}
	}
	return name
}

// BaseName returns the part of the item name before the finish,
// e.g. "★ Karambit | Fade" -> "Karambit"
func (i CatalogItem) BaseName() string {
	name := stripPrefixes(i.Name)
	if idx := strings.Index(name, " | "); idx >= 0 {
		name = name[:idx]
	}
	return strings.TrimSpace(name)
}

// WeaponName returns the weapon field, or the base name when the weapon is missing
func (i CatalogItem) WeaponName() string {
	if w := strings.TrimSpace(i.Weapon); w != "" {
		return w
	}
	return i.BaseName()
}
