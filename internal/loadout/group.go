package loadout

import (
	"sort"
	"strings"
)

// ItemGroup is a family of items sharing a base name, e.g. every Karambit finish
type ItemGroup struct {
	BaseName string        `json:"base_name"`
	Items    []CatalogItem `json:"items"`
}

// GroupItems groups items by base name. Groups and their items are sorted by name.
func GroupItems(items []CatalogItem) []ItemGroup {
	byBase := make(map[string]*ItemGroup)
	var order []string
	for _, item := range items {
		base := item.BaseName()
		g, ok := byBase[base]
		if !ok {
			g = &ItemGroup{BaseName: base}
			byBase[base] = g
			order = append(order, base)
		}
		g.Items = append(g.Items, item)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return strings.ToLower(order[i]) < strings.ToLower(order[j])
	})
	groups := make([]ItemGroup, 0, len(order))
	for _, base := range order {
		g := byBase[base]
		sort.SliceStable(g.Items, func(i, j int) bool {
			return g.Items[i].Name < g.Items[j].Name
		})
		groups = append(groups, *g)
	}
	return groups
}

// ItemsForSlot returns the items that belong in slot, keeping input order
func ItemsForSlot(slot *Slot, items []CatalogItem) []CatalogItem {
	var out []CatalogItem
	for _, item := range items {
		if slot.Contains(item) {
			out = append(out, item)
		}
	}
	return out
}
