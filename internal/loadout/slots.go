package loadout

import (
	"fmt"
	"strings"
)

// Slot is an equipment position in a loadout
type Slot struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Section string `json:"section"`
	// TeamHint restricts the sides the slot is filled for. Empty means both.
	TeamHint Team `json:"team_hint,omitempty"`
	// Grouped slots present their items by base name (knives, gloves)
	Grouped bool `json:"grouped,omitempty"`
	// Agent slots classify items by call-sign instead of weapon
	Agent bool `json:"agent,omitempty"`

	match func(CatalogItem) bool
}

// Contains reports whether item belongs in the slot
func (s *Slot) Contains(item CatalogItem) bool {
	return s.match != nil && s.match(item)
}

// Teams returns the sides the slot is filled for, CT first
func (s *Slot) Teams() []Team {
	switch s.TeamHint {
	case TeamCT:
		return []Team{TeamCT}
	case TeamT:
		return []Team{TeamT}
	default:
		return []Team{TeamCT, TeamT}
	}
}

// Serves reports whether the slot is filled for side
func (s *Slot) Serves(side Team) bool {
	for _, t := range s.Teams() {
		if t == side {
			return true
		}
	}
	return false
}

// Section is a titled group of slots
type Section struct {
	Title string  `json:"title"`
	Slots []*Slot `json:"slots"`
}

// Catalog is the ordered, immutable list of slots
type Catalog struct {
	sections []Section
	slots    []*Slot
	byKey    map[string]*Slot
}

// NewCatalog builds a catalog from sections, preserving order.
// Slot keys must be unique and every slot needs a membership predicate.
func NewCatalog(sections ...Section) (*Catalog, error) {
	c := &Catalog{byKey: make(map[string]*Slot)}
	for _, sec := range sections {
		for _, slot := range sec.Slots {
			if slot.Key == "" {
				return nil, fmt.Errorf("slot in section %q has no key", sec.Title)
			}
			if slot.match == nil {
				return nil, fmt.Errorf("slot %q has no membership rule", slot.Key)
			}
			if _, dup := c.byKey[slot.Key]; dup {
				return nil, fmt.Errorf("duplicate slot key %q", slot.Key)
			}
			slot.Section = sec.Title
			c.byKey[slot.Key] = slot
			c.slots = append(c.slots, slot)
		}
		c.sections = append(c.sections, sec)
	}
	return c, nil
}

// Slots returns all slots in catalog order
func (c *Catalog) Slots() []*Slot {
	return c.slots
}

// Sections returns the catalog sections in order
func (c *Catalog) Sections() []Section {
	return c.sections
}

// Slot looks up a slot by key
func (c *Catalog) Slot(key string) (*Slot, bool) {
	s, ok := c.byKey[key]
	return s, ok
}

// SlotsFor returns every slot the item belongs in, in catalog order
func (c *Catalog) SlotsFor(item CatalogItem) []*Slot {
	var out []*Slot
	for _, s := range c.slots {
		if s.Contains(item) {
			out = append(out, s)
		}
	}
	return out
}

// Matches reports whether the item belongs in at least one slot
func (c *Catalog) Matches(item CatalogItem) bool {
	for _, s := range c.slots {
		if s.Contains(item) {
			return true
		}
	}
	return false
}

// WithMatcher attaches a membership predicate to a slot
func (s *Slot) WithMatcher(match func(CatalogItem) bool) *Slot {
	s.match = match
	return s
}

// WeaponSlot creates a slot holding skins of a single weapon
func WeaponSlot(key, label, weapon string, hint Team) *Slot {
	s := &Slot{Key: key, Label: label, TeamHint: hint}
	return s.WithMatcher(func(item CatalogItem) bool {
		if isKnife(item) || isGloves(item) {
			return false
		}
		return strings.EqualFold(item.WeaponName(), weapon)
	})
}

var knifeNames = []string{
	"knife", "bayonet", "karambit", "shadow daggers", "daggers",
}

var gloveNames = []string{
	"gloves", "hand wraps",
}

func isKnife(item CatalogItem) bool {
	if strings.EqualFold(strings.TrimSpace(item.Type), "knife") {
		return true
	}
	return containsAny(strings.ToLower(item.WeaponName()), knifeNames)
}

func isGloves(item CatalogItem) bool {
	if strings.EqualFold(strings.TrimSpace(item.Type), "gloves") {
		return true
	}
	return containsAny(strings.ToLower(item.WeaponName()), gloveNames)
}

func isAgent(item CatalogItem) bool {
	return strings.EqualFold(strings.TrimSpace(item.Type), "agent")
}

// DefaultCatalog returns the built-in slot layout
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(
		Section{Title: "Knife & Gloves", Slots: []*Slot{
			(&Slot{Key: "knife", Label: "Knife", Grouped: true}).WithMatcher(isKnife),
			(&Slot{Key: "gloves", Label: "Gloves", Grouped: true}).WithMatcher(isGloves),
		}},
		Section{Title: "Agents", Slots: []*Slot{
			(&Slot{Key: "agent", Label: "Agent", Agent: true}).WithMatcher(isAgent),
		}},
		Section{Title: "Pistols", Slots: []*Slot{
			WeaponSlot("glock-18", "Glock-18", "Glock-18", TeamT),
			WeaponSlot("usp-s", "USP-S", "USP-S", TeamCT),
			WeaponSlot("p2000", "P2000", "P2000", TeamCT),
			WeaponSlot("p250", "P250", "P250", TeamBoth),
			WeaponSlot("tec-9", "Tec-9", "Tec-9", TeamT),
			WeaponSlot("five-seven", "Five-SeveN", "Five-SeveN", TeamCT),
			WeaponSlot("cz75-auto", "CZ75-Auto", "CZ75-Auto", TeamBoth),
			WeaponSlot("dual-berettas", "Dual Berettas", "Dual Berettas", TeamBoth),
			WeaponSlot("desert-eagle", "Desert Eagle", "Desert Eagle", TeamBoth),
			WeaponSlot("r8-revolver", "R8 Revolver", "R8 Revolver", TeamBoth),
		}},
		Section{Title: "Mid-Tier", Slots: []*Slot{
			WeaponSlot("mac-10", "MAC-10", "MAC-10", TeamT),
			WeaponSlot("mp9", "MP9", "MP9", TeamCT),
			WeaponSlot("mp7", "MP7", "MP7", TeamBoth),
			WeaponSlot("mp5-sd", "MP5-SD", "MP5-SD", TeamBoth),
			WeaponSlot("ump-45", "UMP-45", "UMP-45", TeamBoth),
			WeaponSlot("p90", "P90", "P90", TeamBoth),
			WeaponSlot("pp-bizon", "PP-Bizon", "PP-Bizon", TeamBoth),
			WeaponSlot("nova", "Nova", "Nova", TeamBoth),
			WeaponSlot("xm1014", "XM1014", "XM1014", TeamBoth),
			WeaponSlot("sawed-off", "Sawed-Off", "Sawed-Off", TeamT),
			WeaponSlot("mag-7", "MAG-7", "MAG-7", TeamCT),
			WeaponSlot("m249", "M249", "M249", TeamBoth),
			WeaponSlot("negev", "Negev", "Negev", TeamBoth),
		}},
		Section{Title: "Rifles", Slots: []*Slot{
			WeaponSlot("galil-ar", "Galil AR", "Galil AR", TeamT),
			WeaponSlot("famas", "FAMAS", "FAMAS", TeamCT),
			WeaponSlot("ak-47", "AK-47", "AK-47", TeamT),
			WeaponSlot("m4a4", "M4A4", "M4A4", TeamCT),
			WeaponSlot("m4a1-s", "M4A1-S", "M4A1-S", TeamCT),
			WeaponSlot("sg-553", "SG 553", "SG 553", TeamT),
			WeaponSlot("aug", "AUG", "AUG", TeamCT),
			WeaponSlot("ssg-08", "SSG 08", "SSG 08", TeamBoth),
			WeaponSlot("awp", "AWP", "AWP", TeamBoth),
			WeaponSlot("g3sg1", "G3SG1", "G3SG1", TeamT),
			WeaponSlot("scar-20", "SCAR-20", "SCAR-20", TeamCT),
		}},
		Section{Title: "Equipment", Slots: []*Slot{
			WeaponSlot("zeus-x27", "Zeus x27", "Zeus x27", TeamBoth),
		}},
	)
	if err != nil {
		panic(err)
	}
	return c
}
