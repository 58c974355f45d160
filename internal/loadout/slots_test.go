package loadout

import "testing"

func TestDefaultCatalog_UniqueKeysAndSections(t *testing.T) {
	c := DefaultCatalog()

	seen := make(map[string]bool)
	for _, s := range c.Slots() {
		if seen[s.Key] {
			t.Errorf("duplicate slot key %q", s.Key)
		}
		seen[s.Key] = true
		if s.Section == "" {
			t.Errorf("slot %q has no section", s.Key)
		}
	}

	total := 0
	for _, sec := range c.Sections() {
		total += len(sec.Slots)
	}
	if total != len(c.Slots()) {
		t.Errorf("sections hold %d slots, catalog has %d", total, len(c.Slots()))
	}
}

func TestDefaultCatalog_Membership(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		item CatalogItem
		want string
	}{
		{CatalogItem{Name: "AK-47 | Redline"}, "ak-47"},
		{CatalogItem{Name: "Anything", Weapon: "M4A4"}, "m4a4"},
		{CatalogItem{Name: "★ Karambit | Doppler", Type: "Knife"}, "knife"},
		{CatalogItem{Name: "★ Butterfly Knife | Fade"}, "knife"},
		{CatalogItem{Name: "★ Driver Gloves | King Snake", Type: "Gloves"}, "gloves"},
		{CatalogItem{Name: "★ Hand Wraps | Slaughter"}, "gloves"},
		{CatalogItem{Name: "Dragomir | Sabre", Type: "Agent"}, "agent"},
		{CatalogItem{Name: "StatTrak™ Five-SeveN | Hyper Beast"}, "five-seven"},
		{CatalogItem{Name: "Zeus x27 | Olympus"}, "zeus-x27"},
	}

	for _, tt := range tests {
		t.Run(tt.item.Name, func(t *testing.T) {
			slots := c.SlotsFor(tt.item)
			if len(slots) != 1 {
				t.Fatalf("expected exactly one slot, got %d", len(slots))
			}
			if slots[0].Key != tt.want {
				t.Errorf("expected slot %q, got %q", tt.want, slots[0].Key)
			}
		})
	}
}

func TestDefaultCatalog_NoMatch(t *testing.T) {
	c := DefaultCatalog()

	if c.Matches(CatalogItem{Name: "Sticker | Crown (Foil)", Type: "Sticker"}) {
		t.Error("expected sticker not to match any slot")
	}
}

func TestSlot_Teams(t *testing.T) {
	tests := []struct {
		hint Team
		want []Team
	}{
		{TeamCT, []Team{TeamCT}},
		{TeamT, []Team{TeamT}},
		{TeamBoth, []Team{TeamCT, TeamT}},
		{"", []Team{TeamCT, TeamT}},
	}

	for _, tt := range tests {
		s := &Slot{TeamHint: tt.hint}
		got := s.Teams()
		if len(got) != len(tt.want) {
			t.Fatalf("hint %q: expected %v, got %v", tt.hint, tt.want, got)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("hint %q: expected %v, got %v", tt.hint, tt.want, got)
			}
		}
	}
}

func TestNewCatalog_RejectsDuplicateKeys(t *testing.T) {
	_, err := NewCatalog(Section{Title: "A", Slots: []*Slot{
		WeaponSlot("ak-47", "AK-47", "AK-47", TeamT),
		WeaponSlot("ak-47", "AK-47 again", "AK-47", TeamT),
	}})
	if err == nil {
		t.Error("expected duplicate key error")
	}
}

func TestNewCatalog_RejectsMissingMatcher(t *testing.T) {
	_, err := NewCatalog(Section{Title: "A", Slots: []*Slot{{Key: "bare"}}})
	if err == nil {
		t.Error("expected error for slot without membership rule")
	}
}

func TestCatalog_SlotLookup(t *testing.T) {
	c := DefaultCatalog()

	s, ok := c.Slot("awp")
	if !ok {
		t.Fatal("expected awp slot")
	}
	if s.Section != "Rifles" {
		t.Errorf("expected section Rifles, got %q", s.Section)
	}
	if _, ok := c.Slot("nope"); ok {
		t.Error("expected unknown slot lookup to fail")
	}
}
