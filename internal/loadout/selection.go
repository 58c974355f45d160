package loadout

// Assignment is the skin chosen for a slot/team pair. InventoryID is set only
// when the skin comes from the user's own inventory.
type Assignment struct {
	Item        CatalogItem `json:"item"`
	InventoryID *int64      `json:"inventory_id,omitempty"`

	// counted is set when the assignment holds a use in the ledger
	counted bool
}

// Counted reports whether the assignment holds a use in the ledger
func (a *Assignment) Counted() bool {
	return a != nil && a.counted
}

// SlotSelection holds the per-side assignments of one slot
type SlotSelection struct {
	CT *Assignment `json:"ct,omitempty"`
	T  *Assignment `json:"t,omitempty"`
}

// Selection maps slot keys to their assignments
type Selection map[string]*SlotSelection

// Get returns the assignment for a slot/team pair, or nil
func (s Selection) Get(slotKey string, team Team) *Assignment {
	ss, ok := s[slotKey]
	if !ok {
		return nil
	}
	switch team {
	case TeamCT:
		return ss.CT
	case TeamT:
		return ss.T
	}
	return nil
}

// Set replaces the assignment for a slot/team pair
func (s Selection) Set(slotKey string, team Team, a *Assignment) {
	ss, ok := s[slotKey]
	if !ok {
		ss = &SlotSelection{}
		s[slotKey] = ss
	}
	switch team {
	case TeamCT:
		ss.CT = a
	case TeamT:
		ss.T = a
	}
	if ss.CT == nil && ss.T == nil {
		delete(s, slotKey)
	}
}

// Clear removes and returns the assignment for a slot/team pair
func (s Selection) Clear(slotKey string, team Team) *Assignment {
	prev := s.Get(slotKey, team)
	s.Set(slotKey, team, nil)
	return prev
}

// Len returns the number of populated slot/team pairs
func (s Selection) Len() int {
	n := 0
	for _, ss := range s {
		if ss.CT != nil {
			n++
		}
		if ss.T != nil {
			n++
		}
	}
	return n
}

// Clone returns a deep copy
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for k, ss := range s {
		cp := &SlotSelection{}
		if ss.CT != nil {
			a := *ss.CT
			cp.CT = &a
		}
		if ss.T != nil {
			a := *ss.T
			cp.T = &a
		}
		out[k] = cp
	}
	return out
}

func inventoryAssignment(e InventoryEntry, counted bool) *Assignment {
	id := e.InventoryID
	return &Assignment{Item: e.Item, InventoryID: &id, counted: counted}
}
