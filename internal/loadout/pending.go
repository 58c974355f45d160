package loadout

// PendingChoice is a slot/team pair with more than one eligible inventory item
type PendingChoice struct {
	SlotKey string           `json:"slot_key"`
	Team    Team             `json:"team"`
	Options []InventoryEntry `json:"options"`
}

// Option returns the option with the given inventory ID
func (p PendingChoice) Option(inventoryID int64) (InventoryEntry, bool) {
	for _, o := range p.Options {
		if o.InventoryID == inventoryID {
			return o, true
		}
	}
	return InventoryEntry{}, false
}

// RecomputePending filters every choice down to options that still have
// budget in ledger and drops choices left without options. Order is kept,
// options never grow and no choice is added.
func RecomputePending(ledger Ledger, remaining []PendingChoice) []PendingChoice {
	out := make([]PendingChoice, 0, len(remaining))
	for _, p := range remaining {
		var opts []InventoryEntry
		for _, o := range p.Options {
			if ledger.Available(o) {
				opts = append(opts, o)
			}
		}
		if len(opts) == 0 {
			continue
		}
		out = append(out, PendingChoice{SlotKey: p.SlotKey, Team: p.Team, Options: opts})
	}
	return out
}

// removePending drops every choice for the slot/team pair
func removePending(queue []PendingChoice, slotKey string, team Team) []PendingChoice {
	out := queue[:0:0]
	for _, p := range queue {
		if p.SlotKey == slotKey && p.Team == team {
			continue
		}
		out = append(out, p)
	}
	return out
}

func clonePending(queue []PendingChoice) []PendingChoice {
	out := make([]PendingChoice, len(queue))
	for i, p := range queue {
		out[i] = PendingChoice{
			SlotKey: p.SlotKey,
			Team:    p.Team,
			Options: append([]InventoryEntry(nil), p.Options...),
		}
	}
	return out
}
