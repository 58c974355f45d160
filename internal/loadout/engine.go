package loadout

// Outcome classifies the result of an auto-equip pass
type Outcome int

const (
	// OutcomeNoMatches means nothing in the inventory fits any slot
	OutcomeNoMatches Outcome = iota
	// OutcomeResolved means assignments were made and nothing is pending
	OutcomeResolved
	// OutcomePartial means at least one choice awaits the user
	OutcomePartial
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoMatches:
		return "no_matches"
	case OutcomeResolved:
		return "resolved"
	case OutcomePartial:
		return "partial"
	default:
		return "unknown"
	}
}

// Result is the output of AutoEquip
type Result struct {
	Selection Selection
	Ledger    Ledger
	Pending   []PendingChoice
	Outcome   Outcome
}

// AutoEquip greedily assigns entries to the catalog's slots. A slot/team pair
// with exactly one usable entry is assigned immediately; a pair with several
// becomes a PendingChoice. Budgets are tracked per inventory item across the
// whole pass.
func AutoEquip(entries []InventoryEntry, catalog *Catalog) Result {
	res := Result{
		Selection: make(Selection),
		Ledger:    make(Ledger),
	}

	for _, slot := range catalog.Slots() {
		var candidates []InventoryEntry
		for _, e := range entries {
			if slot.Contains(e.Item) {
				candidates = append(candidates, e)
			}
		}
		if len(candidates) == 0 {
			continue
		}

		for _, team := range slot.Teams() {
			var usable []InventoryEntry
			for _, e := range candidates {
				if e.Team.Serves(team) && res.Ledger.Available(e) {
					usable = append(usable, e)
				}
			}

			switch len(usable) {
			case 0:
				continue
			case 1:
				res.Ledger.Claim(usable[0])
				res.Selection.Set(slot.Key, team, inventoryAssignment(usable[0], true))
			default:
				res.Pending = append(res.Pending, PendingChoice{
					SlotKey: slot.Key,
					Team:    team,
					Options: usable,
				})
			}
		}
	}

	switch {
	case len(res.Pending) > 0:
		res.Outcome = OutcomePartial
	case res.Selection.Len() > 0:
		res.Outcome = OutcomeResolved
	default:
		res.Outcome = OutcomeNoMatches
	}
	return res
}
