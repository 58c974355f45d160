package loadout

import (
	"github.com/abrezinsky/skinvault/internal/errors"
	"github.com/abrezinsky/skinvault/internal/models"
)

// State of the pending choice queue
type State string

const (
	StateIdle           State = "idle"
	StateAwaitingChoice State = "awaiting_choice"
)

// Cooker owns one user's loadout in progress: the selection, the usage ledger
// and the queue of pending choices. It is not safe for concurrent use.
type Cooker struct {
	catalog    *Catalog
	classifier *Classifier

	entries   map[int64]InventoryEntry
	selection Selection
	ledger    Ledger
	pending   []PendingChoice
}

// NewCooker creates an empty cooker
func NewCooker(catalog *Catalog, classifier *Classifier) *Cooker {
	return &Cooker{
		catalog:    catalog,
		classifier: classifier,
		entries:    make(map[int64]InventoryEntry),
		selection:  make(Selection),
		ledger:     make(Ledger),
	}
}

// Catalog returns the slot catalog the cooker assigns into
func (c *Cooker) Catalog() *Catalog {
	return c.catalog
}

// AutoEquip discards the current selection, ledger and queue and rebuilds
// them from the inventory in one pass.
func (c *Cooker) AutoEquip(items []models.InventoryItem) Outcome {
	return c.AutoEquipEntries(BuildEntries(items, c.catalog, c.classifier))
}

// AutoEquipEntries is AutoEquip for entries that are already classified
func (c *Cooker) AutoEquipEntries(entries []InventoryEntry) Outcome {
	res := AutoEquip(entries, c.catalog)

	c.entries = make(map[int64]InventoryEntry, len(entries))
	for _, e := range entries {
		c.entries[e.InventoryID] = e
	}
	c.selection = res.Selection
	c.ledger = res.Ledger
	c.pending = res.Pending
	return res.Outcome
}

// State reports whether a choice is waiting for the user
func (c *Cooker) State() State {
	if len(c.pending) > 0 {
		return StateAwaitingChoice
	}
	return StateIdle
}

// Head returns the choice currently presented to the user
func (c *Cooker) Head() (PendingChoice, bool) {
	if len(c.pending) == 0 {
		return PendingChoice{}, false
	}
	return c.pending[0], true
}

// Pending returns a copy of the queue
func (c *Cooker) Pending() []PendingChoice {
	return clonePending(c.pending)
}

// Selection returns a copy of the current selection
func (c *Cooker) Selection() Selection {
	return c.selection.Clone()
}

// Ledger returns a copy of the usage ledger
func (c *Cooker) Ledger() Ledger {
	return c.ledger.Clone()
}

// Entry returns the classified inventory entry from the last auto-equip pass
func (c *Cooker) Entry(inventoryID int64) (InventoryEntry, bool) {
	e, ok := c.entries[inventoryID]
	return e, ok
}

// Resolve answers the head choice with one of its options. It reports whether
// further choices remain.
func (c *Cooker) Resolve(inventoryID int64) (bool, error) {
	head, ok := c.Head()
	if !ok {
		return false, errors.Conflict("no pending choice to resolve")
	}
	chosen, ok := head.Option(inventoryID)
	if !ok {
		return len(c.pending) > 0, errors.InvalidInputf("inventory item %d is not an option for %s/%s", inventoryID, head.SlotKey, head.Team)
	}

	prev := c.selection.Get(head.SlotKey, head.Team)
	if prev != nil && prev.InventoryID != nil && *prev.InventoryID == inventoryID {
		// Already holds the chosen item
		c.pending = RecomputePending(c.ledger, c.pending[1:])
		return len(c.pending) > 0, nil
	}

	if prev.Counted() {
		c.ledger.Release(*prev.InventoryID)
	}
	if !c.ledger.Claim(chosen) {
		if prev.Counted() {
			c.ledger[*prev.InventoryID]++
		}
		return len(c.pending) > 0, errors.Conflictf("inventory item %d has no uses left", inventoryID)
	}
	c.selection.Set(head.SlotKey, head.Team, inventoryAssignment(chosen, true))

	c.pending = RecomputePending(c.ledger, c.pending[1:])
	return len(c.pending) > 0, nil
}

// Skip drops the head choice without assigning anything. It reports whether
// further choices remain.
func (c *Cooker) Skip() (bool, error) {
	if len(c.pending) == 0 {
		return false, errors.Conflict("no pending choice to skip")
	}
	c.pending = c.pending[1:]
	return len(c.pending) > 0, nil
}

// AssignManually puts item into a slot/team pair regardless of budgets. A
// previous inventory-backed assignment gives its use back to the ledger and
// any pending choice for the pair is dropped. An inventory-backed pick takes a
// use from the ledger only while the item still has budget.
func (c *Cooker) AssignManually(slotKey string, team Team, item CatalogItem, inventoryID *int64) error {
	if err := c.checkPair(slotKey, team); err != nil {
		return err
	}

	if prev := c.selection.Get(slotKey, team); prev.Counted() {
		c.ledger.Release(*prev.InventoryID)
	}

	a := &Assignment{Item: item}
	if inventoryID != nil {
		id := *inventoryID
		a.InventoryID = &id
		if e, ok := c.entries[id]; ok {
			a.counted = c.ledger.Claim(e)
		}
	}
	c.selection.Set(slotKey, team, a)

	c.pending = RecomputePending(c.ledger, removePending(c.pending, slotKey, team))
	return nil
}

// Unassign empties a slot/team pair, returning its use to the ledger
func (c *Cooker) Unassign(slotKey string, team Team) error {
	if err := c.checkPair(slotKey, team); err != nil {
		return err
	}
	if prev := c.selection.Clear(slotKey, team); prev.Counted() {
		c.ledger.Release(*prev.InventoryID)
	}
	return nil
}

// Entries flattens the selection for persistence
func (c *Cooker) Entries() []models.LoadoutEntry {
	return Flatten(c.selection, c.catalog)
}

func (c *Cooker) checkPair(slotKey string, team Team) error {
	slot, ok := c.catalog.Slot(slotKey)
	if !ok {
		return errors.NotFoundf("unknown slot %q", slotKey)
	}
	if team != TeamCT && team != TeamT {
		return errors.InvalidInputf("invalid team %q", team)
	}
	if !slot.Serves(team) {
		return errors.InvalidInputf("slot %q is not used by %s", slotKey, team)
	}
	return nil
}
