package loadout

// Ledger counts how many times each inventory item is currently in use.
// Keys are inventory IDs; zero counts are not stored.
type Ledger map[int64]int

// Count returns the usage count for an inventory item
func (l Ledger) Count(inventoryID int64) int {
	return l[inventoryID]
}

// Available reports whether the entry still has reuse budget
func (l Ledger) Available(e InventoryEntry) bool {
	return l[e.InventoryID] < e.MaxUsage
}

// Claim consumes one use of the entry. It reports false, leaving the
// ledger unchanged, when the budget is exhausted.
func (l Ledger) Claim(e InventoryEntry) bool {
	if !l.Available(e) {
		return false
	}
	l[e.InventoryID]++
	return true
}

// Release returns one use of an inventory item
func (l Ledger) Release(inventoryID int64) {
	n := l[inventoryID]
	if n <= 1 {
		delete(l, inventoryID)
		return
	}
	l[inventoryID] = n - 1
}

// Clone returns an independent copy
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}
