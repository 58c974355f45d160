package loadout

import "testing"

func TestRecomputePending_FiltersExhaustedOptions(t *testing.T) {
	a := entry(1, "AK-47 | A", TeamT)
	b := entry(2, "AK-47 | B", TeamT)
	c := entry(3, "AWP | C", TeamBoth)
	queue := []PendingChoice{
		{SlotKey: "ak-47", Team: TeamT, Options: []InventoryEntry{a, b}},
		{SlotKey: "awp", Team: TeamCT, Options: []InventoryEntry{c, a}},
	}
	ledger := Ledger{1: 1, 3: 1}

	got := RecomputePending(ledger, queue)

	if len(got) != 2 {
		t.Fatalf("expected 2 choices, got %d", len(got))
	}
	if len(got[0].Options) != 1 || got[0].Options[0].InventoryID != 2 {
		t.Errorf("expected only option 2 for ak-47, got %+v", got[0].Options)
	}
	if len(got[1].Options) != 1 || got[1].Options[0].InventoryID != 3 {
		t.Errorf("expected only option 3 for awp, got %+v", got[1].Options)
	}
}

func TestRecomputePending_DropsEmptyChoices(t *testing.T) {
	a := entry(1, "AK-47 | A", TeamT)
	queue := []PendingChoice{
		{SlotKey: "ak-47", Team: TeamT, Options: []InventoryEntry{a}},
		{SlotKey: "awp", Team: TeamCT, Options: []InventoryEntry{entry(2, "AWP | B", TeamBoth)}},
	}

	got := RecomputePending(Ledger{1: 1}, queue)

	if len(got) != 1 || got[0].SlotKey != "awp" {
		t.Errorf("expected only the awp choice to remain, got %+v", got)
	}
}

func TestRecomputePending_NeverGrows(t *testing.T) {
	a := entry(1, "AWP | A", TeamBoth)
	b := entry(2, "AWP | B", TeamBoth)
	c := entry(3, "AWP | C", TeamBoth)
	queue := []PendingChoice{
		{SlotKey: "awp", Team: TeamCT, Options: []InventoryEntry{a, b}},
		{SlotKey: "awp", Team: TeamT, Options: []InventoryEntry{b, c}},
	}

	ledgers := []Ledger{{}, {1: 2}, {2: 2}, {1: 1, 2: 1, 3: 2}, {1: 2, 2: 2, 3: 2}}
	for _, ledger := range ledgers {
		got := RecomputePending(ledger, queue)
		if len(got) > len(queue) {
			t.Fatalf("queue grew from %d to %d", len(queue), len(got))
		}
		for _, p := range got {
			var before int
			for _, q := range queue {
				if q.SlotKey == p.SlotKey && q.Team == p.Team {
					before = len(q.Options)
				}
			}
			if len(p.Options) > before {
				t.Errorf("options for %s/%s grew from %d to %d", p.SlotKey, p.Team, before, len(p.Options))
			}
			for _, o := range p.Options {
				if !ledger.Available(o) {
					t.Errorf("option %d kept without budget", o.InventoryID)
				}
			}
		}
	}
}

func TestRecomputePending_DoesNotMutateInput(t *testing.T) {
	a := entry(1, "AK-47 | A", TeamT)
	b := entry(2, "AK-47 | B", TeamT)
	queue := []PendingChoice{{SlotKey: "ak-47", Team: TeamT, Options: []InventoryEntry{a, b}}}

	RecomputePending(Ledger{1: 1}, queue)

	if len(queue[0].Options) != 2 || queue[0].Options[0].InventoryID != 1 {
		t.Errorf("expected input queue untouched, got %+v", queue[0].Options)
	}
}

func TestPendingChoice_Option(t *testing.T) {
	p := PendingChoice{Options: []InventoryEntry{entry(4, "AWP | A", TeamBoth)}}

	if _, ok := p.Option(4); !ok {
		t.Error("expected option 4")
	}
	if _, ok := p.Option(5); ok {
		t.Error("expected option 5 to be missing")
	}
}

func TestLedger_ClaimAndRelease(t *testing.T) {
	l := make(Ledger)
	e := entry(1, "AWP | A", TeamBoth)

	if !l.Claim(e) || !l.Claim(e) {
		t.Fatal("expected two claims to succeed")
	}
	if l.Claim(e) {
		t.Error("expected third claim to fail")
	}
	if l.Count(1) != 2 {
		t.Errorf("expected count 2, got %d", l.Count(1))
	}

	l.Release(1)
	l.Release(1)
	l.Release(1)
	if l.Count(1) != 0 {
		t.Errorf("expected count 0, got %d", l.Count(1))
	}
	if _, ok := l[1]; ok {
		t.Error("expected zero counts to be removed")
	}
}
