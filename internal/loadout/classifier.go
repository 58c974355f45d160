package loadout

// Classifier maps items to the team(s) they can be used on
type Classifier struct {
	table *TeamTable
}

// NewClassifier creates a classifier over the given rules.
// A nil table uses DefaultTeamTable.
func NewClassifier(table *TeamTable) *Classifier {
	if table == nil {
		table = DefaultTeamTable()
	}
	return &Classifier{table: table}
}

// Table returns the rules used by the classifier
func (c *Classifier) Table() *TeamTable {
	return c.table
}

// Classify returns the team for an item outside of any slot context.
// Unknown items are assumed usable by both sides.
func (c *Classifier) Classify(item CatalogItem) Team {
	if team, ok := c.table.WeaponTeam(item.WeaponName()); ok {
		return team
	}
	if c.table.IsAgent(item) {
		if team, ok := c.table.AgentTeam(item.Name); ok {
			return team
		}
	}
	return TeamBoth
}

// ClassifyForSlot classifies an item as owned by slot. For the agent slot
// an ambiguous name yields false: an agent is never usable by both sides.
func (c *Classifier) ClassifyForSlot(slot *Slot, item CatalogItem) (Team, bool) {
	if slot != nil && slot.Agent {
		return c.table.AgentTeam(item.Name)
	}
	return c.Classify(item), true
}
