package loadout

import "strings"

// TeamTable holds the classification rules: which side can buy each weapon
// and the call-signs that identify an agent's side.
type TeamTable struct {
	// Weapons maps a lowercased weapon name to its side
	Weapons map[string]Team
	// CTAgents and TAgents are lowercased substrings of agent names
	CTAgents []string
	TAgents  []string
	// AgentKeywords mark an item as an agent when found in its type or name
	AgentKeywords []string
}

var defaultWeapons = map[string]Team{
	// Pistols
	"glock-18":      TeamT,
	"tec-9":         TeamT,
	"usp-s":         TeamCT,
	"p2000":         TeamCT,
	"five-seven":    TeamCT,
	"p250":          TeamBoth,
	"cz75-auto":     TeamBoth,
	"desert eagle":  TeamBoth,
	"dual berettas": TeamBoth,
	"r8 revolver":   TeamBoth,
	"zeus x27":      TeamBoth,

	// SMGs
	"mac-10":   TeamT,
	"mp9":      TeamCT,
	"mp7":      TeamBoth,
	"mp5-sd":   TeamBoth,
	"ump-45":   TeamBoth,
	"p90":      TeamBoth,
	"pp-bizon": TeamBoth,

	// Heavy
	"sawed-off": TeamT,
	"mag-7":     TeamCT,
	"nova":      TeamBoth,
	"xm1014":    TeamBoth,
	"m249":      TeamBoth,
	"negev":     TeamBoth,

	// Rifles
	"ak-47":    TeamT,
	"galil ar": TeamT,
	"sg 553":   TeamT,
	"g3sg1":    TeamT,
	"m4a4":     TeamCT,
	"m4a1-s":   TeamCT,
	"famas":    TeamCT,
	"aug":      TeamCT,
	"scar-20":  TeamCT,
	"awp":      TeamBoth,
	"ssg 08":   TeamBoth,
}

var defaultCTAgents = []string{
	"swat",
	"fbi",
	"nswc seal",
	"seal frogman",
	"usaf tacp",
	"ksk",
	"sas",
	"gendarmerie nationale",
	"brazilian 1st battalion",
}

var defaultTAgents = []string{
	"phoenix",
	"elite crew",
	"sabre",
	"the professionals",
	"guerrilla warfare",
}

var defaultAgentKeywords = []string{"agent"}

// DefaultTeamTable returns a fresh copy of the built-in classification rules
func DefaultTeamTable() *TeamTable {
	weapons := make(map[string]Team, len(defaultWeapons))
	for k, v := range defaultWeapons {
		weapons[k] = v
	}
	return &TeamTable{
		Weapons:       weapons,
		CTAgents:      append([]string(nil), defaultCTAgents...),
		TAgents:       append([]string(nil), defaultTAgents...),
		AgentKeywords: append([]string(nil), defaultAgentKeywords...),
	}
}

// WeaponTeam looks up the side for a weapon name
func (t *TeamTable) WeaponTeam(weapon string) (Team, bool) {
	team, ok := t.Weapons[normalizeKey(weapon)]
	return team, ok
}

// AgentTeam matches an agent name against both call-sign lists.
// It reports false when neither or both lists match.
func (t *TeamTable) AgentTeam(name string) (Team, bool) {
	lower := strings.ToLower(name)
	ct := containsAny(lower, t.CTAgents)
	tt := containsAny(lower, t.TAgents)
	switch {
	case ct && !tt:
		return TeamCT, true
	case tt && !ct:
		return TeamT, true
	default:
		return "", false
	}
}

// IsAgent reports whether the item type or name carries an agent keyword
func (t *TeamTable) IsAgent(item CatalogItem) bool {
	return containsAny(strings.ToLower(item.Type), t.AgentKeywords) ||
		containsAny(strings.ToLower(item.Name), t.AgentKeywords)
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if p != "" && strings.Contains(s, p) {
			return true
		}
	}
	return false
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
