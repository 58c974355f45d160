// Package loadout implements the loadout cooker: slot catalog, team classification,
// greedy assignment of inventory items to slots, and the pending choice queue that
// resolves ambiguous assignments interactively.
package loadout

import (
	"strings"

	"github.com/abrezinsky/skinvault/internal/errors"
)

// Team is a side an item can be used on
type Team string

const (
	TeamCT   Team = "CT"
	TeamT    Team = "T"
	TeamBoth Team = "Both"
)

// ParseTeam converts a string to a Team (case-insensitive)
func ParseTeam(s string) (Team, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ct":
		return TeamCT, nil
	case "t":
		return TeamT, nil
	case "both":
		return TeamBoth, nil
	default:
		return "", errors.InvalidInputf("invalid team %q", s)
	}
}

// ParseSide parses a team that an assignment can be made for (CT or T only)
func ParseSide(s string) (Team, error) {
	team, err := ParseTeam(s)
	if err != nil {
		return "", err
	}
	if team == TeamBoth {
		return "", errors.InvalidInput("team must be CT or T")
	}
	return team, nil
}

// Serves reports whether an item classified as t can be used on side
func (t Team) Serves(side Team) bool {
	return t == side || t == TeamBoth
}

// MaxUsage returns the reuse budget of an item classified as t
func (t Team) MaxUsage() int {
	if t == TeamBoth {
		return 2
	}
	return 1
}

func (t Team) String() string {
	return string(t)
}
