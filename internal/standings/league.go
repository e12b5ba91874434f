package standings

import (
	"fmt"
	"strings"
)

// League identifies one of the two MLB leagues
type League string

const (
	National League = "National"
	American League = "American"
)

// ParseLeague converts user input into a League
func ParseLeague(s string) (League, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "national", "nl":
		return National, nil
	case "american", "al":
		return American, nil
	default:
		return "", fmt.Errorf("unknown league: %q (must be 'national' or 'american')", s)
	}
}

// Marker returns the text that identifies the league's grid on the page
func (l League) Marker() string {
	return string(l)
}

// Code returns the two-letter league abbreviation
func (l League) Code() string {
	if l == American {
		return "AL"
	}
	return "NL"
}

// InterleagueLabel is the opponent name used for the grid's last column,
// which holds each team's record against the other league.
func (l League) InterleagueLabel() string {
	if l == American {
		return "NL"
	}
	return "AL"
}
