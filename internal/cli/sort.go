package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pfrederiksen/mlb-standings/internal/standings"
)

// SortOrder represents the available record orderings
type SortOrder string

const (
	SortByGrid     SortOrder = "grid"
	SortByTeam     SortOrder = "team"
	SortByOpponent SortOrder = "opponent"
	SortByMargin   SortOrder = "margin"
)

// ParseSortOrder validates a --sort value
func ParseSortOrder(s string) (SortOrder, error) {
	order := SortOrder(strings.ToLower(strings.TrimSpace(s)))
	switch order {
	case SortByGrid, SortByTeam, SortByOpponent, SortByMargin:
		return order, nil
	default:
		return "", fmt.Errorf("invalid sort: %s (must be 'grid', 'team', 'opponent' or 'margin')", s)
	}
}

// sortRecords sorts records in place. SortByGrid keeps the order they were read in.
func sortRecords(records []standings.Record, order SortOrder) {
	switch order {
	case SortByTeam:
		sort.SliceStable(records, func(i, j int) bool {
			if records[i].Team != records[j].Team {
				return records[i].Team < records[j].Team
			}
			return records[i].Opponent < records[j].Opponent
		})
	case SortByOpponent:
		sort.SliceStable(records, func(i, j int) bool {
			if records[i].Opponent != records[j].Opponent {
				return records[i].Opponent < records[j].Opponent
			}
			return records[i].Team < records[j].Team
		})
	case SortByMargin:
		sort.SliceStable(records, func(i, j int) bool {
			return compareByMargin(records[i], records[j])
		})
	}
}

// compareByMargin orders by wins minus losses, largest first, then by team and opponent
func compareByMargin(a, b standings.Record) bool {
	marginA := a.Wins - a.Losses
	marginB := b.Wins - b.Losses
	if marginA != marginB {
		return marginA > marginB
	}
	if a.Team != b.Team {
		return a.Team < b.Team
	}
	return a.Opponent < b.Opponent
}
