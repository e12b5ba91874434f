package standings

import "sort"

// Table is the normalized result for one league and season
type Table struct {
	Season  string   `json:"season"`
	League  League   `json:"league"`
	Records []Record `json:"records"`
}

// Total is a team's aggregate record across all opponents
type Total struct {
	Team   string  `json:"team"`
	Wins   int     `json:"wins"`
	Losses int     `json:"losses"`
	Pct    float64 `json:"pct"`
	Best   Record  `json:"best"`
}

// NewTable builds a table by normalizing the grid
func NewTable(season string, grid *Grid) (*Table, error) {
	records, err := Normalize(grid)
	if err != nil {
		return nil, err
	}
	return &Table{
		Season:  season,
		League:  grid.League,
		Records: records,
	}, nil
}

// Totals sums each team's records. Teams are ordered by winning percentage,
// highest first, with ties broken by team name.
func (t *Table) Totals() []Total {
	index := make(map[string]int)
	totals := make([]Total, 0)

	for _, rec := range t.Records {
		i, ok := index[rec.Team]
		if !ok {
			i = len(totals)
			index[rec.Team] = i
			totals = append(totals, Total{Team: rec.Team, Best: rec})
		}

		tot := &totals[i]
		tot.Wins += rec.Wins
		tot.Losses += rec.Losses
		if betterMatchup(rec, tot.Best) {
			tot.Best = rec
		}
	}

	for i := range totals {
		totals[i].Pct = winPct(totals[i].Wins, totals[i].Losses)
	}

	sort.SliceStable(totals, func(i, j int) bool {
		if totals[i].Pct != totals[j].Pct {
			return totals[i].Pct > totals[j].Pct
		}
		return totals[i].Team < totals[j].Team
	})

	return totals
}

// betterMatchup reports whether a is a stronger head-to-head record than b.
// Margin decides first, then total wins.
func betterMatchup(a, b Record) bool {
	marginA := a.Wins - a.Losses
	marginB := b.Wins - b.Losses
	if marginA != marginB {
		return marginA > marginB
	}
	return a.Wins > b.Wins
}

func winPct(wins, losses int) float64 {
	games := wins + losses
	if games == 0 {
		return 0
	}
	return float64(wins) / float64(games)
}
