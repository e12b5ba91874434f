package standings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformedCell is returned when a grid cell is not of the form "W-L"
	ErrMalformedCell = errors.New("malformed win-loss cell")

	// ErrShortRow is returned when a grid row has fewer cells than opponents
	ErrShortRow = errors.New("row has fewer cells than opponents")
)

// Record is a team's win/loss record against a single opponent
type Record struct {
	Team     string `json:"team"`
	Opponent string `json:"opponent"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
}

// Row is one team's line of the grid as extracted from HTML.
// Cells holds the raw "W-L" texts in column order.
type Row struct {
	Team  string
	Cells []string
}

// Grid is a league's head-to-head table
type Grid struct {
	League League
	Rows   []Row
}

// Teams returns the team names in row order
func (g *Grid) Teams() []string {
	teams := make([]string, 0, len(g.Rows))
	for _, row := range g.Rows {
		teams = append(teams, row.Team)
	}
	return teams
}

// Opponents returns the column labels: every team in row order followed by
// the interleague column.
func (g *Grid) Opponents() []string {
	return append(g.Teams(), g.League.InterleagueLabel())
}

// ParseCell parses a "W-L" cell such as "\n7-9" into wins and losses.
// Surrounding whitespace is ignored; each side must be plain digits.
func ParseCell(text string) (int, int, error) {
	text = strings.TrimSpace(text)
	winsText, lossesText, ok := strings.Cut(text, "-")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedCell, text)
	}

	wins, ok := parseCount(winsText)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedCell, text)
	}

	losses, ok := parseCount(lossesText)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedCell, text)
	}

	return wins, losses, nil
}

func parseCount(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Normalize flattens a grid into records, one per (team, opponent) pair.
// Rows and columns keep their grid order. A team's cell against itself is
// never parsed.
func Normalize(grid *Grid) ([]Record, error) {
	opponents := grid.Opponents()
	records := make([]Record, 0, len(grid.Rows)*len(opponents))

	for _, row := range grid.Rows {
		if len(row.Cells) < len(opponents) {
			return nil, fmt.Errorf("team %s: %w (%d < %d)", row.Team, ErrShortRow, len(row.Cells), len(opponents))
		}

		for i, opponent := range opponents {
			if opponent == row.Team {
				continue
			}

			wins, losses, err := ParseCell(row.Cells[i])
			if err != nil {
				return nil, fmt.Errorf("team %s vs %s: %w", row.Team, opponent, err)
			}

			records = append(records, Record{
				Team:     row.Team,
				Opponent: opponent,
				Wins:     wins,
				Losses:   losses,
			})
		}
	}

	return records, nil
}
