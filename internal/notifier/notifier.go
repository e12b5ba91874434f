package notifier

import (
	"fmt"
	"strings"

	"github.com/pfrederiksen/mlb-standings/internal/standings"
)

// MaxMessageLength is the Twitter status limit
const MaxMessageLength = 280

// Notifier defines the interface for publishing a standings table
type Notifier interface {
	// Notify publishes one message per team
	Notify(table *standings.Table) error
}

// FormatMessages builds one message per team in standings order.
// A non-negative limit caps the number of messages; zero yields none.
// A negative limit means no cap.
func FormatMessages(table *standings.Table, limit int) []string {
	totals := table.Totals()
	if limit >= 0 && len(totals) > limit {
		totals = totals[:limit]
	}

	messages := make([]string, 0, len(totals))
	for _, tot := range totals {
		messages = append(messages, formatMessage(table, tot))
	}
	return messages
}

func formatMessage(table *standings.Table, tot standings.Total) string {
	msg := fmt.Sprintf("%s %s head-to-head: %s %d-%d (%s)",
		table.Season, table.League.Code(), tot.Team, tot.Wins, tot.Losses, FormatPct(tot.Pct))

	if tot.Best.Opponent != "" {
		msg += fmt.Sprintf(". Best vs %s %d-%d", tot.Best.Opponent, tot.Best.Wins, tot.Best.Losses)
	}

	msg += "\n\n#MLB"

	if len(msg) > MaxMessageLength {
		msg = msg[:MaxMessageLength-3] + "..."
	}

	return msg
}

// FormatPct renders a winning percentage the way box scores do: .615, 1.000
func FormatPct(pct float64) string {
	return strings.TrimPrefix(fmt.Sprintf("%.3f", pct), "0")
}
