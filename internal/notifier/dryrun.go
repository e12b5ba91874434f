package notifier

import (
	"fmt"
	"io"

	"github.com/pfrederiksen/mlb-standings/internal/standings"
)

// DryRunNotifier prints what would be posted without posting it
type DryRunNotifier struct {
	out   io.Writer
	limit int
}

// NewDryRunNotifier creates a dry-run notifier writing to out
func NewDryRunNotifier(out io.Writer, limit int) *DryRunNotifier {
	return &DryRunNotifier{out: out, limit: limit}
}

// Notify prints the messages that would be posted
func (n *DryRunNotifier) Notify(table *standings.Table) error {
	messages := FormatMessages(table, n.limit)
	for i, msg := range messages {
		fmt.Fprintf(n.out, "--- Post %d/%d ---\n", i+1, len(messages))
		fmt.Fprintln(n.out, msg)
		fmt.Fprintf(n.out, "\n(Length: %d characters)\n\n", len(msg))
	}
	return nil
}
