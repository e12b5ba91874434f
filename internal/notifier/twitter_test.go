package notifier

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck

	"github.com/pfrederiksen/mlb-standings/internal/standings"
)

var sampleTable = &standings.Table{
	Season: "2013",
	League: standings.National,
	Records: []standings.Record{
		{Team: "ATL", Opponent: "MIA", Wins: 13, Losses: 6},
		{Team: "ATL", Opponent: "AL", Wins: 11, Losses: 9},
		{Team: "MIA", Opponent: "ATL", Wins: 6, Losses: 13},
		{Team: "MIA", Opponent: "AL", Wins: 5, Losses: 15},
	},
}

type fakeStatuses struct {
	posted []string
	failAt int
}

func (f *fakeStatuses) Update(status string, params *twitter.StatusUpdateParams) (*twitter.Tweet, *http.Response, error) {
	if f.failAt > 0 && len(f.posted)+1 == f.failAt {
		return nil, nil, errors.New("rate limited")
	}
	f.posted = append(f.posted, status)
	return &twitter.Tweet{Text: status}, nil, nil
}

func TestFormatMessages(t *testing.T) {
	messages := FormatMessages(sampleTable, -1)
	if len(messages) != 2 {
		t.Fatalf("FormatMessages() returned %d messages, want 2", len(messages))
	}

	contains := []string{"2013 NL head-to-head", "ATL 24-15", "(.615)", "Best vs MIA 13-6", "#MLB"}
	for _, want := range contains {
		if !strings.Contains(messages[0], want) {
			t.Errorf("message %q should contain %q", messages[0], want)
		}
	}

	if !strings.Contains(messages[1], "MIA 11-28") {
		t.Errorf("second message %q should be MIA's", messages[1])
	}

	for _, msg := range messages {
		if len(msg) > MaxMessageLength {
			t.Errorf("message length %d exceeds %d", len(msg), MaxMessageLength)
		}
	}
}

func TestFormatMessages_Limit(t *testing.T) {
	messages := FormatMessages(sampleTable, 1)
	if len(messages) != 1 {
		t.Errorf("FormatMessages() with limit 1 returned %d messages", len(messages))
	}
}

func TestFormatMessages_ZeroLimit(t *testing.T) {
	if messages := FormatMessages(sampleTable, 0); len(messages) != 0 {
		t.Errorf("FormatMessages() with limit 0 returned %d messages, want 0", len(messages))
	}
}

func TestTwitterNotifier_ZeroLimitPostsNothing(t *testing.T) {
	fake := &fakeStatuses{}
	n := &TwitterNotifier{statuses: fake, limit: 0}

	if err := n.Notify(sampleTable); err != nil {
		t.Fatalf("Notify() error: %v", err)
	}
	if len(fake.posted) != 0 {
		t.Errorf("posted %d statuses with limit 0, want 0", len(fake.posted))
	}
}

func TestFormatMessage_Truncates(t *testing.T) {
	table := &standings.Table{Season: strings.Repeat("9", 300), League: standings.American}
	msg := formatMessage(table, standings.Total{Team: "BOS"})

	if len(msg) != MaxMessageLength {
		t.Errorf("message length = %d, want %d", len(msg), MaxMessageLength)
	}
	if !strings.HasSuffix(msg, "...") {
		t.Errorf("truncated message should end with ellipsis")
	}
}

func TestFormatPct(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{0.6154, ".615"},
		{1, "1.000"},
		{0, ".000"},
		{0.5, ".500"},
	}

	for _, tt := range tests {
		if got := FormatPct(tt.pct); got != tt.want {
			t.Errorf("FormatPct(%v) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestTwitterNotifier_Notify(t *testing.T) {
	fake := &fakeStatuses{}
	n := &TwitterNotifier{statuses: fake, limit: -1}

	if err := n.Notify(sampleTable); err != nil {
		t.Fatalf("Notify() error: %v", err)
	}
	if len(fake.posted) != 2 {
		t.Errorf("posted %d statuses, want 2", len(fake.posted))
	}
}

func TestTwitterNotifier_NotifyError(t *testing.T) {
	fake := &fakeStatuses{failAt: 2}
	n := &TwitterNotifier{statuses: fake, limit: -1}

	err := n.Notify(sampleTable)
	if err == nil {
		t.Fatal("Notify() expected error, got nil")
	}
	if !strings.Contains(err.Error(), "2/2") {
		t.Errorf("error %q should name the failing post", err)
	}
	if len(fake.posted) != 1 {
		t.Errorf("posted %d statuses before failure, want 1", len(fake.posted))
	}
}

func TestNewTwitterNotifier_MissingCredentials(t *testing.T) {
	t.Setenv("TWITTER_API_KEY", "")
	t.Setenv("TWITTER_API_SECRET", "")
	t.Setenv("TWITTER_ACCESS_TOKEN", "")
	t.Setenv("TWITTER_ACCESS_SECRET", "")

	if _, err := NewTwitterNotifier(10); err == nil {
		t.Error("NewTwitterNotifier() expected error without credentials")
	}
}

func TestNewTwitterNotifier_WithCredentials(t *testing.T) {
	t.Setenv("TWITTER_API_KEY", "key")
	t.Setenv("TWITTER_API_SECRET", "secret")
	t.Setenv("TWITTER_ACCESS_TOKEN", "token")
	t.Setenv("TWITTER_ACCESS_SECRET", "token-secret")

	n, err := NewTwitterNotifier(5)
	if err != nil {
		t.Fatalf("NewTwitterNotifier() error: %v", err)
	}
	if n.limit != 5 {
		t.Errorf("limit = %d, want 5", n.limit)
	}
}

func TestDryRunNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := &DryRunNotifier{out: &buf, limit: -1}

	if err := n.Notify(sampleTable); err != nil {
		t.Fatalf("Notify() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "--- Post 1/2 ---") || !strings.Contains(out, "--- Post 2/2 ---") {
		t.Errorf("dry run output missing post headers:\n%s", out)
	}
	if !strings.Contains(out, "ATL 24-15") {
		t.Errorf("dry run output missing ATL summary:\n%s", out)
	}
}
