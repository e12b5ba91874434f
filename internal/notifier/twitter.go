package notifier

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"

	"github.com/pfrederiksen/mlb-standings/internal/standings"
)

// statusUpdater is the subset of twitter.StatusService used to post
type statusUpdater interface {
	Update(status string, params *twitter.StatusUpdateParams) (*twitter.Tweet, *http.Response, error)
}

// TwitterNotifier posts standings summaries to Twitter
type TwitterNotifier struct {
	statuses statusUpdater
	limit    int
	delay    time.Duration
}

// NewTwitterNotifier creates a Twitter notifier using environment variables
// Required environment variables:
// - TWITTER_API_KEY
// - TWITTER_API_SECRET
// - TWITTER_ACCESS_TOKEN
// - TWITTER_ACCESS_SECRET
func NewTwitterNotifier(limit int) (*TwitterNotifier, error) {
	apiKey := os.Getenv("TWITTER_API_KEY")
	apiSecret := os.Getenv("TWITTER_API_SECRET")
	accessToken := os.Getenv("TWITTER_ACCESS_TOKEN")
	accessSecret := os.Getenv("TWITTER_ACCESS_SECRET")

	if apiKey == "" || apiSecret == "" || accessToken == "" || accessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials in environment variables")
	}

	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	httpClient := config.Client(oauth1.NoContext, token)
	client := twitter.NewClient(httpClient)

	return &TwitterNotifier{
		statuses: client.Statuses,
		limit:    limit,
		delay:    2 * time.Second,
	}, nil
}

// Notify posts one status per team, waiting between posts
func (n *TwitterNotifier) Notify(table *standings.Table) error {
	messages := FormatMessages(table, n.limit)
	for i, msg := range messages {
		if _, _, err := n.statuses.Update(msg, nil); err != nil {
			return fmt.Errorf("posting status %d/%d: %w", i+1, len(messages), err)
		}

		if i < len(messages)-1 {
			time.Sleep(n.delay)
		}
	}

	return nil
}
