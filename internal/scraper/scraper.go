package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/mlb-standings/internal/standings"
	"golang.org/x/net/html"
)

const (
	GridBaseURL   = "http://espn.go.com/mlb/standings/grid/_/year/"
	DefaultSeason = "2013"
	UserAgent     = "mlb-standings/1.0 (github.com/pfrederiksen/mlb-standings)"
	Timeout       = 30 * time.Second
)

var (
	// ErrTableNotFound is returned when no table contains the league marker
	ErrTableNotFound = errors.New("league table not found")

	// ErrNoTeams is returned when the league table has no team rows
	ErrNoTeams = errors.New("no team rows in league table")
)

// GridURL returns the standings grid URL for a season
func GridURL(base, season string) string {
	return base + season
}

// Scraper handles fetching and parsing the standings grid
type Scraper struct {
	client *http.Client
	url    string
}

// Option configures a Scraper
type Option func(*Scraper)

// WithURL overrides the page to fetch
func WithURL(url string) Option {
	return func(s *Scraper) {
		s.url = url
	}
}

// WithHTTPClient overrides the HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(s *Scraper) {
		s.client = client
	}
}

// New creates a new Scraper for the default season's grid
func New(opts ...Option) *Scraper {
	s := &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		url: GridURL(GridBaseURL, DefaultSeason),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// URL returns the page the scraper fetches
func (s *Scraper) URL() string {
	return s.url
}

// FetchGrid fetches the standings page and extracts the league's grid
func (s *Scraper) FetchGrid(ctx context.Context, league standings.League) (*standings.Grid, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return ParseGrid(resp.Body, league)
}

// ParseGrid extracts a league's grid from HTML.
//
// The grid is the nearest table enclosing the first text that mentions the league
// (e.g. "National"). Team rows are the table's <tr> elements whose class contains
// "team"; the team name is the row's first <b> and the cells are its
// <td align="right"> elements.
func ParseGrid(r io.Reader, league standings.League) (*standings.Grid, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	table := findLeagueTable(doc, league.Marker())
	if table == nil {
		return nil, fmt.Errorf("%w: %q", ErrTableNotFound, league.Marker())
	}

	grid := &standings.Grid{League: league}

	table.Find(`tr[class*="team"]`).Each(func(i int, row *goquery.Selection) {
		team := strings.TrimSpace(row.Find("b").First().Text())
		if team == "" {
			return
		}

		cells := make([]string, 0)
		row.Find(`td[align="right"]`).Each(func(j int, td *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(td.Text()))
		})

		grid.Rows = append(grid.Rows, standings.Row{Team: team, Cells: cells})
	})

	if len(grid.Rows) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoTeams, league.Marker())
	}

	return grid, nil
}

// findLeagueTable returns the table enclosing the first text node that contains
// marker, skipping matches outside any table (navigation, headings).
func findLeagueTable(doc *goquery.Document, marker string) *goquery.Selection {
	var found *goquery.Selection

	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.TextNode && n.Parent != nil && strings.Contains(n.Data, marker) {
			table := doc.FindNodes(n.Parent).Closest("table")
			if table.Length() > 0 {
				found = table.First()
				return true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}

	for _, root := range doc.Nodes {
		if walk(root) {
			break
		}
	}

	return found
}
