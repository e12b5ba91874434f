package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pfrederiksen/mlb-standings/internal/config"
	"github.com/pfrederiksen/mlb-standings/internal/notifier"
	"github.com/pfrederiksen/mlb-standings/internal/standings"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText  OutputFormat = config.FormatText
	FormatJSON  OutputFormat = config.FormatJSON
	FormatTable OutputFormat = config.FormatTable
)

// OutputResult contains data to be output
type OutputResult struct {
	FetchedAt   *time.Time         `json:"fetched_at,omitempty"`
	Season      string             `json:"season,omitempty"`
	League      string             `json:"league"`
	Source      string             `json:"source"`
	File        string             `json:"file,omitempty"`
	TeamCount   int                `json:"team_count"`
	RecordCount int                `json:"record_count"`
	Totals      []standings.Total  `json:"totals"`
	Records     []standings.Record `json:"records"`
}

// NewOutputResult summarizes a table for output
func NewOutputResult(t *standings.Table, source, file string) *OutputResult {
	totals := t.Totals()
	return &OutputResult{
		Season:      t.Season,
		League:      t.League.Code(),
		Source:      source,
		File:        file,
		TeamCount:   len(totals),
		RecordCount: len(t.Records),
		Totals:      totals,
		Records:     t.Records,
	}
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	case FormatTable:
		return writeTable(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.RecordCount == 0 {
		fmt.Fprintln(w, "No records found.")
		return nil
	}

	title := fmt.Sprintf("%s head-to-head standings", result.League)
	if result.Season != "" {
		title = result.Season + " " + title
	}
	fmt.Fprintf(w, "%s (%d teams, %d records)\n", title, result.TeamCount, result.RecordCount)
	fmt.Fprintf(w, "Source: %s\n", result.Source)
	if result.File != "" {
		fmt.Fprintf(w, "Written: %s\n", result.File)
	}
	fmt.Fprintln(w)

	for _, tot := range result.Totals {
		fmt.Fprintf(w, "  %-4s %3d-%-3d %s  best vs %s %d-%d\n",
			tot.Team, tot.Wins, tot.Losses, notifier.FormatPct(tot.Pct),
			tot.Best.Opponent, tot.Best.Wins, tot.Best.Losses)
		if verbose {
			for _, rec := range result.Records {
				if rec.Team == tot.Team {
					fmt.Fprintf(w, "       vs %-4s %d-%d\n", rec.Opponent, rec.Wins, rec.Losses)
				}
			}
		}
	}

	return nil
}

// writeTable outputs the totals, and in verbose mode every record, as boxed tables
func writeTable(w io.Writer, result *OutputResult, verbose bool) error {
	totals := table.NewWriter()
	totals.SetOutputMirror(w)
	totals.SetTitle(strings.TrimSpace(result.Season + " " + result.League))
	totals.AppendHeader(table.Row{"Team", "W", "L", "Pct", "Best"})
	for _, tot := range result.Totals {
		best := fmt.Sprintf("%s %d-%d", tot.Best.Opponent, tot.Best.Wins, tot.Best.Losses)
		totals.AppendRow(table.Row{tot.Team, tot.Wins, tot.Losses, notifier.FormatPct(tot.Pct), best})
	}
	totals.AppendFooter(table.Row{"", "", "", "Records", strconv.Itoa(result.RecordCount)})
	totals.SetStyle(table.StyleRounded)
	totals.Render()

	if !verbose {
		return nil
	}

	records := table.NewWriter()
	records.SetOutputMirror(w)
	records.AppendHeader(table.Row{"Team", "Opponent", "Wins", "Losses"})
	for _, rec := range result.Records {
		records.AppendRow(table.Row{rec.Team, rec.Opponent, rec.Wins, rec.Losses})
	}
	records.SetStyle(table.StyleRounded)
	records.Render()

	return nil
}
