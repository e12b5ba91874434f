// Package cli implements the command-line interface for mlb-standings.
//
// The cli package provides the Cobra-based CLI: the root command fetches a season's
// standings grid, writes the league's head-to-head CSV and prints a summary (text,
// JSON or table); "show" re-renders a previously written CSV without fetching.
// Settings come from flags, MLB_STANDINGS_* environment variables and an optional
// YAML config file.
package cli
