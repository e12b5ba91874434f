// Package standings provides types and functions for MLB head-to-head standings.
//
// The standings package turns a league grid, where each row is a team and each column
// is an opponent, into a flat list of (team, opponent, wins, losses) records. The
// diagonal of the grid (a team against itself) is skipped, and the trailing column
// holds the team's record against the other league.
package standings
