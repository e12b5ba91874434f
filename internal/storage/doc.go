// Package storage persists normalized head-to-head records.
//
// Records are written as CSV files named after the league (NL-standings.csv,
// AL-standings.csv) with a Team,Opponent,Wins,Losses header. The default location
// is ./cache/. An optional SQLite sink keeps every season and league in one
// head_to_head table.
package storage
