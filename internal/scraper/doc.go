// Package scraper provides HTTP fetching and HTML parsing for ESPN's MLB standings grid.
//
// The scraper package fetches the season's standings grid page and extracts one league's
// head-to-head table: the team abbreviation of every row and the raw "W-L" text of every
// right-aligned cell. Turning those cells into records is left to the standings package.
package scraper
