package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pfrederiksen/mlb-standings/internal/standings"
)

const createHeadToHead = `CREATE TABLE IF NOT EXISTS head_to_head (
	season   TEXT    NOT NULL,
	league   TEXT    NOT NULL,
	team     TEXT    NOT NULL,
	opponent TEXT    NOT NULL,
	wins     INTEGER NOT NULL,
	losses   INTEGER NOT NULL,
	PRIMARY KEY (season, league, team, opponent)
);`

const upsertHeadToHead = `INSERT INTO head_to_head (season, league, team, opponent, wins, losses)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (season, league, team, opponent) DO UPDATE SET wins = excluded.wins, losses = excluded.losses;`

// SQLite stores standings tables in a SQLite database.
// The go-sqlite3 driver does not allow concurrent writes, so use one SQLite per file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database and its head_to_head table
func OpenSQLite(path string) (*SQLite, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite database file not set")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	if _, err := db.Exec(createHeadToHead); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating head_to_head table: %w", err)
	}

	return &SQLite{db: db}, nil
}

// SaveTable upserts every record of the table in a single transaction
func (s *SQLite) SaveTable(ctx context.Context, table *standings.Table) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertHeadToHead)
	if err != nil {
		return fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	league := table.League.Code()
	for _, rec := range table.Records {
		if _, err := stmt.ExecContext(ctx, table.Season, league, rec.Team, rec.Opponent, rec.Wins, rec.Losses); err != nil {
			return fmt.Errorf("inserting %s vs %s: %w", rec.Team, rec.Opponent, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// LoadTable reads one season and league back from the database
func (s *SQLite) LoadTable(ctx context.Context, season string, league standings.League) (*standings.Table, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT team, opponent, wins, losses FROM head_to_head WHERE season = ? AND league = ? ORDER BY rowid`,
		season, league.Code())
	if err != nil {
		return nil, fmt.Errorf("querying head_to_head: %w", err)
	}
	defer rows.Close()

	table := &standings.Table{Season: season, League: league, Records: make([]standings.Record, 0)}
	for rows.Next() {
		var rec standings.Record
		if err := rows.Scan(&rec.Team, &rec.Opponent, &rec.Wins, &rec.Losses); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		table.Records = append(table.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}

	return table, nil
}

// Close closes the database
func (s *SQLite) Close() error {
	return s.db.Close()
}
