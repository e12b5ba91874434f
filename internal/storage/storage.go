package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pfrederiksen/mlb-standings/internal/standings"
)

// Header is the first row of every standings CSV
var Header = []string{"Team", "Opponent", "Wins", "Losses"}

// ErrBadHeader is returned when a CSV file does not start with Header
var ErrBadHeader = errors.New("unexpected CSV header")

// Storage handles persistence of standings CSV files
type Storage struct {
	dataDir string
}

// New creates a new Storage instance
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// Path returns the CSV path for a league
func (s *Storage) Path(league standings.League) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("%s-standings.csv", league.Code()))
}

// SaveRecords writes the league's records to its CSV file, replacing any previous file
func (s *Storage) SaveRecords(league standings.League, records []standings.Record) error {
	f, err := os.Create(s.Path(league))
	if err != nil {
		return fmt.Errorf("creating standings file: %w", err)
	}

	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing standings file: %w", err)
	}

	return nil
}

// LoadRecords reads the league's records back from its CSV file
func (s *Storage) LoadRecords(league standings.League) ([]standings.Record, error) {
	f, err := os.Open(s.Path(league))
	if err != nil {
		return nil, fmt.Errorf("opening standings file: %w", err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// WriteCSV writes the header and one row per record
func WriteCSV(w io.Writer, records []standings.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, rec := range records {
		row := []string{rec.Team, rec.Opponent, strconv.Itoa(rec.Wins), strconv.Itoa(rec.Losses)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing record %s vs %s: %w", rec.Team, rec.Opponent, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}

	return nil
}

// ReadCSV parses records written by WriteCSV
func ReadCSV(r io.Reader) ([]standings.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	if len(rows) == 0 || strings.Join(rows[0], ",") != strings.Join(Header, ",") {
		return nil, ErrBadHeader
	}

	records := make([]standings.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		wins, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing wins: %w", i+2, err)
		}
		losses, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing losses: %w", i+2, err)
		}
		records = append(records, standings.Record{
			Team:     row[0],
			Opponent: row[1],
			Wins:     wins,
			Losses:   losses,
		})
	}

	return records, nil
}
