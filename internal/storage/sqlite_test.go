package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfrederiksen/mlb-standings/internal/standings"
)

func TestSQLite_SaveAndLoadTable(t *testing.T) {
	ctx := context.Background()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "standings.db"))
	require.NoError(t, err)
	defer db.Close()

	table := &standings.Table{Season: "2013", League: standings.National, Records: sampleRecords}
	require.NoError(t, db.SaveTable(ctx, table))

	got, err := db.LoadTable(ctx, "2013", standings.National)
	require.NoError(t, err)
	assert.Equal(t, sampleRecords, got.Records)

	other, err := db.LoadTable(ctx, "2012", standings.National)
	require.NoError(t, err)
	assert.Empty(t, other.Records)
}

func TestSQLite_SaveTableUpserts(t *testing.T) {
	ctx := context.Background()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "standings.db"))
	require.NoError(t, err)
	defer db.Close()

	table := &standings.Table{Season: "2013", League: standings.National, Records: sampleRecords}
	require.NoError(t, db.SaveTable(ctx, table))

	updated := &standings.Table{Season: "2013", League: standings.National, Records: []standings.Record{
		{Team: "ATL", Opponent: "MIA", Wins: 14, Losses: 6},
	}}
	require.NoError(t, db.SaveTable(ctx, updated))

	got, err := db.LoadTable(ctx, "2013", standings.National)
	require.NoError(t, err)
	require.Len(t, got.Records, len(sampleRecords))
	assert.Equal(t, 14, got.Records[0].Wins)
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	_, err := OpenSQLite("")
	assert.Error(t, err)
}
