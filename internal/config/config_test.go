package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfrederiksen/mlb-standings/internal/logger"
	"github.com/pfrederiksen/mlb-standings/internal/standings"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, "2013", cfg.Season)
	assert.Equal(t, "http://espn.go.com/mlb/standings/grid/_/year/2013", cfg.URL)
	assert.Equal(t, standings.National, cfg.League)
	assert.Equal(t, "cache", cfg.DataDir)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, NotifyNone, cfg.Notify)
	assert.Equal(t, 15, cfg.MaxPosts)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, logger.LevelInfo, cfg.LogLevel)
}

func TestLoad_LogLevel(t *testing.T) {
	v := newViper()
	v.Set(KeyLogLevel, "warn")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, logger.LevelWarn, cfg.LogLevel)

	v.Set(KeyVerbose, true)
	cfg, err = Load(v)
	require.NoError(t, err)
	assert.Equal(t, logger.LevelDebug, cfg.LogLevel, "verbose forces debug")
}

func TestLoad_Overrides(t *testing.T) {
	v := newViper()
	v.Set(KeyYear, "2012")
	v.Set(KeyLeague, "AL")
	v.Set(KeyFormat, "TABLE")
	v.Set(KeyNotify, "dry-run")

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "2012", cfg.Season)
	assert.Equal(t, "http://espn.go.com/mlb/standings/grid/_/year/2012", cfg.URL)
	assert.Equal(t, standings.American, cfg.League)
	assert.Equal(t, FormatTable, cfg.Format)
	assert.Equal(t, NotifyDryRun, cfg.Notify)
}

func TestLoad_ExplicitURLWins(t *testing.T) {
	v := newViper()
	v.Set(KeyURL, "http://localhost:8080/grid")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/grid", cfg.URL)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value interface{}
	}{
		{"bad league", KeyLeague, "federal"},
		{"bad format", KeyFormat, "xml"},
		{"bad notify", KeyNotify, "email"},
		{"bad year", KeyYear, "20x3"},
		{"negative max posts", KeyMaxPosts, -1},
		{"zero max posts", KeyMaxPosts, 0},
		{"bad log level", KeyLogLevel, "trace"},
		{"empty data dir", KeyDataDir, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			assert.Error(t, err)
		})
	}
}

func TestReadFile_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "standings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("year: \"2011\"\nleague: american\nformat: json\n"), 0o644))

	v := newViper()
	require.NoError(t, ReadFile(v, path))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "2011", cfg.Season)
	assert.Equal(t, standings.American, cfg.League)
	assert.Equal(t, FormatJSON, cfg.Format)
}

func TestReadFile_MissingExplicitFile(t *testing.T) {
	v := newViper()
	err := ReadFile(v, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestReadFile_SearchPathMissingIsFine(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	v := newViper()
	assert.NoError(t, ReadFile(v, ""))
}

func TestReadFile_Env(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MLB_STANDINGS_YEAR", "2010")
	t.Setenv("MLB_STANDINGS_DATA_DIR", "/tmp/standings")

	v := newViper()
	require.NoError(t, ReadFile(v, ""))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "2010", cfg.Season)
	assert.Equal(t, "/tmp/standings", cfg.DataDir)
}
