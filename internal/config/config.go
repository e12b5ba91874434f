// Package config loads mlb-standings settings from flags, environment and an
// optional YAML file via viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/pfrederiksen/mlb-standings/internal/logger"
	"github.com/pfrederiksen/mlb-standings/internal/scraper"
	"github.com/pfrederiksen/mlb-standings/internal/standings"
)

// EnvPrefix is prepended to every environment variable, e.g. MLB_STANDINGS_YEAR
const EnvPrefix = "MLB_STANDINGS"

// Keys shared by flags, env vars and the config file
const (
	KeyYear     = "year"
	KeyURL      = "url"
	KeyLeague   = "league"
	KeyDataDir  = "data-dir"
	KeyFormat   = "format"
	KeySQLite   = "sqlite"
	KeyNotify   = "notify"
	KeyMaxPosts = "max-posts"
	KeyVerbose  = "verbose"
	KeyLogLevel = "log-level"
)

// Output formats for the stdout summary
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatTable = "table"
)

// Notification targets
const (
	NotifyNone    = "none"
	NotifyDryRun  = "dry-run"
	NotifyTwitter = "twitter"
)

// Config is the validated settings for one run
type Config struct {
	Season   string
	URL      string
	League   standings.League
	DataDir  string
	Format   string
	SQLite   string
	Notify   string
	MaxPosts int
	Verbose  bool
	LogLevel logger.Level
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyYear, scraper.DefaultSeason)
	v.SetDefault(KeyURL, "")
	v.SetDefault(KeyLeague, "national")
	v.SetDefault(KeyDataDir, "cache")
	v.SetDefault(KeyFormat, FormatText)
	v.SetDefault(KeySQLite, "")
	v.SetDefault(KeyNotify, NotifyNone)
	v.SetDefault(KeyMaxPosts, 15)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyLogLevel, string(logger.LevelInfo))
}

// ReadFile points v at cfgFile, or searches ./mlb-standings.yaml and
// ~/.config/mlb-standings/config.yaml. Env vars with EnvPrefix are enabled
// either way. A missing search-path file is not an error; a missing explicit file is.
func ReadFile(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
		return nil
	}

	v.SetConfigName("mlb-standings")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "mlb-standings"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	return nil
}

// Load builds a Config from v and validates it
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Season:   strings.TrimSpace(v.GetString(KeyYear)),
		URL:      strings.TrimSpace(v.GetString(KeyURL)),
		DataDir:  v.GetString(KeyDataDir),
		Format:   strings.ToLower(strings.TrimSpace(v.GetString(KeyFormat))),
		SQLite:   v.GetString(KeySQLite),
		Notify:   strings.ToLower(strings.TrimSpace(v.GetString(KeyNotify))),
		MaxPosts: v.GetInt(KeyMaxPosts),
		Verbose:  v.GetBool(KeyVerbose),
	}

	league, err := standings.ParseLeague(v.GetString(KeyLeague))
	if err != nil {
		return nil, err
	}
	cfg.League = league

	level, err := logger.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level
	if cfg.Verbose {
		cfg.LogLevel = logger.LevelDebug
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.URL == "" {
		cfg.URL = scraper.GridURL(scraper.GridBaseURL, cfg.Season)
	}

	return cfg, nil
}

// Validate checks field values that viper cannot check for us
func (c *Config) Validate() error {
	if c.Season == "" && c.URL == "" {
		return fmt.Errorf("year is required when no url is given")
	}
	for _, r := range c.Season {
		if r < '0' || r > '9' {
			return fmt.Errorf("invalid year: %q", c.Season)
		}
	}

	switch c.Format {
	case FormatText, FormatJSON, FormatTable:
	default:
		return fmt.Errorf("invalid format: %s (must be 'text', 'json' or 'table')", c.Format)
	}

	switch c.Notify {
	case NotifyNone, NotifyDryRun, NotifyTwitter:
	default:
		return fmt.Errorf("invalid notify target: %s (must be 'none', 'dry-run' or 'twitter')", c.Notify)
	}

	if c.MaxPosts < 1 {
		return fmt.Errorf("max-posts must be at least 1")
	}

	if c.DataDir == "" {
		return fmt.Errorf("data-dir is required")
	}

	return nil
}
