package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pfrederiksen/mlb-standings/internal/config"
	"github.com/pfrederiksen/mlb-standings/internal/logger"
	"github.com/pfrederiksen/mlb-standings/internal/notifier"
	"github.com/pfrederiksen/mlb-standings/internal/scraper"
	"github.com/pfrederiksen/mlb-standings/internal/standings"
	"github.com/pfrederiksen/mlb-standings/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// Version is set at build time via ldflags
var Version = "dev"

// NewRootCmd creates the root command and its subcommands
func NewRootCmd() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)

	cmd := &cobra.Command{
		Use:   "mlb-standings",
		Short: "Export MLB head-to-head standings to CSV",
		Long: `A CLI tool that fetches ESPN's MLB standings grid for a season and writes
one league's head-to-head records as CSV (Team, Opponent, Wins, Losses).
The last column of the grid is each team's record against the other league.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("binding flags: %w", err)
			}
			cfgFile, _ := cmd.Flags().GetString("config")
			if err := config.ReadFile(v, cfgFile); err != nil {
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			setupLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			return runFetch(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}

	cmd.PersistentFlags().String("config", "", "Config file (default ./mlb-standings.yaml or ~/.config/mlb-standings/config.yaml)")
	cmd.PersistentFlags().String(config.KeyLeague, "national", "League: national (NL) or american (AL)")
	cmd.PersistentFlags().String(config.KeyDataDir, "cache", "Directory for standings CSV files")
	cmd.PersistentFlags().String(config.KeyFormat, config.FormatText, "Output format: text, json or table")
	cmd.PersistentFlags().Bool(config.KeyVerbose, false, "Enable verbose logging and per-opponent output")
	cmd.PersistentFlags().String(config.KeyLogLevel, string(logger.LevelInfo), "Log level: debug, info, warn or error")

	cmd.Flags().String(config.KeyYear, scraper.DefaultSeason, "Season to fetch")
	cmd.Flags().String(config.KeyURL, "", "Grid URL (default derived from --year)")
	cmd.Flags().String(config.KeySQLite, "", "Also upsert records into this SQLite database")
	cmd.Flags().String(config.KeyNotify, config.NotifyNone, "Publish team summaries: none, dry-run or twitter")
	cmd.Flags().Int(config.KeyMaxPosts, 15, "Maximum number of summaries to publish")

	cmd.AddCommand(newShowCmd(v))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func setupLogger(w io.Writer, level logger.Level) {
	logger.SetDefault(logger.New(level, w))
}

// runFetch is the main command logic. Only the rendered result is written
// to out; notifier previews go to errOut.
func runFetch(ctx context.Context, out, errOut io.Writer, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger.Debug("Starting run", logger.Fields{
		"season":   cfg.Season,
		"league":   cfg.League.Code(),
		"data_dir": cfg.DataDir,
	})

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	sc := scraper.New(scraper.WithURL(cfg.URL))

	logger.Debug("Fetching grid", logger.Fields{"url": sc.URL()})

	start := time.Now()
	grid, err := sc.FetchGrid(ctx, cfg.League)
	logger.RecordTiming("scraper.fetch", time.Since(start))
	if err != nil {
		logger.Error("Fetch failed", logger.Fields{"url": sc.URL()}, err)
		return fmt.Errorf("fetching standings: %w", err)
	}

	logger.SetGauge("standings.teams", float64(len(grid.Rows)))

	tbl, err := standings.NewTable(cfg.Season, grid)
	if err != nil {
		return fmt.Errorf("normalizing standings: %w", err)
	}

	if err := store.SaveRecords(cfg.League, tbl.Records); err != nil {
		return fmt.Errorf("saving records: %w", err)
	}
	logger.AddCounter("records.written", int64(len(tbl.Records)))

	logger.Info("Wrote standings", logger.Fields{
		"file":    store.Path(cfg.League),
		"teams":   len(grid.Rows),
		"records": len(tbl.Records),
	})

	if cfg.SQLite != "" {
		if err := saveSQLite(ctx, cfg.SQLite, tbl); err != nil {
			return err
		}
	}

	if err := notify(errOut, cfg, tbl); err != nil {
		return err
	}

	result := NewOutputResult(tbl, sc.URL(), store.Path(cfg.League))
	now := time.Now().UTC()
	result.FetchedAt = &now

	if err := WriteOutput(out, result, OutputFormat(cfg.Format), cfg.Verbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	logger.Debug("Run metrics", logger.Fields{"metrics": logger.GetMetricsSnapshot()})

	return nil
}

func saveSQLite(ctx context.Context, path string, tbl *standings.Table) error {
	db, err := storage.OpenSQLite(path)
	if err != nil {
		return fmt.Errorf("opening sqlite: %w", err)
	}
	defer db.Close()

	if err := db.SaveTable(ctx, tbl); err != nil {
		return fmt.Errorf("saving to sqlite: %w", err)
	}

	logger.Debug("Saved to sqlite", logger.Fields{"path": path, "records": len(tbl.Records)})
	return nil
}

func notify(out io.Writer, cfg *config.Config, tbl *standings.Table) error {
	var n notifier.Notifier
	switch cfg.Notify {
	case config.NotifyDryRun:
		n = notifier.NewDryRunNotifier(out, cfg.MaxPosts)
	case config.NotifyTwitter:
		tw, err := notifier.NewTwitterNotifier(cfg.MaxPosts)
		if err != nil {
			return fmt.Errorf("initializing twitter: %w", err)
		}
		n = tw
	default:
		return nil
	}

	if err := n.Notify(tbl); err != nil {
		logger.Warn("Notification failed", logger.Fields{"target": cfg.Notify})
		return fmt.Errorf("notifying: %w", err)
	}

	logger.IncrCounter("notify." + cfg.Notify)
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
