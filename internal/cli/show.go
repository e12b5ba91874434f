package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pfrederiksen/mlb-standings/internal/config"
	"github.com/pfrederiksen/mlb-standings/internal/scraper"
	"github.com/pfrederiksen/mlb-standings/internal/standings"
	"github.com/pfrederiksen/mlb-standings/internal/storage"
)

func newShowCmd(v *viper.Viper) *cobra.Command {
	var sortFlag string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print previously saved standings",
		Long: `Show reads the league's CSV from the data directory and prints it in the
selected format without fetching anything. With --sqlite it reads the
season from that database instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			setupLogger(cmd.ErrOrStderr(), cfg.LogLevel)

			order, err := ParseSortOrder(sortFlag)
			if err != nil {
				return err
			}

			var tbl *standings.Table
			var source string
			if cfg.SQLite != "" {
				tbl, err = loadSQLite(cmd.Context(), cfg)
				source = cfg.SQLite
			} else {
				tbl, source, err = loadCSV(cfg)
			}
			if err != nil {
				return err
			}
			sortRecords(tbl.Records, order)

			result := NewOutputResult(tbl, source, "")

			return WriteOutput(cmd.OutOrStdout(), result, OutputFormat(cfg.Format), cfg.Verbose)
		},
	}

	cmd.Flags().StringVar(&sortFlag, "sort", string(SortByGrid), "Record order: grid, team, opponent or margin")
	cmd.Flags().String(config.KeySQLite, "", "Read records from this SQLite database instead of the CSV")
	cmd.Flags().String(config.KeyYear, scraper.DefaultSeason, "Season to read from the SQLite database")

	return cmd
}

func loadCSV(cfg *config.Config) (*standings.Table, string, error) {
	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return nil, "", fmt.Errorf("initializing storage: %w", err)
	}

	records, err := store.LoadRecords(cfg.League)
	if err != nil {
		return nil, "", fmt.Errorf("loading records: %w", err)
	}

	return &standings.Table{League: cfg.League, Records: records}, store.Path(cfg.League), nil
}

func loadSQLite(ctx context.Context, cfg *config.Config) (*standings.Table, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := storage.OpenSQLite(cfg.SQLite)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	defer db.Close()

	tbl, err := db.LoadTable(ctx, cfg.Season, cfg.League)
	if err != nil {
		return nil, fmt.Errorf("loading from sqlite: %w", err)
	}
	if len(tbl.Records) == 0 {
		return nil, fmt.Errorf("no %s records for season %s in %s", cfg.League.Code(), cfg.Season, cfg.SQLite)
	}

	return tbl, nil
}
