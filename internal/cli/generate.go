package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-tradegen/internal/apps"
	"github.com/pgEdge/pgedge-tradegen/internal/db"
	"github.com/pgEdge/pgedge-tradegen/internal/export"
	"github.com/pgEdge/pgedge-tradegen/internal/logging"
)

var (
	genSeed      uint64
	genRecords   int
	genStartDate string
	genEndDate   string
	genAtomic    bool
	genDryRun    bool
	genExportDir string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Create the schema and fill it with synthetic data",
	Long: `Drop and recreate the data set's tables, then populate them in
dependency order. Each table is committed as it is written unless --atomic
is given, in which case the whole run is one transaction.

Examples:
  pgedge-tradegen generate --connection "postgres://..." --seed 42
  pgedge-tradegen generate --dry-run --records 1000 --export-dir ./csv`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Uint64Var(&genSeed, "seed", 0,
		"random seed (default: random, logged at start)")
	generateCmd.Flags().IntVar(&genRecords, "records", 0,
		"base record count per table (default: 100)")
	generateCmd.Flags().StringVar(&genStartDate, "start-date", "",
		"first day of generated history, YYYY-MM-DD (default: 2024-01-01)")
	generateCmd.Flags().StringVar(&genEndDate, "end-date", "",
		"last day of generated history, YYYY-MM-DD (default: now)")
	generateCmd.Flags().BoolVar(&genAtomic, "atomic", false,
		"write the whole run in one transaction")
	generateCmd.Flags().BoolVar(&genDryRun, "dry-run", false,
		"generate in memory without connecting to a database")
	generateCmd.Flags().StringVar(&genExportDir, "export-dir", "",
		"also write one CSV file per table into this directory")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if cmd.Flags().Changed("seed") {
		cfg.Generate.Seed = genSeed
	}
	if genRecords > 0 {
		cfg.Generate.Records = genRecords
	}
	if genStartDate != "" {
		cfg.Generate.StartDate = genStartDate
	}
	if genEndDate != "" {
		cfg.Generate.EndDate = genEndDate
	}
	if genAtomic {
		cfg.Generate.Atomic = true
	}
	if genDryRun {
		cfg.Generate.DryRun = true
	}
	if genExportDir != "" {
		cfg.Generate.ExportDir = genExportDir
	}

	if err := cfg.ValidateGenerate(); err != nil {
		return err
	}

	application, err := apps.Get(cfg.App)
	if err != nil {
		return err
	}

	start, end, err := cfg.Generate.Window()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	genCfg := apps.GeneratorConfig{
		Seed:    cfg.Generate.Seed,
		Records: cfg.Generate.Records,
		Start:   start,
		End:     end,
		Atomic:  cfg.Generate.Atomic,
	}

	if cfg.Generate.ExportDir != "" {
		dir, err := export.NewDir(cfg.Generate.ExportDir)
		if err != nil {
			return err
		}
		defer func() {
			if err := dir.Close(); err != nil {
				logging.Warn().Err(err).Msg("Failed to close export files")
			}
		}()
		genCfg.OnBatch = dir.Write
		logging.Info().Str("dir", dir.Path()).Msg("Exporting CSV files")
	}

	if cfg.Generate.DryRun {
		logging.Info().Str("app", cfg.App).Msg("Dry run, generating in memory")
		summary, err := application.Generate(ctx, db.NewMemStore(), genCfg)
		if err != nil {
			return fmt.Errorf("failed to generate data: %w", err)
		}
		writeSummary(cmd.OutOrStdout(), summary)
		return nil
	}

	conn, err := db.Connect(ctx, cfg.DSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer conn.Close(context.Background())

	// Check if already generated for a different app
	if exists, err := db.MetadataExists(ctx, conn); err == nil && exists {
		existingApp, err := db.GetMetadataValue(ctx, conn, "app")
		if err == nil && existingApp != "" && existingApp != cfg.App {
			logging.Warn().
				Str("existing_app", existingApp).
				Str("new_app", cfg.App).
				Msg("Database holds data for another app")
		}
	}

	logging.Info().
		Str("app", cfg.App).
		Int("records", cfg.Generate.Records).
		Msg("Generating data")

	summary, err := application.Generate(ctx, db.NewPgStore(conn), genCfg)
	if err != nil {
		return fmt.Errorf("failed to generate data: %w", err)
	}

	info := db.RunInfo{
		App:         cfg.App,
		Seed:        summary.Seed,
		Records:     cfg.Generate.Records,
		GeneratedAt: time.Now(),
	}
	if err := db.SaveMetadata(ctx, conn, info); err != nil {
		return fmt.Errorf("failed to save metadata: %w", err)
	}

	writeSummary(cmd.OutOrStdout(), summary)

	logging.Info().
		Str("app", cfg.App).
		Uint64("seed", summary.Seed).
		Int("rows", summary.Rows()).
		Msg("Data generation complete")

	return nil
}
