package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-tradegen/internal/apps"
	"github.com/pgEdge/pgedge-tradegen/internal/db"
	"github.com/pgEdge/pgedge-tradegen/internal/logging"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run integrity checks against a generated database",
	Long: `Run the data set's integrity checks: one dangling-reference check per
foreign key plus domain rules such as OHLC ordering and closed-trade P&L.
Exits non-zero when any check finds violations.`,
	RunE: runVerify,
}

var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Drop the data set's tables and run metadata",
	RunE:  runDrop,
}

func runVerify(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	application, err := apps.Get(cfg.App)
	if err != nil {
		return err
	}

	ctx := context.Background()
	conn, err := db.Connect(ctx, cfg.DSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer conn.Close(ctx)

	if metadata, err := db.GetAllMetadata(ctx, conn); err == nil {
		logging.Info().
			Str("app", metadata["app"]).
			Str("seed", metadata["seed"]).
			Str("generated_at", metadata["generated_at"]).
			Msg("Verifying generated data")
	} else {
		logging.Warn().Err(err).Msg("No run metadata found")
	}

	checks := application.Checks()
	results := apps.RunChecks(ctx, conn, checks)
	failed := writeChecks(cmd.OutOrStdout(), results)
	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(results))
	}

	logging.Info().Int("checks", len(results)).Msg("All checks passed")
	return nil
}

func runDrop(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	application, err := apps.Get(cfg.App)
	if err != nil {
		return err
	}

	ctx := context.Background()
	conn, err := db.Connect(ctx, cfg.DSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer conn.Close(ctx)

	store := db.NewPgStore(conn)
	if err := store.DropSchema(ctx, application.Tables()); err != nil {
		_ = store.Rollback(ctx)
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	if err := store.Commit(ctx); err != nil {
		return err
	}
	if err := db.DropMetadata(ctx, conn); err != nil {
		logging.Debug().Err(err).Msg("No metadata table to drop")
	}

	logging.Info().Str("app", cfg.App).Msg("Schema dropped")
	return nil
}
