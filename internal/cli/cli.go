//-------------------------------------------------------------------------
//
// pgEdge Trade Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for pgedge-tradegen.
package cli

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-tradegen/internal/apps"
	"github.com/pgEdge/pgedge-tradegen/internal/config"
	"github.com/pgEdge/pgedge-tradegen/internal/logging"
	"github.com/pgEdge/pgedge-tradegen/pkg/version"
)

var (
	// Global flags
	cfgFile    string
	connection string
	app        string
	logLevel   string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "pgedge-tradegen",
		Short: "Synthetic data generator for a trading platform database",
		Long: `pgedge-tradegen creates the schema of a trading analytics platform in
PostgreSQL and fills it with reproducible synthetic data: users, accounts,
instruments, OHLC market data, strategies, portfolios, trades and executions.

Every value is drawn from a single seeded generator, so a run can be
repeated exactly by passing the seed it logged.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./pgedge-tradegen.yaml)")
	rootCmd.PersistentFlags().StringVar(&connection, "connection", "",
		"PostgreSQL connection string (default: built from DB_* variables)")
	rootCmd.PersistentFlags().StringVar(&app, "app", "",
		"data set to generate (default: trading)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(appsCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if connection != "" {
		cfg.Connection = connection
	}
	if app != "" {
		cfg.App = app
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "List available data sets",
	Long: `List the data sets that can be generated, with the tables each one
creates.`,
	Run: func(cmd *cobra.Command, args []string) {
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"App", "Tables", "Description"})
		table.SetAutoWrapText(true)
		table.SetRowLine(true)
		for _, name := range apps.List() {
			a, err := apps.Get(name)
			if err != nil {
				continue
			}
			table.Append([]string{
				a.Name(),
				strings.ReplaceAll(apps.TableNames(a.Tables()), ", ", "\n"),
				a.Description(),
			})
		}
		table.Render()
	},
}
