// Package main is the entry point for pgedge-tradegen.
package main

import (
	"fmt"
	"os"

	"github.com/pgEdge/pgedge-tradegen/internal/cli"
	"github.com/pgEdge/pgedge-tradegen/internal/logging"

	// Register applications
	_ "github.com/pgEdge/pgedge-tradegen/internal/apps/trading"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Debug().Stack().Err(err).Msg("Command failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
