//-------------------------------------------------------------------------
//
// pgEdge Trade Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

//go:build integration

// Integration tests for all applications.
// Run with: go test -tags=integration ./internal/apps/...
// Requires PostgreSQL to be available.
// Set PGEDGE_TEST_CONN environment variable to override connection string.

package apps_test

import (
	"context"
	"testing"
	"time"

	"github.com/pgEdge/pgedge-tradegen/internal/apps"
	"github.com/pgEdge/pgedge-tradegen/internal/db"
	"github.com/pgEdge/pgedge-tradegen/internal/testutil"
	// Import app packages to trigger their init() functions which register the apps
	_ "github.com/pgEdge/pgedge-tradegen/internal/apps/trading"
)

var (
	integrationStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	integrationEnd   = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// TestTradingIntegration generates the trading data set into PostgreSQL
// and runs every integrity check against it.
func TestTradingIntegration(t *testing.T) {
	runAppIntegrationTest(t, "trading")
}

func runAppIntegrationTest(t *testing.T, appName string) {
	baseConnStr := testutil.SkipIfNoPostgres(t)

	app, err := apps.Get(appName)
	if err != nil {
		t.Fatalf("Failed to get app: %v", err)
	}

	testConnStr := testutil.CreateTestDB(t, baseConnStr, appName)
	conn := testutil.ConnectTestDB(t, testConnStr)
	ctx := context.Background()

	cfg := apps.GeneratorConfig{
		Seed:    42,
		Records: 50,
		Start:   integrationStart,
		End:     integrationEnd,
	}

	var summary *apps.Summary
	t.Run("Generate", func(t *testing.T) {
		summary, err = app.Generate(ctx, db.NewPgStore(conn), cfg)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if summary.Rows() == 0 {
			t.Fatal("Generate wrote no rows")
		}
	})

	t.Run("RowCounts", func(t *testing.T) {
		if summary == nil {
			t.Skip("no summary")
		}
		for _, tc := range summary.Tables {
			var n int
			err := conn.QueryRow(ctx, "SELECT count(*) FROM "+tc.Table).Scan(&n)
			if err != nil {
				t.Fatalf("count %s: %v", tc.Table, err)
			}
			if n != tc.Rows {
				t.Errorf("%s: summary says %d rows, table has %d", tc.Table, tc.Rows, n)
			}
		}
	})

	t.Run("Checks", func(t *testing.T) {
		for _, r := range apps.RunChecks(ctx, conn, app.Checks()) {
			if !r.Passed() {
				t.Errorf("check %s failed: %d violations, err %v",
					r.Check.Name, r.Violations, r.Err)
			}
		}
	})

	t.Run("Metadata", func(t *testing.T) {
		info := db.RunInfo{App: appName, Seed: 42, Records: 50, GeneratedAt: time.Now()}
		if err := db.SaveMetadata(ctx, conn, info); err != nil {
			t.Fatalf("SaveMetadata failed: %v", err)
		}
		seed, err := db.GetMetadataValue(ctx, conn, "seed")
		if err != nil || seed != "42" {
			t.Errorf("seed metadata = %q, %v", seed, err)
		}
	})
}

// TestRegenerateIsIdempotent verifies a second run replaces the first.
func TestRegenerateIsIdempotent(t *testing.T) {
	baseConnStr := testutil.SkipIfNoPostgres(t)

	app, err := apps.Get("trading")
	if err != nil {
		t.Fatalf("Failed to get app: %v", err)
	}

	testConnStr := testutil.CreateTestDB(t, baseConnStr, "idempotent")
	conn := testutil.ConnectTestDB(t, testConnStr)
	ctx := context.Background()

	cfg := apps.GeneratorConfig{Seed: 7, Records: 20, Start: integrationStart, End: integrationEnd, Atomic: true}
	first, err := app.Generate(ctx, db.NewPgStore(conn), cfg)
	if err != nil {
		t.Fatalf("First Generate failed: %v", err)
	}
	second, err := app.Generate(ctx, db.NewPgStore(conn), cfg)
	if err != nil {
		t.Fatalf("Second Generate failed: %v", err)
	}
	if first.Rows() != second.Rows() {
		t.Errorf("row totals differ: %d vs %d", first.Rows(), second.Rows())
	}

	var users int
	if err := conn.QueryRow(ctx, "SELECT count(*) FROM users").Scan(&users); err != nil {
		t.Fatalf("count users: %v", err)
	}
	if users != 20 {
		t.Errorf("expected 20 users after regenerate, got %d", users)
	}
}

// TestContextCancellation verifies a canceled run leaves no partial data.
func TestContextCancellation(t *testing.T) {
	baseConnStr := testutil.SkipIfNoPostgres(t)

	app, err := apps.Get("trading")
	if err != nil {
		t.Fatalf("Failed to get app: %v", err)
	}

	testConnStr := testutil.CreateTestDB(t, baseConnStr, "cancel")
	conn := testutil.ConnectTestDB(t, testConnStr)

	cancelledCtx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := apps.GeneratorConfig{Seed: 1, Records: 10, Atomic: true}
	if _, err := app.Generate(cancelledCtx, db.NewPgStore(conn), cfg); err == nil {
		t.Fatal("expected an error from a canceled run")
	}

	var exists bool
	err = conn.QueryRow(context.Background(),
		"SELECT EXISTS (SELECT FROM information_schema.tables WHERE table_name = 'users')").Scan(&exists)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if exists {
		t.Error("canceled atomic run should not leave tables behind")
	}
}
