//-------------------------------------------------------------------------
//
// pgEdge Trade Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package apps_test

import (
	"strings"
	"testing"

	"github.com/pgEdge/pgedge-tradegen/internal/apps"
	"github.com/pgEdge/pgedge-tradegen/internal/db"
	// Import app packages to trigger their init() functions which register the apps
	_ "github.com/pgEdge/pgedge-tradegen/internal/apps/trading"
)

func TestGet(t *testing.T) {
	app, err := apps.Get("trading")
	if err != nil {
		t.Fatalf("Failed to get app 'trading': %v", err)
	}
	if app == nil {
		t.Fatal("Get('trading') returned nil")
	}
	if app.Name() != "trading" {
		t.Errorf("App name mismatch: expected 'trading', got '%s'", app.Name())
	}
	if app.Description() == "" {
		t.Error("App description should not be empty")
	}
}

func TestGetInvalidApp(t *testing.T) {
	_, err := apps.Get("nonexistent")
	if err == nil {
		t.Error("Expected error for nonexistent app, got nil")
	}
}

func TestGetEmptyName(t *testing.T) {
	_, err := apps.Get("")
	if err == nil {
		t.Error("Expected error for empty app name, got nil")
	}
}

func TestList(t *testing.T) {
	appList := apps.List()

	if len(appList) == 0 {
		t.Error("List returned empty slice")
	}

	found := false
	for _, name := range appList {
		if name == "trading" {
			found = true
		}
	}
	if !found {
		t.Error("Expected app 'trading' not found in List()")
	}
	if len(apps.All()) != len(appList) {
		t.Errorf("All() returned %d apps, List() %d", len(apps.All()), len(appList))
	}
}

func TestAppInfo(t *testing.T) {
	for _, appName := range apps.List() {
		t.Run(appName, func(t *testing.T) {
			app, err := apps.Get(appName)
			if err != nil {
				t.Fatalf("Failed to get app: %v", err)
			}

			tables := app.Tables()
			if len(tables) == 0 {
				t.Fatal("Tables() should not be empty")
			}

			// Every foreign key must point at a table created earlier.
			created := make(map[string]bool)
			for _, table := range tables {
				if table.DDL == "" {
					t.Errorf("Table '%s' has no DDL", table.Name)
				}
				if len(table.PrimaryKey) == 0 {
					t.Errorf("Table '%s' has no primary key", table.Name)
				}
				for _, fk := range table.ForeignKeys {
					if !created[fk.RefTable] && fk.RefTable != table.Name {
						t.Errorf("%s.%s references %s before it is created",
							table.Name, fk.Column, fk.RefTable)
					}
				}
				created[table.Name] = true
			}

			checks := app.Checks()
			if len(checks) == 0 {
				t.Error("Checks() should not be empty")
			}
			for _, c := range checks {
				if c.Name == "" || c.Query == "" {
					t.Errorf("Check '%s' is incomplete", c.Name)
				}
			}
		})
	}
}

func TestForeignKeyChecks(t *testing.T) {
	tables := []db.Table{
		{Name: "users", PrimaryKey: []string{"user_id"}},
		{
			Name:       "accounts",
			PrimaryKey: []string{"account_id"},
			ForeignKeys: []db.ForeignKey{
				{Column: "user_id", RefTable: "users", RefColumn: "user_id"},
			},
		},
	}

	checks := apps.ForeignKeyChecks(tables)
	if len(checks) != 1 {
		t.Fatalf("Expected 1 check, got %d", len(checks))
	}
	c := checks[0]
	if c.Name != "fk_accounts_user_id" {
		t.Errorf("Unexpected check name '%s'", c.Name)
	}
	if !strings.Contains(c.Query, `FROM "accounts" c`) || !strings.Contains(c.Query, `FROM "users" p`) {
		t.Errorf("Unexpected query: %s", c.Query)
	}
}

func TestSummaryRows(t *testing.T) {
	s := apps.Summary{Tables: []apps.TableCount{{Table: "a", Rows: 2}, {Table: "b", Rows: 3}}}
	if s.Rows() != 5 {
		t.Errorf("Rows() = %d, want 5", s.Rows())
	}
	if got := apps.TableNames([]db.Table{{Name: "a"}, {Name: "b"}}); got != "a, b" {
		t.Errorf("TableNames() = %q", got)
	}
}

func TestCheckResultPassed(t *testing.T) {
	if !(apps.CheckResult{}).Passed() {
		t.Error("zero violations should pass")
	}
	if (apps.CheckResult{Violations: 1}).Passed() {
		t.Error("violations should fail")
	}
}

// Benchmark app retrieval
func BenchmarkGet(b *testing.B) {
	for i := 0; i < b.N; i++ {
		apps.Get("trading")
	}
}

func BenchmarkList(b *testing.B) {
	for i := 0; i < b.N; i++ {
		apps.List()
	}
}
