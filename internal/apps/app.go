// Package apps defines the application interface and implementations.
package apps

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pgEdge/pgedge-tradegen/internal/db"
)

// GeneratorConfig holds configuration for data generation.
type GeneratorConfig struct {
	// Seed drives every random value of a run. Zero picks a random seed.
	Seed uint64

	// Records is the base record count; per-table counts scale from it.
	Records int

	// Start and End bound generated timestamps. A zero End means now.
	Start time.Time
	End   time.Time

	// Atomic defers the commit to the end of the run so a failure
	// leaves nothing behind.
	Atomic bool

	// OnBatch, when set, receives every batch after it is written.
	OnBatch BatchHook
}

// BatchHook receives a table name and the typed records just written to
// it. Returning an error aborts the run.
type BatchHook func(table string, records any) error

// TableCount is the number of rows a run wrote to one table.
type TableCount struct {
	Table string
	Rows  int
}

// Metric is a named figure reported at the end of a run.
type Metric struct {
	Name  string
	Value float64
}

// Summary reports the outcome of a successful run.
type Summary struct {
	App     string
	Seed    uint64
	Tables  []TableCount
	Totals  []Metric
	Elapsed time.Duration
}

// Rows returns the total number of rows written.
func (s *Summary) Rows() int {
	n := 0
	for _, t := range s.Tables {
		n += t.Rows
	}
	return n
}

// Check is an integrity query. Query must return a single count of
// violating rows; zero means the check passed.
type Check struct {
	Name        string
	Description string
	Query       string
}

// App defines the interface that all applications must implement.
type App interface {
	// Name returns the application name.
	Name() string

	// Description returns a human-readable description.
	Description() string

	// Tables returns the application's tables in creation order.
	Tables() []db.Table

	// Generate resets the schema and populates it.
	Generate(ctx context.Context, store db.Store, cfg GeneratorConfig) (*Summary, error)

	// Checks returns the integrity checks run by verify.
	Checks() []Check
}

// ForeignKeyChecks builds one dangling-reference check per foreign key.
func ForeignKeyChecks(tables []db.Table) []Check {
	var checks []Check
	for _, t := range tables {
		for _, fk := range t.ForeignKeys {
			child := pgx.Identifier{t.Name}.Sanitize()
			col := pgx.Identifier{fk.Column}.Sanitize()
			parent := pgx.Identifier{fk.RefTable}.Sanitize()
			refCol := pgx.Identifier{fk.RefColumn}.Sanitize()

			checks = append(checks, Check{
				Name:        fmt.Sprintf("fk_%s_%s", t.Name, fk.Column),
				Description: fmt.Sprintf("%s.%s references %s.%s", t.Name, fk.Column, fk.RefTable, fk.RefColumn),
				Query: fmt.Sprintf(
					"SELECT count(*) FROM %s c WHERE c.%s IS NOT NULL AND NOT EXISTS "+
						"(SELECT 1 FROM %s p WHERE p.%s = c.%s)",
					child, col, parent, refCol, col),
			})
		}
	}
	return checks
}

// CheckResult is the outcome of one check.
type CheckResult struct {
	Check      Check
	Violations int64
	Err        error
}

// Passed reports whether the check ran and found no violations.
func (r CheckResult) Passed() bool {
	return r.Err == nil && r.Violations == 0
}

// RunChecks executes checks against conn and collects their results.
func RunChecks(ctx context.Context, conn db.DB, checks []Check) []CheckResult {
	results := make([]CheckResult, 0, len(checks))
	for _, c := range checks {
		var n int64
		err := conn.QueryRow(ctx, c.Query).Scan(&n)
		if err != nil {
			err = fmt.Errorf("check %s: %w", c.Name, err)
		}
		results = append(results, CheckResult{Check: c, Violations: n, Err: err})
	}
	return results
}

// TableNames returns the names of tables, in order.
func TableNames(tables []db.Table) string {
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name
	}
	return strings.Join(names, ", ")
}
