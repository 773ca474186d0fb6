package cli

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pgEdge/pgedge-tradegen/internal/apps"
)

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	writeSummary(&buf, &apps.Summary{
		App:     "trading",
		Seed:    42,
		Elapsed: 1500 * time.Millisecond,
		Tables: []apps.TableCount{
			{Table: "users", Rows: 100},
			{Table: "trades", Rows: 300},
		},
		Totals: []apps.Metric{{Name: "pnl_mean", Value: 12.5}},
	})

	out := buf.String()
	assert.Contains(t, out, "Seed: 42")
	assert.Contains(t, out, "1.5s")
	assert.Contains(t, out, "users")
	assert.Contains(t, out, "400")
	assert.Contains(t, out, "pnl_mean")
	assert.Contains(t, out, "12.5")
}

func TestWriteChecks(t *testing.T) {
	var buf bytes.Buffer
	failed := writeChecks(&buf, []apps.CheckResult{
		{Check: apps.Check{Name: "ok_check"}},
		{Check: apps.Check{Name: "bad_check"}, Violations: 3},
		{Check: apps.Check{Name: "broken_check"}, Err: errors.New("relation missing")},
	})

	assert.Equal(t, 2, failed)
	out := buf.String()
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "relation missing")
}
