package datagen

import (
	"time"

	"github.com/pgEdge/pgedge-tradegen/internal/logging"
)

// ProgressReporter tracks and reports progress across the generation stages
// of a run.
type ProgressReporter struct {
	totalStages int
	stage       int
	rows        int64
	started     time.Time
}

// NewProgressReporter creates a new progress reporter.
func NewProgressReporter(totalStages int) *ProgressReporter {
	return &ProgressReporter{
		totalStages: totalStages,
		started:     time.Now(),
	}
}

// Update records a finished stage and logs its row count.
func (p *ProgressReporter) Update(table string, rows int) {
	p.stage++
	p.rows += int64(rows)

	pct := 100.0
	if p.totalStages > 0 {
		pct = float64(p.stage) / float64(p.totalStages) * 100
	}
	logging.Info().
		Str("table", table).
		Int("rows", rows).
		Int("stage", p.stage).
		Int("stages", p.totalStages).
		Float64("percent", pct).
		Msg("Table complete")
}

// Rows returns the number of rows reported so far.
func (p *ProgressReporter) Rows() int64 {
	return p.rows
}

// Done logs completion.
func (p *ProgressReporter) Done() {
	logging.Info().
		Int("stages", p.stage).
		Int64("rows", p.rows).
		Dur("elapsed", time.Since(p.started)).
		Msg("Generation complete")
}
