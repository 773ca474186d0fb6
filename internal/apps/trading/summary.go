package trading

import (
	"time"

	"github.com/montanaflynn/stats"

	"github.com/pgEdge/pgedge-tradegen/internal/apps"
	"github.com/pgEdge/pgedge-tradegen/internal/logging"
)

// summary reports row counts plus P&L statistics over closed trades.
func (g *Generator) summary(elapsed time.Duration) *apps.Summary {
	s := &apps.Summary{
		App:     AppName,
		Seed:    g.Seed(),
		Tables:  append([]apps.TableCount(nil), g.counts...),
		Elapsed: elapsed,
		Totals: []apps.Metric{
			{Name: "users", Value: float64(len(g.users))},
			{Name: "instruments", Value: float64(len(g.instruments))},
			{Name: "trades", Value: float64(len(g.trades))},
			{Name: "portfolios", Value: float64(len(g.portfolios))},
		},
	}

	var pnl stats.Float64Data
	for _, t := range g.trades {
		if t.ProfitLoss != nil {
			pnl = append(pnl, t.ProfitLoss.InexactFloat64())
		}
	}
	s.Totals = append(s.Totals, apps.Metric{Name: "closed_trades", Value: float64(len(pnl))})
	if len(pnl) == 0 {
		return s
	}

	mean, err := pnl.Mean()
	if err != nil {
		logging.Warn().Err(err).Msg("Failed to compute P&L mean")
		return s
	}
	median, _ := pnl.Median()
	stddev, _ := pnl.StandardDeviation()
	s.Totals = append(s.Totals,
		apps.Metric{Name: "pnl_mean", Value: mean},
		apps.Metric{Name: "pnl_median", Value: median},
		apps.Metric{Name: "pnl_stddev", Value: stddev},
	)
	return s
}
