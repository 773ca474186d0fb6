package trading

import (
	"context"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pgEdge/pgedge-tradegen/internal/datagen"
	"github.com/pgEdge/pgedge-tradegen/internal/datagen/payload"
)

// rootStrategies is how many parentless strategies are written before the
// rest, so children always reference a committed parent.
const rootStrategies = 5

// generateStrategies writes the root strategies first, then the remainder.
// About a third of the remainder derive from a root and carry a minor
// version bump.
func (g *Generator) generateStrategies(ctx context.Context) (int, error) {
	f := g.faker
	roots := make([]Strategy, 0, rootStrategies)
	for i := range min(rootStrategies, g.records) {
		s := g.strategy(label(f.Word()) + fmt.Sprintf(" Strategy Base %d", i+1))
		s.CreatedAt = g.earlyTimestamp()
		s.IsActive = true
		s.Version = "1.0.0"
		roots = append(roots, s)
	}
	if err := save(ctx, g, "strategies", roots); err != nil {
		return 0, err
	}

	children := make([]Strategy, 0, g.records-len(roots))
	for range g.records - len(roots) {
		parent := datagen.Maybe(f, 0.3, func() uuid.UUID {
			return datagen.Choose(f, roots).StrategyID
		})
		version := "1.0.0"
		if parent != nil {
			version = fmt.Sprintf("1.%d.%d", f.Int(1, 9), f.Int(0, 9))
		}

		s := g.strategy(label(f.Word(), f.Word(), "Strategy"))
		s.CreatedAt = f.Timestamp()
		s.IsActive = f.Chance(0.8)
		s.Version = version
		s.ParentStrategyID = parent
		s.DeprecatedAt = g.maybeTime(0.1)
		children = append(children, s)
	}
	if err := save(ctx, g, "strategies", children); err != nil {
		return 0, err
	}

	g.strategies = append(roots, children...)
	return len(g.strategies), nil
}

// strategy fills the columns shared by root and derived strategies.
func (g *Generator) strategy(name string) Strategy {
	f := g.faker
	return Strategy{
		StrategyID:            f.UUID(),
		Name:                  datagen.Truncate(name, 100),
		Description:           f.Paragraph(),
		Type:                  datagen.Choose(f, strategyTypes),
		DefaultParameters:     payload.Of(g.defaultParameters()),
		Creator:               datagen.Truncate(f.Name(), 100),
		PerformanceSummary:    payload.Of(g.performanceSummary()),
		RiskLevel:             datagen.Choose(f, riskLevels),
		Category:              datagen.Choose(f, []string{"TECHNICAL", "FUNDAMENTAL", "HYBRID"}),
		Subcategory:           datagen.Choose(f, []string{"INTRADAY", "SWING", "POSITION", "ALGORITHMIC"}),
		MinCapitalRequired:    f.Decimal(1000, 50000, 2),
		MaxDrawdownLimit:      f.Decimal(10, 30, 2),
		RecommendedTimeframes: datagen.Sample(f, timeframes, f.Int(1, 5)),
		SuitableInstruments:   datagen.Sample(f, instrumentTypes, f.Int(1, 5)),
		AlgorithmType:         datagen.Choose(f, algorithmTypes),
		ComplexityScore:       f.Int(1, 10),
		ExecutionFrequency:    datagen.Choose(f, []string{"HIGH", "MEDIUM", "LOW"}),
		RegulatoryApproval:    f.Bool(),
		ComplianceNotes:       g.maybeText(0.3, 2000, f.Paragraph),
		LastAuditDate:         g.maybeTime(0.5),
		UpdatedAt:             f.Timestamp(),
	}
}

func (g *Generator) defaultParameters() payload.Map {
	f := g.faker
	return payload.Map{
		"rsi_period":         payload.Int(f.Int(7, 21)),
		"ma_fast":            payload.Int(f.Int(5, 20)),
		"ma_slow":            payload.Int(f.Int(21, 50)),
		"stop_loss_pct":      payload.Dec(f.Decimal(0.5, 5, 2)),
		"take_profit_pct":    payload.Dec(f.Decimal(1, 10, 2)),
		"risk_per_trade_pct": payload.Dec(f.Decimal(0.5, 2, 2)),
	}
}

func (g *Generator) performanceSummary() payload.Map {
	f := g.faker
	return payload.Map{
		"win_rate":      payload.Dec(f.Decimal(40, 70, 2)),
		"profit_factor": payload.Dec(f.Decimal(1, 3, 2)),
		"sharpe_ratio":  payload.Dec(f.Decimal(0.5, 2.5, 2)),
		"max_drawdown":  payload.Dec(f.Decimal(5, 30, 2)),
	}
}

// jitter scales every numeric parameter by a random factor in [0.8, 1.2].
// Integers stay at least 1 and decimals keep their scale. Keys are visited
// in sorted order so a seeded run draws the same factors.
func (g *Generator) jitter(params payload.Map) payload.Map {
	out := make(payload.Map, len(params)+3)
	for _, k := range slices.Sorted(maps.Keys(params)) {
		switch v := params[k].(type) {
		case payload.Int:
			variation := g.faker.Float64(0.8, 1.2)
			out[k] = payload.Int(max(1, int64(float64(v)*variation)))
		case payload.Float:
			variation := g.faker.Float64(0.8, 1.2)
			out[k] = payload.Float(math.Round(float64(v)*variation*100) / 100)
		case payload.Decimal:
			variation := decimal.NewFromFloat(g.faker.Float64(0.8, 1.2))
			out[k] = payload.Dec(v.Mul(variation).Round(-v.Exponent()))
		default:
			out[k] = v
		}
	}
	return out
}

func (g *Generator) generateStrategyConfigs(ctx context.Context) (int, error) {
	if err := need("users", len(g.users)); err != nil {
		return 0, err
	}
	if err := need("strategies", len(g.strategies)); err != nil {
		return 0, err
	}
	f := g.faker
	n := 2 * g.records

	configs := make([]StrategyConfig, 0, n)
	for range n {
		user := datagen.Choose(f, g.users)
		strategy := datagen.Choose(f, g.strategies)

		var params payload.Map
		if base, ok := strategy.DefaultParameters.V.(payload.Map); ok {
			params = g.jitter(base)
		} else {
			params = payload.Map{}
		}
		params["enabled"] = payload.Bool(f.Bool())
		params["filter_news"] = payload.Bool(f.Bool())
		params["max_trades_per_day"] = payload.Int(f.Int(1, 20))

		c := StrategyConfig{
			ConfigID:    f.UUID(),
			UserID:      user.UserID,
			StrategyID:  strategy.StrategyID,
			Parameters:  payload.Of(params),
			CreatedAt:   f.Timestamp(),
			UpdatedAt:   f.Timestamp(),
			IsActive:    f.Chance(0.8),
			Name:        datagen.Truncate(strategy.Name+" - "+user.Username+" Config", 100),
			Description: g.maybeText(0.5, 2000, f.Paragraph),
		}
		if f.Chance(0.5) {
			c.PerformanceSummary = payload.Of(g.performanceSummary())
		}
		c.IsFavorite = f.Bool()
		c.RiskTolerance = f.Decimal(1, 9, 2)
		c.MaxPositionSize = f.Decimal(0.01, 10, 8)
		c.StopLossPercentage = f.Decimal(1, 5, 2)
		c.TakeProfitPercentage = f.Decimal(2, 10, 2)
		c.IsPaperTrading = f.Bool()
		c.LiveTradingApproved = f.Bool()
		c.LiveTradingApprovalDate = g.maybeTime(0.3)
		c.ApprovedBy = datagen.Maybe(f, 0.3, func() uuid.UUID {
			return datagen.Choose(f, g.users).UserID
		})

		configs = append(configs, c)
	}

	if err := save(ctx, g, "strategy_configs", configs); err != nil {
		return 0, err
	}
	g.configs = configs
	return len(configs), nil
}

// configsByStrategy groups config ids by strategy in generation order.
func (g *Generator) configsByStrategy() map[uuid.UUID][]uuid.UUID {
	out := make(map[uuid.UUID][]uuid.UUID)
	for _, c := range g.configs {
		out[c.StrategyID] = append(out[c.StrategyID], c.ConfigID)
	}
	return out
}

func (g *Generator) generateStrategyPerformance(ctx context.Context) (int, error) {
	if err := need("strategies", len(g.strategies)); err != nil {
		return 0, err
	}
	if err := need("financial_instruments", len(g.instruments)); err != nil {
		return 0, err
	}
	f := g.faker
	byStrategy := g.configsByStrategy()
	n := 2 * g.records

	perf := make([]StrategyPerformance, 0, n)
	for range n {
		strategy := datagen.Choose(f, g.strategies)
		var configID *uuid.UUID
		if ids := byStrategy[strategy.StrategyID]; len(ids) > 0 {
			configID = datagen.Ptr(datagen.Choose(f, ids))
		}
		var dataID *uuid.UUID
		if len(g.bars) > 0 {
			dataID = datagen.Maybe(f, 0.5, func() uuid.UUID {
				return datagen.Choose(f, g.bars).DataID
			})
		}
		start := f.Timestamp()
		winRate := f.Decimal(20, 80, 2)
		total := f.Int(50, 500)
		winning := int(decimal.NewFromInt(int64(total)).Mul(winRate).Div(hundred).IntPart())

		p := StrategyPerformance{
			PerformanceID: f.UUID(),
			StrategyID:    strategy.StrategyID,
			ConfigID:      configID,
			DataID:        dataID,
			InstrumentID:  datagen.Choose(f, g.instruments).InstrumentID,
			PeriodStart:   start,
			PeriodEnd:     g.afterDays(start, 30, 365),
			Timeframe:     datagen.Choose(f, timeframes),
			WinRate:       winRate,
			ProfitFactor:  f.Decimal(0.5, 3, 4),
			MaxDrawdown:   f.Decimal(1, 40, 2),
			SharpeRatio:   f.Decimal(-1, 3, 4),
			TotalTrades:   total,
			WinningTrades: winning,
			LosingTrades:  total - winning,
			AvgProfitLoss: f.Decimal(-10, 50, 8),
			AvgWin:        f.Decimal(10, 100, 8),
			AvgLoss:       f.Decimal(-100, -10, 8),
		}
		p.MarketCondition = g.maybeChoice(0.5, marketConditions)
		p.SortinoRatio = g.maybeDecimal(0.5, -1, 3, 4)
		p.CalmarRatio = g.maybeDecimal(0.5, -1, 3, 4)
		p.SterlingRatio = g.maybeDecimal(0.5, -1, 3, 4)
		p.InformationRatio = g.maybeDecimal(0.5, -1, 3, 4)
		p.TreynorRatio = g.maybeDecimal(0.5, -1, 3, 4)
		p.LargestWin = g.maybeDecimal(0.5, 100, 1000, 8)
		p.LargestLoss = g.maybeDecimal(0.5, -1000, -100, 8)
		p.AvgTradeDurationHours = g.maybeDecimal(0.5, 0.1, 72, 2)
		p.MedianTradeDurationHours = g.maybeDecimal(0.5, 0.1, 48, 2)
		p.ConsecutiveWins = g.maybeInt(0.5, 1, 10)
		p.ConsecutiveLosses = g.maybeInt(0.5, 1, 10)
		p.MaxConsecutiveWins = g.maybeInt(0.5, 3, 15)
		p.MaxConsecutiveLosses = g.maybeInt(0.5, 3, 15)
		p.ValueAtRisk95 = g.maybeDecimal(0.5, 100, 1000, 8)
		p.ExpectedShortfall = g.maybeDecimal(0.5, 150, 1500, 8)
		p.MaximumAdverseExcursion = g.maybeDecimal(0.5, 100, 1000, 8)
		p.MaximumFavorableExcursion = g.maybeDecimal(0.5, 100, 1000, 8)
		p.TotalReturn = g.maybeDecimal(0.5, -20, 100, 4)
		p.AnnualizedReturn = g.maybeDecimal(0.5, -10, 50, 4)
		if f.Chance(0.5) {
			p.MonthlyReturns = payload.Of(payload.Map{
				"1": payload.Float(0.02),
				"2": payload.Float(-0.01),
				"3": payload.Float(0.03),
			})
		}
		p.ReturnVolatility = g.maybeDecimal(0.5, 1, 30, 4)
		p.DownsideDeviation = g.maybeDecimal(0.5, 1, 20, 4)
		p.AvgPositionSize = g.maybeDecimal(0.5, 100, 10000, 8)
		p.MaxPositionSize = g.maybeDecimal(0.5, 1000, 20000, 8)
		p.PositionSizeVolatility = g.maybeDecimal(0.5, 1, 20, 4)
		p.KellyCriterion = g.maybeDecimal(0.5, 0.1, 0.5, 2)
		p.CalculatedAt = f.Now()
		p.CalculationVersion = datagen.Maybe(f, 0.5, func() string { return "1.0" })

		perf = append(perf, p)
	}

	if err := save(ctx, g, "strategy_performance", perf); err != nil {
		return 0, err
	}
	g.stratPerf = perf
	return len(perf), nil
}
