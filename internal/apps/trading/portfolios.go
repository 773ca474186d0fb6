package trading

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pgEdge/pgedge-tradegen/internal/datagen"
)

// rootPortfolios is how many top-level portfolios are written first.
const rootPortfolios = 10

var portfolioStatuses = []string{"ACTIVE", "PENDING", "CLOSED", "ARCHIVED"}

// periodLengths maps a performance period type to its length.
var periodLengths = map[string]time.Duration{
	"DAILY":     day,
	"WEEKLY":    7 * day,
	"MONTHLY":   30 * day,
	"QUARTERLY": 90 * day,
	"YEARLY":    365 * day,
}

func (g *Generator) generatePortfolios(ctx context.Context) (int, error) {
	if err := need("users", len(g.users)); err != nil {
		return 0, err
	}
	if err := need("financial_instruments", len(g.instruments)); err != nil {
		return 0, err
	}
	f := g.faker

	roots := make([]Portfolio, 0, rootPortfolios)
	for i := range min(rootPortfolios, g.records) {
		p := g.portfolio(fmt.Sprintf("Main Portfolio %d", i+1), f.Decimal(10000, 1_000_000, 2))
		p.CreatedAt = g.earlyTimestamp()
		p.IsActive = true
		p.Status = "ACTIVE"
		p.InceptionDate = g.earlyTimestamp()
		p.UpdatedAt = f.Timestamp()
		roots = append(roots, p)
	}
	if err := save(ctx, g, "portfolios", roots); err != nil {
		return 0, err
	}

	children := make([]Portfolio, 0, g.records-len(roots))
	for range g.records - len(roots) {
		parent := datagen.Maybe(f, 0.3, func() uuid.UUID {
			return datagen.Choose(f, roots).PortfolioID
		})
		p := g.portfolio(label(f.Word(), "Portfolio"), f.Decimal(1000, 100000, 2))
		p.CreatedAt = f.Timestamp()
		p.IsActive = f.Chance(0.8)
		p.ParentPortfolioID = parent
		p.Status = datagen.Choose(f, portfolioStatuses)
		p.InceptionDate = f.Timestamp()
		p.ClosureDate = g.maybeTime(0.2)
		p.UpdatedAt = f.Timestamp()
		children = append(children, p)
	}
	if err := save(ctx, g, "portfolios", children); err != nil {
		return 0, err
	}

	g.portfolios = append(roots, children...)
	return len(g.portfolios), nil
}

// portfolio fills the limits and fees shared by every portfolio.
func (g *Generator) portfolio(name string, capital decimal.Decimal) Portfolio {
	f := g.faker
	return Portfolio{
		PortfolioID:             f.UUID(),
		UserID:                  datagen.Choose(f, g.users).UserID,
		Name:                    datagen.Truncate(name, 100),
		Description:             f.Paragraph(),
		InitialCapital:          capital,
		Currency:                datagen.Choose(f, currencies),
		RiskProfile:             datagen.Choose(f, riskLevels),
		TargetReturn:            f.Decimal(5, 20, 2),
		MaxDrawdownLimit:        f.Decimal(10, 30, 2),
		RebalancingFrequency:    datagen.Choose(f, rebalancingFrequencies),
		AutoRebalance:           f.Bool(),
		RebalanceThreshold:      f.Decimal(2, 10, 2),
		ManagementFee:           f.Decimal(0, 2, 4),
		PerformanceFee:          f.Decimal(0, 20, 2),
		MaxPositionSize:         f.Decimal(5, 20, 2),
		MaxSectorAllocation:     f.Decimal(20, 40, 2),
		MaxCorrelationThreshold: f.Decimal(0.5, 0.9, 2),
		InvestmentStyle:         datagen.Choose(f, investmentStyles),
		InvestmentHorizon:       datagen.Choose(f, investmentHorizons),
		BenchmarkInstrumentID:   datagen.Choose(f, g.instruments).InstrumentID,
	}
}

func (g *Generator) generatePortfolioAllocations(ctx context.Context) (int, error) {
	if err := need("portfolios", len(g.portfolios)); err != nil {
		return 0, err
	}
	f := g.faker
	byStrategy := g.configsByStrategy()
	n := 2 * g.records

	allocations := make([]PortfolioAllocation, 0, n)
	for range n {
		portfolio := datagen.Choose(f, g.portfolios)

		var strategyID, configID *uuid.UUID
		if len(g.strategies) > 0 {
			strategyID = datagen.Maybe(f, 0.8, func() uuid.UUID {
				return datagen.Choose(f, g.strategies).StrategyID
			})
		}
		if strategyID != nil {
			if ids := byStrategy[*strategyID]; len(ids) > 0 {
				configID = datagen.Maybe(f, 0.7, func() uuid.UUID { return datagen.Choose(f, ids) })
			}
		}

		share := f.Decimal(1, 100, 2)
		amount := portfolio.InitialCapital.Mul(share).Div(hundred).Round(2)

		a := PortfolioAllocation{
			AllocationID:         f.UUID(),
			PortfolioID:          portfolio.PortfolioID,
			StrategyID:           strategyID,
			ConfigID:             configID,
			AllocationPercentage: share,
			AllocationAmount:     amount,
			UpdatedAt:            f.Timestamp(),
			IsActive:             f.Chance(0.9),
		}
		a.Notes = g.maybeText(0.3, 2000, f.Paragraph)
		a.PerformanceContribution = g.maybeDecimal(0.5, -10, 30, 2)
		a.AllocationType = g.maybeChoice(0.7, allocationTypes)
		a.MinAllocation = g.maybeDecimal(0.5, 1, 50, 2)
		a.MaxAllocation = g.maybeDecimal(0.5, 51, 100, 2)
		a.TargetVolatility = g.maybeDecimal(0.5, 1, 20, 2)
		a.RebalanceTolerance = g.maybeDecimal(0.5, 1, 5, 2)
		a.LastRebalancedAt = g.maybeTime(0.5)
		a.RebalanceFrequency = g.maybeChoice(0.5, rebalancingFrequencies[:4])
		a.InceptionDate = f.Timestamp()
		a.InceptionValue = amount
		a.CurrentValue = scale(amount, f.Decimal(0.8, 1.3, 2), 2)
		a.UnrealizedPnL = scale(amount, f.Decimal(-0.2, 0.3, 2), 2)
		a.RealizedPnL = datagen.Maybe(f, 0.5, func() decimal.Decimal {
			return scale(amount, f.Decimal(-0.1, 0.2, 2), 2)
		})

		allocations = append(allocations, a)
	}

	if err := save(ctx, g, "portfolio_allocations", allocations); err != nil {
		return 0, err
	}
	g.allocations = allocations
	return len(allocations), nil
}

// generatePortfolioHoldings writes positions whose market value and
// unrealized P&L follow from quantity, cost and price.
func (g *Generator) generatePortfolioHoldings(ctx context.Context) (int, error) {
	if err := need("portfolios", len(g.portfolios)); err != nil {
		return 0, err
	}
	if err := need("financial_instruments", len(g.instruments)); err != nil {
		return 0, err
	}
	f := g.faker
	now := f.Now()
	n := 3 * g.records

	holdings := make([]PortfolioHolding, 0, n)
	for range n {
		portfolio := datagen.Choose(f, g.portfolios)
		instrument := datagen.Choose(f, g.instruments)
		var strategyID *uuid.UUID
		if len(g.strategies) > 0 {
			strategyID = datagen.Maybe(f, 0.7, func() uuid.UUID {
				return datagen.Choose(f, g.strategies).StrategyID
			})
		}

		qty := f.Decimal(1, 1000, 8)
		cost := f.Decimal(10, 1000, 8)
		price := scale(cost, f.Decimal(0.7, 1.3, 8), 8)
		basis := qty.Mul(cost)
		value := qty.Mul(price).Round(2)
		unrealized := value.Sub(basis).Round(2)
		first := f.Timestamp()

		h := PortfolioHolding{
			HoldingID:               f.UUID(),
			PortfolioID:             portfolio.PortfolioID,
			InstrumentID:            instrument.InstrumentID,
			StrategyID:              strategyID,
			Quantity:                qty,
			AverageCost:             cost,
			CurrentPrice:            price,
			MarketValue:             value,
			UnrealizedPnL:           unrealized,
			UnrealizedPnLPercentage: unrealized.Div(basis).Mul(hundred).Round(4),
			WeightPercentage:        f.Decimal(1, 100, 2),
			FirstPurchaseDate:       first,
			LastTransactionDate:     g.afterDays(first, 1, 365),
			DaysHeld:                int(now.Sub(first) / day),
		}
		h.PositionBeta = g.maybeDecimal(0.5, 0.5, 1.5, 4)
		h.PositionVolatility = g.maybeDecimal(0.5, 0.1, 5, 4)
		h.VaRContribution = datagen.Maybe(f, 0.5, func() decimal.Decimal {
			return scale(value, f.Decimal(0.01, 0.1, 2), 2)
		})
		h.TargetWeight = g.maybeDecimal(0.5, 1, 100, 2)
		h.DeviationFromTarget = g.maybeDecimal(0.5, -10, 10, 2)
		h.RebalanceNeeded = g.maybeBool(0.5)
		h.AsOfDate = now
		h.CreatedAt = first
		h.UpdatedAt = now

		holdings = append(holdings, h)
	}

	if err := save(ctx, g, "portfolio_holdings", holdings); err != nil {
		return 0, err
	}
	g.holdings = holdings
	return len(holdings), nil
}

func (g *Generator) generatePortfolioPerformance(ctx context.Context) (int, error) {
	if err := need("portfolios", len(g.portfolios)); err != nil {
		return 0, err
	}
	f := g.faker
	n := 3 * g.records

	perf := make([]PortfolioPerformance, 0, n)
	for range n {
		portfolio := datagen.Choose(f, g.portfolios)
		periodType := datagen.Choose(f, periodTypes)
		start := f.Timestamp()
		capital := portfolio.InitialCapital
		current := scale(capital, f.Decimal(0.8, 1.5, 2), 2)
		pl := current.Sub(capital)
		ret := pl.Div(capital).Mul(hundred).Round(4)

		p := PortfolioPerformance{
			PerformanceID:    f.UUID(),
			PortfolioID:      portfolio.PortfolioID,
			PeriodStart:      start,
			PeriodEnd:        start.Add(periodLengths[periodType]),
			CurrentValue:     current,
			ProfitLoss:       pl,
			ReturnPercentage: ret,
			PeriodType:       periodType,
		}
		of := func(prob, lo, hi float64) *decimal.Decimal {
			return datagen.Maybe(f, prob, func() decimal.Decimal {
				return scale(current, f.Decimal(lo, hi, 2), 2)
			})
		}

		p.SharpeRatio = g.maybeDecimal(0.7, -2, 4, 4)
		p.MaxDrawdown = g.maybeDecimal(0.7, 0, 50, 2)
		p.Volatility = g.maybeDecimal(0.7, 0.1, 30, 4)
		p.Alpha = g.maybeDecimal(0.5, -5, 5, 4)
		p.Beta = g.maybeDecimal(0.5, 0.5, 1.5, 4)
		p.CalmarRatio = g.maybeDecimal(0.5, -2, 4, 4)
		p.SortinoRatio = g.maybeDecimal(0.5, -2, 4, 4)
		p.MarketCorrelation = g.maybeDecimal(0.5, -1, 1, 2)
		p.TreynorRatio = g.maybeDecimal(0.5, -2, 4, 4)
		p.InformationRatio = g.maybeDecimal(0.5, -2, 4, 4)
		p.TrackingError = g.maybeDecimal(0.5, 0, 10, 4)
		p.UpCaptureRatio = g.maybeDecimal(0.5, 0, 150, 4)
		p.DownCaptureRatio = g.maybeDecimal(0.5, 0, 150, 4)
		p.WinRate = g.maybeDecimal(0.5, 0, 100, 2)
		p.ProfitFactor = g.maybeDecimal(0.5, 0, 3, 4)
		p.VaR95 = of(0.5, 0.01, 0.1)
		p.VaR99 = of(0.5, 0.03, 0.2)
		p.ExpectedShortfall = of(0.5, 0.05, 0.3)
		if pl.IsPositive() {
			p.RealizedGains = scale(pl, f.Decimal(0.5, 0.8, 2), 2)
			p.UnrealizedGains = scale(pl, f.Decimal(0.2, 0.5, 2), 2)
		}
		p.DividendsReceived = of(0.3, 0.01, 0.05)
		p.FeesPaid = of(0.5, 0.001, 0.01)
		p.TaxesPaid = of(0.3, 0.001, 0.05)
		p.TradingDays = g.maybeInt(0.5, 1, 252)
		p.NumberOfTrades = g.maybeInt(0.5, 0, 100)
		p.AverageTradeSize = g.maybeDecimal(0.5, 100, 10000, 2)
		p.LargestWin = g.maybeDecimal(0.5, 100, 5000, 2)
		p.LargestLoss = g.maybeDecimal(0.5, -5000, -100, 2)
		p.BenchmarkReturn = g.maybeDecimal(0.5, -10, 20, 4)
		p.ExcessReturn = datagen.Maybe(f, 0.5, func() decimal.Decimal {
			return ret.Sub(f.Decimal(-10, 20, 4))
		})
		p.RelativePerformance = g.maybeDecimal(0.5, -10, 10, 4)
		p.MaximumLeverageUsed = g.maybeDecimal(0.3, 1, 5, 2)
		p.AverageLeverage = g.maybeDecimal(0.3, 1, 3, 2)

		divisor := decimal.NewFromInt(10)
		if f.Chance(0.5) {
			divisor = f.Decimal(5, 20, 4)
		}
		p.RiskAdjustedReturn = ret.Div(divisor).Round(4)
		p.CalculatedAt = f.Now()

		perf = append(perf, p)
	}

	if err := save(ctx, g, "portfolio_performance", perf); err != nil {
		return 0, err
	}
	g.portfolioPerf = perf
	return len(perf), nil
}
