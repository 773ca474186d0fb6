package trading

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pgEdge/pgedge-tradegen/internal/datagen"
	"github.com/pgEdge/pgedge-tradegen/internal/datagen/payload"
)

type userStrategy struct {
	user, strategy uuid.UUID
}

// tradeRefs indexes parent batches for trade generation.
type tradeRefs struct {
	accounts map[uuid.UUID]Account
	bars     map[uuid.UUID][]MarketBar
	configs  map[userStrategy][]uuid.UUID
}

func (g *Generator) tradeRefs() tradeRefs {
	refs := tradeRefs{
		accounts: make(map[uuid.UUID]Account),
		bars:     make(map[uuid.UUID][]MarketBar),
		configs:  make(map[userStrategy][]uuid.UUID),
	}
	for _, a := range g.accounts {
		if _, ok := refs.accounts[a.UserID]; !ok {
			refs.accounts[a.UserID] = a
		}
	}
	for _, b := range g.bars {
		refs.bars[b.InstrumentID] = append(refs.bars[b.InstrumentID], b)
	}
	for _, c := range g.configs {
		k := userStrategy{c.UserID, c.StrategyID}
		refs.configs[k] = append(refs.configs[k], c.ConfigID)
	}
	return refs
}

// generateTrades writes trades through the user's first account when the
// user has one. Closed trades get an exit after the entry and a P&L net of
// commission.
func (g *Generator) generateTrades(ctx context.Context) (int, error) {
	if err := need("users", len(g.users)); err != nil {
		return 0, err
	}
	if err := need("accounts", len(g.accounts)); err != nil {
		return 0, err
	}
	if err := need("financial_instruments", len(g.instruments)); err != nil {
		return 0, err
	}
	f := g.faker
	refs := g.tradeRefs()
	n := 3 * g.records

	trades := make([]Trade, 0, n)
	for range n {
		user := datagen.Choose(f, g.users)
		account, ok := refs.accounts[user.UserID]
		if !ok {
			account = datagen.Choose(f, g.accounts)
		}
		instrument := datagen.Choose(f, g.instruments)

		var strategyID, configID *uuid.UUID
		if len(g.strategies) > 0 {
			strategyID = datagen.Maybe(f, 0.7, func() uuid.UUID {
				return datagen.Choose(f, g.strategies).StrategyID
			})
		}
		if strategyID != nil {
			if ids := refs.configs[userStrategy{user.UserID, *strategyID}]; len(ids) > 0 {
				configID = datagen.Ptr(datagen.Choose(f, ids))
			}
		}

		var dataID *uuid.UUID
		var entry decimal.Decimal
		if bars := refs.bars[instrument.InstrumentID]; len(bars) > 0 {
			bar := datagen.Choose(f, bars)
			dataID = datagen.Ptr(bar.DataID)
			entry = bar.ClosePrice
		} else {
			entry = f.Decimal(10, 1000, 2)
		}

		t := Trade{
			TradeID:      f.UUID(),
			UserID:       user.UserID,
			InstrumentID: instrument.InstrumentID,
			DataID:       dataID,
			StrategyID:   strategyID,
			ConfigID:     configID,
			Direction:    datagen.Choose(f, tradeDirections),
			EntryPrice:   entry,
			Status:       datagen.Choose(f, tradeStatuses),
			EntryTime:    f.Timestamp(),
			AccountID:    account.AccountID,
		}
		closed := t.Status == "CLOSED"
		if closed {
			t.ExitTime = datagen.Ptr(f.TimestampIn(t.EntryTime.Add(time.Second), t.EntryTime.Add(30*day)))
		}
		g.priceTrade(&t, closed)

		t.Notes = g.maybeText(0.3, 2000, f.Paragraph)
		if f.Chance(0.5) {
			t.Tags = datagen.Sample(f, tradeTags, f.Int(0, 3))
		}
		t.OrderType = datagen.Choose(f, orderTypes)
		t.TimeInForce = datagen.Choose(f, timeInForce)
		t.LeverageUsed = datagen.Maybe(f, 0.5, func() decimal.Decimal {
			return decimal.NewFromInt(datagen.Choose(f, leverageChoices))
		})
		if account.AccountType == "MARGIN" {
			leverage := account.LeverageRatio
			if leverage.IsZero() {
				leverage = decimal.NewFromInt(1)
			}
			t.MarginUsed = datagen.Ptr(t.Volume.Mul(entry).Div(leverage).Round(8))
		}
		if t.StopLoss != nil && t.TakeProfit != nil {
			t.RiskRewardRatio = datagen.Ptr(f.Decimal(0.5, 3, 2))
		}
		if t.StopLoss != nil {
			t.MaxRiskAmount = datagen.Ptr(t.Volume.Mul(entry.Sub(*t.StopLoss).Abs()).Round(8))
		}
		t.PositionSizePercentage = f.Decimal(1, 10, 2)
		t.EntryReason = g.maybeText(0.5, 2000, f.Paragraph)
		if closed {
			t.ExitReason = g.maybeText(0.5, 2000, f.Paragraph)
		}
		t.MarketConditionAtEntry = datagen.Choose(f, marketConditions)
		t.VolatilityAtEntry = f.Decimal(0.5, 5, 4)
		t.CreatedAt = t.EntryTime
		t.UpdatedAt = t.EntryTime
		if t.ExitTime != nil {
			t.UpdatedAt = *t.ExitTime
		}

		trades = append(trades, t)
	}

	if err := save(ctx, g, "trades", trades); err != nil {
		return 0, err
	}
	g.trades = trades
	return len(trades), nil
}

// priceTrade sets the protective levels, volume, commission and, for
// closed trades, the exit price and P&L. Levels sit on the protective side
// of the entry for the trade's direction.
func (g *Generator) priceTrade(t *Trade, closed bool) {
	f := g.faker
	entry := t.EntryPrice
	buy := t.Direction == "BUY"

	var stop, target, win, loss func(decimal.Decimal) decimal.Decimal
	if buy {
		stop, target, win, loss = minus, plus, plus, minus
	} else {
		stop, target, win, loss = plus, minus, minus, plus
	}

	t.StopLoss = datagen.Maybe(f, 0.8, func() decimal.Decimal {
		return scale(entry, stop(f.Decimal(0.01, 0.05, 8)), 8)
	})
	t.TakeProfit = datagen.Maybe(f, 0.8, func() decimal.Decimal {
		return scale(entry, target(f.Decimal(0.02, 0.1, 8)), 8)
	})
	if closed {
		var exit decimal.Decimal
		if f.Chance(0.5) {
			exit = scale(entry, win(f.Decimal(0.005, 0.08, 8)), 8)
		} else {
			exit = scale(entry, loss(f.Decimal(0.005, 0.04, 8)), 8)
		}
		t.ExitPrice = &exit
	}

	t.Volume = f.Decimal(0.01, 10, 8)
	t.Commission = t.Volume.Mul(entry).Mul(f.Decimal(0.0001, 0.002, 8)).Round(8)

	if t.ExitPrice == nil {
		return
	}
	exit := *t.ExitPrice
	one := decimal.NewFromInt(1)
	if buy {
		t.ProfitLoss = datagen.Ptr(exit.Sub(entry).Mul(t.Volume).Sub(t.Commission).Round(8))
		t.ProfitLossPercentage = datagen.Ptr(exit.Div(entry).Sub(one).Mul(hundred).Round(4))
	} else {
		t.ProfitLoss = datagen.Ptr(entry.Sub(exit).Mul(t.Volume).Sub(t.Commission).Round(8))
		t.ProfitLossPercentage = datagen.Ptr(entry.Div(exit).Sub(one).Mul(hundred).Round(4))
	}
}

var orderRoutes = []string{"SOR", "DMA", "SMART"}

// generateTradeExecutions writes fills near the trade's entry price.
// Partial fills execute only part of the trade volume.
func (g *Generator) generateTradeExecutions(ctx context.Context) (int, error) {
	if err := need("trades", len(g.trades)); err != nil {
		return 0, err
	}
	f := g.faker
	n := 2 * g.records

	executions := make([]TradeExecution, 0, n)
	for range n {
		trade := datagen.Choose(f, g.trades)
		status := datagen.Choose(f, executionStatuses)
		at := trade.EntryTime.Add(time.Duration(f.Int(50, 5000)) * time.Millisecond)
		price := scale(trade.EntryPrice, f.Decimal(0.995, 1.005, 8), 8)
		volume := trade.Volume
		if status == "PARTIAL" {
			volume = scale(trade.Volume, f.Decimal(0.1, 0.9, 8), 8)
		}

		e := TradeExecution{
			ExecutionID:     f.UUID(),
			TradeID:         trade.TradeID,
			ExecutionStatus: status,
			ExecutionTime:   at,
			ExecutedPrice:   price,
			ExecutedVolume:  volume,
		}
		e.BrokerReference = datagen.Maybe(f, 0.7, func() string { return "BR-" + f.Bothify("??####") })
		if f.Chance(0.5) {
			e.ExecutionDetails = payload.Of(payload.Map{
				"order_id":          payload.String(f.UUID().String()),
				"exchange_order_id": payload.String(f.Bothify("EX-########")),
			})
		}
		e.LatencyMS = f.Int(5, 500)
		e.BrokerCommission = datagen.Maybe(f, 0.7, func() decimal.Decimal {
			return price.Mul(volume).Mul(f.Decimal(0.0001, 0.0025, 8)).Round(8)
		})
		e.Slippage = datagen.Maybe(f, 0.5, func() decimal.Decimal {
			return price.Sub(trade.EntryPrice).Abs()
		})
		e.ExecutionVenue = g.maybeChoice(0.7, executionVenues)
		e.ExecutionAlgorithm = g.maybeChoice(0.3, executionAlgorithms)
		e.MarketImpact = g.priceShare(price, 0.3, 0.0001, 0.001)
		e.ImplementationShortfall = g.priceShare(price, 0.3, 0.0001, 0.002)
		e.OrderRoute = datagen.Maybe(f, 0.3, func() string {
			return datagen.Choose(f, executionVenues) + " via " + datagen.Choose(f, orderRoutes)
		})
		e.ExecutionQualityScore = g.maybeDecimal(0.5, 1, 5, 2)
		e.PriceImprovement = g.priceShare(price, 0.3, -0.001, 0.001)
		e.MiFIDTransactionID = datagen.Maybe(f, 0.2, func() string { return "MIFID-" + f.Bothify("########") })
		if f.Chance(0.2) {
			e.RegulatoryFlags = payload.Of(payload.Map{
				"reportable":              payload.Bool(f.Bool()),
				"post_trade_transparency": payload.Bool(f.Bool()),
			})
		}
		e.CreatedAt = at

		executions = append(executions, e)
	}

	if err := save(ctx, g, "trade_executions", executions); err != nil {
		return 0, err
	}
	g.executions = executions
	return len(executions), nil
}

// priceShare returns, with probability p, a random fraction of price.
func (g *Generator) priceShare(price decimal.Decimal, p, lo, hi float64) *decimal.Decimal {
	return datagen.Maybe(g.faker, p, func() decimal.Decimal {
		return scale(price, g.faker.Decimal(lo, hi, 8), 8)
	})
}
