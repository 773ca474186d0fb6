package trading

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pgEdge/pgedge-tradegen/internal/datagen"
	"github.com/pgEdge/pgedge-tradegen/internal/datagen/payload"
)

// barsPerTimeframe caps how many timeframes each instrument gets bars for.
const barsPerTimeframe = 3

// timeframeSteps is the spacing between consecutive bars of a timeframe.
var timeframeSteps = map[string]time.Duration{
	"M1":  time.Minute,
	"M5":  5 * time.Minute,
	"M15": 15 * time.Minute,
	"M30": 30 * time.Minute,
	"H1":  time.Hour,
	"H4":  4 * time.Hour,
	"D1":  day,
	"W1":  7 * day,
	"MN":  30 * day,
}

func (g *Generator) generateInstruments(ctx context.Context) (int, error) {
	f := g.faker
	instruments := make([]Instrument, 0, g.records)

	for range g.records {
		kind := datagen.Choose(f, instrumentTypes)
		symbol, name := g.symbolFor(kind)
		exchange := datagen.Choose(f, exchanges)

		inst := Instrument{
			InstrumentID: f.UUID(),
			Symbol:       symbol,
			Name:         datagen.Truncate(name, 100),
			Type:         kind,
			Exchange:     exchange,
			Currency:     datagen.Choose(f, currencies),
			IsActive:     f.Chance(0.9),
			Description:  f.Text(),
			Sector:       datagen.Choose(f, sectors),
			Country:      datagen.Choose(f, countries),
			LotSize:      decimal.New(1, int32(f.Int(-8, 3))),
			MinTick:      decimal.New(1, int32(f.Int(-8, -2))),
			TradingHours: tradingHours(kind),
		}

		switch kind {
		case "FOREX", "FUTURES", "OPTIONS":
			inst.MarginRequirements = datagen.Ptr(f.Decimal(0.01, 0.5, 2))
		}

		inst.ISIN = g.maybeText(0.5, 12, func() string { return f.RandomString(12, alphanumeric) })
		inst.CUSIP = g.maybeText(0.5, 9, func() string { return f.RandomString(9, alphanumeric) })
		inst.BloombergSymbol = g.maybeText(0.5, 50, func() string { return symbol + " " + exchange })
		inst.ReutersSymbol = g.maybeText(0.5, 50, func() string {
			return symbol + "." + datagen.Choose(f, []string{"O", "N", "L"})
		})

		if kind == "STOCK" {
			inst.MarketCap = datagen.Ptr(f.Int64(1_000_000, 1_000_000_000_000))
		}
		if kind == "STOCK" || kind == "ETF" {
			inst.AverageVolume = datagen.Ptr(f.Int64(10_000, 10_000_000))
			inst.Beta = datagen.Ptr(f.Decimal(0.5, 2.5, 4))
			inst.DividendYield = datagen.Ptr(f.Decimal(0, 0.1, 2))
		}

		inst.CreatedAt = g.earlyTimestamp()
		inst.UpdatedAt = f.Timestamp()
		inst.DelistedAt = g.maybeTime(0.05)

		instruments = append(instruments, inst)
	}

	if err := save(ctx, g, "financial_instruments", instruments); err != nil {
		return 0, err
	}
	g.instruments = instruments
	return len(instruments), nil
}

// symbolFor draws a ticker and display name shaped like the instrument type.
func (g *Generator) symbolFor(kind string) (string, string) {
	f := g.faker
	switch kind {
	case "FOREX":
		base := datagen.Choose(f, currencies)
		quotes := make([]string, 0, len(currencies)-1)
		for _, c := range currencies {
			if c != base {
				quotes = append(quotes, c)
			}
		}
		symbol := base + "/" + datagen.Choose(f, quotes)
		return symbol, symbol + " Forex Pair"
	case "STOCK":
		symbol := f.RandomString(f.Int(3, 4), upperLetters)
		return symbol, f.Company() + " Inc."
	case "CRYPTO":
		symbol := f.RandomString(f.Int(3, 5), upperLetters)
		return symbol, symbol + " Coin"
	default:
		symbol := f.RandomString(f.Int(3, 5), alphanumeric)
		return symbol, f.Company() + " " + kind
	}
}

func tradingHours(kind string) payload.JSON {
	if kind == "CRYPTO" {
		return payload.Of(payload.Map{"24/7": payload.Bool(true)})
	}
	return payload.Of(payload.Map{
		"open":     payload.String("09:30"),
		"close":    payload.String("16:00"),
		"timezone": payload.String("America/New_York"),
	})
}

// basePrice draws the reference price that an instrument's bars vary
// around.
func (g *Generator) basePrice(kind string) decimal.Decimal {
	switch kind {
	case "FOREX":
		return g.faker.Decimal(0.5, 2, 5)
	case "CRYPTO":
		return g.faker.Decimal(100, 50000, 2)
	case "STOCK":
		return g.faker.Decimal(10, 1000, 2)
	default:
		return g.faker.Decimal(50, 5000, 2)
	}
}

// generateMarketData writes bars for up to three timeframes per
// instrument. The per-timeframe quota spreads roughly five bars per base
// record across all instruments.
func (g *Generator) generateMarketData(ctx context.Context) (int, error) {
	if err := need("financial_instruments", len(g.instruments)); err != nil {
		return 0, err
	}
	f := g.faker
	quota := max(1, 5*g.records/(len(g.instruments)*barsPerTimeframe))

	var bars []MarketBar
	for _, inst := range g.instruments {
		base := g.basePrice(inst.Type)
		for _, tf := range datagen.Sample(f, timeframes, barsPerTimeframe) {
			for i := range quota {
				bars = append(bars, g.bar(inst, tf, base, i))
			}
		}
	}

	if err := save(ctx, g, "market_data", bars); err != nil {
		return 0, err
	}
	g.bars = bars
	return len(bars), nil
}

// bar draws the i-th bar of a series. Bars step backwards in time from a
// random anchor by the timeframe's step.
func (g *Generator) bar(inst Instrument, tf string, base decimal.Decimal, i int) MarketBar {
	f := g.faker
	ts := f.Timestamp().Add(-time.Duration(i) * timeframeSteps[tf])
	v := f.Decimal(0.001, 0.05, 3)
	v2 := v.Mul(decimal.NewFromInt(2)).InexactFloat64()
	vf := v.InexactFloat64()

	closePrice := scale(base, plus(f.Decimal(-vf, vf, 8)), 8)
	high := scale(closePrice, plus(f.Decimal(0, v2, 8)), 8)
	low := scale(closePrice, minus(f.Decimal(0, v2, 8)), 8)
	open := scale(closePrice, plus(f.Decimal(-vf, vf, 8)), 8)
	open, high, low, closePrice = orderBar(open, high, low, closePrice)

	b := MarketBar{
		DataID:       f.UUID(),
		InstrumentID: inst.InstrumentID,
		Timestamp:    ts,
		OpenPrice:    open,
		HighPrice:    high,
		LowPrice:     low,
		ClosePrice:   closePrice,
		Volume:       decimal.NewFromInt(int64(f.Int(100, 1_000_000))),
		Timeframe:    tf,
		DataSource:   datagen.Choose(f, dataSources),
	}
	b.AdjustedClose = datagen.Maybe(f, 0.2, func() decimal.Decimal {
		return scale(closePrice, minus(f.Decimal(0, 0.01, 8)), 8)
	})
	b.Bid = scale(closePrice, minus(f.Decimal(0, 0.0005, 8)), 8)
	b.Ask = scale(closePrice, plus(f.Decimal(0, 0.0005, 8)), 8)
	b.Spread = b.Ask.Sub(b.Bid)
	b.VWAP = scale(closePrice, plus(f.Decimal(-0.001, 0.001, 8)), 8)
	b.NumberOfTrades = f.Int(10, 10000)
	b.PartitionKey = partitionKey(inst.Symbol, tf)
	b.DataQualityScore = f.Decimal(0.7, 1, 2)
	b.IsAdjusted = f.Bool()
	b.HasGaps = f.Bool()
	b.IngestedAt = g.after(ts, time.Second, time.Minute)
	return b
}

// orderBar repairs a bar so that low <= open, close <= high. Out of range
// open and close prices are swapped with the violated bound.
func orderBar(open, high, low, closePrice decimal.Decimal) (decimal.Decimal, decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	if open.GreaterThan(high) {
		open, high = high, open
	}
	if closePrice.GreaterThan(high) {
		closePrice, high = high, closePrice
	}
	if open.LessThan(low) {
		open, low = low, open
	}
	if closePrice.LessThan(low) {
		closePrice, low = low, closePrice
	}
	return open, high, low, closePrice
}

func partitionKey(symbol, tf string) string {
	return datagen.Truncate(symbol+"_"+tf, 50)
}

// instrumentIndex maps instrument ids to their records.
func (g *Generator) instrumentIndex() map[uuid.UUID]Instrument {
	idx := make(map[uuid.UUID]Instrument, len(g.instruments))
	for _, inst := range g.instruments {
		idx[inst.InstrumentID] = inst
	}
	return idx
}

func (g *Generator) generateMarketConditions(ctx context.Context) (int, error) {
	if err := need("financial_instruments", len(g.instruments)); err != nil {
		return 0, err
	}
	f := g.faker
	conditions := make([]MarketCondition, 0, g.records)

	for range g.records {
		inst := datagen.Choose(f, g.instruments)
		kind := datagen.Choose(f, marketConditions)
		start := f.Timestamp()
		end := datagen.Maybe(f, 0.7, func() time.Time { return g.afterDays(start, 1, 30) })

		c := MarketCondition{
			ConditionID:  f.UUID(),
			Name:         datagen.Truncate(kind+" "+inst.Symbol, 50),
			Description:  g.maybeText(0.5, 1000, f.Paragraph),
			StartDate:    start,
			EndDate:      end,
			InstrumentID: inst.InstrumentID,
		}
		if f.Chance(0.5) {
			c.Parameters = payload.Of(payload.Map{
				"threshold":   payload.Float(f.Float64(0.1, 0.9)),
				"window_size": payload.Int(f.Int(14, 200)),
			})
		}
		c.VolatilityLevel = g.maybeDecimal(0.8, 0.1, 5, 2)
		c.TrendDirection = g.maybeChoice(0.8, trendDirections)
		if f.Chance(0.5) {
			c.IndicatorsState = payload.Of(payload.Map{
				"rsi":  payload.Int(f.Int(0, 100)),
				"macd": payload.Float(f.Float64(-2, 2)),
			})
		}
		c.MarketCondition = kind
		c.StrengthScore = g.maybeDecimal(0.7, 50, 100, 2)
		if end != nil {
			c.DurationHours = datagen.Ptr(f.Int(1, 720))
		}
		c.DetectedBy = g.maybeChoice(0.5, []string{"algorithm", "analyst", "system"})
		c.DetectionMethod = g.maybeChoice(0.5, []string{"pattern_recognition", "technical_analysis", "machine_learning"})
		c.ConfidenceScore = g.maybeDecimal(0.7, 50, 100, 2)
		c.CreatedAt = f.Timestamp()

		conditions = append(conditions, c)
	}

	if err := save(ctx, g, "market_conditions", conditions); err != nil {
		return 0, err
	}
	g.conditions = conditions
	return len(conditions), nil
}

// generateTechnicalIndicators derives indicator readings from random bars.
// Band and level values stay anchored to the bar's prices.
func (g *Generator) generateTechnicalIndicators(ctx context.Context) (int, error) {
	if err := need("market_data", len(g.bars)); err != nil {
		return 0, err
	}
	f := g.faker
	symbols := g.instrumentIndex()
	now := f.Now()
	n := 3 * g.records

	indicators := make([]TechnicalIndicator, 0, n)
	for range n {
		bar := datagen.Choose(f, g.bars)
		kind := datagen.Choose(f, indicatorTypes)
		params, values := g.indicatorReading(kind, bar)
		tf := datagen.Choose(f, timeframes)
		symbol := symbols[bar.InstrumentID].Symbol

		ind := TechnicalIndicator{
			IndicatorID:   f.UUID(),
			DataID:        bar.DataID,
			InstrumentID:  bar.InstrumentID,
			IndicatorType: kind,
			Parameters:    payload.Of(params),
			Values:        payload.Of(values),
			CalculatedAt:  now,
			Timeframe:     tf,
		}
		ind.ValidityPeriod = datagen.Maybe(f, 0.3, func() time.Time { return g.afterDays(now, 1, 30) })
		ind.SignalStrength = g.maybeDecimal(0.5, 0, 100, 2)
		ind.PartitionKey = datagen.Maybe(f, 0.5, func() string { return partitionKey(symbol, tf) })
		ind.CalculationMethod = g.maybeChoice(0.5, calculationMethods)
		ind.DataPointsUsed = g.maybeInt(0.5, 50, 1000)
		ind.ConfidenceLevel = g.maybeDecimal(0.5, 50, 99, 2)

		indicators = append(indicators, ind)
	}

	if err := save(ctx, g, "technical_indicators", indicators); err != nil {
		return 0, err
	}
	g.indicators = indicators
	return len(indicators), nil
}

func (g *Generator) indicatorReading(kind string, bar MarketBar) (payload.Map, payload.Map) {
	f := g.faker
	switch kind {
	case "RSI":
		return payload.Map{"period": payload.Int(f.Int(7, 21))},
			payload.Map{
				"value":       payload.Int(f.Int(0, 100)),
				"signal_line": payload.Int(f.Int(20, 80)),
			}
	case "MACD":
		return payload.Map{
				"fast_period":   payload.Int(f.Int(8, 12)),
				"slow_period":   payload.Int(f.Int(21, 26)),
				"signal_period": payload.Int(f.Int(7, 9)),
			},
			payload.Map{
				"macd_line":   payload.Dec(f.Decimal(-2, 2, 4)),
				"signal_line": payload.Dec(f.Decimal(-2, 2, 4)),
				"histogram":   payload.Dec(f.Decimal(-1, 1, 4)),
			}
	case "BOLLINGER_BANDS":
		c := bar.ClosePrice
		return payload.Map{
				"period":  payload.Int(f.Int(14, 30)),
				"std_dev": payload.Float(datagen.Choose(f, []float64{1.5, 2, 2.5, 3})),
			},
			payload.Map{
				"upper_band":  payload.Dec(f.DecimalBetween(pct(c, 101), pct(c, 105), 8)),
				"middle_band": payload.Dec(c),
				"lower_band":  payload.Dec(f.DecimalBetween(pct(c, 95), pct(c, 99), 8)),
			}
	default:
		return payload.Map{"period": payload.Int(f.Int(5, 200))},
			payload.Map{"value": payload.Dec(f.DecimalBetween(pct(bar.LowPrice, 90), pct(bar.HighPrice, 110), 8))}
	}
}

// pct returns p percent of d.
func pct(d decimal.Decimal, p int64) decimal.Decimal {
	return d.Mul(decimal.NewFromInt(p)).Div(hundred)
}
