package trading

import (
	"bytes"
	"context"
	"errors"
	"maps"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgEdge/pgedge-tradegen/internal/apps"
	"github.com/pgEdge/pgedge-tradegen/internal/datagen/payload"
	"github.com/pgEdge/pgedge-tradegen/internal/db"
	"github.com/pgEdge/pgedge-tradegen/internal/logging"
)

var (
	testStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	testEnd   = time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
)

func testConfig(seed uint64) apps.GeneratorConfig {
	return apps.GeneratorConfig{
		Seed:    seed,
		Records: 100,
		Start:   testStart,
		End:     testEnd,
	}
}

// run generates a full data set into a fresh store.
func run(t *testing.T, cfg apps.GeneratorConfig) (*Generator, *db.MemStore, *apps.Summary) {
	t.Helper()
	store := db.NewMemStore()
	g := NewGenerator(store, cfg)
	summary, err := g.Run(context.Background())
	require.NoError(t, err)
	return g, store, summary
}

func TestGenerateCounts(t *testing.T) {
	_, store, summary := run(t, testConfig(42))

	assert.Equal(t, 100, store.Count("users"))
	assert.Equal(t, 5, store.Count("roles"))
	assert.GreaterOrEqual(t, store.Count("user_roles"), 100)
	assert.Equal(t, 100, store.Count("financial_instruments"))
	assert.GreaterOrEqual(t, store.Count("market_data"), 300)
	assert.Equal(t, 300, store.Count("technical_indicators"))
	assert.GreaterOrEqual(t, store.Count("accounts"), 100)
	assert.Equal(t, 100, store.Count("strategies"))
	assert.Equal(t, 200, store.Count("strategy_configs"))
	assert.Equal(t, 0, store.Count("backtest_results"))
	assert.Equal(t, 100, store.Count("portfolios"))
	assert.Equal(t, 300, store.Count("trades"))
	assert.Equal(t, 200, store.Count("trade_executions"))
	assert.Equal(t, 100, store.Count("user_preferences"))
	assert.Equal(t, 20, store.Count("automated_jobs"))

	assert.Equal(t, AppName, summary.App)
	assert.EqualValues(t, 42, summary.Seed)
	assert.Len(t, summary.Tables, 23)

	total := 0
	for _, name := range store.Tables() {
		total += store.Count(name)
	}
	assert.Equal(t, total, summary.Rows())
}

func TestMarketDataShape(t *testing.T) {
	g, _, _ := run(t, testConfig(7))

	perInstrument := make(map[uuid.UUID]map[string]bool)
	for _, b := range g.bars {
		assert.True(t, b.LowPrice.LessThanOrEqual(b.OpenPrice), "low <= open")
		assert.True(t, b.LowPrice.LessThanOrEqual(b.ClosePrice), "low <= close")
		assert.True(t, b.HighPrice.GreaterThanOrEqual(b.OpenPrice), "high >= open")
		assert.True(t, b.HighPrice.GreaterThanOrEqual(b.ClosePrice), "high >= close")
		assert.True(t, b.Ask.GreaterThanOrEqual(b.Bid))
		assert.True(t, b.Spread.Equal(b.Ask.Sub(b.Bid)))
		assert.True(t, b.IngestedAt.After(b.Timestamp))

		if perInstrument[b.InstrumentID] == nil {
			perInstrument[b.InstrumentID] = make(map[string]bool)
		}
		perInstrument[b.InstrumentID][b.Timeframe] = true
	}
	for id, tfs := range perInstrument {
		assert.LessOrEqual(t, len(tfs), barsPerTimeframe, "instrument %s", id)
	}
}

func TestOrderBar(t *testing.T) {
	d := decimal.RequireFromString
	tests := []struct {
		name                   string
		open, high, low, close string
	}{
		{"valid", "10", "12", "9", "11"},
		{"open above high", "13", "12", "9", "11"},
		{"open below low", "8", "12", "9", "11"},
		{"close above high", "10", "12", "9", "14"},
		{"close below low", "10", "12", "9", "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, h, l, c := orderBar(d(tt.open), d(tt.high), d(tt.low), d(tt.close))
			assert.True(t, l.LessThanOrEqual(o))
			assert.True(t, l.LessThanOrEqual(c))
			assert.True(t, h.GreaterThanOrEqual(o))
			assert.True(t, h.GreaterThanOrEqual(c))
		})
	}
}

func TestTradeInvariants(t *testing.T) {
	g, _, summary := run(t, testConfig(11))

	accounts := make(map[uuid.UUID]bool)
	for _, a := range g.accounts {
		accounts[a.AccountID] = true
	}

	closed := 0
	for _, tr := range g.trades {
		assert.True(t, accounts[tr.AccountID])
		if tr.Status != "CLOSED" {
			assert.Nil(t, tr.ExitTime)
			assert.Nil(t, tr.ExitPrice)
			assert.Nil(t, tr.ProfitLoss)
			continue
		}
		closed++
		require.NotNil(t, tr.ExitTime)
		require.NotNil(t, tr.ExitPrice)
		require.NotNil(t, tr.ProfitLoss)
		assert.True(t, tr.ExitTime.After(tr.EntryTime))

		move := tr.ExitPrice.Sub(tr.EntryPrice)
		if tr.Direction == "SELL" {
			move = move.Neg()
		}
		want := move.Mul(tr.Volume).Sub(tr.Commission).Round(8)
		assert.True(t, want.Equal(*tr.ProfitLoss), "trade %s: want %s got %s", tr.TradeID, want, tr.ProfitLoss)

		if tr.StopLoss != nil {
			if tr.Direction == "BUY" {
				assert.True(t, tr.StopLoss.LessThan(tr.EntryPrice))
			} else {
				assert.True(t, tr.StopLoss.GreaterThan(tr.EntryPrice))
			}
		}
	}
	require.Positive(t, closed)

	names := make(map[string]float64)
	for _, m := range summary.Totals {
		names[m.Name] = m.Value
	}
	assert.EqualValues(t, closed, names["closed_trades"])
	assert.Contains(t, names, "pnl_mean")
	assert.Contains(t, names, "pnl_stddev")
}

func TestExecutionsWithinTradeVolume(t *testing.T) {
	g, _, _ := run(t, testConfig(12))

	trades := make(map[uuid.UUID]Trade)
	for _, tr := range g.trades {
		trades[tr.TradeID] = tr
	}
	eps := decimal.New(1, -8)
	partial := 0
	for _, e := range g.executions {
		tr, ok := trades[e.TradeID]
		require.True(t, ok)
		assert.True(t, e.ExecutedVolume.LessThanOrEqual(tr.Volume))

		if e.ExecutionStatus == "PARTIAL" {
			partial++
			lo := tr.Volume.Mul(decimal.RequireFromString("0.1")).Sub(eps)
			hi := tr.Volume.Mul(decimal.RequireFromString("0.9")).Add(eps)
			assert.True(t, e.ExecutedVolume.GreaterThanOrEqual(lo), "partial %s of %s", e.ExecutedVolume, tr.Volume)
			assert.True(t, e.ExecutedVolume.LessThanOrEqual(hi), "partial %s of %s", e.ExecutedVolume, tr.Volume)
		} else {
			assert.True(t, e.ExecutedVolume.Equal(tr.Volume), "%s execution volume %s, trade %s",
				e.ExecutionStatus, e.ExecutedVolume, tr.Volume)
		}

		delay := e.ExecutionTime.Sub(tr.EntryTime)
		assert.GreaterOrEqual(t, delay, 50*time.Millisecond)
		assert.LessOrEqual(t, delay, 5*time.Second)
	}
	assert.NotZero(t, partial)
}

func TestTradeAccountBelongsToUser(t *testing.T) {
	g, _, _ := run(t, testConfig(21))

	owner := make(map[uuid.UUID]uuid.UUID)
	holders := make(map[uuid.UUID]bool)
	for _, a := range g.accounts {
		owner[a.AccountID] = a.UserID
		holders[a.UserID] = true
	}
	checked := 0
	for _, tr := range g.trades {
		accountOwner, ok := owner[tr.AccountID]
		require.True(t, ok, "trade %s has unknown account", tr.TradeID)
		if holders[tr.UserID] {
			checked++
			assert.Equal(t, tr.UserID, accountOwner, "trade %s", tr.TradeID)
		}
	}
	assert.NotZero(t, checked)
}

func TestMarginUsage(t *testing.T) {
	g, _, _ := run(t, testConfig(22))

	accounts := make(map[uuid.UUID]Account)
	for _, a := range g.accounts {
		accounts[a.AccountID] = a
	}
	margin := 0
	for _, tr := range g.trades {
		a := accounts[tr.AccountID]
		if a.AccountType != "MARGIN" {
			assert.Nil(t, tr.MarginUsed, "%s account", a.AccountType)
			continue
		}
		margin++
		leverage := a.LeverageRatio
		if leverage.IsZero() {
			leverage = decimal.NewFromInt(1)
		}
		want := tr.Volume.Mul(tr.EntryPrice).Div(leverage).Round(8)
		require.NotNil(t, tr.MarginUsed)
		assert.True(t, want.Equal(*tr.MarginUsed), "margin %s, want %s", tr.MarginUsed, want)
	}
	assert.NotZero(t, margin)
}

func sortedKeys(m payload.Map) []string {
	return slices.Sorted(maps.Keys(m))
}

func TestIndicatorPayloads(t *testing.T) {
	g, _, _ := run(t, testConfig(23))

	tests := map[string]struct {
		params []string
		values []string
	}{
		"RSI":             {[]string{"period"}, []string{"signal_line", "value"}},
		"MACD":            {[]string{"fast_period", "signal_period", "slow_period"}, []string{"histogram", "macd_line", "signal_line"}},
		"BOLLINGER_BANDS": {[]string{"period", "std_dev"}, []string{"lower_band", "middle_band", "upper_band"}},
	}
	generic := struct{ params, values []string }{[]string{"period"}, []string{"value"}}

	seen := make(map[string]bool)
	for _, ind := range g.indicators {
		seen[ind.IndicatorType] = true
		params, ok := ind.Parameters.V.(payload.Map)
		require.True(t, ok, "%s parameters", ind.IndicatorType)
		values, ok := ind.Values.V.(payload.Map)
		require.True(t, ok, "%s values", ind.IndicatorType)

		want, ok := tests[ind.IndicatorType]
		if !ok {
			want = generic
		}
		assert.Equal(t, want.params, sortedKeys(params), ind.IndicatorType)
		assert.Equal(t, want.values, sortedKeys(values), ind.IndicatorType)

		if ind.IndicatorType == "BOLLINGER_BANDS" {
			upper := values["upper_band"].(payload.Decimal)
			middle := values["middle_band"].(payload.Decimal)
			lower := values["lower_band"].(payload.Decimal)
			assert.True(t, upper.GreaterThanOrEqual(middle.Decimal), "upper %s < middle %s", upper, middle)
			assert.True(t, middle.GreaterThanOrEqual(lower.Decimal), "middle %s < lower %s", middle, lower)
		}
	}
	for kind := range tests {
		assert.True(t, seen[kind], "no %s indicators generated", kind)
	}
}

func TestStrategyConfigParameters(t *testing.T) {
	g, _, _ := run(t, testConfig(24))

	strategies := make(map[uuid.UUID]Strategy)
	for _, s := range g.strategies {
		strategies[s.StrategyID] = s
	}
	for _, c := range g.configs {
		params, ok := c.Parameters.V.(payload.Map)
		require.True(t, ok)
		base, ok := strategies[c.StrategyID].DefaultParameters.V.(payload.Map)
		require.True(t, ok)

		assert.Len(t, params, len(base)+3)
		assert.IsType(t, payload.Bool(false), params["enabled"])
		assert.IsType(t, payload.Bool(false), params["filter_news"])
		require.IsType(t, payload.Int(0), params["max_trades_per_day"])
		trades := params["max_trades_per_day"].(payload.Int)
		assert.GreaterOrEqual(t, int64(trades), int64(1))
		assert.LessOrEqual(t, int64(trades), int64(20))

		for k, v := range base {
			got, ok := params[k]
			require.True(t, ok, "missing %s", k)
			require.IsType(t, v, got, k)

			switch v := v.(type) {
			case payload.Int:
				lo := max(1, int64(math.Floor(0.8*float64(v))))
				hi := max(1, int64(math.Ceil(1.2*float64(v))))
				n := int64(got.(payload.Int))
				assert.True(t, n >= lo && n <= hi, "%s = %d, base %d", k, n, v)
			case payload.Float:
				f := float64(got.(payload.Float))
				assert.True(t, f >= 0.8*float64(v)-0.01 && f <= 1.2*float64(v)+0.01, "%s = %v, base %v", k, f, v)
			case payload.Decimal:
				d := got.(payload.Decimal)
				unit := decimal.New(1, v.Exponent())
				lo := v.Mul(decimal.RequireFromString("0.8")).Sub(unit)
				hi := v.Mul(decimal.RequireFromString("1.2")).Add(unit)
				assert.True(t, d.GreaterThanOrEqual(lo) && d.LessThanOrEqual(hi), "%s = %s, base %s", k, d, v)
				assert.Equal(t, v.Exponent(), d.Exponent(), "%s keeps its scale", k)
			}
		}
	}
}

func TestAccountBalances(t *testing.T) {
	g, _, _ := run(t, testConfig(3))
	for _, a := range g.accounts {
		assert.False(t, a.AvailableBalance.IsNegative())
		assert.True(t, a.AvailableBalance.LessThanOrEqual(a.Balance))
	}
}

func TestOnePreferencePerUser(t *testing.T) {
	g, _, _ := run(t, testConfig(5))

	seen := make(map[uuid.UUID]int)
	for _, p := range g.preferences {
		seen[p.UserID]++
	}
	assert.Len(t, seen, len(g.users))
	for id, n := range seen {
		assert.Equal(t, 1, n, "user %s", id)
	}
}

func TestHierarchiesAreShallow(t *testing.T) {
	g, _, _ := run(t, testConfig(9))

	strategies := make(map[uuid.UUID]Strategy)
	for _, s := range g.strategies {
		strategies[s.StrategyID] = s
	}
	for _, s := range g.strategies {
		if s.ParentStrategyID == nil {
			continue
		}
		parent := strategies[*s.ParentStrategyID]
		assert.Nil(t, parent.ParentStrategyID)
		assert.NotEqual(t, "1.0.0", s.Version)
	}

	portfolios := make(map[uuid.UUID]Portfolio)
	for _, p := range g.portfolios {
		portfolios[p.PortfolioID] = p
	}
	for _, p := range g.portfolios {
		if p.ParentPortfolioID != nil {
			assert.Nil(t, portfolios[*p.ParentPortfolioID].ParentPortfolioID)
		}
	}
}

func TestUserRolesUnique(t *testing.T) {
	g, _, _ := run(t, testConfig(13))

	type pair struct{ u, r uuid.UUID }
	seen := make(map[pair]bool)
	withRole := make(map[uuid.UUID]bool)
	for _, ur := range g.userRoles {
		p := pair{ur.UserID, ur.RoleID}
		assert.False(t, seen[p])
		seen[p] = true
		withRole[ur.UserID] = true
	}
	assert.Len(t, withRole, len(g.users))
}

func TestSeedIsReproducible(t *testing.T) {
	_, a, _ := run(t, testConfig(99))
	_, b, _ := run(t, testConfig(99))
	_, c, _ := run(t, testConfig(100))

	for _, table := range []string{"users", "market_data", "strategy_configs", "trades", "alerts"} {
		assert.Equal(t, a.Rows(table), b.Rows(table), table)
	}
	assert.NotEqual(t, a.Rows("trades"), c.Rows("trades"))
}

func TestRerunReplacesData(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemStore()
	app := New()

	_, err := app.Generate(ctx, store, testConfig(1))
	require.NoError(t, err)
	first := store.Count("trades")

	_, err = app.Generate(ctx, store, testConfig(2))
	require.NoError(t, err)
	assert.Equal(t, first, store.Count("trades"))
	assert.Equal(t, 100, store.Count("users"))
}

// failingStore fails every insert into one table.
type failingStore struct {
	*db.MemStore
	table string
}

func (s *failingStore) BulkInsert(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	if table == s.table {
		return 0, errors.New("injected failure")
	}
	return s.MemStore.BulkInsert(ctx, table, columns, rows)
}

func TestFailureRollsBack(t *testing.T) {
	ctx := context.Background()

	t.Run("atomic", func(t *testing.T) {
		store := &failingStore{MemStore: db.NewMemStore(), table: "trades"}
		cfg := testConfig(4)
		cfg.Atomic = true

		summary, err := NewGenerator(store, cfg).Run(ctx)
		require.Error(t, err)
		assert.Nil(t, summary)
		assert.Contains(t, err.Error(), "failed to generate trades")
		assert.Zero(t, store.Count("users"))
		assert.Zero(t, store.Count("accounts"))
	})

	t.Run("atomic export", func(t *testing.T) {
		store := &failingStore{MemStore: db.NewMemStore(), table: "trades"}
		cfg := testConfig(4)
		cfg.Atomic = true
		var exported []string
		cfg.OnBatch = func(table string, records any) error {
			exported = append(exported, table)
			return nil
		}

		_, err := NewGenerator(store, cfg).Run(ctx)
		require.Error(t, err)
		assert.Empty(t, exported, "no batch should be exported from a rolled back run")
	})

	t.Run("per stage", func(t *testing.T) {
		store := &failingStore{MemStore: db.NewMemStore(), table: "trades"}

		_, err := NewGenerator(store, testConfig(4)).Run(ctx)
		require.Error(t, err)
		assert.Equal(t, 100, store.Count("users"))
		assert.Zero(t, store.Count("trades"))
		assert.Zero(t, store.Count("trade_executions"))
	})
}

func TestStageFailureLogsStack(t *testing.T) {
	var buf bytes.Buffer
	logging.Init(logging.Config{Level: "info", Output: &buf})
	defer logging.Init(logging.DefaultConfig())

	store := &failingStore{MemStore: db.NewMemStore(), table: "accounts"}
	_, err := NewGenerator(store, testConfig(8)).Run(context.Background())
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"Stage failed"`)
	assert.Contains(t, out, `"table":"accounts"`)
	assert.Contains(t, out, `"stack":[`)
	assert.Contains(t, out, `"func":"(*Generator).Run"`)
}

func TestMissingParents(t *testing.T) {
	g := NewGenerator(db.NewMemStore(), testConfig(1))
	_, err := g.generateTrades(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyParent)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGenerator(db.NewMemStore(), testConfig(1)).Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBatchHook(t *testing.T) {
	var tables []string
	cfg := testConfig(6)
	cfg.OnBatch = func(table string, records any) error {
		tables = append(tables, table)
		return nil
	}
	run(t, cfg)

	require.NotEmpty(t, tables)
	assert.Equal(t, "users", tables[0])
	assert.Equal(t, "automated_jobs", tables[len(tables)-1])
	assert.Contains(t, tables, "trades")

	cfg.OnBatch = func(string, any) error { return errors.New("stop") }
	_, err := NewGenerator(db.NewMemStore(), cfg).Run(context.Background())
	require.Error(t, err)
}

func TestBatchHookAtomic(t *testing.T) {
	store := db.NewMemStore()
	var tables []string
	cfg := testConfig(6)
	cfg.Atomic = true
	cfg.OnBatch = func(table string, records any) error {
		assert.Equal(t, 100, store.Count("users"), "%s exported before commit", table)
		tables = append(tables, table)
		return nil
	}

	_, err := NewGenerator(store, cfg).Run(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, tables)
	assert.Equal(t, "users", tables[0])
	assert.Equal(t, "automated_jobs", tables[len(tables)-1])

	cfg.OnBatch = func(string, any) error { return errors.New("disk full") }
	_, err = NewGenerator(db.NewMemStore(), cfg).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to export users")
}

func TestDefaults(t *testing.T) {
	g := NewGenerator(db.NewMemStore(), apps.GeneratorConfig{Seed: 5})
	assert.Equal(t, DefaultRecords, g.records)
	assert.EqualValues(t, 5, g.Seed())

	g = NewGenerator(db.NewMemStore(), apps.GeneratorConfig{})
	assert.NotZero(t, g.Seed())
}
