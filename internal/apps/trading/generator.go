package trading

import (
	"context"
	"errors"
	"fmt"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/pgEdge/pgedge-tradegen/internal/apps"
	"github.com/pgEdge/pgedge-tradegen/internal/datagen"
	"github.com/pgEdge/pgedge-tradegen/internal/db"
	"github.com/pgEdge/pgedge-tradegen/internal/logging"
)

// DefaultRecords is the base record count when none is configured.
const DefaultRecords = 100

// ErrEmptyParent is returned when a stage needs parent records that an
// earlier stage did not produce.
var ErrEmptyParent = errors.New("no parent records")

// Generator populates the trading schema. Batches produced by each stage
// are kept so later stages can resolve foreign keys against them.
type Generator struct {
	faker   *datagen.Faker
	store   db.Store
	records int
	atomic  bool
	hook    apps.BatchHook

	users         []User
	roles         []Role
	userRoles     []UserRole
	instruments   []Instrument
	bars          []MarketBar
	conditions    []MarketCondition
	indicators    []TechnicalIndicator
	accounts      []Account
	strategies    []Strategy
	configs       []StrategyConfig
	stratPerf     []StrategyPerformance
	portfolios    []Portfolio
	allocations   []PortfolioAllocation
	holdings      []PortfolioHolding
	portfolioPerf []PortfolioPerformance
	trades        []Trade
	executions    []TradeExecution
	preferences   []UserPreference
	subscriptions []Subscription
	alerts        []Alert
	auditLogs     []AuditLog
	metrics       []HealthMetric
	jobs          []AutomatedJob

	counts  []apps.TableCount
	pending []batch
}

// batch is a saved table held back from the hook until an atomic run
// commits.
type batch struct {
	table   string
	records any
}

// NewGenerator creates a generator writing to store.
func NewGenerator(store db.Store, cfg apps.GeneratorConfig) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
		logging.Info().Uint64("seed", seed).Msg("Using random seed")
	}
	faker := datagen.NewFakerWithSeed(seed)
	start, end := faker.Window()
	if !cfg.Start.IsZero() {
		start = cfg.Start
	}
	if !cfg.End.IsZero() {
		end = cfg.End
	}
	faker.SetWindow(start, end)

	records := cfg.Records
	if records <= 0 {
		records = DefaultRecords
	}

	return &Generator{
		faker:   faker,
		store:   store,
		records: records,
		atomic:  cfg.Atomic,
		hook:    cfg.OnBatch,
	}
}

// Seed returns the seed driving this generator.
func (g *Generator) Seed() uint64 {
	return g.faker.Seed()
}

type stage struct {
	table string
	run   func(ctx context.Context) (int, error)
}

// stages lists the generation steps in dependency order.
func (g *Generator) stages() []stage {
	return []stage{
		{"users", g.generateUsers},
		{"roles", g.generateRoles},
		{"user_roles", g.generateUserRoles},
		{"financial_instruments", g.generateInstruments},
		{"market_data", g.generateMarketData},
		{"market_conditions", g.generateMarketConditions},
		{"technical_indicators", g.generateTechnicalIndicators},
		{"accounts", g.generateAccounts},
		{"strategies", g.generateStrategies},
		{"strategy_configs", g.generateStrategyConfigs},
		{"strategy_performance", g.generateStrategyPerformance},
		{"portfolios", g.generatePortfolios},
		{"portfolio_allocations", g.generatePortfolioAllocations},
		{"portfolio_holdings", g.generatePortfolioHoldings},
		{"portfolio_performance", g.generatePortfolioPerformance},
		{"trades", g.generateTrades},
		{"trade_executions", g.generateTradeExecutions},
		{"user_preferences", g.generateUserPreferences},
		{"subscriptions", g.generateSubscriptions},
		{"alerts", g.generateAlerts},
		{"audit_log", g.generateAuditLogs},
		{"system_health_metrics", g.generateHealthMetrics},
		{"automated_jobs", g.generateAutomatedJobs},
	}
}

// Run resets the schema and executes every stage in order. On failure the
// in-flight batch is rolled back and no summary is returned.
func (g *Generator) Run(ctx context.Context) (*apps.Summary, error) {
	started := time.Now()

	logging.Info().
		Uint64("seed", g.Seed()).
		Int("records", g.records).
		Bool("atomic", g.atomic).
		Msg("Generating trading data")

	if err := g.reset(ctx); err != nil {
		g.rollback(ctx)
		return nil, fmt.Errorf("failed to reset schema: %w", err)
	}

	stages := g.stages()
	progress := datagen.NewProgressReporter(len(stages))
	g.counts = g.counts[:0]
	g.pending = nil

	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			g.rollback(ctx)
			return nil, err
		}
		n, err := s.run(ctx)
		if err != nil {
			g.rollback(ctx)
			err = pkgerrors.WithStack(err)
			logging.Error().Stack().Err(err).Str("table", s.table).Msg("Stage failed")
			return nil, fmt.Errorf("failed to generate %s: %w", s.table, err)
		}
		g.counts = append(g.counts, apps.TableCount{Table: s.table, Rows: n})
		progress.Update(s.table, n)
	}

	if g.atomic {
		if err := g.store.Commit(ctx); err != nil {
			g.rollback(ctx)
			return nil, err
		}
		if err := g.flush(); err != nil {
			return nil, err
		}
	}
	progress.Done()

	return g.summary(time.Since(started)), nil
}

func (g *Generator) reset(ctx context.Context) error {
	if err := g.store.DropSchema(ctx, schema); err != nil {
		return err
	}
	if err := g.store.CreateSchema(ctx, schema); err != nil {
		return err
	}
	if g.atomic {
		return nil
	}
	return g.store.Commit(ctx)
}

func (g *Generator) rollback(ctx context.Context) {
	g.pending = nil
	if err := g.store.Rollback(ctx); err != nil {
		logging.Warn().Err(err).Msg("Rollback failed")
	}
}

// save bulk-inserts records into table and commits unless the run is
// atomic. In an atomic run the batch is passed to the hook only after the
// final commit.
func save[T any](ctx context.Context, g *Generator, table string, records []T) error {
	rows, err := db.Rows(records)
	if err != nil {
		return err
	}
	n, err := g.store.BulkInsert(ctx, table, db.Columns[T](), rows)
	if err != nil {
		return err
	}
	if !g.atomic {
		if err := g.store.Commit(ctx); err != nil {
			return err
		}
	}

	log := logging.Stage(table)
	log.Debug().Int64("rows", n).Msg("Inserted batch")

	switch {
	case g.hook == nil:
		return nil
	case g.atomic:
		g.pending = append(g.pending, batch{table: table, records: records})
		return nil
	default:
		return g.hook(table, records)
	}
}

// flush hands the batches held during an atomic run to the hook in the
// order they were saved.
func (g *Generator) flush() error {
	pending := g.pending
	g.pending = nil
	for _, b := range pending {
		if err := g.hook(b.table, b.records); err != nil {
			return fmt.Errorf("failed to export %s: %w", b.table, err)
		}
	}
	return nil
}

// need fails with ErrEmptyParent when a parent batch is empty.
func need(name string, n int) error {
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyParent, name)
	}
	return nil
}
