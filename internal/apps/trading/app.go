//-------------------------------------------------------------------------
//
// pgEdge Trade Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package trading

import (
	"context"

	"github.com/pgEdge/pgedge-tradegen/internal/apps"
	"github.com/pgEdge/pgedge-tradegen/internal/db"
)

// AppName is the registry name of the trading data set.
const AppName = "trading"

// App implements the trading platform data set.
type App struct{}

// New creates a new trading application.
func New() *App {
	return &App{}
}

// Name returns the application name.
func (a *App) Name() string {
	return AppName
}

// Description returns a human-readable description.
func (a *App) Description() string {
	return "Trading platform - users, accounts, instruments, OHLC market data, " +
		"strategies, portfolios, trades and executions with consistent P&L"
}

// Tables returns the schema in creation order.
func (a *App) Tables() []db.Table {
	return schema
}

// Generate resets the schema and populates it.
func (a *App) Generate(ctx context.Context, store db.Store, cfg apps.GeneratorConfig) (*apps.Summary, error) {
	return NewGenerator(store, cfg).Run(ctx)
}

// Checks returns the foreign key checks plus the domain invariants.
func (a *App) Checks() []apps.Check {
	return append(apps.ForeignKeyChecks(schema), domainChecks...)
}

var domainChecks = []apps.Check{
	{
		Name:        "market_data_ohlc",
		Description: "low <= open, close <= high for every bar",
		Query: `SELECT count(*) FROM market_data
WHERE low_price > LEAST(open_price, close_price)
   OR high_price < GREATEST(open_price, close_price)`,
	},
	{
		Name:        "market_data_timeframes",
		Description: "at most three timeframes per instrument",
		Query: `SELECT count(*) FROM (
    SELECT instrument_id FROM market_data
    GROUP BY instrument_id
    HAVING count(DISTINCT timeframe) > 3
) t`,
	},
	{
		Name:        "account_available_balance",
		Description: "0 <= available_balance <= balance",
		Query: `SELECT count(*) FROM accounts
WHERE available_balance < 0 OR available_balance > balance`,
	},
	{
		Name:        "closed_trade_exit",
		Description: "closed trades exit after they enter",
		Query: `SELECT count(*) FROM trades
WHERE status = 'CLOSED'
  AND (exit_time IS NULL OR exit_price IS NULL OR exit_time <= entry_time)`,
	},
	{
		Name:        "closed_trade_pnl",
		Description: "closed trade P&L is the price move times volume less commission",
		Query: `SELECT count(*) FROM trades
WHERE status = 'CLOSED'
  AND abs(profit_loss - (
        CASE WHEN direction = 'BUY' THEN exit_price - entry_price
             ELSE entry_price - exit_price END * volume - commission)) > 0.000001`,
	},
	{
		Name:        "open_trade_pnl",
		Description: "trades that are not closed have no exit or P&L",
		Query: `SELECT count(*) FROM trades
WHERE status <> 'CLOSED'
  AND (exit_time IS NOT NULL OR exit_price IS NOT NULL OR profit_loss IS NOT NULL)`,
	},
	{
		Name:        "execution_volume",
		Description: "executions never fill more than the trade volume",
		Query: `SELECT count(*) FROM trade_executions e
JOIN trades t ON t.trade_id = e.trade_id
WHERE e.executed_volume > t.volume`,
	},
	{
		Name:        "user_preference_cardinality",
		Description: "every user has exactly one preference row",
		Query: `SELECT count(*) FROM users u
WHERE (SELECT count(*) FROM user_preferences p WHERE p.user_id = u.user_id) <> 1`,
	},
	{
		Name:        "strategy_hierarchy_depth",
		Description: "strategy parents are roots",
		Query: `SELECT count(*) FROM strategies c
JOIN strategies p ON p.strategy_id = c.parent_strategy_id
WHERE p.parent_strategy_id IS NOT NULL`,
	},
	{
		Name:        "portfolio_hierarchy_depth",
		Description: "portfolio parents are roots",
		Query: `SELECT count(*) FROM portfolios c
JOIN portfolios p ON p.portfolio_id = c.parent_portfolio_id
WHERE p.parent_portfolio_id IS NOT NULL`,
	},
	{
		Name:        "indicator_bar_instrument",
		Description: "indicators belong to their bar's instrument",
		Query: `SELECT count(*) FROM technical_indicators i
JOIN market_data m ON m.data_id = i.data_id
WHERE m.instrument_id <> i.instrument_id`,
	},
}

func init() {
	apps.Register(New())
}
