//-------------------------------------------------------------------------
//
// pgEdge Trade Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package trading implements the trading platform data set: users and
// accounts, instruments and market data, strategies, portfolios, trades and
// the operational records around them.
package trading

import (
	"github.com/pgEdge/pgedge-tradegen/internal/db"
)

// schema lists every table in creation order. backtest_results is created
// but never populated.
var schema = []db.Table{
	{
		Name:       "users",
		PrimaryKey: []string{"user_id"},
		DDL: `
CREATE TABLE users (
    user_id               UUID PRIMARY KEY,
    username              VARCHAR(50) NOT NULL UNIQUE,
    email                 VARCHAR(100) NOT NULL UNIQUE,
    password_hash         VARCHAR(255) NOT NULL,
    full_name             VARCHAR(100) NOT NULL,
    created_at            TIMESTAMPTZ NOT NULL,
    last_login            TIMESTAMPTZ,
    user_type             VARCHAR NOT NULL,
    account_status        VARCHAR NOT NULL,
    verification_status   BOOLEAN NOT NULL,
    profile_picture_url   VARCHAR(255),
    two_factor_enabled    BOOLEAN NOT NULL,
    failed_login_attempts INTEGER NOT NULL,
    locked_until          TIMESTAMPTZ,
    password_changed_at   TIMESTAMPTZ,
    email_verified_at     TIMESTAMPTZ,
    last_ip_address       INET,
    timezone              VARCHAR(50)
)`,
	},
	{
		Name:       "roles",
		PrimaryKey: []string{"role_id"},
		DDL: `
CREATE TABLE roles (
    role_id        UUID PRIMARY KEY,
    name           VARCHAR(50) NOT NULL,
    description    TEXT,
    permissions    JSONB,
    is_system_role BOOLEAN NOT NULL,
    created_at     TIMESTAMPTZ NOT NULL
)`,
	},
	{
		Name:       "user_roles",
		PrimaryKey: []string{"user_id", "role_id"},
		ForeignKeys: []db.ForeignKey{
			{Column: "user_id", RefTable: "users", RefColumn: "user_id"},
			{Column: "role_id", RefTable: "roles", RefColumn: "role_id"},
			{Column: "assigned_by", RefTable: "users", RefColumn: "user_id"},
		},
		DDL: `
CREATE TABLE user_roles (
    user_id     UUID NOT NULL REFERENCES users(user_id),
    role_id     UUID NOT NULL REFERENCES roles(role_id),
    assigned_at TIMESTAMPTZ NOT NULL,
    assigned_by UUID NOT NULL REFERENCES users(user_id),
    PRIMARY KEY (user_id, role_id)
)`,
	},
	{
		Name:       "financial_instruments",
		PrimaryKey: []string{"instrument_id"},
		DDL: `
CREATE TABLE financial_instruments (
    instrument_id       UUID PRIMARY KEY,
    symbol              VARCHAR(20) NOT NULL,
    name                VARCHAR(100) NOT NULL,
    type                VARCHAR NOT NULL,
    exchange            VARCHAR(50) NOT NULL,
    currency            VARCHAR(10) NOT NULL,
    is_active           BOOLEAN NOT NULL,
    description         TEXT,
    sector              VARCHAR(100),
    country             VARCHAR(100),
    lot_size            NUMERIC(18,8),
    min_tick            NUMERIC(18,8),
    trading_hours       JSONB,
    margin_requirements NUMERIC(5,2),
    isin                VARCHAR(12),
    cusip               VARCHAR(9),
    bloomberg_symbol    VARCHAR(50),
    reuters_symbol      VARCHAR(50),
    market_cap          BIGINT,
    average_volume      BIGINT,
    beta                NUMERIC(8,4),
    dividend_yield      NUMERIC(5,2),
    created_at          TIMESTAMPTZ NOT NULL,
    updated_at          TIMESTAMPTZ NOT NULL,
    delisted_at         TIMESTAMPTZ
)`,
	},
	{
		Name:       "market_data",
		PrimaryKey: []string{"data_id"},
		ForeignKeys: []db.ForeignKey{
			{Column: "instrument_id", RefTable: "financial_instruments", RefColumn: "instrument_id"},
		},
		DDL: `
CREATE TABLE market_data (
    data_id            UUID PRIMARY KEY,
    instrument_id      UUID NOT NULL REFERENCES financial_instruments(instrument_id),
    "timestamp"        TIMESTAMPTZ NOT NULL,
    open_price         NUMERIC(18,8) NOT NULL,
    high_price         NUMERIC(18,8) NOT NULL,
    low_price          NUMERIC(18,8) NOT NULL,
    close_price        NUMERIC(18,8) NOT NULL,
    volume             NUMERIC(18,8) NOT NULL,
    timeframe          VARCHAR NOT NULL,
    data_source        VARCHAR(50) NOT NULL,
    adjusted_close     NUMERIC(18,8),
    bid                NUMERIC(18,8),
    ask                NUMERIC(18,8),
    spread             NUMERIC(18,8),
    vwap               NUMERIC(18,8),
    number_of_trades   INTEGER,
    partition_key      VARCHAR(50),
    data_quality_score NUMERIC(3,2),
    is_adjusted        BOOLEAN,
    has_gaps           BOOLEAN,
    ingested_at        TIMESTAMPTZ NOT NULL
)`,
	},
	{
		Name:       "market_conditions",
		PrimaryKey: []string{"condition_id"},
		ForeignKeys: []db.ForeignKey{
			{Column: "instrument_id", RefTable: "financial_instruments", RefColumn: "instrument_id"},
		},
		DDL: `
CREATE TABLE market_conditions (
    condition_id     UUID PRIMARY KEY,
    name             VARCHAR(50) NOT NULL,
    description      TEXT,
    parameters       JSONB,
    start_date       TIMESTAMPTZ NOT NULL,
    end_date         TIMESTAMPTZ,
    instrument_id    UUID NOT NULL REFERENCES financial_instruments(instrument_id),
    volatility_level NUMERIC(5,2),
    trend_direction  VARCHAR,
    indicators_state JSONB,
    market_condition VARCHAR NOT NULL,
    strength_score   NUMERIC(5,2),
    duration_hours   INTEGER,
    detected_by      VARCHAR(100),
    detection_method VARCHAR(100),
    confidence_score NUMERIC(5,2),
    created_at       TIMESTAMPTZ NOT NULL
)`,
	},
	{
		Name:       "technical_indicators",
		PrimaryKey: []string{"indicator_id"},
		ForeignKeys: []db.ForeignKey{
			{Column: "data_id", RefTable: "market_data", RefColumn: "data_id"},
			{Column: "instrument_id", RefTable: "financial_instruments", RefColumn: "instrument_id"},
		},
		DDL: `
CREATE TABLE technical_indicators (
    indicator_id       UUID PRIMARY KEY,
    data_id            UUID NOT NULL REFERENCES market_data(data_id),
    instrument_id      UUID NOT NULL REFERENCES financial_instruments(instrument_id),
    indicator_type     VARCHAR(50) NOT NULL,
    parameters         JSONB,
    "values"           JSONB NOT NULL,
    calculated_at      TIMESTAMPTZ NOT NULL,
    timeframe          VARCHAR NOT NULL,
    validity_period    TIMESTAMPTZ,
    signal_strength    NUMERIC(5,2),
    partition_key      VARCHAR(50),
    calculation_method VARCHAR(100),
    data_points_used   INTEGER,
    confidence_level   NUMERIC(5,2)
)`,
	},
	{
		Name:       "accounts",
		PrimaryKey: []string{"account_id"},
		ForeignKeys: []db.ForeignKey{
			{Column: "user_id", RefTable: "users", RefColumn: "user_id"},
		},
		DDL: `
CREATE TABLE accounts (
    account_id        UUID PRIMARY KEY,
    user_id           UUID NOT NULL REFERENCES users(user_id),
    account_number    VARCHAR(50) NOT NULL,
    account_type      VARCHAR NOT NULL,
    currency_code     VARCHAR(3) NOT NULL,
    balance           NUMERIC(15,2) NOT NULL,
    available_balance NUMERIC(15,2) NOT NULL,
    created_at        TIMESTAMPTZ NOT NULL,
    last_updated      TIMESTAMPTZ NOT NULL,
    status            VARCHAR NOT NULL,
    broker_account_id VARCHAR(100),
    leverage_ratio    NUMERIC(10,2),
    margin_call_level NUMERIC(5,2),
    stop_out_level    NUMERIC(5,2),
    credit_limit      NUMERIC(15,2)
)`,
	},
	{
		Name:       "strategies",
		PrimaryKey: []string{"strategy_id"},
		ForeignKeys: []db.ForeignKey{
			{Column: "parent_strategy_id", RefTable: "strategies", RefColumn: "strategy_id"},
		},
		DDL: `
CREATE TABLE strategies (
    strategy_id            UUID PRIMARY KEY,
    name                   VARCHAR(100) NOT NULL,
    description            TEXT,
    type                   VARCHAR(50) NOT NULL,
    created_at             TIMESTAMPTZ NOT NULL,
    is_active              BOOLEAN NOT NULL,
    default_parameters     JSONB,
    version                VARCHAR(20),
    creator                VARCHAR(100),
    performance_summary    JSONB,
    risk_level             VARCHAR NOT NULL,
    parent_strategy_id     UUID REFERENCES strategies(strategy_id),
    category               VARCHAR(50),
    subcategory            VARCHAR(50),
    min_capital_required   NUMERIC(15,2),
    max_drawdown_limit     NUMERIC(5,2),
    recommended_timeframes VARCHAR[],
    suitable_instruments   VARCHAR[],
    algorithm_type         VARCHAR(50),
    complexity_score       INTEGER,
    execution_frequency    VARCHAR(20),
    regulatory_approval    BOOLEAN,
    compliance_notes       TEXT,
    last_audit_date        TIMESTAMPTZ,
    updated_at             TIMESTAMPTZ,
    deprecated_at          TIMESTAMPTZ
)`,
	},
	{
		Name:       "strategy_configs",
		PrimaryKey: []string{"config_id"},
		ForeignKeys: []db.ForeignKey{
			{Column: "user_id", RefTable: "users", RefColumn: "user_id"},
			{Column: "strategy_id", RefTable: "strategies", RefColumn: "strategy_id"},
			{Column: "approved_by", RefTable: "users", RefColumn: "user_id"},
		},
		DDL: `
CREATE TABLE strategy_configs (
    config_id                  UUID PRIMARY KEY,
    user_id                    UUID NOT NULL REFERENCES users(user_id),
    strategy_id                UUID NOT NULL REFERENCES strategies(strategy_id),
    parameters                 JSONB NOT NULL,
    created_at                 TIMESTAMPTZ NOT NULL,
    updated_at                 TIMESTAMPTZ NOT NULL,
    is_active                  BOOLEAN NOT NULL,
    name                       VARCHAR(100),
    description                TEXT,
    performance_summary        JSONB,
    is_favorite                BOOLEAN,
    risk_tolerance             NUMERIC(5,2),
    max_position_size          NUMERIC(18,8),
    stop_loss_percentage       NUMERIC(5,2),
    take_profit_percentage     NUMERIC(5,2),
    is_paper_trading           BOOLEAN,
    live_trading_approved      BOOLEAN,
    live_trading_approval_date TIMESTAMPTZ,
    approved_by                UUID REFERENCES users(user_id)
)`,
	},
	{
		Name:       "backtest_results",
		PrimaryKey: []string{"backtest_id"},
		ForeignKeys: []db.ForeignKey{
			{Column: "strategy_id", RefTable: "strategies", RefColumn: "strategy_id"},
			{Column: "config_id", RefTable: "strategy_configs", RefColumn: "config_id"},
			{Column: "benchmark_instrument_id", RefTable: "financial_instruments", RefColumn: "instrument_id"},
		},
		DDL: `
CREATE TABLE backtest_results (
    backtest_id                    UUID PRIMARY KEY,
    strategy_id                    UUID NOT NULL REFERENCES strategies(strategy_id),
    config_id                      UUID NOT NULL REFERENCES strategy_configs(config_id),
    period_start                   TIMESTAMPTZ NOT NULL,
    period_end                     TIMESTAMPTZ NOT NULL,
    initial_capital                NUMERIC(18,2) NOT NULL,
    final_capital                  NUMERIC(18,2) NOT NULL,
    total_profit_loss              NUMERIC(18,2) NOT NULL,
    win_rate                       NUMERIC(5,2) NOT NULL,
    max_drawdown                   NUMERIC(5,2) NOT NULL,
    sharpe_ratio                   NUMERIC(10,4) NOT NULL,
    total_trades                   INTEGER NOT NULL,
    created_at                     TIMESTAMPTZ NOT NULL,
    detailed_results               JSONB,
    equity_curve                   JSONB,
    monthly_returns                JSONB,
    instruments_tested             UUID[],
    market_conditions              VARCHAR[],
    sortino_ratio                  NUMERIC(10,4),
    calmar_ratio                   NUMERIC(10,4),
    sterling_ratio                 NUMERIC(10,4),
    omega_ratio                    NUMERIC(10,4),
    kappa_ratio                    NUMERIC(10,4),
    volatility                     NUMERIC(10,4),
    downside_volatility            NUMERIC(10,4),
    var_95                         NUMERIC(18,2),
    var_99                         NUMERIC(18,2),
    expected_shortfall             NUMERIC(18,2),
    maximum_drawdown_duration_days INTEGER,
    recovery_factor                NUMERIC(10,4),
    winning_trades                 INTEGER,
    losing_trades                  INTEGER,
    avg_win                        NUMERIC(18,2),
    avg_loss                       NUMERIC(18,2),
    largest_win                    NUMERIC(18,2),
    largest_loss                   NUMERIC(18,2),
    profit_factor                  NUMERIC(10,4),
    payoff_ratio                   NUMERIC(10,4),
    total_commissions              NUMERIC(18,2),
    total_slippage                 NUMERIC(18,2),
    market_impact_cost             NUMERIC(18,2),
    benchmark_instrument_id        UUID REFERENCES financial_instruments(instrument_id),
    benchmark_return               NUMERIC(10,4),
    excess_return                  NUMERIC(10,4),
    tracking_error                 NUMERIC(10,4),
    information_ratio              NUMERIC(10,4),
    backtest_name                  VARCHAR(200),
    backtest_description           TEXT,
    data_quality_score             NUMERIC(3,2),
    execution_time_seconds         NUMERIC(10,3),
    cpu_time_used                  NUMERIC(10,3),
    memory_used_mb                 INTEGER,
    out_of_sample_performance      JSONB,
    walk_forward_results           JSONB,
    monte_carlo_confidence         NUMERIC(5,2),
    overfitting_score              NUMERIC(5,2)
)`,
	},
	{
		Name:       "strategy_performance",
		PrimaryKey: []string{"performance_id"},
		ForeignKeys: []db.ForeignKey{
			{Column: "strategy_id", RefTable: "strategies", RefColumn: "strategy_id"},
			{Column: "config_id", RefTable: "strategy_configs", RefColumn: "config_id"},
			{Column: "data_id", RefTable: "market_data", RefColumn: "data_id"},
			{Column: "instrument_id", RefTable: "financial_instruments", RefColumn: "instrument_id"},
		},
		DDL: `
CREATE TABLE strategy_performance (
    performance_id              UUID PRIMARY KEY,
    strategy_id                 UUID NOT NULL REFERENCES strategies(strategy_id),
    config_id                   UUID REFERENCES strategy_configs(config_id),
    data_id                     UUID REFERENCES market_data(data_id),
    instrument_id               UUID NOT NULL REFERENCES financial_instruments(instrument_id),
    period_start                TIMESTAMPTZ NOT NULL,
    period_end                  TIMESTAMPTZ NOT NULL,
    timeframe                   VARCHAR NOT NULL,
    win_rate                    NUMERIC(5,2) NOT NULL,
    profit_factor               NUMERIC(10,4) NOT NULL,
    max_drawdown                NUMERIC(5,2) NOT NULL,
    sharpe_ratio                NUMERIC(10,4) NOT NULL,
    total_trades                INTEGER NOT NULL,
    winning_trades              INTEGER NOT NULL,
    losing_trades               INTEGER NOT NULL,
    avg_profit_loss             NUMERIC(18,8) NOT NULL,
    avg_win                     NUMERIC(18,8) NOT NULL,
    avg_loss                    NUMERIC(18,8) NOT NULL,
    market_condition            VARCHAR,
    sortino_ratio               NUMERIC(10,4),
    calmar_ratio                NUMERIC(10,4),
    sterling_ratio              NUMERIC(10,4),
    information_ratio           NUMERIC(10,4),
    treynor_ratio               NUMERIC(10,4),
    largest_win                 NUMERIC(18,8),
    largest_loss                NUMERIC(18,8),
    avg_trade_duration_hours    NUMERIC(10,2),
    median_trade_duration_hours NUMERIC(10,2),
    consecutive_wins            INTEGER,
    consecutive_losses          INTEGER,
    max_consecutive_wins        INTEGER,
    max_consecutive_losses      INTEGER,
    value_at_risk_95            NUMERIC(18,8),
    expected_shortfall          NUMERIC(18,8),
    maximum_adverse_excursion   NUMERIC(18,8),
    maximum_favorable_excursion NUMERIC(18,8),
    total_return                NUMERIC(10,4),
    annualized_return           NUMERIC(10,4),
    monthly_returns             JSONB,
    return_volatility           NUMERIC(10,4),
    downside_deviation          NUMERIC(10,4),
    avg_position_size           NUMERIC(18,8),
    max_position_size           NUMERIC(18,8),
    position_size_volatility    NUMERIC(10,4),
    kelly_criterion             NUMERIC(5,2),
    calculated_at               TIMESTAMPTZ NOT NULL,
    calculation_version         VARCHAR(20)
)`,
	},
	{
		Name:       "portfolios",
		PrimaryKey: []string{"portfolio_id"},
		ForeignKeys: []db.ForeignKey{
			{Column: "user_id", RefTable: "users", RefColumn: "user_id"},
			{Column: "parent_portfolio_id", RefTable: "portfolios", RefColumn: "portfolio_id"},
			{Column: "benchmark_instrument_id", RefTable: "financial_instruments", RefColumn: "instrument_id"},
		},
		DDL: `
CREATE TABLE portfolios (
    portfolio_id              UUID PRIMARY KEY,
    user_id                   UUID NOT NULL REFERENCES users(user_id),
    name                      VARCHAR(100) NOT NULL,
    description               TEXT,
    initial_capital           NUMERIC(18,2) NOT NULL,
    created_at                TIMESTAMPTZ NOT NULL,
    is_active                 BOOLEAN NOT NULL,
    currency                  VARCHAR(3) NOT NULL,
    risk_profile              VARCHAR NOT NULL,
    target_return             NUMERIC(5,2),
    max_drawdown_limit        NUMERIC(5,2),
    rebalancing_frequency     VARCHAR(20),
    parent_portfolio_id       UUID REFERENCES portfolios(portfolio_id),
    auto_rebalance            BOOLEAN,
    rebalance_threshold       NUMERIC(5,2),
    management_fee            NUMERIC(5,4),
    performance_fee           NUMERIC(5,2),
    max_position_size         NUMERIC(5,2),
    max_sector_allocation     NUMERIC(5,2),
    max_correlation_threshold NUMERIC(5,2),
    investment_style          VARCHAR(50),
    investment_horizon        VARCHAR(20),
    benchmark_instrument_id   UUID REFERENCES financial_instruments(instrument_id),
    status                    VARCHAR(20),
    inception_date            TIMESTAMPTZ,
    closure_date              TIMESTAMPTZ,
    updated_at                TIMESTAMPTZ
)`,
	},
	{
		Name:       "portfolio_allocations",
		PrimaryKey: []string{"allocation_id"},
		ForeignKeys: []db.ForeignKey{
			{Column: "portfolio_id", RefTable: "portfolios", RefColumn: "portfolio_id"},
			{Column: "strategy_id", RefTable: "strategies", RefColumn: "strategy_id"},
			{Column: "config_id", RefTable: "strategy_configs", RefColumn: "config_id"},
		},
		DDL: `
CREATE TABLE portfolio_allocations (
    allocation_id            UUID PRIMARY KEY,
    portfolio_id             UUID NOT NULL REFERENCES portfolios(portfolio_id),
    strategy_id              UUID REFERENCES strategies(strategy_id),
    config_id                UUID REFERENCES strategy_configs(config_id),
    allocation_percentage    NUMERIC(5,2) NOT NULL,
    allocation_amount        NUMERIC(18,2) NOT NULL,
    updated_at               TIMESTAMPTZ NOT NULL,
    is_active                BOOLEAN NOT NULL,
    notes                    TEXT,
    performance_contribution NUMERIC(5,2),
    allocation_type          VARCHAR(20),
    min_allocation           NUMERIC(5,2),
    max_allocation           NUMERIC(5,2),
    target_volatility        NUMERIC(5,2),
    rebalance_tolerance      NUMERIC(5,2),
    last_rebalanced_at       TIMESTAMPTZ,
    rebalance_frequency      VARCHAR(20),
    inception_date           TIMESTAMPTZ,
    inception_value          NUMERIC(18,2),
    current_value            NUMERIC(18,2),
    unrealized_pnl           NUMERIC(18,2),
    realized_pnl             NUMERIC(18,2)
)`,
	},
	{
		Name:       "portfolio_holdings",
		PrimaryKey: []string{"holding_id"},
		ForeignKeys: []db.ForeignKey{
			{Column: "portfolio_id", RefTable: "portfolios", RefColumn: "portfolio_id"},
			{Column: "instrument_id", RefTable: "financial_instruments", RefColumn: "instrument_id"},
			{Column: "strategy_id", RefTable: "strategies", RefColumn: "strategy_id"},
		},
		DDL: `
CREATE TABLE portfolio_holdings (
    holding_id                UUID PRIMARY KEY,
    portfolio_id              UUID NOT NULL REFERENCES portfolios(portfolio_id),
    instrument_id             UUID NOT NULL REFERENCES financial_instruments(instrument_id),
    strategy_id               UUID REFERENCES strategies(strategy_id),
    quantity                  NUMERIC(18,8) NOT NULL,
    average_cost              NUMERIC(18,8) NOT NULL,
    current_price             NUMERIC(18,8) NOT NULL,
    market_value              NUMERIC(18,2) NOT NULL,
    unrealized_pnl            NUMERIC(18,2) NOT NULL,
    unrealized_pnl_percentage NUMERIC(10,4) NOT NULL,
    weight_percentage         NUMERIC(5,2) NOT NULL,
    first_purchase_date       TIMESTAMPTZ NOT NULL,
    last_transaction_date     TIMESTAMPTZ NOT NULL,
    days_held                 INTEGER,
    position_beta             NUMERIC(8,4),
    position_volatility       NUMERIC(8,4),
    var_contribution          NUMERIC(18,2),
    target_weight             NUMERIC(5,2),
    deviation_from_target     NUMERIC(5,2),
    rebalance_needed          BOOLEAN,
    as_of_date                TIMESTAMPTZ NOT NULL,
    created_at                TIMESTAMPTZ NOT NULL,
    updated_at                TIMESTAMPTZ NOT NULL
)`,
	},
	{
		Name:       "portfolio_performance",
		PrimaryKey: []string{"performance_id"},
		ForeignKeys: []db.ForeignKey{
			{Column: "portfolio_id", RefTable: "portfolios", RefColumn: "portfolio_id"},
		},
		DDL: `
CREATE TABLE portfolio_performance (
    performance_id        UUID PRIMARY KEY,
    portfolio_id          UUID NOT NULL REFERENCES portfolios(portfolio_id),
    period_start          TIMESTAMPTZ NOT NULL,
    period_end            TIMESTAMPTZ NOT NULL,
    current_value         NUMERIC(18,2) NOT NULL,
    profit_loss           NUMERIC(18,2) NOT NULL,
    return_percentage     NUMERIC(10,4) NOT NULL,
    sharpe_ratio          NUMERIC(10,4),
    max_drawdown          NUMERIC(5,2),
    volatility            NUMERIC(10,4),
    alpha                 NUMERIC(10,4),
    beta                  NUMERIC(10,4),
    calmar_ratio          NUMERIC(10,4),
    sortino_ratio         NUMERIC(10,4),
    market_correlation    NUMERIC(5,2),
    treynor_ratio         NUMERIC(10,4),
    information_ratio     NUMERIC(10,4),
    tracking_error        NUMERIC(10,4),
    up_capture_ratio      NUMERIC(10,4),
    down_capture_ratio    NUMERIC(10,4),
    win_rate              NUMERIC(5,2),
    profit_factor         NUMERIC(10,4),
    var_95                NUMERIC(18,2),
    var_99                NUMERIC(18,2),
    expected_shortfall    NUMERIC(18,2),
    realized_gains        NUMERIC(18,2),
    unrealized_gains      NUMERIC(18,2),
    dividends_received    NUMERIC(18,2),
    fees_paid             NUMERIC(18,2),
    taxes_paid            NUMERIC(18,2),
    period_type           VARCHAR(20) NOT NULL,
    trading_days          INTEGER,
    number_of_trades      INTEGER,
    average_trade_size    NUMERIC(18,2),
    largest_win           NUMERIC(18,2),
    largest_loss          NUMERIC(18,2),
    benchmark_return      NUMERIC(10,4),
    excess_return         NUMERIC(10,4),
    relative_performance  NUMERIC(10,4),
    maximum_leverage_used NUMERIC(10,2),
    average_leverage      NUMERIC(10,2),
    risk_adjusted_return  NUMERIC(10,4),
    calculated_at         TIMESTAMPTZ NOT NULL
)`,
	},
	{
		Name:       "trades",
		PrimaryKey: []string{"trade_id"},
		ForeignKeys: []db.ForeignKey{
			{Column: "user_id", RefTable: "users", RefColumn: "user_id"},
			{Column: "instrument_id", RefTable: "financial_instruments", RefColumn: "instrument_id"},
			{Column: "data_id", RefTable: "market_data", RefColumn: "data_id"},
			{Column: "strategy_id", RefTable: "strategies", RefColumn: "strategy_id"},
			{Column: "config_id", RefTable: "strategy_configs", RefColumn: "config_id"},
			{Column: "account_id", RefTable: "accounts", RefColumn: "account_id"},
		},
		DDL: `
CREATE TABLE trades (
    trade_id                  UUID PRIMARY KEY,
    user_id                   UUID NOT NULL REFERENCES users(user_id),
    instrument_id             UUID NOT NULL REFERENCES financial_instruments(instrument_id),
    data_id                   UUID REFERENCES market_data(data_id),
    strategy_id               UUID REFERENCES strategies(strategy_id),
    config_id                 UUID REFERENCES strategy_configs(config_id),
    direction                 VARCHAR NOT NULL,
    volume                    NUMERIC(18,8) NOT NULL,
    entry_price               NUMERIC(18,8) NOT NULL,
    exit_price                NUMERIC(18,8),
    stop_loss                 NUMERIC(18,8),
    take_profit               NUMERIC(18,8),
    entry_time                TIMESTAMPTZ NOT NULL,
    exit_time                 TIMESTAMPTZ,
    profit_loss               NUMERIC(18,8),
    profit_loss_percentage    NUMERIC(10,4),
    commission                NUMERIC(18,8),
    status                    VARCHAR NOT NULL,
    notes                     TEXT,
    tags                      VARCHAR[],
    account_id                UUID NOT NULL REFERENCES accounts(account_id),
    order_type                VARCHAR(20),
    time_in_force             VARCHAR(20),
    leverage_used             NUMERIC(10,2),
    margin_used               NUMERIC(18,8),
    risk_reward_ratio         NUMERIC(10,4),
    max_risk_amount           NUMERIC(18,8),
    position_size_percentage  NUMERIC(5,2),
    entry_reason              TEXT,
    exit_reason               TEXT,
    market_condition_at_entry VARCHAR,
    volatility_at_entry       NUMERIC(8,4),
    created_at                TIMESTAMPTZ NOT NULL,
    updated_at                TIMESTAMPTZ NOT NULL
)`,
	},
	{
		Name:       "trade_executions",
		PrimaryKey: []string{"execution_id"},
		ForeignKeys: []db.ForeignKey{
			{Column: "trade_id", RefTable: "trades", RefColumn: "trade_id"},
		},
		DDL: `
CREATE TABLE trade_executions (
    execution_id             UUID PRIMARY KEY,
    trade_id                 UUID NOT NULL REFERENCES trades(trade_id),
    broker_reference         VARCHAR(100),
    execution_status         VARCHAR NOT NULL,
    execution_time           TIMESTAMPTZ NOT NULL,
    executed_price           NUMERIC(18,8) NOT NULL,
    executed_volume          NUMERIC(18,8) NOT NULL,
    execution_details        JSONB,
    latency_ms               INTEGER,
    broker_commission        NUMERIC(18,8),
    slippage                 NUMERIC(18,8),
    execution_venue          VARCHAR(100),
    execution_algorithm      VARCHAR(50),
    market_impact            NUMERIC(18,8),
    implementation_shortfall NUMERIC(18,8),
    order_route              TEXT,
    execution_quality_score  NUMERIC(5,2),
    price_improvement        NUMERIC(18,8),
    mifid_transaction_id     VARCHAR(100),
    regulatory_flags         JSONB,
    created_at               TIMESTAMPTZ NOT NULL
)`,
	},
	{
		Name:       "user_preferences",
		PrimaryKey: []string{"preference_id"},
		ForeignKeys: []db.ForeignKey{
			{Column: "user_id", RefTable: "users", RefColumn: "user_id"},
		},
		DDL: `
CREATE TABLE user_preferences (
    preference_id         UUID PRIMARY KEY,
    user_id               UUID NOT NULL REFERENCES users(user_id),
    theme                 VARCHAR NOT NULL,
    notification_settings JSONB,
    default_timeframe     VARCHAR,
    default_indicators    JSONB,
    ui_layout             JSONB,
    alert_preferences     JSONB,
    language              VARCHAR(10),
    currency_preference   VARCHAR(3)
)`,
	},
	{
		Name:       "subscriptions",
		PrimaryKey: []string{"subscription_id"},
		ForeignKeys: []db.ForeignKey{
			{Column: "user_id", RefTable: "users", RefColumn: "user_id"},
		},
		DDL: `
CREATE TABLE subscriptions (
    subscription_id     UUID PRIMARY KEY,
    user_id             UUID NOT NULL REFERENCES users(user_id),
    subscription_level  VARCHAR NOT NULL,
    start_date          TIMESTAMPTZ NOT NULL,
    end_date            TIMESTAMPTZ NOT NULL,
    monthly_fee         NUMERIC(10,2) NOT NULL,
    is_active           BOOLEAN NOT NULL,
    auto_renew          BOOLEAN NOT NULL,
    payment_method_id   VARCHAR(100),
    last_payment_date   TIMESTAMPTZ,
    next_payment_date   TIMESTAMPTZ,
    trial_period_days   INTEGER,
    discount_percentage NUMERIC(5,2),
    promotional_code    VARCHAR(50),
    billing_cycle       VARCHAR(20),
    grace_period_days   INTEGER
)`,
	},
	{
		Name:       "alerts",
		PrimaryKey: []string{"alert_id"},
		ForeignKeys: []db.ForeignKey{
			{Column: "user_id", RefTable: "users", RefColumn: "user_id"},
			{Column: "strategy_id", RefTable: "strategies", RefColumn: "strategy_id"},
			{Column: "data_id", RefTable: "market_data", RefColumn: "data_id"},
			{Column: "instrument_id", RefTable: "financial_instruments", RefColumn: "instrument_id"},
		},
		DDL: `
CREATE TABLE alerts (
    alert_id              UUID PRIMARY KEY,
    user_id               UUID NOT NULL REFERENCES users(user_id),
    strategy_id           UUID REFERENCES strategies(strategy_id),
    data_id               UUID REFERENCES market_data(data_id),
    instrument_id         UUID REFERENCES financial_instruments(instrument_id),
    alert_type            VARCHAR NOT NULL,
    message               TEXT NOT NULL,
    generated_at          TIMESTAMPTZ NOT NULL,
    sent_at               TIMESTAMPTZ,
    is_read               BOOLEAN NOT NULL,
    confidence_score      NUMERIC(5,2),
    timeframe             VARCHAR,
    priority              VARCHAR NOT NULL,
    expiration_time       TIMESTAMPTZ,
    trigger_conditions    JSONB,
    recommended_action    VARCHAR(100),
    risk_assessment       VARCHAR(500),
    market_context        TEXT,
    delivery_channels     VARCHAR[],
    delivery_status       JSONB,
    delivery_attempts     INTEGER,
    last_delivery_attempt TIMESTAMPTZ,
    category              VARCHAR(50),
    subcategory           VARCHAR(50),
    sentiment             VARCHAR(20),
    acknowledged_at       TIMESTAMPTZ,
    action_taken          VARCHAR(100),
    outcome_notes         TEXT
)`,
	},
	{
		Name:       "audit_log",
		PrimaryKey: []string{"audit_id"},
		ForeignKeys: []db.ForeignKey{
			{Column: "user_id", RefTable: "users", RefColumn: "user_id"},
		},
		DDL: `
CREATE TABLE audit_log (
    audit_id         UUID PRIMARY KEY,
    table_name       VARCHAR(100) NOT NULL,
    operation        VARCHAR(10) NOT NULL,
    record_id        UUID NOT NULL,
    user_id          UUID NOT NULL REFERENCES users(user_id),
    "timestamp"      TIMESTAMPTZ NOT NULL,
    old_values       JSONB,
    new_values       JSONB,
    changed_fields   TEXT[],
    ip_address       INET,
    user_agent       TEXT,
    session_id       VARCHAR(255),
    application_name VARCHAR(100),
    business_context TEXT,
    risk_level       VARCHAR(20),
    compliance_flags JSONB,
    created_at       TIMESTAMPTZ NOT NULL
)`,
	},
	{
		Name:       "system_health_metrics",
		PrimaryKey: []string{"metric_id"},
		DDL: `
CREATE TABLE system_health_metrics (
    metric_id       UUID PRIMARY KEY,
    metric_name     VARCHAR(100) NOT NULL,
    metric_value    NUMERIC(15,4) NOT NULL,
    metric_unit     VARCHAR(20) NOT NULL,
    "timestamp"     TIMESTAMPTZ NOT NULL,
    component       VARCHAR(50) NOT NULL,
    severity        VARCHAR(20),
    metric_metadata JSONB,
    expires_at      TIMESTAMPTZ
)`,
	},
	{
		Name:       "automated_jobs",
		PrimaryKey: []string{"job_id"},
		DDL: `
CREATE TABLE automated_jobs (
    job_id                UUID PRIMARY KEY,
    job_name              VARCHAR(100) NOT NULL,
    job_description       TEXT,
    job_function          VARCHAR(200) NOT NULL,
    schedule_expression   VARCHAR(100) NOT NULL,
    is_enabled            BOOLEAN NOT NULL,
    last_execution        TIMESTAMPTZ,
    last_status           VARCHAR(20),
    last_error_message    TEXT,
    execution_count       BIGINT NOT NULL,
    avg_execution_time_ms NUMERIC(10,2),
    created_at            TIMESTAMPTZ NOT NULL,
    updated_at            TIMESTAMPTZ NOT NULL
)`,
	},
}
