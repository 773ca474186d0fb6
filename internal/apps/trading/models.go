package trading

import (
	"net/netip"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pgEdge/pgedge-tradegen/internal/datagen/payload"
	"github.com/pgEdge/pgedge-tradegen/internal/db"
)

// User is a platform login.
type User struct {
	UserID              uuid.UUID  `db:"user_id"`
	Username            string     `db:"username"`
	Email               string     `db:"email"`
	PasswordHash        string     `db:"password_hash"`
	FullName            string     `db:"full_name"`
	CreatedAt           time.Time  `db:"created_at"`
	LastLogin           *time.Time `db:"last_login"`
	UserType            string     `db:"user_type"`
	AccountStatus       string     `db:"account_status"`
	VerificationStatus  bool       `db:"verification_status"`
	ProfilePictureURL   *string    `db:"profile_picture_url"`
	TwoFactorEnabled    bool       `db:"two_factor_enabled"`
	FailedLoginAttempts int        `db:"failed_login_attempts"`
	LockedUntil         *time.Time `db:"locked_until"`
	PasswordChangedAt   *time.Time `db:"password_changed_at"`
	EmailVerifiedAt     *time.Time `db:"email_verified_at"`
	LastIPAddress       netip.Addr `db:"last_ip_address"`
	Timezone            string     `db:"timezone"`
}

type Role struct {
	RoleID       uuid.UUID    `db:"role_id"`
	Name         string       `db:"name"`
	Description  string       `db:"description"`
	Permissions  payload.JSON `db:"permissions"`
	IsSystemRole bool         `db:"is_system_role"`
	CreatedAt    time.Time    `db:"created_at"`
}

// UserRole assigns a role to a user.
type UserRole struct {
	UserID     uuid.UUID `db:"user_id"`
	RoleID     uuid.UUID `db:"role_id"`
	AssignedAt time.Time `db:"assigned_at"`
	AssignedBy uuid.UUID `db:"assigned_by"`
}

// Instrument is a tradable financial instrument.
type Instrument struct {
	InstrumentID       uuid.UUID        `db:"instrument_id"`
	Symbol             string           `db:"symbol"`
	Name               string           `db:"name"`
	Type               string           `db:"type"`
	Exchange           string           `db:"exchange"`
	Currency           string           `db:"currency"`
	IsActive           bool             `db:"is_active"`
	Description        string           `db:"description"`
	Sector             string           `db:"sector"`
	Country            string           `db:"country"`
	LotSize            decimal.Decimal  `db:"lot_size"`
	MinTick            decimal.Decimal  `db:"min_tick"`
	TradingHours       payload.JSON     `db:"trading_hours"`
	MarginRequirements *decimal.Decimal `db:"margin_requirements"`
	ISIN               *string          `db:"isin"`
	CUSIP              *string          `db:"cusip"`
	BloombergSymbol    *string          `db:"bloomberg_symbol"`
	ReutersSymbol      *string          `db:"reuters_symbol"`
	MarketCap          *int64           `db:"market_cap"`
	AverageVolume      *int64           `db:"average_volume"`
	Beta               *decimal.Decimal `db:"beta"`
	DividendYield      *decimal.Decimal `db:"dividend_yield"`
	CreatedAt          time.Time        `db:"created_at"`
	UpdatedAt          time.Time        `db:"updated_at"`
	DelistedAt         *time.Time       `db:"delisted_at"`
}

// MarketBar is one OHLC price bar for an instrument and timeframe.
type MarketBar struct {
	DataID           uuid.UUID        `db:"data_id"`
	InstrumentID     uuid.UUID        `db:"instrument_id"`
	Timestamp        time.Time        `db:"timestamp"`
	OpenPrice        decimal.Decimal  `db:"open_price"`
	HighPrice        decimal.Decimal  `db:"high_price"`
	LowPrice         decimal.Decimal  `db:"low_price"`
	ClosePrice       decimal.Decimal  `db:"close_price"`
	Volume           decimal.Decimal  `db:"volume"`
	Timeframe        string           `db:"timeframe"`
	DataSource       string           `db:"data_source"`
	AdjustedClose    *decimal.Decimal `db:"adjusted_close"`
	Bid              decimal.Decimal  `db:"bid"`
	Ask              decimal.Decimal  `db:"ask"`
	Spread           decimal.Decimal  `db:"spread"`
	VWAP             decimal.Decimal  `db:"vwap"`
	NumberOfTrades   int              `db:"number_of_trades"`
	PartitionKey     string           `db:"partition_key"`
	DataQualityScore decimal.Decimal  `db:"data_quality_score"`
	IsAdjusted       bool             `db:"is_adjusted"`
	HasGaps          bool             `db:"has_gaps"`
	IngestedAt       time.Time        `db:"ingested_at"`
}

type MarketCondition struct {
	ConditionID     uuid.UUID        `db:"condition_id"`
	Name            string           `db:"name"`
	Description     *string          `db:"description"`
	Parameters      payload.JSON     `db:"parameters"`
	StartDate       time.Time        `db:"start_date"`
	EndDate         *time.Time       `db:"end_date"`
	InstrumentID    uuid.UUID        `db:"instrument_id"`
	VolatilityLevel *decimal.Decimal `db:"volatility_level"`
	TrendDirection  *string          `db:"trend_direction"`
	IndicatorsState payload.JSON     `db:"indicators_state"`
	MarketCondition string           `db:"market_condition"`
	StrengthScore   *decimal.Decimal `db:"strength_score"`
	DurationHours   *int             `db:"duration_hours"`
	DetectedBy      *string          `db:"detected_by"`
	DetectionMethod *string          `db:"detection_method"`
	ConfidenceScore *decimal.Decimal `db:"confidence_score"`
	CreatedAt       time.Time        `db:"created_at"`
}

// TechnicalIndicator is an indicator reading computed from a price bar.
type TechnicalIndicator struct {
	IndicatorID       uuid.UUID        `db:"indicator_id"`
	DataID            uuid.UUID        `db:"data_id"`
	InstrumentID      uuid.UUID        `db:"instrument_id"`
	IndicatorType     string           `db:"indicator_type"`
	Parameters        payload.JSON     `db:"parameters"`
	Values            payload.JSON     `db:"values"`
	CalculatedAt      time.Time        `db:"calculated_at"`
	Timeframe         string           `db:"timeframe"`
	ValidityPeriod    *time.Time       `db:"validity_period"`
	SignalStrength    *decimal.Decimal `db:"signal_strength"`
	PartitionKey      *string          `db:"partition_key"`
	CalculationMethod *string          `db:"calculation_method"`
	DataPointsUsed    *int             `db:"data_points_used"`
	ConfidenceLevel   *decimal.Decimal `db:"confidence_level"`
}

// Account is a user's trading account.
type Account struct {
	AccountID        uuid.UUID        `db:"account_id"`
	UserID           uuid.UUID        `db:"user_id"`
	AccountNumber    string           `db:"account_number"`
	AccountType      string           `db:"account_type"`
	CurrencyCode     string           `db:"currency_code"`
	Balance          decimal.Decimal  `db:"balance"`
	AvailableBalance decimal.Decimal  `db:"available_balance"`
	CreatedAt        time.Time        `db:"created_at"`
	LastUpdated      time.Time        `db:"last_updated"`
	Status           string           `db:"status"`
	BrokerAccountID  *string          `db:"broker_account_id"`
	LeverageRatio    decimal.Decimal  `db:"leverage_ratio"`
	MarginCallLevel  decimal.Decimal  `db:"margin_call_level"`
	StopOutLevel     decimal.Decimal  `db:"stop_out_level"`
	CreditLimit      *decimal.Decimal `db:"credit_limit"`
}

// Strategy is a trading strategy. Non-root strategies may point at a root
// through ParentStrategyID.
type Strategy struct {
	StrategyID            uuid.UUID       `db:"strategy_id"`
	Name                  string          `db:"name"`
	Description           string          `db:"description"`
	Type                  string          `db:"type"`
	CreatedAt             time.Time       `db:"created_at"`
	IsActive              bool            `db:"is_active"`
	DefaultParameters     payload.JSON    `db:"default_parameters"`
	Version               string          `db:"version"`
	Creator               string          `db:"creator"`
	PerformanceSummary    payload.JSON    `db:"performance_summary"`
	RiskLevel             string          `db:"risk_level"`
	ParentStrategyID      *uuid.UUID      `db:"parent_strategy_id"`
	Category              string          `db:"category"`
	Subcategory           string          `db:"subcategory"`
	MinCapitalRequired    decimal.Decimal `db:"min_capital_required"`
	MaxDrawdownLimit      decimal.Decimal `db:"max_drawdown_limit"`
	RecommendedTimeframes db.TextArray    `db:"recommended_timeframes"`
	SuitableInstruments   db.TextArray    `db:"suitable_instruments"`
	AlgorithmType         string          `db:"algorithm_type"`
	ComplexityScore       int             `db:"complexity_score"`
	ExecutionFrequency    string          `db:"execution_frequency"`
	RegulatoryApproval    bool            `db:"regulatory_approval"`
	ComplianceNotes       *string         `db:"compliance_notes"`
	LastAuditDate         *time.Time      `db:"last_audit_date"`
	UpdatedAt             time.Time       `db:"updated_at"`
	DeprecatedAt          *time.Time      `db:"deprecated_at"`
}

// StrategyConfig is a user's parameterization of a strategy.
type StrategyConfig struct {
	ConfigID                uuid.UUID       `db:"config_id"`
	UserID                  uuid.UUID       `db:"user_id"`
	StrategyID              uuid.UUID       `db:"strategy_id"`
	Parameters              payload.JSON    `db:"parameters"`
	CreatedAt               time.Time       `db:"created_at"`
	UpdatedAt               time.Time       `db:"updated_at"`
	IsActive                bool            `db:"is_active"`
	Name                    string          `db:"name"`
	Description             *string         `db:"description"`
	PerformanceSummary      payload.JSON    `db:"performance_summary"`
	IsFavorite              bool            `db:"is_favorite"`
	RiskTolerance           decimal.Decimal `db:"risk_tolerance"`
	MaxPositionSize         decimal.Decimal `db:"max_position_size"`
	StopLossPercentage      decimal.Decimal `db:"stop_loss_percentage"`
	TakeProfitPercentage    decimal.Decimal `db:"take_profit_percentage"`
	IsPaperTrading          bool            `db:"is_paper_trading"`
	LiveTradingApproved     bool            `db:"live_trading_approved"`
	LiveTradingApprovalDate *time.Time      `db:"live_trading_approval_date"`
	ApprovedBy              *uuid.UUID      `db:"approved_by"`
}

type StrategyPerformance struct {
	PerformanceID             uuid.UUID        `db:"performance_id"`
	StrategyID                uuid.UUID        `db:"strategy_id"`
	ConfigID                  *uuid.UUID       `db:"config_id"`
	DataID                    *uuid.UUID       `db:"data_id"`
	InstrumentID              uuid.UUID        `db:"instrument_id"`
	PeriodStart               time.Time        `db:"period_start"`
	PeriodEnd                 time.Time        `db:"period_end"`
	Timeframe                 string           `db:"timeframe"`
	WinRate                   decimal.Decimal  `db:"win_rate"`
	ProfitFactor              decimal.Decimal  `db:"profit_factor"`
	MaxDrawdown               decimal.Decimal  `db:"max_drawdown"`
	SharpeRatio               decimal.Decimal  `db:"sharpe_ratio"`
	TotalTrades               int              `db:"total_trades"`
	WinningTrades             int              `db:"winning_trades"`
	LosingTrades              int              `db:"losing_trades"`
	AvgProfitLoss             decimal.Decimal  `db:"avg_profit_loss"`
	AvgWin                    decimal.Decimal  `db:"avg_win"`
	AvgLoss                   decimal.Decimal  `db:"avg_loss"`
	MarketCondition           *string          `db:"market_condition"`
	SortinoRatio              *decimal.Decimal `db:"sortino_ratio"`
	CalmarRatio               *decimal.Decimal `db:"calmar_ratio"`
	SterlingRatio             *decimal.Decimal `db:"sterling_ratio"`
	InformationRatio          *decimal.Decimal `db:"information_ratio"`
	TreynorRatio              *decimal.Decimal `db:"treynor_ratio"`
	LargestWin                *decimal.Decimal `db:"largest_win"`
	LargestLoss               *decimal.Decimal `db:"largest_loss"`
	AvgTradeDurationHours     *decimal.Decimal `db:"avg_trade_duration_hours"`
	MedianTradeDurationHours  *decimal.Decimal `db:"median_trade_duration_hours"`
	ConsecutiveWins           *int             `db:"consecutive_wins"`
	ConsecutiveLosses         *int             `db:"consecutive_losses"`
	MaxConsecutiveWins        *int             `db:"max_consecutive_wins"`
	MaxConsecutiveLosses      *int             `db:"max_consecutive_losses"`
	ValueAtRisk95             *decimal.Decimal `db:"value_at_risk_95"`
	ExpectedShortfall         *decimal.Decimal `db:"expected_shortfall"`
	MaximumAdverseExcursion   *decimal.Decimal `db:"maximum_adverse_excursion"`
	MaximumFavorableExcursion *decimal.Decimal `db:"maximum_favorable_excursion"`
	TotalReturn               *decimal.Decimal `db:"total_return"`
	AnnualizedReturn          *decimal.Decimal `db:"annualized_return"`
	MonthlyReturns            payload.JSON     `db:"monthly_returns"`
	ReturnVolatility          *decimal.Decimal `db:"return_volatility"`
	DownsideDeviation         *decimal.Decimal `db:"downside_deviation"`
	AvgPositionSize           *decimal.Decimal `db:"avg_position_size"`
	MaxPositionSize           *decimal.Decimal `db:"max_position_size"`
	PositionSizeVolatility    *decimal.Decimal `db:"position_size_volatility"`
	KellyCriterion            *decimal.Decimal `db:"kelly_criterion"`
	CalculatedAt              time.Time        `db:"calculated_at"`
	CalculationVersion        *string          `db:"calculation_version"`
}

// Portfolio groups holdings and strategy allocations for a user.
type Portfolio struct {
	PortfolioID             uuid.UUID       `db:"portfolio_id"`
	UserID                  uuid.UUID       `db:"user_id"`
	Name                    string          `db:"name"`
	Description             string          `db:"description"`
	InitialCapital          decimal.Decimal `db:"initial_capital"`
	CreatedAt               time.Time       `db:"created_at"`
	IsActive                bool            `db:"is_active"`
	Currency                string          `db:"currency"`
	RiskProfile             string          `db:"risk_profile"`
	TargetReturn            decimal.Decimal `db:"target_return"`
	MaxDrawdownLimit        decimal.Decimal `db:"max_drawdown_limit"`
	RebalancingFrequency    string          `db:"rebalancing_frequency"`
	ParentPortfolioID       *uuid.UUID      `db:"parent_portfolio_id"`
	AutoRebalance           bool            `db:"auto_rebalance"`
	RebalanceThreshold      decimal.Decimal `db:"rebalance_threshold"`
	ManagementFee           decimal.Decimal `db:"management_fee"`
	PerformanceFee          decimal.Decimal `db:"performance_fee"`
	MaxPositionSize         decimal.Decimal `db:"max_position_size"`
	MaxSectorAllocation     decimal.Decimal `db:"max_sector_allocation"`
	MaxCorrelationThreshold decimal.Decimal `db:"max_correlation_threshold"`
	InvestmentStyle         string          `db:"investment_style"`
	InvestmentHorizon       string          `db:"investment_horizon"`
	BenchmarkInstrumentID   uuid.UUID       `db:"benchmark_instrument_id"`
	Status                  string          `db:"status"`
	InceptionDate           time.Time       `db:"inception_date"`
	ClosureDate             *time.Time      `db:"closure_date"`
	UpdatedAt               time.Time       `db:"updated_at"`
}

type PortfolioAllocation struct {
	AllocationID            uuid.UUID        `db:"allocation_id"`
	PortfolioID             uuid.UUID        `db:"portfolio_id"`
	StrategyID              *uuid.UUID       `db:"strategy_id"`
	ConfigID                *uuid.UUID       `db:"config_id"`
	AllocationPercentage    decimal.Decimal  `db:"allocation_percentage"`
	AllocationAmount        decimal.Decimal  `db:"allocation_amount"`
	UpdatedAt               time.Time        `db:"updated_at"`
	IsActive                bool             `db:"is_active"`
	Notes                   *string          `db:"notes"`
	PerformanceContribution *decimal.Decimal `db:"performance_contribution"`
	AllocationType          *string          `db:"allocation_type"`
	MinAllocation           *decimal.Decimal `db:"min_allocation"`
	MaxAllocation           *decimal.Decimal `db:"max_allocation"`
	TargetVolatility        *decimal.Decimal `db:"target_volatility"`
	RebalanceTolerance      *decimal.Decimal `db:"rebalance_tolerance"`
	LastRebalancedAt        *time.Time       `db:"last_rebalanced_at"`
	RebalanceFrequency      *string          `db:"rebalance_frequency"`
	InceptionDate           time.Time        `db:"inception_date"`
	InceptionValue          decimal.Decimal  `db:"inception_value"`
	CurrentValue            decimal.Decimal  `db:"current_value"`
	UnrealizedPnL           decimal.Decimal  `db:"unrealized_pnl"`
	RealizedPnL             *decimal.Decimal `db:"realized_pnl"`
}

// PortfolioHolding is a position held by a portfolio.
type PortfolioHolding struct {
	HoldingID               uuid.UUID        `db:"holding_id"`
	PortfolioID             uuid.UUID        `db:"portfolio_id"`
	InstrumentID            uuid.UUID        `db:"instrument_id"`
	StrategyID              *uuid.UUID       `db:"strategy_id"`
	Quantity                decimal.Decimal  `db:"quantity"`
	AverageCost             decimal.Decimal  `db:"average_cost"`
	CurrentPrice            decimal.Decimal  `db:"current_price"`
	MarketValue             decimal.Decimal  `db:"market_value"`
	UnrealizedPnL           decimal.Decimal  `db:"unrealized_pnl"`
	UnrealizedPnLPercentage decimal.Decimal  `db:"unrealized_pnl_percentage"`
	WeightPercentage        decimal.Decimal  `db:"weight_percentage"`
	FirstPurchaseDate       time.Time        `db:"first_purchase_date"`
	LastTransactionDate     time.Time        `db:"last_transaction_date"`
	DaysHeld                int              `db:"days_held"`
	PositionBeta            *decimal.Decimal `db:"position_beta"`
	PositionVolatility      *decimal.Decimal `db:"position_volatility"`
	VaRContribution         *decimal.Decimal `db:"var_contribution"`
	TargetWeight            *decimal.Decimal `db:"target_weight"`
	DeviationFromTarget     *decimal.Decimal `db:"deviation_from_target"`
	RebalanceNeeded         *bool            `db:"rebalance_needed"`
	AsOfDate                time.Time        `db:"as_of_date"`
	CreatedAt               time.Time        `db:"created_at"`
	UpdatedAt               time.Time        `db:"updated_at"`
}

type PortfolioPerformance struct {
	PerformanceID       uuid.UUID        `db:"performance_id"`
	PortfolioID         uuid.UUID        `db:"portfolio_id"`
	PeriodStart         time.Time        `db:"period_start"`
	PeriodEnd           time.Time        `db:"period_end"`
	CurrentValue        decimal.Decimal  `db:"current_value"`
	ProfitLoss          decimal.Decimal  `db:"profit_loss"`
	ReturnPercentage    decimal.Decimal  `db:"return_percentage"`
	SharpeRatio         *decimal.Decimal `db:"sharpe_ratio"`
	MaxDrawdown         *decimal.Decimal `db:"max_drawdown"`
	Volatility          *decimal.Decimal `db:"volatility"`
	Alpha               *decimal.Decimal `db:"alpha"`
	Beta                *decimal.Decimal `db:"beta"`
	CalmarRatio         *decimal.Decimal `db:"calmar_ratio"`
	SortinoRatio        *decimal.Decimal `db:"sortino_ratio"`
	MarketCorrelation   *decimal.Decimal `db:"market_correlation"`
	TreynorRatio        *decimal.Decimal `db:"treynor_ratio"`
	InformationRatio    *decimal.Decimal `db:"information_ratio"`
	TrackingError       *decimal.Decimal `db:"tracking_error"`
	UpCaptureRatio      *decimal.Decimal `db:"up_capture_ratio"`
	DownCaptureRatio    *decimal.Decimal `db:"down_capture_ratio"`
	WinRate             *decimal.Decimal `db:"win_rate"`
	ProfitFactor        *decimal.Decimal `db:"profit_factor"`
	VaR95               *decimal.Decimal `db:"var_95"`
	VaR99               *decimal.Decimal `db:"var_99"`
	ExpectedShortfall   *decimal.Decimal `db:"expected_shortfall"`
	RealizedGains       decimal.Decimal  `db:"realized_gains"`
	UnrealizedGains     decimal.Decimal  `db:"unrealized_gains"`
	DividendsReceived   *decimal.Decimal `db:"dividends_received"`
	FeesPaid            *decimal.Decimal `db:"fees_paid"`
	TaxesPaid           *decimal.Decimal `db:"taxes_paid"`
	PeriodType          string           `db:"period_type"`
	TradingDays         *int             `db:"trading_days"`
	NumberOfTrades      *int             `db:"number_of_trades"`
	AverageTradeSize    *decimal.Decimal `db:"average_trade_size"`
	LargestWin          *decimal.Decimal `db:"largest_win"`
	LargestLoss         *decimal.Decimal `db:"largest_loss"`
	BenchmarkReturn     *decimal.Decimal `db:"benchmark_return"`
	ExcessReturn        *decimal.Decimal `db:"excess_return"`
	RelativePerformance *decimal.Decimal `db:"relative_performance"`
	MaximumLeverageUsed *decimal.Decimal `db:"maximum_leverage_used"`
	AverageLeverage     *decimal.Decimal `db:"average_leverage"`
	RiskAdjustedReturn  decimal.Decimal  `db:"risk_adjusted_return"`
	CalculatedAt        time.Time        `db:"calculated_at"`
}

// Trade is an order placed by a user through one of their accounts.
type Trade struct {
	TradeID                uuid.UUID        `db:"trade_id"`
	UserID                 uuid.UUID        `db:"user_id"`
	InstrumentID           uuid.UUID        `db:"instrument_id"`
	DataID                 *uuid.UUID       `db:"data_id"`
	StrategyID             *uuid.UUID       `db:"strategy_id"`
	ConfigID               *uuid.UUID       `db:"config_id"`
	Direction              string           `db:"direction"`
	Volume                 decimal.Decimal  `db:"volume"`
	EntryPrice             decimal.Decimal  `db:"entry_price"`
	ExitPrice              *decimal.Decimal `db:"exit_price"`
	StopLoss               *decimal.Decimal `db:"stop_loss"`
	TakeProfit             *decimal.Decimal `db:"take_profit"`
	EntryTime              time.Time        `db:"entry_time"`
	ExitTime               *time.Time       `db:"exit_time"`
	ProfitLoss             *decimal.Decimal `db:"profit_loss"`
	ProfitLossPercentage   *decimal.Decimal `db:"profit_loss_percentage"`
	Commission             decimal.Decimal  `db:"commission"`
	Status                 string           `db:"status"`
	Notes                  *string          `db:"notes"`
	Tags                   db.TextArray     `db:"tags"`
	AccountID              uuid.UUID        `db:"account_id"`
	OrderType              string           `db:"order_type"`
	TimeInForce            string           `db:"time_in_force"`
	LeverageUsed           *decimal.Decimal `db:"leverage_used"`
	MarginUsed             *decimal.Decimal `db:"margin_used"`
	RiskRewardRatio        *decimal.Decimal `db:"risk_reward_ratio"`
	MaxRiskAmount          *decimal.Decimal `db:"max_risk_amount"`
	PositionSizePercentage decimal.Decimal  `db:"position_size_percentage"`
	EntryReason            *string          `db:"entry_reason"`
	ExitReason             *string          `db:"exit_reason"`
	MarketConditionAtEntry string           `db:"market_condition_at_entry"`
	VolatilityAtEntry      decimal.Decimal  `db:"volatility_at_entry"`
	CreatedAt              time.Time        `db:"created_at"`
	UpdatedAt              time.Time        `db:"updated_at"`
}

// TradeExecution is a fill (or failed fill) of a trade.
type TradeExecution struct {
	ExecutionID             uuid.UUID        `db:"execution_id"`
	TradeID                 uuid.UUID        `db:"trade_id"`
	BrokerReference         *string          `db:"broker_reference"`
	ExecutionStatus         string           `db:"execution_status"`
	ExecutionTime           time.Time        `db:"execution_time"`
	ExecutedPrice           decimal.Decimal  `db:"executed_price"`
	ExecutedVolume          decimal.Decimal  `db:"executed_volume"`
	ExecutionDetails        payload.JSON     `db:"execution_details"`
	LatencyMS               int              `db:"latency_ms"`
	BrokerCommission        *decimal.Decimal `db:"broker_commission"`
	Slippage                *decimal.Decimal `db:"slippage"`
	ExecutionVenue          *string          `db:"execution_venue"`
	ExecutionAlgorithm      *string          `db:"execution_algorithm"`
	MarketImpact            *decimal.Decimal `db:"market_impact"`
	ImplementationShortfall *decimal.Decimal `db:"implementation_shortfall"`
	OrderRoute              *string          `db:"order_route"`
	ExecutionQualityScore   *decimal.Decimal `db:"execution_quality_score"`
	PriceImprovement        *decimal.Decimal `db:"price_improvement"`
	MiFIDTransactionID      *string          `db:"mifid_transaction_id"`
	RegulatoryFlags         payload.JSON     `db:"regulatory_flags"`
	CreatedAt               time.Time        `db:"created_at"`
}

type UserPreference struct {
	PreferenceID         uuid.UUID    `db:"preference_id"`
	UserID               uuid.UUID    `db:"user_id"`
	Theme                string       `db:"theme"`
	NotificationSettings payload.JSON `db:"notification_settings"`
	DefaultTimeframe     string       `db:"default_timeframe"`
	DefaultIndicators    payload.JSON `db:"default_indicators"`
	UILayout             payload.JSON `db:"ui_layout"`
	AlertPreferences     payload.JSON `db:"alert_preferences"`
	Language             string       `db:"language"`
	CurrencyPreference   string       `db:"currency_preference"`
}

type Subscription struct {
	SubscriptionID     uuid.UUID        `db:"subscription_id"`
	UserID             uuid.UUID        `db:"user_id"`
	SubscriptionLevel  string           `db:"subscription_level"`
	StartDate          time.Time        `db:"start_date"`
	EndDate            time.Time        `db:"end_date"`
	MonthlyFee         decimal.Decimal  `db:"monthly_fee"`
	IsActive           bool             `db:"is_active"`
	AutoRenew          bool             `db:"auto_renew"`
	PaymentMethodID    *string          `db:"payment_method_id"`
	LastPaymentDate    *time.Time       `db:"last_payment_date"`
	NextPaymentDate    *time.Time       `db:"next_payment_date"`
	TrialPeriodDays    *int             `db:"trial_period_days"`
	DiscountPercentage *decimal.Decimal `db:"discount_percentage"`
	PromotionalCode    *string          `db:"promotional_code"`
	BillingCycle       string           `db:"billing_cycle"`
	GracePeriodDays    *int             `db:"grace_period_days"`
}

// Alert is a notification raised for a user.
type Alert struct {
	AlertID             uuid.UUID        `db:"alert_id"`
	UserID              uuid.UUID        `db:"user_id"`
	StrategyID          *uuid.UUID       `db:"strategy_id"`
	DataID              *uuid.UUID       `db:"data_id"`
	InstrumentID        *uuid.UUID       `db:"instrument_id"`
	AlertType           string           `db:"alert_type"`
	Message             string           `db:"message"`
	GeneratedAt         time.Time        `db:"generated_at"`
	SentAt              *time.Time       `db:"sent_at"`
	IsRead              bool             `db:"is_read"`
	ConfidenceScore     *decimal.Decimal `db:"confidence_score"`
	Timeframe           *string          `db:"timeframe"`
	Priority            string           `db:"priority"`
	ExpirationTime      *time.Time       `db:"expiration_time"`
	TriggerConditions   payload.JSON     `db:"trigger_conditions"`
	RecommendedAction   *string          `db:"recommended_action"`
	RiskAssessment      *string          `db:"risk_assessment"`
	MarketContext       *string          `db:"market_context"`
	DeliveryChannels    db.TextArray     `db:"delivery_channels"`
	DeliveryStatus      payload.JSON     `db:"delivery_status"`
	DeliveryAttempts    int              `db:"delivery_attempts"`
	LastDeliveryAttempt *time.Time       `db:"last_delivery_attempt"`
	Category            *string          `db:"category"`
	Subcategory         *string          `db:"subcategory"`
	Sentiment           *string          `db:"sentiment"`
	AcknowledgedAt      *time.Time       `db:"acknowledged_at"`
	ActionTaken         *string          `db:"action_taken"`
	OutcomeNotes        *string          `db:"outcome_notes"`
}

type AuditLog struct {
	AuditID         uuid.UUID    `db:"audit_id"`
	TableName       string       `db:"table_name"`
	Operation       string       `db:"operation"`
	RecordID        uuid.UUID    `db:"record_id"`
	UserID          uuid.UUID    `db:"user_id"`
	Timestamp       time.Time    `db:"timestamp"`
	OldValues       payload.JSON `db:"old_values"`
	NewValues       payload.JSON `db:"new_values"`
	ChangedFields   db.TextArray `db:"changed_fields"`
	IPAddress       netip.Addr   `db:"ip_address"`
	UserAgent       string       `db:"user_agent"`
	SessionID       string       `db:"session_id"`
	ApplicationName string       `db:"application_name"`
	BusinessContext *string      `db:"business_context"`
	RiskLevel       *string      `db:"risk_level"`
	ComplianceFlags payload.JSON `db:"compliance_flags"`
	CreatedAt       time.Time    `db:"created_at"`
}

// HealthMetric is one system health sample.
type HealthMetric struct {
	MetricID       uuid.UUID       `db:"metric_id"`
	MetricName     string          `db:"metric_name"`
	MetricValue    decimal.Decimal `db:"metric_value"`
	MetricUnit     string          `db:"metric_unit"`
	Timestamp      time.Time       `db:"timestamp"`
	Component      string          `db:"component"`
	Severity       *string         `db:"severity"`
	MetricMetadata payload.JSON    `db:"metric_metadata"`
	ExpiresAt      *time.Time      `db:"expires_at"`
}

type AutomatedJob struct {
	JobID              uuid.UUID        `db:"job_id"`
	JobName            string           `db:"job_name"`
	JobDescription     *string          `db:"job_description"`
	JobFunction        string           `db:"job_function"`
	ScheduleExpression string           `db:"schedule_expression"`
	IsEnabled          bool             `db:"is_enabled"`
	LastExecution      *time.Time       `db:"last_execution"`
	LastStatus         *string          `db:"last_status"`
	LastErrorMessage   *string          `db:"last_error_message"`
	ExecutionCount     int64            `db:"execution_count"`
	AvgExecutionTimeMS *decimal.Decimal `db:"avg_execution_time_ms"`
	CreatedAt          time.Time        `db:"created_at"`
	UpdatedAt          time.Time        `db:"updated_at"`
}
