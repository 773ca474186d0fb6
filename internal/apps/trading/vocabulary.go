package trading

// Categorical value pools shared by the generators.
var (
	userTypes        = []string{"REGULAR", "PREMIUM", "ADMIN", "SUPPORT", "ANALYST"}
	accountStatuses  = []string{"ACTIVE", "INACTIVE", "SUSPENDED", "CLOSED"}
	accountTypes     = []string{"STANDARD", "MARGIN", "DEMO", "CORPORATE", "VIP"}
	userTimezones    = []string{"UTC", "America/New_York", "Europe/London", "Asia/Tokyo"}
	currencies       = []string{"USD", "EUR", "JPY", "GBP", "CHF", "AUD", "CAD", "NZD", "CNY"}
	instrumentTypes  = []string{"FOREX", "STOCK", "CRYPTO", "FUTURES", "OPTIONS", "COMMODITY", "INDEX", "BOND", "ETF"}
	exchanges        = []string{"NYSE", "NASDAQ", "LSE", "TSE", "SSE", "BINANCE", "COINBASE", "KRAKEN", "BITMEX"}
	sectors          = []string{"Technology", "Finance", "Healthcare", "Energy", "Consumer", "Industrial", "Materials", "Utilities", "Real Estate"}
	countries        = []string{"US", "UK", "JP", "DE", "FR", "CH", "AU", "CA", "CN"}
	timeframes       = []string{"M1", "M5", "M15", "M30", "H1", "H4", "D1", "W1", "MN"}
	dataSources      = []string{"EXCHANGE", "BROKER", "THIRD_PARTY", "CONSOLIDATED", "PROPRIETARY"}
	riskLevels       = []string{"VERY_LOW", "LOW", "MODERATE", "HIGH", "VERY_HIGH"}
	marketConditions = []string{"BULL", "BEAR", "VOLATILE", "RANGING", "TRENDING", "BREAKOUT", "CORRECTION"}
	trendDirections  = []string{"UPWARD", "DOWNWARD", "SIDEWAYS", "REVERSAL_UP", "REVERSAL_DOWN"}
	priorities       = []string{"LOW", "MEDIUM", "HIGH", "URGENT", "CRITICAL"}
	leverageChoices  = []int64{1, 2, 5, 10, 20, 50, 100}

	strategyTypes  = []string{"TREND_FOLLOWING", "MEAN_REVERSION", "BREAKOUT", "MOMENTUM", "SCALPING", "ARBITRAGE", "GRID", "MARTINGALE", "HEDGING"}
	algorithmTypes = []string{"STATISTICAL", "MACHINE_LEARNING", "NEURAL_NETWORK", "RULE_BASED", "FUZZY_LOGIC", "GENETIC"}

	rebalancingFrequencies = []string{"DAILY", "WEEKLY", "MONTHLY", "QUARTERLY", "YEARLY"}
	investmentStyles       = []string{"CONSERVATIVE", "BALANCED", "GROWTH", "AGGRESSIVE", "INCOME"}
	investmentHorizons     = []string{"SHORT_TERM", "MEDIUM_TERM", "LONG_TERM"}
	allocationTypes        = []string{"CORE", "SATELLITE", "TACTICAL", "STRATEGIC"}
	periodTypes            = []string{"DAILY", "WEEKLY", "MONTHLY", "QUARTERLY", "YEARLY"}

	tradeDirections = []string{"BUY", "SELL"}
	tradeStatuses   = []string{"OPEN", "CLOSED", "CANCELLED", "PENDING"}
	orderTypes      = []string{"MARKET", "LIMIT", "STOP", "STOP_LIMIT"}
	timeInForce     = []string{"GTC", "IOC", "FOK", "DAY"}
	tradeTags       = []string{"TREND", "BREAKOUT", "PULLBACK", "REVERSAL", "NEWS", "EARNINGS", "TECHNICAL"}

	executionStatuses   = []string{"PENDING", "FILLED", "PARTIAL", "REJECTED", "CANCELLED"}
	executionVenues     = []string{"NYSE", "NASDAQ", "LSE", "BINANCE", "COINBASE", "FTX", "INTERACTIVE_BROKERS", "TD_AMERITRADE"}
	executionAlgorithms = []string{"TWAP", "VWAP", "DARK_POOL", "SNIPER", "ICEBERG", "POV", "IMPLEMENTATION_SHORTFALL"}

	indicatorTypes     = []string{"RSI", "MACD", "BOLLINGER_BANDS", "SMA", "EMA", "STOCHASTIC", "ADX", "ATR", "ICHIMOKU", "FIBONACCI"}
	calculationMethods = []string{"TRADITIONAL", "SMOOTHED", "WEIGHTED", "EXPONENTIAL", "ADAPTIVE"}

	alertTypes       = []string{"PRICE", "TREND", "NEWS", "TECHNICAL", "FUNDAMENTAL", "SYSTEM"}
	deliveryChannels = []string{"email", "sms", "push", "app"}

	themes        = []string{"LIGHT", "DARK", "SYSTEM"}
	languages     = []string{"es", "en", "fr", "de", "it", "pt", "ru", "zh", "ja"}
	prefCurrency  = []string{"USD", "EUR", "GBP", "JPY", "CHF", "CAD", "AUD", "CNY"}
	favoriteInds  = []string{"RSI", "MACD", "BOLLINGER_BANDS", "SMA", "EMA", "STOCHASTIC"}
	dashWidgets   = []string{"portfolio_overview", "watchlist", "recent_trades", "market_news", "economic_calendar", "performance_chart"}
	alertChannels = []string{"email", "push", "sms", "in_app"}

	subscriptionLevels = []string{"FREE", "BASIC", "PREMIUM", "PROFESSIONAL", "ENTERPRISE"}
	billingCycles      = []string{"MONTHLY", "QUARTERLY", "ANNUAL"}

	auditTables     = []string{"users", "accounts", "trades", "portfolios", "strategies"}
	auditOperations = []string{"INSERT", "UPDATE", "DELETE"}

	metricComponents = []string{"API_SERVER", "DATABASE", "QUEUE", "CACHE", "WORKER", "WEBSOCKET"}
	severities       = []string{"NORMAL", "WARNING", "CRITICAL"}

	jobFunctions = []string{"DATA_SYNC", "MARKET_ANALYSIS", "PORTFOLIO_REBALANCE", "STRATEGY_OPTIMIZATION",
		"RISK_ASSESSMENT", "REPORT_GENERATION", "ALERT_PROCESSING", "SYSTEM_MAINTENANCE"}
	jobSchedules = []string{"* * * * *", "*/5 * * * *", "0 * * * *", "0 0 * * *", "0 0 * * 1", "0 0 1 * *"}
	jobStatuses  = []string{"SUCCESS", "FAILED", "SKIPPED", "RUNNING"}
)

// role is a fixed role definition.
type role struct {
	name                       string
	read, write, delete, admin bool
}

// Roles are fixed; the first one is the system role.
var roleDefs = []role{
	{"Admin", true, true, true, true},
	{"User", true, true, false, false},
	{"Analyst", true, true, true, false},
	{"Support", true, false, false, false},
	{"Manager", true, true, false, true},
}

// metricKind pairs a health metric with its unit.
type metricKind struct {
	name, unit string
}

var metricKinds = []metricKind{
	{"CPU_USAGE", "PERCENT"},
	{"MEMORY_USAGE", "MB"},
	{"DATABASE_CONNECTIONS", "COUNT"},
	{"API_LATENCY", "MS"},
	{"QUEUE_LENGTH", "COUNT"},
	{"ERROR_RATE", "PERCENT"},
}

// Monthly list price per subscription level, in cents.
var monthlyFees = map[string]int64{
	"FREE":         0,
	"BASIC":        999,
	"PREMIUM":      2999,
	"PROFESSIONAL": 9999,
	"ENTERPRISE":   49999,
}

const (
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)
