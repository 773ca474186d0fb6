package trading

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pgEdge/pgedge-tradegen/internal/datagen"
	"github.com/pgEdge/pgedge-tradegen/internal/datagen/payload"
)

// generateUserPreferences writes exactly one preference row per user.
func (g *Generator) generateUserPreferences(ctx context.Context) (int, error) {
	if err := need("users", len(g.users)); err != nil {
		return 0, err
	}
	f := g.faker
	prefs := make([]UserPreference, 0, len(g.users))

	for _, u := range g.users {
		prefs = append(prefs, UserPreference{
			PreferenceID:         f.UUID(),
			UserID:               u.UserID,
			DefaultIndicators:    payload.Of(g.indicatorPreferences()),
			NotificationSettings: payload.Of(g.notificationSettings()),
			UILayout:             payload.Of(g.uiLayout()),
			AlertPreferences:     payload.Of(g.alertPreferences()),
			Theme:                datagen.Choose(f, themes),
			DefaultTimeframe:     datagen.Choose(f, timeframes),
			Language:             datagen.Choose(f, languages),
			CurrencyPreference:   datagen.Choose(f, prefCurrency),
		})
	}

	if err := save(ctx, g, "user_preferences", prefs); err != nil {
		return 0, err
	}
	g.preferences = prefs
	return len(prefs), nil
}

func (g *Generator) indicatorPreferences() payload.Map {
	f := g.faker
	return payload.Map{
		"favorites": payload.Strings(datagen.Sample(f, favoriteInds, f.Int(1, len(favoriteInds)))),
		"settings": payload.Map{
			"RSI": payload.Map{"period": payload.Int(f.Int(7, 21))},
			"MACD": payload.Map{
				"fast_period":   payload.Int(f.Int(8, 12)),
				"slow_period":   payload.Int(f.Int(21, 26)),
				"signal_period": payload.Int(f.Int(7, 9)),
			},
			"BOLLINGER_BANDS": payload.Map{
				"period":  payload.Int(f.Int(14, 30)),
				"std_dev": payload.Float(datagen.Choose(f, []float64{1.5, 2, 2.5, 3})),
			},
		},
	}
}

func (g *Generator) notificationSettings() payload.Map {
	f := g.faker
	return payload.Map{
		"email":         payload.Bool(f.Bool()),
		"push":          payload.Bool(f.Bool()),
		"sms":           payload.Bool(f.Bool()),
		"trade_alerts":  payload.Bool(f.Bool()),
		"market_alerts": payload.Bool(f.Bool()),
		"system_alerts": payload.Bool(f.Bool()),
		"price_alerts":  payload.Bool(f.Bool()),
		"frequency":     payload.String(datagen.Choose(f, []string{"real_time", "hourly", "daily", "weekly"})),
	}
}

func (g *Generator) uiLayout() payload.Map {
	f := g.faker
	return payload.Map{
		"sidebar":           payload.String(datagen.Choose(f, []string{"left", "right", "hidden"})),
		"chart_style":       payload.String(datagen.Choose(f, []string{"candles", "bars", "line", "heikin_ashi"})),
		"default_dashboard": payload.String(datagen.Choose(f, []string{"overview", "trading", "analytics", "portfolio"})),
		"widgets":           payload.Strings(datagen.Sample(f, dashWidgets, f.Int(2, len(dashWidgets)))),
	}
}

func (g *Generator) alertPreferences() payload.Map {
	f := g.faker
	prefs := payload.Map{
		"minimum_priority":      payload.String(datagen.Choose(f, priorities)),
		"notification_channels": payload.Strings(datagen.Sample(f, alertChannels, f.Int(1, len(alertChannels)))),
		"quiet_hours":           payload.Null{},
	}
	if f.Chance(0.5) {
		prefs["quiet_hours"] = payload.Map{
			"start": payload.String(fmt.Sprintf("%d:00", f.Int(18, 23))),
			"end":   payload.String(fmt.Sprintf("%d:00", f.Int(5, 9))),
		}
	}
	return prefs
}

// billingDays is the length of one billing period.
var billingDays = map[string]int{
	"MONTHLY":   30,
	"QUARTERLY": 90,
	"ANNUAL":    365,
}

// generateSubscriptions writes subscriptions whose fee follows the level's
// list price less any discount. Free plans carry no payment details.
func (g *Generator) generateSubscriptions(ctx context.Context) (int, error) {
	if err := need("users", len(g.users)); err != nil {
		return 0, err
	}
	f := g.faker
	now := f.Now()
	subs := make([]Subscription, 0, g.records)

	for range g.records {
		user := datagen.Choose(f, g.users)
		level := datagen.Choose(f, subscriptionLevels)
		cycle := datagen.Choose(f, billingCycles)
		start := f.Timestamp()
		end := start.Add(time.Duration(billingDays[cycle]) * day)

		fee := decimal.New(monthlyFees[level], -2)
		discount := g.maybeDecimal(0.3, 0, 25, 2)
		if discount != nil && !discount.IsZero() {
			fee = fee.Mul(minus(discount.Div(hundred))).Round(2)
		}

		s := Subscription{
			SubscriptionID:     f.UUID(),
			UserID:             user.UserID,
			SubscriptionLevel:  level,
			StartDate:          start,
			EndDate:            end,
			MonthlyFee:         fee,
			IsActive:           end.After(now),
			AutoRenew:          f.Chance(0.7),
			DiscountPercentage: discount,
			BillingCycle:       cycle,
		}
		if fee.IsPositive() {
			s.PaymentMethodID = datagen.Ptr("pm_" + f.SHA1Hex())
			s.LastPaymentDate = datagen.Ptr(start)
			if s.AutoRenew {
				s.NextPaymentDate = datagen.Ptr(end)
			}
		}
		s.TrialPeriodDays = g.maybeInt(0.2, 7, 30)
		if discount != nil && !discount.IsZero() {
			s.PromotionalCode = datagen.Ptr("PROMO" + f.Bothify("??##"))
		}
		s.GracePeriodDays = g.maybeInt(0.3, 3, 7)

		subs = append(subs, s)
	}

	if err := save(ctx, g, "subscriptions", subs); err != nil {
		return 0, err
	}
	g.subscriptions = subs
	return len(subs), nil
}

var sentiments = []string{"positive", "neutral", "negative"}

// generateAlerts writes alerts for random users. Delivery columns are only
// filled for alerts that were sent; acknowledgement columns only for
// alerts that were read.
func (g *Generator) generateAlerts(ctx context.Context) (int, error) {
	if err := need("users", len(g.users)); err != nil {
		return 0, err
	}
	f := g.faker
	alerts := make([]Alert, 0, g.records)

	pick := func(n int, id func(i int) uuid.UUID) *uuid.UUID {
		if n == 0 {
			return nil
		}
		return datagen.Maybe(f, 0.7, func() uuid.UUID { return id(f.Int(0, n-1)) })
	}

	for range g.records {
		user := datagen.Choose(f, g.users)
		a := Alert{
			AlertID:      f.UUID(),
			UserID:       user.UserID,
			StrategyID:   pick(len(g.strategies), func(i int) uuid.UUID { return g.strategies[i].StrategyID }),
			DataID:       pick(len(g.bars), func(i int) uuid.UUID { return g.bars[i].DataID }),
			InstrumentID: pick(len(g.instruments), func(i int) uuid.UUID { return g.instruments[i].InstrumentID }),
			AlertType:    datagen.Choose(f, alertTypes),
			Message:      f.Paragraph(),
			GeneratedAt:  f.Timestamp(),
		}
		gen := a.GeneratedAt
		a.SentAt = datagen.Maybe(f, 0.8, func() time.Time { return g.after(gen, time.Second, time.Hour) })
		a.IsRead = f.Chance(0.5)
		if a.SentAt != nil {
			a.DeliveryAttempts = f.Int(1, 5)
		}
		a.ConfidenceScore = g.maybeDecimal(0.7, 50, 99, 2)
		a.Timeframe = g.maybeChoice(0.7, timeframes)
		a.Priority = datagen.Choose(f, priorities)
		a.ExpirationTime = datagen.Maybe(f, 0.3, func() time.Time { return g.afterDays(gen, 1, 30) })
		if f.Chance(0.5) {
			a.TriggerConditions = payload.Of(payload.Map{
				"price":     payload.String(f.Decimal(10, 1000, 2).StringFixed(2)),
				"condition": payload.String("above"),
			})
		}
		a.RecommendedAction = g.maybeText(0.4, 100, func() string { return f.Sentence(8) })
		a.RiskAssessment = g.maybeText(0.3, 500, f.Paragraph)
		a.MarketContext = g.maybeText(0.3, 2000, f.Paragraph)
		if f.Chance(0.5) {
			a.DeliveryChannels = datagen.Sample(f, deliveryChannels, f.Int(1, len(deliveryChannels)))
		}
		if a.SentAt != nil {
			a.DeliveryStatus = payload.Of(payload.Map{
				"email": payload.String("sent"),
				"sms":   payload.String("failed"),
			})
			a.LastDeliveryAttempt = a.SentAt
		}
		a.Category = g.maybeText(0.5, 50, f.Word)
		a.Subcategory = g.maybeText(0.5, 50, f.Word)
		a.Sentiment = g.maybeChoice(0.4, sentiments)
		if a.IsRead {
			a.AcknowledgedAt = datagen.Maybe(f, 0.5, func() time.Time {
				return gen.Add(time.Duration(f.Int(1, 24)) * time.Hour)
			})
			a.ActionTaken = g.maybeText(0.3, 100, func() string { return f.Sentence(6) })
			a.OutcomeNotes = g.maybeText(0.3, 2000, f.Paragraph)
		}

		alerts = append(alerts, a)
	}

	if err := save(ctx, g, "alerts", alerts); err != nil {
		return 0, err
	}
	g.alerts = alerts
	return len(alerts), nil
}
