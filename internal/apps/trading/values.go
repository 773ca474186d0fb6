package trading

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pgEdge/pgedge-tradegen/internal/datagen"
)

const day = 24 * time.Hour

// Small helpers for optional columns. Each draws the presence decision
// before the value, like datagen.Maybe.

func (g *Generator) maybeTime(p float64) *time.Time {
	return datagen.Maybe(g.faker, p, g.faker.Timestamp)
}

func (g *Generator) maybeDecimal(p, min, max float64, places int32) *decimal.Decimal {
	return datagen.Maybe(g.faker, p, func() decimal.Decimal {
		return g.faker.Decimal(min, max, places)
	})
}

func (g *Generator) maybeInt(p float64, min, max int) *int {
	return datagen.Maybe(g.faker, p, func() int {
		return g.faker.Int(min, max)
	})
}

func (g *Generator) maybeBool(p float64) *bool {
	return datagen.Maybe(g.faker, p, g.faker.Bool)
}

func (g *Generator) maybeChoice(p float64, items []string) *string {
	return datagen.Maybe(g.faker, p, func() string {
		return datagen.Choose(g.faker, items)
	})
}

func (g *Generator) maybeText(p float64, maxLen int, gen func() string) *string {
	return datagen.Maybe(g.faker, p, func() string {
		return datagen.Truncate(gen(), maxLen)
	})
}

// after returns a time between lo and hi after t.
func (g *Generator) after(t time.Time, lo, hi time.Duration) time.Time {
	return g.faker.TimestampIn(t.Add(lo), t.Add(hi+time.Second))
}

// afterDays is after with whole-day offsets.
func (g *Generator) afterDays(t time.Time, lo, hi int) time.Time {
	return t.Add(time.Duration(g.faker.Int(lo, hi)) * day)
}

// earlyTimestamp returns a time in the first thirty days of the window.
func (g *Generator) earlyTimestamp() time.Time {
	start, _ := g.faker.Window()
	return g.faker.TimestampIn(start, start.Add(30*day))
}

// scale multiplies a by factor and rounds to places.
func scale(a, factor decimal.Decimal, places int32) decimal.Decimal {
	return a.Mul(factor).Round(places)
}

// plus returns 1+d.
func plus(d decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(d)
}

// minus returns 1-d.
func minus(d decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Sub(d)
}

// hundred is used for percentage arithmetic.
var hundred = decimal.NewFromInt(100)

// unique returns s, or s with a numeric suffix when s was already taken.
// The result never exceeds maxLen bytes.
func unique(seen map[string]bool, s string, maxLen int) string {
	s = datagen.Truncate(s, maxLen)
	candidate := s
	for i := 2; seen[candidate]; i++ {
		suffix := strconv.Itoa(i)
		candidate = datagen.Truncate(s, maxLen-len(suffix)) + suffix
	}
	seen[candidate] = true
	return candidate
}

// uniqueEmail is unique for addresses; the suffix goes on the local part.
func uniqueEmail(seen map[string]bool, email string, maxLen int) string {
	email = datagen.Truncate(email, maxLen)
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return unique(seen, email, maxLen)
	}
	candidate := email
	for i := 2; seen[candidate]; i++ {
		suffix := strconv.Itoa(i)
		room := maxLen - len(domain) - 1 - len(suffix)
		candidate = datagen.Truncate(local, max(room, 1)) + suffix + "@" + domain
	}
	seen[candidate] = true
	return candidate
}

// label formats a capitalized word-based name.
func label(words ...string) string {
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
