//-------------------------------------------------------------------------
//
// pgEdge Trade Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package datagen provides randomized value primitives for the generators.
// Every value drawn during a run comes from one seeded Faker so that a run
// can be reproduced from its seed.
package datagen

import (
	"crypto/sha256"
	"encoding/hex"
	"net/netip"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Faker provides fake data generation using gofakeit.
type Faker struct {
	faker *gofakeit.Faker
	seed  uint64
	start time.Time
	end   time.Time
}

// DefaultStart is the lower bound of the default timestamp window.
var DefaultStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)

// NewFaker creates a new Faker with a random seed.
func NewFaker() *Faker {
	return NewFakerWithSeed(uint64(time.Now().UnixNano()))
}

// NewFakerWithSeed creates a new Faker with a specific seed for reproducibility.
// The default window runs from DefaultStart to the current time.
func NewFakerWithSeed(seed uint64) *Faker {
	return &Faker{
		faker: gofakeit.New(seed),
		seed:  seed,
		start: DefaultStart,
		end:   time.Now().Truncate(time.Second),
	}
}

// Seed returns the seed the Faker was created with.
func (f *Faker) Seed() uint64 {
	return f.seed
}

// SetWindow replaces the default timestamp window.
func (f *Faker) SetWindow(start, end time.Time) {
	f.start = start
	f.end = end
}

// Window returns the default timestamp window.
func (f *Faker) Window() (time.Time, time.Time) {
	return f.start, f.end
}

// Now returns the end of the default window. Generators use it in place of
// the wall clock so a seeded run stays reproducible.
func (f *Faker) Now() time.Time {
	return f.end
}

// Timestamp returns a timestamp in the default window.
func (f *Faker) Timestamp() time.Time {
	return f.TimestampIn(f.start, f.end)
}

// TimestampIn returns a timestamp uniformly distributed over [start, end)
// at one-second resolution. It returns start when the range is empty.
func (f *Faker) TimestampIn(start, end time.Time) time.Time {
	seconds := int64(end.Sub(start) / time.Second)
	if seconds <= 0 {
		return start
	}
	offset := f.faker.IntN(int(seconds))
	return start.Add(time.Duration(offset) * time.Second)
}

// Decimal samples uniformly in [min, max] and returns the value rounded to
// places fractional digits as an exact decimal. The rounded float is
// formatted first and the decimal is parsed from that text.
func (f *Faker) Decimal(min, max float64, places int32) decimal.Decimal {
	if min > max {
		min, max = max, min
	}
	v := f.faker.Float64Range(min, max)
	return decimal.RequireFromString(strconv.FormatFloat(v, 'f', int(places), 64))
}

// DecimalBetween is Decimal for bounds that are already decimals.
func (f *Faker) DecimalBetween(min, max decimal.Decimal, places int32) decimal.Decimal {
	return f.Decimal(min.InexactFloat64(), max.InexactFloat64(), places)
}

// UUID returns a version 4 UUID drawn from the seeded source.
func (f *Faker) UUID() uuid.UUID {
	return uuid.MustParse(f.faker.UUID())
}

// IPv4 returns a random IPv4 address.
func (f *Faker) IPv4() netip.Addr {
	return netip.MustParseAddr(f.faker.IPv4Address())
}

// Chance returns true with probability p.
func (f *Faker) Chance(p float64) bool {
	return f.faker.Float64() < p
}

// Int generates a random integer between min and max (inclusive).
func (f *Faker) Int(min, max int) int {
	return f.faker.IntRange(min, max)
}

// Int64 generates a random int64 between min and max (inclusive).
func (f *Faker) Int64(min, max int64) int64 {
	return int64(f.faker.IntRange(int(min), int(max)))
}

// Float64 generates a random float64 between min and max.
func (f *Faker) Float64(min, max float64) float64 {
	return f.faker.Float64Range(min, max)
}

// Bool generates a random boolean.
func (f *Faker) Bool() bool {
	return f.faker.Bool()
}

// Username generates a random user name.
func (f *Faker) Username() string {
	return f.faker.Username()
}

// Email generates a random email address.
func (f *Faker) Email() string {
	return f.faker.Email()
}

// Name generates a random full name.
func (f *Faker) Name() string {
	return f.faker.Name()
}

// Company generates a random company name.
func (f *Faker) Company() string {
	return f.faker.Company()
}

// Word generates a random word.
func (f *Faker) Word() string {
	return f.faker.Word()
}

// Sentence generates a random sentence.
func (f *Faker) Sentence(wordCount int) string {
	return f.faker.Sentence(wordCount)
}

// Paragraph generates a random paragraph of three short sentences.
func (f *Faker) Paragraph() string {
	return f.faker.Paragraph(1, 3, 8, " ")
}

// Text generates a few paragraphs of free text.
func (f *Faker) Text() string {
	return f.faker.Paragraph(2, 3, 10, "\n")
}

// URL generates a random URL.
func (f *Faker) URL() string {
	return f.faker.URL()
}

// UserAgent generates a random browser user agent.
func (f *Faker) UserAgent() string {
	return f.faker.UserAgent()
}

// Bothify replaces every '?' with a letter and every '#' with a digit.
func (f *Faker) Bothify(pattern string) string {
	return f.faker.Numerify(f.faker.Lexify(pattern))
}

// PasswordHash returns the hex SHA-256 of a random password.
func (f *Faker) PasswordHash() string {
	sum := sha256.Sum256([]byte(f.faker.Password(true, true, true, true, false, 16)))
	return hex.EncodeToString(sum[:])
}

// SHA1Hex returns 40 random hex digits.
func (f *Faker) SHA1Hex() string {
	return f.RandomString(40, "0123456789abcdef")
}

// Digits generates a random string of digits of length n.
func (f *Faker) Digits(n int) string {
	return f.faker.DigitN(uint(n))
}

// RandomString generates a string from the given character set.
func (f *Faker) RandomString(length int, charset string) string {
	result := make([]byte, length)
	for i := range result {
		result[i] = charset[f.faker.IntN(len(charset))]
	}
	return string(result)
}

// Choose returns a random element from the given slice.
func Choose[T any](f *Faker, items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[f.faker.IntN(len(items))]
}

// Sample returns n distinct elements of items in random order. n is clamped
// to len(items).
func Sample[T any](f *Faker, items []T, n int) []T {
	n = min(max(n, 0), len(items))
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		j := i + f.faker.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		out = append(out, items[idx[i]])
	}
	return out
}

// Maybe calls gen and returns a pointer to its result with probability p,
// otherwise nil.
func Maybe[T any](f *Faker, p float64, gen func() T) *T {
	if !f.Chance(p) {
		return nil
	}
	v := gen()
	return &v
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Truncate truncates a string to max length if needed.
func Truncate(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen]
	}
	return s
}
