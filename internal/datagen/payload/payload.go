//-------------------------------------------------------------------------
//
// pgEdge Trade Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package payload models the semi-structured documents stored in JSONB
// columns. A document is a tree of Value variants; exact decimals stay
// exact until Encode converts them to float64.
package payload

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Value is one node of a document. The set of implementations is closed.
type Value interface {
	isValue()
}

type (
	// Int is an integer leaf.
	Int int64
	// Float is a floating point leaf.
	Float float64
	// String is a text leaf.
	String string
	// Bool is a boolean leaf.
	Bool bool
	// Null is a JSON null.
	Null struct{}
	// Decimal is an exact decimal leaf.
	Decimal struct{ decimal.Decimal }
	// Time is a timestamp leaf, encoded as RFC 3339 text.
	Time struct{ time.Time }
	// List is an ordered sequence of values.
	List []Value
	// Map is a keyed set of values.
	Map map[string]Value
)

func (Int) isValue()     {}
func (Float) isValue()   {}
func (String) isValue()  {}
func (Bool) isValue()    {}
func (Null) isValue()    {}
func (Decimal) isValue() {}
func (Time) isValue()    {}
func (List) isValue()    {}
func (Map) isValue()     {}

// Dec wraps an exact decimal.
func Dec(d decimal.Decimal) Decimal {
	return Decimal{d}
}

// At wraps a timestamp.
func At(t time.Time) Time {
	return Time{t}
}

// Strings builds a list of text leaves.
func Strings(items []string) List {
	out := make(List, len(items))
	for i, s := range items {
		out[i] = String(s)
	}
	return out
}

// Plain converts a document into plain Go values that encoding/json can
// marshal. Decimals become their nearest float64.
func Plain(v Value) any {
	switch n := v.(type) {
	case nil, Null:
		return nil
	case Int:
		return int64(n)
	case Float:
		return float64(n)
	case String:
		return string(n)
	case Bool:
		return bool(n)
	case Decimal:
		return n.InexactFloat64()
	case Time:
		return n.Format(time.RFC3339)
	case List:
		out := make([]any, len(n))
		for i, item := range n {
			out[i] = Plain(item)
		}
		return out
	case Map:
		out := make(map[string]any, len(n))
		for k, item := range n {
			out[k] = Plain(item)
		}
		return out
	default:
		panic(fmt.Sprintf("payload: unknown value type %T", v))
	}
}

// Encode serializes a document to JSON.
func Encode(v Value) ([]byte, error) {
	return json.Marshal(Plain(v))
}

// Float64 returns the numeric value of a leaf, reporting false for
// non-numeric values.
func Float64(v Value) (float64, bool) {
	switch n := v.(type) {
	case Int:
		return float64(n), true
	case Float:
		return float64(n), true
	case Decimal:
		return n.InexactFloat64(), true
	default:
		return 0, false
	}
}
