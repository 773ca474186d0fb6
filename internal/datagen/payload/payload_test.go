package payload

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecimalRoundTrip(t *testing.T) {
	cases := []struct {
		text   string
		places int32
	}{
		{"0.00012345", 8},
		{"49999.99", 2},
		{"1.23456", 5},
		{"-0.0312", 4},
		{"100", 0},
	}

	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			d := decimal.RequireFromString(c.text)
			doc := Map{"value": Dec(d), "nested": List{Map{"v": Dec(d)}}}

			raw, err := Encode(doc)
			require.NoError(t, err)

			var back struct {
				Value  float64              `json:"value"`
				Nested []map[string]float64 `json:"nested"`
			}
			require.NoError(t, json.Unmarshal(raw, &back))

			tolerance := math.Pow10(-int(c.places)) / 2
			assert.InDelta(t, d.InexactFloat64(), back.Value, tolerance)
			require.Len(t, back.Nested, 1)
			assert.InDelta(t, d.InexactFloat64(), back.Nested[0]["v"], tolerance)

			// Parsing back at the declared precision gives the original.
			got := decimal.NewFromFloat(back.Value).Round(c.places)
			assert.True(t, d.Equal(got), "want %s, got %s", d, got)
		})
	}
}

func TestPlainVariants(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	doc := Map{
		"int":    Int(14),
		"float":  Float(0.25),
		"string": String("above"),
		"bool":   Bool(true),
		"null":   Null{},
		"time":   At(ts),
		"list":   Strings([]string{"email", "sms"}),
	}

	plain, ok := Plain(doc).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, int64(14), plain["int"])
	assert.Equal(t, 0.25, plain["float"])
	assert.Equal(t, "above", plain["string"])
	assert.Equal(t, true, plain["bool"])
	assert.Nil(t, plain["null"])
	assert.Equal(t, "2024-05-01T12:30:00Z", plain["time"])
	assert.Equal(t, []any{"email", "sms"}, plain["list"])
}

func TestEncodeIsValidJSON(t *testing.T) {
	raw, err := Encode(Map{"rsi": Int(55), "macd": Dec(decimal.RequireFromString("-1.2345"))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"rsi": 55, "macd": -1.2345}`, string(raw))
}

func TestFloat64(t *testing.T) {
	v, ok := Float64(Dec(decimal.RequireFromString("2.5")))
	assert.True(t, ok)
	assert.Equal(t, 2.5, v)

	v, ok = Float64(Int(3))
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)

	_, ok = Float64(String("x"))
	assert.False(t, ok)
}

func TestJSONColumn(t *testing.T) {
	var empty JSON
	assert.True(t, empty.IsNull())

	v, err := empty.ColumnValue()
	require.NoError(t, err)
	assert.Nil(t, v)

	s, err := empty.MarshalCSV()
	require.NoError(t, err)
	assert.Empty(t, s)

	doc := Of(Map{"24/7": Bool(true)})
	v, err = doc.ColumnValue()
	require.NoError(t, err)
	assert.JSONEq(t, `{"24/7": true}`, string(v.(json.RawMessage)))

	s, err = doc.MarshalCSV()
	require.NoError(t, err)
	assert.JSONEq(t, `{"24/7": true}`, s)
}
