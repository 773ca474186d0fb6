package db

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upper string

func (u upper) ColumnValue() (any, error) {
	if u == "" {
		return nil, errors.New("empty")
	}
	return "UP:" + string(u), nil
}

type sample struct {
	ID      int              `db:"id"`
	Name    *string          `db:"name"`
	Price   decimal.Decimal  `db:"price"`
	Tags    TextArray        `db:"tags"`
	Code    upper            `db:"code"`
	Note    *decimal.Decimal `db:"note,omitempty"`
	skipped string
	Ignored string `db:"-"`
}

func TestColumns(t *testing.T) {
	assert.Equal(t, []string{"id", "name", "price", "tags", "code", "note"}, Columns[sample]())
	assert.Equal(t, Columns[sample](), Columns[*sample]())
}

func TestRows(t *testing.T) {
	name := "alpha"
	price := decimal.RequireFromString("12.50")
	records := []sample{
		{ID: 1, Name: &name, Price: price, Tags: TextArray{"a"}, Code: "x"},
		{ID: 2, Price: price, Code: "y"},
	}

	rows, err := Rows(records)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []any{1, "alpha", price, []string{"a"}, "UP:x", nil}, rows[0])
	assert.Equal(t, []any{2, nil, price, nil, "UP:y", nil}, rows[1])
}

func TestRowsValuerError(t *testing.T) {
	_, err := Rows([]sample{{ID: 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column code")
}

func TestArrayCSV(t *testing.T) {
	s, err := TextArray{"a b", `q"t`}.MarshalCSV()
	require.NoError(t, err)
	assert.Equal(t, `{"a b","q\"t"}`, s)

	s, err = TextArray(nil).MarshalCSV()
	require.NoError(t, err)
	assert.Empty(t, s)
}
