package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgEdge/pgedge-tradegen/internal/datagen/payload"
	"github.com/pgEdge/pgedge-tradegen/internal/db"
)

type quote struct {
	Symbol string          `db:"symbol"`
	Price  decimal.Decimal `db:"price"`
	Note   *string         `db:"note"`
	Tags   db.TextArray    `db:"tags"`
	Extra  payload.JSON    `db:"extra"`
}

func TestWriteAppendsBatches(t *testing.T) {
	dir, err := NewDir(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)

	note := "first"
	require.NoError(t, dir.Write("quotes", []quote{
		{Symbol: "AAPL", Price: decimal.RequireFromString("189.25"), Note: &note, Tags: db.TextArray{"tech"}},
	}))
	require.NoError(t, dir.Write("quotes", []quote{
		{Symbol: "MSFT", Price: decimal.RequireFromString("402.10"), Extra: payload.Of(payload.Map{"k": payload.Int(1)})},
	}))
	require.NoError(t, dir.Close())

	data, err := os.ReadFile(filepath.Join(dir.Path(), "quotes.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "symbol,price,note,tags,extra", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "AAPL,189.25,first,"))
	assert.True(t, strings.HasPrefix(lines[2], "MSFT,402.1,,,"))
	assert.Contains(t, lines[2], `""k"":1`)

	assert.Equal(t, map[string]int{"quotes": 2}, dir.Rows())
}

func TestWriteSeparateTables(t *testing.T) {
	dir, err := NewDir(t.TempDir())
	require.NoError(t, err)
	defer dir.Close()

	require.NoError(t, dir.Write("a", []quote{{Symbol: "X"}}))
	require.NoError(t, dir.Write("b", []quote{{Symbol: "Y"}, {Symbol: "Z"}}))

	assert.FileExists(t, filepath.Join(dir.Path(), "a.csv"))
	assert.FileExists(t, filepath.Join(dir.Path(), "b.csv"))
	assert.Equal(t, 1, dir.Rows()["a"])
	assert.Equal(t, 2, dir.Rows()["b"])
}
