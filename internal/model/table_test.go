package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(pairs ...interface{}) map[string]Price {
	m := make(map[string]Price)
	for i := 0; i+1 < len(pairs); i += 2 {
		sym := pairs[i].(string)
		switch v := pairs[i+1].(type) {
		case nil:
			m[sym] = Null
		case float64:
			m[sym] = Some(v)
		}
	}
	return m
}

func TestPriceTable_AppendRowAddsColumnsSorted(t *testing.T) {
	tbl := NewPriceTable()
	tbl.AppendRow("2024-01-02", row("MSFT", 10.0, "AAPL", 20.0))
	tbl.AppendRow("2024-01-03", row("XOM", 5.0))

	assert.Equal(t, []string{"AAPL", "MSFT", "XOM"}, tbl.Symbols())
	assert.Equal(t, 2, tbl.Len())

	xom, ok := tbl.Column("XOM")
	require.True(t, ok)
	assert.Equal(t, []Price{Null, Some(5)}, xom)
	assert.Equal(t, Null, tbl.Value(1, "AAPL"))
	assert.Equal(t, Null, tbl.Value(0, "NOPE"))
}

func TestPriceTable_DedupeKeepsLastRow(t *testing.T) {
	tbl := NewPriceTable("A")
	tbl.AppendRow("2024-01-02", row("A", 1.0))
	tbl.AppendRow("2024-01-03", row("A", 2.0))
	tbl.AppendRow("2024-01-03", row("A", 3.0))

	removed := tbl.Dedupe()

	assert.Equal(t, 1, removed)
	assert.Equal(t, []string{"2024-01-02", "2024-01-03"}, tbl.Dates())
	col, _ := tbl.Column("A")
	assert.Equal(t, []Price{Some(1), Some(3)}, col)
	assert.Equal(t, 0, tbl.Dedupe())
}

func TestPriceTable_SortAscending(t *testing.T) {
	tbl := NewPriceTable("A")
	tbl.AppendRow("2024-01-04", row("A", 4.0))
	tbl.AppendRow("2024-01-02", row("A", 2.0))
	tbl.AppendRow("2024-01-03", row("A", 3.0))

	tbl.Sort()

	assert.Equal(t, []string{"2024-01-02", "2024-01-03", "2024-01-04"}, tbl.Dates())
	col, _ := tbl.Column("A")
	assert.Equal(t, []Price{Some(2), Some(3), Some(4)}, col)
}

func TestPriceTable_JoinOuterOnDates(t *testing.T) {
	left := NewPriceTable()
	left.AppendRow("2024-01-02", row("A", 1.0))
	left.AppendRow("2024-01-03", row("A", 2.0))

	right := NewPriceTable()
	right.AppendRow("2024-01-03", row("B", 20.0))
	right.AppendRow("2024-01-04", row("B", 30.0))

	discarded := left.Join(right)

	assert.Empty(t, discarded)
	assert.Equal(t, []string{"2024-01-02", "2024-01-03", "2024-01-04"}, left.Dates())
	a, _ := left.Column("A")
	b, _ := left.Column("B")
	assert.Equal(t, []Price{Some(1), Some(2), Null}, a)
	assert.Equal(t, []Price{Null, Some(20), Some(30)}, b)
}

func TestPriceTable_JoinKeepsFirstSeenColumn(t *testing.T) {
	left := NewPriceTable()
	left.AppendRow("2024-01-02", row("A", 1.0))

	right := NewPriceTable()
	right.AppendRow("2024-01-02", row("A", 99.0, "B", 5.0))
	right.AppendRow("2024-01-03", row("A", 98.0, "B", 6.0))

	discarded := left.Join(right)

	assert.Equal(t, []string{"A"}, discarded)
	a, _ := left.Column("A")
	assert.Equal(t, []Price{Some(1), Null}, a)
	b, _ := left.Column("B")
	assert.Equal(t, []Price{Some(5), Some(6)}, b)
}

func TestPriceTable_JoinCollapsesDuplicateDatesLastWins(t *testing.T) {
	left := NewPriceTable("A")
	left.AppendRow("2024-01-02", row("A", 1.0))

	right := NewPriceTable("B")
	right.AppendRow("2024-01-02", row("B", 7.0))
	right.AppendRow("2024-01-02", row("B", 8.0))

	left.Join(right)

	assert.Equal(t, []string{"2024-01-02"}, left.Dates())
	b, _ := left.Column("B")
	assert.Equal(t, []Price{Some(8)}, b)
}

func TestPriceTable_TrimSparseTrailing(t *testing.T) {
	tests := []struct {
		name      string
		lastRow   map[string]Price
		wantDates []string
	}{
		{"below half dropped", row("A", 1.0, "B", nil, "C", nil, "D", nil), []string{"2024-01-02"}},
		{"exactly half kept", row("A", 1.0, "B", 1.0, "C", nil, "D", nil), []string{"2024-01-02", "2024-01-03"}},
		{"full kept", row("A", 1.0, "B", 1.0, "C", 1.0, "D", 1.0), []string{"2024-01-02", "2024-01-03"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := NewPriceTable("A", "B", "C", "D")
			tbl.AppendRow("2024-01-02", row("A", 1.0, "B", 1.0, "C", 1.0, "D", 1.0))
			tbl.AppendRow("2024-01-03", tt.lastRow)

			tbl.TrimSparseTrailing(0.5)

			assert.Equal(t, tt.wantDates, tbl.Dates())
			for _, sym := range tbl.Symbols() {
				col, _ := tbl.Column(sym)
				assert.Len(t, col, tbl.Len())
			}
		})
	}
}

func TestPriceTable_TrimStopsAtFirstDenseRow(t *testing.T) {
	tbl := NewPriceTable("A", "B")
	tbl.AppendRow("2024-01-02", row("A", nil, "B", nil))
	tbl.AppendRow("2024-01-03", row("A", 1.0, "B", 1.0))
	tbl.AppendRow("2024-01-04", row("A", nil, "B", nil))
	tbl.AppendRow("2024-01-05", row("A", nil, "B", nil))

	trimmed := tbl.TrimSparseTrailing(0.5)

	require.Len(t, trimmed, 2)
	assert.Equal(t, "2024-01-05", trimmed[0].Date)
	assert.Equal(t, "2024-01-04", trimmed[1].Date)
	assert.Equal(t, 0.0, trimmed[0].Coverage)
	assert.Equal(t, []string{"2024-01-02", "2024-01-03"}, tbl.Dates())
}

func TestPriceTable_Empty(t *testing.T) {
	var nilTable *PriceTable
	assert.True(t, nilTable.Empty())
	assert.True(t, NewPriceTable().Empty())
	assert.True(t, NewPriceTable("A").Empty())

	tbl := NewPriceTable("A")
	tbl.Set("2024-01-02", "A", Some(1))
	assert.False(t, tbl.Empty())
}

func TestPriceTable_SetOverwritesExistingCell(t *testing.T) {
	tbl := NewPriceTable()
	tbl.Set("2024-01-02", "A", Some(1))
	tbl.Set("2024-01-02", "A", Some(2))
	tbl.Set("2024-01-02", "B", Some(3))

	assert.Equal(t, 1, tbl.Len())
	assert.Equal(t, Some(2), tbl.Value(0, "A"))
	assert.Equal(t, Some(3), tbl.Value(0, "B"))
}
