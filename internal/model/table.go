package model

import (
	"slices"
	"sort"
)

// DateFormat is the layout of every date on a date axis, in tables and on disk.
const DateFormat = "2006-01-02"

// PriceTable is a date × symbol grid of closing prices keyed by provider-form symbols.
//
// Rows may be appended in any order and may repeat a date; Dedupe and Sort normalize
// the axis. Columns keep their insertion order.
type PriceTable struct {
	dates   []string
	symbols []string
	index   map[string]int
	cols    [][]Price
}

// TrimmedDate describes a row removed by TrimSparseTrailing.
type TrimmedDate struct {
	Date     string
	Coverage float64
}

// NewPriceTable returns an empty table with the given (all-null) columns.
func NewPriceTable(symbols ...string) *PriceTable {
	t := &PriceTable{index: make(map[string]int)}
	for _, s := range symbols {
		t.AddSymbol(s)
	}
	return t
}

// AddSymbol adds an all-null column. It reports false if the column already exists.
func (t *PriceTable) AddSymbol(sym string) bool {
	if _, ok := t.index[sym]; ok {
		return false
	}
	t.index[sym] = len(t.symbols)
	t.symbols = append(t.symbols, sym)
	t.cols = append(t.cols, make([]Price, len(t.dates)))
	return true
}

// AppendRow adds one row. Symbols not yet in the table get a new column, added in
// sorted order; columns absent from values are null on this row.
func (t *PriceTable) AppendRow(date string, values map[string]Price) {
	fresh := make([]string, 0)
	for sym := range values {
		if !t.Has(sym) {
			fresh = append(fresh, sym)
		}
	}
	sort.Strings(fresh)
	for _, sym := range fresh {
		t.AddSymbol(sym)
	}
	t.dates = append(t.dates, date)
	for i, sym := range t.symbols {
		t.cols[i] = append(t.cols[i], values[sym])
	}
}

// Set writes one cell, adding the row (at the end) or the column when missing.
// When date already occurs more than once the last occurrence is written.
func (t *PriceTable) Set(date, sym string, p Price) {
	t.AddSymbol(sym)
	row := -1
	for i := len(t.dates) - 1; i >= 0; i-- {
		if t.dates[i] == date {
			row = i
			break
		}
	}
	if row < 0 {
		t.AppendRow(date, nil)
		row = len(t.dates) - 1
	}
	t.cols[t.index[sym]][row] = p
}

// Clone returns a deep copy.
func (t *PriceTable) Clone() *PriceTable {
	c := NewPriceTable(t.symbols...)
	c.dates = slices.Clone(t.dates)
	for i, col := range t.cols {
		c.cols[i] = slices.Clone(col)
	}
	return c
}

// Len returns the number of rows.
func (t *PriceTable) Len() int { return len(t.dates) }

// Width returns the number of symbol columns.
func (t *PriceTable) Width() int { return len(t.symbols) }

// Empty reports whether the table carries no data at all.
func (t *PriceTable) Empty() bool { return t == nil || t.Len() == 0 || t.Width() == 0 }

// Dates returns a copy of the date axis.
func (t *PriceTable) Dates() []string { return slices.Clone(t.dates) }

// Symbols returns a copy of the column names in insertion order.
func (t *PriceTable) Symbols() []string { return slices.Clone(t.symbols) }

// Has reports whether sym is a column of the table.
func (t *PriceTable) Has(sym string) bool {
	_, ok := t.index[sym]
	return ok
}

// Column returns a copy of the values of sym, aligned with Dates.
func (t *PriceTable) Column(sym string) ([]Price, bool) {
	i, ok := t.index[sym]
	if !ok {
		return nil, false
	}
	return slices.Clone(t.cols[i]), true
}

// Value returns the cell at row for sym, or null when the column does not exist.
func (t *PriceTable) Value(row int, sym string) Price {
	i, ok := t.index[sym]
	if !ok || row < 0 || row >= len(t.dates) {
		return Null
	}
	return t.cols[i][row]
}

// Coverage returns the fraction of columns holding a price on row.
func (t *PriceTable) Coverage(row int) float64 {
	if len(t.symbols) == 0 {
		return 0
	}
	valid := 0
	for _, col := range t.cols {
		if col[row].Valid {
			valid++
		}
	}
	return float64(valid) / float64(len(t.symbols))
}

// Dedupe removes repeated dates, keeping the last row for each date.
// It returns the number of rows removed.
func (t *PriceTable) Dedupe() int {
	last := lastRows(t.dates)
	if len(last) == len(t.dates) {
		return 0
	}
	keep := make([]int, 0, len(last))
	for i, d := range t.dates {
		if last[d] == i {
			keep = append(keep, i)
		}
	}
	removed := len(t.dates) - len(keep)
	t.selectRows(keep)
	return removed
}

// Sort orders rows by ascending date. Rows sharing a date keep their relative order.
func (t *PriceTable) Sort() {
	order := make([]int, len(t.dates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return t.dates[order[a]] < t.dates[order[b]] })
	t.selectRows(order)
}

// Join merges o into t as an outer join on the date axis: the result holds the union
// of both date axes and of both column sets. A column present in both tables keeps t's
// values and o's copy is discarded. Both sides are reduced to one row per date (last
// row wins) and the result is sorted. Join returns the discarded column names.
func (t *PriceTable) Join(o *PriceTable) []string {
	t.Dedupe()
	if o == nil {
		t.Sort()
		return nil
	}
	rowOf := make(map[string]int, len(t.dates))
	for i, d := range t.dates {
		rowOf[d] = i
	}
	oLast := lastRows(o.dates)
	for i, d := range o.dates {
		if oLast[d] != i {
			continue
		}
		if _, ok := rowOf[d]; !ok {
			t.AppendRow(d, nil)
			rowOf[d] = len(t.dates) - 1
		}
	}
	var discarded []string
	for c, sym := range o.symbols {
		if !t.AddSymbol(sym) {
			discarded = append(discarded, sym)
			continue
		}
		dst := t.cols[t.index[sym]]
		for i, d := range o.dates {
			if oLast[d] == i {
				dst[rowOf[d]] = o.cols[c][i]
			}
		}
	}
	t.Sort()
	return discarded
}

// TrimSparseTrailing drops rows from the end while fewer than threshold of the columns
// hold a price. It stops at the first row, scanning backward, that meets the threshold.
func (t *PriceTable) TrimSparseTrailing(threshold float64) []TrimmedDate {
	var trimmed []TrimmedDate
	if len(t.symbols) == 0 {
		return nil
	}
	for len(t.dates) > 0 {
		last := len(t.dates) - 1
		cov := t.Coverage(last)
		if cov >= threshold {
			break
		}
		trimmed = append(trimmed, TrimmedDate{Date: t.dates[last], Coverage: cov})
		t.dates = t.dates[:last]
		for i := range t.cols {
			t.cols[i] = t.cols[i][:last]
		}
	}
	return trimmed
}

func (t *PriceTable) selectRows(rows []int) {
	dates := make([]string, len(rows))
	for j, r := range rows {
		dates[j] = t.dates[r]
	}
	t.dates = dates
	for i, col := range t.cols {
		next := make([]Price, len(rows))
		for j, r := range rows {
			next[j] = col[r]
		}
		t.cols[i] = next
	}
}

func lastRows(dates []string) map[string]int {
	last := make(map[string]int, len(dates))
	for i, d := range dates {
		last[d] = i
	}
	return last
}
