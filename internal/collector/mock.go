package collector

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"SectorStrength/internal/model"
)

// MockProvider returns controllable fixed data for development and testing.
//
// With Responses set, call n returns Responses[n] verbatim (nil entries mean an
// empty result). Otherwise each call returns the slice of Source covering the
// requested symbols and window. Calls listed in FailCalls (1-based) and batches
// containing a FailSymbols entry return an error.
type MockProvider struct {
	Source      *model.PriceTable
	Responses   []*model.PriceTable
	FailCalls   map[int]error
	FailSymbols map[string]bool

	mu    sync.Mutex
	calls [][]string
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) FetchCloses(_ context.Context, symbols []string, w Window) (*model.PriceTable, error) {
	m.mu.Lock()
	m.calls = append(m.calls, slices.Clone(symbols))
	call := len(m.calls)
	m.mu.Unlock()

	if err, ok := m.FailCalls[call]; ok {
		return nil, err
	}
	for _, s := range symbols {
		if m.FailSymbols[s] {
			return nil, fmt.Errorf("mock: symbol %s unavailable", s)
		}
	}
	if m.Responses != nil {
		if call > len(m.Responses) || m.Responses[call-1] == nil {
			return model.NewPriceTable(), nil
		}
		return m.Responses[call-1].Clone(), nil
	}
	if m.Source == nil {
		return model.NewPriceTable(), nil
	}

	cols := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if m.Source.Has(s) {
			cols = append(cols, s)
		}
	}
	out := model.NewPriceTable(cols...)
	for i, d := range m.Source.Dates() {
		if !w.Contains(d) {
			continue
		}
		vals := make(map[string]model.Price, len(cols))
		for _, c := range cols {
			vals[c] = m.Source.Value(i, c)
		}
		out.AppendRow(d, vals)
	}
	return out, nil
}

// Calls returns the symbol batches requested so far.
func (m *MockProvider) Calls() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.calls)
}
