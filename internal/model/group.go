package model

import (
	"fmt"
	"slices"
	"time"
)

// Group is a static dashboard panel: a titled list of member symbols measured
// against a base symbol. Symbols are in domain form.
type Group struct {
	Key        string   `yaml:"key"`
	Title      string   `yaml:"title"`
	BaseSymbol string   `yaml:"base_symbol"`
	Symbols    []string `yaml:"symbols"`
}

// GroupRecord is the persisted columnar time series of one group.
// For every symbol in Symbols, len(Prices[symbol]) == len(Dates).
type GroupRecord struct {
	Title      string             `json:"title"`
	BaseSymbol string             `json:"baseSymbol"`
	Symbols    []string           `json:"symbols"`
	Dates      []string           `json:"dates"`
	Prices     map[string][]Price `json:"prices"`
}

// LastDate returns the most recent date of the record.
func (r *GroupRecord) LastDate() (string, bool) {
	if len(r.Dates) == 0 {
		return "", false
	}
	return r.Dates[len(r.Dates)-1], true
}

// Validate checks the alignment and ordering invariants.
func (r *GroupRecord) Validate() error {
	for i, d := range r.Dates {
		if _, err := time.Parse(DateFormat, d); err != nil {
			return fmt.Errorf("date %d: %w", i, err)
		}
		if i > 0 && d <= r.Dates[i-1] {
			return fmt.Errorf("dates not strictly ascending at %d: %s after %s", i, d, r.Dates[i-1])
		}
	}
	seen := make(map[string]bool, len(r.Symbols))
	for _, s := range r.Symbols {
		if seen[s] {
			return fmt.Errorf("duplicate symbol %q", s)
		}
		seen[s] = true
		prices, ok := r.Prices[s]
		if !ok {
			return fmt.Errorf("symbol %q has no prices", s)
		}
		if len(prices) != len(r.Dates) {
			return fmt.Errorf("symbol %q has %d prices for %d dates", s, len(prices), len(r.Dates))
		}
	}
	if len(r.Prices) != len(r.Symbols) {
		return fmt.Errorf("prices hold %d symbols, symbols list %d", len(r.Prices), len(r.Symbols))
	}
	return nil
}

// Clone returns a deep copy.
func (r *GroupRecord) Clone() *GroupRecord {
	c := &GroupRecord{
		Title:      r.Title,
		BaseSymbol: r.BaseSymbol,
		Symbols:    slices.Clone(r.Symbols),
		Dates:      slices.Clone(r.Dates),
		Prices:     make(map[string][]Price, len(r.Prices)),
	}
	for s, p := range r.Prices {
		c.Prices[s] = slices.Clone(p)
	}
	return c
}
