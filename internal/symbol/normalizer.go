// Package symbol converts between domain ticker spelling and the spelling the
// quote provider expects. The two differ only for preferred-share classes, which
// the domain writes as "APO/PA" and the provider as "APO-PA".
package symbol

import (
	"sort"
	"strings"

	"SectorStrength/internal/model"
)

const (
	domainSep   = "/"
	providerSep = "-"
)

// ToProvider returns the provider form of a domain symbol.
func ToProvider(sym string) string {
	return strings.ReplaceAll(sym, domainSep, providerSep)
}

// Candidates returns the column names a domain symbol may appear under in a
// fetched table, most likely first.
func Candidates(sym string) []string {
	p := ToProvider(sym)
	if p == sym {
		return []string{sym}
	}
	return []string{p, sym}
}

// Columns is the part of a price table needed for resolution.
type Columns interface {
	Has(sym string) bool
}

// Resolve finds the column holding a domain symbol.
func Resolve(cols Columns, sym string) (string, bool) {
	if cols == nil {
		return "", false
	}
	for _, c := range Candidates(sym) {
		if cols.Has(c) {
			return c, true
		}
	}
	return "", false
}

// Universe returns the sorted distinct provider-form symbols of all groups.
func Universe(groups []model.Group) []string {
	set := make(map[string]struct{})
	for _, g := range groups {
		for _, s := range g.Symbols {
			set[ToProvider(s)] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Normalizer restores domain spelling for a known set of domain symbols.
type Normalizer struct {
	known map[string]struct{}
}

// NewNormalizer builds a Normalizer over every symbol of the given groups.
func NewNormalizer(groups []model.Group) *Normalizer {
	n := &Normalizer{known: make(map[string]struct{})}
	for _, g := range groups {
		for _, s := range g.Symbols {
			n.known[s] = struct{}{}
		}
	}
	return n
}

// FromProvider maps a provider symbol back to its domain form. The separator is
// restored only when the result is a known domain symbol; otherwise the provider
// form is returned unchanged.
func (n *Normalizer) FromProvider(p string) string {
	if !strings.Contains(p, providerSep) {
		return p
	}
	d := strings.ReplaceAll(p, providerSep, domainSep)
	if _, ok := n.known[d]; ok {
		return d
	}
	return p
}
