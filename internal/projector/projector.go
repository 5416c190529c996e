// Package projector builds a group's persisted record from a fetched price table.
package projector

import (
	"SectorStrength/internal/model"
	"SectorStrength/internal/symbol"
)

// Project extracts the columns of g from tbl. Each member symbol is resolved
// through its provider and raw spellings; found columns are copied whole with
// prices rounded and nulls kept, unresolved symbols are left out and returned in
// skipped. A symbol listed twice in the group is projected once.
func Project(g model.Group, tbl *model.PriceTable) (rec *model.GroupRecord, skipped []string) {
	rec = &model.GroupRecord{
		Title:      g.Title,
		BaseSymbol: g.BaseSymbol,
		Symbols:    []string{},
		Dates:      []string{},
		Prices:     make(map[string][]model.Price),
	}
	if tbl == nil {
		tbl = model.NewPriceTable()
	}
	rec.Dates = append(rec.Dates, tbl.Dates()...)

	seen := make(map[string]bool, len(g.Symbols))
	for _, sym := range g.Symbols {
		if seen[sym] {
			continue
		}
		seen[sym] = true
		col, ok := symbol.Resolve(tbl, sym)
		if !ok {
			skipped = append(skipped, sym)
			continue
		}
		values, _ := tbl.Column(col)
		for i, p := range values {
			values[i] = p.Round()
		}
		rec.Symbols = append(rec.Symbols, sym)
		rec.Prices[sym] = values
	}
	return rec, skipped
}
