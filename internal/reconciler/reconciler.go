// Package reconciler extends persisted group records with newly fetched trading days.
package reconciler

import (
	"fmt"

	"SectorStrength/internal/model"
	"SectorStrength/internal/symbol"
)

// Report describes what a reconciliation did.
type Report struct {
	// Added lists the dates appended to the record.
	Added []string
	// Absent lists record symbols with no column in the table; they received
	// nulls for every added date.
	Absent []string
	// Missing lists group members that the record does not carry. They need a
	// full rebuild to get history.
	Missing []string
}

// Changed reports whether any date was appended.
func (r Report) Changed() bool { return len(r.Added) > 0 }

// Reconcile appends the dates of tbl that come after the last date of existing.
// Every record symbol gets one value per added date, null when the table has no
// price for it, so all sequences stay aligned with the dates.
//
// When nothing is added the existing pointer is returned as is. Otherwise the
// result is a new record and existing is left untouched.
func Reconcile(existing *model.GroupRecord, g model.Group, tbl *model.PriceTable) (*model.GroupRecord, Report, error) {
	var rep Report
	rep.Missing = missingMembers(existing, g)

	last, _ := existing.LastDate()
	present := make(map[string]bool, len(existing.Dates))
	for _, d := range existing.Dates {
		present[d] = true
	}
	// A date repeated in the table takes its last row.
	rowOf := make(map[string]int)
	if tbl != nil {
		for i, d := range tbl.Dates() {
			if d <= last || present[d] {
				continue
			}
			if _, seen := rowOf[d]; !seen {
				rep.Added = append(rep.Added, d)
			}
			rowOf[d] = i
		}
	}
	if len(rep.Added) == 0 {
		return existing, rep, nil
	}
	rows := make([]int, len(rep.Added))
	for i, d := range rep.Added {
		rows[i] = rowOf[d]
	}

	out := existing.Clone()
	out.Dates = append(out.Dates, rep.Added...)
	for _, sym := range out.Symbols {
		col, ok := symbol.Resolve(tbl, sym)
		if !ok {
			rep.Absent = append(rep.Absent, sym)
		}
		for _, r := range rows {
			p := model.Null
			if ok {
				p = tbl.Value(r, col).Round()
			}
			out.Prices[sym] = append(out.Prices[sym], p)
		}
	}
	if err := out.Validate(); err != nil {
		return existing, Report{Missing: rep.Missing}, fmt.Errorf("reconciled record: %w", err)
	}
	return out, rep, nil
}

func missingMembers(rec *model.GroupRecord, g model.Group) []string {
	have := make(map[string]bool, len(rec.Symbols))
	for _, s := range rec.Symbols {
		have[s] = true
	}
	var missing []string
	for _, s := range g.Symbols {
		if !have[s] {
			have[s] = true
			missing = append(missing, s)
		}
	}
	return missing
}
