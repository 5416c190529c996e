package collector

import (
	"context"
	"fmt"
	"time"

	"SectorStrength/internal/model"
)

// Provider fetches daily adjusted closes for a set of provider-form symbols.
// A partial table (some symbols missing) is a valid result; an error means the
// request as a whole failed.
type Provider interface {
	FetchCloses(ctx context.Context, symbols []string, w Window) (*model.PriceTable, error)
	Name() string
}

// Window bounds a history request. When Start is zero the relative Period
// (e.g. "5y") is used; otherwise dates from Start up to End (or now) are requested.
type Window struct {
	Period string
	Start  time.Time
	End    time.Time
}

// PeriodWindow returns a relative window such as "5y".
func PeriodWindow(period string) Window { return Window{Period: period} }

// SinceWindow returns an open-ended window starting at start.
func SinceWindow(start time.Time) Window { return Window{Start: start} }

// Contains reports whether date (YYYY-MM-DD) falls inside the window. Relative
// windows contain every date; End is exclusive.
func (w Window) Contains(date string) bool {
	if w.Start.IsZero() {
		return true
	}
	if date < w.Start.Format(model.DateFormat) {
		return false
	}
	return w.End.IsZero() || date < w.End.Format(model.DateFormat)
}

func (w Window) String() string {
	if w.Start.IsZero() {
		return w.Period
	}
	end := "today"
	if !w.End.IsZero() {
		end = w.End.Format(model.DateFormat)
	}
	return fmt.Sprintf("%s to %s", w.Start.Format(model.DateFormat), end)
}
