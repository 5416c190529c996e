// Package cadence tracks when the last full rebuild ran and reminds the operator
// when it is overdue. Incremental updates never pick up split or dividend
// re-adjustments, so full rebuilds have to run periodically.
package cadence

import (
	"time"

	"go.uber.org/zap"
)

// DefaultMaxAgeDays is the age after which a full rebuild is recommended.
const DefaultMaxAgeDays = 30

// MarkerStore persists the date of the last full rebuild.
type MarkerStore interface {
	ReadRefreshMarker() (time.Time, error)
	WriteRefreshMarker(day time.Time) error
}

// Tracker is advisory only. It never fails a run.
type Tracker struct {
	store      MarkerStore
	maxAgeDays int
	logger     *zap.Logger
}

func NewTracker(store MarkerStore, maxAgeDays int, logger *zap.Logger) *Tracker {
	if maxAgeDays <= 0 {
		maxAgeDays = DefaultMaxAgeDays
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{store: store, maxAgeDays: maxAgeDays, logger: logger}
}

// RecordFullRefresh stores the date of now, replacing any earlier value.
func (t *Tracker) RecordFullRefresh(now time.Time) error {
	return t.store.WriteRefreshMarker(now)
}

// Staleness returns the whole days elapsed since the last full rebuild. known is
// false when no readable marker exists.
func (t *Tracker) Staleness(now time.Time) (days int, known bool) {
	last, err := t.store.ReadRefreshMarker()
	if err != nil {
		return 0, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(today.Sub(last).Hours() / 24), true
}

// Check logs a reminder when the last full rebuild is unknown or too old. It
// reports whether a reminder was issued.
func (t *Tracker) Check(now time.Time) bool {
	days, known := t.Staleness(now)
	if !known {
		t.logger.Warn("no full refresh date recorded, consider running a full rebuild")
		return true
	}
	if days > t.maxAgeDays {
		t.logger.Warn("full refresh overdue, run a full rebuild to pick up split adjustments",
			zap.Int("days_since_full", days),
			zap.Int("max_age_days", t.maxAgeDays))
		return true
	}
	t.logger.Debug("full refresh is recent", zap.Int("days_since_full", days))
	return false
}

// MaxAgeDays returns the configured reminder threshold.
func (t *Tracker) MaxAgeDays() int { return t.maxAgeDays }
