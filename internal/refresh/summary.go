package refresh

import (
	"time"

	"SectorStrength/internal/recorder"
)

// Mode selects what a run does.
type Mode string

const (
	ModeFull        Mode = "full"
	ModeIncremental Mode = "incremental"
)

// ParseMode accepts "full" and "incremental".
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeFull, ModeIncremental:
		return Mode(s), true
	}
	return "", false
}

// Run statuses.
const (
	StatusOK       = "ok"
	StatusPartial  = "partial"
	StatusUpToDate = "up_to_date"
	StatusNoData   = "no_data"
	StatusFailed   = "failed"
)

// Group outcomes.
const (
	OutcomeWritten   = "written"
	OutcomeUnchanged = "unchanged"
	OutcomeSkipped   = "skipped"
	OutcomeFailed    = "failed"
)

// GroupResult is what a run did to one group file.
type GroupResult struct {
	Key     string
	Title   string
	Outcome string
	Symbols int
	Dates   int
	Size    int64
	Added   []string
	// Skipped lists members without data in a full rebuild.
	Skipped []string
	Absent  []string
	Missing []string
	Err     string
}

// Summary describes one run.
type Summary struct {
	RunID      string
	Mode       Mode
	StartedAt  time.Time
	FinishedAt time.Time
	Status     string
	// FirstDate and LastDate bound the fetched table.
	FirstDate string
	LastDate  string
	// NewDates are the trading days added by an incremental update.
	NewDates []string
	Symbols  int
	Names    int
	Groups   []GroupResult
	Err      error
}

// Written counts the groups whose file was rewritten.
func (s *Summary) Written() int {
	n := 0
	for _, g := range s.Groups {
		if g.Outcome == OutcomeWritten {
			n++
		}
	}
	return n
}

// Failed returns the groups that were skipped or could not be written.
func (s *Summary) Failed() []GroupResult {
	var out []GroupResult
	for _, g := range s.Groups {
		if g.Outcome == OutcomeSkipped || g.Outcome == OutcomeFailed {
			out = append(out, g)
		}
	}
	return out
}

func (s *Summary) runEvent() *recorder.RunEvent {
	ev := &recorder.RunEvent{
		ID:         s.RunID,
		Mode:       string(s.Mode),
		StartedAt:  s.StartedAt,
		FinishedAt: s.FinishedAt,
		Status:     s.Status,
		FirstDate:  s.FirstDate,
		LastDate:   s.LastDate,
		NewDates:   len(s.NewDates),
		Symbols:    s.Symbols,
	}
	if s.Err != nil {
		ev.Error = s.Err.Error()
	}
	return ev
}

func (g *GroupResult) update(runID string) *recorder.GroupUpdate {
	return &recorder.GroupUpdate{
		RunID:     runID,
		Key:       g.Key,
		Outcome:   g.Outcome,
		Symbols:   g.Symbols,
		Dates:     g.Dates,
		Added:     len(g.Added),
		Absent:    len(g.Absent),
		Missing:   len(g.Missing),
		SizeBytes: g.Size,
		Note:      g.Err,
	}
}
