package recorder

import "time"

// RunEvent holds the outcome of one refresh run.
type RunEvent struct {
	ID         string
	Mode       string // "full" or "incremental"
	StartedAt  time.Time
	FinishedAt time.Time
	Status     string // "ok", "partial", "up_to_date", "no_data", "failed"
	FirstDate  string
	LastDate   string
	NewDates   int
	Symbols    int
	Error      string
}

// GroupUpdate records what a run did to one group file.
type GroupUpdate struct {
	RunID     string
	Key       string
	Outcome   string // "written", "unchanged", "skipped", "failed"
	Symbols   int
	Dates     int
	Added     int
	Absent    int
	Missing   int
	SizeBytes int64
	Note      string
}

// Recorder persists run history for analysis.
type Recorder interface {
	RecordRun(run *RunEvent) error
	RecordGroup(upd *GroupUpdate) error
	RecentRuns(limit int) ([]RunEvent, error)
	Close() error
}
