package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"SectorStrength/internal/cadence"
	"SectorStrength/internal/model"
	"SectorStrength/internal/recorder"
	"SectorStrength/internal/store"
)

const recentRunsShown = 5

// renderStatus reports the persisted state of every panel, the age of the last
// full rebuild and the most recent runs.
func renderStatus(groups []model.Group, st *store.Store, tr *cadence.Tracker, rec recorder.Recorder, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Data dir: %s\n", st.Dir())
	if days, known := tr.Staleness(now); known {
		fmt.Fprintf(&b, "Last full rebuild: %d days ago (max %d)\n", days, tr.MaxAgeDays())
	} else {
		b.WriteString("Last full rebuild: unknown\n")
	}

	b.WriteString("\nPanels:\n")
	for _, g := range groups {
		r, err := st.LoadRecord(g.Key)
		if err != nil {
			fmt.Fprintf(&b, "  %-9s %s: %v\n", g.Key, g.Title, err)
			continue
		}
		last, _ := r.LastDate()
		var size int64
		if fi, err := os.Stat(st.RecordPath(g.Key)); err == nil {
			size = fi.Size()
		}
		fmt.Fprintf(&b, "  %-9s last=%s dates=%d symbols=%d size=%dKB\n",
			g.Key, last, len(r.Dates), len(r.Symbols), size/1024)
	}

	runs, err := rec.RecentRuns(recentRunsShown)
	if err != nil {
		fmt.Fprintf(&b, "\nRecent runs: %v\n", err)
		return b.String()
	}
	if len(runs) > 0 {
		b.WriteString("\nRecent runs:\n")
		for _, r := range runs {
			fmt.Fprintf(&b, "  %s %-11s %-10s new=%d", r.StartedAt.UTC().Format("2006-01-02 15:04"), r.Mode, r.Status, r.NewDates)
			if r.Error != "" {
				fmt.Fprintf(&b, " error=%s", r.Error)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
