package notifier

import (
	"fmt"
	"html"
	"strings"
	"time"

	"SectorStrength/internal/refresh"
)

var statusIcon = map[string]string{
	refresh.StatusOK:       "✅",
	refresh.StatusPartial:  "⚠️",
	refresh.StatusUpToDate: "💤",
	refresh.StatusNoData:   "💤",
	refresh.StatusFailed:   "❌",
}

// FormatRunSummary formats a refresh run into a Telegram message.
func FormatRunSummary(s *refresh.Summary) string {
	var b strings.Builder

	icon := statusIcon[s.Status]
	if icon == "" {
		icon = "ℹ️"
	}
	b.WriteString(fmt.Sprintf("%s <b>SectorStrength %s</b> | %s\n\n", icon, s.Mode, s.StartedAt.Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Status: %s (%s)\n", s.Status, s.FinishedAt.Sub(s.StartedAt).Round(time.Second)))

	if s.FirstDate != "" {
		b.WriteString(fmt.Sprintf("Data: %d tickers, %s → %s\n", s.Symbols, s.FirstDate, s.LastDate))
	}
	switch {
	case len(s.NewDates) == 1:
		b.WriteString(fmt.Sprintf("New trading day: %s\n", s.NewDates[0]))
	case len(s.NewDates) > 1:
		b.WriteString(fmt.Sprintf("New trading days: %d (%s → %s)\n", len(s.NewDates), s.NewDates[0], s.NewDates[len(s.NewDates)-1]))
	}
	if len(s.Groups) > 0 {
		b.WriteString(fmt.Sprintf("Panels written: %d/%d\n", s.Written(), len(s.Groups)))
	}
	if s.Names > 0 {
		b.WriteString(fmt.Sprintf("Names: %d\n", s.Names))
	}

	if failed := s.Failed(); len(failed) > 0 {
		b.WriteString("\n<b>Skipped panels:</b>\n")
		for _, g := range failed {
			b.WriteString(fmt.Sprintf("  • %s %s\n", g.Key, html.EscapeString(g.Title)))
		}
	}
	var missing int
	for _, g := range s.Groups {
		missing += len(g.Missing)
	}
	if missing > 0 {
		b.WriteString(fmt.Sprintf("\n%d symbols need a full rebuild to get history.\n", missing))
	}
	if s.Err != nil {
		b.WriteString(fmt.Sprintf("\nError: <code>%s</code>\n", html.EscapeString(s.Err.Error())))
	}
	return b.String()
}
