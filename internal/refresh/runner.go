// Package refresh runs full rebuilds and incremental updates of the panel files.
package refresh

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"SectorStrength/internal/cadence"
	"SectorStrength/internal/collector"
	"SectorStrength/internal/model"
	"SectorStrength/internal/projector"
	"SectorStrength/internal/reconciler"
	"SectorStrength/internal/recorder"
	"SectorStrength/internal/store"
	"SectorStrength/internal/symbol"
)

var (
	// ErrNoData means a full rebuild downloaded nothing.
	ErrNoData = errors.New("no data was downloaded")
	// ErrNoBaseline means an incremental update found no readable panel file.
	ErrNoBaseline = errors.New("no existing data found, run a full rebuild first")
)

// Fetcher downloads a merged close table for a symbol universe.
type Fetcher interface {
	Fetch(ctx context.Context, symbols []string, w collector.Window) (*model.PriceTable, error)
}

// NameSource looks up display names keyed by provider symbol.
type NameSource interface {
	FetchNames(ctx context.Context, symbols []string) map[string]string
}

// Notifier is told about every finished run.
type Notifier interface {
	NotifyRun(ctx context.Context, s *Summary) error
}

// Runner executes refresh runs. Runs never overlap.
type Runner struct {
	groups        []model.Group
	fetcher       Fetcher
	store         *store.Store
	cadence       *cadence.Tracker
	historyPeriod string

	// Optional collaborators.
	Names    NameSource
	Recorder recorder.Recorder
	Notifier Notifier
	Now      func() time.Time

	logger *zap.Logger
	mu     sync.Mutex
}

// NewRunner creates a Runner over groups. historyPeriod is the window of a full
// rebuild, e.g. "5y".
func NewRunner(groups []model.Group, f Fetcher, st *store.Store, tr *cadence.Tracker, historyPeriod string, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if historyPeriod == "" {
		historyPeriod = "5y"
	}
	return &Runner{
		groups:        groups,
		fetcher:       f,
		store:         st,
		cadence:       tr,
		historyPeriod: historyPeriod,
		Recorder:      recorder.NewNoopRecorder(),
		Now:           time.Now,
		logger:        logger,
	}
}

// Run dispatches to Full or Incremental.
func (r *Runner) Run(ctx context.Context, mode Mode) (*Summary, error) {
	switch mode {
	case ModeFull:
		return r.Full(ctx)
	case ModeIncremental:
		return r.Incremental(ctx)
	}
	return nil, fmt.Errorf("unknown mode %q", mode)
}

// Full downloads the whole history window, rewrites every panel file and the
// name map, and records the rebuild date. It fails with ErrNoData when nothing
// was downloaded.
func (r *Runner) Full(ctx context.Context) (*Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.begin(ModeFull)
	log := r.logger.With(zap.String("run_id", s.RunID), zap.String("mode", string(s.Mode)))
	log.Info("full refresh started")

	universe := symbol.Universe(r.groups)
	log.Info("total unique tickers", zap.Int("tickers", len(universe)))

	tbl, err := r.fetcher.Fetch(ctx, universe, collector.PeriodWindow(r.historyPeriod))
	if err != nil {
		return r.finish(ctx, s, StatusFailed, err)
	}
	if tbl.Empty() {
		log.Error("no data was downloaded, check connectivity")
		return r.finish(ctx, s, StatusNoData, ErrNoData)
	}
	r.describeTable(s, tbl)
	log.Info("downloaded closes",
		zap.Int("tickers", tbl.Width()),
		zap.Int("trading_days", tbl.Len()),
		zap.String("from", s.FirstDate),
		zap.String("to", s.LastDate))

	var writeErrs []error
	for i, g := range r.groups {
		rec, skipped := projector.Project(g, tbl)
		for _, sym := range skipped {
			log.Info("ticker not found in data, skipping", zap.Int("panel", i+1), zap.String("symbol", sym))
		}
		res := GroupResult{Key: g.Key, Title: g.Title, Skipped: skipped, Symbols: len(rec.Symbols), Dates: len(rec.Dates)}
		size, err := r.store.SaveRecord(g.Key, rec)
		if err != nil {
			log.Error("write panel failed", zap.String("group", g.Key), zap.Error(err))
			res.Outcome, res.Err = OutcomeFailed, err.Error()
			writeErrs = append(writeErrs, err)
		} else {
			res.Outcome, res.Size = OutcomeWritten, size
			log.Info("wrote panel",
				zap.String("file", r.store.RecordPath(g.Key)),
				zap.Int("symbols", res.Symbols),
				zap.Int64("size_kb", size/1024))
		}
		s.Groups = append(s.Groups, res)
	}

	r.writeNames(ctx, s, universe, log)

	if err := r.cadence.RecordFullRefresh(r.Now()); err != nil {
		log.Warn("record full refresh date failed", zap.Error(err))
	}

	if len(writeErrs) > 0 {
		return r.finish(ctx, s, StatusPartial, errors.Join(writeErrs...))
	}
	log.Info("full refresh done", zap.Int("panels", len(r.groups)), zap.String("dir", r.store.Dir()))
	return r.finish(ctx, s, StatusOK, nil)
}

func (r *Runner) writeNames(ctx context.Context, s *Summary, universe []string, log *zap.Logger) {
	if r.Names == nil {
		return
	}
	log.Info("fetching company names")
	norm := symbol.NewNormalizer(r.groups)
	names := make(map[string]string)
	for p, name := range r.Names.FetchNames(ctx, universe) {
		names[norm.FromProvider(p)] = name
	}
	size, err := r.store.SaveNames(names)
	if err != nil {
		log.Error("write names failed", zap.Error(err))
		return
	}
	s.Names = len(names)
	log.Info("wrote names", zap.String("file", store.NamesFile), zap.Int("names", len(names)), zap.Int64("size_kb", size/1024))
}

type loaded struct {
	group model.Group
	rec   *model.GroupRecord
}

// Incremental appends the trading days after the last persisted date to every
// readable panel file. Unreadable files are skipped with a warning; it fails
// with ErrNoBaseline when no file is readable.
func (r *Runner) Incremental(ctx context.Context) (*Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.begin(ModeIncremental)
	log := r.logger.With(zap.String("run_id", s.RunID), zap.String("mode", string(s.Mode)))
	log.Info("incremental update started")

	var records []loaded
	baseline := ""
	for _, g := range r.groups {
		rec, err := r.store.LoadRecord(g.Key)
		if err != nil {
			reason := "missing"
			if errors.Is(err, store.ErrCorrupt) {
				reason = "corrupt"
			}
			log.Warn("panel file unusable, skipping; run a full rebuild to fix",
				zap.String("group", g.Key), zap.String("reason", reason), zap.Error(err))
			s.Groups = append(s.Groups, GroupResult{Key: g.Key, Title: g.Title, Outcome: OutcomeSkipped, Err: err.Error()})
			continue
		}
		records = append(records, loaded{group: g, rec: rec})
		if last, ok := rec.LastDate(); ok && (baseline == "" || last < baseline) {
			baseline = last
		}
	}
	if baseline == "" {
		log.Error("no existing data found, run a full rebuild first")
		return r.finish(ctx, s, StatusFailed, ErrNoBaseline)
	}

	base, err := time.Parse(model.DateFormat, baseline)
	if err != nil {
		return r.finish(ctx, s, StatusFailed, fmt.Errorf("baseline %q: %w", baseline, err))
	}
	start := base.AddDate(0, 0, 1)
	now := r.Now()
	log.Info("last date in data", zap.String("last_date", baseline), zap.String("fetch_from", start.Format(model.DateFormat)))
	if start.Format(model.DateFormat) > now.Format(model.DateFormat) {
		log.Info("already up to date, no new data to fetch")
		return r.finish(ctx, s, StatusUpToDate, nil)
	}

	r.cadence.Check(now)

	universe := symbol.Universe(r.groups)
	log.Info("total unique tickers", zap.Int("tickers", len(universe)))
	tbl, err := r.fetcher.Fetch(ctx, universe, collector.SinceWindow(start))
	if err != nil {
		return r.finish(ctx, s, StatusFailed, err)
	}
	if tbl.Empty() {
		log.Info("no new trading data available (weekend or holiday?)")
		return r.finish(ctx, s, StatusNoData, nil)
	}
	r.describeTable(s, tbl)

	added := make(map[string]bool)
	var writeErrs []error
	for _, l := range records {
		res := r.reconcileGroup(l, tbl, log)
		if res.Outcome == OutcomeFailed {
			writeErrs = append(writeErrs, fmt.Errorf("%s: %s", l.group.Key, res.Err))
		}
		for _, d := range res.Added {
			added[d] = true
		}
		s.Groups = append(s.Groups, res)
	}
	for d := range added {
		s.NewDates = append(s.NewDates, d)
	}
	sort.Strings(s.NewDates)
	if len(s.NewDates) > 0 {
		log.Info("fetched new trading days",
			zap.Int("days", len(s.NewDates)),
			zap.String("from", s.NewDates[0]),
			zap.String("to", s.NewDates[len(s.NewDates)-1]))
	}

	status := StatusOK
	if len(s.Failed()) > 0 {
		status = StatusPartial
	}
	log.Info("incremental update done", zap.Int("updated", s.Written()), zap.Int("new_days", len(s.NewDates)))
	return r.finish(ctx, s, status, errors.Join(writeErrs...))
}

func (r *Runner) reconcileGroup(l loaded, tbl *model.PriceTable, log *zap.Logger) GroupResult {
	g := l.group
	res := GroupResult{Key: g.Key, Title: g.Title, Symbols: len(l.rec.Symbols), Dates: len(l.rec.Dates)}

	out, rep, err := reconciler.Reconcile(l.rec, g, tbl)
	res.Missing = rep.Missing
	if len(rep.Missing) > 0 {
		log.Warn("panel is missing symbols, run a full rebuild to add them",
			zap.String("group", g.Key), zap.Strings("symbols", rep.Missing))
	}
	if err != nil {
		log.Warn("reconcile failed, skipping", zap.String("group", g.Key), zap.Error(err))
		res.Outcome, res.Err = OutcomeSkipped, err.Error()
		return res
	}
	if !rep.Changed() {
		log.Info("all dates already present, skipping", zap.String("group", g.Key))
		res.Outcome = OutcomeUnchanged
		return res
	}
	if len(rep.Absent) > 0 {
		log.Debug("symbols without new prices", zap.String("group", g.Key), zap.Strings("symbols", rep.Absent))
	}
	res.Added, res.Absent, res.Dates = rep.Added, rep.Absent, len(out.Dates)

	size, err := r.store.SaveRecord(g.Key, out)
	if err != nil {
		log.Error("write panel failed", zap.String("group", g.Key), zap.Error(err))
		res.Outcome, res.Err = OutcomeFailed, err.Error()
		return res
	}
	res.Outcome, res.Size = OutcomeWritten, size
	log.Info("updated panel",
		zap.String("file", r.store.RecordPath(g.Key)),
		zap.Int("added_dates", len(rep.Added)),
		zap.Int64("size_kb", size/1024))
	return res
}

func (r *Runner) begin(mode Mode) *Summary {
	return &Summary{RunID: uuid.NewString(), Mode: mode, StartedAt: r.Now()}
}

func (r *Runner) describeTable(s *Summary, tbl *model.PriceTable) {
	dates := tbl.Dates()
	s.FirstDate, s.LastDate = dates[0], dates[len(dates)-1]
	s.Symbols = tbl.Width()
}

// finish stamps the summary, records it and sends the notification. The
// returned error is err.
func (r *Runner) finish(ctx context.Context, s *Summary, status string, err error) (*Summary, error) {
	s.FinishedAt = r.Now()
	s.Status = status
	s.Err = err

	if r.Recorder != nil {
		if rerr := r.Recorder.RecordRun(s.runEvent()); rerr != nil {
			r.logger.Warn("record run failed", zap.Error(rerr))
		}
		for i := range s.Groups {
			if rerr := r.Recorder.RecordGroup(s.Groups[i].update(s.RunID)); rerr != nil {
				r.logger.Warn("record group update failed", zap.Error(rerr))
				break
			}
		}
	}
	if r.Notifier != nil && status != StatusUpToDate {
		if nerr := r.Notifier.NotifyRun(ctx, s); nerr != nil {
			r.logger.Warn("notify run failed", zap.Error(nerr))
		}
	}
	return s, err
}
