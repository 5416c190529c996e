package refresh

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"SectorStrength/internal/cadence"
	"SectorStrength/internal/collector"
	"SectorStrength/internal/model"
	"SectorStrength/internal/recorder"
	"SectorStrength/internal/store"
)

var testGroups = []model.Group{
	{Key: "panel_01", Title: "1. Market", BaseSymbol: "SPY", Symbols: []string{"SPY", "AAPL", "APO/PA"}},
	{Key: "panel_02", Title: "2. Tech", BaseSymbol: "XLK", Symbols: []string{"XLK", "AAPL", "GONE"}},
}

var tradingDays = []string{"2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"}

func sourceTable(dates []string) *model.PriceTable {
	tbl := model.NewPriceTable("SPY", "AAPL", "APO-PA", "XLK")
	for i, d := range dates {
		tbl.AppendRow(d, map[string]model.Price{
			"SPY":    model.Some(470 + float64(i)),
			"AAPL":   model.Some(100 + float64(i)),
			"APO-PA": model.Some(25.123456),
			"XLK":    model.Some(190 + float64(i)),
		})
	}
	return tbl
}

type stubNames map[string]string

func (s stubNames) FetchNames(_ context.Context, _ []string) map[string]string { return s }

type fakeRecorder struct {
	recorder.NoopRecorder
	runs   []recorder.RunEvent
	groups []recorder.GroupUpdate
}

func (f *fakeRecorder) RecordRun(run *recorder.RunEvent) error {
	f.runs = append(f.runs, *run)
	return nil
}

func (f *fakeRecorder) RecordGroup(upd *recorder.GroupUpdate) error {
	f.groups = append(f.groups, *upd)
	return nil
}

type fakeNotifier struct{ runs []*Summary }

func (f *fakeNotifier) NotifyRun(_ context.Context, s *Summary) error {
	f.runs = append(f.runs, s)
	return nil
}

type fixture struct {
	runner   *Runner
	provider *collector.MockProvider
	store    *store.Store
	rec      *fakeRecorder
	notifier *fakeNotifier
}

func newFixture(t *testing.T, src *model.PriceTable, now time.Time) *fixture {
	t.Helper()
	p := &collector.MockProvider{Source: src}
	f := collector.NewBatchFetcher(p, 2, 1, 0.5, zap.NewNop())
	f.NewBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	st := store.New(t.TempDir())
	r := NewRunner(testGroups, f, st, cadence.NewTracker(st, 30, zap.NewNop()), "5y", zap.NewNop())
	r.Now = func() time.Time { return now }
	fx := &fixture{runner: r, provider: p, store: st, rec: &fakeRecorder{}, notifier: &fakeNotifier{}}
	r.Recorder = fx.rec
	r.Notifier = fx.notifier
	return fx
}

func (fx *fixture) seed(t *testing.T, key string, rec *model.GroupRecord) {
	t.Helper()
	_, err := fx.store.SaveRecord(key, rec)
	require.NoError(t, err)
}

func record(dates []string, prices map[string][]model.Price, symbols ...string) *model.GroupRecord {
	return &model.GroupRecord{Title: "t", BaseSymbol: symbols[0], Symbols: symbols, Dates: dates, Prices: prices}
}

func TestFull(t *testing.T) {
	now := time.Date(2024, 1, 5, 23, 0, 0, 0, time.UTC)
	fx := newFixture(t, sourceTable(tradingDays), now)
	fx.runner.Names = stubNames{"APO-PA": "Apollo Pref A", "SPY": "SPDR S&P 500"}

	s, err := fx.runner.Full(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StatusOK, s.Status)
	assert.Equal(t, "2024-01-02", s.FirstDate)
	assert.Equal(t, "2024-01-05", s.LastDate)
	assert.Equal(t, 2, s.Written())
	assert.Equal(t, []string{"GONE"}, s.Groups[1].Skipped)

	p1, err := fx.store.LoadRecord("panel_01")
	require.NoError(t, err)
	assert.Equal(t, "1. Market", p1.Title)
	assert.Equal(t, []string{"SPY", "AAPL", "APO/PA"}, p1.Symbols)
	assert.Equal(t, tradingDays, p1.Dates)
	assert.Equal(t, model.Some(25.1235), p1.Prices["APO/PA"][0])

	p2, err := fx.store.LoadRecord("panel_02")
	require.NoError(t, err)
	assert.Equal(t, []string{"XLK", "AAPL"}, p2.Symbols)

	names, err := fx.store.LoadNames()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"APO/PA": "Apollo Pref A", "SPY": "SPDR S&P 500"}, names)

	marker, err := fx.store.ReadRefreshMarker()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", marker.Format(model.DateFormat))

	require.Len(t, fx.rec.runs, 1)
	assert.Equal(t, s.RunID, fx.rec.runs[0].ID)
	assert.Len(t, fx.rec.groups, 2)
	require.Len(t, fx.notifier.runs, 1)
}

func TestFull_NoData(t *testing.T) {
	fx := newFixture(t, nil, time.Date(2024, 1, 5, 23, 0, 0, 0, time.UTC))

	s, err := fx.runner.Full(context.Background())

	assert.ErrorIs(t, err, ErrNoData)
	assert.Equal(t, StatusNoData, s.Status)
	_, err = fx.store.LoadRecord("panel_01")
	assert.ErrorIs(t, err, store.ErrAbsent)
	_, err = fx.store.ReadRefreshMarker()
	assert.ErrorIs(t, err, store.ErrAbsent)
	require.Len(t, fx.rec.runs, 1)
	assert.Equal(t, StatusNoData, fx.rec.runs[0].Status)
}

func TestIncremental_AppendsNewDay(t *testing.T) {
	fx := newFixture(t, sourceTable(tradingDays[:3]), time.Date(2024, 1, 4, 23, 0, 0, 0, time.UTC))
	days := []string{"2024-01-02", "2024-01-03"}
	fx.seed(t, "panel_01", record(days, map[string][]model.Price{
		"SPY":  {model.Some(470), model.Some(471)},
		"AAPL": {model.Some(100), model.Some(101)},
	}, "SPY", "AAPL"))
	fx.seed(t, "panel_02", record(days, map[string][]model.Price{
		"XLK":    {model.Some(190), model.Some(191)},
		"DELIST": {model.Some(5), model.Some(5)},
	}, "XLK", "DELIST"))

	s, err := fx.runner.Incremental(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StatusOK, s.Status)
	assert.Equal(t, []string{"2024-01-04"}, s.NewDates)
	assert.Len(t, fx.provider.Calls(), 3)

	p1, err := fx.store.LoadRecord("panel_01")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-02", "2024-01-03", "2024-01-04"}, p1.Dates)
	assert.Equal(t, []model.Price{model.Some(100), model.Some(101), model.Some(102)}, p1.Prices["AAPL"])
	assert.Equal(t, []string{"APO/PA"}, s.Groups[0].Missing)

	p2, err := fx.store.LoadRecord("panel_02")
	require.NoError(t, err)
	assert.Equal(t, []model.Price{model.Some(5), model.Some(5), model.Null}, p2.Prices["DELIST"])
	assert.Equal(t, []string{"DELIST"}, s.Groups[1].Absent)
}

func TestIncremental_NoBaseline(t *testing.T) {
	fx := newFixture(t, sourceTable(tradingDays), time.Date(2024, 1, 5, 23, 0, 0, 0, time.UTC))

	s, err := fx.runner.Incremental(context.Background())

	assert.ErrorIs(t, err, ErrNoBaseline)
	assert.Equal(t, StatusFailed, s.Status)
	assert.Empty(t, fx.provider.Calls())
}

func TestIncremental_AlreadyUpToDate(t *testing.T) {
	fx := newFixture(t, sourceTable(tradingDays), time.Date(2024, 1, 5, 23, 0, 0, 0, time.UTC))
	fx.seed(t, "panel_01", record(tradingDays, map[string][]model.Price{
		"SPY": {model.Some(1), model.Some(2), model.Some(3), model.Some(4)},
	}, "SPY"))

	s, err := fx.runner.Incremental(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StatusUpToDate, s.Status)
	assert.Empty(t, fx.provider.Calls())
	assert.Empty(t, fx.notifier.runs)
}

func TestIncremental_RerunIsNoop(t *testing.T) {
	fx := newFixture(t, sourceTable(tradingDays[:3]), time.Date(2024, 1, 5, 23, 0, 0, 0, time.UTC))
	fx.seed(t, "panel_01", record(tradingDays[:2], map[string][]model.Price{
		"SPY": {model.Some(470), model.Some(471)},
	}, "SPY"))

	_, err := fx.runner.Incremental(context.Background())
	require.NoError(t, err)
	before, err := os.ReadFile(fx.store.RecordPath("panel_01"))
	require.NoError(t, err)

	s, err := fx.runner.Incremental(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StatusNoData, s.Status)
	after, err := os.ReadFile(fx.store.RecordPath("panel_01"))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestIncremental_SkipsCorruptGroup(t *testing.T) {
	fx := newFixture(t, sourceTable(tradingDays[:3]), time.Date(2024, 1, 4, 23, 0, 0, 0, time.UTC))
	require.NoError(t, os.WriteFile(fx.store.RecordPath("panel_01"), []byte("{broken"), 0o644))
	fx.seed(t, "panel_02", record(tradingDays[:2], map[string][]model.Price{
		"XLK": {model.Some(190), model.Some(191)},
	}, "XLK"))

	s, err := fx.runner.Incremental(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StatusPartial, s.Status)
	require.Len(t, s.Failed(), 1)
	assert.Equal(t, "panel_01", s.Failed()[0].Key)

	p2, err := fx.store.LoadRecord("panel_02")
	require.NoError(t, err)
	assert.Len(t, p2.Dates, 3)
	raw, err := os.ReadFile(fx.store.RecordPath("panel_01"))
	require.NoError(t, err)
	assert.Equal(t, "{broken", string(raw))
}

func TestIncremental_LaggingGroupCatchesUp(t *testing.T) {
	fx := newFixture(t, sourceTable(tradingDays), time.Date(2024, 1, 5, 23, 0, 0, 0, time.UTC))
	fx.seed(t, "panel_01", record(tradingDays[:2], map[string][]model.Price{
		"SPY": {model.Some(470), model.Some(471)},
	}, "SPY"))
	fx.seed(t, "panel_02", record(tradingDays[:3], map[string][]model.Price{
		"XLK": {model.Some(190), model.Some(191), model.Some(192)},
	}, "XLK"))

	s, err := fx.runner.Incremental(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-04", "2024-01-05"}, s.NewDates)
	p1, err := fx.store.LoadRecord("panel_01")
	require.NoError(t, err)
	assert.Equal(t, tradingDays, p1.Dates)
	p2, err := fx.store.LoadRecord("panel_02")
	require.NoError(t, err)
	assert.Equal(t, tradingDays, p2.Dates)
	assert.Equal(t, []model.Price{model.Some(190), model.Some(191), model.Some(192), model.Some(193)}, p2.Prices["XLK"])
}

func TestRun_UnknownMode(t *testing.T) {
	fx := newFixture(t, nil, time.Now())
	_, err := fx.runner.Run(context.Background(), Mode("weekly"))
	assert.Error(t, err)
}

func TestParseMode(t *testing.T) {
	m, ok := ParseMode("incremental")
	assert.True(t, ok)
	assert.Equal(t, ModeIncremental, m)
	_, ok = ParseMode("daily")
	assert.False(t, ok)
}
