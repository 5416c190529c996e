package collector

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"SectorStrength/internal/model"
)

const (
	DefaultBatchSize       = 200
	DefaultRetries         = 2
	DefaultSparseThreshold = 0.5
)

// BatchFetcher downloads a large symbol universe in bounded batches and merges
// the results into one table.
type BatchFetcher struct {
	Provider        Provider
	BatchSize       int
	Retries         int
	SparseThreshold float64
	// NewBackOff builds the retry policy for one batch; exponential when nil.
	NewBackOff func() backoff.BackOff
	Logger     *zap.Logger
}

// NewBatchFetcher creates a BatchFetcher. Non-positive settings fall back to defaults.
func NewBatchFetcher(p Provider, batchSize, retries int, sparseThreshold float64, logger *zap.Logger) *BatchFetcher {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if retries < 0 {
		retries = DefaultRetries
	}
	if sparseThreshold <= 0 {
		sparseThreshold = DefaultSparseThreshold
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchFetcher{
		Provider:        p,
		BatchSize:       batchSize,
		Retries:         retries,
		SparseThreshold: sparseThreshold,
		Logger:          logger,
	}
}

// Fetch downloads closes for symbols in batches. A failed or empty batch is
// logged and skipped. Batch tables are outer-joined on the date axis (first-seen
// column wins on collision), duplicate dates collapse to the later row, and sparse
// trailing dates are trimmed. A nil table means there is no data; the error is
// non-nil only when ctx is done.
func (f *BatchFetcher) Fetch(ctx context.Context, symbols []string, w Window) (*model.PriceTable, error) {
	if len(symbols) == 0 {
		return nil, nil
	}
	f.Logger.Info("downloading closes",
		zap.String("provider", f.Provider.Name()),
		zap.Int("symbols", len(symbols)),
		zap.Stringer("window", w))

	var all *model.PriceTable
	for i, batch := range Chunk(symbols, f.BatchSize) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n := i + 1
		log := f.Logger.With(zap.Int("batch", n), zap.Int("symbols", len(batch)))
		log.Info("requesting batch")

		tbl, err := f.fetchBatch(ctx, batch, w, log)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			log.Warn("batch failed, skipping", zap.Error(err))
			continue
		}
		if tbl.Empty() {
			log.Warn("empty result for batch")
			continue
		}
		if all == nil {
			all = tbl
			continue
		}
		if dup := all.Join(tbl); len(dup) > 0 {
			log.Warn("discarded duplicate columns", zap.Strings("columns", dup))
		}
	}
	if all == nil {
		return nil, nil
	}

	if n := all.Dedupe(); n > 0 {
		f.Logger.Info("removed duplicate dates", zap.Int("rows", n))
	}
	all.Sort()
	for _, t := range all.TrimSparseTrailing(f.SparseThreshold) {
		f.Logger.Info("dropped sparse trailing date",
			zap.String("date", t.Date),
			zap.Float64("coverage", t.Coverage))
	}
	if all.Empty() {
		return nil, nil
	}
	return all, nil
}

func (f *BatchFetcher) fetchBatch(ctx context.Context, batch []string, w Window, log *zap.Logger) (*model.PriceTable, error) {
	var tbl *model.PriceTable
	op := func() error {
		t, err := f.Provider.FetchCloses(ctx, batch, w)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return backoff.Permanent(err)
			}
			return err
		}
		tbl = t
		return nil
	}
	b := backoff.WithContext(backoff.WithMaxRetries(f.newBackOff(), uint64(f.Retries)), ctx)
	err := backoff.RetryNotify(op, b, func(err error, wait time.Duration) {
		log.Warn("batch request failed, retrying", zap.Error(err), zap.Duration("backoff", wait))
	})
	return tbl, err
}

func (f *BatchFetcher) newBackOff() backoff.BackOff {
	if f.NewBackOff != nil {
		return f.NewBackOff()
	}
	return defaultBackOff()
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = 10 * time.Second
	return b
}

// Chunk splits symbols into consecutive slices of at most size elements.
func Chunk(symbols []string, size int) [][]string {
	if size <= 0 {
		size = DefaultBatchSize
	}
	var out [][]string
	for i := 0; i < len(symbols); i += size {
		end := i + size
		if end > len(symbols) {
			end = len(symbols)
		}
		out = append(out, symbols[i:end])
	}
	return out
}
