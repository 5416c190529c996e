package collector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"SectorStrength/internal/model"
)

const yahooBaseURL = "https://query1.finance.yahoo.com"

// errSymbolNotFound marks a symbol the provider does not know. It is not a
// request failure.
var errSymbolNotFound = errors.New("yahoo: symbol not found")

// YahooProvider implements Provider using the Yahoo Finance chart API. The chart
// endpoint serves one symbol per request, so a batch is fetched with bounded
// concurrency. A symbol whose request fails or whose body is malformed is
// retried up to Retries times before it is left out of the batch.
type YahooProvider struct {
	Client      *http.Client
	BaseURL     string
	Concurrency int
	Retries     int
	// NewBackOff builds the retry policy for one symbol; exponential when nil.
	NewBackOff func() backoff.BackOff
	Logger     *zap.Logger
}

// NewYahooProvider creates a Yahoo Finance provider with optional proxy support.
func NewYahooProvider(proxyURL string, timeout time.Duration, concurrency int, logger *zap.Logger) *YahooProvider {
	return &YahooProvider{
		Client:      newHTTPClient(proxyURL, timeout),
		BaseURL:     yahooBaseURL,
		Concurrency: concurrency,
		Retries:     DefaultRetries,
		Logger:      logger,
	}
}

func (f *YahooProvider) Name() string { return "yahoo" }

// yahooChart is the response structure from Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol    string `json:"symbol"`
				GMTOffset int64  `json:"gmtoffset"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				AdjClose []struct {
					AdjClose []interface{} `json:"adjclose"`
				} `json:"adjclose"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// closeSeries is one symbol's closes on exchange-local dates.
type closeSeries struct {
	symbol string
	dates  []string
	prices []model.Price
}

// FetchCloses requests every symbol of the batch and assembles the results into
// one table. Unknown symbols are left out; the call fails only when no symbol
// could be fetched because of request errors.
func (f *YahooProvider) FetchCloses(ctx context.Context, symbols []string, w Window) (*model.PriceTable, error) {
	series := make([]*closeSeries, len(symbols))
	errs := make([]error, len(symbols))

	var g errgroup.Group
	limit := f.Concurrency
	if limit <= 0 {
		limit = 1
	}
	g.SetLimit(limit)
	for i, sym := range symbols {
		i, sym := i, sym
		g.Go(func() error {
			s, err := f.fetchWithRetry(ctx, sym, w)
			series[i], errs[i] = s, err
			return nil
		})
	}
	_ = g.Wait()

	var failed, missing int
	var firstErr error
	for i, err := range errs {
		switch {
		case err == nil:
		case errors.Is(err, errSymbolNotFound):
			missing++
			f.logger().Debug("symbol not found", zap.String("symbol", symbols[i]))
		default:
			failed++
			if firstErr == nil {
				firstErr = err
			}
			f.logger().Debug("symbol request failed", zap.String("symbol", symbols[i]), zap.Error(err))
		}
	}
	if failed > 0 && failed+missing == len(symbols) {
		return nil, fmt.Errorf("yahoo: %d of %d requests failed: %w", failed, len(symbols), firstErr)
	}
	if failed > 0 {
		f.logger().Warn("partial batch", zap.Int("failed", failed), zap.Int("requested", len(symbols)), zap.Error(firstErr))
	}
	return buildTable(series), nil
}

func (f *YahooProvider) fetchWithRetry(ctx context.Context, sym string, w Window) (*closeSeries, error) {
	var s *closeSeries
	op := func() error {
		res, err := f.fetchSeries(ctx, sym, w)
		switch {
		case err == nil:
			s = res
			return nil
		case errors.Is(err, errSymbolNotFound), ctx.Err() != nil:
			return backoff.Permanent(err)
		}
		return err
	}
	policy := defaultBackOff
	if f.NewBackOff != nil {
		policy = f.NewBackOff
	}
	retries := max(f.Retries, 0)
	b := backoff.WithContext(backoff.WithMaxRetries(policy(), uint64(retries)), ctx)
	err := backoff.RetryNotify(op, b, func(err error, wait time.Duration) {
		f.logger().Debug("symbol request failed, retrying",
			zap.String("symbol", sym), zap.Error(err), zap.Duration("backoff", wait))
	})
	return s, err
}

func (f *YahooProvider) fetchSeries(ctx context.Context, sym string, w Window) (*closeSeries, error) {
	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("events", "div,splits")
	q.Set("includeAdjustedClose", "true")
	if w.Start.IsZero() {
		q.Set("range", w.Period)
	} else {
		end := w.End
		if end.IsZero() {
			end = time.Now().Add(24 * time.Hour)
		}
		q.Set("period1", strconv.FormatInt(w.Start.Unix(), 10))
		q.Set("period2", strconv.FormatInt(end.Unix(), 10))
	}
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", f.BaseURL, url.PathEscape(sym), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch %s: %w", sym, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body %s: %w", sym, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, errSymbolNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo %s: status %d", sym, resp.StatusCode)
	}

	var chart yahooChart
	if err := decodeStrict(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo %s: %w", sym, err)
	}
	if chart.Chart.Error != nil {
		if chart.Chart.Error.Code == "Not Found" {
			return nil, errSymbolNotFound
		}
		return nil, fmt.Errorf("yahoo api error for %s: %s", sym, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return &closeSeries{symbol: sym}, nil
	}
	return parseSeries(sym, &chart)
}

// parseSeries converts the first chart result into dated adjusted closes. A
// result whose adjusted closes are missing or not aligned with its timestamps
// is rejected.
func parseSeries(sym string, chart *yahooChart) (*closeSeries, error) {
	result := chart.Chart.Result[0]
	var closes []interface{}
	if adj := result.Indicators.AdjClose; len(adj) > 0 {
		closes = adj[0].AdjClose
	}
	if len(closes) != len(result.Timestamp) {
		return nil, fmt.Errorf("yahoo %s: %d adjusted closes for %d timestamps", sym, len(closes), len(result.Timestamp))
	}

	s := &closeSeries{
		symbol: sym,
		dates:  make([]string, 0, len(result.Timestamp)),
		prices: make([]model.Price, 0, len(result.Timestamp)),
	}
	for i, ts := range result.Timestamp {
		p := model.PriceFrom(closes[i])
		// Timestamps are session opens; shift to exchange time before taking the date.
		d := time.Unix(ts+result.Meta.GMTOffset, 0).UTC().Format(model.DateFormat)
		s.dates = append(s.dates, d)
		s.prices = append(s.prices, p)
	}
	return s, nil
}

// buildTable lays the fetched series out on a shared date axis. A date repeated
// within one series keeps its last value.
func buildTable(series []*closeSeries) *model.PriceTable {
	rows := make(map[string]map[string]model.Price)
	var order, cols []string
	for _, s := range series {
		if s == nil {
			continue
		}
		cols = append(cols, s.symbol)
		for i, d := range s.dates {
			r, ok := rows[d]
			if !ok {
				r = make(map[string]model.Price)
				rows[d] = r
				order = append(order, d)
			}
			r[s.symbol] = s.prices[i]
		}
	}
	sort.Strings(order)
	tbl := model.NewPriceTable(cols...)
	for _, d := range order {
		tbl.AppendRow(d, rows[d])
	}
	return tbl
}

func (f *YahooProvider) logger() *zap.Logger {
	if f.Logger == nil {
		return zap.NewNop()
	}
	return f.Logger
}
