package collector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/PaesslerAG/jsonpath"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const DefaultNamesBatchSize = 100

// Name paths in the chart metadata, in order of preference.
var namePaths = []string{
	"$.chart.result[0].meta.shortName",
	"$.chart.result[0].meta.longName",
}

// NameFetcher looks up display names for provider symbols.
type NameFetcher struct {
	Client      *http.Client
	BaseURL     string
	BatchSize   int
	Concurrency int
	Logger      *zap.Logger
}

// NewNameFetcher creates a NameFetcher whose lookups are cached on disk for a day.
func NewNameFetcher(proxyURL string, cacheDir string, batchSize, concurrency int, logger *zap.Logger) *NameFetcher {
	if batchSize <= 0 {
		batchSize = DefaultNamesBatchSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NameFetcher{
		Client:      newDailyCachingClient(newHTTPClient(proxyURL, 0), cacheDir, logger),
		BaseURL:     yahooBaseURL,
		BatchSize:   batchSize,
		Concurrency: concurrency,
		Logger:      logger,
	}
}

// FetchNames returns provider symbol → display name for every symbol that has
// one. Individual lookups that fail are left out.
func (f *NameFetcher) FetchNames(ctx context.Context, symbols []string) map[string]string {
	names := make(map[string]string, len(symbols))
	var mu sync.Mutex

	for i, batch := range Chunk(symbols, f.BatchSize) {
		if ctx.Err() != nil {
			break
		}
		var g errgroup.Group
		g.SetLimit(max(f.Concurrency, 1))
		var failed int
		var firstErr error
		for _, sym := range batch {
			sym := sym
			g.Go(func() error {
				name, err := f.fetchName(ctx, sym)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					failed++
					if firstErr == nil {
						firstErr = err
					}
					return nil
				}
				if name != "" {
					names[sym] = name
				}
				return nil
			})
		}
		_ = g.Wait()
		if failed == len(batch) {
			f.Logger.Warn("error in names batch", zap.Int("batch", i+1), zap.Error(firstErr))
			continue
		}
		f.Logger.Info("names batch", zap.Int("batch", i+1), zap.Int("symbols", len(batch)), zap.Int("failed", failed))
	}
	return names
}

func (f *NameFetcher) fetchName(ctx context.Context, sym string) (string, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1d", f.BaseURL, url.PathEscape(sym))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	resp, err := f.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("name lookup %s: status %d", sym, resp.StatusCode)
	}

	var doc interface{}
	if err := decodeJSON(body, &doc); err != nil {
		return "", fmt.Errorf("name lookup %s: %w", sym, err)
	}
	for _, path := range namePaths {
		v, err := jsonpath.Get(path, doc)
		if err != nil {
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s), nil
		}
	}
	return "", nil
}
