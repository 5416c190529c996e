package collector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"SectorStrength/internal/model"
)

// RESTProvider implements Provider against a self-hosted bars service that
// serves many symbols per request.
type RESTProvider struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRESTProvider creates a new provider with optional proxy support.
func NewRESTProvider(baseURL, apiKey, proxyURL string, timeout time.Duration) *RESTProvider {
	return &RESTProvider{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Client:  newHTTPClient(proxyURL, timeout),
	}
}

func (f *RESTProvider) Name() string { return "rest" }

// restBar is the expected JSON shape from the bars service. Only the adjusted
// close is read; a bar without one is a missing observation.
type restBar struct {
	Symbol   string      `json:"symbol"`
	Date     string      `json:"date"`
	AdjClose interface{} `json:"adj_close"`
}

func (f *RESTProvider) FetchCloses(ctx context.Context, symbols []string, w Window) (*model.PriceTable, error) {
	q := url.Values{}
	q.Set("symbols", strings.Join(symbols, ","))
	q.Set("interval", "1d")
	if w.Start.IsZero() {
		q.Set("range", w.Period)
	} else {
		q.Set("from", w.Start.Format(model.DateFormat))
		if !w.End.IsZero() {
			q.Set("to", w.End.Format(model.DateFormat))
		}
	}
	endpoint := fmt.Sprintf("%s/api/v1/bars/daily?%s", f.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read bars: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch bars: status %d, body: %s", resp.StatusCode, string(body))
	}
	var bars []restBar
	if err := decodeStrict(body, &bars); err != nil {
		return nil, fmt.Errorf("bars: %w", err)
	}

	bySymbol := make(map[string]*closeSeries)
	series := make([]*closeSeries, 0, len(symbols))
	for _, b := range bars {
		if _, err := time.Parse(model.DateFormat, b.Date); err != nil || b.Symbol == "" {
			continue
		}
		s, ok := bySymbol[b.Symbol]
		if !ok {
			s = &closeSeries{symbol: b.Symbol}
			bySymbol[b.Symbol] = s
			series = append(series, s)
		}
		s.dates = append(s.dates, b.Date)
		s.prices = append(s.prices, model.PriceFrom(b.AdjClose))
	}
	return buildTable(series), nil
}
