package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SectorStrength/internal/model"
)

func TestRESTProvider_FetchCloses(t *testing.T) {
	var gotAuth, gotSymbols, gotFrom string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/bars/daily", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotSymbols = r.URL.Query().Get("symbols")
		gotFrom = r.URL.Query().Get("from")
		_, _ = w.Write([]byte(`[
			{"symbol":"AAPL","date":"2024-01-03","close":184.25,"adj_close":null},
			{"symbol":"AAPL","date":"2024-01-02","close":185.64,"adj_close":184.93},
			{"symbol":"BRK-B","date":"2024-01-02","close":361,"adj_close":"360.5"},
			{"symbol":"BRK-B","date":"not-a-date","close":1}
		]`))
	}))
	defer srv.Close()

	p := NewRESTProvider(srv.URL+"/", "secret", "", time.Second)
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	tbl, err := p.FetchCloses(context.Background(), []string{"AAPL", "BRK-B"}, SinceWindow(start))

	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "AAPL,BRK-B", gotSymbols)
	assert.Equal(t, "2024-01-02", gotFrom)

	assert.Equal(t, []string{"2024-01-02", "2024-01-03"}, tbl.Dates())
	aapl, _ := tbl.Column("AAPL")
	assert.Equal(t, []model.Price{model.Some(184.93), model.Null}, aapl)
	brk, _ := tbl.Column("BRK-B")
	assert.Equal(t, []model.Price{model.Some(360.5), model.Null}, brk)
}

func TestRESTProvider_UnadjustedCloseIsNotUsed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"symbol":"X","date":"2024-01-02","close":4,"adj_close":3.5},
			{"symbol":"X","date":"2024-01-03","close":5,"adj_close":null},
			{"symbol":"X","date":"2024-01-04","close":6}
		]`))
	}))
	defer srv.Close()

	p := NewRESTProvider(srv.URL, "", "", time.Second)
	tbl, err := p.FetchCloses(context.Background(), []string{"X"}, PeriodWindow("5y"))

	require.NoError(t, err)
	x, _ := tbl.Column("X")
	assert.Equal(t, []model.Price{model.Some(3.5), model.Null, model.Null}, x)
}

func TestRESTProvider_TruncatedBodyIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"symbol":"X","date":"2024-01-02","adj_close":3.5},{"symbol":"X","da`))
	}))
	defer srv.Close()

	p := NewRESTProvider(srv.URL, "", "", time.Second)
	_, err := p.FetchCloses(context.Background(), []string{"X"}, PeriodWindow("5y"))

	assert.Error(t, err)
}

func TestRESTProvider_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewRESTProvider(srv.URL, "", "", time.Second)
	_, err := p.FetchCloses(context.Background(), []string{"AAPL"}, PeriodWindow("5y"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}
