package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"SectorStrength/internal/refresh"
)

func TestFormatRunSummary(t *testing.T) {
	start := time.Date(2024, 1, 5, 22, 30, 0, 0, time.UTC)
	s := &refresh.Summary{
		Mode:       refresh.ModeIncremental,
		StartedAt:  start,
		FinishedAt: start.Add(95 * time.Second),
		Status:     refresh.StatusPartial,
		FirstDate:  "2024-01-04",
		LastDate:   "2024-01-05",
		NewDates:   []string{"2024-01-04", "2024-01-05"},
		Symbols:    1180,
		Groups: []refresh.GroupResult{
			{Key: "panel_01", Outcome: refresh.OutcomeWritten, Missing: []string{"NEW"}},
			{Key: "panel_02", Title: "2. Tech - Software & Services", Outcome: refresh.OutcomeSkipped},
		},
		Err: errors.New("panel_03: disk <full>"),
	}

	msg := FormatRunSummary(s)

	assert.Contains(t, msg, "⚠️ <b>SectorStrength incremental</b> | 2024-01-05 22:30")
	assert.Contains(t, msg, "Status: partial (1m35s)")
	assert.Contains(t, msg, "Data: 1180 tickers, 2024-01-04 → 2024-01-05")
	assert.Contains(t, msg, "New trading days: 2 (2024-01-04 → 2024-01-05)")
	assert.Contains(t, msg, "Panels written: 1/2")
	assert.Contains(t, msg, "panel_02 2. Tech - Software &amp; Services")
	assert.Contains(t, msg, "1 symbols need a full rebuild")
	assert.Contains(t, msg, "disk &lt;full&gt;")
}

func TestFormatRunSummary_Full(t *testing.T) {
	s := &refresh.Summary{Mode: refresh.ModeFull, Status: refresh.StatusOK, Names: 1190, NewDates: []string{"2024-01-05"}}

	msg := FormatRunSummary(s)

	assert.True(t, strings.HasPrefix(msg, "✅"))
	assert.Contains(t, msg, "Names: 1190")
	assert.Contains(t, msg, "New trading day: 2024-01-05")
	assert.NotContains(t, msg, "Error")
}

func newTestNotifier(url string) *TelegramNotifier {
	n := NewTelegramNotifier("TOKEN", "42", "", zap.NewNop())
	n.BaseURL = url
	return n
}

func TestSend(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botTOKEN/sendMessage", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	require.NoError(t, newTestNotifier(srv.URL).Send(context.Background(), "<b>hi</b>"))
	assert.Equal(t, "42", got["chat_id"])
	assert.Equal(t, "<b>hi</b>", got["text"])
	assert.Equal(t, "HTML", got["parse_mode"])
}

func TestSendWithRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	require.NoError(t, newTestNotifier(srv.URL).SendWithRetry(context.Background(), "x", 2))
	assert.Equal(t, int32(2), calls.Load())
}

func TestSendWithRetry_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"ok":false,"description":"chat not found"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	err := newTestNotifier(srv.URL).SendWithRetry(context.Background(), "x", 3)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
	assert.Equal(t, int32(1), calls.Load())
}

func TestStartPolling(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu      sync.Mutex
		replies []string
		served  atomic.Bool
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/getUpdates"):
			if served.Swap(true) {
				_, _ = w.Write([]byte(`{"ok":true,"result":[]}`))
				return
			}
			_, _ = w.Write([]byte(`{"ok":true,"result":[
				{"update_id":7,"message":{"text":"/status","chat":{"id":999}}},
				{"update_id":8,"message":{"text":" /status ","chat":{"id":42}}}
			]}`))
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			mu.Lock()
			replies = append(replies, body["text"])
			mu.Unlock()
			_, _ = w.Write([]byte(`{"ok":true}`))
			cancel()
		}
	}))
	defer srv.Close()

	var commands []string
	done := make(chan struct{})
	go func() {
		defer close(done)
		newTestNotifier(srv.URL).StartPolling(ctx, func(_ context.Context, cmd string) string {
			commands = append(commands, cmd)
			return "all good"
		})
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("polling did not stop")
	}
	assert.Equal(t, []string{"/status"}, commands)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"all good"}, replies)
}
