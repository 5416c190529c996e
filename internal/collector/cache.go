package collector

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"SectorStrength/internal/model"
)

// dailyCache is an http.RoundTripper that keeps successful responses on disk for
// the rest of the day. Display names change rarely, so a re-run of a full rebuild
// on the same day does not hit the provider again.
type dailyCache struct {
	base   http.RoundTripper
	dir    string
	today  func() time.Time
	logger *zap.Logger
}

// newDailyCachingClient wraps client's transport with a daily disk cache in dir.
func newDailyCachingClient(client *http.Client, dir string, logger *zap.Logger) *http.Client {
	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "sectorstrength-cache")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &http.Client{
		Timeout:   client.Timeout,
		Transport: &dailyCache{base: base, dir: dir, today: time.Now, logger: logger},
	}
}

func (c *dailyCache) RoundTrip(req *http.Request) (*http.Response, error) {
	// The key embeds the day so entries expire at midnight.
	key := fmt.Sprintf("%s %s %s", c.today().Format(model.DateFormat), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	if cached, err := c.get(key, req); err == nil {
		return cached, nil
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	if err := c.put(key, resp); err != nil {
		c.logger.Debug("cache write failed", zap.Error(err))
	}
	return resp, nil
}

func (c *dailyCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(c.dir, key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
}

// put stores resp on disk. DumpResponse buffers the body and restores it on resp.
func (c *dailyCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.dir, key), content, 0o644)
}
