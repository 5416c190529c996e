package collector

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/kaptinlin/jsonrepair"
)

// newHTTPClient returns a client with optional proxy support.
func newHTTPClient(proxyURL string, timeout time.Duration) *http.Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// decodeStrict unmarshals a price body. A malformed body is an error so the
// request is retried instead of yielding a partial series.
func decodeStrict(body []byte, v interface{}) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// decodeJSON unmarshals a metadata body. Truncated or otherwise malformed bodies
// get one repair attempt before the error is returned. Only use it where a
// partially recovered document is acceptable.
func decodeJSON(body []byte, v interface{}) error {
	err := json.Unmarshal(body, v)
	if err == nil {
		return nil
	}
	repaired, rerr := jsonrepair.JSONRepair(string(body))
	if rerr != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		return fmt.Errorf("decode repaired body: %w", err)
	}
	return nil
}
