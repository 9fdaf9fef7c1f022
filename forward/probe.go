package forward

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 10 * time.Second

// ProbeResult is the outcome of a connectivity test against a target URL
type ProbeResult struct {
	Reachable  bool   `json:"reachable"`
	StatusCode *int   `json:"status_code"`
	Error      string `json:"error,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

// Probe sends a GET to targetURL; the target is reachable when it answers below 500
// Nothing is stored or published
func (d *Dispatcher) Probe(ctx context.Context, targetURL string) ProbeResult {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return ProbeResult{Error: "request error: " + err.Error()}
	}
	req.Header.Set("User-Agent", "callback-inbox-probe")

	res, err := d.client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return ProbeResult{Error: "network error: " + err.Error(), DurationMS: elapsed.Milliseconds()}
	}
	defer res.Body.Close()

	code := res.StatusCode
	return ProbeResult{
		Reachable:  code < http.StatusInternalServerError,
		StatusCode: &code,
		DurationMS: elapsed.Milliseconds(),
	}
}
