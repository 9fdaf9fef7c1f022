package forward

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/marcelsud/callback-inbox/callback"
	"github.com/marcelsud/callback-inbox/callback/payload"
	"github.com/marcelsud/callback-inbox/fanout"
	"github.com/marcelsud/callback-inbox/metrics"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
)

/* Dispatcher replays a recorded message to a forward target
 * Single attempt, no retry: every attempt yields exactly one forward log
 * Any HTTP response counts as success; only a missing response is an error
 */

const (
	DefaultTimeout = 30 * time.Second

	// maxResponseBody caps how much of a target's answer is kept in the forward log
	maxResponseBody = 1 << 20
)

// headers never replayed: connection-level headers, plus accept-encoding since the
// client negotiates compression itself
var strippedHeaders = map[string]bool{
	"host":              true,
	"content-length":    true,
	"connection":        true,
	"keep-alive":        true,
	"proxy-connection":  true,
	"transfer-encoding": true,
	"te":                true,
	"trailer":           true,
	"upgrade":           true,
	"accept-encoding":   true,
}

// Store is what the dispatcher needs from the callback service
type Store interface {
	LogForward(ctx context.Context, l callback.ForwardLog) (callback.ForwardLog, error)
	Receiver(ctx context.Context, id int64) (callback.Receiver, error)
}

// Result is the outcome of one target in a batch
type Result struct {
	Target callback.ForwardTarget
	Log    callback.ForwardLog
	Err    error
}

type Dispatcher struct {
	store       Store
	notifier    fanout.Notifier
	client      *http.Client
	timeout     time.Duration
	instruments *metrics.Instruments
	logger      zerolog.Logger
}

type Option func(*Dispatcher)

// WithTimeout sets the ceiling of one forward attempt
func WithTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(d *Dispatcher) {
		d.client = client
	}
}

func WithInstruments(in *metrics.Instruments) Option {
	return func(d *Dispatcher) {
		d.instruments = in
	}
}

func NewDispatcher(store Store, notifier fanout.Notifier, logger zerolog.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		store:    store,
		notifier: notifier,
		client:   &http.Client{},
		timeout:  DefaultTimeout,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.notifier == nil {
		d.notifier = fanout.Nop{}
	}
	return d
}

/* Dispatch sends m to t, stores the forward log and publishes forward-result
 * The returned error only reports a forward log that could not be stored
 */
func (d *Dispatcher) Dispatch(ctx context.Context, m callback.Message, t callback.ForwardTarget) (callback.ForwardLog, error) {
	start := time.Now()
	l := d.attempt(ctx, m, t)
	d.instruments.ForwardCompleted(ctx, l.Status.String(), time.Since(start))

	// the attempt is logged even when ctx was cancelled mid-flight
	logCtx := context.WithoutCancel(ctx)
	stored, err := d.store.LogForward(logCtx, l)
	if err != nil {
		return callback.ForwardLog{}, fmt.Errorf("recording forward log: %w", err)
	}

	d.publish(logCtx, m, t, stored)
	return stored, nil
}

// DispatchAll forwards m to every enabled target concurrently
// A target that fails or panics becomes an error result; the others are unaffected
func (d *Dispatcher) DispatchAll(ctx context.Context, m callback.Message, targets []callback.ForwardTarget) []Result {
	enabled := make([]callback.ForwardTarget, 0, len(targets))
	for _, t := range targets {
		if t.Enabled {
			enabled = append(enabled, t)
		}
	}
	results := make([]Result, len(enabled))

	var wg conc.WaitGroup
	for i, t := range enabled {
		i, t := i, t
		wg.Go(func() {
			results[i] = d.dispatchIsolated(ctx, m, t)
		})
	}
	wg.Wait()

	return results
}

func (d *Dispatcher) dispatchIsolated(ctx context.Context, m callback.Message, t callback.ForwardTarget) Result {
	res := Result{Target: t}

	var pc panics.Catcher
	pc.Try(func() {
		res.Log, res.Err = d.Dispatch(ctx, m, t)
	})
	if recovered := pc.Recovered(); recovered != nil {
		res.Err = fmt.Errorf("forwarding to target %d: %w", t.ID, recovered.AsError())
	}
	if res.Err != nil {
		d.logger.Error().Err(res.Err).Int64("message_id", m.ID).Int64("target_id", t.ID).Msg("forward failed")
	}
	return res
}

func (d *Dispatcher) attempt(ctx context.Context, m callback.Message, t callback.ForwardTarget) callback.ForwardLog {
	l := callback.ForwardLog{
		MessageID: m.ID,
		TargetID:  t.ID,
		Status:    callback.ForwardError,
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	req, err := buildRequest(ctx, m, t)
	if err != nil {
		detail := "request error: " + err.Error()
		l.Error = &detail
		return l
	}

	res, err := d.client.Do(req)
	if err != nil {
		detail := "network error: " + err.Error()
		l.Error = &detail
		return l
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBody))
	if err != nil {
		d.logger.Warn().Err(err).Int64("target_id", t.ID).Msg("reading forward response body")
	}

	code := res.StatusCode
	snapshot := payload.Snapshot(body)
	l.Status = callback.ForwardSuccess
	l.ResponseCode = &code
	l.ResponseBody = &snapshot
	return l
}

func (d *Dispatcher) publish(ctx context.Context, m callback.Message, t callback.ForwardTarget, l callback.ForwardLog) {
	r, err := d.store.Receiver(ctx, m.ReceiverID)
	if err != nil {
		d.logger.Warn().Err(err).Int64("receiver_id", m.ReceiverID).Msg("resolving owner of forward result")
		return
	}
	d.notifier.Publish(r.AppID, fanout.EventForwardResult, fanout.NewForwardResultEvent(l, t))
}

// buildRequest rebuilds the recorded request against the target URL
func buildRequest(ctx context.Context, m callback.Message, t callback.ForwardTarget) (*http.Request, error) {
	u, err := url.Parse(t.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing target url: %w", err)
	}
	if len(m.Query) > 0 {
		q := u.Query()
		for key, values := range m.Query {
			for _, v := range values {
				q.Add(key, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	body, isJSON := payload.ForReplay(m.Body)
	var reader io.Reader = http.NoBody
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, m.Method, u.String(), reader)
	if err != nil {
		return nil, err
	}

	for name, value := range m.Headers {
		if strippedHeaders[strings.ToLower(name)] {
			continue
		}
		req.Header.Set(name, value)
	}
	if isJSON && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}
