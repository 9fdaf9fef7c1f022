package metrics_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/marcelsud/callback-inbox/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

type fakeViewers int

func (f fakeViewers) Viewers() int { return int(f) }

type fakeQueue int

func (f fakeQueue) Pending() int { return int(f) }

type fakeStats struct {
	counts map[string]int64
	err    error
}

func (f fakeStats) ForwardStats(context.Context) (map[string]int64, error) {
	return f.counts, f.err
}

func TestSystemCollector_Collect(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		c := metrics.NewSystemCollector(fakeViewers(3), fakeQueue(2), fakeStats{counts: map[string]int64{"success": 5, "error": 1}})

		m, err := c.Collect(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(3), m.Viewers)
		assert.Equal(t, int64(2), m.PendingForwards)
		assert.Equal(t, int64(5), m.ForwardCounts["success"])
		assert.False(t, m.Timestamp.IsZero())
	})

	t.Run("nil sources report zero", func(t *testing.T) {
		c := metrics.NewSystemCollector(nil, nil, nil)

		m, err := c.Collect(ctx)

		require.NoError(t, err)
		assert.Zero(t, m.Viewers)
		assert.Empty(t, m.ForwardCounts)
	})

	t.Run("storage failure", func(t *testing.T) {
		c := metrics.NewSystemCollector(fakeViewers(0), fakeQueue(0), fakeStats{err: errors.New("db down")})

		_, err := c.Collect(ctx)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "getting forward counts")
	})
}

type countingStats struct {
	calls int
	err   error
}

func (f *countingStats) ForwardStats(context.Context) (map[string]int64, error) {
	f.calls++
	return map[string]int64{"success": int64(f.calls)}, f.err
}

func TestSystemCollector_StatsTTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	t.Run("scrapes within the ttl reuse the counts", func(t *testing.T) {
		stats := &countingStats{}
		c := metrics.NewSystemCollector(nil, nil, stats, metrics.WithStatsTTL(10*time.Second), metrics.WithClock(clock))

		first, err := c.GetForwardCounts(ctx)
		require.NoError(t, err)
		first["success"] = 99
		second, err := c.GetForwardCounts(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, stats.calls)
		assert.Equal(t, int64(1), second["success"])

		now = now.Add(10 * time.Second)
		third, err := c.GetForwardCounts(ctx)
		require.NoError(t, err)

		assert.Equal(t, 2, stats.calls)
		assert.Equal(t, int64(2), third["success"])
	})

	t.Run("failures are not cached", func(t *testing.T) {
		stats := &countingStats{err: errors.New("db down")}
		c := metrics.NewSystemCollector(nil, nil, stats, metrics.WithStatsTTL(time.Minute), metrics.WithClock(clock))

		_, err := c.GetForwardCounts(ctx)
		require.Error(t, err)
		_, err = c.GetForwardCounts(ctx)
		require.Error(t, err)

		assert.Equal(t, 2, stats.calls)
	})

	t.Run("zero ttl queries every time", func(t *testing.T) {
		stats := &countingStats{}
		c := metrics.NewSystemCollector(nil, nil, stats)

		_, _ = c.GetForwardCounts(ctx)
		_, _ = c.GetForwardCounts(ctx)

		assert.Equal(t, 2, stats.calls)
	})
}

func TestInstruments_NilIsSafe(t *testing.T) {
	var in *metrics.Instruments

	assert.NotPanics(t, func() {
		in.MessageReceived(context.Background(), "POST")
		in.IngestFailed(context.Background(), "storage")
		in.ForwardCompleted(context.Background(), "success", time.Second)
	})
}

func TestInstruments_Noop(t *testing.T) {
	in, err := metrics.NewInstruments(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	in.MessageReceived(context.Background(), "POST")
	in.ForwardCompleted(context.Background(), "error", 10*time.Millisecond)
}

func TestOTelExporter_ServesPrometheus(t *testing.T) {
	ctx := context.Background()
	collector := metrics.NewSystemCollector(fakeViewers(4), fakeQueue(1), fakeStats{counts: map[string]int64{"success": 2}})

	exporter, err := metrics.NewOTelExporter()
	require.NoError(t, err)
	defer exporter.Shutdown(ctx)
	require.NoError(t, exporter.Observe(collector))

	in, err := metrics.NewInstruments(exporter.Meter())
	require.NoError(t, err)
	in.MessageReceived(ctx, "POST")
	in.ForwardCompleted(ctx, "success", 20*time.Millisecond)

	srv := httptest.NewServer(exporter.ServeHTTP())
	defer srv.Close()

	res, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), "callback_viewers_connected")
	assert.Contains(t, string(body), "callback_forwards_pending")
	assert.Contains(t, string(body), "callback_forward_logs_count")
	assert.Contains(t, string(body), "callback_messages_received")
	assert.Contains(t, string(body), "callback_forward_duration")
	assert.Contains(t, string(body), "go_goroutines")
}
