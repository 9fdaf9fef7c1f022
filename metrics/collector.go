package metrics

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"
)

// ViewerCounter reports connected viewers (fanout.Hub)
type ViewerCounter interface {
	Viewers() int
}

// QueueDepth reports queued forward jobs (forward.Runner)
type QueueDepth interface {
	Pending() int
}

// ForwardStatsSource reports forward log counts (callback.Service)
type ForwardStatsSource interface {
	ForwardStats(ctx context.Context) (map[string]int64, error)
}

// SystemCollector implements Collector over the running components
type SystemCollector struct {
	viewers ViewerCounter
	queue   QueueDepth
	stats   ForwardStatsSource

	statsTTL  time.Duration
	now       func() time.Time
	mu        sync.Mutex
	counts    map[string]int64
	countedAt time.Time
}

type CollectorOption func(*SystemCollector)

// WithStatsTTL reuses forward counts for ttl so scrapes do not each aggregate forward_logs
func WithStatsTTL(ttl time.Duration) CollectorOption {
	return func(c *SystemCollector) {
		c.statsTTL = ttl
	}
}

func WithClock(now func() time.Time) CollectorOption {
	return func(c *SystemCollector) {
		c.now = now
	}
}

// NewSystemCollector creates a collector; nil sources report zero
func NewSystemCollector(viewers ViewerCounter, queue QueueDepth, stats ForwardStatsSource, opts ...CollectorOption) *SystemCollector {
	c := &SystemCollector{
		viewers: viewers,
		queue:   queue,
		stats:   stats,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect gathers all metrics
func (c *SystemCollector) Collect(ctx context.Context) (Metrics, error) {
	viewers, err := c.GetViewers(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting viewers: %w", err)
	}

	pending, err := c.GetPendingForwards(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting pending forwards: %w", err)
	}

	counts, err := c.GetForwardCounts(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting forward counts: %w", err)
	}

	return Metrics{
		Viewers:         viewers,
		PendingForwards: pending,
		ForwardCounts:   counts,
		Timestamp:       time.Now(),
	}, nil
}

func (c *SystemCollector) GetViewers(ctx context.Context) (int64, error) {
	if c.viewers == nil {
		return 0, nil
	}
	return int64(c.viewers.Viewers()), nil
}

func (c *SystemCollector) GetPendingForwards(ctx context.Context) (int64, error) {
	if c.queue == nil {
		return 0, nil
	}
	return int64(c.queue.Pending()), nil
}

func (c *SystemCollector) GetForwardCounts(ctx context.Context) (map[string]int64, error) {
	if c.stats == nil {
		return map[string]int64{}, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.counts != nil && now.Sub(c.countedAt) < c.statsTTL {
		return maps.Clone(c.counts), nil
	}

	counts, err := c.stats.ForwardStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting forward logs: %w", err)
	}
	if c.statsTTL > 0 {
		c.counts = maps.Clone(counts)
		c.countedAt = now
	}
	return counts, nil
}
