package metrics

import (
	"context"
	"time"
)

// Metrics represents the current state of the callback inbox.
type Metrics struct {
	// Viewers is the number of real-time connections subscribed to an application
	Viewers int64 `json:"viewers"`

	// PendingForwards is the number of forward jobs waiting for a worker
	PendingForwards int64 `json:"pending_forwards"`

	// ForwardCounts maps forward status name to the number of forward logs
	ForwardCounts map[string]int64 `json:"forward_counts"`

	// Timestamp when metrics were collected
	Timestamp time.Time `json:"timestamp"`
}

// Collector defines the interface for collecting metrics from the callback inbox.
type Collector interface {
	// Collect gathers current metrics from the system
	Collect(ctx context.Context) (Metrics, error)

	// GetViewers returns the number of subscribed viewers
	GetViewers(ctx context.Context) (int64, error)

	// GetPendingForwards returns the number of queued forward jobs
	GetPendingForwards(ctx context.Context) (int64, error)

	// GetForwardCounts returns the count of forward logs by status
	GetForwardCounts(ctx context.Context) (map[string]int64, error)
}
