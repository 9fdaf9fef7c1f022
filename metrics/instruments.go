package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Instruments are the synchronous instruments recorded by the pipeline and the dispatcher
// A nil *Instruments records nothing
type Instruments struct {
	messagesReceived metric.Int64Counter
	ingestFailures   metric.Int64Counter
	forwards         metric.Int64Counter
	forwardDuration  metric.Float64Histogram
}

// NewInstruments creates the instruments on meter
func NewInstruments(meter metric.Meter) (*Instruments, error) {
	var (
		in  Instruments
		err error
	)

	in.messagesReceived, err = meter.Int64Counter(
		"callback.messages.received",
		metric.WithDescription("Number of callback messages recorded"),
		metric.WithUnit("{messages}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating messages received counter: %w", err)
	}

	in.ingestFailures, err = meter.Int64Counter(
		"callback.ingest.failures",
		metric.WithDescription("Number of callback requests that could not be recorded"),
		metric.WithUnit("{requests}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ingest failures counter: %w", err)
	}

	in.forwards, err = meter.Int64Counter(
		"callback.forwards",
		metric.WithDescription("Number of forward attempts by status"),
		metric.WithUnit("{forwards}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating forwards counter: %w", err)
	}

	in.forwardDuration, err = meter.Float64Histogram(
		"callback.forward.duration",
		metric.WithDescription("Duration of forward attempts"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating forward duration histogram: %w", err)
	}

	return &in, nil
}

func (in *Instruments) MessageReceived(ctx context.Context, method string) {
	if in == nil {
		return
	}
	in.messagesReceived.Add(ctx, 1, metric.WithAttributes(attribute.String("http.method", method)))
}

// IngestFailed counts a rejected callback request; reason is "not_found" or "storage"
func (in *Instruments) IngestFailed(ctx context.Context, reason string) {
	if in == nil {
		return
	}
	in.ingestFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

func (in *Instruments) ForwardCompleted(ctx context.Context, status string, elapsed time.Duration) {
	if in == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("forward.status", status))
	in.forwards.Add(ctx, 1, attrs)
	in.forwardDuration.Record(ctx, elapsed.Seconds(), attrs)
}
