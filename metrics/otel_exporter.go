package metrics

import (
	"context"
	"fmt"
	"net/http"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// OTelExporter provides OpenTelemetry metrics export following OTel standards
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	registry      *promclient.Registry
	collector     Collector

	// OTel meters and instruments
	meter               metric.Meter
	viewersGauge        metric.Int64ObservableGauge
	pendingForwardGauge metric.Int64ObservableGauge
	forwardCountGauge   metric.Int64ObservableGauge
}

/* NewOTelExporter creates a new OpenTelemetry metrics exporter with Prometheus format
 * Observable gauges are added by Observe once the collector's sources exist
 */
func NewOTelExporter() (*OTelExporter, error) {
	registry := promclient.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	meter := meterProvider.Meter(
		"callback-inbox",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		registry:      registry,
		meter:         meter,
	}
	return oe, nil
}

// Observe registers the gauges fed by collector; call it once
func (oe *OTelExporter) Observe(collector Collector) error {
	oe.collector = collector
	if err := oe.registerInstruments(); err != nil {
		return fmt.Errorf("registering instruments: %w", err)
	}
	return nil
}

// Meter returns the meter synchronous instruments are created on
func (oe *OTelExporter) Meter() metric.Meter {
	return oe.meter
}

// registerInstruments creates the observable gauges fed by the collector
func (oe *OTelExporter) registerInstruments() error {
	var err error

	oe.viewersGauge, err = oe.meter.Int64ObservableGauge(
		"callback.viewers.connected",
		metric.WithDescription("Number of real-time viewers subscribed to an application"),
		metric.WithUnit("{viewers}"),
		metric.WithInt64Callback(oe.observeViewers),
	)
	if err != nil {
		return fmt.Errorf("creating viewers gauge: %w", err)
	}

	oe.pendingForwardGauge, err = oe.meter.Int64ObservableGauge(
		"callback.forwards.pending",
		metric.WithDescription("Number of forward jobs waiting for a worker"),
		metric.WithUnit("{jobs}"),
		metric.WithInt64Callback(oe.observePendingForwards),
	)
	if err != nil {
		return fmt.Errorf("creating pending forwards gauge: %w", err)
	}

	oe.forwardCountGauge, err = oe.meter.Int64ObservableGauge(
		"callback.forward_logs.count",
		metric.WithDescription("Number of stored forward logs by status"),
		metric.WithUnit("{logs}"),
		metric.WithInt64Callback(oe.observeForwardCounts),
	)
	if err != nil {
		return fmt.Errorf("creating forward log count gauge: %w", err)
	}

	return nil
}

func (oe *OTelExporter) observeViewers(ctx context.Context, observer metric.Int64Observer) error {
	viewers, err := oe.collector.GetViewers(ctx)
	if err != nil {
		return err
	}
	observer.Observe(viewers)
	return nil
}

func (oe *OTelExporter) observePendingForwards(ctx context.Context, observer metric.Int64Observer) error {
	pending, err := oe.collector.GetPendingForwards(ctx)
	if err != nil {
		return err
	}
	observer.Observe(pending)
	return nil
}

// observeForwardCounts is a callback that reports forward log counts by status
func (oe *OTelExporter) observeForwardCounts(ctx context.Context, observer metric.Int64Observer) error {
	counts, err := oe.collector.GetForwardCounts(ctx)
	if err != nil {
		return err
	}

	for status, count := range counts {
		observer.Observe(count, metric.WithAttributes(
			attribute.String("forward.status", status),
		))
	}

	return nil
}

// ServeHTTP serves Prometheus-formatted metrics
func (oe *OTelExporter) ServeHTTP() http.Handler {
	return promhttp.HandlerFor(oe.registry, promhttp.HandlerOpts{})
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
