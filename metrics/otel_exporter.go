package metrics

import (
	"context"
	"fmt"
	"net/http"

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
	collector     Collector

	// OTel meters and instruments
	meter              metric.Meter
	totalCapturedGauge metric.Int64ObservableGauge
	methodCountGauge   metric.Int64ObservableGauge
	statusCountGauge   metric.Int64ObservableGauge
}

// NewOTelExporter creates a new OpenTelemetry metrics exporter with Prometheus format
func NewOTelExporter(collector Collector) (*OTelExporter, error) {
	// Create Prometheus exporter
	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	// Create meter provider
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	// Create meter with service info
	meter := meterProvider.Meter(
		"webhook-capture",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		collector:     collector,
		meter:         meter,
	}

	// Register metrics instruments
	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

// registerInstruments creates and registers all OpenTelemetry metric instruments
func (oe *OTelExporter) registerInstruments() error {
	var err error

	// Total captured gauge
	oe.totalCapturedGauge, err = oe.meter.Int64ObservableGauge(
		"webhook.captured.total",
		metric.WithDescription("Number of webhooks held in the capture store"),
		metric.WithUnit("{webhooks}"),
		metric.WithInt64Callback(oe.observeTotalCaptured),
	)
	if err != nil {
		return fmt.Errorf("creating total captured gauge: %w", err)
	}

	// Method count gauge (per HTTP method)
	oe.methodCountGauge, err = oe.meter.Int64ObservableGauge(
		"webhook.captured.by_method",
		metric.WithDescription("Number of captured webhooks by HTTP method"),
		metric.WithUnit("{webhooks}"),
		metric.WithInt64Callback(oe.observeMethodCounts),
	)
	if err != nil {
		return fmt.Errorf("creating method count gauge: %w", err)
	}

	// Status count gauge (per recorded status code)
	oe.statusCountGauge, err = oe.meter.Int64ObservableGauge(
		"webhook.captured.by_status",
		metric.WithDescription("Number of captured webhooks by recorded status code"),
		metric.WithUnit("{webhooks}"),
		metric.WithInt64Callback(oe.observeStatusCounts),
	)
	if err != nil {
		return fmt.Errorf("creating status count gauge: %w", err)
	}

	return nil
}

// observeTotalCaptured is a callback that reports the store size
func (oe *OTelExporter) observeTotalCaptured(ctx context.Context, observer metric.Int64Observer) error {
	total, err := oe.collector.GetTotalCaptured(ctx)
	if err != nil {
		return err
	}

	observer.Observe(total)

	return nil
}

// observeMethodCounts is a callback that reports webhook counts by method
func (oe *OTelExporter) observeMethodCounts(ctx context.Context, observer metric.Int64Observer) error {
	methodCounts, err := oe.collector.GetMethodCounts(ctx)
	if err != nil {
		return err
	}

	for method, count := range methodCounts {
		observer.Observe(count, metric.WithAttributes(
			attribute.String("http.method", method),
		))
	}

	return nil
}

// observeStatusCounts is a callback that reports webhook counts by status code
func (oe *OTelExporter) observeStatusCounts(ctx context.Context, observer metric.Int64Observer) error {
	statusCounts, err := oe.collector.GetStatusCounts(ctx)
	if err != nil {
		return err
	}

	for status, count := range statusCounts {
		observer.Observe(count, metric.WithAttributes(
			attribute.String("http.status_code", status),
		))
	}

	return nil
}

// ServeHTTP serves Prometheus-formatted metrics on the given HTTP handler
func (oe *OTelExporter) ServeHTTP() http.Handler {
	return promhttp.Handler()
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
