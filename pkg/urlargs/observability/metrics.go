package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records urlargs metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordResolve records a completed resolution.
	RecordResolve(ctx context.Context, fields, warnings int, duration time.Duration)

	// RecordField records one resolved field with its kind and where its value came from.
	RecordField(ctx context.Context, kind, source string)

	// RecordInvalid records a query value rejected by its field's validity check.
	RecordInvalid(ctx context.Context, field, kind string)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	resolutions    metric.Int64Counter
	resolveLatency metric.Float64Histogram
	fieldsResolved metric.Int64Counter
	fieldsInvalid  metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics lazily initializes the shared OTel instruments.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("urlargs")

	resolutions, err := meter.Int64Counter("urlargs.resolutions",
		metric.WithDescription("Number of query resolutions"),
	)
	if err != nil {
		return nil, err
	}

	resolveLatency, err := meter.Float64Histogram("urlargs.resolve.latency_ms",
		metric.WithDescription("Resolution latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	fieldsResolved, err := meter.Int64Counter("urlargs.fields.resolved",
		metric.WithDescription("Number of resolved fields"),
	)
	if err != nil {
		return nil, err
	}

	fieldsInvalid, err := meter.Int64Counter("urlargs.fields.invalid",
		metric.WithDescription("Number of query values that fell back to their default"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		resolutions:    resolutions,
		resolveLatency: resolveLatency,
		fieldsResolved: fieldsResolved,
		fieldsInvalid:  fieldsInvalid,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordResolve records a resolution.
func (m *otelMetrics) RecordResolve(ctx context.Context, fields, warnings int, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.Bool("clean", warnings == 0),
	}
	m.resolutions.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.resolveLatency.Record(ctx, Milliseconds(duration), metric.WithAttributes(attrs...))
}

// RecordField records a resolved field.
func (m *otelMetrics) RecordField(ctx context.Context, kind, source string) {
	m.fieldsResolved.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("source", source),
	))
}

// RecordInvalid records a rejected query value.
func (m *otelMetrics) RecordInvalid(ctx context.Context, field, kind string) {
	m.fieldsInvalid.Add(ctx, 1, metric.WithAttributes(
		attribute.String("field", field),
		attribute.String("kind", kind),
	))
}
