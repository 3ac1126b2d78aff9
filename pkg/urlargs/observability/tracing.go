package observability

import (
	"context"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer uses the global OTel tracer provider.
var tracer = otel.Tracer("urlargs")

// Span and event names.
const (
	SpanResolve       = "urlargs.resolve"
	SpanDescribe      = "urlargs.describe"
	EventInvalidValue = "urlargs.invalid_value"
)

// InvalidValueAttrs returns the attributes of an EventInvalidValue event.
// The rejected value is cut to at most 64 bytes on a rune boundary.
func InvalidValueAttrs(field, kind, raw string) []attribute.KeyValue {
	if len(raw) > maxEventValueLen {
		n := maxEventValueLen
		for n > 0 && !utf8.RuneStart(raw[n]) {
			n--
		}
		raw = raw[:n]
	}
	return []attribute.KeyValue{
		attribute.String("field", field),
		attribute.String("kind", kind),
		attribute.String("value", raw),
	}
}

const maxEventValueLen = 64

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartResolveSpan starts a span covering one resolution.
	StartResolveSpan(ctx context.Context, argsID string, fields int) (context.Context, trace.Span)

	// StartDescribeSpan starts a span covering one describe call.
	StartDescribeSpan(ctx context.Context, argsID string, rows int) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

func (m *otelSpanManager) StartResolveSpan(ctx context.Context, argsID string, fields int) (context.Context, trace.Span) {
	return tracer.Start(ctx, SpanResolve,
		trace.WithAttributes(
			attribute.String("args.id", argsID),
			attribute.Int("schema.fields", fields),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

func (m *otelSpanManager) StartDescribeSpan(ctx context.Context, argsID string, rows int) (context.Context, trace.Span) {
	return tracer.Start(ctx, SpanDescribe,
		trace.WithAttributes(
			attribute.String("args.id", argsID),
			attribute.Int("describe.rows", rows),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	EndSpanWithError(span, err)
}

func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	AddSpanEvent(ctx, name, attrs...)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span in context.
func AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
