package observability

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTracingTest installs an in-memory tracer provider for the test.
func setupTracingTest(t *testing.T) (*tracetest.InMemoryExporter, func()) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	originalProvider := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	tracer = otel.Tracer("urlargs")

	cleanup := func() {
		otel.SetTracerProvider(originalProvider)
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down tracer provider: %v", err)
		}
	}
	return exporter, cleanup
}

func attrValue(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, a := range attrs {
		if string(a.Key) == key {
			return a.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestStartResolveSpan(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	sm := NewSpanManager()
	_, span := sm.StartResolveSpan(context.Background(), "args-1", 4)
	sm.EndSpanWithError(span, nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "urlargs.resolve", spans[0].Name)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)

	id, ok := attrValue(spans[0].Attributes, "args.id")
	require.True(t, ok)
	assert.Equal(t, "args-1", id.AsString())

	fields, ok := attrValue(spans[0].Attributes, "schema.fields")
	require.True(t, ok)
	assert.Equal(t, int64(4), fields.AsInt64())
}

func TestStartDescribeSpan(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	sm := NewSpanManager()
	_, span := sm.StartDescribeSpan(context.Background(), "args-2", 3)
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "urlargs.describe", spans[0].Name)
}

func TestEndSpanWithError(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	_, span := NewSpanManager().StartResolveSpan(context.Background(), "args-3", 1)
	EndSpanWithError(span, errors.New("unsupported type"))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Equal(t, "unsupported type", spans[0].Status.Description)

	assert.NotPanics(t, func() { EndSpanWithError(nil, nil) })
}

func TestAddSpanEvent(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	sm := NewSpanManager()
	ctx, span := sm.StartResolveSpan(context.Background(), "args-4", 1)
	sm.AddSpanEvent(ctx, EventInvalidValue, InvalidValueAttrs("count", "number", "abc")...)
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	require.Len(t, spans[0].Events, 1)
	assert.Equal(t, "urlargs.invalid_value", spans[0].Events[0].Name)
	assert.Contains(t, spans[0].Events[0].Attributes, attribute.String("value", "abc"))

	assert.NotPanics(t, func() {
		AddSpanEvent(context.Background(), "no span")
	})
}

func TestInvalidValueAttrs_CutsLongValues(t *testing.T) {
	long := strings.Repeat("x", 200)

	attrs := InvalidValueAttrs("name", "string", long)

	require.Len(t, attrs, 3)
	assert.Equal(t, attribute.String("field", "name"), attrs[0])
	assert.Equal(t, attribute.String("kind", "string"), attrs[1])
	assert.Len(t, attrs[2].Value.AsString(), 64)
}
