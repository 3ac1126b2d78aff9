package urlargs

import (
	"context"
	"log/slog"

	"github.com/randalmurphal/urlargs/pkg/urlargs/observability"
	"github.com/randalmurphal/urlargs/pkg/urlargs/table"
)

// DefaultMaxValueWidth is the widest a value literal is rendered by Describe
// before it is truncated.
const DefaultMaxValueWidth = 40

// config holds the collaborators of an Args.
type config struct {
	ctx     context.Context
	logger  *slog.Logger
	sink    table.Sink
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// defaultConfig returns the default configuration.
func defaultConfig() config {
	return config{
		ctx:     context.Background(),
		logger:  slog.Default(),
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
}

// Option configures New.
type Option func(*config)

// WithLogger sets the logger that receives fallback warnings. A nil logger
// keeps the default.
//
// Default: slog.Default()
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSink sets where Describe writes its table.
//
// Default: table.Stdout(), with ANSI styling only on a terminal
func WithSink(sink table.Sink) Option {
	return func(c *config) {
		c.sink = sink
	}
}

// WithMetrics sets the metrics recorder.
//
// Default: observability.NoopMetrics{}
//
// Example:
//
//	args, err := urlargs.New(schema, raw,
//	    urlargs.WithMetrics(observability.NewMetricsRecorder()),
//	)
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(c *config) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithSpanManager sets the span manager used for resolve and describe spans.
//
// Default: observability.NoopSpanManager{}
func WithSpanManager(sm observability.SpanManager) Option {
	return func(c *config) {
		if sm != nil {
			c.spans = sm
		}
	}
}

// WithContext sets the parent context for spans and metrics. Resolution
// itself is synchronous and never observes cancellation.
//
// Default: context.Background()
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// describeConfig holds per-call Describe settings.
type describeConfig struct {
	fields   []string
	maxWidth int
	sink     table.Sink
}

// DescribeOption configures a Describe call.
type DescribeOption func(*describeConfig)

// WithFields sets the rows to describe, in order. Names unknown to the schema
// are described as undefined.
//
// Default: every schema field in schema order
func WithFields(names ...string) DescribeOption {
	return func(c *describeConfig) {
		c.fields = append([]string{}, names...)
	}
}

// WithMaxValueWidth sets the widest rendered value literal. Zero or less
// disables truncation.
//
// Default: DefaultMaxValueWidth
func WithMaxValueWidth(n int) DescribeOption {
	return func(c *describeConfig) {
		c.maxWidth = n
	}
}

// WithDescribeSink overrides the sink for a single Describe call.
func WithDescribeSink(sink table.Sink) DescribeOption {
	return func(c *describeConfig) {
		c.sink = sink
	}
}
