// Package observability provides logging, metrics, and tracing helpers for
// urlargs resolution.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds the instance id to a logger so both lines of a fallback
// warning can be correlated.
//
// Example:
//
//	enriched := EnrichLogger(logger, "args-1a2b3c4d")
//	enriched.Warn("invalid query value") // includes args_id
func EnrichLogger(logger *slog.Logger, argsID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("args_id", argsID))
}

// LogResolveStart logs the start of a resolution.
func LogResolveStart(logger *slog.Logger, fields int, rawQuery string) {
	if logger == nil {
		return
	}
	logger.Debug("urlargs resolve starting",
		slog.Int("fields", fields),
		slog.String("query", rawQuery),
	)
}

// LogResolveComplete logs a finished resolution.
func LogResolveComplete(logger *slog.Logger, durationMs float64, fields, fromQuery, warnings int) {
	if logger == nil {
		return
	}
	logger.Debug("urlargs resolve completed",
		slog.Float64("duration_ms", durationMs),
		slog.Int("fields", fields),
		slog.Int("from_query", fromQuery),
		slog.Int("warnings", warnings),
	)
}

// LogResolveError logs a schema that could not be resolved.
func LogResolveError(logger *slog.Logger, err error) {
	if logger == nil {
		return
	}
	logger.Error("urlargs resolve failed",
		slog.String("error", err.Error()),
	)
}

// LogInvalidValue logs a query value that failed its field's validity check.
func LogInvalidValue(logger *slog.Logger, field, kind, raw string) {
	if logger == nil {
		return
	}
	logger.Warn("urlargs: invalid query value",
		slog.String("field", field),
		slog.String("type", kind),
		slog.String("value", raw),
	)
}

// LogFallback logs the default used in place of an invalid value.
func LogFallback(logger *slog.Logger, field, defaultLiteral string) {
	if logger == nil {
		return
	}
	logger.Warn("urlargs: using default value",
		slog.String("field", field),
		slog.String("default", defaultLiteral),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	elapsed := done()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}

// Milliseconds converts d to fractional milliseconds for log fields.
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
