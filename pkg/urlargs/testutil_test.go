package urlargs_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/urlargs/pkg/urlargs"
	"github.com/randalmurphal/urlargs/pkg/urlargs/table"
)

// logCapture records slog output as decoded JSON records.
type logCapture struct {
	buf bytes.Buffer
}

func (c *logCapture) logger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(&c.buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func (c *logCapture) records(t *testing.T) []map[string]any {
	t.Helper()
	var out []map[string]any
	dec := json.NewDecoder(&c.buf)
	for dec.More() {
		var m map[string]any
		require.NoError(t, dec.Decode(&m))
		out = append(out, m)
	}
	return out
}

func (c *logCapture) warnings(t *testing.T) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, r := range c.records(t) {
		if r["level"] == "WARN" {
			out = append(out, r)
		}
	}
	return out
}

// lineCapture is a table.Sink that keeps every line.
type lineCapture struct {
	lines []table.Line
}

func (c *lineCapture) WriteLine(line table.Line) {
	c.lines = append(c.lines, line)
}

func (c *lineCapture) strings() []string {
	out := make([]string, len(c.lines))
	for i, l := range c.lines {
		out[i] = l.String()
	}
	return out
}

// mustNew resolves raw against schema with a discarded logger.
func mustNew(t *testing.T, schema *urlargs.Schema, raw string, opts ...urlargs.Option) *urlargs.Args {
	t.Helper()
	opts = append([]urlargs.Option{urlargs.WithLogger(mustDiscardLogger())}, opts...)
	args, err := urlargs.New(schema, raw, opts...)
	require.NoError(t, err)
	return args
}

// mustDiscardLogger returns a logger that drops every record.
func mustDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
