package table

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Sink accepts rendered lines. Implementations decide whether to honor the
// style of each segment; WriteLine never reports failure.
type Sink interface {
	WriteLine(line Line)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(line Line)

// WriteLine calls f(line).
func (f SinkFunc) WriteLine(line Line) {
	f(line)
}

// WriterSink writes lines to an io.Writer, optionally with ANSI escapes.
// It is safe for concurrent use.
type WriterSink struct {
	mu   sync.Mutex
	w    io.Writer
	ansi bool
}

// Compile-time interface check.
var _ Sink = (*WriterSink)(nil)

// NewWriterSink creates a sink writing to w. When ansi is true, styled
// segments are wrapped in ANSI escape sequences.
func NewWriterSink(w io.Writer, ansi bool) *WriterSink {
	return &WriterSink{w: w, ansi: ansi}
}

// Stdout returns a sink writing to standard output, with ANSI escapes only
// when standard output is a terminal.
func Stdout() *WriterSink {
	return NewWriterSink(os.Stdout, IsTerminal(os.Stdout))
}

// IsTerminal reports whether f refers to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// WriteLine writes line followed by a newline. Write errors are dropped.
func (s *WriterSink) WriteLine(line Line) {
	var sb strings.Builder
	for _, seg := range line {
		escape := ""
		if s.ansi {
			escape = seg.Style.Escape()
		}
		if escape == "" {
			sb.WriteString(seg.Text)
			continue
		}
		// Padding stays outside the escape so highlighted cells don't bleed.
		text := strings.TrimRight(seg.Text, " ")
		sb.WriteString(escape)
		sb.WriteString(text)
		sb.WriteString(ansiReset)
		sb.WriteString(seg.Text[len(text):])
	}
	sb.WriteByte('\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.w, sb.String())
}

// LoggerSink forwards lines to a slog.Logger as messages at a fixed level.
type LoggerSink struct {
	logger *slog.Logger
	level  slog.Level
}

// Compile-time interface check.
var _ Sink = (*LoggerSink)(nil)

// NewLoggerSink creates a sink that logs each line at info level.
// A nil logger uses slog.Default().
func NewLoggerSink(logger *slog.Logger) *LoggerSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggerSink{logger: logger, level: slog.LevelInfo}
}

// WithLevel returns a copy of the sink logging at level.
func (s *LoggerSink) WithLevel(level slog.Level) *LoggerSink {
	return &LoggerSink{logger: s.logger, level: level}
}

// WriteLine logs the plain text of line.
func (s *LoggerSink) WriteLine(line Line) {
	s.logger.Log(context.Background(), s.level, line.String())
}

// Discard is a Sink that drops every line.
var Discard Sink = SinkFunc(func(Line) {})
