package table_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/urlargs/pkg/urlargs/table"
)

func lineStrings(lines []table.Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return out
}

func TestTable_PadsEveryColumn(t *testing.T) {
	tbl := table.New()
	tbl.AddTextRow("count", "number", "20")
	tbl.AddTextRow("enabled", "boolean", "false")

	got := lineStrings(tbl.Lines())

	assert.Equal(t, []string{
		"count   | number  | 20   ",
		"enabled | boolean | false",
	}, got)
	assert.Equal(t, []int{7, 7, 5}, tbl.Widths())
}

func TestTable_RaggedRows(t *testing.T) {
	tbl := table.New()
	tbl.AddTextRow("a")
	tbl.AddTextRow("bb", "ccc")
	tbl.AddRow()

	require.NotPanics(t, func() { tbl.Lines() })
	got := lineStrings(tbl.Lines())

	assert.Equal(t, []string{
		"a  |    ",
		"bb | ccc",
		"   |    ",
	}, got)
}

func TestTable_Empty(t *testing.T) {
	tbl := table.New()
	assert.Empty(t, tbl.Lines())
	assert.Equal(t, 0, tbl.Height())
}

func TestTable_SetAndStyle(t *testing.T) {
	tbl := table.New()
	tbl.Set(1, 0, "value")
	tbl.SetStyle(1, 0, table.StyleHighlight)

	assert.Equal(t, "value", tbl.Get(1, 0))
	assert.Equal(t, "", tbl.Get(0, 0))
	assert.Equal(t, "", tbl.Get(5, 5))

	lines := tbl.Lines()
	require.Len(t, lines, 1)
	require.Len(t, lines[0], 3) // cell, separator, cell
	assert.Equal(t, table.StyleHighlight, lines[0][2].Style)
}

func TestTable_CustomSeparator(t *testing.T) {
	tbl := table.New()
	tbl.SetSeparator("  ")
	tbl.AddTextRow("a", "b")

	assert.Equal(t, "a  b", tbl.Lines()[0].String())
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"ascii", "hello", 5},
		{"empty", "", 0},
		{"wide runes", "日本", 4},
		{"fullwidth", "ＡＢ", 4},
		{"combining mark", "e\u0301", 1},
		{"accented latin", "\u00e9", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.DisplayWidth(tt.in))
		})
	}
}

func TestTable_WideRunesAlign(t *testing.T) {
	tbl := table.New()
	tbl.AddTextRow("日本", "x")
	tbl.AddTextRow("abc", "y")

	got := lineStrings(tbl.Lines())
	assert.Equal(t, "日本 | x", got[0])
	assert.Equal(t, "abc  | y", got[1])
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxWidth int
		want     string
	}{
		{"fits", "short", 10, "short"},
		{"exact", "12345", 5, "12345"},
		{"cut", "1234567890", 8, "12345..."},
		{"disabled", "1234567890", 0, "1234567890"},
		{"smaller than marker", "1234567890", 2, ".."},
		{"wide runes", "日本語テキスト", 7, "日本..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Truncate(tt.in, tt.maxWidth, "...")
			assert.Equal(t, tt.want, got)
			if tt.maxWidth > 0 {
				assert.LessOrEqual(t, table.DisplayWidth(got), tt.maxWidth)
			}
		})
	}
}

func TestWriterSink_Plain(t *testing.T) {
	var buf bytes.Buffer
	sink := table.NewWriterSink(&buf, false)

	sink.WriteLine(table.Line{
		{Text: "name ", Style: table.StyleBold},
		{Text: " | "},
		{Text: "value", Style: table.StyleHighlight},
	})

	assert.Equal(t, "name  | value\n", buf.String())
}

func TestWriterSink_ANSI(t *testing.T) {
	var buf bytes.Buffer
	sink := table.NewWriterSink(&buf, true)

	sink.WriteLine(table.Line{
		{Text: "name  ", Style: table.StyleBold},
		{Text: "|"},
	})

	assert.Equal(t, "\033[1mname\033[0m  |\n", buf.String())
}

func TestStyleEscape(t *testing.T) {
	assert.Equal(t, "", table.StyleNone.Escape())
	assert.Equal(t, "\033[1m", table.StyleBold.Escape())
	assert.Equal(t, "\033[2m", table.StyleMuted.Escape())
	assert.Equal(t, "\033[1;33m", table.StyleHighlight.Escape())
	assert.Equal(t, "\033[31m", table.StyleWarn.Escape())
	assert.Equal(t, "highlight", table.StyleHighlight.String())
}

func TestLoggerSink(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	table.NewLoggerSink(logger).WriteLine(table.Plain("hello table"))
	table.NewLoggerSink(logger).WithLevel(slog.LevelDebug).WriteLine(table.Plain("debug line"))

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, `msg="hello table"`)
	assert.Contains(t, out, "level=DEBUG")
}

func TestSinkFuncAndTableWriteTo(t *testing.T) {
	var got []string
	sink := table.SinkFunc(func(l table.Line) { got = append(got, l.String()) })

	tbl := table.New()
	tbl.AddTextRow("a", "b")
	tbl.AddTextRow("cc", "d")
	tbl.WriteTo(sink)

	assert.Equal(t, []string{"a  | b", "cc | d"}, got)
	assert.False(t, strings.Contains(got[0], "\033"))
}

func TestIsTerminal_Nil(t *testing.T) {
	assert.False(t, table.IsTerminal(nil))
}
