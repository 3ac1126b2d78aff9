// Package table renders column-aligned text tables as styled lines and
// delivers them to a Sink.
//
// Styles are presentation hints. A Sink that cannot render them (a logger, a
// plain file) uses Line.String and ignores them.
package table

import (
	"fmt"
	"strings"
)

// Style is an advisory presentation hint attached to a cell.
type Style uint8

const (
	// StyleNone renders the text as-is.
	StyleNone Style = iota
	// StyleBold emphasizes the text.
	StyleBold
	// StyleMuted de-emphasizes the text.
	StyleMuted
	// StyleHighlight draws attention to a value, e.g. one that differs from its default.
	StyleHighlight
	// StyleWarn marks a problem.
	StyleWarn
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case StyleNone:
		return "none"
	case StyleBold:
		return "bold"
	case StyleMuted:
		return "muted"
	case StyleHighlight:
		return "highlight"
	case StyleWarn:
		return "warn"
	default:
		return fmt.Sprintf("style(%d)", uint8(s))
	}
}

// Terminal colours, offset by 30 for foreground and 40 for background.
const (
	colourBlack uint = iota
	colourRed
	colourGreen
	colourYellow
	colourBlue
	colourMagenta
	colourCyan
	colourWhite
)

// ansiEscape accumulates SGR parameters for a single escape sequence.
type ansiEscape struct {
	params []string
}

func (e ansiEscape) with(code uint) ansiEscape {
	params := make([]string, len(e.params), len(e.params)+1)
	copy(params, e.params)
	return ansiEscape{params: append(params, fmt.Sprintf("%d", code))}
}

func (e ansiEscape) bold() ansiEscape          { return e.with(1) }
func (e ansiEscape) faint() ansiEscape         { return e.with(2) }
func (e ansiEscape) fg(colour uint) ansiEscape { return e.with(30 + colour) }

// build returns the escape sequence, or "" when no parameters were set.
func (e ansiEscape) build() string {
	if len(e.params) == 0 {
		return ""
	}
	return "\033[" + strings.Join(e.params, ";") + "m"
}

// ansiReset cancels every active attribute.
const ansiReset = "\033[0m"

// Escape returns the ANSI sequence that starts this style, or "" for StyleNone.
func (s Style) Escape() string {
	var e ansiEscape
	switch s {
	case StyleBold:
		e = e.bold()
	case StyleMuted:
		e = e.faint()
	case StyleHighlight:
		e = e.bold().fg(colourYellow)
	case StyleWarn:
		e = e.fg(colourRed)
	}
	return e.build()
}
