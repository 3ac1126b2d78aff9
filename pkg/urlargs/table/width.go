package table

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// DisplayWidth returns the number of terminal columns s occupies.
// East Asian wide and fullwidth runes count as two columns, combining marks
// and other zero-width runes as none.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		n += runeWidth(r)
	}
	return n
}

func runeWidth(r rune) int {
	if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.Is(unicode.Cf, r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// Truncate shortens s to at most maxWidth columns, ending it with marker when
// anything was cut. A maxWidth smaller than the marker itself returns the
// marker cut to maxWidth. A non-positive maxWidth disables truncation.
func Truncate(s string, maxWidth int, marker string) string {
	if maxWidth <= 0 || DisplayWidth(s) <= maxWidth {
		return s
	}
	markerWidth := DisplayWidth(marker)
	if maxWidth <= markerWidth {
		return cut(marker, maxWidth)
	}
	return cut(s, maxWidth-markerWidth) + marker
}

// cut returns the longest prefix of s that fits in maxWidth columns.
func cut(s string, maxWidth int) string {
	used := 0
	for i, r := range s {
		w := runeWidth(r)
		if used+w > maxWidth {
			return s[:i]
		}
		used += w
	}
	return s
}

// Pad appends spaces to s until it occupies w columns.
func Pad(s string, w int) string {
	n := w - DisplayWidth(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}
