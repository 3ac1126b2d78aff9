package table

import "strings"

// DefaultSeparator joins adjacent columns.
const DefaultSeparator = " | "

// Cell is a single table entry.
type Cell struct {
	Text  string
	Style Style
}

// Segment is a run of text sharing one style.
type Segment struct {
	Text  string
	Style Style
}

// Line is one rendered output line.
type Line []Segment

// Plain returns a line holding a single unstyled segment.
func Plain(text string) Line {
	return Line{{Text: text}}
}

// String returns the line's text without styling.
func (l Line) String() string {
	var sb strings.Builder
	for _, seg := range l {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

// Table collects rows of cells and tracks the display width of every column.
// Rows may have different lengths; a short row renders its missing cells as
// empty, padded text.
type Table struct {
	widths []int
	rows   [][]Cell
	sep    string
}

// New creates an empty table.
func New() *Table {
	return &Table{sep: DefaultSeparator}
}

// SetSeparator changes the text placed between columns.
func (t *Table) SetSeparator(sep string) {
	t.sep = sep
}

// AddRow appends a row and widens columns as needed.
func (t *Table) AddRow(cells ...Cell) {
	row := make([]Cell, len(cells))
	copy(row, cells)
	t.rows = append(t.rows, row)
	for c, cell := range row {
		t.grow(c, cell.Text)
	}
}

// AddTextRow appends a row of unstyled cells.
func (t *Table) AddTextRow(texts ...string) {
	cells := make([]Cell, len(texts))
	for i, text := range texts {
		cells[i] = Cell{Text: text}
	}
	t.AddRow(cells...)
}

// Set replaces the text of a cell, extending the row when col is past its end.
func (t *Table) Set(col, row int, text string) {
	t.cell(col, row).Text = text
	t.grow(col, text)
}

// SetStyle sets the style of a cell, extending the row when col is past its end.
func (t *Table) SetStyle(col, row int, style Style) {
	t.cell(col, row).Style = style
	t.grow(col, "")
}

// Get returns the text of a cell, or "" when the cell does not exist.
func (t *Table) Get(col, row int) string {
	if row < 0 || row >= len(t.rows) || col < 0 || col >= len(t.rows[row]) {
		return ""
	}
	return t.rows[row][col].Text
}

// Height returns the number of rows.
func (t *Table) Height() int {
	return len(t.rows)
}

// Widths returns the display width of every column.
func (t *Table) Widths() []int {
	out := make([]int, len(t.widths))
	copy(out, t.widths)
	return out
}

// Lines renders every row. Each cell is padded with trailing spaces to its
// column width before the columns are joined with the separator.
func (t *Table) Lines() []Line {
	lines := make([]Line, 0, len(t.rows))
	for _, row := range t.rows {
		line := make(Line, 0, 2*len(t.widths))
		for c, w := range t.widths {
			if c > 0 {
				line = append(line, Segment{Text: t.sep})
			}
			var cell Cell
			if c < len(row) {
				cell = row[c]
			}
			line = append(line, Segment{Text: Pad(cell.Text, w), Style: cell.Style})
		}
		lines = append(lines, line)
	}
	return lines
}

// WriteTo renders the table into sink, one line per row.
func (t *Table) WriteTo(sink Sink) {
	for _, line := range t.Lines() {
		sink.WriteLine(line)
	}
}

func (t *Table) cell(col, row int) *Cell {
	if col < 0 || row < 0 {
		panic("table: negative cell coordinates")
	}
	for len(t.rows) <= row {
		t.rows = append(t.rows, nil)
	}
	for len(t.rows[row]) <= col {
		t.rows[row] = append(t.rows[row], Cell{})
	}
	return &t.rows[row][col]
}

func (t *Table) grow(col int, text string) {
	for len(t.widths) <= col {
		t.widths = append(t.widths, 0)
	}
	t.widths[col] = max(t.widths[col], DisplayWidth(text))
}
