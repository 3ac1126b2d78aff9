package urlargs

import (
	"reflect"

	"github.com/randalmurphal/urlargs/pkg/urlargs/table"
)

// Describe columns.
const (
	colName = iota
	colKind
	colValue
	colDescription
)

// noQuerySummary is printed instead of the query when none was supplied.
const noQuerySummary = "urlargs: no query parameters, using defaults"

// Describe writes a table of the resolved values to the configured sink: a
// summary line with the query used, then one row per field with its name,
// kind, resolved value and description. A description gains a
// "(default: ...)" suffix when the value differs from the default.
//
// Describe never fails. descriptions may be nil or name fields that do not
// exist.
func (a *Args) Describe(descriptions map[string]string, opts ...DescribeOption) {
	dc := describeConfig{
		maxWidth: DefaultMaxValueWidth,
		sink:     a.cfg.sink,
	}
	for _, opt := range opts {
		opt(&dc)
	}
	if dc.sink == nil {
		dc.sink = table.Stdout()
	}

	names := dc.fields
	if names == nil {
		names = a.values.Keys()
	}

	_, span := a.cfg.spans.StartDescribeSpan(a.cfg.ctx, a.id, len(names))
	defer a.cfg.spans.EndSpanWithError(span, nil)

	tbl := table.New()
	for _, name := range names {
		tbl.AddRow(a.describeRow(name, descriptions[name], dc.maxWidth)...)
	}

	dc.sink.WriteLine(table.Plain(a.summary()))
	tbl.WriteTo(dc.sink)
}

func (a *Args) summary() string {
	if a.query.Len() == 0 {
		return noQuerySummary
	}
	return "urlargs: ?" + a.query.Encode()
}

func (a *Args) describeRow(name, description string, maxWidth int) []table.Cell {
	cells := make([]table.Cell, 4)
	cells[colName] = table.Cell{Text: name, Style: table.StyleBold}

	spec, ok := a.lookup(name)
	if !ok {
		cells[colKind] = table.Cell{Text: KindAbsent.String(), Style: table.StyleMuted}
		cells[colValue] = table.Cell{Text: KindAbsent.String()}
		cells[colDescription] = table.Cell{Text: description, Style: table.StyleMuted}
		return cells
	}

	value := a.values.Any(name, nil)
	cells[colKind] = table.Cell{Text: spec.Kind().String(), Style: table.StyleMuted}

	valueCell := table.Cell{Text: table.Truncate(displayLiteral(spec, value), maxWidth, "...")}
	def, defOK := safeDefault(spec)
	if defOK && !reflect.DeepEqual(value, def) {
		valueCell.Style = table.StyleHighlight
		suffix := "(default: " + table.Truncate(displayLiteral(spec, def), maxWidth, "...") + ")"
		if description == "" {
			description = suffix
		} else {
			description += " " + suffix
		}
	}
	cells[colValue] = valueCell
	cells[colDescription] = table.Cell{Text: description, Style: table.StyleMuted}
	return cells
}

func (a *Args) lookup(name string) (DefaultSpec, bool) {
	for _, f := range a.fields {
		if f.Name == name {
			return f.Spec, true
		}
	}
	return nil, false
}

// displayLiteral renders nil as undefined for Absent fields and as null otherwise.
func displayLiteral(spec DefaultSpec, v any) string {
	if v == nil && spec.Kind() == KindAbsent {
		return KindAbsent.String()
	}
	return Literal(v)
}

// safeDefault computes spec's default for display. A transform that panics
// when called without a value yields no default rather than failing Describe.
func safeDefault(spec DefaultSpec) (def any, ok bool) {
	defer func() {
		if recover() != nil {
			def, ok = nil, false
		}
	}()
	return spec.Default(), true
}
