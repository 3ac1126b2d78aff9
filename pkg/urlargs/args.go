package urlargs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/big"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/mo"

	"github.com/randalmurphal/urlargs/pkg/urlargs/observability"
	"github.com/randalmurphal/urlargs/pkg/urlargs/query"
)

// Warning records a query value that failed its field's validity check.
type Warning struct {
	// Field is the schema field name.
	Field string
	// Kind is the field kind whose check failed.
	Kind Kind
	// Raw is the rejected query value.
	Raw string
	// Default is the value used instead.
	Default any
}

// String describes the warning on one line.
func (w Warning) String() string {
	return fmt.Sprintf("invalid %s value for %q: %q, using default %s", w.Kind, w.Field, w.Raw, Literal(w.Default))
}

// Args is a resolved query. It is immutable after New returns.
type Args struct {
	id       string
	fields   []Field
	rawQuery string
	query    *query.Values
	values   Values
	warnings []Warning
	cfg      config
	logger   *slog.Logger
}

// New resolves rawQuery against schema. rawQuery may start with '?'.
//
// New fails only when the schema itself is invalid: nil, with an empty or
// duplicate name, a nil transform, or a default of unsupported type. Invalid
// query values never fail; they are logged and replaced by their defaults.
func New(schema *Schema, rawQuery string, opts ...Option) (*Args, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	id := fmt.Sprintf("args-%s", uuid.New().String()[:8])
	logger := observability.EnrichLogger(cfg.logger, id)

	fieldCount := 0
	if schema != nil {
		fieldCount = schema.Len()
	}
	ctx, span := cfg.spans.StartResolveSpan(cfg.ctx, id, fieldCount)

	if err := validate(schema); err != nil {
		observability.LogResolveError(logger, err)
		cfg.spans.EndSpanWithError(span, err)
		return nil, err
	}

	a := &Args{
		id:       id,
		fields:   schema.Fields(),
		rawQuery: rawQuery,
		query:    query.Parse(rawQuery),
		cfg:      cfg,
		logger:   logger,
	}

	done := observability.TimedOperation()
	observability.LogResolveStart(logger, len(a.fields), a.query.Encode())

	a.resolve(ctx)

	elapsed := done()
	cfg.metrics.RecordResolve(ctx, len(a.fields), len(a.warnings), elapsed)
	observability.LogResolveComplete(logger, observability.Milliseconds(elapsed),
		len(a.fields), a.fromQuery(), len(a.warnings))
	cfg.spans.EndSpanWithError(span, nil)
	return a, nil
}

// MustNew is like New but panics on error. It is meant for package-level
// variables built from a fixed schema.
func MustNew(schema *Schema, rawQuery string, opts ...Option) *Args {
	a, err := New(schema, rawQuery, opts...)
	if err != nil {
		panic("urlargs: " + err.Error())
	}
	return a
}

// FromURL resolves the query of u. A nil u resolves to the defaults.
func FromURL(schema *Schema, u *url.URL, opts ...Option) (*Args, error) {
	if u == nil {
		return New(schema, "", opts...)
	}
	return New(schema, u.RawQuery, opts...)
}

// FromRequest resolves the query of r's URL, snapshotted at call time.
func FromRequest(schema *Schema, r *http.Request, opts ...Option) (*Args, error) {
	if r == nil {
		return New(schema, "", opts...)
	}
	return FromURL(schema, r.URL, opts...)
}

func validate(schema *Schema) error {
	if schema == nil {
		return ErrNilSchema
	}
	return schema.Validate()
}

// ID returns the instance id used in logs and spans.
func (a *Args) ID() string {
	return a.id
}

// Values returns the resolved values.
func (a *Args) Values() Values {
	return a.values
}

// Warnings returns a copy of the fallbacks taken during resolution, in
// field order.
func (a *Args) Warnings() []Warning {
	return append([]Warning{}, a.warnings...)
}

// RawQuery returns the query string as given to New.
func (a *Args) RawQuery() string {
	return a.rawQuery
}

// Query returns the canonical form of the parsed query, without '?'.
func (a *Args) Query() string {
	return a.query.Encode()
}

func (a *Args) fromQuery() int {
	n := 0
	for _, f := range a.fields {
		if a.values.Source(f.Name) == SourceQuery {
			n++
		}
	}
	return n
}

// resolve fills a.values, one field at a time in schema order. A field's
// outcome never depends on another field.
func (a *Args) resolve(ctx context.Context) {
	a.values = newValues(len(a.fields))
	for _, f := range a.fields {
		value, source := a.resolveField(ctx, f)
		a.values.set(f.Name, value, source)
		a.cfg.metrics.RecordField(ctx, f.Spec.Kind().String(), string(source))
	}
}

func (a *Args) resolveField(ctx context.Context, f Field) (any, Source) {
	if !a.query.Has(f.Name) {
		return f.Spec.Default(), SourceDefault
	}
	raw := a.query.Get(f.Name)

	switch spec := f.Spec.(type) {
	case boolSpec:
		if b, ok := parseBool(raw); ok {
			return b, SourceQuery
		}
		return a.fallback(ctx, f, raw), SourceDefault
	case numberSpec:
		if n, ok := parseNumber(raw); ok {
			return n, SourceQuery
		}
		return a.fallback(ctx, f, raw), SourceDefault
	case stringsSpec:
		return a.query.GetAll(f.Name), SourceQuery
	case transformer:
		return spec.apply(mo.Some(raw)), SourceQuery
	default:
		return raw, SourceQuery
	}
}

// fallback reports an invalid value and returns the field's default. Only
// bool and number fields reach here, so the default is never a transform.
func (a *Args) fallback(ctx context.Context, f Field, raw string) any {
	def := f.Spec.Default()
	kind := f.Spec.Kind()

	observability.LogInvalidValue(a.logger, f.Name, kind.String(), raw)
	observability.LogFallback(a.logger, f.Name, Literal(def))
	a.cfg.metrics.RecordInvalid(ctx, f.Name, kind.String())
	a.cfg.spans.AddSpanEvent(ctx, observability.EventInvalidValue,
		observability.InvalidValueAttrs(f.Name, kind.String(), raw)...)

	a.warnings = append(a.warnings, Warning{Field: f.Name, Kind: kind, Raw: raw, Default: def})
	return def
}

// parseBool accepts "true", "1" and "" as true and "false", "0" as false,
// ignoring case.
func parseBool(raw string) (bool, bool) {
	switch strings.ToLower(raw) {
	case "true", "1", "":
		return true, true
	case "false", "0":
		return false, true
	default:
		return false, false
	}
}

// decimalPattern matches a signed decimal literal with optional fraction and
// exponent: "12", "-1.5", ".5", "5.", "1e3".
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// parseNumber converts raw the way a numeric-string conversion does: outer
// whitespace is ignored, an empty string is invalid, and 0x/0o/0b integers and
// signed Infinity are accepted. Out-of-range decimals saturate to ±Inf or 0.
func parseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	switch s {
	case "":
		return 0, false
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			if strings.ContainsRune(s, '_') {
				return 0, false
			}
			n, err := strconv.ParseUint(s[2:], base, 64)
			if errors.Is(err, strconv.ErrRange) {
				return parseBigUint(s[2:], base)
			}
			if err != nil {
				return 0, false
			}
			return float64(n), true
		}
	}

	if !decimalPattern.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// parseBigUint converts digits wider than 64 bits, rounding to the nearest
// float64. ParseUint has already checked the digits.
func parseBigUint(digits string, base int) (float64, bool) {
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return 0, false
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f, true
}
