package urlargs

import (
	"fmt"
	"reflect"

	"github.com/samber/mo"
)

// Kind identifies how a field parses its query value.
type Kind int

const (
	// KindNull is a field whose default is nil. A present value is kept as a string.
	KindNull Kind = iota
	// KindAbsent is a field with no default at all. A present value is kept as a string.
	KindAbsent
	// KindString is a field with a string default.
	KindString
	// KindNumber is a field with a float64 default.
	KindNumber
	// KindBool is a field with a boolean default.
	KindBool
	// KindStrings is a field collecting every value of a repeated key.
	KindStrings
	// KindTransform is a field computed by a caller-supplied function.
	KindTransform
)

// String returns the label used in describe tables and warnings.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindAbsent:
		return "undefined"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindStrings:
		return "array"
	case KindTransform:
		return "function"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// DefaultSpec is a field's default value. It is both the value used when the
// query does not supply one and the source of the field's Kind.
//
// The set of implementations is closed; build one with Null, Absent, String,
// Number, Int, Bool, Strings, Transform, or Infer.
type DefaultSpec interface {
	// Kind returns the field kind implied by the default.
	Kind() Kind

	// Default returns the value the field resolves to when its key is
	// missing. For a transform this calls the function with mo.None.
	Default() any

	isDefaultSpec()
}

type nullSpec struct{}

func (nullSpec) Kind() Kind     { return KindNull }
func (nullSpec) Default() any   { return nil }
func (nullSpec) isDefaultSpec() {}

type absentSpec struct{}

func (absentSpec) Kind() Kind     { return KindAbsent }
func (absentSpec) Default() any   { return nil }
func (absentSpec) isDefaultSpec() {}

type stringSpec struct{ v string }

func (stringSpec) Kind() Kind     { return KindString }
func (s stringSpec) Default() any { return s.v }
func (stringSpec) isDefaultSpec() {}

type numberSpec struct{ v float64 }

func (numberSpec) Kind() Kind     { return KindNumber }
func (s numberSpec) Default() any { return s.v }
func (numberSpec) isDefaultSpec() {}

type boolSpec struct{ v bool }

func (boolSpec) Kind() Kind     { return KindBool }
func (s boolSpec) Default() any { return s.v }
func (boolSpec) isDefaultSpec() {}

type stringsSpec struct{ v []string }

func (stringsSpec) Kind() Kind { return KindStrings }

// Default returns a copy so callers can't alter the schema through Values.
func (s stringsSpec) Default() any {
	return append([]string{}, s.v...)
}

func (stringsSpec) isDefaultSpec() {}

// transformer is implemented by every Transform regardless of its result type.
type transformer interface {
	apply(raw mo.Option[string]) any
	isNil() bool
}

type transformSpec[T any] struct {
	fn func(mo.Option[string]) T
}

func (transformSpec[T]) Kind() Kind { return KindTransform }

func (s transformSpec[T]) Default() any {
	return s.apply(mo.None[string]())
}

func (s transformSpec[T]) apply(raw mo.Option[string]) any {
	return s.fn(raw)
}

func (s transformSpec[T]) isNil() bool { return s.fn == nil }

func (transformSpec[T]) isDefaultSpec() {}

// Null returns a default of nil.
func Null() DefaultSpec { return nullSpec{} }

// Absent returns a default with no value, described as undefined.
func Absent() DefaultSpec { return absentSpec{} }

// String returns a string default.
func String(v string) DefaultSpec { return stringSpec{v: v} }

// Number returns a numeric default.
func Number(v float64) DefaultSpec { return numberSpec{v: v} }

// Int returns a numeric default from an int. The field still resolves to float64.
func Int(v int) DefaultSpec { return numberSpec{v: float64(v)} }

// Bool returns a boolean default.
func Bool(v bool) DefaultSpec { return boolSpec{v: v} }

// Strings returns a default for a repeated key. The defaults are used only
// when the key is missing; any occurrence replaces all of them.
func Strings(v ...string) DefaultSpec {
	return stringsSpec{v: append([]string{}, v...)}
}

// Transform returns a default computed by fn. fn receives mo.None when the key
// is missing and mo.Some(raw) otherwise, and its result is used verbatim.
func Transform[T any](fn func(raw mo.Option[string]) T) DefaultSpec {
	return transformSpec[T]{fn: fn}
}

// Infer maps an untyped value to a DefaultSpec.
//
// Accepts:
//   - nil: Null
//   - DefaultSpec: used directly
//   - string, bool: String, Bool
//   - any integer or float kind: Number
//   - []string, or []any holding only strings: Strings
//   - func(mo.Option[string]) any: Transform
//   - func(string) any: Transform, called with "" when the key is missing
//
// Anything else returns an error wrapping ErrUnsupportedType.
func Infer(v any) (DefaultSpec, error) {
	switch val := v.(type) {
	case nil:
		return Null(), nil
	case DefaultSpec:
		return val, nil
	case string:
		return String(val), nil
	case bool:
		return Bool(val), nil
	case []string:
		return Strings(val...), nil
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, unsupported(v)
			}
			out = append(out, s)
		}
		return Strings(out...), nil
	case func(mo.Option[string]) any:
		return Transform(val), nil
	case func(string) any:
		return Transform(func(raw mo.Option[string]) any {
			s, _ := raw.Get()
			return val(s)
		}), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), nil
	}
	return nil, unsupported(v)
}

func unsupported(v any) error {
	return fmt.Errorf("%w: %T", ErrUnsupportedType, v)
}
