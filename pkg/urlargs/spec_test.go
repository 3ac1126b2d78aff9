package urlargs_test

import (
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/urlargs/pkg/urlargs"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind urlargs.Kind
		want string
	}{
		{urlargs.KindNull, "null"},
		{urlargs.KindAbsent, "undefined"},
		{urlargs.KindString, "string"},
		{urlargs.KindNumber, "number"},
		{urlargs.KindBool, "boolean"},
		{urlargs.KindStrings, "array"},
		{urlargs.KindTransform, "function"},
		{urlargs.Kind(99), "kind(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestConstructorsDefaults(t *testing.T) {
	assert.Nil(t, urlargs.Null().Default())
	assert.Nil(t, urlargs.Absent().Default())
	assert.Equal(t, "s", urlargs.String("s").Default())
	assert.Equal(t, 1.5, urlargs.Number(1.5).Default())
	assert.Equal(t, 3.0, urlargs.Int(3).Default())
	assert.Equal(t, true, urlargs.Bool(true).Default())
	assert.Equal(t, []string{}, urlargs.Strings().Default())
	assert.Equal(t, []string{"a"}, urlargs.Strings("a").Default())
	assert.Equal(t, "none", urlargs.Transform(func(raw mo.Option[string]) string {
		if raw.IsPresent() {
			return "some"
		}
		return "none"
	}).Default())
}

func TestStringsDefaultIsCopied(t *testing.T) {
	src := []string{"a", "b"}
	spec := urlargs.Strings(src...)
	src[0] = "mutated"

	got := spec.Default().([]string)
	assert.Equal(t, []string{"a", "b"}, got)

	got[1] = "mutated"
	assert.Equal(t, []string{"a", "b"}, spec.Default())
}

func TestInfer(t *testing.T) {
	tests := []struct {
		name string
		in   any
		kind urlargs.Kind
		def  any
	}{
		{"nil", nil, urlargs.KindNull, nil},
		{"string", "x", urlargs.KindString, "x"},
		{"bool", false, urlargs.KindBool, false},
		{"int", 10, urlargs.KindNumber, 10.0},
		{"int64", int64(-4), urlargs.KindNumber, -4.0},
		{"uint8", uint8(7), urlargs.KindNumber, 7.0},
		{"float32", float32(0.5), urlargs.KindNumber, 0.5},
		{"float64", 2.25, urlargs.KindNumber, 2.25},
		{"string slice", []string{"a"}, urlargs.KindStrings, []string{"a"}},
		{"empty any slice", []any{}, urlargs.KindStrings, []string{}},
		{"any slice of strings", []any{"a", "b"}, urlargs.KindStrings, []string{"a", "b"}},
		{"spec passes through", urlargs.Absent(), urlargs.KindAbsent, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := urlargs.Infer(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, spec.Kind())
			assert.Equal(t, tt.def, spec.Default())
		})
	}
}

func TestInfer_Functions(t *testing.T) {
	spec, err := urlargs.Infer(func(raw mo.Option[string]) any { return raw.IsPresent() })
	require.NoError(t, err)
	assert.Equal(t, urlargs.KindTransform, spec.Kind())
	assert.Equal(t, false, spec.Default())

	spec, err = urlargs.Infer(func(s string) any { return "got:" + s })
	require.NoError(t, err)
	assert.Equal(t, urlargs.KindTransform, spec.Kind())
	assert.Equal(t, "got:", spec.Default())

	args := mustNew(t, urlargs.NewSchema().Add("f", spec), "?f=x")
	assert.Equal(t, "got:x", args.Values().String("f", ""))
}

func TestInfer_Unsupported(t *testing.T) {
	for name, in := range map[string]any{
		"map":         map[string]any{},
		"struct":      struct{ A int }{},
		"mixed slice": []any{"a", 2},
		"int slice":   []int{1},
		"channel":     make(chan int),
		"other func":  func() {},
		"pointer":     new(int),
	} {
		t.Run(name, func(t *testing.T) {
			spec, err := urlargs.Infer(in)
			assert.Nil(t, spec)
			assert.ErrorIs(t, err, urlargs.ErrUnsupportedType)
		})
	}
}
