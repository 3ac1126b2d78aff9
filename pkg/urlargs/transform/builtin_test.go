package transform_test

import (
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/urlargs/pkg/urlargs"
	"github.com/randalmurphal/urlargs/pkg/urlargs/transform"
)

func TestJSON(t *testing.T) {
	assert.Nil(t, transform.JSON(mo.None[string]()))
	assert.Nil(t, transform.JSON(mo.Some("{bad")))
	assert.Equal(t, map[string]any{"a": 1.0, "b": 2.0}, transform.JSON(mo.Some(`{"a":1,"b":2}`)))
	assert.Equal(t, []any{"x"}, transform.JSON(mo.Some(`["x"]`)))
}

func TestInt(t *testing.T) {
	tests := []struct {
		name string
		in   mo.Option[string]
		want int
	}{
		{"absent", mo.None[string](), 0},
		{"valid", mo.Some("42"), 42},
		{"spaces", mo.Some(" -7 "), -7},
		{"fraction", mo.Some("1.5"), 0},
		{"garbage", mo.Some("abc"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, transform.Int(tt.in))
		})
	}
}

func TestDuration(t *testing.T) {
	assert.Equal(t, time.Duration(0), transform.Duration(mo.None[string]()))
	assert.Equal(t, 90*time.Minute, transform.Duration(mo.Some("1h30m")))
	assert.Equal(t, time.Duration(0), transform.Duration(mo.Some("soon")))
}

func TestCSV(t *testing.T) {
	assert.Equal(t, []string{}, transform.CSV(mo.None[string]()))
	assert.Equal(t, []string{}, transform.CSV(mo.Some("")))
	assert.Equal(t, []string{"a", "b", "c"}, transform.CSV(mo.Some(" a, b,,c ")))
}

func TestCase(t *testing.T) {
	assert.Equal(t, "", transform.Lower(mo.None[string]()))
	assert.Equal(t, "mixed", transform.Lower(mo.Some("MiXeD")))
	assert.Equal(t, "MIXED", transform.Upper(mo.Some("MiXeD")))
}

func TestBuiltinsResolve(t *testing.T) {
	reg := transform.Default()
	schema := urlargs.NewSchema()
	for _, name := range reg.Names() {
		spec, err := reg.Spec(name)
		require.NoError(t, err)
		schema.Add(name, spec)
	}

	args, err := urlargs.New(schema, `?json={"k":true}&int=12&duration=2s&csv=x,y&upper=abc`)
	require.NoError(t, err)
	v := args.Values()

	assert.Equal(t, map[string]any{"k": true}, v.Any("json", nil))
	assert.Equal(t, 12, v.Any("int", nil))
	assert.Equal(t, 2*time.Second, v.Any("duration", nil))
	assert.Equal(t, []string{"x", "y"}, v.StringSlice("csv", nil))
	assert.Equal(t, "ABC", v.String("upper", ""))
	assert.Equal(t, "", v.String("lower", "missing"))
}
