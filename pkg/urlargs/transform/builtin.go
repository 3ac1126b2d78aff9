package transform

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/randalmurphal/urlargs/pkg/urlargs"
)

func builtins() map[string]Factory {
	return map[string]Factory{
		"json":     func() urlargs.DefaultSpec { return urlargs.Transform(JSON) },
		"int":      func() urlargs.DefaultSpec { return urlargs.Transform(Int) },
		"duration": func() urlargs.DefaultSpec { return urlargs.Transform(Duration) },
		"csv":      func() urlargs.DefaultSpec { return urlargs.Transform(CSV) },
		"lower":    func() urlargs.DefaultSpec { return urlargs.Transform(Lower) },
		"upper":    func() urlargs.DefaultSpec { return urlargs.Transform(Upper) },
	}
}

// JSON decodes raw as a JSON value. Absent or invalid input yields nil.
func JSON(raw mo.Option[string]) any {
	s, ok := raw.Get()
	if !ok {
		return nil
	}
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil
	}
	return v
}

// Int parses raw as a base-10 integer. Absent or invalid input yields 0.
func Int(raw mo.Option[string]) int {
	s, ok := raw.Get()
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// Duration parses raw with time.ParseDuration. Absent or invalid input yields 0.
func Duration(raw mo.Option[string]) time.Duration {
	s, ok := raw.Get()
	if !ok {
		return 0
	}
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return d
}

// CSV splits raw on commas, trimming each item and dropping empty ones.
// Absent input yields an empty slice.
func CSV(raw mo.Option[string]) []string {
	s, ok := raw.Get()
	if !ok {
		return []string{}
	}
	items := lo.Map(strings.Split(s, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	})
	return lo.Filter(items, func(item string, _ int) bool {
		return item != ""
	})
}

// Lower lowercases raw. Absent input yields "".
func Lower(raw mo.Option[string]) string {
	s, _ := raw.Get()
	return strings.ToLower(s)
}

// Upper uppercases raw. Absent input yields "".
func Upper(raw mo.Option[string]) string {
	s, _ := raw.Get()
	return strings.ToUpper(s)
}
