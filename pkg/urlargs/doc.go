/*
Package urlargs resolves query-string parameters into typed values using a
schema built from default values.

# Overview

Each schema field carries a default. The kind of the default decides how the
matching query parameter is parsed, and the default itself is what the field
resolves to when the parameter is missing or invalid. Resolution happens once,
in New; the resulting Args is immutable.

# Basic Usage

	schema := urlargs.NewSchema().
	    Number("count", 10).
	    Bool("enabled", true).
	    String("name", "test").
	    Strings("tags")

	args, err := urlargs.New(schema, "?count=20&enabled=false&tags=a&tags=b")
	if err != nil {
	    log.Fatal(err)
	}

	v := args.Values()
	v.Int("count", 0)            // 20
	v.Bool("enabled", true)      // false
	v.String("name", "")         // "test"
	v.StringSlice("tags", nil)   // []string{"a", "b"}

# Field Kinds

	Bool       "true", "1", "" (key without '=') -> true; "false", "0" -> false
	Number     decimal, exponent, 0x/0o/0b and Infinity forms; NaN is invalid
	String     the raw value, unvalidated
	Strings    every value of a repeated key, in the order supplied
	Null       like String, nil when absent
	Absent     like String, nil when absent, described as undefined
	Transform  a function of mo.Option[string]; None when the key is absent

Matching is case-insensitive for booleans. An invalid boolean or number logs
two warnings (the rejected value, then the default used instead) and resolves
to the default. Missing keys resolve silently.

# Transforms

A transform computes its own value from the raw string and decides its own
default by handling mo.None:

	type Point struct{ X, Y int }

	schema := urlargs.NewSchema().
	    Add("origin", urlargs.Transform(func(raw mo.Option[string]) Point {
	        s, ok := raw.Get()
	        if !ok {
	            return Point{}
	        }
	        var p Point
	        _ = json.Unmarshal([]byte(s), &p)
	        return p
	    }))

	origin, _ := urlargs.Get[Point](args.Values(), "origin")

# Describing

Describe writes a column-aligned table of every field, its kind, its resolved
value and a description, noting the default wherever the value differs:

	args.Describe(map[string]string{
	    "count": "The number of items to display",
	})

	// urlargs: ?count=20
	// count   | number  | 20     | The number of items to display (default: 10)
	// enabled | boolean | true   |
	// name    | string  | "test" |

Output goes to a table.Sink, standard output by default. See WithSink.

# Dynamic Schemas

Infer builds a default from an untyped value, for schemas decoded from files
(see the schema subpackage). Values it cannot map to a kind fail with
ErrUnsupportedType when New validates the schema.

# Thread Safety

Args and Values are safe for concurrent reads. A Schema must not be modified
concurrently with New; New takes its own copy of the fields.
*/
package urlargs
