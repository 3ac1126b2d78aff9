/*
Package transform provides named transform fields for schemas that are not
written in Go, such as YAML schema files.

A Registry maps a name to a Factory producing a urlargs.DefaultSpec. Default
returns a registry holding the built-ins:

	json      decoded JSON value; nil when absent or invalid
	int       integer; 0 when absent or invalid
	duration  time.Duration via time.ParseDuration; 0 when absent or invalid
	csv       comma-separated list, items trimmed; empty when absent
	lower     lowercased string; "" when absent
	upper     uppercased string; "" when absent

Custom transforms are registered on a registry and referenced by name:

	reg := transform.NewRegistry()
	reg.Register("port", func() urlargs.DefaultSpec {
	    return urlargs.Transform(func(raw mo.Option[string]) int { ... })
	})

# Thread Safety

Registry is safe for concurrent use.
*/
package transform
