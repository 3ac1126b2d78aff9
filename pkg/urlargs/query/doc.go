/*
Package query parses the query portion of a resource locator into an ordered
multi-map.

# Overview

net/url.Values is a map and loses the order in which keys were supplied. The
urlargs resolver needs that order for two things: repeated keys must come back
exactly in the order they were written, and the describe summary re-serializes
the query the way it was given.

	q := query.Parse("?tags=go&tags=yaml&verbose")

	q.Has("verbose")   // true
	q.Get("verbose")   // ""
	q.GetAll("tags")   // []string{"go", "yaml"}
	q.Encode()         // "tags=go&tags=yaml&verbose="

# Decoding

Pairs are separated by '&'. A pair without '=' is a key with an empty value.
'+' decodes to a space and percent escapes are decoded; a malformed escape is
kept literally rather than rejected. Empty segments ("a=1&&b=2") are skipped.

# Thread Safety

Values is never modified after Parse and is safe for concurrent reads.
*/
package query
