/*
Package schema loads urlargs schemas from YAML or JSON documents.

# Overview

A schema document is a mapping from field name to default. Field order in the
document is the field order of the schema, so describe tables list fields the
way the file does.

	count: 10
	enabled: true
	name: test
	tags: []
	filter: ~
	since:
	  transform: duration
	  description: Only show items newer than this
	limit:
	  default: 50
	  description: Maximum rows per page

A plain value is a default whose type decides the field kind (see
urlargs.Infer). A mapping describes the field instead and may hold:

	default      the default value
	transform    the name of a transform in the registry
	description  text shown by Args.Describe

A mapping with any other key, or with both default and transform, is an
unsupported default and fails the load. A mapping holding only a description
declares a field with no default.

# Loading

	doc, err := schema.FromFile("args.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	args, err := urlargs.New(doc.Schema, r.URL.RawQuery)
	args.Describe(doc.Descriptions)

FromMap accepts an already-decoded map; its fields are sorted by name since Go
maps have no order.
*/
package schema
