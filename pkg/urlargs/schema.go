package urlargs

import (
	"errors"
	"fmt"
)

// Field is a named default in a Schema.
type Field struct {
	Name string
	Spec DefaultSpec
}

// Schema is an ordered set of fields. Field order drives the row order of
// Describe.
//
// Builder methods chain and never fail; problems such as duplicate names are
// collected and reported by Validate, which New calls.
type Schema struct {
	fields []Field
	index  map[string]int
	errs   []error
}

// NewSchema creates an empty schema.
func NewSchema() *Schema {
	return &Schema{index: make(map[string]int)}
}

// Add appends a field. A duplicate or empty name is recorded as an error and
// the field is not added.
func (s *Schema) Add(name string, spec DefaultSpec) *Schema {
	switch {
	case name == "":
		s.errs = append(s.errs, &FieldError{Field: name, Err: ErrEmptyFieldName})
		return s
	case spec == nil:
		s.errs = append(s.errs, &FieldError{Field: name, Type: "<nil>", Err: ErrUnsupportedType})
		return s
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, ok := s.index[name]; ok {
		s.errs = append(s.errs, &FieldError{Field: name, Err: ErrDuplicateField})
		return s
	}
	if t, ok := spec.(transformer); ok && t.isNil() {
		s.errs = append(s.errs, &FieldError{Field: name, Err: ErrNilTransform})
		return s
	}
	s.index[name] = len(s.fields)
	s.fields = append(s.fields, Field{Name: name, Spec: spec})
	return s
}

// AddValue appends a field whose kind is inferred from v. See Infer.
func (s *Schema) AddValue(name string, v any) *Schema {
	spec, err := Infer(v)
	if err != nil {
		s.errs = append(s.errs, &FieldError{Field: name, Type: fmt.Sprintf("%T", v), Err: ErrUnsupportedType})
		return s
	}
	return s.Add(name, spec)
}

// Null appends a field defaulting to nil.
func (s *Schema) Null(name string) *Schema { return s.Add(name, Null()) }

// Absent appends a field with no default.
func (s *Schema) Absent(name string) *Schema { return s.Add(name, Absent()) }

// String appends a string field.
func (s *Schema) String(name, def string) *Schema { return s.Add(name, String(def)) }

// Number appends a numeric field.
func (s *Schema) Number(name string, def float64) *Schema { return s.Add(name, Number(def)) }

// Int appends a numeric field with an integer default.
func (s *Schema) Int(name string, def int) *Schema { return s.Add(name, Int(def)) }

// Bool appends a boolean field.
func (s *Schema) Bool(name string, def bool) *Schema { return s.Add(name, Bool(def)) }

// Strings appends a repeated-key field.
func (s *Schema) Strings(name string, def ...string) *Schema { return s.Add(name, Strings(def...)) }

// Fields returns a copy of the fields in order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Names returns the field names in order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Lookup returns the default for name.
func (s *Schema) Lookup(name string) (DefaultSpec, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.fields[i].Spec, true
}

// Len returns the number of fields.
func (s *Schema) Len() int {
	return len(s.fields)
}

// Validate returns every error recorded while building the schema, joined.
func (s *Schema) Validate() error {
	return errors.Join(s.errs...)
}
