package urlargs

import (
	"errors"
	"fmt"
)

// Sentinel errors for schema validation. All of them are fatal: New returns
// no Args when any field fails.
var (
	// ErrNilSchema indicates New was called without a schema.
	ErrNilSchema = errors.New("schema is nil")

	// ErrEmptyFieldName indicates a field was added with an empty name.
	ErrEmptyFieldName = errors.New("field name is empty")

	// ErrDuplicateField indicates two fields share a name.
	ErrDuplicateField = errors.New("duplicate field")

	// ErrNilTransform indicates a transform field has no function.
	ErrNilTransform = errors.New("transform function is nil")

	// ErrUnsupportedType indicates a default whose type maps to no field kind.
	ErrUnsupportedType = errors.New("unsupported default type")
)

// FieldError wraps a schema error with the field it belongs to.
type FieldError struct {
	// Field is the schema field name.
	Field string
	// Type is the Go type of the offending default, when relevant.
	Type string
	// Err is the underlying sentinel error.
	Err error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("field %q: %v: %s", e.Field, e.Err, e.Type)
	}
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *FieldError) Unwrap() error {
	return e.Err
}
