package loader

import (
	"errors"
	"fmt"
)

// Loader errors.
var (
	// ErrSchema is returned when a required column is absent from a file header.
	ErrSchema = errors.New("schema error")

	// ErrParse is returned when a cell cannot be parsed as the expected type.
	ErrParse = errors.New("parse error")
)

// SchemaError names the file and the missing column.
type SchemaError struct {
	File   string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error: %s: missing required column %q", e.File, e.Column)
}

// Unwrap allows errors.Is(err, ErrSchema).
func (e *SchemaError) Unwrap() error { return ErrSchema }

// ParseError names the file, line and column of a malformed cell.
type ParseError struct {
	File   string
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s line %d column %q: value %q: %v", e.File, e.Line, e.Column, e.Value, e.Err)
}

// Is allows errors.Is(err, ErrParse).
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Unwrap returns the underlying strconv error.
func (e *ParseError) Unwrap() error { return e.Err }
