package table

import (
	"errors"
	"fmt"
)

var (
	// ErrNoHeader means a file has no line left to use as the header after
	// comments are removed.
	ErrNoHeader = errors.New("no header line")
	// ErrRaggedRow means a row's field count differs from the header's. It is
	// only reported in strict mode.
	ErrRaggedRow = errors.New("row field count does not match header")
	// ErrMisaligned means merged columns ended up with different lengths. It
	// is only reported in strict mode.
	ErrMisaligned = errors.New("columns have different lengths")
)

// ParseError reports a failure to parse a file.
type ParseError struct {
	Path string
	Row  int // 1-based data row, 0 when not tied to a row
	Err  error
}

func (e *ParseError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("failed to parse '%s' at row %d: %v", e.Path, e.Row, e.Err)
	}
	return fmt.Sprintf("failed to parse '%s': %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ConversionError reports a cell that is not a valid number.
type ConversionError struct {
	Column string
	Row    int // 0-based index within the column
	Value  string
	Err    error
}

func (e *ConversionError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("row %d: cannot convert %q to a number: %v", e.Row, e.Value, e.Err)
	}
	return fmt.Sprintf("column %q row %d: cannot convert %q to a number: %v", e.Column, e.Row, e.Value, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// KeyError reports a lookup of a column that does not exist.
type KeyError struct {
	Column string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("column %q not found", e.Column)
}
