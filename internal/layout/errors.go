package layout

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported layout format")
	ErrParse             = errors.New("malformed layout data")
	ErrEmptyLayout       = fmt.Errorf("%w: layout contains no sensors", ErrParse)
)

// UnsupportedFormatError reports a filename whose suffix is not a known
// layout family.
type UnsupportedFormatError struct {
	Name string
}

// Error implements the error interface.
func (e *UnsupportedFormatError) Error() string {
	formats := Formats()
	suffixes := make([]string, len(formats))
	for i, f := range formats {
		suffixes[i] = f.Suffix()
	}
	last := len(suffixes) - 1
	expected := strings.Join(suffixes[:last], ", ") + " or " + suffixes[last]
	return fmt.Sprintf("currently %s is not supported (expected %s)", e.Name, expected)
}

// Unwrap returns ErrUnsupportedFormat.
func (e *UnsupportedFormatError) Unwrap() error {
	return ErrUnsupportedFormat
}

// ParseError provides detailed information about a row that could not be parsed.
type ParseError struct {
	Format Format // Format being parsed
	Line   int    // 1-based physical line number, 0 when not tied to a line
	Column int    // 1-based column, 0 when not tied to a column
	Msg    string // What went wrong
	Err    error  // Underlying cause, if any
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("%s: line %d, column %d: %s", e.Format, e.Line, e.Column, msg)
	case e.Line > 0:
		return fmt.Sprintf("%s: line %d: %s", e.Format, e.Line, msg)
	default:
		return fmt.Sprintf("%s: %s", e.Format, msg)
	}
}

// Unwrap allows errors.Is(err, ErrParse) and access to the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrParse, e.Err}
	}
	return []error{ErrParse}
}
