package larreco

import "fmt"

// ParseError reports a malformed field in an input record. Record is the
// zero-based data row, not counting the header.
type ParseError struct {
	Record int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("record %d: column %q: %v", e.Record, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DegenerateRangeError is returned when all hits and the vertex share the
// same coordinate along an axis, so the axis cannot be normalised.
type DegenerateRangeError struct {
	Axis  string
	Value float64
}

func (e *DegenerateRangeError) Error() string {
	return fmt.Sprintf("degenerate %s range: all points at %g", e.Axis, e.Value)
}

// NonFiniteError is returned when an event holds a NaN or infinite
// coordinate along an axis.
type NonFiniteError struct {
	Axis  string
	Value float64
}

func (e *NonFiniteError) Error() string {
	return fmt.Sprintf("non-finite %s coordinate %g", e.Axis, e.Value)
}

// FileError represents a failed filesystem operation on a job file.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("error %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
