package jsontime

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax reports text that does not follow the canonical layout.
	ErrSyntax = errors.New("malformed text")
	// ErrRange reports a well-formed field whose value is out of range, e.g. month 13.
	ErrRange = errors.New("field out of range")
	// ErrNotString reports a JSON token that is neither a string nor null.
	ErrNotString = errors.New("not a JSON string")

	// ErrNilConfig is the panic value of registrations given a nil *Config.
	ErrNilConfig = errors.New("jsontime: config cannot be nil")

	errZoneID = errors.New("not a region zone id")
)

// FormatError is returned when text cannot be parsed as a temporal type,
// or when a value is out of range to be written as text.
// Err is one of ErrSyntax, ErrRange, ErrNotString (possibly wrapped with
// detail) or the error from loading a zone id.
type FormatError struct {
	Op    string // "parse" or "format"; empty reads as "parse"
	Type  string // e.g. "LocalDate"
	Input string // for "format", the text the value would have produced
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("jsontime: cannot %s %q as %s: %v", coalesce(e.Op, "parse"), e.Input, e.Type, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
