package numeral

import (
	"errors"
	"fmt"
)

// Reasons carried by the error types below. Match them with errors.Is.
var (
	ErrOutOfRange     = errors.New("number out of range")
	ErrUnknownCase    = errors.New("unknown letter case")
	ErrEmpty          = errors.New("empty numeral")
	ErrMissingPrime   = errors.New("missing terminating prime")
	ErrUnknownGlyph   = errors.New("unknown glyph")
	ErrDanglingMarker = errors.New("thousands marker not followed by a glyph")
	ErrOrder          = errors.New("glyph out of order")
)

// OutOfRangeError reports an integer outside [Min, Max].
type OutOfRangeError struct {
	// Value is the decimal text of the rejected input.
	Value string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("number out of range (must be between %d and 999,999): %s", Min, e.Value)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

// ParseError reports text that is not a well-formed numeral.
type ParseError struct {
	Input  string // text as given
	Offset int    // rune offset into the trimmed, normalised input
	Err    error  // one of the Err* reasons
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse greek numeral %q at offset %d: %v", e.Input, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// CaseError reports a letter case name or value that is not Upper or Lower.
type CaseError struct {
	Name string
}

func (e *CaseError) Error() string {
	return fmt.Sprintf("%v %q", ErrUnknownCase, e.Name)
}

func (e *CaseError) Unwrap() error {
	return ErrUnknownCase
}
