package mbase

import (
	"errors"
	"fmt"
)

// ErrChecksumMismatch is returned by checksum-bearing codecs (base58check,
// bech32, bech32m) when the embedded checksum does not match the value
// recomputed over the payload.
var ErrChecksumMismatch = errors.New("checksum mismatch")

// LengthConstraint describes the structural length requirement an input
// failed to meet.
type LengthConstraint struct {
	// MultipleOf, when > 0, requires len(input) % MultipleOf == 0.
	MultipleOf int
	// Min/Max bound the length when MultipleOf is 0. Max == 0 means no
	// upper bound.
	Min int
	Max int
}

func (c LengthConstraint) String() string {
	switch {
	case c.MultipleOf > 0:
		return fmt.Sprintf("multiple of %d", c.MultipleOf)
	case c.Max > 0:
		return fmt.Sprintf("between %d and %d", c.Min, c.Max)
	default:
		return fmt.Sprintf("at least %d", c.Min)
	}
}

// InvalidInputError is the generic decode failure, used only when no more
// specific error type applies.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// InvalidCharError reports a character outside the codec's effective
// alphabet. Pos is measured in the normalized text: after Lenient-mode
// whitespace stripping and case folding, so it may differ from the position
// in the caller's original string.
type InvalidCharError struct {
	Char rune
	Pos  int
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Pos)
}

// InvalidLengthError reports a structurally invalid input length.
type InvalidLengthError struct {
	Constraint LengthConstraint
	Actual     int
	Message    string
}

func (e *InvalidLengthError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("invalid length: expected %s, got %d (%s)", e.Constraint, e.Actual, e.Message)
	}
	return fmt.Sprintf("invalid length: expected %s, got %d", e.Constraint, e.Actual)
}

// InvalidPaddingError reports missing, forbidden or malformed padding.
type InvalidPaddingError struct {
	Message string
}

func (e *InvalidPaddingError) Error() string {
	return fmt.Sprintf("invalid padding: %s", e.Message)
}

// CodecNotFoundError is returned by Registry.Get for an unknown name or
// alias.
type CodecNotFoundError struct {
	Name string
}

func (e *CodecNotFoundError) Error() string {
	return fmt.Sprintf("unsupported codec: %s", e.Name)
}

func invalidChar(ch rune, pos int) error {
	return &InvalidCharError{Char: ch, Pos: pos}
}
