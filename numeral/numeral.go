// Package numeral converts integers between 0 and 999,999 to and from Greek
// alphabetic numerals.
//
// Units, tens and hundreds are written with one letter each, including the
// archaic digamma (6), koppa (90) and sampi (900). Thousands reuse the same
// letters prefixed with the lower numeral sign (͵), and a trailing prime
// marks the whole string as a number:
//
//	616   -> ΧΙϜ'
//	49999 -> ͵Μ͵ΘϠϘΘ'
//
// Zero has no letter; it is written with the GREEK ZERO SIGN (𐆊').
//
// Every function in this package is pure and safe for concurrent use.
package numeral

import (
	"strconv"
	"strings"
)

// Bounds of the supported range.
const (
	Min = 0
	Max = 999_999
)

// Case selects the letter case used when rendering a numeral.
type Case int

const (
	// Upper renders capital letters. It is the default.
	Upper Case = iota
	// Lower renders small letters.
	Lower
)

// String returns "upper" or "lower".
func (c Case) String() string {
	switch c {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	default:
		return "Case(" + strconv.Itoa(int(c)) + ")"
	}
}

func (c Case) valid() bool {
	return c == Upper || c == Lower
}

// ParseCase maps a case name to a Case. Empty input selects Upper.
func ParseCase(s string) (Case, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "upper", "uppercase":
		return Upper, nil
	case "lower", "lowercase":
		return Lower, nil
	default:
		return Upper, &CaseError{Name: s}
	}
}

// Integer is the set of integer types accepted by From.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Numeral is a validated value in [Min, Max]. The zero Numeral is 0.
type Numeral struct {
	value uint32
}

// New returns the Numeral for value, or an *OutOfRangeError.
func New(value int) (Numeral, error) {
	return From(value)
}

// From returns the Numeral for a value of any integer type, or an
// *OutOfRangeError.
func From[T Integer](value T) (Numeral, error) {
	if value < 0 {
		return Numeral{}, &OutOfRangeError{Value: strconv.FormatInt(int64(value), 10)}
	}
	if uint64(value) > Max {
		return Numeral{}, &OutOfRangeError{Value: strconv.FormatUint(uint64(value), 10)}
	}
	return Numeral{value: uint32(value)}, nil
}

// Parse decodes text into a Numeral. See Decode for the accepted syntax.
func Parse(text string) (Numeral, error) {
	value, err := Decode(text)
	if err != nil {
		return Numeral{}, err
	}
	return Numeral{value: uint32(value)}, nil
}

// Value returns the integer value.
func (n Numeral) Value() uint32 {
	return n.value
}

// Uppercase renders n with capital letters.
func (n Numeral) Uppercase() string {
	return n.Format(Upper)
}

// Lowercase renders n with small letters.
func (n Numeral) Lowercase() string {
	return n.Format(Lower)
}

// String renders n with capital letters.
func (n Numeral) String() string {
	return n.Format(Upper)
}

// MarshalText implements encoding.TextMarshaler using the uppercase form.
func (n Numeral) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Numeral) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
