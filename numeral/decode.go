package numeral

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Decode returns the value of a numeral string.
//
// Surrounding whitespace is ignored and the text is NFC-normalised first.
// The body must be a sequence of glyphs, each optionally preceded by the
// thousands marker, in strictly descending place order, followed by a prime
// (', U+02B9 or U+0374). Letters are accepted in either case, along with the stigma,
// modern koppa and archaic sampi variants. The zero sign must stand alone.
//
// Any other input yields a *ParseError; Decode never guesses.
func Decode(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	fail := func(offset int, reason error) (int, error) {
		return 0, &ParseError{Input: text, Offset: offset, Err: reason}
	}
	if trimmed == "" {
		return fail(0, ErrEmpty)
	}

	runes := []rune(norm.NFC.String(trimmed))
	last := len(runes) - 1
	if !isPrime(runes[last]) {
		return fail(len(runes), ErrMissingPrime)
	}
	body := runes[:last]
	if len(body) == 0 {
		return fail(0, ErrEmpty)
	}

	if body[0] == ZeroSign {
		if len(body) > 1 {
			return fail(1, ErrOrder)
		}
		return 0, nil
	}

	total := 0
	prev := len(pow10)
	for i := 0; i < len(body); i++ {
		r := body[i]
		marked := false
		if r == ThousandsMarker {
			if i+1 >= len(body) || body[i+1] == ThousandsMarker {
				return fail(i, ErrDanglingMarker)
			}
			marked = true
			i++
			r = body[i]
		}

		sym, ok := reverse[r]
		if !ok {
			if r == ZeroSign {
				return fail(i, ErrOrder)
			}
			return fail(i, ErrUnknownGlyph)
		}
		pos := sym.place
		if marked {
			pos += placeCount
		}
		if pos >= prev {
			return fail(i, ErrOrder)
		}
		prev = pos
		total += sym.digit * pow10[pos]
	}
	return total, nil
}
