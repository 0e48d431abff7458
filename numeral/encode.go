package numeral

import "strings"

var pow10 = [2 * placeCount]int{1, 10, 100, 1_000, 10_000, 100_000}

// Encode renders value as a numeral string in the requested case.
// It returns an *OutOfRangeError when value is outside [Min, Max].
func Encode(value int, c Case) (string, error) {
	if !c.valid() {
		return "", &CaseError{Name: c.String()}
	}
	n, err := New(value)
	if err != nil {
		return "", err
	}
	return n.Format(c), nil
}

// Format renders n in the requested case. Any Case other than Lower renders
// capitals.
func (n Numeral) Format(c Case) string {
	if n.value == 0 {
		return string([]rune{ZeroSign, Prime})
	}

	var b strings.Builder
	// At most six marked glyphs plus the prime, each up to 4 bytes.
	b.Grow(2*placeCount*4 + 1)
	writeGroup(&b, int(n.value/1000), true, c)
	writeGroup(&b, int(n.value%1000), false, c)
	b.WriteRune(Prime)
	return b.String()
}

// writeGroup writes a 0-999 group in descending place order.
func writeGroup(b *strings.Builder, group int, thousands bool, c Case) {
	for place := placeHundreds; place >= placeUnits; place-- {
		digit := group / pow10[place] % 10
		if digit == 0 {
			continue
		}
		if thousands {
			b.WriteRune(ThousandsMarker)
		}
		b.WriteRune(symbols[place][digit-1].form(c))
	}
}
