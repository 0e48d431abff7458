package numeral

// Places covered by the glyph table.
const (
	placeUnits = iota
	placeTens
	placeHundreds
	placeCount
)

// Marks used around the digit glyphs.
const (
	// Prime terminates every numeral.
	Prime = '\''
	// Keraia is U+02B9 MODIFIER LETTER PRIME, the NFC form of U+0374 GREEK NUMERAL SIGN.
	Keraia = '\u02B9'
	// GreekNumeralSign is U+0374; it only survives unnormalised input.
	GreekNumeralSign = '\u0374'
	// ThousandsMarker is U+0375 GREEK LOWER NUMERAL SIGN; it multiplies the next glyph by 1,000.
	ThousandsMarker = '\u0375'
	// ZeroSign is U+1018A GREEK ZERO SIGN.
	ZeroSign = '\U0001018A'
)

type glyph struct {
	upper rune
	lower rune
}

func (g glyph) form(c Case) rune {
	if c == Lower {
		return g.lower
	}
	return g.upper
}

// symbols is indexed by place then digit-1.
var symbols = [placeCount][9]glyph{
	placeUnits: {
		{'Α', 'α'}, // 1
		{'Β', 'β'}, // 2
		{'Γ', 'γ'}, // 3
		{'Δ', 'δ'}, // 4
		{'Ε', 'ε'}, // 5
		{'Ϝ', 'ϝ'}, // 6 digamma
		{'Ζ', 'ζ'}, // 7
		{'Η', 'η'}, // 8
		{'Θ', 'θ'}, // 9
	},
	placeTens: {
		{'Ι', 'ι'}, // 10
		{'Κ', 'κ'}, // 20
		{'Λ', 'λ'}, // 30
		{'Μ', 'μ'}, // 40
		{'Ν', 'ν'}, // 50
		{'Ξ', 'ξ'}, // 60
		{'Ο', 'ο'}, // 70
		{'Π', 'π'}, // 80
		{'Ϙ', 'ϙ'}, // 90 koppa
	},
	placeHundreds: {
		{'Ρ', 'ρ'}, // 100
		{'Σ', 'σ'}, // 200
		{'Τ', 'τ'}, // 300
		{'Υ', 'υ'}, // 400
		{'Φ', 'φ'}, // 500
		{'Χ', 'χ'}, // 600
		{'Ψ', 'ψ'}, // 700
		{'Ω', 'ω'}, // 800
		{'Ϡ', 'ϡ'}, // 900 sampi
	},
}

// variants are alternative letter forms accepted on decode but never emitted.
var variants = []struct {
	glyph glyph
	place int
	digit int
}{
	{glyph{'Ϛ', 'ϛ'}, placeUnits, 6},    // stigma
	{glyph{'Ϟ', 'ϟ'}, placeTens, 9},     // modern koppa
	{glyph{'Ͳ', 'ͳ'}, placeHundreds, 9}, // archaic sampi
}

type symbol struct {
	place int
	digit int
}

// reverse maps every accepted glyph rune to its place and digit.
var reverse = buildReverse()

func buildReverse() map[rune]symbol {
	out := make(map[rune]symbol, placeCount*9*2+len(variants)*2)
	for place, row := range symbols {
		for i, g := range row {
			s := symbol{place: place, digit: i + 1}
			out[g.upper] = s
			out[g.lower] = s
		}
	}
	for _, v := range variants {
		s := symbol{place: v.place, digit: v.digit}
		out[v.glyph.upper] = s
		out[v.glyph.lower] = s
	}
	return out
}

func isPrime(r rune) bool {
	return r == Prime || r == Keraia || r == GreekNumeralSign
}
