// Package charref implements the decode_named/decode_numeric contracts from
// spec §6, grounded on the teacher's own use of the standard library "html"
// package for entity handling (see ansi/context.go's SanitizeHTML).
package charref

import "html"

// ReplacementChar is U+FFFD, emitted for numeric references to zero, to a
// surrogate, or to a value out of Unicode range.
const ReplacementChar = '�'

var disallowedNumeric = map[rune]rune{
	0x80: 0x20AC, 0x82: 0x201A, 0x83: 0x0192, 0x84: 0x201E, 0x85: 0x2026,
	0x86: 0x2020, 0x87: 0x2021, 0x88: 0x02C6, 0x89: 0x2030, 0x8A: 0x0160,
	0x8B: 0x2039, 0x8C: 0x0152, 0x8E: 0x017D, 0x91: 0x2018, 0x92: 0x2019,
	0x93: 0x201C, 0x94: 0x201D, 0x95: 0x2022, 0x96: 0x2013, 0x97: 0x2014,
	0x98: 0x02DC, 0x99: 0x2122, 0x9A: 0x0161, 0x9B: 0x203A, 0x9C: 0x0153,
	0x9E: 0x017E, 0x9F: 0x0178,
}

// DecodeNamed looks up a named HTML entity given its bare name (without the
// leading '&' or trailing ';'). A miss returns the literal source text
// `&name;` unchanged, matching spec §7's "unknown named entities render as
// the literal source" rule.
func DecodeNamed(name string) string {
	literal := "&" + name + ";"
	unescaped := html.UnescapeString(literal)
	// html.UnescapeString also decodes a legacy entity that is only a prefix
	// of name ("&not" in "&notareference;"); the ';' is then left over just
	// as it is when unescaping without it.
	if unescaped == literal || unescaped == html.UnescapeString("&"+name)+";" {
		return literal
	}
	return unescaped
}

// DecodeNumeric parses ref as a base-10 or base-16 integer code point and
// returns its rendered rune as a string. Zero, surrogates, out-of-range and
// unparsable values decode to U+FFFD. The C1 values listed in
// disallowedNumeric decode to their Windows-1252 characters (0x80 to the
// euro sign); every other value decodes to itself.
func DecodeNumeric(ref string, base int) string {
	value, ok := parseUint(ref, base)
	if !ok {
		return string(ReplacementChar)
	}

	r := rune(value)
	switch {
	case value == 0:
		r = ReplacementChar
	case value > 0x10FFFF:
		r = ReplacementChar
	case value >= 0xD800 && value <= 0xDFFF:
		// Surrogate code points are not valid scalar values on their own.
		r = ReplacementChar
	default:
		if repl, bad := disallowedNumeric[rune(value)]; bad {
			r = repl
		}
	}
	return string(r)
}

func parseUint(s string, base int) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	var value uint64
	for _, c := range s {
		var digit uint64
		switch {
		case c >= '0' && c <= '9':
			digit = uint64(c - '0')
		case base == 16 && c >= 'a' && c <= 'f':
			digit = uint64(c-'a') + 10
		case base == 16 && c >= 'A' && c <= 'F':
			digit = uint64(c-'A') + 10
		default:
			return 0, false
		}
		if digit >= uint64(base) {
			return 0, false
		}
		value = value*uint64(base) + digit
		if value > 0x10FFFF {
			// Saturate; still out of range afterwards so DecodeNumeric will
			// map it to the replacement character.
			return value, true
		}
	}
	return value, true
}
