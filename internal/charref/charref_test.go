package charref

import "testing"

func TestDecodeNamedKnown(t *testing.T) {
	for name, want := range map[string]string{
		"amp":  "&",
		"lt":   "<",
		"gt":   ">",
		"quot": "\"",
		"copy": "©",
	} {
		t.Run(name, func(t *testing.T) {
			if got := DecodeNamed(name); got != want {
				t.Errorf("DecodeNamed(%q) = %q, want %q", name, got, want)
			}
		})
	}
}

func TestDecodeNamedUnknownReturnsLiteral(t *testing.T) {
	got := DecodeNamed("notareference")
	want := "&notareference;"
	if got != want {
		t.Errorf("DecodeNamed(unknown) = %q, want %q", got, want)
	}
}

func TestDecodeNumericDecimal(t *testing.T) {
	for input, want := range map[string]string{
		"65":  "A",
		"97":  "a",
		"169": "©",
	} {
		t.Run(input, func(t *testing.T) {
			if got := DecodeNumeric(input, 10); got != want {
				t.Errorf("DecodeNumeric(%q, 10) = %q, want %q", input, got, want)
			}
		})
	}
}

func TestDecodeNumericHex(t *testing.T) {
	if got := DecodeNumeric("41", 16); got != "A" {
		t.Errorf("DecodeNumeric(41, 16) = %q, want %q", got, "A")
	}
}

func TestDecodeNumericZeroIsReplacementChar(t *testing.T) {
	if got := DecodeNumeric("0", 10); got != string(ReplacementChar) {
		t.Errorf("DecodeNumeric(0) = %q, want replacement char", got)
	}
}

func TestDecodeNumericOutOfRangeIsReplacementChar(t *testing.T) {
	if got := DecodeNumeric("99999999", 10); got != string(ReplacementChar) {
		t.Errorf("DecodeNumeric(out of range) = %q, want replacement char", got)
	}
}

func TestDecodeNumericSurrogateIsReplacementChar(t *testing.T) {
	if got := DecodeNumeric("D800", 16); got != string(ReplacementChar) {
		t.Errorf("DecodeNumeric(surrogate) = %q, want replacement char", got)
	}
}

func TestDecodeNumericWindows1252Remap(t *testing.T) {
	got := DecodeNumeric("80", 16)
	want := string(rune(0x20AC))
	if got != want {
		t.Errorf("DecodeNumeric(0x80) = %q, want euro sign %q", got, want)
	}
}
