package encode

import "testing"

func TestEncode(t *testing.T) {
	for input, want := range map[string]string{
		"plain text":        "plain text",
		"a & b":              "a &amp; b",
		`"quoted"`:           "&quot;quoted&quot;",
		"<tag>":              "&lt;tag&gt;",
		"a<b>c&d\"e":         "a&lt;b&gt;c&amp;d&quot;e",
	} {
		t.Run(input, func(t *testing.T) {
			if got := Encode(input); got != want {
				t.Errorf("Encode(%q) = %q, want %q", input, got, want)
			}
		})
	}
}

func TestEncodeControlCharacters(t *testing.T) {
	for input, want := range map[string]string{
		"a\x00b":    "a&#x0;b",
		"a\x01b":    "a&#x1;b",
		"\x7F":      "&#x7F;",
		"a\tb\nc\r": "a\tb\nc\r",
		"\x00&\x01": "&#x0;&amp;&#x1;",
	} {
		t.Run(input, func(t *testing.T) {
			if got := Encode(input); got != want {
				t.Errorf("Encode(%q) = %q, want %q", input, got, want)
			}
		})
	}
}
