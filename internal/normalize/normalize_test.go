package normalize

import "testing"

func TestIdentifierCollapsesWhitespace(t *testing.T) {
	for input, want := range map[string]string{
		"foo bar":       "foo bar",
		"foo   bar":     "foo bar",
		"  foo bar  ":   "foo bar",
		"foo\nbar":      "foo bar",
		"Foo Bar":       "foo bar",
		"FOO":           "foo",
	} {
		t.Run(input, func(t *testing.T) {
			if got := Identifier(input); got != want {
				t.Errorf("Identifier(%q) = %q, want %q", input, got, want)
			}
		})
	}
}

func TestIdentifierMatchesAcrossCaseAndSpacing(t *testing.T) {
	a := Identifier("Foo Bar")
	b := Identifier("foo   bar")
	if a != b {
		t.Errorf("Identifier(%q) = %q, Identifier(%q) = %q, want equal", "Foo Bar", a, "foo   bar", b)
	}
}
