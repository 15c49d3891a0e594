package sanitizeuri

import "testing"

func TestSanitizeAllowedScheme(t *testing.T) {
	for input, want := range map[string]string{
		"https://go.dev":       "https://go.dev",
		"http://go.dev/a b":    "http://go.dev/a%20b",
		"mailto:a@b.com":       "mailto:a@b.com",
		"/relative/path":       "/relative/path",
		"#fragment":            "#fragment",
		"already%20escaped":    "already%20escaped",
	} {
		t.Run(input, func(t *testing.T) {
			got := Sanitize(input, SafeProtocolHref)
			if got != want {
				t.Errorf("Sanitize(%q, SafeProtocolHref) = %q, want %q", input, got, want)
			}
		})
	}
}

func TestSanitizeBlockedScheme(t *testing.T) {
	for _, input := range []string{"javascript:alert(1)", "JAVASCRIPT:alert(1)", "data:text/html,x"} {
		t.Run(input, func(t *testing.T) {
			if got := Sanitize(input, SafeProtocolHref); got != "" {
				t.Errorf("Sanitize(%q, SafeProtocolHref) = %q, want empty", input, got)
			}
		})
	}
}

func TestSanitizeSrcRejectsMailto(t *testing.T) {
	if got := Sanitize("mailto:a@b.com", SafeProtocolSrc); got != "" {
		t.Errorf("Sanitize(mailto, SafeProtocolSrc) = %q, want empty", got)
	}
}

func TestSanitizeNilAllowListDisablesCheck(t *testing.T) {
	got := Sanitize("javascript:alert(1)", nil)
	want := "javascript:alert(1)"
	if got != want {
		t.Errorf("Sanitize(javascript, nil) = %q, want %q", got, want)
	}
}

func TestSanitizePreservesExistingPercentEscape(t *testing.T) {
	got := Sanitize("https://go.dev/%2F", SafeProtocolHref)
	want := "https://go.dev/%2F"
	if got != want {
		t.Errorf("Sanitize = %q, want %q", got, want)
	}
}
