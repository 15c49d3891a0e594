// Package encode implements the HTML text-encoding contract from spec §6:
// replace the characters that would otherwise be misread as markup with
// their entity form.
package encode

import (
	"fmt"
	"strings"
)

// replacer mirrors the escape set markdown-rs's `encode` uses for text
// nodes: the four characters that are unsafe to leave literal inside HTML
// text content and attribute values written with double quotes.
var replacer = strings.NewReplacer(
	`&`, "&amp;",
	`"`, "&quot;",
	`<`, "&lt;",
	`>`, "&gt;",
)

// isEscapedControl reports whether r is one of the ASCII control characters
// spec §6 requires Encode to escape: everything below U+0020 except tab,
// line feed, and carriage return (which are meaningful whitespace, not
// markup-breaking bytes), plus DEL.
func isEscapedControl(r rune) bool {
	switch r {
	case '\t', '\n', '\r':
		return false
	}
	return r < 0x20 || r == 0x7F
}

// Encode replaces &, <, >, and " with their named HTML entities, and any
// other ASCII control character with a numeric character reference. It is
// idempotent in the sense the core relies on: once a buffer has been
// produced by Encode (or deliberately left raw via ignore_encode), running
// it again on *new* text is still correct because Encode never emits an
// ambiguous prefix of another entity.
func Encode(s string) string {
	if !strings.ContainsFunc(s, isEscapedControl) {
		return replacer.Replace(s)
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isEscapedControl(r) {
			fmt.Fprintf(&b, "&#x%X;", r)
			continue
		}
		b.WriteString(replacer.Replace(string(r)))
	}
	return b.String()
}
