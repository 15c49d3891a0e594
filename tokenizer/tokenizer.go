// Package tokenizer is a supplemental reference scanner that turns
// markdown text into the flat Enter/Exit event stream and code-point array
// the compiler package consumes. The project this tree is grounded on
// treats the tokenizer as an external collaborator with its own
// independent, exhaustive grammar; this one exists only to exercise the
// compiler end to end in tests and the CLI, so it covers the common forms
// of every construct the compiler handles without claiming full CommonMark
// conformance (notably: no nested emphasis flanking-rule analysis, no
// multi-line link reference definitions, no raw HTML block recognition,
// no tab expansion, no nested lists: an indented list marker starts a
// sibling item rather than a sublist; block quotes do nest).
package tokenizer

import (
	"github.com/mdrender/htmlcore/event"
	"github.com/mdrender/htmlcore/source"
)

// Tokenize scans input and returns the event stream and code-point array a
// compiler.Compile call needs.
func Tokenize(input string) ([]event.Event, []source.Code) {
	codes := codesFromString(input)
	lines := splitLines(codes)

	b := &builder{}
	tokenizeBlock(b, codes, lines)

	return b.events, codes
}
