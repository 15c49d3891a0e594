// Package event defines the flat Enter/Exit event stream the tokenizer
// produces and the span utilities the compiler uses to pull source text
// back out of it.
package event

import (
	"strings"

	"github.com/mdrender/htmlcore/source"
	"github.com/mdrender/htmlcore/token"
)

// Phase distinguishes entering a construct from leaving it. Every Enter is
// matched, later in the stream, by an Exit of the same Kind; events nest
// strictly.
type Phase uint8

const (
	Enter Phase = iota
	Exit
)

// Event is one step of the tokenizer's output: a phase, a construct kind,
// and the half-open code-point span ([Start, End)) the construct covers.
// For an Enter event the span covers the whole construct (set once its
// matching Exit is known); for an Exit event it is complete immediately.
type Event struct {
	Phase Phase
	Kind  token.Kind
	Start int
	End   int
}

// Span returns the [start, end) code-point range belonging to the
// construct closed by the Exit event at index. It is the Go analogue of
// markdown-rs's `from_exit_event`.
func Span(events []Event, index int) (start, end int) {
	e := events[index]
	return e.Start, e.End
}

// Codes slices the code-point array to the half-open range [start, end).
func Codes(codes []source.Code, start, end int) []source.Code {
	return codes[start:end]
}

// Serialize renders a span of code points back to a string, optionally
// expanding virtual spaces and line endings to their literal text. The
// `false` flag used throughout compiler.rs call sites ("expand_tabs")
// means: do not introduce additional literal tab characters, just emit
// each code point's natural text — that is the only mode the compiler
// needs, so this is the only mode implemented.
func Serialize(codes []source.Code, start, end int) string {
	var b strings.Builder
	for _, c := range codes[start:end] {
		switch c.Kind {
		case source.Char, source.VirtualSpace:
			b.WriteRune(c.Value)
		case source.CR:
			b.WriteByte('\r')
		case source.LF:
			b.WriteByte('\n')
		case source.CRLF:
			b.WriteString("\r\n")
		case source.EOF:
			// Nothing to emit.
		}
	}
	return b.String()
}

// SerializeSpan is a convenience wrapper combining Span and Serialize for
// the common "read the text this Exit event just closed" case.
func SerializeSpan(events []Event, codes []source.Code, index int) string {
	start, end := Span(events, index)
	return Serialize(codes, start, end)
}
