package compiler

import (
	"github.com/mdrender/htmlcore/event"
	"github.com/mdrender/htmlcore/source"
	"github.com/mdrender/htmlcore/token"
)

// Compile turns a tokenizer's flat Enter/Exit event stream into an HTML
// string. It is the sole public entry point of the package, mirroring the
// two-pass `compile()` driver in the source this package is grounded on:
// first a pass that locates every link-reference definition regardless of
// where it appears in the stream, then a pass that renders everything else,
// skipping over the event ranges definitions already consumed.
//
// events and codes must come from the same tokenization run; Compile does
// not validate that invariant, the same way the source trusts its caller.
func Compile(events []event.Event, codes []source.Code, opts Options) string {
	lineEnding := inferLineEnding(codes, opts.DefaultLineEnding)
	c := newContext(events, codes, opts, lineEnding)

	definitionRanges := collectDefinitions(c)
	render(c, definitionRanges)

	if len(c.buffers) != 1 {
		panic("compiler: expected exactly one buffer left after compilation")
	}
	return c.resume()
}

// inferLineEnding returns the line ending of the first line ending found in
// codes, or fallback if the document has none at all.
func inferLineEnding(codes []source.Code, fallback source.LineEnding) source.LineEnding {
	for _, code := range codes {
		if code.IsLineEnding() {
			return source.FromCode(code)
		}
	}
	return fallback
}

type byteRange struct {
	start, end int
}

// collectDefinitions walks the full event stream once, dispatching only the
// events that belong to a Definition construct (so identifiers and
// destinations get registered via onEnter/onExitDefinition*), and records
// the [start, end) event-index range each top-level definition occupies.
// Ranges are monotonically increasing and non-overlapping because
// definitions cannot nest.
func collectDefinitions(c *context) []byteRange {
	var ranges []byteRange
	events := c.events

	for index := 0; index < len(events); index++ {
		e := events[index]
		if e.Kind != token.Definition || e.Phase != event.Enter {
			continue
		}

		start := index
		c.index = index
		onEnter(c)
		index++

		for {
			c.index = index
			inner := events[index]
			if inner.Phase == event.Enter {
				onEnter(c)
			} else {
				onExit(c)
				if inner.Kind == token.Definition {
					break
				}
			}
			index++
		}

		ranges = append(ranges, byteRange{start: start, end: index + 1})
	}

	return ranges
}

// render performs the main pass: every event not inside a previously
// recorded definition range is dispatched to onEnter/onExit in order. Upon
// jumping over a definition range, a single line ending immediately
// following it is slurped, matching the source's treatment of definitions
// as invisible to the rendered output.
func render(c *context, definitionRanges []byteRange) {
	events := c.events
	rangeIndex := 0

	for index := 0; index < len(events); index++ {
		if rangeIndex < len(definitionRanges) && index == definitionRanges[rangeIndex].start {
			index = definitionRanges[rangeIndex].end - 1
			rangeIndex++
			c.slurpOneLineEnding = true
			continue
		}

		c.index = index
		if events[index].Phase == event.Enter {
			onEnter(c)
		} else {
			onExit(c)
		}
	}
}
