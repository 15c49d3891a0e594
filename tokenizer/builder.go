package tokenizer

import (
	"github.com/mdrender/htmlcore/event"
	"github.com/mdrender/htmlcore/token"
)

// builder accumulates a flat, strictly-nested Enter/Exit event stream. It is
// the tokenizer-side counterpart of the compiler's buffer stack: every
// construct that can contain other constructs goes through open/close so
// nested emission stays balanced automatically.
type builder struct {
	events []event.Event
}

// leaf appends a self-contained Enter/Exit pair with no nested content, e.g.
// a Data run or a single line ending.
func (b *builder) leaf(kind token.Kind, start, end int) {
	b.events = append(b.events,
		event.Event{Phase: event.Enter, Kind: kind, Start: start, End: end},
		event.Event{Phase: event.Exit, Kind: kind, Start: start, End: end},
	)
}

// open appends an Enter event whose span isn't known yet and returns its
// index so a later close call can patch it in.
func (b *builder) open(kind token.Kind) int {
	idx := len(b.events)
	b.events = append(b.events, event.Event{Phase: event.Enter, Kind: kind})
	return idx
}

// close patches the Enter event at idx with its final span and appends the
// matching Exit event. Every compiler handler reads Start/End off whichever
// event it is currently positioned at, so both halves of a pair must carry
// the same span.
func (b *builder) close(idx int, kind token.Kind, start, end int) {
	b.events[idx].Start = start
	b.events[idx].End = end
	b.events = append(b.events, event.Event{Phase: event.Exit, Kind: kind, Start: start, End: end})
}

// nest is a convenience wrapper around open/close for the common case where
// the span is already known before the nested content is emitted.
func (b *builder) nest(kind token.Kind, start, end int, body func()) {
	idx := b.open(kind)
	body()
	b.close(idx, kind, start, end)
}
