// Package eventutil holds small helpers shared by the compiler's
// lookahead/lookbehind handlers, grounded on markdown-rs's `skip` module.
package eventutil

import (
	"github.com/mdrender/htmlcore/event"
	"github.com/mdrender/htmlcore/token"
)

// SkipBack walks backward from index, skipping over any event whose Kind is
// in kinds, and returns the index of the first event that isn't. It is the
// Go port of markdown-rs's `skip::opt_back`, used by the list tight/loose
// scan and by on_exit_list_item to find the construct immediately
// preceding the current position.
func SkipBack(events []event.Event, index int, kinds []token.Kind) int {
	for index >= 0 && containsKind(kinds, events[index].Kind) {
		index--
	}
	return index
}

// KindAt returns the Kind of the event at index, or token.Unknown if index
// is out of range. Backward scans over the start of the stream legitimately
// run off the front (e.g. a list that opens the document), and
// token.Unknown never matches any of the sentinel kinds callers compare
// against.
func KindAt(events []event.Event, index int) token.Kind {
	if index < 0 || index >= len(events) {
		return token.Unknown
	}
	return events[index].Kind
}

func containsKind(kinds []token.Kind, k token.Kind) bool {
	for _, v := range kinds {
		if v == k {
			return true
		}
	}
	return false
}
