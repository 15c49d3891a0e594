package compiler

import (
	"github.com/mdrender/htmlcore/event"
	"github.com/mdrender/htmlcore/internal/eventutil"
	"github.com/mdrender/htmlcore/token"
)

// onEnterList performs the forward tight/loose scan described in spec
// §4.2 "List handling (tight/loose analysis)" starting from the list's own
// Enter event, then emits the opening (unclosed) `<ol`/`<ul` tag.
func onEnterList(c *context) {
	events := c.events
	index := c.index
	kind := events[index].Kind
	balance := 0
	loose := false

	for index < len(events) {
		e := events[index]

		if e.Phase == event.Enter {
			balance++
		} else {
			balance--

			if balance < 3 && e.Kind == token.BlankLineEnding {
				atMarker := balance == 2 &&
					eventutil.KindAt(events, eventutil.SkipBack(events, index-2, []token.Kind{token.BlankLineEnding, token.SpaceOrTab})) == token.ListItemPrefix
				atListItem := balance == 1 && eventutil.KindAt(events, index-2) == token.ListItem
				atEmptyListItem := false
				if atListItem {
					beforeItem := eventutil.SkipBack(events, index-2, []token.Kind{token.ListItem})
					beforePrefix := eventutil.SkipBack(events, index-3, []token.Kind{token.ListItemPrefix, token.SpaceOrTab})
					atEmptyListItem = beforeItem+1 == beforePrefix
				}

				if !atMarker && !atListItem && !atEmptyListItem {
					loose = true
					break
				}
			}

			if balance == 0 && e.Kind == kind {
				break
			}
		}

		index++
	}

	c.tightStack = append(c.tightStack, !loose)
	c.lineEndingIfNeeded()
	if kind == token.ListOrdered {
		c.tag("<ol")
	} else {
		c.tag("<ul")
	}
	expect := true
	c.expectFirstItem = &expect
}

func onExitList(c *context) {
	tagName := "ul"
	if c.events[c.index].Kind == token.ListOrdered {
		tagName = "ol"
	}
	c.popTight()
	c.lineEnding()
	c.tag("</" + tagName + ">")
}

func onEnterListItemMarker(c *context) {
	if c.expectFirstItem == nil {
		panic("compiler: expect_first_item must be set before a list item marker")
	}
	expectFirstItem := *c.expectFirstItem

	if expectFirstItem {
		c.tag(">")
	}

	c.lineEndingIfNeeded()
	c.tag("<li>")
	notFirst := false
	c.expectFirstItem = &notFirst
	// Prevents a line ending from showing up if the item turns out empty.
	c.lastWasTag = false
}

func onExitListItem(c *context) {
	tight := c.tightTop()
	beforeItem := eventutil.SkipBack(c.events, c.index-1, []token.Kind{
		token.BlankLineEnding, token.LineEnding, token.SpaceOrTab, token.BlockQuotePrefix,
	})
	previousKind := eventutil.KindAt(c.events, beforeItem)
	tightParagraph := tight && previousKind == token.Paragraph
	emptyItem := previousKind == token.ListItemPrefix

	c.slurpOneLineEnding = false

	if !tightParagraph && !emptyItem {
		c.lineEndingIfNeeded()
	}

	c.tag("</li>")
}
