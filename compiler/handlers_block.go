package compiler

import (
	"fmt"
	"strconv"

	"github.com/mdrender/htmlcore/event"
)

// onEnterBuffer handles the family of constructs that simply accumulate
// their content into a fresh buffer, popped by a dedicated Exit handler.
func onEnterBuffer(c *context) {
	c.buffer()
}

func onEnterBlockQuote(c *context) {
	c.tightStack = append(c.tightStack, false)
	c.lineEndingIfNeeded()
	c.tag("<blockquote>")
}

func onExitBlockQuote(c *context) {
	c.popTight()
	c.lineEndingIfNeeded()
	c.slurpOneLineEnding = false
	c.tag("</blockquote>")
}

func (c *context) popTight() {
	if n := len(c.tightStack); n > 0 {
		c.tightStack = c.tightStack[:n-1]
	}
}

func onEnterCodeIndented(c *context) {
	seen := false
	c.codeFlowSeenData = &seen
	c.lineEndingIfNeeded()
	c.tag("<pre><code>")
}

func onEnterCodeFenced(c *context) {
	seen := false
	c.codeFlowSeenData = &seen
	c.lineEndingIfNeeded()
	// No `>` yet; CodeFencedFenceInfo may still add a class attribute.
	c.tag("<pre><code")
	count := 0
	c.codeFencedFencesCount = &count
}

func onExitCodeFencedFence(c *context) {
	count := 0
	if c.codeFencedFencesCount != nil {
		count = *c.codeFencedFencesCount
	}

	if count == 0 {
		c.tag(">")
		c.slurpOneLineEnding = true
	}

	count++
	c.codeFencedFencesCount = &count
}

func onExitCodeFencedFenceInfo(c *context) {
	value := c.resume()
	c.tag(fmt.Sprintf(" class=\"language-%s\"", value))
}

func onExitCodeFlowChunk(c *context) {
	seen := true
	c.codeFlowSeenData = &seen
	c.pushRaw(event.SerializeSpan(c.events, c.codes, c.index))
}

// onExitCodeFlow handles Exit of both CodeFenced and CodeIndented.
func onExitCodeFlow(c *context) {
	if c.codeFlowSeenData == nil {
		panic("compiler: code_flow_seen_data must be defined")
	}
	seenData := *c.codeFlowSeenData
	c.codeFlowSeenData = nil

	// An unterminated fenced code block inside a container: CommonMark
	// wants the line ending that follows it treated as part of the code.
	if c.codeFencedFencesCount != nil {
		count := *c.codeFencedFencesCount
		if count == 1 && len(c.tightStack) > 0 && !c.lastWasTag {
			c.lineEnding()
		}
	}

	if seenData {
		c.lineEndingIfNeeded()
	}

	c.tag("</code></pre>")

	if c.codeFencedFencesCount != nil {
		count := *c.codeFencedFencesCount
		c.codeFencedFencesCount = nil
		if count < 2 {
			c.lineEndingIfNeeded()
		}
	}

	c.slurpOneLineEnding = false
}

func onEnterParagraph(c *context) {
	if !c.tightTop() {
		c.lineEndingIfNeeded()
		c.tag("<p>")
	}
}

func onExitParagraph(c *context) {
	if c.tightTop() {
		c.slurpOneLineEnding = true
	} else {
		c.tag("</p>")
	}
}

func onExitHeadingAtxSequence(c *context) {
	if c.atxOpeningSequenceSize != nil {
		return
	}
	size := len(event.SerializeSpan(c.events, c.codes, c.index))
	c.lineEndingIfNeeded()
	c.atxOpeningSequenceSize = &size
	c.tag(fmt.Sprintf("<h%d>", size))
}

func onExitHeadingAtxText(c *context) {
	value := c.resume()
	c.push(value)
}

func onExitHeadingAtx(c *context) {
	if c.atxOpeningSequenceSize == nil {
		panic("compiler: atx_opening_sequence_size must be set in headings")
	}
	rank := *c.atxOpeningSequenceSize
	c.atxOpeningSequenceSize = nil
	c.tag(fmt.Sprintf("</h%d>", rank))
}

func onExitHeadingSetextText(c *context) {
	buf := c.resume()
	c.headingSetextBuffer = &buf
	c.slurpOneLineEnding = true
}

func onExitHeadingSetextUnderline(c *context) {
	if c.headingSetextBuffer == nil {
		panic("compiler: heading_setext_buffer must be set in setext headings")
	}
	text := *c.headingSetextBuffer
	c.headingSetextBuffer = nil

	start, _ := event.Span(c.events, c.index)
	head := c.codes[start]
	level := 1
	if head.Value == '-' {
		level = 2
	}

	c.lineEndingIfNeeded()
	c.tag(fmt.Sprintf("<h%d>", level))
	c.push(text)
	c.tag(fmt.Sprintf("</h%d>", level))
}

func onExitThematicBreak(c *context) {
	c.lineEndingIfNeeded()
	c.tag("<hr />")
}

func onExitBlankLineEnding(c *context) {
	if c.index == len(c.events)-1 {
		c.lineEndingIfNeeded()
	}
}

// onExitDrop pops a buffer and discards it.
func onExitDrop(c *context) {
	c.resume()
}

// onExitData handles Data, CodeTextData, and CharacterEscapeValue: push the
// raw span text, HTML-encoded.
func onExitData(c *context) {
	c.pushRaw(event.SerializeSpan(c.events, c.codes, c.index))
}

func onExitListItemValue(c *context) {
	if c.expectFirstItem == nil {
		panic("compiler: expect_first_item must be set before a list item value")
	}
	if !*c.expectFirstItem {
		return
	}

	slice := event.SerializeSpan(c.events, c.codes, c.index)
	value, err := strconv.ParseUint(slice, 10, 32)
	if err != nil {
		return
	}

	if value != 1 {
		c.tag(" start=\"")
		c.tag(strconv.FormatUint(value, 10))
		c.tag("\"")
	}
}
