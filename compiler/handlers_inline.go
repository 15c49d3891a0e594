package compiler

import (
	"fmt"

	"github.com/mdrender/htmlcore/event"
	"github.com/mdrender/htmlcore/internal/charref"
	"github.com/mdrender/htmlcore/internal/sanitizeuri"
)

func onEnterEmphasis(c *context) { c.tag("<em>") }
func onExitEmphasis(c *context)  { c.tag("</em>") }

func onEnterStrong(c *context) { c.tag("<strong>") }
func onExitStrong(c *context)  { c.tag("</strong>") }

func onEnterCodeText(c *context) {
	c.codeTextInside = true
	c.tag("<code>")
	c.buffer()
}

func onExitCodeText(c *context) {
	result := c.resume()
	trimmed := result

	runes := []rune(result)
	if len(runes) >= 2 && runes[0] == ' ' && runes[len(runes)-1] == ' ' {
		hasNonSpace := false
		for _, r := range runes[1 : len(runes)-1] {
			if r != ' ' {
				hasNonSpace = true
				break
			}
		}
		if hasNonSpace {
			trimmed = string(runes[1 : len(runes)-1])
		}
	}

	c.codeTextInside = false
	c.push(trimmed)
	c.tag("</code>")
}

func onExitLineEnding(c *context) {
	switch {
	case c.codeTextInside:
		c.push(" ")
	case c.slurpOneLineEnding:
		c.slurpOneLineEnding = false
	default:
		c.pushRaw(event.SerializeSpan(c.events, c.codes, c.index))
	}
}

func onExitBreak(c *context) {
	c.tag("<br />")
}

func onExitCharacterReferenceMarker(c *context) {
	c.characterReferenceKind = charRefNamed
}

func onExitCharacterReferenceMarkerNumeric(c *context) {
	c.characterReferenceKind = charRefDecimal
}

func onExitCharacterReferenceMarkerHexadecimal(c *context) {
	c.characterReferenceKind = charRefHexadecimal
}

func onExitCharacterReferenceValue(c *context) {
	kind := c.characterReferenceKind
	if kind == charRefNone {
		panic("compiler: character_reference_kind must be set")
	}
	c.characterReferenceKind = charRefNone

	ref := event.SerializeSpan(c.events, c.codes, c.index)

	var value string
	switch kind {
	case charRefDecimal:
		value = charref.DecodeNumeric(ref, 10)
	case charRefHexadecimal:
		value = charref.DecodeNumeric(ref, 16)
	default:
		value = charref.DecodeNamed(ref)
	}

	c.pushRaw(value)
}

func onEnterHTMLFlow(c *context) {
	c.lineEndingIfNeeded()
	if c.allowDangerousHTML {
		c.ignoreEncode = true
	}
}

func onEnterHTMLText(c *context) {
	if c.allowDangerousHTML {
		c.ignoreEncode = true
	}
}

// onExitHTML handles Exit of both HtmlFlow and HtmlText.
func onExitHTML(c *context) {
	c.ignoreEncode = false
}

// onExitHTMLData handles Exit of both HtmlFlowData and HtmlTextData.
func onExitHTMLData(c *context) {
	c.pushRaw(event.SerializeSpan(c.events, c.codes, c.index))
}

func onExitAutolinkEmail(c *context) {
	slice := event.SerializeSpan(c.events, c.codes, c.index)
	href := sanitizeuri.Sanitize("mailto:"+slice, c.protocolHref)
	c.tag(fmt.Sprintf(`<a href="%s">`, href))
	c.pushRaw(slice)
	c.tag("</a>")
}

func onExitAutolinkProtocol(c *context) {
	slice := event.SerializeSpan(c.events, c.codes, c.index)
	href := sanitizeuri.Sanitize(slice, c.protocolHref)
	c.tag(fmt.Sprintf(`<a href="%s">`, href))
	c.pushRaw(slice)
	c.tag("</a>")
}
