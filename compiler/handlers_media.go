package compiler

import (
	"fmt"

	"github.com/mdrender/htmlcore/event"
	"github.com/mdrender/htmlcore/internal/encode"
	"github.com/mdrender/htmlcore/internal/normalize"
	"github.com/mdrender/htmlcore/internal/sanitizeuri"
)

func onEnterImage(c *context) {
	c.pushMedia(media{image: true})
	c.tags = false // Suppress nested <a> tags inside alt text.
}

func onEnterLink(c *context) {
	c.pushMedia(media{})
}

func onEnterDefinition(c *context) {
	c.buffer()
	c.pushMedia(media{})
}

func onEnterDefinitionDestinationString(c *context) {
	c.buffer()
	c.ignoreEncode = true
}

func onEnterResource(c *context) {
	c.buffer() // A resource can span line endings; those are discarded here.
	empty := ""
	c.currentMedia().destination = &empty
}

func onEnterResourceDestinationString(c *context) {
	c.buffer()
	// Left raw: the URL is percent-encoded by Sanitize and HTML-encoded on
	// final emission; encoding now would double-escape it.
	c.ignoreEncode = true
}

func onExitLabel(c *context) {
	buf := c.resume()
	c.currentMedia().label = &buf
}

func onExitLabelText(c *context) {
	c.currentMedia().labelID = strPtr(event.SerializeSpan(c.events, c.codes, c.index))
}

func onExitReferenceString(c *context) {
	c.resume() // The rendered buffer is discarded; only the raw span matters.
	c.currentMedia().referenceID = strPtr(event.SerializeSpan(c.events, c.codes, c.index))
}

func onExitResourceDestinationString(c *context) {
	buf := c.resume()
	c.currentMedia().destination = &buf
	c.ignoreEncode = false
}

func onExitResourceTitleString(c *context) {
	buf := c.resume()
	c.currentMedia().title = &buf
}

func onExitDefinitionLabelString(c *context) {
	c.resume() // Discarded; the identifier comes from the raw source span.
	c.currentMedia().referenceID = strPtr(event.SerializeSpan(c.events, c.codes, c.index))
}

func onExitDefinitionDestinationString(c *context) {
	buf := c.resume()
	c.currentMedia().destination = &buf
	c.ignoreEncode = false
}

func onExitDefinitionTitleString(c *context) {
	buf := c.resume()
	c.currentMedia().title = &buf
}

func onExitDefinition(c *context) {
	def := c.popMedia()
	if def.referenceID == nil {
		panic("compiler: a definition must have a reference id")
	}
	id := normalize.Identifier(*def.referenceID)
	c.resume() // The outer buffer definitions compile into is discarded.
	c.addDefinition(id, definition{destination: def.destination, title: def.title})
}

// onExitMedia handles Exit of both Image and Link (on_exit_media in the
// source). It resolves the media's identifier against the definitions
// table, applies the "media's own destination wins, else the definition's"
// rule (see DESIGN.md Open Question 1), and emits the final tag.
func onExitMedia(c *context) {
	isInImage := false
	for i := 0; i < len(c.mediaStack)-1; i++ {
		if c.mediaStack[i].image {
			isInImage = true
			break
		}
	}
	c.tags = !isInImage

	m := c.popMedia()

	var id *string
	if m.referenceID != nil {
		id = m.referenceID
	} else {
		id = m.labelID
	}

	var def *definition
	if id != nil {
		def = c.lookupDefinition(normalize.Identifier(*id))
	}

	if m.destination == nil && def == nil {
		// Unresolved reference: no inline resource and no matching
		// definition. CommonMark requires falling back to the construct's
		// literal source text rather than emitting a tag with an empty
		// href/src.
		c.pushRaw(event.SerializeSpan(c.events, c.codes, c.index))
		return
	}

	var destination, title *string
	if m.destination != nil {
		destination, title = m.destination, m.title
	} else {
		destination, title = def.destination, def.title
	}

	dest := ""
	if destination != nil {
		dest = *destination
	}

	titleAttr := ""
	if title != nil {
		titleAttr = fmt.Sprintf(` title="%s"`, *title)
	}

	label := ""
	if m.label != nil {
		label = *m.label
	}

	if m.image {
		c.tag(fmt.Sprintf(`<img src="%s" alt="`, encode.Encode(sanitizeuri.Sanitize(dest, c.protocolSrc))))
		c.push(label)
		c.tag(fmt.Sprintf(`"%s />`, titleAttr))
	} else {
		c.tag(fmt.Sprintf(`<a href="%s"%s>`, encode.Encode(sanitizeuri.Sanitize(dest, c.protocolHref)), titleAttr))
		c.push(label)
		c.tag("</a>")
	}
}
