package compiler

import (
	"strings"

	"github.com/mdrender/htmlcore/event"
	"github.com/mdrender/htmlcore/internal/encode"
	"github.com/mdrender/htmlcore/internal/sanitizeuri"
	"github.com/mdrender/htmlcore/source"
)

// media is the mutable record built up while compiling a link, image, or
// definition. It doubles as the definition record during the pre-pass, the
// same way the source's Media struct does.
type media struct {
	image       bool
	labelID     *string
	label       *string
	referenceID *string
	destination *string
	title       *string
}

// definition is the resolved {destination, title} pair a Definition
// compiles to, keyed by its normalized identifier.
type definition struct {
	destination *string
	title       *string
}

// context is the single-threaded, process-local compilation state spec §3
// describes. It lives for exactly one Compile call.
type context struct {
	// Static views, borrowed from the caller for the lifetime of the call.
	events []event.Event
	codes  []source.Code
	index  int

	// Stacks.
	mediaStack []media
	definitions []namedDefinition
	tightStack  []bool
	buffers     []*strings.Builder

	// Influence flags.
	slurpOneLineEnding bool
	tags               bool
	ignoreEncode       bool
	lastWasTag         bool
	codeTextInside     bool

	// Per-construct scratch state.
	atxOpeningSequenceSize *int
	headingSetextBuffer    *string
	codeFlowSeenData       *bool
	codeFencedFencesCount  *int
	characterReferenceKind charRefKind
	expectFirstItem        *bool

	// Configuration.
	protocolHref      []string
	protocolSrc       []string
	lineEndingDefault source.LineEnding
	allowDangerousHTML bool
}

type namedDefinition struct {
	id  string
	def definition
}

type charRefKind uint8

const (
	charRefNone charRefKind = iota
	charRefNamed
	charRefDecimal
	charRefHexadecimal
)

func newContext(events []event.Event, codes []source.Code, opts Options, lineEnding source.LineEnding) *context {
	ctx := &context{
		events:            events,
		codes:             codes,
		tags:              true,
		lineEndingDefault: lineEnding,
		allowDangerousHTML: opts.AllowDangerousHTML,
	}
	ctx.buffers = append(ctx.buffers, &strings.Builder{})
	if !opts.AllowDangerousProtocol {
		ctx.protocolHref = sanitizeuri.SafeProtocolHref
		ctx.protocolSrc = sanitizeuri.SafeProtocolSrc
	}
	return ctx
}

// buffer pushes a fresh, empty output buffer onto the stack.
func (c *context) buffer() {
	c.buffers = append(c.buffers, &strings.Builder{})
}

// resume pops the top buffer and returns its accumulated text. It panics if
// the stack is already empty, the Go analogue of the source's
// `.expect("Cannot resume w/o buffer")`.
func (c *context) resume() string {
	n := len(c.buffers)
	if n == 0 {
		panic("compiler: resume called with no buffer on the stack")
	}
	top := c.buffers[n-1]
	c.buffers = c.buffers[:n-1]
	return top.String()
}

// bufTail returns the current (top) buffer without popping it.
func (c *context) bufTail() *strings.Builder {
	if len(c.buffers) == 0 {
		panic("compiler: at least one buffer should exist")
	}
	return c.buffers[len(c.buffers)-1]
}

// push appends value to the current buffer verbatim.
func (c *context) push(value string) {
	c.bufTail().WriteString(value)
	c.lastWasTag = false
}

// pushRaw appends value, HTML-encoding it unless ignoreEncode is set (used
// for destinations already percent-encoded, and for raw HTML passthrough).
func (c *context) pushRaw(value string) {
	if c.ignoreEncode {
		c.push(value)
	} else {
		c.push(encode.Encode(value))
	}
}

// tag appends value only while structural tags are allowed (suppressed
// inside an image's alt text), and records that the buffer now ends with a
// tag so a following construct doesn't inject a redundant line ending.
func (c *context) tag(value string) {
	if c.tags {
		c.bufTail().WriteString(value)
		c.lastWasTag = true
	}
}

// lineEnding appends the inferred/default line ending unconditionally.
func (c *context) lineEnding() {
	c.push(c.lineEndingDefault.String())
}

// lineEndingIfNeeded appends a line ending unless the current buffer is
// empty or already ends with one.
func (c *context) lineEndingIfNeeded() {
	s := c.bufTail().String()
	if s == "" {
		return
	}
	last := s[len(s)-1]
	if last == '\n' || last == '\r' {
		return
	}
	c.lineEnding()
}

// currentMedia returns a pointer to the innermost in-progress media record.
// It panics if the stack is empty, mirroring `.unwrap()` in the source on a
// media_stack access that the grammar guarantees is non-empty.
func (c *context) currentMedia() *media {
	if len(c.mediaStack) == 0 {
		panic("compiler: media_stack should not be empty here")
	}
	return &c.mediaStack[len(c.mediaStack)-1]
}

func (c *context) pushMedia(m media) {
	c.mediaStack = append(c.mediaStack, m)
}

func (c *context) popMedia() media {
	n := len(c.mediaStack)
	if n == 0 {
		panic("compiler: media_stack should not be empty here")
	}
	m := c.mediaStack[n-1]
	c.mediaStack = c.mediaStack[:n-1]
	return m
}

// lookupDefinition returns the first-registered definition for id, or nil.
func (c *context) lookupDefinition(id string) *definition {
	for i := range c.definitions {
		if c.definitions[i].id == id {
			return &c.definitions[i].def
		}
	}
	return nil
}

// addDefinition records a definition unless one with this identifier
// already exists — first definition wins (spec §3 invariant).
func (c *context) addDefinition(id string, def definition) {
	if c.lookupDefinition(id) != nil {
		return
	}
	c.definitions = append(c.definitions, namedDefinition{id: id, def: def})
}

// tightTop returns the tight/loose state of the innermost list context, or
// false (loose) if no list is open — matching `unwrap_or(&false)` in the
// source.
func (c *context) tightTop() bool {
	if len(c.tightStack) == 0 {
		return false
	}
	return c.tightStack[len(c.tightStack)-1]
}

func strPtr(s string) *string { return &s }
