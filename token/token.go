// Package token defines the closed set of construct kinds that events in
// the tokenizer's output stream can carry. The core dispatches on (Phase,
// Kind) pairs drawn from this set; everything outside it is a no-op by
// construction (see onEnter/onExit in compiler/dispatch.go).
package token

// Kind identifies the markdown construct an event's span belongs to.
type Kind uint8

const (
	Unknown Kind = iota

	// Containers and flow.
	BlockQuote
	BlockQuotePrefix
	Definition
	DefinitionLabelString
	DefinitionDestinationString
	DefinitionTitleString
	ListOrdered
	ListUnordered
	ListItem
	ListItemPrefix
	ListItemMarker
	ListItemValue
	Paragraph

	// Code.
	CodeIndented
	CodeFenced
	CodeFencedFence
	CodeFencedFenceInfo
	CodeFencedFenceMeta
	CodeFlowChunk
	CodeText
	CodeTextData

	// Headings.
	HeadingAtx
	HeadingAtxSequence
	HeadingAtxText
	HeadingSetextText
	HeadingSetextUnderline

	ThematicBreak

	// Inline emphasis.
	Emphasis
	Strong

	// Character data and escapes.
	Data
	CharacterEscapeValue
	CharacterReferenceMarker
	CharacterReferenceMarkerNumeric
	CharacterReferenceMarkerHexadecimal
	CharacterReferenceValue

	// Line structure.
	LineEnding
	BlankLineEnding
	SpaceOrTab
	HardBreakEscape
	HardBreakTrailing

	// Raw HTML.
	HtmlFlow
	HtmlFlowData
	HtmlText
	HtmlTextData

	// Autolinks.
	AutolinkEmail
	AutolinkProtocol

	// Links and images.
	Image
	Link
	Label
	LabelText
	Resource
	ResourceDestinationString
	ResourceTitleString
	ReferenceString
)

// String gives a short, stable name for diagnostics; it is not used for
// dispatch.
func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return "Unknown"
}

var names = map[Kind]string{
	BlockQuote:                           "BlockQuote",
	BlockQuotePrefix:                      "BlockQuotePrefix",
	Definition:                            "Definition",
	DefinitionLabelString:                 "DefinitionLabelString",
	DefinitionDestinationString:           "DefinitionDestinationString",
	DefinitionTitleString:                 "DefinitionTitleString",
	ListOrdered:                           "ListOrdered",
	ListUnordered:                         "ListUnordered",
	ListItem:                              "ListItem",
	ListItemPrefix:                        "ListItemPrefix",
	ListItemMarker:                        "ListItemMarker",
	ListItemValue:                         "ListItemValue",
	Paragraph:                             "Paragraph",
	CodeIndented:                          "CodeIndented",
	CodeFenced:                            "CodeFenced",
	CodeFencedFence:                       "CodeFencedFence",
	CodeFencedFenceInfo:                   "CodeFencedFenceInfo",
	CodeFencedFenceMeta:                   "CodeFencedFenceMeta",
	CodeFlowChunk:                         "CodeFlowChunk",
	CodeText:                              "CodeText",
	CodeTextData:                          "CodeTextData",
	HeadingAtx:                            "HeadingAtx",
	HeadingAtxSequence:                    "HeadingAtxSequence",
	HeadingAtxText:                        "HeadingAtxText",
	HeadingSetextText:                     "HeadingSetextText",
	HeadingSetextUnderline:                "HeadingSetextUnderline",
	ThematicBreak:                         "ThematicBreak",
	Emphasis:                              "Emphasis",
	Strong:                                "Strong",
	Data:                                  "Data",
	CharacterEscapeValue:                  "CharacterEscapeValue",
	CharacterReferenceMarker:              "CharacterReferenceMarker",
	CharacterReferenceMarkerNumeric:       "CharacterReferenceMarkerNumeric",
	CharacterReferenceMarkerHexadecimal:   "CharacterReferenceMarkerHexadecimal",
	CharacterReferenceValue:               "CharacterReferenceValue",
	LineEnding:                            "LineEnding",
	BlankLineEnding:                       "BlankLineEnding",
	SpaceOrTab:                            "SpaceOrTab",
	HardBreakEscape:                       "HardBreakEscape",
	HardBreakTrailing:                     "HardBreakTrailing",
	HtmlFlow:                              "HtmlFlow",
	HtmlFlowData:                          "HtmlFlowData",
	HtmlText:                              "HtmlText",
	HtmlTextData:                          "HtmlTextData",
	AutolinkEmail:                         "AutolinkEmail",
	AutolinkProtocol:                      "AutolinkProtocol",
	Image:                                 "Image",
	Link:                                  "Link",
	Label:                                 "Label",
	LabelText:                             "LabelText",
	Resource:                              "Resource",
	ResourceDestinationString:             "ResourceDestinationString",
	ResourceTitleString:                   "ResourceTitleString",
	ReferenceString:                       "ReferenceString",
}
