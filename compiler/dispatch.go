package compiler

import "github.com/mdrender/htmlcore/token"

// onEnter handles an Enter event. It is a closed switch on token kind: any
// kind not listed here is a no-op, per spec §4.2.
func onEnter(c *context) {
	switch c.events[c.index].Kind {
	case token.CodeFencedFenceInfo, token.CodeFencedFenceMeta,
		token.DefinitionLabelString, token.DefinitionTitleString,
		token.HeadingAtxText, token.HeadingSetextText,
		token.Label, token.ReferenceString, token.ResourceTitleString:
		onEnterBuffer(c)

	case token.BlockQuote:
		onEnterBlockQuote(c)
	case token.CodeIndented:
		onEnterCodeIndented(c)
	case token.CodeFenced:
		onEnterCodeFenced(c)
	case token.CodeText:
		onEnterCodeText(c)
	case token.Definition:
		onEnterDefinition(c)
	case token.DefinitionDestinationString:
		onEnterDefinitionDestinationString(c)
	case token.Emphasis:
		onEnterEmphasis(c)
	case token.HtmlFlow:
		onEnterHTMLFlow(c)
	case token.HtmlText:
		onEnterHTMLText(c)
	case token.Image:
		onEnterImage(c)
	case token.Link:
		onEnterLink(c)
	case token.ListItemMarker:
		onEnterListItemMarker(c)
	case token.ListOrdered, token.ListUnordered:
		onEnterList(c)
	case token.Paragraph:
		onEnterParagraph(c)
	case token.Resource:
		onEnterResource(c)
	case token.ResourceDestinationString:
		onEnterResourceDestinationString(c)
	case token.Strong:
		onEnterStrong(c)
	}
}

// onExit handles an Exit event, likewise a closed switch.
func onExit(c *context) {
	switch c.events[c.index].Kind {
	case token.CodeFencedFenceMeta, token.Resource:
		onExitDrop(c)
	case token.CharacterEscapeValue, token.CodeTextData, token.Data:
		onExitData(c)

	case token.AutolinkEmail:
		onExitAutolinkEmail(c)
	case token.AutolinkProtocol:
		onExitAutolinkProtocol(c)
	case token.BlankLineEnding:
		onExitBlankLineEnding(c)
	case token.BlockQuote:
		onExitBlockQuote(c)
	case token.CharacterReferenceMarker:
		onExitCharacterReferenceMarker(c)
	case token.CharacterReferenceMarkerNumeric:
		onExitCharacterReferenceMarkerNumeric(c)
	case token.CharacterReferenceMarkerHexadecimal:
		onExitCharacterReferenceMarkerHexadecimal(c)
	case token.CharacterReferenceValue:
		onExitCharacterReferenceValue(c)
	case token.CodeFenced, token.CodeIndented:
		onExitCodeFlow(c)
	case token.CodeFencedFence:
		onExitCodeFencedFence(c)
	case token.CodeFencedFenceInfo:
		onExitCodeFencedFenceInfo(c)
	case token.CodeFlowChunk:
		onExitCodeFlowChunk(c)
	case token.CodeText:
		onExitCodeText(c)
	case token.Definition:
		onExitDefinition(c)
	case token.DefinitionDestinationString:
		onExitDefinitionDestinationString(c)
	case token.DefinitionLabelString:
		onExitDefinitionLabelString(c)
	case token.DefinitionTitleString:
		onExitDefinitionTitleString(c)
	case token.Emphasis:
		onExitEmphasis(c)
	case token.HardBreakEscape, token.HardBreakTrailing:
		onExitBreak(c)
	case token.HeadingAtx:
		onExitHeadingAtx(c)
	case token.HeadingAtxSequence:
		onExitHeadingAtxSequence(c)
	case token.HeadingAtxText:
		onExitHeadingAtxText(c)
	case token.HeadingSetextText:
		onExitHeadingSetextText(c)
	case token.HeadingSetextUnderline:
		onExitHeadingSetextUnderline(c)
	case token.HtmlFlow, token.HtmlText:
		onExitHTML(c)
	case token.HtmlFlowData, token.HtmlTextData:
		onExitHTMLData(c)
	case token.Image, token.Link:
		onExitMedia(c)
	case token.Label:
		onExitLabel(c)
	case token.LabelText:
		onExitLabelText(c)
	case token.LineEnding:
		onExitLineEnding(c)
	case token.ListOrdered, token.ListUnordered:
		onExitList(c)
	case token.ListItem:
		onExitListItem(c)
	case token.ListItemValue:
		onExitListItemValue(c)
	case token.Paragraph:
		onExitParagraph(c)
	case token.ReferenceString:
		onExitReferenceString(c)
	case token.ResourceDestinationString:
		onExitResourceDestinationString(c)
	case token.ResourceTitleString:
		onExitResourceTitleString(c)
	case token.Strong:
		onExitStrong(c)
	case token.ThematicBreak:
		onExitThematicBreak(c)
	}
}
