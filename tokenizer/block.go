package tokenizer

import (
	"github.com/mdrender/htmlcore/source"
	"github.com/mdrender/htmlcore/token"
)

// tokenizeBlock consumes lines already stripped of any enclosing
// container's own prefix, emitting block-level events into b. It dispatches
// line-by-line the same way the compiler's own event switch does: the
// first matching construct wins.
func tokenizeBlock(b *builder, codes []source.Code, lines []line) {
	i := 0
	for i < len(lines) {
		l := lines[i]

		switch {
		case l.empty():
			emitBlankLine(b, l)
			i++

		case isThematicBreak(codes, l):
			b.leaf(token.ThematicBreak, l.start, l.end)
			emitLineEndingAfter(b, l)
			i++

		case atxLevel(codes, l) > 0:
			i = tokenizeATXHeading(b, codes, lines, i)

		case isFenceStart(codes, l):
			i = tokenizeFencedCode(b, codes, lines, i)

		case indentWidth(codes, l) >= 4:
			i = tokenizeIndentedCode(b, codes, lines, i)

		case isBlockQuoteStart(codes, l):
			i = tokenizeBlockQuote(b, codes, lines, i)

		case listMarker(codes, l) != nil:
			i = tokenizeList(b, codes, lines, i)

		case isDefinitionStart(codes, l):
			if next := tokenizeDefinition(b, codes, lines, i); next > i {
				i = next
			} else {
				i = tokenizeParagraph(b, codes, lines, i)
			}

		default:
			i = tokenizeParagraph(b, codes, lines, i)
		}
	}
}

func startsNewBlock(codes []source.Code, l line) bool {
	return isThematicBreak(codes, l) ||
		atxLevel(codes, l) > 0 ||
		isFenceStart(codes, l) ||
		indentWidth(codes, l) >= 4 ||
		isBlockQuoteStart(codes, l) ||
		listMarker(codes, l) != nil ||
		isDefinitionStart(codes, l)
}

func lineEndingSpan(l line) (int, int) {
	if l.endingAt >= 0 {
		return l.endingAt, l.endingAt + 1
	}
	return l.end, l.end
}

func emitBlankLine(b *builder, l line) {
	start, end := lineEndingSpan(l)
	b.leaf(token.BlankLineEnding, start, end)
}

func emitLineEndingAfter(b *builder, l line) {
	if l.endingAt < 0 {
		return
	}
	b.leaf(token.LineEnding, l.endingAt, l.endingAt+1)
}

func trimSpaces(codes []source.Code, start, end int) (int, int) {
	for start < end && codes[start].Value == ' ' {
		start++
	}
	for end > start && codes[end-1].Value == ' ' {
		end--
	}
	return start, end
}

// --- thematic breaks, ATX and setext headings ---

func isThematicBreak(codes []source.Code, l line) bool {
	var marker rune
	count := 0
	for i := l.start; i < l.end; i++ {
		v := codes[i].Value
		switch v {
		case ' ', '\t':
		case '-', '*', '_':
			if marker == 0 {
				marker = v
			} else if v != marker {
				return false
			}
			count++
		default:
			return false
		}
	}
	return count >= 3
}

func isSetextUnderline(codes []source.Code, l line) bool {
	if l.empty() {
		return false
	}
	i := l.start
	for i < l.end && codes[i].Value == ' ' {
		i++
	}
	if i >= l.end {
		return false
	}
	marker := codes[i].Value
	if marker != '-' && marker != '=' {
		return false
	}
	for ; i < l.end; i++ {
		v := codes[i].Value
		if v == ' ' {
			continue
		}
		if v != marker {
			return false
		}
	}
	return true
}

func atxLevel(codes []source.Code, l line) int {
	n := 0
	i := l.start
	for i < l.end && codes[i].Value == '#' {
		n++
		i++
	}
	if n == 0 || n > 6 {
		return 0
	}
	if i == l.end {
		return n
	}
	if codes[i].Value != ' ' && codes[i].Value != '\t' {
		return 0
	}
	return n
}

func tokenizeATXHeading(b *builder, codes []source.Code, lines []line, i int) int {
	l := lines[i]
	n := atxLevel(codes, l)
	seqStart, seqEnd := l.start, l.start+n

	textStart, textEnd := trimSpaces(codes, seqEnd, l.end)
	closing := textEnd
	for closing > textStart && codes[closing-1].Value == '#' {
		closing--
	}
	if closing < textEnd && (closing == textStart || codes[closing-1].Value == ' ' || codes[closing-1].Value == '\t') {
		textStart, textEnd = trimSpaces(codes, textStart, closing)
	}

	idx := b.open(token.HeadingAtx)
	b.leaf(token.HeadingAtxSequence, seqStart, seqEnd)
	if textEnd > textStart {
		tidx := b.open(token.HeadingAtxText)
		tokenizeInline(b, codes, textStart, textEnd)
		b.close(tidx, token.HeadingAtxText, textStart, textEnd)
	}
	b.close(idx, token.HeadingAtx, l.start, l.end)
	emitLineEndingAfter(b, l)
	return i + 1
}

func tokenizeParagraph(b *builder, codes []source.Code, lines []line, i int) int {
	start := i
	i++
	for i < len(lines) {
		if lines[i].empty() || startsNewBlock(codes, lines[i]) || isSetextUnderline(codes, lines[i]) {
			break
		}
		i++
	}

	if i < len(lines) && isSetextUnderline(codes, lines[i]) {
		emitSetextHeading(b, codes, lines[start:i], lines[i])
		return i + 1
	}

	emitParagraph(b, codes, lines[start:i])
	return i
}

func emitSetextHeading(b *builder, codes []source.Code, textLines []line, underline line) {
	start := textLines[0].start
	textEnd := textLines[len(textLines)-1].end

	idx := b.open(token.HeadingSetextText)
	for n, l := range textLines {
		tokenizeInline(b, codes, l.start, l.end)
		if n < len(textLines)-1 {
			emitLineEndingAfter(b, l)
		}
	}
	b.close(idx, token.HeadingSetextText, start, textEnd)
	emitLineEndingAfter(b, textLines[len(textLines)-1])

	b.leaf(token.HeadingSetextUnderline, underline.start, underline.end)
	emitLineEndingAfter(b, underline)
}

func emitParagraph(b *builder, codes []source.Code, ls []line) {
	if len(ls) == 0 {
		return
	}
	start, end := ls[0].start, ls[len(ls)-1].end

	idx := b.open(token.Paragraph)
	for n, l := range ls {
		last := n == len(ls)-1
		contentEnd := l.end

		if !last && contentEnd > l.start && codes[contentEnd-1].Value == '\\' {
			contentEnd--
			tokenizeInline(b, codes, l.start, contentEnd)
			b.leaf(token.HardBreakEscape, contentEnd, l.end)
		} else {
			textEnd := contentEnd
			spaces := 0
			for textEnd > l.start && codes[textEnd-1].Value == ' ' {
				textEnd--
				spaces++
			}
			if !last && spaces >= 2 {
				tokenizeInline(b, codes, l.start, textEnd)
				b.leaf(token.HardBreakTrailing, textEnd, contentEnd)
			} else {
				tokenizeInline(b, codes, l.start, contentEnd)
			}
		}

		if !last {
			emitLineEndingAfter(b, l)
		}
	}
	b.close(idx, token.Paragraph, start, end)
}

// --- fenced and indented code ---

type fence struct {
	char         rune
	length       int
	contentStart int
}

func isFenceStart(codes []source.Code, l line) bool {
	return fenceInfo(codes, l) != nil
}

func fenceInfo(codes []source.Code, l line) *fence {
	i, indent := l.start, 0
	for i < l.end && codes[i].Value == ' ' && indent < 4 {
		i++
		indent++
	}
	if i >= l.end {
		return nil
	}
	ch := codes[i].Value
	if ch != '`' && ch != '~' {
		return nil
	}
	start := i
	for i < l.end && codes[i].Value == ch {
		i++
	}
	length := i - start
	if length < 3 {
		return nil
	}
	if ch == '`' {
		for j := i; j < l.end; j++ {
			if codes[j].Value == '`' {
				return nil
			}
		}
	}
	return &fence{char: ch, length: length, contentStart: i}
}

func closingFence(codes []source.Code, l line, f *fence) bool {
	if l.empty() {
		return false
	}
	i, indent := l.start, 0
	for i < l.end && codes[i].Value == ' ' && indent < 4 {
		i++
		indent++
	}
	start := i
	for i < l.end && codes[i].Value == f.char {
		i++
	}
	if i-start < f.length {
		return false
	}
	for ; i < l.end; i++ {
		if codes[i].Value != ' ' {
			return false
		}
	}
	return true
}

func tokenizeFencedCode(b *builder, codes []source.Code, lines []line, i int) int {
	l := lines[i]
	f := fenceInfo(codes, l)
	start, end := l.start, l.end

	idx := b.open(token.CodeFenced)
	fidx := b.open(token.CodeFencedFence)
	infoStart, infoEnd := trimSpaces(codes, f.contentStart, l.end)
	if infoEnd > infoStart {
		iidx := b.open(token.CodeFencedFenceInfo)
		b.leaf(token.Data, infoStart, infoEnd)
		b.close(iidx, token.CodeFencedFenceInfo, infoStart, infoEnd)
	}
	b.close(fidx, token.CodeFencedFence, l.start, l.end)
	emitLineEndingAfter(b, l)
	i++

	for i < len(lines) {
		cur := lines[i]
		if closingFence(codes, cur, f) {
			b.leaf(token.CodeFencedFence, cur.start, cur.end)
			end = cur.end
			b.close(idx, token.CodeFenced, start, end)
			emitLineEndingAfter(b, cur)
			return i + 1
		}
		if !cur.empty() {
			b.leaf(token.CodeFlowChunk, cur.start, cur.end)
		}
		end = cur.end
		emitLineEndingAfter(b, cur)
		i++
	}

	b.close(idx, token.CodeFenced, start, end)
	return i
}

func tokenizeIndentedCode(b *builder, codes []source.Code, lines []line, i int) int {
	start := lines[i].start + 4
	end := lines[i].end
	idx := b.open(token.CodeIndented)

	for i < len(lines) {
		l := lines[i]
		if l.empty() {
			j := i
			for j < len(lines) && lines[j].empty() {
				j++
			}
			if j >= len(lines) || indentWidth(codes, lines[j]) < 4 {
				break
			}
			for ; i < j; i++ {
				emitLineEndingAfter(b, lines[i])
			}
			continue
		}
		if indentWidth(codes, l) < 4 {
			break
		}
		b.leaf(token.CodeFlowChunk, l.start+4, l.end)
		end = l.end
		emitLineEndingAfter(b, l)
		i++
	}

	b.close(idx, token.CodeIndented, start, end)
	return i
}

// --- block quotes ---

func isBlockQuoteStart(codes []source.Code, l line) bool {
	i, indent := l.start, 0
	for i < l.end && codes[i].Value == ' ' && indent < 4 {
		i++
		indent++
	}
	return i < l.end && codes[i].Value == '>'
}

func stripBlockQuotePrefix(codes []source.Code, l line) (line, int) {
	i, indent := l.start, 0
	for i < l.end && codes[i].Value == ' ' && indent < 4 {
		i++
		indent++
	}
	prefixEnd := i
	if i < l.end && codes[i].Value == '>' {
		i++
		prefixEnd = i
		if i < l.end && codes[i].Value == ' ' {
			i++
			prefixEnd = i
		}
	}
	return line{start: i, end: l.end, endingAt: l.endingAt}, prefixEnd
}

func tokenizeBlockQuote(b *builder, codes []source.Code, lines []line, i int) int {
	start := lines[i].start
	end := lines[i].end
	idx := b.open(token.BlockQuote)

	var inner []line
	for i < len(lines) {
		l := lines[i]
		if isBlockQuoteStart(codes, l) {
			stripped, prefixEnd := stripBlockQuotePrefix(codes, l)
			b.leaf(token.BlockQuotePrefix, l.start, prefixEnd)
			inner = append(inner, stripped)
		} else if !l.empty() && len(inner) > 0 && !startsNewBlock(codes, l) {
			inner = append(inner, l)
		} else {
			break
		}
		end = l.end
		i++
	}

	tokenizeBlock(b, codes, inner)
	b.close(idx, token.BlockQuote, start, end)
	return i
}

// --- lists ---

type marker struct {
	ordered                bool
	valueStart, valueEnd   int
	markerStart, markerEnd int
	contentStart           int
}

func listMarker(codes []source.Code, l line) *marker {
	i, indent := l.start, 0
	for i < l.end && codes[i].Value == ' ' && indent < 4 {
		i++
		indent++
	}
	if i >= l.end {
		return nil
	}

	v := codes[i].Value
	if v == '-' || v == '*' || v == '+' {
		markerStart := i
		i++
		if i < l.end && codes[i].Value != ' ' && codes[i].Value != '\t' {
			return nil
		}
		contentStart, _ := trimSpaces(codes, i, l.end)
		if contentStart == i && i < l.end {
			contentStart = i
		}
		return &marker{markerStart: markerStart, markerEnd: markerStart + 1, contentStart: contentStart}
	}

	if v >= '0' && v <= '9' {
		digStart := i
		for i < l.end && codes[i].Value >= '0' && codes[i].Value <= '9' {
			i++
		}
		digEnd := i
		if digEnd-digStart > 9 || i >= l.end || (codes[i].Value != '.' && codes[i].Value != ')') {
			return nil
		}
		markerStart := i
		i++
		if i < l.end && codes[i].Value != ' ' && codes[i].Value != '\t' {
			return nil
		}
		contentStart := i
		for contentStart < l.end && codes[contentStart].Value == ' ' {
			contentStart++
		}
		return &marker{
			ordered: true, valueStart: digStart, valueEnd: digEnd,
			markerStart: markerStart, markerEnd: markerStart + 1, contentStart: contentStart,
		}
	}

	return nil
}

func tokenizeList(b *builder, codes []source.Code, lines []line, i int) int {
	first := listMarker(codes, lines[i])
	kind := token.ListUnordered
	if first.ordered {
		kind = token.ListOrdered
	}
	start, end := lines[i].start, lines[i].end
	idx := b.open(kind)

	for i < len(lines) {
		m := listMarker(codes, lines[i])
		if m == nil || m.ordered != first.ordered {
			if lines[i].empty() {
				j := i
				for j < len(lines) && lines[j].empty() {
					j++
				}
				if j < len(lines) {
					if nm := listMarker(codes, lines[j]); nm != nil && nm.ordered == first.ordered {
						for ; i < j; i++ {
							emitBlankLine(b, lines[i])
						}
						continue
					}
				}
			}
			break
		}
		i, end = tokenizeListItem(b, codes, lines, i, m)
	}

	b.close(idx, kind, start, end)
	return i
}

func tokenizeListItem(b *builder, codes []source.Code, lines []line, i int, m *marker) (int, int) {
	l := lines[i]
	start := l.start
	idx := b.open(token.ListItem)

	pidx := b.open(token.ListItemPrefix)
	if m.ordered {
		b.leaf(token.ListItemValue, m.valueStart, m.valueEnd)
	}
	b.leaf(token.ListItemMarker, m.markerStart, m.markerEnd)
	if m.contentStart > m.markerEnd {
		b.leaf(token.SpaceOrTab, m.markerEnd, m.contentStart)
	}
	b.close(pidx, token.ListItemPrefix, l.start, m.contentStart)

	indent := m.contentStart - l.start
	inner := []line{{start: m.contentStart, end: l.end, endingAt: l.endingAt}}
	end := l.end
	i++

	for i < len(lines) {
		cur := lines[i]
		if cur.empty() {
			inner = append(inner, cur)
			end = cur.end
			i++
			continue
		}
		if listMarker(codes, cur) != nil {
			break
		}
		if indentWidth(codes, cur) < indent {
			break
		}
		inner = append(inner, line{start: cur.start + indent, end: cur.end, endingAt: cur.endingAt})
		end = cur.end
		i++
	}

	tokenizeBlock(b, codes, inner)
	b.close(idx, token.ListItem, start, end)
	return i, end
}

// --- link reference definitions ---

func isDefinitionStart(codes []source.Code, l line) bool {
	i, indent := l.start, 0
	for i < l.end && codes[i].Value == ' ' && indent < 4 {
		i++
		indent++
	}
	return i < l.end && codes[i].Value == '['
}

// tokenizeDefinition handles the common single-line form of a link
// reference definition. Definitions split across lines aren't recognized;
// they fall back to being tokenized as an ordinary paragraph.
func tokenizeDefinition(b *builder, codes []source.Code, lines []line, i int) int {
	l := lines[i]
	p, indent := l.start, 0
	for p < l.end && codes[p].Value == ' ' && indent < 4 {
		p++
		indent++
	}
	if p >= l.end || codes[p].Value != '[' {
		return i
	}
	p++
	labelStart := p
	for p < l.end && codes[p].Value != ']' {
		p++
	}
	if p >= l.end || p == labelStart {
		return i
	}
	labelEnd := p
	p++
	if p >= l.end || codes[p].Value != ':' {
		return i
	}
	p++
	for p < l.end && codes[p].Value == ' ' {
		p++
	}
	destStart := p
	for p < l.end && codes[p].Value != ' ' {
		p++
	}
	destEnd := p
	if destStart == destEnd {
		return i
	}
	for p < l.end && codes[p].Value == ' ' {
		p++
	}

	var titleStart, titleEnd int
	hasTitle := false
	if p < l.end && (codes[p].Value == '"' || codes[p].Value == '\'') {
		quote := codes[p].Value
		p++
		titleStart = p
		for p < l.end && codes[p].Value != quote {
			p++
		}
		if p < l.end {
			titleEnd = p
			hasTitle = true
		}
	}

	idx := b.open(token.Definition)
	lidx := b.open(token.DefinitionLabelString)
	b.close(lidx, token.DefinitionLabelString, labelStart, labelEnd)
	didx := b.open(token.DefinitionDestinationString)
	b.leaf(token.Data, destStart, destEnd)
	b.close(didx, token.DefinitionDestinationString, destStart, destEnd)
	if hasTitle {
		tidx := b.open(token.DefinitionTitleString)
		b.leaf(token.Data, titleStart, titleEnd)
		b.close(tidx, token.DefinitionTitleString, titleStart, titleEnd)
	}
	b.close(idx, token.Definition, l.start, l.end)
	emitLineEndingAfter(b, l)
	return i + 1
}
