package tokenizer

import (
	"github.com/mdrender/htmlcore/source"
	"github.com/mdrender/htmlcore/token"
)

// tokenizeInline scans the single-line code range [start, end) for the
// inline constructs the compiler knows about, flushing runs of ordinary
// text as Data events in between.
func tokenizeInline(b *builder, codes []source.Code, start, end int) {
	i := start
	dataStart := start
	flush := func(upTo int) {
		if upTo > dataStart {
			b.leaf(token.Data, dataStart, upTo)
		}
	}

	for i < end {
		v := codes[i].Value
		switch {
		case v == '\\' && i+1 < end && isASCIIPunct(codes[i+1].Value):
			flush(i)
			b.leaf(token.CharacterEscapeValue, i+1, i+2)
			i += 2
			dataStart = i

		case v == '&':
			if j, ok := scanCharRef(codes, i, end); ok {
				flush(i)
				emitCharRef(b, codes, i, j)
				i = j
				dataStart = i
			} else {
				i++
			}

		case v == '`':
			if j, ok := scanCodeSpan(codes, i, end); ok {
				flush(i)
				emitCodeSpan(b, codes, i, j)
				i = j
				dataStart = i
			} else {
				i++
			}

		case v == '*' || v == '_':
			if j, strong, ok := scanEmphasis(codes, i, end); ok {
				flush(i)
				emitEmphasis(b, codes, i, j, strong)
				i = j
				dataStart = i
			} else {
				i++
			}

		case v == '<':
			if j, kind, ok := scanAutolinkOrHTML(codes, i, end); ok {
				flush(i)
				emitAutolinkOrHTML(b, codes, i, j, kind)
				i = j
				dataStart = i
			} else {
				i++
			}

		case v == '!' && i+1 < end && codes[i+1].Value == '[':
			if j, ok := scanLinkOrImage(codes, i+1, end); ok {
				flush(i)
				emitLinkOrImage(b, codes, i, j, true)
				i = j
				dataStart = i
			} else {
				i++
			}

		case v == '[':
			if j, ok := scanLinkOrImage(codes, i, end); ok {
				flush(i)
				emitLinkOrImage(b, codes, i, j, false)
				i = j
				dataStart = i
			} else {
				i++
			}

		default:
			i++
		}
	}

	flush(end)
}

func isASCIIPunct(r rune) bool {
	switch r {
	case '!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/',
		':', ';', '<', '=', '>', '?', '@', '[', '\\', ']', '^', '_', '`', '{', '|', '}', '~':
		return true
	}
	return false
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIILetterOrDigit(r rune) bool {
	return isASCIILetter(r) || (r >= '0' && r <= '9')
}

// --- character references ---

func scanCharRef(codes []source.Code, i, end int) (int, bool) {
	j := i + 1
	if j < end && codes[j].Value == '#' {
		j++
		hex := false
		if j < end && (codes[j].Value == 'x' || codes[j].Value == 'X') {
			hex = true
			j++
		}
		digStart := j
		for j < end && isDigitOrHex(codes[j].Value, hex) {
			j++
		}
		if j == digStart || j >= end || codes[j].Value != ';' {
			return 0, false
		}
		return j + 1, true
	}

	nameStart := j
	for j < end && isASCIILetterOrDigit(codes[j].Value) {
		j++
	}
	if j == nameStart || j >= end || codes[j].Value != ';' {
		return 0, false
	}
	return j + 1, true
}

func isDigitOrHex(r rune, hex bool) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	if !hex {
		return false
	}
	return (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func emitCharRef(b *builder, codes []source.Code, start, end int) {
	i := start + 1
	if i < end && codes[i].Value == '#' {
		i++
		if i < end && (codes[i].Value == 'x' || codes[i].Value == 'X') {
			i++
			b.leaf(token.CharacterReferenceMarkerHexadecimal, start, start+1)
			b.leaf(token.CharacterReferenceValue, i, end-1)
			return
		}
		b.leaf(token.CharacterReferenceMarkerNumeric, start, start+1)
		b.leaf(token.CharacterReferenceValue, i, end-1)
		return
	}
	b.leaf(token.CharacterReferenceMarker, start, start+1)
	b.leaf(token.CharacterReferenceValue, i, end-1)
}

// --- code spans ---

func scanCodeSpan(codes []source.Code, i, end int) (int, bool) {
	runStart := i
	for i < end && codes[i].Value == '`' {
		i++
	}
	n := i - runStart

	for i < end {
		if codes[i].Value == '`' {
			closeStart := i
			for i < end && codes[i].Value == '`' {
				i++
			}
			if i-closeStart == n {
				return i, true
			}
			continue
		}
		i++
	}
	return 0, false
}

func emitCodeSpan(b *builder, codes []source.Code, start, end int) {
	n := 0
	for start+n < end && codes[start+n].Value == '`' {
		n++
	}
	contentStart, contentEnd := start+n, end-n

	idx := b.open(token.CodeText)
	if contentEnd > contentStart {
		b.leaf(token.CodeTextData, contentStart, contentEnd)
	}
	b.close(idx, token.CodeText, start, end)
}

// --- emphasis and strong (simplified: no flanking-rule analysis) ---

func scanEmphasis(codes []source.Code, i, end int) (int, bool, bool) {
	marker := codes[i].Value
	runStart := i
	for i < end && codes[i].Value == marker {
		i++
	}
	n := i - runStart
	if n == 0 {
		return 0, false, false
	}
	strong := n >= 2
	width := 1
	if strong {
		width = 2
	}
	if i >= end || codes[i].Value == ' ' {
		return 0, false, false
	}

	j := i
	for j < end {
		if codes[j].Value == marker {
			closeStart := j
			for j < end && codes[j].Value == marker {
				j++
			}
			if j-closeStart >= width && codes[closeStart-1].Value != ' ' {
				return closeStart + width, strong, true
			}
			continue
		}
		j++
	}
	return 0, false, false
}

func emitEmphasis(b *builder, codes []source.Code, start, end int, strong bool) {
	width := 1
	kind := token.Emphasis
	if strong {
		width = 2
		kind = token.Strong
	}
	contentStart, contentEnd := start+width, end-width

	idx := b.open(kind)
	tokenizeInline(b, codes, contentStart, contentEnd)
	b.close(idx, kind, start, end)
}

// --- autolinks and raw inline HTML ---

type autolinkKind int

const (
	autolinkProtocol autolinkKind = iota
	autolinkEmail
	autolinkHTML
)

func scanAutolinkOrHTML(codes []source.Code, i, end int) (int, autolinkKind, bool) {
	j := i + 1
	contentStart := j
	for j < end && codes[j].Value != '>' && codes[j].Value != ' ' && codes[j].Value != '<' {
		j++
	}
	if j < end && codes[j].Value == '>' {
		content := sliceRunes(codes, contentStart, j)
		if looksLikeEmail(content) {
			return j + 1, autolinkEmail, true
		}
		if looksLikeURIScheme(content) {
			return j + 1, autolinkProtocol, true
		}
	}

	k := i + 1
	for k < end && codes[k].Value != '>' {
		k++
	}
	if k < end {
		return k + 1, autolinkHTML, true
	}
	return 0, autolinkHTML, false
}

func looksLikeEmail(r []rune) bool {
	at := -1
	for i, c := range r {
		if c == '@' {
			at = i
			break
		}
	}
	return at > 0 && at < len(r)-1
}

func looksLikeURIScheme(r []rune) bool {
	if len(r) == 0 || !isASCIILetter(r[0]) {
		return false
	}
	colon := -1
	for i, c := range r {
		if c == ':' {
			colon = i
			break
		}
		if !isASCIILetter(c) && !(c >= '0' && c <= '9') && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	return colon > 1
}

func emitAutolinkOrHTML(b *builder, codes []source.Code, start, end int, kind autolinkKind) {
	switch kind {
	case autolinkProtocol:
		b.leaf(token.AutolinkProtocol, start+1, end-1)
	case autolinkEmail:
		b.leaf(token.AutolinkEmail, start+1, end-1)
	default:
		idx := b.open(token.HtmlText)
		b.leaf(token.HtmlTextData, start, end)
		b.close(idx, token.HtmlText, start, end)
	}
}

// --- links and images ---

type mediaSpec struct {
	labelStart, labelEnd int
	kind                 int // 0 inline resource, 1 full/collapsed reference, 2 shortcut
	destStart, destEnd   int
	titleStart, titleEnd int
	hasTitle             bool
	refStart, refEnd     int
	end                  int
}

func parseLinkOrImage(codes []source.Code, bracketStart, end int) (*mediaSpec, bool) {
	i := bracketStart
	if i >= end || codes[i].Value != '[' {
		return nil, false
	}
	i++
	labelStart := i
	depth := 1
	labelEnd := -1
	for i < end {
		switch codes[i].Value {
		case '\\':
			i++
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				labelEnd = i
			}
		}
		if labelEnd >= 0 {
			break
		}
		i++
	}
	if labelEnd < 0 {
		return nil, false
	}
	i = labelEnd + 1

	spec := &mediaSpec{labelStart: labelStart, labelEnd: labelEnd}

	if i < end && codes[i].Value == '(' {
		i++
		for i < end && codes[i].Value == ' ' {
			i++
		}
		var destStart, destEnd int
		if i < end && codes[i].Value == '<' {
			i++
			destStart = i
			for i < end && codes[i].Value != '>' {
				i++
			}
			if i >= end {
				return nil, false
			}
			destEnd = i
			i++
		} else {
			destStart = i
			depth := 0
			for i < end && codes[i].Value != ' ' {
				if codes[i].Value == '(' {
					depth++
				} else if codes[i].Value == ')' {
					if depth == 0 {
						break
					}
					depth--
				}
				i++
			}
			destEnd = i
		}
		spec.destStart, spec.destEnd = destStart, destEnd

		for i < end && codes[i].Value == ' ' {
			i++
		}
		if i < end && (codes[i].Value == '"' || codes[i].Value == '\'') {
			quote := codes[i].Value
			i++
			titleStart := i
			for i < end && codes[i].Value != quote {
				i++
			}
			if i >= end {
				return nil, false
			}
			spec.titleStart, spec.titleEnd = titleStart, i
			spec.hasTitle = true
			i++
			for i < end && codes[i].Value == ' ' {
				i++
			}
		}
		if i >= end || codes[i].Value != ')' {
			return nil, false
		}
		i++
		spec.kind = 0
		spec.end = i
		return spec, true
	}

	if i < end && codes[i].Value == '[' {
		i++
		refStart := i
		for i < end && codes[i].Value != ']' {
			i++
		}
		if i >= end {
			return nil, false
		}
		spec.refStart, spec.refEnd = refStart, i
		i++
		spec.kind = 1
		spec.end = i
		return spec, true
	}

	spec.kind = 2
	spec.end = labelEnd + 1
	return spec, true
}

func scanLinkOrImage(codes []source.Code, bracketStart, end int) (int, bool) {
	spec, ok := parseLinkOrImage(codes, bracketStart, end)
	if !ok {
		return 0, false
	}
	return spec.end, true
}

func emitLinkOrImage(b *builder, codes []source.Code, start, constructEnd int, isImage bool) {
	bracketStart := start
	if isImage {
		bracketStart = start + 1
	}
	spec, ok := parseLinkOrImage(codes, bracketStart, constructEnd)
	if !ok {
		return
	}

	kind := token.Link
	if isImage {
		kind = token.Image
	}
	idx := b.open(kind)

	lidx := b.open(token.Label)
	tidx := b.open(token.LabelText)
	b.close(tidx, token.LabelText, spec.labelStart, spec.labelEnd)
	tokenizeInline(b, codes, spec.labelStart, spec.labelEnd)
	b.close(lidx, token.Label, bracketStart, spec.labelEnd+1)

	switch spec.kind {
	case 0:
		ridx := b.open(token.Resource)
		didx := b.open(token.ResourceDestinationString)
		b.leaf(token.Data, spec.destStart, spec.destEnd)
		b.close(didx, token.ResourceDestinationString, spec.destStart, spec.destEnd)
		if spec.hasTitle {
			ttidx := b.open(token.ResourceTitleString)
			b.leaf(token.Data, spec.titleStart, spec.titleEnd)
			b.close(ttidx, token.ResourceTitleString, spec.titleStart, spec.titleEnd)
		}
		b.close(ridx, token.Resource, bracketStart, constructEnd)
	case 1:
		refStart, refEnd := spec.refStart, spec.refEnd
		if refEnd == refStart {
			refStart, refEnd = spec.labelStart, spec.labelEnd
		}
		b.leaf(token.ReferenceString, refStart, refEnd)
	default:
		b.leaf(token.ReferenceString, spec.labelStart, spec.labelEnd)
	}

	b.close(idx, kind, start, constructEnd)
}
