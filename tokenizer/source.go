package tokenizer

import "github.com/mdrender/htmlcore/source"

// codesFromString converts raw text into the code-point view the compiler
// expects: line endings classified as single code points and a trailing EOF
// marker, matching the contract source.Code documents.
func codesFromString(input string) []source.Code {
	runes := []rune(input)
	codes := make([]source.Code, 0, len(runes)+1)

	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				codes = append(codes, source.Code{Kind: source.CRLF})
				i++
			} else {
				codes = append(codes, source.Code{Kind: source.CR})
			}
		case '\n':
			codes = append(codes, source.Code{Kind: source.LF})
		default:
			codes = append(codes, source.NewChar(runes[i]))
		}
	}

	codes = append(codes, source.Code{Kind: source.EOF})
	return codes
}

// line is one physical line of content, as a half-open code-point range,
// plus the index of the line-ending code point that terminates it (or -1 if
// the line runs to EOF with no terminator).
type line struct {
	start, end int
	endingAt   int
}

func (l line) empty() bool { return l.start == l.end }

// splitLines partitions codes (which must end with exactly one EOF code
// point) into physical lines.
func splitLines(codes []source.Code) []line {
	var lines []line
	start := 0

	for i := 0; i < len(codes); i++ {
		switch codes[i].Kind {
		case source.CR, source.LF, source.CRLF:
			lines = append(lines, line{start: start, end: i, endingAt: i})
			start = i + 1
		case source.EOF:
			if start < i {
				lines = append(lines, line{start: start, end: i, endingAt: -1})
			}
		}
	}

	return lines
}

// indentWidth counts the leading plain spaces of a line (tabs are left as
// ordinary characters; this tokenizer doesn't expand them).
func indentWidth(codes []source.Code, l line) int {
	n := 0
	for i := l.start; i < l.end && codes[i].Value == ' '; i++ {
		n++
	}
	return n
}

func sliceRunes(codes []source.Code, start, end int) []rune {
	out := make([]rune, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, codes[i].Value)
	}
	return out
}
