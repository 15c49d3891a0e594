package compiler

import "github.com/mdrender/htmlcore/source"

// Options is the closed configuration surface from spec §6.
type Options struct {
	// AllowDangerousHTML passes HTML flow/text data through unescaped when
	// true. Defense-in-depth stripping still happens in the CLI layer via
	// bluemonday; the core itself just stops HTML-encoding the bytes.
	AllowDangerousHTML bool
	// AllowDangerousProtocol disables the href/src scheme allow-lists.
	AllowDangerousProtocol bool
	// DefaultLineEnding is used when the input contains no line ending at
	// all for the compiler to infer from.
	DefaultLineEnding source.LineEnding
}
