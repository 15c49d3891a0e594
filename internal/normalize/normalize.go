// Package normalize implements the normalize_identifier contract from spec
// §6: case-fold, collapse whitespace runs, and trim, so that `[Foo Bar]`
// and `[foo   bar]` address the same definition.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// folder performs full Unicode case folding, the same family of
// text-transform utilities from golang.org/x/text the teacher reaches for
// elsewhere (ui/markdown.go chains golang.org/x/text/unicode/norm and
// golang.org/x/text/runes for its own identifier-ish normalization step).
var folder = cases.Fold()

// Identifier normalizes a link/definition label for comparison: Unicode
// case-folds it, collapses every run of whitespace (including the virtual
// spaces and line endings a multi-line label can contain once serialized)
// to a single ASCII space, and trims the result.
func Identifier(s string) string {
	fields := strings.Fields(s)
	collapsed := strings.Join(fields, " ")
	return folder.String(collapsed)
}
