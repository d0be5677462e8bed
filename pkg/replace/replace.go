// Package replace rewrites matched spans of a document and recomputes the
// caller's cursor position. Replacement is done by walking the match list
// over the original text instead of engine-level whole-string substitution:
// the engine route risks non-termination on zero-width-match patterns and
// offers no hook for cursor tracking.
package replace

import (
	"strings"

	"github.com/walteh/textscan/pkg/scan"
)

// Result contains the rewritten text and the adjusted cursor position.
type Result struct {
	// Text is the document after all replacements
	Text string

	// Cursor is the cursor position carried along with the edits,
	// always within [0, len(Text)]
	Cursor int

	// ReplacementCount is the number of spans replaced
	ReplacementCount int
}

// Replace substitutes replacement for every match in text and returns the new
// text together with the cursor position as if the cursor had ridden along
// with the edits before it. The matches must be non-overlapping and sorted
// ascending by start, which is what the scanners produce; behavior is
// unspecified otherwise. replacement is inserted verbatim, backreferences
// like $1 are not interpreted.
func Replace(text, replacement string, matches []scan.Match, cursor int) Result {
	if len(matches) == 0 {
		return Result{Text: text, Cursor: cursor}
	}

	var b strings.Builder
	b.Grow(len(text) + len(replacement)*len(matches))

	currentOffset := 0
	position := cursor
	for _, m := range matches {
		b.WriteString(text[currentOffset:m.Start])
		currentOffset = m.Start

		// Every replacement starting before the cursor shifts it by the
		// length difference.
		if currentOffset < cursor {
			position += len(replacement) - m.Len()
		}

		b.WriteString(replacement)
		currentOffset = m.End
	}
	b.WriteString(text[currentOffset:])

	out := b.String()
	if position < 0 {
		position = 0
	}
	if position > len(out) {
		position = len(out)
	}

	return Result{
		Text:             out,
		Cursor:           position,
		ReplacementCount: len(matches),
	}
}
