// Package textproc holds the pure text-processing core: whitespace
// normalization, sentence splitting and Spanish keyword extraction.
// Everything here is deterministic and total on any string input.
package textproc

import (
	"regexp"
	"strings"
)

var (
	horizontalRuns = regexp.MustCompile(`[ \t]+`)
	newlineRuns    = regexp.MustCompile(`\n{2,}`)
	newlinePads    = regexp.MustCompile(`[ \t]*\n[ \t]*`)
)

// Normalize collapses extracted text into a canonical form: carriage
// returns become spaces, runs of horizontal whitespace collapse to one
// space, runs of blank lines collapse to one newline, whitespace around
// newlines is trimmed, and so are both ends. Normalizing already
// normalized text is a no-op.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	text = horizontalRuns.ReplaceAllString(text, " ")
	text = newlineRuns.ReplaceAllString(text, "\n")
	text = newlinePads.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
