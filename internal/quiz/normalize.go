package quiz

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes text before embedding or comparison: Unicode NFC,
// lowercase, trimmed, inner whitespace collapsed to single spaces. Two
// superficially different renderings of the same question normalize to the
// same string.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}
