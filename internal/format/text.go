package format

import (
	"strings"
	"unicode"
)

// SanitizeText makes untrusted text safe for a terminal cell: control and
// escape characters are dropped and runs of whitespace collapse to one space.
func SanitizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			if !space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = true
		case unicode.IsControl(r), r == unicode.ReplacementChar:
			continue
		default:
			b.WriteRune(r)
			space = false
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// TagLabel renders a tag as literal text prefixed with '#'.
func TagLabel(tag string) string {
	return "#" + SanitizeText(tag)
}
