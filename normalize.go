package doctext

import "strings"

// maxNewlines is the longest run of consecutive newlines Normalize keeps.
const maxNewlines = 2

// Normalize collapses every run of three or more newlines to two.
// Shorter runs and all other characters pass through unchanged.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	newlines := 0
	lastWasNewline := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\n' {
			newlines++
			if newlines <= maxNewlines {
				b.WriteByte(c)
			}
			lastWasNewline = true
			continue
		}
		if lastWasNewline {
			newlines = 0
			lastWasNewline = false
		}
		b.WriteByte(c)
	}

	return b.String()
}
