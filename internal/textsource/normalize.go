package textsource

import "strings"

// Normalize makes text typeable in a single-line session: line breaks and
// tabs become spaces and surrounding whitespace is trimmed. Consecutive line
// breaks collapse into one space.
func Normalize(text string) string {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var b strings.Builder
	b.Grow(len(text))
	prevBreak := false
	for _, r := range text {
		switch r {
		case '\n', '\r':
			if !prevBreak {
				b.WriteRune(' ')
			}
			prevBreak = true
			continue
		case '\t':
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
		prevBreak = false
	}
	return strings.TrimSpace(b.String())
}

// Words splits text into whitespace-delimited words.
func Words(text string) []string {
	return strings.Fields(text)
}

// TrimFinalNewline drops a single trailing line terminator. Enter submits the
// session, so a terminator at the very end could never be typed.
func TrimFinalNewline(text string) string {
	if strings.HasSuffix(text, "\r\n") {
		return text[:len(text)-2]
	}
	return strings.TrimSuffix(text, "\n")
}
