package label

import (
	"strings"
	"unicode"
)

// FormatFallback derives a display string from a machine token when no
// explicit label exists: every '_' or '-' becomes a space, and the first
// letter of each whitespace-delimited word is uppercased. Other letters
// are left untouched, so this is not full title-casing; internal
// capitals survive. Because a formatted string contains no '_' or '-',
// re-applying FormatFallback to its own output is a no-op.
//
//	FormatFallback("on_request_review") == "On Request Review"
//	FormatFallback("multi-word-kebab")  == "Multi Word Kebab"
func FormatFallback(token string) string {
	var b strings.Builder
	b.Grow(len(token))

	startOfWord := true
	for _, r := range token {
		switch {
		case r == '_' || r == '-':
			b.WriteRune(' ')
			startOfWord = true
		case unicode.IsSpace(r):
			b.WriteRune(r)
			startOfWord = true
		case startOfWord:
			b.WriteRune(unicode.ToUpper(r))
			startOfWord = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
