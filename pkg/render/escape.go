package render

import (
	"io"
	"strings"
)

// specialChars are the only characters Escape replaces.
const specialChars = `<>&"'`

// Escape makes s safe to place in element content or in a double-quoted
// attribute value. Exactly five characters are replaced; everything else,
// including existing entities, passes through unchanged. The same routine
// is used for tag names, attribute names, attribute values and text.
func Escape(s string) string {
	if !strings.ContainsAny(s, specialChars) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/8)
	_ = EscapeTo(&b, s)
	return b.String()
}

// EscapeTo writes the escaped form of s to w.
func EscapeTo(w io.Writer, s string) error {
	start := 0
	for i := 0; i < len(s); i++ {
		var entity string
		switch s[i] {
		case '<':
			entity = "&lt;"
		case '>':
			entity = "&gt;"
		case '&':
			entity = "&amp;"
		case '"':
			entity = "&quot;"
		case '\'':
			entity = "&#x27;"
		default:
			continue
		}
		if start < i {
			if _, err := io.WriteString(w, s[start:i]); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, entity); err != nil {
			return err
		}
		start = i + 1
	}
	if start < len(s) {
		_, err := io.WriteString(w, s[start:])
		return err
	}
	return nil
}
