package strings

import (
	"strings"
)

// DefaultValueMaxLen is the default maximum length of a value shown in a
// table cell.
const DefaultValueMaxLen = 60

// MinTruncateLen is the minimum maxLen value for TruncateValue.
// Values smaller than this would not leave room for meaningful content plus "...".
const MinTruncateLen = 4

// TruncateValue truncates s to maxLen runes and ensures single-line output.
// Runs of whitespace, including newlines, collapse to a single space, and
// "..." marks a truncation.
//
// If maxLen is less than MinTruncateLen (4), it is clamped to MinTruncateLen.
func TruncateValue(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}
