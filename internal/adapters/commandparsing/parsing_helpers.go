package commandparsing

import "strings"

func skipLeadingSpaces(s string) int {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return i
}

// trimSegment drops a single trailing newline and then surrounding whitespace.
func trimSegment(field string) string {
	field = strings.TrimSuffix(field, "\n")
	return strings.TrimSpace(field)
}
