package formatting

import (
	"fmt"
	"regexp"

	"github.com/AntonioJCosta/fakecmd/internal/core/ports"
)

var placeholderPattern = regexp.MustCompile(`%[sd]`)

// PlaceholderFormatter implements a minimal sprintf for command templates.
type PlaceholderFormatter struct{}

// NewFormatter creates a new PlaceholderFormatter.
func NewFormatter() ports.CommandFormatter {
	return &PlaceholderFormatter{}
}

// Format replaces %s and %d left to right with the stringified args.
// Placeholders without a matching arg are left as written; extra args are ignored.
func (f *PlaceholderFormatter) Format(template string, args ...any) string {
	next := 0
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		if next >= len(args) {
			return match
		}
		v := fmt.Sprint(args[next])
		next++
		return v
	})
}
