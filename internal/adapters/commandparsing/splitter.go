package commandparsing

import (
	"strings"

	"github.com/AntonioJCosta/fakecmd/internal/core/ports"
)

// SemicolonSplitter splits a command batch into sub-commands.
type SemicolonSplitter struct{}

// NewSplitter creates a new SemicolonSplitter.
func NewSplitter() ports.BatchSplitter {
	return &SemicolonSplitter{}
}

/*
Split cuts batch at every ';' and returns the trimmed, non-empty segments.

The scan does not look at quotes, so `say "a;b"` yields `say "a` and `b"`.
The engine's command line behaves the same way and commands forwarded to it
must keep that behaviour.
*/
func (s *SemicolonSplitter) Split(batch string) []string {
	segments := []string{}
	for _, field := range strings.Split(batch, ";") {
		if segment := trimSegment(field); segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}
