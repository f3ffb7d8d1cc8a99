package commandparsing

import (
	"strings"

	"github.com/AntonioJCosta/fakecmd/internal/core/ports"
)

// QuoteTokenizer splits a sub-command into arguments the way the engine's
// own client command parser does: spaces separate, double quotes group.
type QuoteTokenizer struct{}

// NewTokenizer creates a new QuoteTokenizer.
func NewTokenizer() ports.Tokenizer {
	return &QuoteTokenizer{}
}

/*
Tokenize breaks a sub-command into its argument vector.

Only the ASCII space separates arguments; a double quote toggles quoting and
is never part of an argument. An unterminated quote extends to the end of
the input. Semicolons carry no meaning here.
*/
func (t *QuoteTokenizer) Tokenize(subCommand string) []string {
	args := []string{}
	var current strings.Builder
	inQuotes := false

	i := skipLeadingSpaces(subCommand)
	for ; i < len(subCommand); i++ {
		c := subCommand[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case c == ' ' && !inQuotes:
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteByte(c)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}
