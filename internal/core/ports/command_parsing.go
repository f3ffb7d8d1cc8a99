package ports

/*
Tokenizer defines the contract for splitting one sub-command into its
argument vector. This is a driven port, representing a domain capability.
*/
type Tokenizer interface {
	Tokenize(subCommand string) []string
}

/*
BatchSplitter defines the contract for splitting a command batch into its
trimmed, non-empty sub-command segments.
*/
type BatchSplitter interface {
	Split(batch string) []string
}

// CommandFormatter substitutes %s/%d placeholders in a command template.
type CommandFormatter interface {
	Format(template string, args ...any) string
}
