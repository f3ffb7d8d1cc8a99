package ports

/*
ScriptStore defines the interface for reading and writing command scripts.
This is a driven port, typically implemented by a repository adapter.
*/
type ScriptStore interface {
	// ListScripts returns script names mapped to their number of command lines.
	ListScripts() (map[string]int, error)

	// GetScript returns the command lines of a script, comments and blanks removed.
	GetScript(name string) ([]string, error)

	/*
	   AppendLine appends a command line to a script, creating it if needed.
	   It returns true if the line was added, false if the script already
	   contains it, and an error if one occurred.
	*/
	AppendLine(name, line string) (bool, error)
}
