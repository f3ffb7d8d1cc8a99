/*
Package command defines the core domain entities for fake client commands.
*/
package command

/*
SubCommand is one semicolon-delimited segment of a command batch together
with its argument vector. Argv[0] is the command verb.
*/
type SubCommand struct {
	Text string
	Argv []string
}

// Verb returns the first argument, or "" when the argument vector is empty.
func (s SubCommand) Verb() string {
	if len(s.Argv) == 0 {
		return ""
	}
	return s.Argv[0]
}

/*
State is the observable fake-command state seen by the query hooks.
The zero value is the inactive form.
*/
type State struct {
	Active bool
	Text   string
	Argv   []string
}

// Argc returns the number of arguments in the state.
func (s State) Argc() int {
	return len(s.Argv)
}
