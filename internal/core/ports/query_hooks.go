package ports

import "github.com/AntonioJCosta/fakecmd/internal/core/domain/hook"

/*
QueryHooks are the three accessors a host engine calls while it executes a
fake client command. Outside a dispatch window every hook returns NoOverride.
*/
type QueryHooks interface {
	// Args returns the raw text of the active sub-command.
	Args() hook.Result[string]
	// Argv returns argument i. While active it always overrides, with "" when i is out of range.
	Argv(i int) hook.Result[string]
	// Argc returns the number of arguments of the active sub-command.
	Argc() hook.Result[int]
}
