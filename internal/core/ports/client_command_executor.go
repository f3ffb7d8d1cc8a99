package ports

import "github.com/AntonioJCosta/fakecmd/internal/core/domain/actor"

/*
ClientCommandExecutor is the external "execute client command" entry point.
It runs synchronously and pulls the command it should execute through hooks.
*/
type ClientCommandExecutor interface {
	ExecuteClientCommand(target actor.Actor, hooks QueryHooks) error
}
