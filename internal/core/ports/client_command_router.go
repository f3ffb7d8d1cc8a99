package ports

import (
	"io"

	"github.com/AntonioJCosta/fakecmd/internal/core/domain/actor"
)

// Invocation is a client command as seen by the handlers behind the engine.
type Invocation struct {
	Actor   actor.Actor
	Verb    string
	Args    []string // arguments after the verb
	Text    string   // raw args text as returned by the args hook
	Console io.Writer
}

/*
ClientCommandRouter routes an invocation to the handlers registered for its verb.
It returns true if a handler claimed the command.
*/
type ClientCommandRouter interface {
	Handle(inv Invocation) (bool, error)
}
