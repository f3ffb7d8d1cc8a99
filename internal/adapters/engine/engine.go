package engine

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/AntonioJCosta/fakecmd/internal/core/domain/actor"
	"github.com/AntonioJCosta/fakecmd/internal/core/ports"
)

/*
SimulatedEngine implements ports.ClientCommandExecutor the way a host engine
does: it does not receive the command text, it pulls argc, argv and args
through the query hooks and then routes the verb to the client command handlers.
*/
type SimulatedEngine struct {
	router  ports.ClientCommandRouter
	console io.Writer
	logger  *slog.Logger
}

// NewSimulatedEngine creates a new SimulatedEngine writing client output to console.
// It panics if router is nil.
func NewSimulatedEngine(router ports.ClientCommandRouter, console io.Writer, logger *slog.Logger) *SimulatedEngine {
	if router == nil {
		panic("router cannot be nil")
	}
	if console == nil {
		console = io.Discard
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SimulatedEngine{router: router, console: console, logger: logger}
}

// ExecuteClientCommand implements the ports.ClientCommandExecutor interface.
func (e *SimulatedEngine) ExecuteClientCommand(target actor.Actor, hooks ports.QueryHooks) error {
	inv, ok := e.readCommand(target, hooks)
	if !ok {
		e.logger.Debug("client command with no arguments", slog.String("actor", target.Name))
		return nil
	}

	handled, err := e.router.Handle(inv)
	if err != nil {
		return fmt.Errorf("client command %q for %s: %w", inv.Verb, target.Name, err)
	}
	if !handled {
		e.logger.Info("unknown command", slog.String("actor", target.Name), slog.String("command", inv.Verb))
		fmt.Fprintf(inv.Console, "Unknown command \"%s\"\n", inv.Verb)
	}
	return nil
}

// readCommand queries the hooks like the engine's Cmd_Argc/Cmd_Argv/Cmd_Args.
// Without an override the native command buffer is used, which is always empty here.
func (e *SimulatedEngine) readCommand(target actor.Actor, hooks ports.QueryHooks) (ports.Invocation, bool) {
	argc := hooks.Argc().Or(0)
	if argc <= 0 {
		return ports.Invocation{}, false
	}
	argv := make([]string, argc)
	for i := range argv {
		argv[i] = hooks.Argv(i).Or("")
	}
	return ports.Invocation{
		Actor:   target,
		Verb:    argv[0],
		Args:    argv[1:],
		Text:    hooks.Args().Or(""),
		Console: &prefixWriter{prefix: "[" + target.Name + "] ", w: e.console},
	}, true
}

var _ ports.ClientCommandExecutor = (*SimulatedEngine)(nil)
