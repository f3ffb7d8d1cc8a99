package clientcommands

import (
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/fakecmd/internal/core/ports"
)

// RegisterBuiltins registers the stock client commands on r.
func RegisterBuiltins(r *Registry) {
	r.Register("say", func(inv ports.Invocation) (bool, error) {
		return reply(inv, "You spoke: %s", strings.Join(inv.Args, " "))
	})
	r.Register("say_team", func(inv ports.Invocation) (bool, error) {
		return reply(inv, "You teamspoke: %s", strings.Join(inv.Args, " "))
	})
	r.Register("hello", func(inv ports.Invocation) (bool, error) {
		return reply(inv, "Hello %s! Arguments: %s", inv.Actor.Name, strings.Join(inv.Args, " "))
	})
	r.Register("say_hello", func(inv ports.Invocation) (bool, error) {
		return reply(inv, "Hello %s!", inv.Actor.Name)
	})
	r.Register("say_greet", func(inv ports.Invocation) (bool, error) {
		target := "World"
		if len(inv.Args) > 0 {
			target = inv.Args[0]
		}
		return reply(inv, "%s greets %s!", inv.Actor.Name, target)
	})
	r.Register("say_info", func(inv ports.Invocation) (bool, error) {
		return reply(inv, "Player: %s, Command: %s, Args: %s", inv.Actor.Name, inv.Text, strings.Join(inv.Args, ", "))
	})
	r.Register("say_admin", func(inv ports.Invocation) (bool, error) {
		if len(inv.Args) < 1 {
			return reply(inv, "Usage: say_admin <message>")
		}
		return reply(inv, "[ADMIN] %s: %s", inv.Actor.Name, strings.Join(inv.Args, " "))
	})
}

// reply writes one line to the invocation console and claims the command.
func reply(inv ports.Invocation, format string, a ...any) (bool, error) {
	w := inv.Console
	if w == nil {
		w = io.Discard
	}
	if _, err := fmt.Fprintf(w, format+"\n", a...); err != nil {
		return true, fmt.Errorf("writing reply to %s: %w", inv.Actor.Name, err)
	}
	return true, nil
}
