package ports

import (
	"github.com/AntonioJCosta/fakecmd/internal/core/domain/actor"
	"github.com/AntonioJCosta/fakecmd/internal/core/domain/command"
)

// AbortReason explains why a dispatch never reached the executor.
type AbortReason string

const (
	AbortNone         AbortReason = ""
	AbortNoActor      AbortReason = "no fake client"
	AbortEmptyCommand AbortReason = "no command"
)

// DispatchReport describes what a single Dispatch call did.
type DispatchReport struct {
	DispatchID string
	Command    string // formatted command batch
	Executed   []command.SubCommand
	Aborted    AbortReason
}

// FakeCommandService injects command batches as if typed by an actor.
type FakeCommandService interface {
	// Dispatch formats template with args, splits it into sub-commands and
	// executes each one for target. A nil target or an empty command is a
	// logged no-op reported through DispatchReport.Aborted.
	Dispatch(target *actor.Actor, template string, args ...any) (DispatchReport, error)

	// Hooks answers from the innermost active dispatch of this service.
	Hooks() QueryHooks

	// State returns a copy of the innermost active state, or the zero value when idle.
	State() command.State
}
