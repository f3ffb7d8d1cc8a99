package testutil

import (
	"errors"

	"github.com/AntonioJCosta/fakecmd/internal/core/domain/actor"
	"github.com/AntonioJCosta/fakecmd/internal/core/ports"
)

// MockClientCommandExecutor is a mock implementation of ports.ClientCommandExecutor.
type MockClientCommandExecutor struct {
	ExecuteClientCommandFunc func(target actor.Actor, hooks ports.QueryHooks) error
	// Calls counts ExecuteClientCommand invocations.
	Calls int
}

// ExecuteClientCommand calls the mock ExecuteClientCommandFunc.
func (m *MockClientCommandExecutor) ExecuteClientCommand(target actor.Actor, hooks ports.QueryHooks) error {
	m.Calls++
	if m.ExecuteClientCommandFunc != nil {
		return m.ExecuteClientCommandFunc(target, hooks)
	}
	return errors.New("MockClientCommandExecutor.ExecuteClientCommandFunc not implemented")
}

var _ ports.ClientCommandExecutor = (*MockClientCommandExecutor)(nil)
