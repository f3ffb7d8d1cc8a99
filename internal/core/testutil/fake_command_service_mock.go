package testutil

import (
	"github.com/AntonioJCosta/fakecmd/internal/core/domain/actor"
	"github.com/AntonioJCosta/fakecmd/internal/core/domain/command"
	"github.com/AntonioJCosta/fakecmd/internal/core/domain/hook"
	"github.com/AntonioJCosta/fakecmd/internal/core/ports"
)

// MockFakeCommandService is a mock implementation of ports.FakeCommandService.
type MockFakeCommandService struct {
	DispatchFunc func(target *actor.Actor, template string, args ...any) (ports.DispatchReport, error)
	// DispatchCalls keeps the templates passed to Dispatch.
	DispatchCalls []string
}

func (m *MockFakeCommandService) Dispatch(target *actor.Actor, template string, args ...any) (ports.DispatchReport, error) {
	m.DispatchCalls = append(m.DispatchCalls, template)
	if m.DispatchFunc != nil {
		return m.DispatchFunc(target, template, args...)
	}
	return ports.DispatchReport{Command: template}, nil
}

// Hooks returns hooks that never override.
func (m *MockFakeCommandService) Hooks() ports.QueryHooks {
	return idleHooks{}
}

func (m *MockFakeCommandService) State() command.State {
	return command.State{}
}

type idleHooks struct{}

func (idleHooks) Args() hook.Result[string] { return hook.NoOverride[string]() }
func (idleHooks) Argv(int) hook.Result[string] { return hook.NoOverride[string]() }
func (idleHooks) Argc() hook.Result[int] { return hook.NoOverride[int]() }

var _ ports.FakeCommandService = (*MockFakeCommandService)(nil)
