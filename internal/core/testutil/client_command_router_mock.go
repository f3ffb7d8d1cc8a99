package testutil

import "github.com/AntonioJCosta/fakecmd/internal/core/ports"

// MockClientCommandRouter is a mock implementation of ports.ClientCommandRouter.
type MockClientCommandRouter struct {
	HandleFunc func(inv ports.Invocation) (bool, error)
	// HandleCalls keeps track of the invocations passed to Handle.
	HandleCalls []ports.Invocation
}

// Handle implements the ports.ClientCommandRouter interface.
func (m *MockClientCommandRouter) Handle(inv ports.Invocation) (bool, error) {
	m.HandleCalls = append(m.HandleCalls, inv)
	if m.HandleFunc != nil {
		return m.HandleFunc(inv)
	}
	return true, nil
}

var _ ports.ClientCommandRouter = (*MockClientCommandRouter)(nil)
