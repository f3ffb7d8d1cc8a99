package testutil

import (
	"errors"

	"github.com/AntonioJCosta/fakecmd/internal/core/ports"
)

// MockScriptStore is a mock implementation of ports.ScriptStore for testing.
type MockScriptStore struct {
	ListScriptsFunc func() (map[string]int, error)
	GetScriptFunc   func(name string) ([]string, error)
	AppendLineFunc  func(name, line string) (bool, error)
}

func (m *MockScriptStore) ListScripts() (map[string]int, error) {
	if m.ListScriptsFunc != nil {
		return m.ListScriptsFunc()
	}
	return nil, errors.New("MockScriptStore: ListScriptsFunc not implemented")
}

func (m *MockScriptStore) GetScript(name string) ([]string, error) {
	if m.GetScriptFunc != nil {
		return m.GetScriptFunc(name)
	}
	return nil, errors.New("MockScriptStore: GetScriptFunc not implemented")
}

func (m *MockScriptStore) AppendLine(name, line string) (bool, error) {
	if m.AppendLineFunc != nil {
		return m.AppendLineFunc(name, line)
	}
	return false, errors.New("MockScriptStore: AppendLineFunc not implemented")
}

var _ ports.ScriptStore = (*MockScriptStore)(nil)
