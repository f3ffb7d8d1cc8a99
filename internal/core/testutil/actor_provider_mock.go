package testutil

import (
	"github.com/AntonioJCosta/fakecmd/internal/core/domain/actor"
	"github.com/AntonioJCosta/fakecmd/internal/core/ports"
)

// MockActorProvider is a mock implementation of ports.ActorProvider.
type MockActorProvider struct {
	GetActorsFunc func() ([]actor.Actor, error)
	FindActorFunc func(ref string) (*actor.Actor, error)
}

func (m *MockActorProvider) GetActors() ([]actor.Actor, error) {
	if m.GetActorsFunc != nil {
		return m.GetActorsFunc()
	}
	return nil, nil
}

func (m *MockActorProvider) FindActor(ref string) (*actor.Actor, error) {
	if m.FindActorFunc != nil {
		return m.FindActorFunc(ref)
	}
	return nil, nil
}

var _ ports.ActorProvider = (*MockActorProvider)(nil)
