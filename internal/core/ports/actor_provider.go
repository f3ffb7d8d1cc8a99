package ports

import "github.com/AntonioJCosta/fakecmd/internal/core/domain/actor"

// ActorProvider defines the interface for sourcing known actors.
type ActorProvider interface {
	GetActors() ([]actor.Actor, error)
	// FindActor resolves "#<id>" or a name. It returns nil, nil when nothing matches.
	FindActor(ref string) (*actor.Actor, error)
}
