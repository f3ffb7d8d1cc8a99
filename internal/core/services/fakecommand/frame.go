package fakecommand

import (
	"strings"
	"sync"

	"github.com/AntonioJCosta/fakecmd/internal/core/domain/command"
	"github.com/AntonioJCosta/fakecmd/internal/core/domain/hook"
	"github.com/AntonioJCosta/fakecmd/internal/core/ports"
)

var sayVerbs = []string{"say ", "say_team "}

/*
frame holds the state of one sub-command while the executor runs it. It is
the capability handle handed to the executor; once reset it answers every
hook with NoOverride.
*/
type frame struct {
	mu             sync.RWMutex
	state          command.State
	stripSayPrefix bool
}

func newFrame(sub command.SubCommand, stripSayPrefix bool) *frame {
	return &frame{
		state: command.State{
			Active: true,
			Text:   sub.Text,
			Argv:   sub.Argv,
		},
		stripSayPrefix: stripSayPrefix,
	}
}

func (f *frame) reset() {
	f.mu.Lock()
	f.state = command.State{}
	f.mu.Unlock()
}

func (f *frame) snapshot() command.State {
	f.mu.RLock()
	defer f.mu.RUnlock()
	s := f.state
	if s.Argv != nil {
		s.Argv = append([]string(nil), s.Argv...)
	}
	return s
}

func (f *frame) Args() hook.Result[string] {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if !f.state.Active {
		return hook.NoOverride[string]()
	}
	text := f.state.Text
	if f.stripSayPrefix {
		for _, verb := range sayVerbs {
			if strings.HasPrefix(text, verb) {
				text = text[len(verb):]
				break
			}
		}
	}
	return hook.Override(text)
}

func (f *frame) Argv(i int) hook.Result[string] {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if !f.state.Active {
		return hook.NoOverride[string]()
	}
	if i < 0 || i >= len(f.state.Argv) {
		return hook.Override("")
	}
	return hook.Override(f.state.Argv[i])
}

func (f *frame) Argc() hook.Result[int] {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if !f.state.Active {
		return hook.NoOverride[int]()
	}
	return hook.Override(len(f.state.Argv))
}

var _ ports.QueryHooks = (*frame)(nil)

// stackHooks answers from the innermost active frame of a service.
type stackHooks struct {
	s *service
}

func (h stackHooks) Args() hook.Result[string] {
	if f := h.s.top(); f != nil {
		return f.Args()
	}
	return hook.NoOverride[string]()
}

func (h stackHooks) Argv(i int) hook.Result[string] {
	if f := h.s.top(); f != nil {
		return f.Argv(i)
	}
	return hook.NoOverride[string]()
}

func (h stackHooks) Argc() hook.Result[int] {
	if f := h.s.top(); f != nil {
		return f.Argc()
	}
	return hook.NoOverride[int]()
}
