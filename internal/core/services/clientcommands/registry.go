package clientcommands

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/AntonioJCosta/fakecmd/internal/core/ports"
)

/*
Handler handles one client command. It returns true when it claimed the
command, which stops the remaining handlers for that verb from running.
*/
type Handler func(inv ports.Invocation) (bool, error)

// Option configures a registration.
type Option func(*subscription)

// WithPriority sets the priority of a handler. Higher priorities run first.
func WithPriority(priority int) Option {
	return func(s *subscription) { s.priority = priority }
}

// Once removes the handler right before its first invocation.
func Once() Option {
	return func(s *subscription) { s.once = true }
}

type subscription struct {
	id       int
	name     string
	priority int
	once     bool
	handler  Handler
	removed  bool
}

// Registry maps command verbs to ordered lists of handlers.
type Registry struct {
	mu     sync.Mutex
	nextID int
	subs   map[string][]*subscription
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{subs: make(map[string][]*subscription)}
}

/*
Register adds a handler for a verb, matched case-insensitively, and returns
its subscription id. Handlers of equal priority run in registration order.
It panics if the name is empty or the handler is nil.
*/
func (r *Registry) Register(name string, h Handler, opts ...Option) int {
	key := normalizeName(name)
	if key == "" {
		panic("command name cannot be empty")
	}
	if h == nil {
		panic(fmt.Sprintf("handler for %q cannot be nil", name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	sub := &subscription{id: r.nextID, name: key, handler: h}
	for _, opt := range opts {
		opt(sub)
	}

	list := append(r.subs[key], sub)
	sort.SliceStable(list, func(i, j int) bool { return list[i].priority > list[j].priority })
	r.subs[key] = list
	return sub.id
}

// Unregister removes a handler by id. It reports whether the id was registered.
func (r *Registry) Unregister(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, list := range r.subs {
		for i, sub := range list {
			if sub.id == id {
				r.removeLocked(name, i)
				return true
			}
		}
	}
	return false
}

// Clear removes every handler of a verb and returns how many were removed.
func (r *Registry) Clear(name string) int {
	key := normalizeName(name)
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.subs[key]
	for _, sub := range list {
		sub.removed = true
	}
	delete(r.subs, key)
	return len(list)
}

// Listeners returns the number of handlers registered for a verb.
func (r *Registry) Listeners(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs[normalizeName(name)])
}

// Names returns the registered verbs in alphabetical order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.subs))
	for name := range r.subs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

/*
Handle runs the handlers of inv.Verb over a snapshot of the list taken when
Handle starts. A handler unregistered while the snapshot is being walked is
skipped if it has not run yet; handlers registered meanwhile wait for the
next Handle. The walk stops at the first handler that claims the command or
fails.
*/
func (r *Registry) Handle(inv ports.Invocation) (bool, error) {
	key := normalizeName(inv.Verb)
	r.mu.Lock()
	snapshot := append([]*subscription(nil), r.subs[key]...)
	r.mu.Unlock()

	for _, sub := range snapshot {
		if !r.claim(sub) {
			continue
		}
		handled, err := sub.handler(inv)
		if err != nil {
			return handled, fmt.Errorf("handler for %q: %w", key, err)
		}
		if handled {
			return true, nil
		}
	}
	return false, nil
}

// claim reports whether sub may still run, removing it first when it is a Once handler.
func (r *Registry) claim(sub *subscription) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if sub.removed {
		return false
	}
	if sub.once {
		for i, s := range r.subs[sub.name] {
			if s == sub {
				r.removeLocked(sub.name, i)
				break
			}
		}
	}
	return true
}

func (r *Registry) removeLocked(name string, i int) {
	list := r.subs[name]
	list[i].removed = true
	list = append(list[:i:i], list[i+1:]...)
	if len(list) == 0 {
		delete(r.subs, name)
		return
	}
	r.subs[name] = list
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

var _ ports.ClientCommandRouter = (*Registry)(nil)
