package clientcommands

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/AntonioJCosta/fakecmd/internal/core/domain/actor"
	"github.com/AntonioJCosta/fakecmd/internal/core/ports"
)

// tracer returns a handler that appends its label to calls.
func tracer(calls *[]string, label string, handled bool) Handler {
	return func(ports.Invocation) (bool, error) {
		*calls = append(*calls, label)
		return handled, nil
	}
}

func TestRegistry_Handle_Order(t *testing.T) {
	r := NewRegistry()
	var calls []string
	r.Register("use", tracer(&calls, "first", false))
	r.Register("USE", tracer(&calls, "high", false), WithPriority(10))
	r.Register("use", tracer(&calls, "second", false))

	handled, err := r.Handle(ports.Invocation{Verb: "Use"})
	if err != nil {
		t.Fatalf("Handle() unexpected error = %v", err)
	}
	if handled {
		t.Error("Handle() = true, want false when no handler claims the command")
	}
	want := []string{"high", "first", "second"}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("call order = %v, want %v", calls, want)
	}
}

func TestRegistry_Handle_StopsAtFirstClaim(t *testing.T) {
	r := NewRegistry()
	var calls []string
	r.Register("say", tracer(&calls, "a", true))
	r.Register("say", tracer(&calls, "b", true))

	handled, err := r.Handle(ports.Invocation{Verb: "say"})
	if err != nil || !handled {
		t.Fatalf("Handle() = %v, %v; want true, nil", handled, err)
	}
	if !reflect.DeepEqual(calls, []string{"a"}) {
		t.Errorf("calls = %v, want [a]", calls)
	}
}

func TestRegistry_Handle_Error(t *testing.T) {
	r := NewRegistry()
	var calls []string
	boom := errors.New("boom")
	r.Register("kill", func(ports.Invocation) (bool, error) { return false, boom })
	r.Register("kill", tracer(&calls, "after", true))

	_, err := r.Handle(ports.Invocation{Verb: "kill"})
	if !errors.Is(err, boom) {
		t.Errorf("Handle() error = %v, want %v", err, boom)
	}
	if len(calls) != 0 {
		t.Errorf("handlers after an error ran: %v", calls)
	}
}

func TestRegistry_Handle_UnknownVerb(t *testing.T) {
	r := NewRegistry()
	handled, err := r.Handle(ports.Invocation{Verb: "nothing"})
	if handled || err != nil {
		t.Errorf("Handle() = %v, %v; want false, nil", handled, err)
	}
}

func TestRegistry_Once(t *testing.T) {
	r := NewRegistry()
	var calls []string
	r.Register("spawn", tracer(&calls, "once", false), Once())
	r.Register("spawn", tracer(&calls, "always", false))

	for i := 0; i < 2; i++ {
		if _, err := r.Handle(ports.Invocation{Verb: "spawn"}); err != nil {
			t.Fatalf("Handle() unexpected error = %v", err)
		}
	}
	want := []string{"once", "always", "always"}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
	if got := r.Listeners("spawn"); got != 1 {
		t.Errorf("Listeners() = %d, want 1", got)
	}
}

func TestRegistry_RemovalDuringIteration(t *testing.T) {
	r := NewRegistry()
	var calls []string
	var victim int
	r.Register("touch", func(ports.Invocation) (bool, error) {
		calls = append(calls, "remover")
		r.Unregister(victim)
		r.Register("touch", tracer(&calls, "late", false))
		return false, nil
	})
	victim = r.Register("touch", tracer(&calls, "victim", false))

	if _, err := r.Handle(ports.Invocation{Verb: "touch"}); err != nil {
		t.Fatalf("Handle() unexpected error = %v", err)
	}
	if !reflect.DeepEqual(calls, []string{"remover"}) {
		t.Errorf("first Handle calls = %v, want [remover]", calls)
	}

	calls = nil
	if _, err := r.Handle(ports.Invocation{Verb: "touch"}); err != nil {
		t.Fatalf("Handle() unexpected error = %v", err)
	}
	want := []string{"remover", "late"}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("second Handle calls = %v, want %v", calls, want)
	}
}

func TestRegistry_UnregisterAndClear(t *testing.T) {
	r := NewRegistry()
	id := r.Register("god", tracer(new([]string), "x", true))
	r.Register("god", tracer(new([]string), "y", true))
	r.Register("fly", tracer(new([]string), "z", true))

	if !r.Unregister(id) {
		t.Error("Unregister() = false for a registered id")
	}
	if r.Unregister(id) {
		t.Error("Unregister() = true for an already removed id")
	}
	if got := r.Clear("GOD"); got != 1 {
		t.Errorf("Clear() = %d, want 1", got)
	}
	if got := r.Names(); !reflect.DeepEqual(got, []string{"fly"}) {
		t.Errorf("Names() = %v, want [fly]", got)
	}
}

func TestRegistry_RegisterPanics(t *testing.T) {
	tests := []struct {
		name    string
		verb    string
		handler Handler
	}{
		{name: "empty name", verb: "  ", handler: tracer(new([]string), "x", true)},
		{name: "nil handler", verb: "say", handler: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("Register did not panic")
				}
			}()
			NewRegistry().Register(tt.verb, tt.handler)
		})
	}
}

func TestRegisterBuiltins(t *testing.T) {
	player := actor.Actor{ID: 1, Name: "Gordon"}
	tests := []struct {
		name string
		inv  ports.Invocation
		want string
	}{
		{name: "say", inv: ports.Invocation{Verb: "say", Args: []string{"hello", "world"}}, want: "You spoke: hello world\n"},
		{name: "say_team", inv: ports.Invocation{Verb: "say_team", Args: []string{"rush", "b"}}, want: "You teamspoke: rush b\n"},
		{name: "hello", inv: ports.Invocation{Verb: "hello", Args: []string{"a", "b"}}, want: "Hello Gordon! Arguments: a b\n"},
		{name: "say_hello", inv: ports.Invocation{Verb: "say_hello"}, want: "Hello Gordon!\n"},
		{name: "say_greet default", inv: ports.Invocation{Verb: "say_greet"}, want: "Gordon greets World!\n"},
		{name: "say_greet target", inv: ports.Invocation{Verb: "say_greet", Args: []string{"Alyx"}}, want: "Gordon greets Alyx!\n"},
		{name: "say_info", inv: ports.Invocation{Verb: "say_info", Text: "say_info x y", Args: []string{"x", "y"}}, want: "Player: Gordon, Command: say_info x y, Args: x, y\n"},
		{name: "say_admin usage", inv: ports.Invocation{Verb: "say_admin"}, want: "Usage: say_admin <message>\n"},
		{name: "say_admin", inv: ports.Invocation{Verb: "say_admin", Args: []string{"restart", "now"}}, want: "[ADMIN] Gordon: restart now\n"},
	}

	r := NewRegistry()
	RegisterBuiltins(r)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			tt.inv.Actor = player
			tt.inv.Console = &out
			handled, err := r.Handle(tt.inv)
			if err != nil || !handled {
				t.Fatalf("Handle() = %v, %v; want true, nil", handled, err)
			}
			if out.String() != tt.want {
				t.Errorf("console = %q, want %q", out.String(), tt.want)
			}
		})
	}
}
