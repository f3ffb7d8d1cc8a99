package fakecommand

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/fakecmd/internal/adapters/commandparsing"
	"github.com/AntonioJCosta/fakecmd/internal/adapters/formatting"
	"github.com/AntonioJCosta/fakecmd/internal/core/domain/actor"
	"github.com/AntonioJCosta/fakecmd/internal/core/domain/command"
	"github.com/AntonioJCosta/fakecmd/internal/core/domain/journal"
	"github.com/AntonioJCosta/fakecmd/internal/core/ports"
	"github.com/AntonioJCosta/fakecmd/internal/core/testutil"
)

var testBot = &actor.Actor{ID: 3, Name: "bot1", Bot: true}

// observed is what an executor saw through the hooks during one call.
type observed struct {
	args     string
	argv     []string
	argc     int
	pastEnd  string
	override bool
}

func newTestService(exec ports.ClientCommandExecutor, opts Options) ports.FakeCommandService {
	return NewService(
		commandparsing.NewTokenizer(),
		commandparsing.NewSplitter(),
		formatting.NewFormatter(),
		exec,
		opts,
	)
}

func recordingExecutor(seen *[]observed) *testutil.MockClientCommandExecutor {
	return &testutil.MockClientCommandExecutor{
		ExecuteClientCommandFunc: func(_ actor.Actor, hooks ports.QueryHooks) error {
			argc := hooks.Argc()
			o := observed{
				args:     hooks.Args().Value(),
				argc:     argc.Value(),
				override: argc.Overrides(),
			}
			for i := 0; i < argc.Value(); i++ {
				o.argv = append(o.argv, hooks.Argv(i).Value())
			}
			past := hooks.Argv(argc.Value())
			if !past.Overrides() {
				o.override = false
			}
			o.pastEnd = past.Value()
			*seen = append(*seen, o)
			return nil
		},
	}
}

func assertIdle(t *testing.T, svc ports.FakeCommandService) {
	t.Helper()
	if got := svc.State(); !reflect.DeepEqual(got, command.State{}) {
		t.Errorf("State() = %#v, want inactive zero state", got)
	}
	hooks := svc.Hooks()
	if hooks.Args().Overrides() || hooks.Argv(0).Overrides() || hooks.Argc().Overrides() {
		t.Error("Hooks() override while idle")
	}
	if hooks.Argc().Value() != 0 || hooks.Args().Value() != "" || hooks.Argv(0).Value() != "" {
		t.Error("Hooks() returned non-default values while idle")
	}
}

func TestNewService(t *testing.T) {
	tok := commandparsing.NewTokenizer()
	split := commandparsing.NewSplitter()
	f := formatting.NewFormatter()
	exec := &testutil.MockClientCommandExecutor{}

	tests := []struct {
		name  string
		build func()
	}{
		{name: "nil tokenizer", build: func() { NewService(nil, split, f, exec, Options{}) }},
		{name: "nil splitter", build: func() { NewService(tok, nil, f, exec, Options{}) }},
		{name: "nil formatter", build: func() { NewService(tok, split, nil, exec, Options{}) }},
		{name: "nil executor", build: func() { NewService(tok, split, f, nil, Options{}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("NewService did not panic with %s", tt.name)
				}
			}()
			tt.build()
		})
	}

	t.Run("should return a service with all collaborators", func(t *testing.T) {
		if svc := NewService(tok, split, f, exec, Options{}); svc == nil {
			t.Fatal("NewService() returned nil")
		}
	})
}

func TestService_Dispatch(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		want     []observed
	}{
		{
			name:     "two sub-commands",
			template: "say hello;noclip",
			want: []observed{
				{args: "say hello", argv: []string{"say", "hello"}, argc: 2, override: true},
				{args: "noclip", argv: []string{"noclip"}, argc: 1, override: true},
			},
		},
		{
			name:     "formatted kick",
			template: "kick #%d",
			args:     []any{7},
			want: []observed{
				{args: "kick #7", argv: []string{"kick", "#7"}, argc: 2, override: true},
			},
		},
		{
			name:     "quoted argument and trimming",
			template: `  say "hello world"  ;;`,
			want: []observed{
				{args: `say "hello world"`, argv: []string{"say", "hello world"}, argc: 2, override: true},
			},
		},
		{
			name:     "only separators executes nothing",
			template: " ; ;",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen []observed
			svc := newTestService(recordingExecutor(&seen), Options{})

			report, err := svc.Dispatch(testBot, tt.template, tt.args...)
			if err != nil {
				t.Fatalf("Dispatch() unexpected error = %v", err)
			}
			if report.Aborted != ports.AbortNone {
				t.Errorf("Dispatch() aborted = %q, want none", report.Aborted)
			}
			if report.DispatchID == "" {
				t.Error("Dispatch() returned an empty dispatch id")
			}
			if !reflect.DeepEqual(seen, tt.want) {
				t.Errorf("executor observed = %#v, want %#v", seen, tt.want)
			}
			if len(report.Executed) != len(tt.want) {
				t.Errorf("len(report.Executed) = %d, want %d", len(report.Executed), len(tt.want))
			}
			assertIdle(t, svc)
		})
	}
}

func TestService_Dispatch_Aborts(t *testing.T) {
	tests := []struct {
		name       string
		target     *actor.Actor
		template   string
		args       []any
		wantReason ports.AbortReason
	}{
		{name: "nil actor", target: nil, template: "say hi", wantReason: ports.AbortNoActor},
		{name: "empty template", target: testBot, template: "", wantReason: ports.AbortEmptyCommand},
		{name: "bare newline", target: testBot, template: "\n", wantReason: ports.AbortEmptyCommand},
		{name: "formats to newline", target: testBot, template: "%s", args: []any{"\n"}, wantReason: ports.AbortEmptyCommand},
		{name: "formats to empty", target: testBot, template: "%s", args: []any{""}, wantReason: ports.AbortEmptyCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &testutil.MockClientCommandExecutor{
				ExecuteClientCommandFunc: func(actor.Actor, ports.QueryHooks) error { return nil },
			}
			jr := &testutil.MockDispatchJournal{}
			svc := newTestService(exec, Options{Journal: jr})

			report, err := svc.Dispatch(tt.target, tt.template, tt.args...)
			if err != nil {
				t.Fatalf("Dispatch() error = %v, want nil for a benign abort", err)
			}
			if report.Aborted != tt.wantReason {
				t.Errorf("Dispatch() aborted = %q, want %q", report.Aborted, tt.wantReason)
			}
			if exec.Calls != 0 {
				t.Errorf("executor called %d times, want 0", exec.Calls)
			}
			if len(jr.Recorded) != 0 {
				t.Errorf("journal recorded %d entries, want 0", len(jr.Recorded))
			}
			assertIdle(t, svc)
		})
	}
}

func TestService_Dispatch_HookWindow(t *testing.T) {
	var retained ports.QueryHooks
	var duringState command.State
	var svc ports.FakeCommandService

	exec := &testutil.MockClientCommandExecutor{
		ExecuteClientCommandFunc: func(_ actor.Actor, hooks ports.QueryHooks) error {
			retained = hooks
			duringState = svc.State()
			global := svc.Hooks()
			if got := global.Args().Value(); got != "give weapon_knife" {
				t.Errorf("service Hooks().Args() = %q during dispatch, want %q", got, "give weapon_knife")
			}
			if r := global.Argv(5); !r.Overrides() || r.Value() != "" {
				t.Errorf("service Hooks().Argv(5) = %#v, want override with empty value", r)
			}
			if r := hooks.Argv(-1); !r.Overrides() || r.Value() != "" {
				t.Errorf("Argv(-1) = %#v, want override with empty value", r)
			}
			return nil
		},
	}
	svc = newTestService(exec, Options{})

	if _, err := svc.Dispatch(testBot, "give weapon_knife"); err != nil {
		t.Fatalf("Dispatch() unexpected error = %v", err)
	}

	wantState := command.State{Active: true, Text: "give weapon_knife", Argv: []string{"give", "weapon_knife"}}
	if !reflect.DeepEqual(duringState, wantState) {
		t.Errorf("State() during dispatch = %#v, want %#v", duringState, wantState)
	}
	if retained.Args().Overrides() || retained.Argc().Overrides() || retained.Argv(0).Overrides() {
		t.Error("hooks retained past the dispatch window still override")
	}
	assertIdle(t, svc)
}

func TestService_Dispatch_ExecutorErrorDoesNotStopBatch(t *testing.T) {
	var texts []string
	executorErr := errors.New("engine rejected command")
	exec := &testutil.MockClientCommandExecutor{
		ExecuteClientCommandFunc: func(_ actor.Actor, hooks ports.QueryHooks) error {
			texts = append(texts, hooks.Args().Value())
			if len(texts) == 1 {
				return executorErr
			}
			return nil
		},
	}
	svc := newTestService(exec, Options{})

	report, err := svc.Dispatch(testBot, "bad;good")
	if err == nil {
		t.Fatal("Dispatch() expected an error, got nil")
	}
	if !errors.Is(err, executorErr) {
		t.Errorf("Dispatch() error = %v, want it to wrap %v", err, executorErr)
	}
	if !strings.Contains(err.Error(), `"bad"`) {
		t.Errorf("Dispatch() error = %q, want it to name the failing sub-command", err)
	}
	if !reflect.DeepEqual(texts, []string{"bad", "good"}) {
		t.Errorf("executed = %v, want [bad good]", texts)
	}
	if len(report.Executed) != 2 {
		t.Errorf("len(report.Executed) = %d, want 2", len(report.Executed))
	}
	assertIdle(t, svc)
}

func TestService_Dispatch_PanicResetsState(t *testing.T) {
	exec := &testutil.MockClientCommandExecutor{
		ExecuteClientCommandFunc: func(actor.Actor, ports.QueryHooks) error {
			panic("engine crashed")
		},
	}
	svc := newTestService(exec, Options{})

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Dispatch() did not propagate the executor panic")
			}
		}()
		_, _ = svc.Dispatch(testBot, "crash")
	}()
	assertIdle(t, svc)
}

func TestService_Dispatch_Nested(t *testing.T) {
	var svc ports.FakeCommandService
	var outerAfterInner string
	var innerSeen string

	exec := &testutil.MockClientCommandExecutor{
		ExecuteClientCommandFunc: func(target actor.Actor, hooks ports.QueryHooks) error {
			if hooks.Argv(0).Value() == "outer" {
				if _, err := svc.Dispatch(&target, "inner %s", "cmd"); err != nil {
					return err
				}
				outerAfterInner = svc.Hooks().Args().Value() + "|" + hooks.Args().Value()
				return nil
			}
			innerSeen = svc.Hooks().Args().Value()
			return nil
		},
	}
	svc = newTestService(exec, Options{})

	if _, err := svc.Dispatch(testBot, "outer"); err != nil {
		t.Fatalf("Dispatch() unexpected error = %v", err)
	}
	if innerSeen != "inner cmd" {
		t.Errorf("inner dispatch saw %q, want %q", innerSeen, "inner cmd")
	}
	if outerAfterInner != "outer|outer" {
		t.Errorf("outer state after inner dispatch = %q, want %q", outerAfterInner, "outer|outer")
	}
	assertIdle(t, svc)
}

func TestService_Dispatch_StripSayPrefix(t *testing.T) {
	tests := []struct {
		name     string
		strip    bool
		template string
		wantArgs string
		wantArgv []string
	}{
		{name: "say stripped", strip: true, template: "say hello there", wantArgs: "hello there", wantArgv: []string{"say", "hello", "there"}},
		{name: "say_team stripped", strip: true, template: "say_team go go", wantArgs: "go go", wantArgv: []string{"say_team", "go", "go"}},
		{name: "other verb untouched", strip: true, template: "sayhi now", wantArgs: "sayhi now", wantArgv: []string{"sayhi", "now"}},
		{name: "disabled keeps verb", strip: false, template: "say hello", wantArgs: "say hello", wantArgv: []string{"say", "hello"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen []observed
			svc := newTestService(recordingExecutor(&seen), Options{StripSayPrefix: tt.strip})
			if _, err := svc.Dispatch(testBot, tt.template); err != nil {
				t.Fatalf("Dispatch() unexpected error = %v", err)
			}
			if len(seen) != 1 {
				t.Fatalf("executor called %d times, want 1", len(seen))
			}
			if seen[0].args != tt.wantArgs {
				t.Errorf("Args() = %q, want %q", seen[0].args, tt.wantArgs)
			}
			if !reflect.DeepEqual(seen[0].argv, tt.wantArgv) {
				t.Errorf("argv = %v, want %v", seen[0].argv, tt.wantArgv)
			}
		})
	}
}

func TestService_Dispatch_Journal(t *testing.T) {
	t.Run("records every executed sub-command", func(t *testing.T) {
		jr := &testutil.MockDispatchJournal{}
		var seen []observed
		svc := newTestService(recordingExecutor(&seen), Options{Journal: jr})

		report, err := svc.Dispatch(testBot, "say hi;noclip")
		if err != nil {
			t.Fatalf("Dispatch() unexpected error = %v", err)
		}
		var got []journal.Entry
		for _, e := range jr.Recorded {
			if e.DispatchID != report.DispatchID {
				t.Errorf("entry dispatch id = %q, want %q", e.DispatchID, report.DispatchID)
			}
			if e.Time.IsZero() {
				t.Error("entry time is zero")
			}
			got = append(got, journal.Entry{Actor: e.Actor, Text: e.Text})
		}
		want := []journal.Entry{{Actor: "bot1", Text: "say hi"}, {Actor: "bot1", Text: "noclip"}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("journal entries = %#v, want %#v", got, want)
		}
	})

	t.Run("journal failure does not fail the dispatch", func(t *testing.T) {
		jr := &testutil.MockDispatchJournal{
			RecordFunc: func(journal.Entry) error { return errors.New("disk full") },
		}
		var seen []observed
		svc := newTestService(recordingExecutor(&seen), Options{Journal: jr})

		if _, err := svc.Dispatch(testBot, "noclip"); err != nil {
			t.Fatalf("Dispatch() error = %v, want nil", err)
		}
		if len(seen) != 1 {
			t.Errorf("executor called %d times, want 1", len(seen))
		}
	})
}
