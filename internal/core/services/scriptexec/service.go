package scriptexec

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AntonioJCosta/fakecmd/internal/core/ports"
	"golang.org/x/time/rate"
)

// ErrEmptyBatch is returned when a batch holds no sub-command to save.
var ErrEmptyBatch = errors.New("batch contains no command")

// Option configures the script runner.
type Option func(*service)

// WithInterval spaces the dispatched lines of a script at least d apart.
func WithInterval(d time.Duration) Option {
	return func(s *service) { s.interval = d }
}

type service struct {
	actors   ports.ActorProvider
	store    ports.ScriptStore
	bridge   ports.FakeCommandService
	splitter ports.BatchSplitter
	interval time.Duration
	now      func() time.Time
}

// NewService creates a new script runner.
// It panics if any of its collaborators is nil.
func NewService(
	actors ports.ActorProvider,
	store ports.ScriptStore,
	bridge ports.FakeCommandService,
	splitter ports.BatchSplitter,
	opts ...Option,
) ports.ScriptRunner {
	if actors == nil {
		panic("actorProvider cannot be nil")
	}
	if store == nil {
		panic("scriptStore cannot be nil")
	}
	if bridge == nil {
		panic("fakeCommandService cannot be nil")
	}
	if splitter == nil {
		panic("batchSplitter cannot be nil")
	}
	s := &service{actors: actors, store: store, bridge: bridge, splitter: splitter, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunScript dispatches every line of the named script for the referenced actor.
// An unknown actor is still passed on to the bridge, which reports the
// dispatch as aborted. Dispatch errors are collected and returned together.
func (s *service) RunScript(actorRef, name string) (ports.RunReport, error) {
	report := ports.RunReport{Script: name, Actor: actorRef}

	target, err := s.actors.FindActor(actorRef)
	if err != nil {
		return report, fmt.Errorf("failed to resolve actor %q: %w", actorRef, err)
	}
	if target != nil {
		report.Actor = target.String()
	}

	lines, err := s.store.GetScript(name)
	if err != nil {
		return report, fmt.Errorf("failed to load script %q: %w", name, err)
	}

	start := s.now()
	limiter := s.newLimiter()
	var errs []error
	for _, line := range lines {
		if limiter != nil {
			if err := limiter.Wait(context.Background()); err != nil {
				return report, fmt.Errorf("script %q: %w", name, err)
			}
		}
		dr, err := s.bridge.Dispatch(target, "%s", line)
		report.Dispatches = append(report.Dispatches, dr)
		if err != nil {
			errs = append(errs, err)
		}
	}
	report.Elapsed = s.now().Sub(start)
	if len(errs) > 0 {
		return report, fmt.Errorf("script %q: %w", name, errors.Join(errs...))
	}
	return report, nil
}

// SaveBatch appends batch to the named script. It returns false if the exact
// line was already present.
func (s *service) SaveBatch(name, batch string) (bool, error) {
	if len(s.splitter.Split(batch)) == 0 {
		return false, fmt.Errorf("cannot save to script %q: %w", name, ErrEmptyBatch)
	}
	added, err := s.store.AppendLine(name, strings.TrimSpace(batch))
	if err != nil {
		return false, fmt.Errorf("failed to save to script %q: %w", name, err)
	}
	return added, nil
}

// ListScripts returns the stored scripts with their command line counts.
func (s *service) ListScripts() (map[string]int, error) {
	scripts, err := s.store.ListScripts()
	if err != nil {
		return nil, fmt.Errorf("failed to list scripts: %w", err)
	}
	return scripts, nil
}

// newLimiter returns nil when lines may be dispatched back to back.
func (s *service) newLimiter() *rate.Limiter {
	if s.interval <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(s.interval), 1)
}
