package fakecommand

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/AntonioJCosta/fakecmd/internal/core/domain/actor"
	"github.com/AntonioJCosta/fakecmd/internal/core/domain/command"
	"github.com/AntonioJCosta/fakecmd/internal/core/ports"
	"github.com/google/uuid"
)

// Options holds the optional collaborators and switches of the service.
type Options struct {
	// StripSayPrefix makes the args hook drop a leading "say " or "say_team ".
	StripSayPrefix bool
	// Journal records every executed sub-command. May be nil.
	Journal ports.DispatchJournal
	// Logger defaults to a discard logger.
	Logger *slog.Logger
}

type service struct {
	tokenizer ports.Tokenizer
	splitter  ports.BatchSplitter
	formatter ports.CommandFormatter
	executor  ports.ClientCommandExecutor
	journal   ports.DispatchJournal
	logger    *slog.Logger
	stripSay  bool

	mu     sync.Mutex
	frames []*frame
	now    func() time.Time
}

// NewService creates a new fake command service.
// It panics if the tokenizer, splitter, formatter or executor is nil.
func NewService(
	tok ports.Tokenizer,
	split ports.BatchSplitter,
	f ports.CommandFormatter,
	exec ports.ClientCommandExecutor,
	opts Options,
) ports.FakeCommandService {
	if tok == nil {
		panic("tokenizer cannot be nil")
	}
	if split == nil {
		panic("splitter cannot be nil")
	}
	if f == nil {
		panic("formatter cannot be nil")
	}
	if exec == nil {
		panic("executor cannot be nil")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &service{
		tokenizer: tok,
		splitter:  split,
		formatter: f,
		executor:  exec,
		journal:   opts.Journal,
		logger:    logger,
		stripSay:  opts.StripSayPrefix,
		now:       time.Now,
	}
}

// Dispatch implements ports.FakeCommandService.
func (s *service) Dispatch(target *actor.Actor, template string, args ...any) (ports.DispatchReport, error) {
	report := ports.DispatchReport{DispatchID: uuid.NewString()}
	logger := s.logger.With(slog.String("dispatch_id", report.DispatchID))

	if target == nil {
		logger.Warn("fake client command aborted", slog.String("reason", string(ports.AbortNoActor)))
		report.Aborted = ports.AbortNoActor
		return report, nil
	}
	if template == "" {
		logger.Warn("fake client command aborted", slog.String("reason", string(ports.AbortEmptyCommand)))
		report.Aborted = ports.AbortEmptyCommand
		return report, nil
	}

	report.Command = s.formatter.Format(template, args...)
	if report.Command == "" || report.Command == "\n" {
		logger.Warn("fake client command aborted", slog.String("reason", string(ports.AbortEmptyCommand)))
		report.Aborted = ports.AbortEmptyCommand
		return report, nil
	}

	var errs []error
	for _, text := range s.splitter.Split(report.Command) {
		sub := command.SubCommand{Text: text, Argv: s.tokenizer.Tokenize(text)}
		logger.Debug("executing sub-command",
			slog.String("actor", target.Name),
			slog.String("text", sub.Text),
			slog.Any("argv", sub.Argv))

		if err := s.execute(*target, sub); err != nil {
			errs = append(errs, fmt.Errorf("sub-command %q: %w", sub.Text, err))
		}
		report.Executed = append(report.Executed, sub)
		s.record(logger, report.DispatchID, *target, sub)
	}

	if len(errs) > 0 {
		return report, fmt.Errorf("dispatch %s for %s: %w", report.DispatchID, target.Name, errors.Join(errs...))
	}
	return report, nil
}

// Hooks implements ports.FakeCommandService.
func (s *service) Hooks() ports.QueryHooks {
	return stackHooks{s: s}
}

// State implements ports.FakeCommandService.
func (s *service) State() command.State {
	if f := s.top(); f != nil {
		return f.snapshot()
	}
	return command.State{}
}
