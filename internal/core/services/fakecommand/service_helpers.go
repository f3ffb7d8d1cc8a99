package fakecommand

import (
	"log/slog"

	"github.com/AntonioJCosta/fakecmd/internal/core/domain/actor"
	"github.com/AntonioJCosta/fakecmd/internal/core/domain/command"
	"github.com/AntonioJCosta/fakecmd/internal/core/domain/journal"
)

// execute runs one sub-command inside its own frame. The frame is reset and
// popped when the executor returns, including when it panics.
func (s *service) execute(target actor.Actor, sub command.SubCommand) error {
	f := newFrame(sub, s.stripSay)
	s.push(f)
	defer func() {
		f.reset()
		s.pop(f)
	}()
	return s.executor.ExecuteClientCommand(target, f)
}

func (s *service) record(logger *slog.Logger, dispatchID string, target actor.Actor, sub command.SubCommand) {
	if s.journal == nil {
		return
	}
	entry := journal.Entry{
		Time:       s.now(),
		DispatchID: dispatchID,
		Actor:      target.Name,
		Text:       sub.Text,
	}
	if err := s.journal.Record(entry); err != nil {
		logger.Warn("could not record sub-command in journal", slog.String("text", sub.Text), slog.Any("error", err))
	}
}

func (s *service) push(f *frame) {
	s.mu.Lock()
	s.frames = append(s.frames, f)
	s.mu.Unlock()
}

func (s *service) pop(f *frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i] == f {
			s.frames = append(s.frames[:i], s.frames[i+1:]...)
			return
		}
	}
}

func (s *service) top() *frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}
