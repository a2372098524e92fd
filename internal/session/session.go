// Package session ties the task list, its store and the dispatcher together
// for one run of the program.
package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/darrenchooji/fiona/internal/command"
	"github.com/darrenchooji/fiona/internal/dispatch"
	"github.com/darrenchooji/fiona/internal/domain"
	"github.com/darrenchooji/fiona/internal/storage"
	"github.com/darrenchooji/fiona/internal/tasklist"
)

const (
	MsgGreeting  = "Hello! I'm Fiona."
	MsgPrompt    = "What can I do for you?"
	MsgLoadError = "Error loading tasks from file. Starting with an empty task list."
)

// Options controls session startup
type Options struct {
	PurgeOverdue bool
}

// Session owns the task list for the lifetime of one run.
type Session struct {
	list       *tasklist.List
	store      storage.Store
	factory    *domain.Factory
	dispatcher *dispatch.Dispatcher
	logger     *slog.Logger

	loadErr error
	purged  []domain.Task
	saveErr error
	exited  bool
}

// Open loads the stored tasks. A load failure is not fatal: the session
// starts empty and Welcome reports the problem.
func Open(ctx context.Context, store storage.Store, factory *domain.Factory, opts Options, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Session{store: store, factory: factory, logger: logger}

	tasks, err := store.Load(ctx)
	if err != nil {
		logger.Warn("failed to load tasks", "store", store.Name(), "error", err)
		s.loadErr = err
	}
	s.list = tasklist.New(tasks...)
	s.dispatcher = dispatch.NewDispatcher(s.list, store, factory, logger)

	if opts.PurgeOverdue && err == nil {
		s.purge(ctx)
	}

	logger.Info("session opened", "store", store.Name(), "tasks", s.list.Size())
	return s
}

func (s *Session) purge(ctx context.Context) {
	s.purged = s.list.PurgeOverdue(domain.WallClock(s.now()))
	if len(s.purged) == 0 {
		return
	}

	s.logger.Info("purged overdue tasks", "count", len(s.purged))
	if err := s.store.Save(ctx, s.list.Snapshot()); err != nil {
		s.logger.Warn("failed to save after purge", "error", err)
		s.saveErr = err
	}
}

func (s *Session) now() time.Time {
	if s.factory.Now != nil {
		return s.factory.Now()
	}
	return time.Now()
}

// Welcome returns the greeting, any startup problems and the current list.
func (s *Session) Welcome(ctx context.Context) dispatch.Response {
	resp := dispatch.Response{
		Lines: []string{MsgGreeting, MsgPrompt},
		Level: dispatch.LevelInfo,
	}

	if s.loadErr != nil {
		resp.Lines = append(resp.Lines, MsgLoadError)
		resp.Level = dispatch.LevelWarning
		resp.Err = s.loadErr
	}
	if len(s.purged) > 0 {
		resp.Lines = append(resp.Lines, fmt.Sprintf("Removed %d overdue task(s):", len(s.purged)))
		for _, task := range s.purged {
			resp.Lines = append(resp.Lines, "  "+task.String())
		}
	}
	if s.saveErr != nil {
		resp.Lines = append(resp.Lines, dispatch.MsgNotPersisted+" "+s.saveErr.Error())
		resp.Level = dispatch.LevelWarning
		resp.Err = s.saveErr
	}

	list := s.dispatcher.Dispatch(ctx, command.Command{Action: command.List})
	resp.Lines = append(resp.Lines, list.Lines...)
	return resp
}

// Handle parses and executes one input line.
func (s *Session) Handle(ctx context.Context, line string) dispatch.Response {
	resp := s.dispatcher.Dispatch(ctx, command.Parse(line))
	if resp.Exit {
		s.exited = true
	}
	return resp
}

// Exited reports whether an exit command has been handled
func (s *Session) Exited() bool {
	return s.exited
}

// Size returns the number of tasks in the list
func (s *Session) Size() int {
	return s.list.Size()
}

// StoreName returns the name of the storage backend
func (s *Session) StoreName() string {
	return s.store.Name()
}

// Close releases the store if it holds resources.
func (s *Session) Close() error {
	if c, ok := s.store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
