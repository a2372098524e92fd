package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/darrenchooji/fiona/internal/config"
	"github.com/darrenchooji/fiona/internal/dispatch"
	"github.com/darrenchooji/fiona/internal/domain"
	"github.com/darrenchooji/fiona/internal/session"
	"github.com/darrenchooji/fiona/internal/storage"
)

// Dependencies holds everything a command needs to run a session
type Dependencies struct {
	Config  *config.Config
	Store   storage.Store
	Factory *domain.Factory
	Logger  *slog.Logger
}

// NewDependencies opens the configured store and builds the task factory
func NewDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	policy := domain.AllowPast
	if cfg.Dates.RejectPast {
		policy = domain.RejectPast
	}
	factory := domain.NewFactory(policy)

	store, err := storage.Open(cfg.Storage, storage.NewCodec(factory, logger), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	logger.Debug("storage opened", "backend", store.Name(), "policy", policy.String())

	return &Dependencies{
		Config:  cfg,
		Store:   store,
		Factory: factory,
		Logger:  logger,
	}, nil
}

// OpenSession loads the task list and applies the startup options
func (d *Dependencies) OpenSession(ctx context.Context) *session.Session {
	return session.Open(ctx, d.Store, d.Factory, session.Options{
		PurgeOverdue: d.Config.Dates.PurgeOverdue,
	}, d.Logger)
}

// ExecCommand runs a single command line and prints its response. Error
// responses are printed and returned so the process exits non-zero.
func ExecCommand(ctx context.Context, deps *Dependencies, words []string, out io.Writer) error {
	sess := deps.OpenSession(ctx)
	defer sess.Close()

	line := strings.Join(words, " ")
	deps.Logger.Info("executing command", "line", line)

	resp := sess.Handle(ctx, line)
	for _, l := range resp.Lines {
		fmt.Fprintln(out, l)
	}

	if resp.Level == dispatch.LevelError {
		if resp.Err != nil {
			return &ExitError{Err: resp.Err}
		}
		return &ExitError{Err: errors.New("command failed")}
	}
	if resp.Level == dispatch.LevelWarning && resp.Err != nil {
		return &ExitError{Err: resp.Err}
	}
	return nil
}

// InitConfigCommand writes the default configuration to path. An existing
// file is only replaced when force is set.
func InitConfigCommand(path string, force bool, out io.Writer) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
		}
	}

	if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
		return err
	}

	fmt.Fprintf(out, "✓ Wrote default config to %s\n", path)
	return nil
}

// ExitError marks a failure whose message has already been shown to the user
type ExitError struct {
	Err error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
