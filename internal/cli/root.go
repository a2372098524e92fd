// Package cli wires configuration, storage and the shell into the fiona command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/darrenchooji/fiona/internal/app"
	"github.com/darrenchooji/fiona/internal/config"
)

// Version is set at build time
var Version = "dev"

// options holds the global flag values
type options struct {
	configPath   string
	dataPath     string
	backend      string
	rejectPast   bool
	purgeOverdue bool
	logLevel     string
	logFile      string
	plain        bool
}

// NewRootCommand creates the root command with injectable IO
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "fiona",
		Short:   "A personal task tracker",
		Long:    "fiona keeps todos, deadlines and events in a local file and answers typed commands.",
		Version: Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}

			interactive := !cfg.UI.Plain && isTerminal(stdin) && isTerminal(stdout)

			// The TUI owns the terminal, so logs only go to a file
			var fallback io.Writer = stderr
			if interactive {
				fallback = nil
			}
			logger, closer, err := NewLogger(cfg.Log, fallback)
			if err != nil {
				return err
			}
			defer closer.Close()

			deps, err := NewDependencies(cfg, logger)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			sess := deps.OpenSession(ctx)
			defer sess.Close()

			if !interactive {
				return RunREPL(ctx, sess, stdin, stdout)
			}

			p := tea.NewProgram(
				app.New(ctx, sess, logger),
				tea.WithAltScreen(),
				tea.WithInput(stdin),
				tea.WithOutput(stdout),
				tea.WithContext(ctx),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running shell: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file (default ~/.config/fiona/config.toml)")
	flags.StringVarP(&opts.dataPath, "data", "d", "", "Task data path")
	flags.StringVarP(&opts.backend, "backend", "b", "", "Storage backend (file or sqlite)")
	flags.BoolVar(&opts.rejectPast, "reject-past", false, "Reject deadlines and events that have already ended")
	flags.BoolVar(&opts.purgeOverdue, "purge-overdue", false, "Remove overdue tasks at startup")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Use the plain line interface")

	cmd.AddCommand(newExecCmd(opts, stdout, stderr))
	cmd.AddCommand(newInitConfigCmd(opts, stdout))

	return cmd
}

func newExecCmd(opts *options, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command> [args...]",
		Short: "Run one command and exit",
		Example: `  fiona exec todo buy milk
  fiona exec deadline return book /by 2030-01-01 1800
  fiona exec find 2030-01-01`,
		Args:               cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}

			logger, closer, err := NewLogger(cfg.Log, stderr)
			if err != nil {
				return err
			}
			defer closer.Close()

			deps, err := NewDependencies(cfg, logger)
			if err != nil {
				return err
			}
			return ExecCommand(cmd.Context(), deps, args, stdout)
		},
	}
}

func newInitConfigCmd(opts *options, stdout io.Writer) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.resolveConfigPath()
			if err != nil {
				return err
			}
			return InitConfigCommand(path, force, stdout)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	return cmd
}

func (o *options) resolveConfigPath() (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	return config.DefaultPath()
}

// load reads the config file and applies flags that were set on the command line
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	path, err := o.resolveConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		// Keep the data path in step with the backend unless it was customised
		if cfg.Storage.Path == config.DefaultDataPath(cfg.Storage.Backend) {
			cfg.Storage.Path = ""
		}
		cfg.Storage.Backend = o.backend
	}
	if flags.Changed("data") {
		cfg.Storage.Path = o.dataPath
	}
	if flags.Changed("reject-past") {
		cfg.Dates.RejectPast = o.rejectPast
	}
	if flags.Changed("purge-overdue") {
		cfg.Dates.PurgeOverdue = o.purgeOverdue
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = o.logFile
	}
	if flags.Changed("plain") {
		cfg.UI.Plain = o.plain
	}

	cfg = config.MergeWithDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// isTerminal reports whether v is a file attached to a terminal
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Execute runs the root command against the process streams and returns
// the exit code.
func Execute(ctx context.Context) int {
	cmd := NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		var exitErr *ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
