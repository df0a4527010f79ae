package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/idomanteu/claude-code-launcher/internal/config"
	"github.com/idomanteu/claude-code-launcher/internal/model"
	"github.com/idomanteu/claude-code-launcher/internal/process"
	"github.com/idomanteu/claude-code-launcher/internal/scanner"
	"github.com/idomanteu/claude-code-launcher/internal/tui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewRootCmd creates the root command. The process exit status is written
// to exitCode once the command has run.
func NewRootCmd(exitCode *int) *cobra.Command {
	return &cobra.Command{
		Use:   "clive-launch",
		Short: "Pick a project and open Claude Code in it",
		Long: `Lists the folders in ~/Documents/GitHub, most recently modified first,
and starts claude inside the one you pick.

Keys:
  1-9, ↑/↓, enter   choose a project
  /                 search every project
  d                 toggle --dangerously-skip-permissions
  q, ctrl+c         quit`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; using defaults\n", err)
			}
			*exitCode = run(cfg, cmd.ErrOrStderr())
			return nil
		},
	}
}

// launcher holds what a session needs from the outside world: the
// terminal it renders on and the runner that takes the terminal over
type launcher struct {
	stdout      io.Writer
	stderr      io.Writer
	interactive bool
	stdoutTTY   bool
	getenv      func(string) string
	options     []tea.ProgramOption
	launch      func(logger *slog.Logger, dir string, argv []string) (int, error)
}

func newLauncher(stderr io.Writer) *launcher {
	return &launcher{
		stdout:      os.Stdout,
		stderr:      stderr,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
		stdoutTTY:   isatty.IsTerminal(os.Stdout.Fd()),
		getenv:      os.Getenv,
		options:     []tea.ProgramOption{tea.WithAltScreen()},
		launch: func(logger *slog.Logger, dir string, argv []string) (int, error) {
			return process.NewRunner(logger).Launch(dir, argv)
		},
	}
}

// run drives one launcher session against the real terminal and returns
// the process exit status
func run(cfg *config.Config, stderr io.Writer) int {
	return newLauncher(stderr).run(cfg)
}

func (l *launcher) run(cfg *config.Config) int {
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(l.stderr, "Warning: %v; logging disabled\n", err)
	}
	defer closeLog()
	slog.SetDefault(logger)

	if cfg.RootPath == "" {
		fmt.Fprintln(l.stderr, "Error: cannot determine the home directory")
		return 1
	}

	projects, err := scanner.Scan(cfg.RootPath, logger)
	if errors.Is(err, scanner.ErrNoProjects) {
		fmt.Fprintf(l.stderr, "No directories found in %s\n", cfg.RootPath)
		return 1
	}
	if err != nil {
		fmt.Fprintf(l.stderr, "Error reading directory %s: %v\n", cfg.RootPath, err)
		return 1
	}

	if !l.interactive {
		fmt.Fprintln(l.stderr, "Error: clive-launch requires an interactive terminal")
		return 1
	}

	setupColor(cfg, l.getenv, l.stdoutTTY)

	// SIGINT must not kill the process between the menu and the child
	defer process.IgnoreInterrupts()()

	sel, err := selectProject(projects, l.options...)
	if err != nil {
		logger.Error("program failed", "error", err)
		fmt.Fprintf(l.stderr, "Error running program: %v\n", err)
		return 1
	}
	if sel == nil {
		if l.stdoutTTY {
			fmt.Fprint(l.stdout, process.ClearScreen)
		}
		return 0
	}

	code, err := l.launch(logger, sel.Project.Path, process.Command(sel.Dangerous))
	if err != nil {
		logger.Error("launch failed", "project", sel.Project.Name, "error", err)
		fmt.Fprintf(l.stderr, "Error launching %s: %v\n", sel.Project.Name, err)
	}
	return code
}

// selectProject runs the menu. A nil selection means the user quit.
func selectProject(projects []model.Project, opts ...tea.ProgramOption) (*tui.Selection, error) {
	p := tea.NewProgram(tui.NewRootModel(projects), opts...)

	final, err := p.Run()
	if errors.Is(err, tea.ErrInterrupted) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	m, ok := final.(tui.Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	return m.Selection(), nil
}
