package process

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"

	"github.com/google/shlex"
)

// Command lines for the assistant. Dangerous mode skips its permission prompts.
const (
	AssistantCommand = "claude"
	DangerousCommand = "claude --dangerously-skip-permissions"
)

// ClearScreen erases the display and homes the cursor
const ClearScreen = "\x1b[2J\x1b[H"

var (
	// ErrChangeDir is returned when the project directory cannot be entered
	ErrChangeDir = errors.New("change directory")
	// ErrLaunch is returned when the child process could not be started
	ErrLaunch = errors.New("launch")
)

// Command returns the argv for the assistant in the requested mode
func Command(dangerous bool) []string {
	line := AssistantCommand
	if dangerous {
		line = DangerousCommand
	}
	argv, err := shlex.Split(line)
	if err != nil {
		// Both lines are constants; a split failure means they were edited badly
		panic(fmt.Sprintf("invalid command line %q: %v", line, err))
	}
	return argv
}

// Runner runs a child process attached to the given streams
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// NewRunner creates a runner that hands the current terminal to the child
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
	}
}

// Launch runs argv inside dir and waits for it. The returned status is the
// child's own exit code; a non-zero status is not an error. Errors are
// returned only when the child never ran, always with status 1.
func (r *Runner) Launch(dir string, argv []string) (int, error) {
	if len(argv) == 0 {
		return 1, fmt.Errorf("%w: empty command", ErrLaunch)
	}

	originalDir, err := os.Getwd()
	if err != nil {
		return 1, fmt.Errorf("%w: %w", ErrChangeDir, err)
	}
	if err := os.Chdir(dir); err != nil {
		return 1, fmt.Errorf("%w: %w", ErrChangeDir, err)
	}
	defer func() {
		if err := os.Chdir(originalDir); err != nil {
			r.Logger.Warn("failed to restore working directory", "dir", originalDir, "error", err)
		}
	}()

	if r.Stdout != nil {
		io.WriteString(r.Stdout, ClearScreen)
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	// Ctrl+C belongs to the child while it owns the terminal
	defer IgnoreInterrupts()()

	r.Logger.Info("launching", "dir", dir, "argv", argv)

	if err := cmd.Start(); err != nil {
		return 1, fmt.Errorf("%w: %w", ErrLaunch, err)
	}

	err = cmd.Wait()
	code := exitCode(cmd, err)
	r.Logger.Info("child exited", "pid", cmd.Process.Pid, "code", code)

	return code, nil
}

// exitCode maps the wait result to a process status. Children killed by a
// signal report -1 from ExitCode; those map to 1.
func exitCode(cmd *exec.Cmd, err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code > 0 {
			return code
		}
		return 1
	}
	if err != nil || cmd.ProcessState == nil {
		return 1
	}
	return cmd.ProcessState.ExitCode()
}

// IgnoreInterrupts stops SIGINT from terminating this process until the
// returned function is called. A foreground child still receives it from
// the terminal.
func IgnoreInterrupts() (stop func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-sigs:
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(sigs)
		close(done)
	}
}
