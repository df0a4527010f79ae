package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/idomanteu/claude-code-launcher/internal/config"
	"github.com/idomanteu/claude-code-launcher/internal/process"
	"github.com/idomanteu/claude-code-launcher/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestColorDisabled(t *testing.T) {
	tests := []struct {
		name    string
		noColor bool
		vars    map[string]string
		tty     bool
		want    bool
	}{
		{"color terminal", false, map[string]string{"TERM": "xterm-256color"}, true, false},
		{"not a tty", false, map[string]string{"TERM": "xterm-256color"}, false, true},
		{"NO_COLOR set", false, map[string]string{"TERM": "xterm", "NO_COLOR": "1"}, true, true},
		{"dumb terminal", false, map[string]string{"TERM": "dumb"}, true, true},
		{"missing TERM", false, map[string]string{}, true, true},
		{"config opt-out", true, map[string]string{"TERM": "xterm"}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{NoColor: tt.noColor}
			assert.Equal(t, tt.want, colorDisabled(cfg, env(tt.vars), tt.tty))
		})
	}
}

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launcher.log")
	logger, closeLog, err := newLogger(&config.Config{LogFile: path, Debug: true})
	require.NoError(t, err)

	logger.Debug("scanned projects", "count", 3)
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "scanned projects")
	assert.Contains(t, string(data), "count=3")
}

func TestNewLoggerInfoLevelByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launcher.log")
	logger, closeLog, err := newLogger(&config.Config{LogFile: path})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNewLoggerBadPathFallsBack(t *testing.T) {
	logger, closeLog, err := newLogger(&config.Config{LogFile: filepath.Join(t.TempDir(), "missing", "x.log")})
	defer closeLog()
	assert.Error(t, err)
	require.NotNil(t, logger)
}

func TestRunStartupFailures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  string
	}{
		{
			name: "unreadable root",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing")
			},
			want: "Error reading directory",
		},
		{
			name: "no subdirectories",
			setup: func(t *testing.T) string {
				root := t.TempDir()
				require.NoError(t, os.Mkdir(filepath.Join(root, ".hidden"), 0755))
				require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), nil, 0644))
				return root
			},
			want: "No directories found in",
		},
		{
			name:  "no home directory",
			setup: func(t *testing.T) string { return "" },
			want:  "cannot determine the home directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			code := run(&config.Config{RootPath: tt.setup(t)}, &stderr)

			assert.Equal(t, 1, code)
			assert.True(t, strings.Contains(stderr.String(), tt.want), "stderr: %q", stderr.String())
		})
	}
}

func TestRootCmdRejectsArguments(t *testing.T) {
	code := 0
	cmd := NewRootCmd(&code)
	cmd.SetArgs([]string{"some-project"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
}

func TestRootCmdReportsMissingRoot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var stderr bytes.Buffer
	code := 0
	cmd := NewRootCmd(&code)
	cmd.SetArgs([]string{})
	cmd.SetErr(&stderr)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), filepath.Join(home, "Documents", "GitHub"))
}

// projectsRoot creates "newer" and "older" project folders an hour apart
func projectsRoot(t *testing.T) string {
	root := t.TempDir()
	now := time.Now()
	for i, name := range []string{"newer", "older"} {
		dir := filepath.Join(root, name)
		require.NoError(t, os.Mkdir(dir, 0755))
		mtime := now.Add(-time.Duration(i) * time.Hour)
		require.NoError(t, os.Chtimes(dir, mtime, mtime))
	}
	return root
}

// interruptOnKey turns the first key press into an interrupt, as SIGINT would
func interruptOnKey(_ tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.KeyMsg); ok {
		return tea.InterruptMsg{}
	}
	return msg
}

type launchCall struct {
	dir  string
	argv []string
}

func TestRunSession(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		extra      []tea.ProgramOption
		status     int
		launchErr  error
		wantCode   int
		wantCall   *launchCall
		wantClear  bool
		wantStderr string
	}{
		{
			name:     "shortcut passes child status through",
			input:    "2\r",
			status:   7,
			wantCode: 7,
			wantCall: &launchCall{"older", []string{"claude"}},
		},
		{
			name:     "enter after moving down",
			input:    "j\r",
			wantCode: 0,
			wantCall: &launchCall{"older", []string{"claude"}},
		},
		{
			name:     "dangerous mode",
			input:    "d1",
			status:   3,
			wantCode: 3,
			wantCall: &launchCall{"newer", []string{"claude", "--dangerously-skip-permissions"}},
		},
		{
			name:      "quit clears the screen",
			input:     "q",
			wantCode:  0,
			wantClear: true,
		},
		{
			name:      "ctrl+c quits",
			input:     "\x03",
			wantCode:  0,
			wantClear: true,
		},
		{
			name:      "interrupt exits cleanly",
			input:     "x",
			extra:     []tea.ProgramOption{tea.WithFilter(interruptOnKey)},
			wantCode:  0,
			wantClear: true,
		},
		{
			name:       "launch failure",
			input:      "1",
			status:     1,
			launchErr:  fmt.Errorf("%w: exec: not found", process.ErrLaunch),
			wantCode:   1,
			wantCall:   &launchCall{"newer", []string{"claude"}},
			wantStderr: "Error launching newer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := projectsRoot(t)
			var stdout, stderr bytes.Buffer
			var call *launchCall

			l := &launcher{
				stdout:      &stdout,
				stderr:      &stderr,
				interactive: true,
				stdoutTTY:   true,
				getenv:      env(nil),
				options: append([]tea.ProgramOption{
					tea.WithInput(strings.NewReader(tt.input)),
					tea.WithOutput(io.Discard),
				}, tt.extra...),
				launch: func(_ *slog.Logger, dir string, argv []string) (int, error) {
					call = &launchCall{dir, argv}
					return tt.status, tt.launchErr
				},
			}

			code := l.run(&config.Config{RootPath: root})

			assert.Equal(t, tt.wantCode, code)
			if tt.wantCall == nil {
				assert.Nil(t, call, "nothing should be launched")
			} else {
				require.NotNil(t, call, "expected a launch")
				assert.Equal(t, filepath.Join(root, tt.wantCall.dir), call.dir)
				assert.Equal(t, tt.wantCall.argv, call.argv)
			}
			if tt.wantClear {
				assert.Equal(t, process.ClearScreen, stdout.String())
			} else {
				assert.Empty(t, stdout.String())
			}
			if tt.wantStderr != "" {
				assert.Contains(t, stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestRunRequiresInteractiveTerminal(t *testing.T) {
	var stderr bytes.Buffer
	launched := false
	l := &launcher{
		stdout: io.Discard,
		stderr: &stderr,
		getenv: env(nil),
		launch: func(*slog.Logger, string, []string) (int, error) {
			launched = true
			return 0, nil
		},
	}

	code := l.run(&config.Config{RootPath: projectsRoot(t)})

	assert.Equal(t, 1, code)
	assert.False(t, launched)
	assert.Contains(t, stderr.String(), "requires an interactive terminal")
}

func TestSelectProjectReadsKeys(t *testing.T) {
	projects, err := scanner.Scan(projectsRoot(t), nil)
	require.NoError(t, err)

	sel, err := selectProject(projects,
		tea.WithInput(strings.NewReader("2\r")),
		tea.WithOutput(io.Discard),
	)
	require.NoError(t, err)
	require.NotNil(t, sel)
	assert.Equal(t, "older", sel.Project.Name)
	assert.False(t, sel.Dangerous)
}

func TestSelectProjectInterruptIsNotAnError(t *testing.T) {
	projects, err := scanner.Scan(projectsRoot(t), nil)
	require.NoError(t, err)

	sel, err := selectProject(projects,
		tea.WithInput(strings.NewReader("x")),
		tea.WithOutput(io.Discard),
		tea.WithFilter(interruptOnKey),
	)
	assert.NoError(t, err)
	assert.Nil(t, sel)
}
