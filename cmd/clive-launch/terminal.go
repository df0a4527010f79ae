package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/idomanteu/claude-code-launcher/internal/config"
	"github.com/muesli/termenv"
)

// colorDisabled reports whether output should be monochrome
func colorDisabled(cfg *config.Config, getenv func(string) string, stdoutTTY bool) bool {
	if cfg.NoColor || !stdoutTTY {
		return true
	}
	if getenv("NO_COLOR") != "" {
		return true
	}
	switch getenv("TERM") {
	case "", "dumb":
		return true
	}
	return false
}

func setupColor(cfg *config.Config, getenv func(string) string, stdoutTTY bool) {
	if colorDisabled(cfg, getenv, stdoutTTY) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// newLogger builds the process logger. The terminal belongs to the menu and
// then to the child, so records only ever go to the configured log file.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	discard := slog.New(slog.NewTextHandler(io.Discard, opts))

	if cfg.LogFile == "" {
		return discard, func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return discard, func() {}, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, opts)), func() { f.Close() }, nil
}
