package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the launcher settings. RootPath is never read from disk; it is
// set by DefaultConfig and may be overridden by callers such as tests.
type Config struct {
	RootPath string `yaml:"-"`
	LogFile  string `yaml:"log_file"`
	Debug    bool   `yaml:"debug"`
	NoColor  bool   `yaml:"no_color"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.RootPath = DefaultRootPath(home)
	}
	return cfg
}

// DefaultRootPath returns the projects folder under the given home directory
func DefaultRootPath(home string) string {
	return filepath.Join(home, "Documents", "GitHub")
}

// globalConfigDir returns the global config directory path (~/.clive)
func globalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".clive"), nil
}

// globalConfigPath returns the settings file path (~/.clive/launcher.yaml)
func globalConfigPath() (string, error) {
	dir, err := globalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "launcher.yaml"), nil
}

// Load reads ~/.clive/launcher.yaml on top of the defaults.
// A missing file is not an error.
func Load() (*Config, error) {
	path, err := globalConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the settings at path on top of the defaults.
// On a parse error the defaults are returned alongside the error.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.LogFile = expandHome(file.LogFile)
	cfg.Debug = file.Debug
	cfg.NoColor = file.NoColor

	return cfg, nil
}

// expandHome resolves a leading ~/ against the user's home directory
func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
