// Copyright 2026 Marcelo Cantos
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "MICROSH_CONFIG"

// FsFactory returns the filesystem configuration is read from.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Config holds the global microsh configuration.
type Config struct {
	Exec  ExecConfig  `yaml:"exec"`
	Audit AuditConfig `yaml:"audit"`
	Log   LogConfig   `yaml:"log"`
}

// ExecConfig controls how command names become programs.
type ExecConfig struct {
	// ResolvePath searches PATH for command names. When false, the name is
	// used as a path as given.
	ResolvePath bool `yaml:"resolve_path"`
}

// AuditConfig controls the run journal. An empty path disables it.
type AuditConfig struct {
	Path string `yaml:"path"`
}

// LogConfig sets the debug log level (DEBUG, INFO, WARN, ERROR).
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Exec: ExecConfig{
			ResolvePath: true,
		},
	}
}

// Load reads the config from $MICROSH_CONFIG, or from the standard location
// (~/.config/microsh/config.yaml). If the file doesn't exist, returns the
// default config.
func Load() (*Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from the given path.
func LoadFrom(path string) (*Config, error) {
	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.Audit.Path = expandHome(cfg.Audit.Path)
	return cfg, nil
}

// ConfigPath returns the config file path, or "" if it cannot be
// determined.
func ConfigPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "microsh", "config.yaml")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
