// Package config loads commitcheck settings.
//
// Settings are layered, lowest precedence first:
//
//  1. built-in defaults
//  2. the user file $XDG_CONFIG_HOME/commitcheck/config.yaml
//  3. the repository file <worktree>/.commitcheck.yaml
//  4. an explicitly named file
//  5. COMMITCHECK_* environment variables
//  6. overrides supplied by the caller (command-line flags)
//
// Missing files are skipped. A file that exists but cannot be parsed is an error.
package config

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	// AppName names the user config directory and the env prefix.
	AppName = "commitcheck"

	// RepoFileName is the config file looked up at the worktree root.
	RepoFileName = ".commitcheck.yaml"

	// EnvPrefix prefixes environment overrides, e.g. COMMITCHECK_FORMAT.
	EnvPrefix = "COMMITCHECK"
)

// Keys accepted in files, environment and overrides.
const (
	KeyFormat   = "format"
	KeyLogLevel = "log.level"
	KeyHints    = "hints"
)

// Config holds all commitcheck configuration.
type Config struct {
	// Format selects the report format: "text" or "json".
	Format string `mapstructure:"format"`
	// Log configures diagnostic logging on stderr.
	Log LogConfig `mapstructure:"log"`
	// Hints attaches advisory suggestions to structural mismatches.
	Hints bool `mapstructure:"hints"`

	// Sources lists the config files that were merged, in order.
	Sources []string `mapstructure:"-"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Format: "text",
		Log:    LogConfig{Level: "warn"},
		Hints:  true,
	}
}

// SlogLevel converts the configured level. Unknown values map to warn.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// UserFile returns the per-user config file path under the XDG config home.
func UserFile() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}
