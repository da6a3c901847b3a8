// SPDX-License-Identifier: MIT

// Package config holds the CLI settings of rref and their loading rules.
//
// Sources, highest priority first: CLI flags, RREF_* environment variables,
// the YAML config file ($HOME/.rref/config.yaml), then DefaultConfig.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Keys shared by viper, flags and the YAML file.
const (
	KeySeed        = "seed"
	KeyLogLevel    = "log_level"
	KeyShowChanges = "show_changes"
	KeyHints       = "hints"

	// EnvPrefix makes RREF_SEED override seed, and so on.
	EnvPrefix = "RREF"

	dirName  = ".rref"
	fileName = "config.yaml"
)

var (
	// ErrInvalidLogLevel is returned for a log_level other than debug, info, warn or error.
	ErrInvalidLogLevel = errors.New("config: invalid log level")

	// ErrExists is returned by WriteDefault when the target file already exists.
	ErrExists = errors.New("config: file already exists")
)

// Config is the effective CLI configuration.
type Config struct {
	// Seed drives puzzle generation; 0 seeds from the clock.
	Seed        int64  `yaml:"seed" mapstructure:"seed"`
	LogLevel    string `yaml:"log_level" mapstructure:"log_level"`
	ShowChanges bool   `yaml:"show_changes" mapstructure:"show_changes"`
	Hints       bool   `yaml:"hints" mapstructure:"hints"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Seed:        0,
		LogLevel:    "info",
		ShowChanges: true,
		Hints:       true,
	}
}

// SetDefaults registers DefaultConfig values on v.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyShowChanges, d.ShowChanges)
	v.SetDefault(KeyHints, d.Hints)
}

// Load decodes the settings currently visible to v and validates them.
func Load(v *viper.Viper) (Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field values that the type system cannot.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// SlogLevel maps LogLevel onto slog; unknown values fall back to info.
func (c Config) SlogLevel() slog.Level {
	lvl, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}

	return lvl
}

// ParseLevel accepts debug, info, warn and error, case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%q: %w", s, ErrInvalidLogLevel)
	}
}

// YAML renders c as a YAML document.
func (c Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}

	return out, nil
}

// DefaultPath returns $HOME/.rref/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: home directory: %w", err)
	}

	return filepath.Join(home, dirName, fileName), nil
}

// DefaultDir returns $HOME/.rref, the directory searched for config.yaml.
func DefaultDir() (string, error) {
	p, err := DefaultPath()
	if err != nil {
		return "", err
	}

	return filepath.Dir(p), nil
}

const fileHeader = `# rref configuration
#
# Priority (highest first):
#   1. CLI flags
#   2. Environment variables (RREF_SEED, RREF_LOG_LEVEL, ...)
#   3. This file
#   4. Built-in defaults
#
# seed: 0 picks a new puzzle sequence every run.

`

// WriteDefault writes the commented default configuration to path,
// creating parent directories. An existing file is never overwritten.
func WriteDefault(path string) (err error) {
	if _, statErr := os.Stat(path); statErr == nil {
		return fmt.Errorf("%s: %w", path, ErrExists)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}

	body, err := DefaultConfig().YAML()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s: %w", path, ErrExists)
		}
		return fmt.Errorf("config: create file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("config: close file: %w", closeErr)
		}
	}()

	if _, err = f.WriteString(fileHeader); err != nil {
		return fmt.Errorf("config: write: %w", err)
	}
	if _, err = f.Write(body); err != nil {
		return fmt.Errorf("config: write: %w", err)
	}

	return nil
}
