// Package config loads and validates the server configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"gopkg.in/yaml.v3"
)

const (
	defaultLogLevel    = "info"
	defaultMaxSessions = 64
	defaultIdleTimeout = 30 * time.Minute
)

// Default returns the configuration used when no file is given
func Default() types.Config {
	return types.Config{
		LogLevel:    defaultLogLevel,
		MaxSessions: defaultMaxSessions,
		IdleTimeout: defaultIdleTimeout,
		Format:      calculator.DefaultFormatter,
	}
}

// Load reads a YAML config file over the defaults. An empty path returns the defaults.
func Load(path string) (types.Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return types.Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return types.Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := Validate(config); err != nil {
		return types.Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	slog.Debug("Loaded config file", "path", path)
	return config, nil
}

// Validate checks a configuration for values the server cannot run with
func Validate(config types.Config) error {
	var errs []error

	if _, err := ParseLogLevel(config.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if config.MaxSessions < 0 {
		errs = append(errs, fmt.Errorf("max_sessions must not be negative, got %d", config.MaxSessions))
	}
	if config.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("idle_timeout must not be negative, got %s", config.IdleTimeout))
	}
	if config.Format.MinExponent >= config.Format.MaxExponent {
		errs = append(errs, fmt.Errorf("format.min_exponent (%d) must be less than format.max_exponent (%d)",
			config.Format.MinExponent, config.Format.MaxExponent))
	}
	if config.Format.MinExponent > 0 || config.Format.MaxExponent < 1 {
		errs = append(errs, errors.New("format exponents must include 1 in the plain range"))
	}

	return errors.Join(errs...)
}

// ParseLogLevel converts a level name (debug, info, warn, error) into a slog.Level
func ParseLogLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: use debug, info, warn or error", level)
	}
	return l, nil
}
