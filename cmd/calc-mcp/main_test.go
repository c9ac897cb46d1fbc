package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parsedCommand returns a command whose flags have been parsed from args
func parsedCommand(t *testing.T, args ...string) (*cobra.Command, *rootOptions) {
	t.Helper()

	opts := &rootOptions{}
	cmd := &cobra.Command{Use: "test"}
	bindFlags(cmd, opts)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, opts
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cmd, opts := parsedCommand(t)

	cfg, err := loadConfig(cmd, opts)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 64, cfg.MaxSessions)
	assert.Equal(t, 30*time.Minute, cfg.IdleTimeout)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "log_level: warn\nmax_sessions: 8\nidle_timeout: 5m\n")

	t.Run("File only", func(t *testing.T) {
		cmd, opts := parsedCommand(t, "--config", path)

		cfg, err := loadConfig(cmd, opts)
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, 8, cfg.MaxSessions)
		assert.Equal(t, 5*time.Minute, cfg.IdleTimeout)
	})

	t.Run("Flags win", func(t *testing.T) {
		cmd, opts := parsedCommand(t, "--config", path, "--log-level", "debug", "--max-sessions", "0")

		cfg, err := loadConfig(cmd, opts)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 0, cfg.MaxSessions)
		assert.Equal(t, 5*time.Minute, cfg.IdleTimeout)
	})
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "Missing config file", args: []string{"--config", filepath.Join(os.TempDir(), "does-not-exist.yaml")}},
		{name: "Bad log level", args: []string{"--log-level", "loud"}},
		{name: "Negative max sessions", args: []string{"--max-sessions", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, opts := parsedCommand(t, tt.args...)

			_, err := loadConfig(cmd, opts)
			assert.Error(t, err)
		})
	}
}

func TestRootCommand_RejectsBadFlags(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--log-level", "loud"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.ExecuteContext(context.Background())
	assert.ErrorContains(t, err, "invalid log level")
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.ExecuteContext(context.Background()))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "key=value")
}
