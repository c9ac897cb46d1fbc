package types

import (
	"time"

	"github.com/averycrespi/calc-mcp/internal/calculator"
)

// Config represents the configuration for the calc-mcp server
type Config struct {
	LogLevel    string               `json:"log_level,omitempty" yaml:"log_level"`
	MaxSessions int                  `json:"max_sessions" yaml:"max_sessions"`
	IdleTimeout time.Duration        `json:"idle_timeout" yaml:"idle_timeout"`
	Format      calculator.Formatter `json:"format" yaml:"format"`
}
