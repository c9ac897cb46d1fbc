package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/internal/tools"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &CalcServer{}

// CalcServer represents the calculator MCP server
type CalcServer struct {
	mcpServer *server.MCPServer
	sessions  *session.Manager
	config    types.Config
	stdin     io.Reader
	stdout    io.Writer
}

// NewCalcServer creates a new calculator MCP server that speaks over stdio
func NewCalcServer(config types.Config) *CalcServer {
	return NewCalcServerWithIO(config, os.Stdin, os.Stdout)
}

// NewCalcServerWithIO creates a new calculator MCP server on the given streams
func NewCalcServerWithIO(config types.Config, stdin io.Reader, stdout io.Writer) *CalcServer {
	mcpServer := server.NewMCPServer(project.Name, project.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	sessions := session.NewManager(session.Options{
		MaxSessions: config.MaxSessions,
		IdleTimeout: config.IdleTimeout,
		Formatter:   config.Format,
	})

	s := &CalcServer{
		mcpServer: mcpServer,
		sessions:  sessions,
		config:    config,
		stdin:     stdin,
		stdout:    stdout,
	}
	s.registerTools()
	return s
}

func (s *CalcServer) registerTools() {
	for _, tool := range tools.NewTools(s.sessions) {
		s.mcpServer.AddTool(tool.GetTool(), tool.Handle)
	}
}

// Sessions returns the session manager backing the tools
func (s *CalcServer) Sessions() *session.Manager {
	return s.sessions
}

// Serve serves MCP requests until the input stream ends or ctx is cancelled
func (s *CalcServer) Serve(ctx context.Context) error {
	slog.Info("Starting calculator MCP server",
		"name", project.Name,
		"version", project.Version,
		"max_sessions", s.config.MaxSessions,
		"idle_timeout", s.config.IdleTimeout)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.config.IdleTimeout > 0 {
		go s.pruneSessions(ctx, pruneInterval(s.config.IdleTimeout))
	}

	stdioServer := server.NewStdioServer(s.mcpServer)
	if err := stdioServer.Listen(ctx, s.stdin, s.stdout); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	slog.Info("Calculator MCP server stopped", "open_sessions", s.sessions.Len())
	return nil
}

// pruneSessions periodically closes idle sessions until ctx is done
func (s *CalcServer) pruneSessions(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.sessions.Prune(); n > 0 {
				slog.Info("Pruned idle sessions", "count", n, "open_sessions", s.sessions.Len())
			}
		}
	}
}

// pruneInterval checks a few times per timeout, but no more than once a second
func pruneInterval(idleTimeout time.Duration) time.Duration {
	interval := idleTimeout / 4
	if interval < time.Second {
		interval = time.Second
	}
	return interval
}
