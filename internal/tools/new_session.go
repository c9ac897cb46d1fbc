package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// NewSessionTool handles new session requests
type NewSessionTool struct {
	sessions *session.Manager
}

// NewNewSessionTool creates a new new-session tool
func NewNewSessionTool(sessions *session.Manager) *NewSessionTool {
	return &NewSessionTool{sessions: sessions}
}

// GetTool returns the MCP tool definition
func (t *NewSessionTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolNewSession,
		mcp.WithDescription("Open a new calculator session, returning its session ID and initial display"),
	)
}

// Handle processes the tool request
func (t *NewSessionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s, err := t.sessions.Create()
	if err != nil {
		slog.Debug("Failed to create session", "tool", ToolNewSession, "error", err)
		if errors.Is(err, session.ErrSessionLimit) {
			return mcp.NewToolResultError(
				fmt.Sprintf("Too many open sessions. Close one with %s first.", ToolCloseSession),
			), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create session: %v", err)), nil
	}

	state := s.State()
	toolResult := results.NewSessionToolResult{
		Message: fmt.Sprintf("Created session %s.", s.ID()),
		Display: results.NewDisplay(s.ID(), state, state.Snapshot()),
	}

	slog.Debug("MCP tool completed successfully", "tool", ToolNewSession, "session_id", s.ID())
	return marshalToolResult(ToolNewSession, toolResult)
}
