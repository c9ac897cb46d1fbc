package tools

import (
	"context"
	"log/slog"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetDisplayTool handles get display requests
type GetDisplayTool struct {
	sessions *session.Manager
}

// NewGetDisplayTool creates a new get display tool
func NewGetDisplayTool(sessions *session.Manager) *GetDisplayTool {
	return &GetDisplayTool{sessions: sessions}
}

// GetTool returns the MCP tool definition
func (t *GetDisplayTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolGetDisplay,
		mcp.WithDescription("Show the expression line and result of a calculator session without changing it"),
		mcp.WithString("session_id", mcp.Required(), mcp.Description(sessionIDDescription)),
	)
}

// Handle processes the tool request
func (t *GetDisplayTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := ParseSessionID(req)
	if err != nil {
		slog.Debug("MCP tool called with missing session_id parameter", "tool", ToolGetDisplay)
		return mcp.NewToolResultError(err.Error()), nil
	}

	s, err := t.sessions.Get(sessionID)
	if err != nil {
		return sessionError(ToolGetDisplay, sessionID, err), nil
	}

	state := s.State()
	toolResult := results.DisplayToolResult{
		Message:   displayMessage(state),
		Arguments: results.DisplayToolArgs{SessionID: sessionID},
		Display:   results.NewDisplay(sessionID, state, state.Snapshot()),
	}
	return marshalToolResult(ToolGetDisplay, toolResult)
}
