package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// CloseSessionTool handles close session requests
type CloseSessionTool struct {
	sessions *session.Manager
}

// NewCloseSessionTool creates a new close session tool
func NewCloseSessionTool(sessions *session.Manager) *CloseSessionTool {
	return &CloseSessionTool{sessions: sessions}
}

// GetTool returns the MCP tool definition
func (t *CloseSessionTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolCloseSession,
		mcp.WithDescription("Close a calculator session and discard its state"),
		mcp.WithString("session_id", mcp.Required(), mcp.Description(sessionIDDescription)),
	)
}

// Handle processes the tool request
func (t *CloseSessionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := ParseSessionID(req)
	if err != nil {
		slog.Debug("MCP tool called with missing session_id parameter", "tool", ToolCloseSession)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := t.sessions.Close(sessionID); err != nil {
		return sessionError(ToolCloseSession, sessionID, err), nil
	}

	toolResult := results.CloseSessionToolResult{
		Message:   fmt.Sprintf("Closed session %s.", sessionID),
		Arguments: results.CloseSessionToolArgs{SessionID: sessionID},
	}
	return marshalToolResult(ToolCloseSession, toolResult)
}
