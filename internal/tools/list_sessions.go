package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListSessionsTool handles list sessions requests
type ListSessionsTool struct {
	sessions *session.Manager
}

// NewListSessionsTool creates a new list sessions tool
func NewListSessionsTool(sessions *session.Manager) *ListSessionsTool {
	return &ListSessionsTool{sessions: sessions}
}

// GetTool returns the MCP tool definition
func (t *ListSessionsTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolListSessions,
		mcp.WithDescription("List open calculator sessions with their current displays, oldest first"),
	)
}

// Handle processes the tool request
func (t *ListSessionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	infos := t.sessions.List()

	toolResult := results.ListSessionsToolResult{
		Sessions: make([]results.SessionInfo, 0, len(infos)),
	}
	for _, info := range infos {
		toolResult.Sessions = append(toolResult.Sessions, results.NewSessionInfo(info))
	}

	if len(toolResult.Sessions) == 0 {
		toolResult.Message = fmt.Sprintf("No open sessions. Create one with %s.", ToolNewSession)
	} else {
		toolResult.Message = fmt.Sprintf("Found %d open sessions.", len(toolResult.Sessions))
	}
	return marshalToolResult(ToolListSessions, toolResult)
}
