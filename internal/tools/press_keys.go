package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/averycrespi/calc-mcp/internal/keymap"
	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressKeysTool handles press keys requests
type PressKeysTool struct {
	sessions *session.Manager
}

// NewPressKeysTool creates a new press keys tool
func NewPressKeysTool(sessions *session.Manager) *PressKeysTool {
	return &PressKeysTool{sessions: sessions}
}

// GetTool returns the MCP tool definition
func (t *PressKeysTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPressKeys,
		mcp.WithDescription("Press a sequence of calculator keys in one step, returning the final display"),
		mcp.WithString("session_id", mcp.Required(), mcp.Description(sessionIDDescription)),
		mcp.WithString(
			"keys",
			mcp.Required(),
			mcp.Description("Whitespace-separated keys: 0-9, ., + - * /, = or Enter, Backspace, Escape, "+
				"and the buttons sign, percent, clear, dot, equals. For example: \"1 2 + 3 Enter\""),
		),
	)
}

// Handle processes the tool request
func (t *PressKeysTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := ParseSessionID(req)
	if err != nil {
		slog.Debug("MCP tool called with missing session_id parameter", "tool", ToolPressKeys)
		return mcp.NewToolResultError(err.Error()), nil
	}

	keys := mcp.ParseString(req, "keys", "")
	events, err := keymap.ParseSequence(keys)
	if err != nil {
		slog.Debug("Invalid key sequence", "tool", ToolPressKeys, "session_id", sessionID, "keys", keys, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Invalid keys: %v", err)), nil
	}
	if len(events) == 0 {
		return mcp.NewToolResultError("keys parameter is required"), nil
	}

	s, err := t.sessions.Get(sessionID)
	if err != nil {
		return sessionError(ToolPressKeys, sessionID, err), nil
	}

	state, snap := s.ApplyEvents(events...)

	slog.Debug("Calculator keys applied",
		"tool", ToolPressKeys,
		"session_id", sessionID,
		"key_count", len(events),
		"result", snap.Result,
		"phase", state.Phase().String())

	toolResult := results.DisplayToolResult{
		Message:   displayMessage(state),
		Arguments: results.DisplayToolArgs{SessionID: sessionID, Keys: keys},
		Display:   results.NewDisplay(sessionID, state, snap),
	}
	return marshalToolResult(ToolPressKeys, toolResult)
}
