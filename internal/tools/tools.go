package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names
const (
	ToolNewSession     = "new_session"
	ToolCloseSession   = "close_session"
	ToolListSessions   = "list_sessions"
	ToolGetDisplay     = "get_display"
	ToolDigit          = "digit"
	ToolDecimalPoint   = "decimal_point"
	ToolToggleSign     = "toggle_sign"
	ToolPercent        = "percent"
	ToolBackspace      = "backspace"
	ToolClear          = "clear"
	ToolChooseOperator = "choose_operator"
	ToolEquals         = "equals"
	ToolPressKeys      = "press_keys"
)

// Tool is an MCP tool definition together with its handler
type Tool interface {
	GetTool() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// NewTools creates every calculator tool, backed by the given sessions
func NewTools(sessions *session.Manager) []Tool {
	return []Tool{
		NewNewSessionTool(sessions),
		NewCloseSessionTool(sessions),
		NewListSessionsTool(sessions),
		NewGetDisplayTool(sessions),
		NewDigitTool(sessions),
		NewDecimalPointTool(sessions),
		NewToggleSignTool(sessions),
		NewPercentTool(sessions),
		NewBackspaceTool(sessions),
		NewClearTool(sessions),
		NewChooseOperatorTool(sessions),
		NewEqualsTool(sessions),
		NewPressKeysTool(sessions),
	}
}
