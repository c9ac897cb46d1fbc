package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"
)

const sessionIDDescription = "Session ID, which is included in new_session and list_sessions responses"

// ParseSessionID extracts the required session_id argument
func ParseSessionID(req mcp.CallToolRequest) (string, error) {
	sessionID := mcp.ParseString(req, "session_id", "")
	if sessionID == "" {
		return "", errors.New("session_id parameter is required")
	}
	return sessionID, nil
}

// ParseDigit extracts the digit argument, accepting either "7" or 7
func ParseDigit(req mcp.CallToolRequest) (rune, string, error) {
	raw := mcp.ParseArgument(req, "digit", nil)
	if raw == nil {
		return 0, "", errors.New("digit parameter is required")
	}

	digit, err := cast.ToStringE(raw)
	if err != nil {
		return 0, "", fmt.Errorf("digit must be a single numeral: %w", err)
	}
	if len(digit) != 1 || digit[0] < '0' || digit[0] > '9' {
		return 0, digit, fmt.Errorf("digit must be a single numeral 0-9, got %q", digit)
	}
	return rune(digit[0]), digit, nil
}

// ParseOperator extracts the operator argument
func ParseOperator(req mcp.CallToolRequest) (calculator.Operator, string, error) {
	raw := mcp.ParseArgument(req, "operator", nil)
	if raw == nil {
		return calculator.NoOperator, "", errors.New("operator parameter is required")
	}

	symbol, err := cast.ToStringE(raw)
	if err != nil {
		return calculator.NoOperator, "", fmt.Errorf("operator must be one of + - * /: %w", err)
	}
	op, err := calculator.ParseOperator(symbol)
	if err != nil {
		return calculator.NoOperator, symbol, fmt.Errorf("operator must be one of + - * /: %w", err)
	}
	return op, symbol, nil
}

// sessionError converts a session lookup failure into a tool error
func sessionError(tool, sessionID string, err error) *mcp.CallToolResult {
	slog.Debug("Session lookup failed", "tool", tool, "session_id", sessionID, "error", err)
	if errors.Is(err, session.ErrSessionNotFound) {
		return mcp.NewToolResultError(
			fmt.Sprintf("Session %s does not exist. It may have been closed or expired; create a new one with %s.", sessionID, ToolNewSession),
		)
	}
	return mcp.NewToolResultError(fmt.Sprintf("Failed to look up session %s: %v", sessionID, err))
}

// marshalToolResult renders a tool result as indented JSON text
func marshalToolResult(tool string, toolResult any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		slog.Error("Failed to marshal tool result", "tool", tool, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result into JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// displayMessage summarizes a display for the tool result message
func displayMessage(state calculator.State) string {
	switch state.Phase() {
	case calculator.PhaseErrored:
		return "The calculation did not produce a finite number. Enter a digit or clear to start over."
	case calculator.PhaseJustEvaluated:
		return "Showing the result. Equals repeats the last operation; a digit starts a new calculation."
	case calculator.PhaseAccumulating:
		return fmt.Sprintf("Entering the operand for %s.", state.Operator.Symbol())
	default:
		return "Entering a number."
	}
}
