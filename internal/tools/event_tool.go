package tools

import (
	"context"
	"log/slog"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// eventParser builds the engine event for a request and records the parsed arguments
type eventParser func(req mcp.CallToolRequest, args *results.DisplayToolArgs) (calculator.Event, error)

// EventTool feeds a single calculator input to a session
type EventTool struct {
	name        string
	description string
	options     []mcp.ToolOption
	parse       eventParser
	sessions    *session.Manager
}

func newEventTool(name, description string, sessions *session.Manager, parse eventParser, options ...mcp.ToolOption) *EventTool {
	return &EventTool{
		name:        name,
		description: description,
		options:     options,
		parse:       parse,
		sessions:    sessions,
	}
}

// fixedEvent parses requests that carry no payload besides the session
func fixedEvent(kind calculator.EventKind) eventParser {
	return func(mcp.CallToolRequest, *results.DisplayToolArgs) (calculator.Event, error) {
		return calculator.Event{Kind: kind}, nil
	}
}

// NewDigitTool creates the tool that types one numeral
func NewDigitTool(sessions *session.Manager) *EventTool {
	return newEventTool(ToolDigit,
		"Type a single digit into a calculator session",
		sessions,
		func(req mcp.CallToolRequest, args *results.DisplayToolArgs) (calculator.Event, error) {
			d, digit, err := ParseDigit(req)
			args.Digit = digit
			if err != nil {
				return calculator.Event{}, err
			}
			return calculator.DigitEvent(d), nil
		},
		mcp.WithString("digit",
			mcp.Required(),
			mcp.Description("Digit to type, 0 through 9"),
			mcp.Enum("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
		),
	)
}

// NewDecimalPointTool creates the tool that types a decimal point
func NewDecimalPointTool(sessions *session.Manager) *EventTool {
	return newEventTool(ToolDecimalPoint,
		"Type a decimal point into a calculator session. Ignored if the number already has one.",
		sessions, fixedEvent(calculator.EventDecimalPoint))
}

// NewToggleSignTool creates the tool that negates the current entry
func NewToggleSignTool(sessions *session.Manager) *EventTool {
	return newEventTool(ToolToggleSign,
		"Flip the sign of the number being entered in a calculator session",
		sessions, fixedEvent(calculator.EventToggleSign))
}

// NewPercentTool creates the tool that divides the current entry by 100
func NewPercentTool(sessions *session.Manager) *EventTool {
	return newEventTool(ToolPercent,
		"Divide the number being entered in a calculator session by 100",
		sessions, fixedEvent(calculator.EventPercent))
}

// NewBackspaceTool creates the tool that deletes the last typed character
func NewBackspaceTool(sessions *session.Manager) *EventTool {
	return newEventTool(ToolBackspace,
		"Delete the last typed character in a calculator session",
		sessions, fixedEvent(calculator.EventBackspace))
}

// NewClearTool creates the tool that resets a session
func NewClearTool(sessions *session.Manager) *EventTool {
	return newEventTool(ToolClear,
		"Reset a calculator session to its initial state",
		sessions, fixedEvent(calculator.EventClear))
}

// NewChooseOperatorTool creates the tool that selects an arithmetic operator
func NewChooseOperatorTool(sessions *session.Manager) *EventTool {
	return newEventTool(ToolChooseOperator,
		"Choose the arithmetic operator in a calculator session, evaluating any pending operation first",
		sessions,
		func(req mcp.CallToolRequest, args *results.DisplayToolArgs) (calculator.Event, error) {
			op, symbol, err := ParseOperator(req)
			args.Operator = symbol
			if err != nil {
				return calculator.Event{}, err
			}
			return calculator.OperatorEvent(op), nil
		},
		mcp.WithString("operator",
			mcp.Required(),
			mcp.Description("Operator symbol"),
			mcp.Enum("+", "-", "*", "/"),
		),
	)
}

// NewEqualsTool creates the tool that evaluates the pending operation
func NewEqualsTool(sessions *session.Manager) *EventTool {
	return newEventTool(ToolEquals,
		"Evaluate the pending operation in a calculator session. Repeating it reapplies the last operand.",
		sessions, fixedEvent(calculator.EventEquals))
}

// GetTool returns the MCP tool definition
func (t *EventTool) GetTool() mcp.Tool {
	options := []mcp.ToolOption{
		mcp.WithDescription(t.description),
		mcp.WithString("session_id", mcp.Required(), mcp.Description(sessionIDDescription)),
	}
	return mcp.NewTool(t.name, append(options, t.options...)...)
}

// Handle processes the tool request
func (t *EventTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := ParseSessionID(req)
	if err != nil {
		slog.Debug("MCP tool called with missing session_id parameter", "tool", t.name)
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := results.DisplayToolArgs{SessionID: sessionID}
	event, err := t.parse(req, &args)
	if err != nil {
		slog.Debug("Invalid tool arguments", "tool", t.name, "session_id", sessionID, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	s, err := t.sessions.Get(sessionID)
	if err != nil {
		return sessionError(t.name, sessionID, err), nil
	}

	state, snap := s.ApplyEvents(event)

	slog.Debug("Calculator event applied",
		"tool", t.name,
		"session_id", sessionID,
		"event", event.Kind.String(),
		"result", snap.Result,
		"phase", state.Phase().String())

	toolResult := results.DisplayToolResult{
		Message:   displayMessage(state),
		Arguments: args,
		Display:   results.NewDisplay(sessionID, state, snap),
	}
	return marshalToolResult(t.name, toolResult)
}
