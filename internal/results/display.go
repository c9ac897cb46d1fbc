package results

import "github.com/averycrespi/calc-mcp/internal/calculator"

// Display represents what a session's calculator currently shows
type Display struct {
	SessionID  string `json:"session_id"`
	Expression string `json:"expression"`
	Result     string `json:"result"`
	Phase      Phase  `json:"phase"`
	Errored    bool   `json:"errored"`
}

// NewDisplay creates a Display from a session's state and snapshot
func NewDisplay(sessionID string, state calculator.State, snap calculator.Snapshot) Display {
	return Display{
		SessionID:  sessionID,
		Expression: snap.Expression,
		Result:     snap.Result,
		Phase:      NewPhase(state.Phase()),
		Errored:    state.Errored(),
	}
}

// DisplayToolResult represents the result of any tool that feeds input to a session
type DisplayToolResult struct {
	Message   string          `json:"message"`
	Arguments DisplayToolArgs `json:"arguments"`
	Display   Display         `json:"display"`
}

// DisplayToolArgs represents the arguments of a tool that feeds input to a session
type DisplayToolArgs struct {
	SessionID string `json:"session_id"`
	Digit     string `json:"digit,omitempty"`
	Operator  string `json:"operator,omitempty"`
	Keys      string `json:"keys,omitempty"`
}
