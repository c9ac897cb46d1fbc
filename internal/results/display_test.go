package results

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhase(t *testing.T) {
	tests := []struct {
		name     string
		input    calculator.Phase
		expected Phase
	}{
		{name: "Idle", input: calculator.PhaseIdle, expected: PhaseIdle},
		{name: "Accumulating", input: calculator.PhaseAccumulating, expected: PhaseAccumulating},
		{name: "Just evaluated", input: calculator.PhaseJustEvaluated, expected: PhaseJustEvaluated},
		{name: "Errored", input: calculator.PhaseErrored, expected: PhaseErrored},
		{name: "Unknown - out of range", input: calculator.Phase(42), expected: PhaseUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewPhase(tt.input))
		})
	}
}

func TestNewDisplay(t *testing.T) {
	state, snap := calculator.New().ApplyAll(
		calculator.DigitEvent('9'),
		calculator.OperatorEvent(calculator.Divide),
		calculator.DigitEvent('0'),
		calculator.Event{Kind: calculator.EventEquals},
	)

	display := NewDisplay("abc", state, snap)

	assert.Equal(t, Display{
		SessionID:  "abc",
		Expression: "",
		Result:     calculator.ErrorText,
		Phase:      PhaseErrored,
		Errored:    true,
	}, display)
}

func TestDisplayJSON(t *testing.T) {
	state, snap := calculator.New().ApplyAll(
		calculator.DigitEvent('2'),
		calculator.OperatorEvent(calculator.Add),
	)

	data, err := json.Marshal(DisplayToolResult{
		Message:   "ok",
		Arguments: DisplayToolArgs{SessionID: "abc", Operator: "+"},
		Display:   NewDisplay("abc", state, snap),
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"message": "ok",
		"arguments": {"session_id": "abc", "operator": "+"},
		"display": {
			"session_id": "abc",
			"expression": "2 +",
			"result": "0",
			"phase": "accumulating",
			"errored": false
		}
	}`, string(data))
}

func TestNewSessionInfo(t *testing.T) {
	created := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	state, _ := calculator.New().Digit('5')

	info := NewSessionInfo(session.Info{
		ID:        "abc",
		CreatedAt: created,
		LastUsed:  created.Add(time.Second),
		State:     state,
	})

	assert.Equal(t, created, info.CreatedAt)
	assert.Equal(t, created.Add(time.Second), info.LastUsed)
	assert.Equal(t, "abc", info.Display.SessionID)
	assert.Equal(t, "5", info.Display.Result)
	assert.Equal(t, PhaseIdle, info.Display.Phase)
}
