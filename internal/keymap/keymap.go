// Package keymap translates key names and button actions into calculator events.
package keymap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/averycrespi/calc-mcp/internal/calculator"
)

// ErrUnknownKey is returned for keys that have no calculator meaning
var ErrUnknownKey = errors.New("unknown key")

// Keyboard keys and button actions that map to a fixed event
var namedKeys = map[string]calculator.Event{
	".":         {Kind: calculator.EventDecimalPoint},
	"Enter":     {Kind: calculator.EventEquals},
	"=":         {Kind: calculator.EventEquals},
	"Backspace": {Kind: calculator.EventBackspace},
	"Escape":    {Kind: calculator.EventClear},

	"dot":     {Kind: calculator.EventDecimalPoint},
	"clear":   {Kind: calculator.EventClear},
	"sign":    {Kind: calculator.EventToggleSign},
	"percent": {Kind: calculator.EventPercent},
	"equals":  {Kind: calculator.EventEquals},
}

// Parse converts a single key name into an event
func Parse(key string) (calculator.Event, error) {
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return calculator.DigitEvent(rune(key[0])), nil
	}

	if event, ok := namedKeys[key]; ok {
		return event, nil
	}

	if op, err := calculator.ParseOperator(key); err == nil {
		return calculator.OperatorEvent(op), nil
	}

	return calculator.Event{}, fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// ParseSequence parses whitespace-separated keys. It fails on the first unknown key.
func ParseSequence(keys string) ([]calculator.Event, error) {
	fields := strings.Fields(keys)
	events := make([]calculator.Event, 0, len(fields))
	for i, key := range fields {
		event, err := Parse(key)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", i+1, err)
		}
		events = append(events, event)
	}
	return events, nil
}
