package calculator

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidOperator is returned by ParseOperator for anything other than + - * /.
var ErrInvalidOperator = errors.New("invalid operator")

// Operator is a binary arithmetic operator
type Operator int

const (
	NoOperator Operator = iota
	Add
	Subtract
	Multiply
	Divide
)

var operatorSymbols = map[Operator]string{
	Add:      "+",
	Subtract: "-",
	Multiply: "*",
	Divide:   "/",
}

// ParseOperator converts an operator symbol into an Operator
func ParseOperator(symbol string) (Operator, error) {
	for op, s := range operatorSymbols {
		if s == symbol {
			return op, nil
		}
	}
	return NoOperator, fmt.Errorf("%w: %q", ErrInvalidOperator, symbol)
}

// Symbol returns the display symbol of the operator, or "" for NoOperator
func (op Operator) Symbol() string {
	return operatorSymbols[op]
}

// Valid reports whether op is one of the four arithmetic operators
func (op Operator) Valid() bool {
	_, ok := operatorSymbols[op]
	return ok
}

func (op Operator) String() string {
	switch op {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	default:
		return "none"
	}
}

// evaluate applies op to a and b. The second return value is false when the
// result is not a finite number; dividing by exactly zero always lands there.
func (op Operator) evaluate(a, b float64) (float64, bool) {
	var out float64
	switch op {
	case Add:
		out = a + b
	case Subtract:
		out = a - b
	case Multiply:
		out = a * b
	case Divide:
		if b == 0 {
			return math.NaN(), false
		}
		out = a / b
	default:
		return math.NaN(), false
	}
	return out, isFinite(out)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
