// Package calculator implements the four-function calculator engine.
//
// The engine is a deterministic state machine. Every entry point is a method
// on State with a value receiver: it takes the current state and an event
// payload and returns the next state together with a display Snapshot. The
// caller owns the State value and decides where it lives; the engine keeps no
// state of its own.
package calculator

import "strings"

// ErrorText is the result text shown after an evaluation produced a non-finite value
const ErrorText = "Error"

// Number is an optional float64
type Number struct {
	Value float64
	Valid bool
}

// Some returns a present Number holding v
func Some(v float64) Number {
	return Number{Value: v, Valid: true}
}

// State is one calculator session's record
type State struct {
	// Accumulator is the running left-hand operand
	Accumulator Number
	// Pending is the last right-hand operand, kept for repeated equals
	Pending Number
	// Operator is the operator waiting for its right-hand operand
	Operator Operator
	// Input is the literal text of the number being typed
	Input string
	// JustEvaluated is set by Equals until the next entry starts
	JustEvaluated bool

	format Formatter
}

// Option configures a new State
type Option func(*State)

// WithFormatter sets the formatter used for results and the expression line
func WithFormatter(f Formatter) Option {
	return func(s *State) {
		s.format = f
	}
}

// New returns the initial state of a session
func New(opts ...Option) State {
	s := State{Input: "0", format: DefaultFormatter}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Formatter returns the formatter the state renders numbers with
func (s State) Formatter() Formatter {
	return s.format.orDefault()
}

// Errored reports whether the state is in the error sub-state
func (s State) Errored() bool {
	return s.Input == ErrorText
}

// Phase returns the state machine node the state is in
func (s State) Phase() Phase {
	switch {
	case s.Errored():
		return PhaseErrored
	case s.JustEvaluated:
		return PhaseJustEvaluated
	case s.Operator != NoOperator:
		return PhaseAccumulating
	default:
		return PhaseIdle
	}
}

// Snapshot returns what the display should currently show
func (s State) Snapshot() Snapshot {
	f := s.Formatter()
	parts := make([]string, 0, 3)
	if s.Accumulator.Valid {
		parts = append(parts, f.Format(s.Accumulator.Value))
	}
	if s.Operator != NoOperator {
		parts = append(parts, s.Operator.Symbol())
	}
	if s.Pending.Valid {
		parts = append(parts, f.Format(s.Pending.Value))
	}

	result := s.Input
	if result == "" {
		result = "0"
	}
	return Snapshot{
		Expression: strings.Join(parts, " "),
		Result:     result,
	}
}

// Snapshot is the renderable view of a State
type Snapshot struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
}

// Phase names a node of the calculator state machine
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAccumulating
	PhaseJustEvaluated
	PhaseErrored
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAccumulating:
		return "accumulating"
	case PhaseJustEvaluated:
		return "just_evaluated"
	case PhaseErrored:
		return "errored"
	default:
		return "unknown"
	}
}
