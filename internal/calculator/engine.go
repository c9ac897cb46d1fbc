package calculator

import "strings"

// Digit appends the numeral d to the input. Runes other than '0'..'9' are ignored.
func (s State) Digit(d rune) (State, Snapshot) {
	if d < '0' || d > '9' {
		return s.done()
	}

	s = s.beginEntry()
	if s.Input == "0" {
		s.Input = string(d)
	} else {
		s.Input += string(d)
	}
	return s.done()
}

// DecimalPoint appends "." unless the input already has one
func (s State) DecimalPoint() (State, Snapshot) {
	s = s.beginEntry()
	if !strings.Contains(s.Input, ".") {
		s.Input += "."
	}
	return s.done()
}

// ToggleSign flips the sign of the input. A bare "0" has no sign.
func (s State) ToggleSign() (State, Snapshot) {
	s = s.normalized()
	if s.Input == "0" || s.Errored() {
		return s.done()
	}

	if strings.HasPrefix(s.Input, "-") {
		s.Input = s.Input[1:]
	} else {
		s.Input = "-" + s.Input
	}
	return s.done()
}

// Percent divides the input by one hundred
func (s State) Percent() (State, Snapshot) {
	s = s.normalized()
	if s.Errored() {
		return s.done()
	}

	v := numericValue(s.Input) / 100
	if !isFinite(v) {
		return s.failed()
	}
	s.Input = s.Formatter().Format(v)
	return s.done()
}

// Backspace drops the last typed character
func (s State) Backspace() (State, Snapshot) {
	s = s.normalized()
	if s.JustEvaluated || s.Errored() {
		return s.done()
	}

	switch {
	case isExponentForm(s.Input):
		s.Input = "0"
	case len(s.Input) <= 1, len(s.Input) == 2 && strings.HasPrefix(s.Input, "-"):
		s.Input = "0"
	default:
		s.Input = s.Input[:len(s.Input)-1]
	}
	return s.done()
}

// Clear resets the session to its initial state
func (s State) Clear() (State, Snapshot) {
	return s.cleared().done()
}

// ChooseOperator sets the operator to apply next, first evaluating the
// pending operation when a second operand has been entered.
func (s State) ChooseOperator(op Operator) (State, Snapshot) {
	s = s.normalized()
	if !op.Valid() || s.Errored() {
		return s.done()
	}

	s.JustEvaluated = false

	switch {
	case !s.Accumulator.Valid:
		v := numericValue(s.Input)
		if !isFinite(v) {
			return s.failed()
		}
		s.Accumulator = Some(v)
		s.Operator = op
		s.Input = "0"

	case s.Operator != NoOperator && s.Input != "0":
		out, ok := s.Operator.evaluate(s.Accumulator.Value, numericValue(s.Input))
		if !ok {
			return s.failed()
		}
		s.Accumulator = Some(out)
		s.Pending = Number{}
		s.Operator = op
		s.Input = "0"

	default:
		s.Operator = op
	}
	return s.done()
}

// Equals evaluates the pending operation against the accumulator. With no new
// operand typed since the last evaluation it reuses the previous right-hand
// operand, even if the shown result was edited in between.
func (s State) Equals() (State, Snapshot) {
	s = s.normalized()
	if !s.Accumulator.Valid || s.Operator == NoOperator || s.Errored() {
		return s.done()
	}

	var operand float64
	if s.Pending.Valid && (s.Input == "0" || s.JustEvaluated) {
		operand = s.Pending.Value
	} else {
		operand = numericValue(s.Input)
	}

	out, ok := s.Operator.evaluate(s.Accumulator.Value, operand)
	if !ok {
		return s.failed()
	}
	s.Pending = Some(operand)
	s.Accumulator = Some(out)
	s.Input = s.Formatter().Format(out)
	s.JustEvaluated = true
	return s.done()
}

// beginEntry prepares the state for a new digit or decimal point. After
// Equals or an error the whole chain restarts; a result shown in exponent
// notation is replaced rather than edited.
func (s State) beginEntry() State {
	s = s.normalized()
	switch {
	case s.JustEvaluated, s.Errored():
		return s.cleared()
	case isExponentForm(s.Input):
		s.Input = "0"
	}
	return s
}

func (s State) cleared() State {
	return State{Input: "0", format: s.format}
}

func (s State) failed() (State, Snapshot) {
	return State{Input: ErrorText, format: s.format}.done()
}

// normalized lets the zero State behave like New()
func (s State) normalized() State {
	if s.Input == "" {
		s.Input = "0"
	}
	return s
}

func (s State) done() (State, Snapshot) {
	return s, s.Snapshot()
}
