package calculator

// EventKind identifies an engine entry point
type EventKind int

const (
	EventDigit EventKind = iota + 1
	EventDecimalPoint
	EventToggleSign
	EventPercent
	EventBackspace
	EventClear
	EventChooseOperator
	EventEquals
)

func (k EventKind) String() string {
	switch k {
	case EventDigit:
		return "digit"
	case EventDecimalPoint:
		return "decimal_point"
	case EventToggleSign:
		return "toggle_sign"
	case EventPercent:
		return "percent"
	case EventBackspace:
		return "backspace"
	case EventClear:
		return "clear"
	case EventChooseOperator:
		return "choose_operator"
	case EventEquals:
		return "equals"
	default:
		return "unknown"
	}
}

// Event is a single input to the engine. Digit is only read for EventDigit and
// Operator only for EventChooseOperator.
type Event struct {
	Kind     EventKind
	Digit    rune
	Operator Operator
}

// DigitEvent returns the event for typing the numeral d
func DigitEvent(d rune) Event {
	return Event{Kind: EventDigit, Digit: d}
}

// OperatorEvent returns the event for choosing op
func OperatorEvent(op Operator) Event {
	return Event{Kind: EventChooseOperator, Operator: op}
}

// Apply routes e to the matching entry point. Unknown kinds leave the state unchanged.
func (s State) Apply(e Event) (State, Snapshot) {
	switch e.Kind {
	case EventDigit:
		return s.Digit(e.Digit)
	case EventDecimalPoint:
		return s.DecimalPoint()
	case EventToggleSign:
		return s.ToggleSign()
	case EventPercent:
		return s.Percent()
	case EventBackspace:
		return s.Backspace()
	case EventClear:
		return s.Clear()
	case EventChooseOperator:
		return s.ChooseOperator(e.Operator)
	case EventEquals:
		return s.Equals()
	default:
		return s, s.Snapshot()
	}
}

// ApplyAll applies events in order and returns the final state and snapshot
func (s State) ApplyAll(events ...Event) (State, Snapshot) {
	snap := s.Snapshot()
	for _, e := range events {
		s, snap = s.Apply(e)
	}
	return s, snap
}
