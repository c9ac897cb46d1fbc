package results

import "github.com/averycrespi/calc-mcp/internal/calculator"

// Phase represents the state machine node of a session as an enum
type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseAccumulating  Phase = "accumulating"
	PhaseJustEvaluated Phase = "just_evaluated"
	PhaseErrored       Phase = "errored"
	PhaseUnknown       Phase = "unknown"
)

var phaseMap = map[calculator.Phase]Phase{
	calculator.PhaseIdle:          PhaseIdle,
	calculator.PhaseAccumulating:  PhaseAccumulating,
	calculator.PhaseJustEvaluated: PhaseJustEvaluated,
	calculator.PhaseErrored:       PhaseErrored,
}

// NewPhase converts an engine phase to a Phase
func NewPhase(p calculator.Phase) Phase {
	if phase, ok := phaseMap[p]; ok {
		return phase
	}
	return PhaseUnknown
}
