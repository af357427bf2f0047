package domain

// TimerPhase is the countdown timer's position in its lifecycle.
type TimerPhase string

const (
	PhaseIdle    TimerPhase = "idle"
	PhaseRunning TimerPhase = "running"
	PhasePaused  TimerPhase = "paused"
	PhaseExpired TimerPhase = "expired"
)

// PhaseLabel returns a human-readable label for a timer phase.
func PhaseLabel(p TimerPhase) string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseExpired:
		return "Expired"
	default:
		return "Unknown"
	}
}

// NoActiveTask marks a TimerState that governs no task.
const NoActiveTask = -1

// TimerState is the authoritative countdown state. TaskIndex is an explicit
// reference to the task the timer governs, set together with the phase
// transition that starts it; it is never inferred from list order.
type TimerState struct {
	Remaining int
	Phase     TimerPhase
	TaskIndex int
}

// NewTimerState returns an idle timer governing no task.
func NewTimerState() TimerState {
	return TimerState{Phase: PhaseIdle, TaskIndex: NoActiveTask}
}

// Active reports whether the timer holds a Running or Paused countdown.
func (ts TimerState) Active() bool {
	return ts.Phase == PhaseRunning || ts.Phase == PhasePaused
}
