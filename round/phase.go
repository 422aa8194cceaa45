// Package round runs category selection, the countdown, the timed round and its result
package round

// Phase is the round lifecycle position
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCountdown
	PhaseActive
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseCountdown:
		return "Countdown"
	case PhaseActive:
		return "Active"
	case PhaseEnded:
		return "Ended"
	}
	return "Unknown"
}

var validTransitions = map[Phase][]Phase{
	PhaseIdle:      {PhaseCountdown},
	PhaseCountdown: {PhaseActive, PhaseIdle},
	PhaseActive:    {PhaseEnded},
	PhaseEnded:     {PhaseIdle},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}
