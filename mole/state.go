// Package mole implements the per-hole entity lifecycle: Down, Rising, Up, Falling
package mole

// State is the lifecycle position of a mole
type State int

const (
	Down State = iota
	Rising
	Up
	Falling
)

func (s State) String() string {
	switch s {
	case Down:
		return "down"
	case Rising:
		return "rising"
	case Up:
		return "up"
	case Falling:
		return "falling"
	}
	return "unknown"
}

// Mole is a read-only snapshot of one entity
type Mole struct {
	Slot    int
	State   State
	Locked  bool
	Token   uint64 // appearance token, zero while down
	Word    string
	Correct bool
}

// Hittable reports whether the mole accepts a hit or an auto-hide
func (m Mole) Hittable() bool {
	return m.State == Up && !m.Locked
}

// Idle reports whether the mole can be spawned
func (m Mole) Idle() bool {
	return m.State == Down && !m.Locked
}
