package input

import "time"

// Debouncer discards interactions that arrive too soon after an accepted one
// or while an accepted one is still being resolved
type Debouncer struct {
	Window time.Duration

	lastAccepted time.Time
	accepted     bool
	inFlight     bool
}

// Accept reports whether an interaction at now passes, marking it accepted and in flight
func (d *Debouncer) Accept(now time.Time) bool {
	if d.inFlight {
		return false
	}
	if d.accepted && now.Sub(d.lastAccepted) < d.Window {
		return false
	}
	d.lastAccepted = now
	d.accepted = true
	d.inFlight = true
	return true
}

// Done clears the in-flight flag of the last accepted interaction
func (d *Debouncer) Done() {
	d.inFlight = false
}

// Reset forgets all history, used at round start
func (d *Debouncer) Reset() {
	d.lastAccepted = time.Time{}
	d.accepted = false
	d.inFlight = false
}
