package status

import "sync/atomic"

// Metric keys shared by the game packages
const (
	InputAccepted      = "input.accepted"
	InputDebounced     = "input.debounced"
	InputHits          = "input.hits"
	InputMisses        = "input.misses"
	InputProximityHits = "input.proximity_hits"
	MoleSpawned        = "mole.spawned"
	MoleExpired        = "mole.expired"
	MoleStaleTimeouts  = "mole.stale_timeouts"
	MoleRepaired       = "mole.repaired"
	RoundStarted       = "round.started"
	RoundEnded         = "round.ended"
	ScoreBonuses       = "score.bonuses"
	RoundCategory      = "round.category"
	RoundPhase         = "round.phase"
)

// Registry is the central metrics facade
// Components cache pointers during construction and write directly to the atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Counter returns the counter for key, a nil registry yields a detached counter
func (r *Registry) Counter(key string) *atomic.Int64 {
	if r == nil {
		return new(atomic.Int64)
	}
	return r.Ints.Get(key)
}

// Label returns the string metric for key, a nil registry yields a detached value
func (r *Registry) Label(key string) *AtomicString {
	if r == nil {
		return new(AtomicString)
	}
	return r.Strings.Get(key)
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Strings.Count()
}

// Snapshot copies every metric into a plain map, for JSON export and the debug status line
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out[key] = v.Load()
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		out[key] = v.Load()
	})
	return out
}
