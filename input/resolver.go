// Package input turns raw pointer and touch interactions into mole hits
package input

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/word-mole/scene"
	"github.com/lixenwraith/word-mole/status"
)

// SourceKind is the device class of an interaction
type SourceKind int

const (
	Pointer SourceKind = iota
	Touch
)

func (s SourceKind) String() string {
	if s == Touch {
		return "touch"
	}
	return "pointer"
}

// ParseSource maps "touch" to Touch and anything else to Pointer
func ParseSource(s string) SourceKind {
	if s == "touch" {
		return Touch
	}
	return Pointer
}

// Event is one interaction in screen coordinates
type Event struct {
	Source SourceKind
	X, Y   float64
}

// Kind classifies a resolution
type Kind int

const (
	// Debounced interactions were discarded without effect
	Debounced Kind = iota
	// Control interactions arrived outside an active round and drive the round controller
	Control
	// Miss found no hittable mole
	Miss
	// Hit claimed a mole
	Hit
)

func (k Kind) String() string {
	switch k {
	case Debounced:
		return "debounced"
	case Control:
		return "control"
	case Miss:
		return "miss"
	case Hit:
		return "hit"
	}
	return "unknown"
}

// Resolution is the outcome of one interaction
type Resolution struct {
	Kind      Kind
	Slot      int
	Correct   bool
	Proximity bool // hit came from the proximity fallback
}

// Board is the part of the mole board the resolver needs
type Board interface {
	Hittable() []int
	Hit(slot int) (correct bool, ok bool)
}

// Clock supplies the time interactions are debounced against
type Clock interface {
	Now() time.Time
}

// Config holds the resolution thresholds
// Proximity thresholds are screen distances, zero disables the fallback for that source
// YScale multiplies vertical distances, for screens whose rows are taller than columns are wide
type Config struct {
	Debounce         time.Duration
	TouchProximity   float64
	PointerProximity float64
	YScale           float64
}

// Resolver runs debounce, exact picking and the proximity fallback
// Owned by the game loop goroutine
type Resolver struct {
	clock    Clock
	scene    scene.Scene
	board    Board
	cfg      Config
	debounce Debouncer

	accepted  *atomic.Int64
	debounced *atomic.Int64
	hits      *atomic.Int64
	misses    *atomic.Int64
	proximity *atomic.Int64
}

func NewResolver(clock Clock, sc scene.Scene, board Board, cfg Config, reg *status.Registry) *Resolver {
	if cfg.YScale <= 0 {
		cfg.YScale = 1
	}
	return &Resolver{
		clock:     clock,
		scene:     sc,
		board:     board,
		cfg:       cfg,
		debounce:  Debouncer{Window: cfg.Debounce},
		accepted:  reg.Counter(status.InputAccepted),
		debounced: reg.Counter(status.InputDebounced),
		hits:      reg.Counter(status.InputHits),
		misses:    reg.Counter(status.InputMisses),
		proximity: reg.Counter(status.InputProximityHits),
	}
}

// Reset clears debounce history
func (r *Resolver) Reset() {
	r.debounce.Reset()
}

// Resolve runs one interaction through the pipeline
// Debounce gates everything; when active is false an accepted interaction resolves to Control
// without hit testing. A hit claims the mole before Resolve returns
func (r *Resolver) Resolve(ev Event, active bool) Resolution {
	if !r.debounce.Accept(r.clock.Now()) {
		r.debounced.Add(1)
		return Resolution{Kind: Debounced}
	}
	defer r.debounce.Done()
	r.accepted.Add(1)

	if !active {
		return Resolution{Kind: Control}
	}

	candidates := r.board.Hittable()
	if len(candidates) == 0 {
		r.misses.Add(1)
		return Resolution{Kind: Miss}
	}

	slot, viaProximity, found := r.pick(ev, candidates)
	if !found {
		r.misses.Add(1)
		return Resolution{Kind: Miss}
	}

	correct, ok := r.board.Hit(slot)
	if !ok {
		r.misses.Add(1)
		return Resolution{Kind: Miss}
	}

	r.hits.Add(1)
	if viaProximity {
		r.proximity.Add(1)
	}
	return Resolution{Kind: Hit, Slot: slot, Correct: correct, Proximity: viaProximity}
}

// pick finds the target: exact ray pick first, proximity only when the ray found nothing
func (r *Resolver) pick(ev Event, candidates []int) (slot int, viaProximity, found bool) {
	ray := r.scene.ScreenRay(ev.X, ev.Y)
	if picks := r.scene.PickAlongRay(ray, candidates); len(picks) > 0 {
		return picks[0].ID, false, true
	}

	threshold := r.threshold(ev.Source)
	if threshold <= 0 {
		return 0, false, false
	}

	best := math.Inf(1)
	for _, id := range candidates {
		pos, ok := r.scene.Position(id)
		if !ok {
			continue
		}
		p := r.scene.ProjectToScreen(pos)
		if p.Depth <= 0 {
			continue
		}
		d := math.Hypot(p.X-ev.X, (p.Y-ev.Y)*r.cfg.YScale)
		if d < threshold && d < best {
			best = d
			slot = id
			found = true
		}
	}
	return slot, found, found
}

func (r *Resolver) threshold(src SourceKind) float64 {
	if src == Touch {
		return r.cfg.TouchProximity
	}
	return r.cfg.PointerProximity
}
