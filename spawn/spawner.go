// Package spawn raises idle moles on a randomized cadence while a round is active
package spawn

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/word-mole/engine"
)

// Board is the part of the mole board the spawner drives
type Board interface {
	Idle() []int
	Spawn(slot int) (token uint64, ok bool)
	Expire(slot int, token uint64) bool
	Sweep() int
}

// Config is the spawn cadence
type Config struct {
	FirstDelay  time.Duration
	IntervalMin time.Duration
	IntervalMax time.Duration
	Dwell       time.Duration // spawn to auto-hide
}

// Spawner schedules spawn ticks and auto-hides on the loop scheduler
// Owned by the game loop goroutine
type Spawner struct {
	sched *engine.Scheduler
	board Board
	cfg   Config
	rng   *rand.Rand

	running bool
	gen     uint64
	timer   *engine.Timer

	// OnExpire runs after an auto-hide took a mole down
	OnExpire func(slot int)
}

func New(sched *engine.Scheduler, board Board, cfg Config, rng *rand.Rand) *Spawner {
	return &Spawner{
		sched: sched,
		board: board,
		cfg:   cfg,
		rng:   rng,
	}
}

// Running reports whether ticks are scheduled
func (s *Spawner) Running() bool {
	return s.running
}

// Start schedules the first tick after the configured first delay, no-op when running
func (s *Spawner) Start() {
	if s.running {
		return
	}
	s.running = true
	s.gen++
	gen := s.gen
	s.timer = s.sched.After(s.cfg.FirstDelay, func() { s.tick(gen) })
}

// Stop cancels the pending tick; a tick already dequeued finds a newer generation and does nothing
func (s *Spawner) Stop() {
	if !s.running {
		return
	}
	s.running = false
	s.gen++
	s.timer.Stop()
	s.timer = nil
}

func (s *Spawner) tick(gen uint64) {
	if gen != s.gen || !s.running {
		return
	}

	s.board.Sweep()

	if idle := s.board.Idle(); len(idle) > 0 {
		slot := idle[s.rng.IntN(len(idle))]
		if token, ok := s.board.Spawn(slot); ok {
			s.sched.After(s.cfg.Dwell, func() {
				if s.board.Expire(slot, token) && s.OnExpire != nil {
					s.OnExpire(slot)
				}
			})
		}
	}

	s.timer = s.sched.After(s.nextInterval(), func() { s.tick(gen) })
}

// nextInterval is uniform in [IntervalMin, IntervalMax]
func (s *Spawner) nextInterval() time.Duration {
	span := s.cfg.IntervalMax - s.cfg.IntervalMin
	if span <= 0 {
		return s.cfg.IntervalMin
	}
	return s.cfg.IntervalMin + time.Duration(s.rng.Int64N(int64(span)+1))
}
