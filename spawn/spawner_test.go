package spawn

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lixenwraith/word-mole/engine"
)

var testConfig = Config{
	FirstDelay:  500 * time.Millisecond,
	IntervalMin: 1200 * time.Millisecond,
	IntervalMax: 2000 * time.Millisecond,
	Dwell:       1500 * time.Millisecond,
}

// fakeBoard keeps moles up until expired, with no animation delays
type fakeBoard struct {
	up      map[int]uint64
	slots   int
	next    uint64
	spawns  []time.Time
	expired []int
	stale   int
	sweeps  int
	sched   *engine.Scheduler
}

func newFakeBoard(sched *engine.Scheduler, slots int) *fakeBoard {
	return &fakeBoard{up: make(map[int]uint64), slots: slots, sched: sched}
}

func (b *fakeBoard) Idle() []int {
	var out []int
	for i := 0; i < b.slots; i++ {
		if _, up := b.up[i]; !up {
			out = append(out, i)
		}
	}
	return out
}

func (b *fakeBoard) Spawn(slot int) (uint64, bool) {
	if _, up := b.up[slot]; up {
		return 0, false
	}
	b.next++
	b.up[slot] = b.next
	b.spawns = append(b.spawns, b.sched.Now())
	return b.next, true
}

func (b *fakeBoard) Expire(slot int, token uint64) bool {
	if b.up[slot] != token {
		b.stale++
		return false
	}
	delete(b.up, slot)
	b.expired = append(b.expired, slot)
	return true
}

func (b *fakeBoard) Sweep() int {
	b.sweeps++
	return 0
}

func newSpawner(slots int, seed uint64) (*engine.Scheduler, *fakeBoard, *Spawner) {
	sched := engine.NewScheduler(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	board := newFakeBoard(sched, slots)
	return sched, board, New(sched, board, testConfig, rand.New(rand.NewPCG(seed, seed)))
}

func TestSpawnerCadence(t *testing.T) {
	sched, board, s := newSpawner(4, 1)
	start := sched.Now()
	s.Start()

	sched.Advance(499 * time.Millisecond)
	if len(board.spawns) != 0 {
		t.Fatal("Spawned before the first delay")
	}
	sched.Advance(time.Millisecond)
	if len(board.spawns) != 1 || !board.spawns[0].Equal(start.Add(testConfig.FirstDelay)) {
		t.Fatalf("Expected first spawn at the first delay, got %v", board.spawns)
	}

	sched.Advance(30 * time.Second)
	for i := 1; i < len(board.spawns); i++ {
		gap := board.spawns[i].Sub(board.spawns[i-1])
		if gap < testConfig.IntervalMin || gap > testConfig.IntervalMax {
			t.Errorf("Spawn gap %v outside [%v, %v]", gap, testConfig.IntervalMin, testConfig.IntervalMax)
		}
	}
	if len(board.spawns) < 14 {
		t.Errorf("Expected at least 14 spawns in 30s, got %d", len(board.spawns))
	}
	if board.sweeps == 0 {
		t.Error("Expected a consistency sweep on each tick")
	}
}

func TestSpawnerAutoHideAfterDwell(t *testing.T) {
	sched, board, s := newSpawner(1, 2)
	var hooked []int
	s.OnExpire = func(slot int) { hooked = append(hooked, slot) }
	s.Start()

	sched.Advance(testConfig.FirstDelay)
	if len(board.up) != 1 {
		t.Fatal("Expected one mole up")
	}
	sched.Advance(testConfig.Dwell - time.Millisecond)
	if len(board.expired) != 0 {
		t.Fatal("Auto-hide before the dwell window")
	}
	sched.Advance(time.Millisecond)
	if len(board.expired) != 1 || len(hooked) != 1 {
		t.Errorf("Expected auto-hide at the dwell window, expired=%v hooked=%v", board.expired, hooked)
	}
}

func TestSpawnerNoEligibleStillReschedules(t *testing.T) {
	sched, board, s := newSpawner(1, 3)
	board.up[0] = 99 // occupied by a mole the spawner does not own
	s.Start()

	sched.Advance(10 * time.Second)
	if len(board.spawns) != 0 {
		t.Fatalf("Spawned into an occupied slot: %v", board.spawns)
	}
	delete(board.up, 0)
	sched.Advance(testConfig.IntervalMax)
	if len(board.spawns) == 0 {
		t.Error("Expected spawning to resume once a slot frees")
	}
}

func TestSpawnerStop(t *testing.T) {
	sched, board, s := newSpawner(4, 4)
	s.Start()
	sched.Advance(testConfig.FirstDelay)
	s.Stop()

	if s.Running() {
		t.Error("Running after Stop")
	}
	n := len(board.spawns)
	sched.Advance(time.Minute)
	if len(board.spawns) != n {
		t.Errorf("Spawned after Stop: %d -> %d", n, len(board.spawns))
	}
	if sched.Pending() != 0 {
		t.Errorf("Expected no pending timers, got %d", sched.Pending())
	}

	// Restart works and Start is idempotent
	s.Start()
	s.Start()
	sched.Advance(testConfig.FirstDelay)
	if len(board.spawns) != n+1 {
		t.Errorf("Expected exactly one spawn after restart, got %d", len(board.spawns)-n)
	}
	s.Stop()
	s.Stop()
}

func TestNextIntervalBounds(t *testing.T) {
	_, _, s := newSpawner(1, 5)
	for i := 0; i < 1000; i++ {
		d := s.nextInterval()
		if d < testConfig.IntervalMin || d > testConfig.IntervalMax {
			t.Fatalf("Interval %v out of bounds", d)
		}
	}
	s.cfg.IntervalMax = s.cfg.IntervalMin
	if d := s.nextInterval(); d != s.cfg.IntervalMin {
		t.Errorf("Degenerate range should return the minimum, got %v", d)
	}
}
