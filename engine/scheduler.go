package engine

import (
	"time"

	"github.com/zyedidia/generic/heap"
)

// Scheduler is a deadline-ordered queue of one-shot callbacks on a logical clock
// Not safe for concurrent use; it is owned by the goroutine running the game loop
//
// While a callback runs, Now reports that callback's deadline rather than the wall
// clock, so timers scheduled from inside a callback keep their cadence regardless
// of how late the loop woke up
type Scheduler struct {
	now   time.Time
	queue *heap.Heap[*Timer]
	seq   uint64
	live  int
}

// Timer is a handle to a scheduled callback
type Timer struct {
	deadline time.Time
	seq      uint64
	fn       func()
	stopped  bool
	fired    bool
	sched    *Scheduler
}

func timerLess(a, b *Timer) bool {
	if a.deadline.Equal(b.deadline) {
		return a.seq < b.seq
	}
	return a.deadline.Before(b.deadline)
}

// NewScheduler creates a scheduler whose logical clock starts at start
func NewScheduler(start time.Time) *Scheduler {
	return &Scheduler{
		now:   start,
		queue: heap.New[*Timer](timerLess),
	}
}

// Now returns the scheduler's logical time
func (s *Scheduler) Now() time.Time {
	return s.now
}

// After schedules fn to run once, d after the current logical time
// Negative durations are treated as zero; callbacks with equal deadlines run in scheduling order
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{
		deadline: s.now.Add(d),
		seq:      s.seq,
		fn:       fn,
		sched:    s,
	}
	s.queue.Push(t)
	s.live++
	return t
}

// Pending returns the number of timers that have neither fired nor been stopped
func (s *Scheduler) Pending() int {
	return s.live
}

// NextDeadline returns the deadline of the earliest live timer
func (s *Scheduler) NextDeadline() (time.Time, bool) {
	for {
		next, ok := s.queue.Peek()
		if !ok {
			return time.Time{}, false
		}
		if !next.stopped {
			return next.deadline, true
		}
		s.queue.Pop()
	}
}

// AdvanceTo runs every timer due at or before t in deadline order, including timers
// scheduled by those callbacks, then moves the logical clock to t
// Returns the number of callbacks run
func (s *Scheduler) AdvanceTo(t time.Time) int {
	ran := 0
	for {
		next, ok := s.queue.Peek()
		if !ok || next.deadline.After(t) {
			break
		}
		s.queue.Pop()
		if next.stopped {
			continue
		}
		if next.deadline.After(s.now) {
			s.now = next.deadline
		}
		next.fired = true
		s.live--
		next.fn()
		ran++
	}
	if t.After(s.now) {
		s.now = t
	}
	return ran
}

// Advance moves the logical clock forward by d, running due timers
func (s *Scheduler) Advance(d time.Duration) int {
	return s.AdvanceTo(s.now.Add(d))
}

// Stop cancels the timer, returns false if it already fired or was stopped
// Stopped timers are dropped lazily when they reach the head of the queue
func (t *Timer) Stop() bool {
	if t == nil || t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.sched.live--
	return true
}

// Deadline returns the logical time the timer fires at
func (t *Timer) Deadline() time.Time {
	return t.deadline
}
