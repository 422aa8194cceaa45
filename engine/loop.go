package engine

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/word-mole/core"
)

// ErrLoopStopped is returned when work is posted to a loop that has stopped
var ErrLoopStopped = errors.New("game loop stopped")

// Loop is the single logical execution context of a game
// Input goroutines and render tickers Post closures; timers run through the Scheduler;
// both are executed one at a time on the loop goroutine
type Loop struct {
	clock TimeProvider
	sched *Scheduler
	inbox chan func()

	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	running  atomic.Bool
}

// NewLoop creates a loop whose scheduler starts at the clock's current time
func NewLoop(clock TimeProvider, inboxSize int) *Loop {
	return &Loop{
		clock:    clock,
		sched:    NewScheduler(clock.Now()),
		inbox:    make(chan func(), inboxSize),
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Scheduler returns the loop's scheduler, only to be used from loop callbacks
func (l *Loop) Scheduler() *Scheduler {
	return l.sched
}

// Start runs the loop on its own goroutine with crash recovery
func (l *Loop) Start() {
	if l.running.CompareAndSwap(false, true) {
		core.Go(l.run)
	}
}

// Stop halts the loop and waits for the current callback to return
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
	if l.running.Load() {
		<-l.done
	}
}

// Post queues fn for execution on the loop goroutine
// Blocks while the inbox is full, fails once the loop is stopped
func (l *Loop) Post(fn func()) error {
	select {
	case <-l.stopChan:
		return ErrLoopStopped
	default:
	}

	select {
	case l.inbox <- fn:
		return nil
	case <-l.stopChan:
		return ErrLoopStopped
	}
}

// Do posts fn and waits until it has run
func (l *Loop) Do(fn func()) error {
	done := make(chan struct{})
	if err := l.Post(func() {
		defer close(done)
		fn()
	}); err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-l.stopChan:
		return ErrLoopStopped
	}
}

func (l *Loop) run() {
	defer close(l.done)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		l.sched.AdvanceTo(l.clock.Now())

		var wake <-chan time.Time
		if deadline, ok := l.sched.NextDeadline(); ok {
			wait := deadline.Sub(l.clock.Now())
			if wait < 0 {
				wait = 0
			}
			timer.Reset(wait)
			wake = timer.C
		}

		select {
		case <-l.stopChan:
			return

		case fn := <-l.inbox:
			if wake != nil && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			l.sched.AdvanceTo(l.clock.Now())
			fn()

		case <-wake:
		}
	}
}
