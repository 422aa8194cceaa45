package engine

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestLoopRunsPostedWorkInOrder(t *testing.T) {
	loop := NewLoop(NewMonotonicTimeProvider(), 16)
	loop.Start()
	defer loop.Stop()

	var got []int
	for i := 0; i < 10; i++ {
		i := i
		if err := loop.Post(func() { got = append(got, i) }); err != nil {
			t.Fatalf("Post failed: %v", err)
		}
	}

	// Do is ordered after every earlier Post
	var snapshot []int
	if err := loop.Do(func() { snapshot = append(snapshot, got...) }); err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	if len(snapshot) != 10 {
		t.Fatalf("Expected 10 callbacks before Do, got %d", len(snapshot))
	}
	for i, v := range snapshot {
		if v != i {
			t.Errorf("Expected %d at index %d, got %d", i, i, v)
		}
	}
}

func TestLoopFiresSchedulerTimers(t *testing.T) {
	loop := NewLoop(NewMonotonicTimeProvider(), 4)
	loop.Start()
	defer loop.Stop()

	fired := make(chan struct{})
	if err := loop.Post(func() {
		loop.Scheduler().After(20*time.Millisecond, func() { close(fired) })
	}); err != nil {
		t.Fatalf("Post failed: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("Timer scheduled on the loop did not fire")
	}
}

func TestLoopWithMockClock(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	loop := NewLoop(mock, 4)
	loop.Start()
	defer loop.Stop()

	var fired atomic.Bool
	if err := loop.Do(func() {
		loop.Scheduler().After(time.Hour, func() { fired.Store(true) })
	}); err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	mock.Advance(time.Hour)

	// Posting wakes the loop, which advances the scheduler to the mocked time first
	if err := loop.Do(func() {}); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if !fired.Load() {
		t.Error("Expected timer to fire once the mock clock passed its deadline")
	}
}

func TestLoopPostAfterStop(t *testing.T) {
	loop := NewLoop(NewMonotonicTimeProvider(), 1)
	loop.Start()
	loop.Stop()

	if err := loop.Post(func() {}); err != ErrLoopStopped {
		t.Errorf("Expected ErrLoopStopped, got %v", err)
	}
	// Stop is idempotent
	loop.Stop()
}
