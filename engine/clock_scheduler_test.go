package engine

import (
	"context"
	"errors"
	"testing"
	"time"
)

// recordingSystem appends its name to a shared log on every update
type recordingSystem struct {
	name     string
	priority int
	log      *[]string
	lastDt   float64
}

func (s *recordingSystem) Update(dt float64) {
	s.lastDt = dt
	*s.log = append(*s.log, s.name)
}

func (s *recordingSystem) Priority() int { return s.priority }

func TestSchedulerOrdersByPriority(t *testing.T) {
	var log []string
	s := NewScheduler(60)
	s.Register(
		&recordingSystem{name: "physics", priority: 50, log: &log},
		&recordingSystem{name: "absorb", priority: 40, log: &log},
		&recordingSystem{name: "input", priority: 0, log: &log},
	)
	s.Register(&recordingSystem{name: "absorb-late", priority: 40, log: &log})

	s.Step()

	want := []string{"input", "absorb", "absorb-late", "physics"}
	if len(log) != len(want) {
		t.Fatalf("Expected %d updates, got %d (%v)", len(want), len(log), log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Update %d: expected %s, got %s", i, want[i], log[i])
		}
	}
}

func TestSchedulerFixedDelta(t *testing.T) {
	var log []string
	sys := &recordingSystem{name: "a", log: &log}
	s := NewScheduler(60)
	s.Register(sys)

	for i := 0; i < 5; i++ {
		s.Step()
	}

	if sys.lastDt != 1.0/60.0 {
		t.Errorf("Expected dt %v, got %v", 1.0/60.0, sys.lastDt)
	}
	if s.TickCount() != 5 {
		t.Errorf("Expected 5 ticks, got %d", s.TickCount())
	}
	if s.TickInterval() != time.Second/60 {
		t.Errorf("Expected interval %v, got %v", time.Second/60, s.TickInterval())
	}
}

func TestSchedulerDefaultsInvalidRate(t *testing.T) {
	s := NewScheduler(0)
	if s.TickDelta() != 1.0/60.0 {
		t.Errorf("Expected fallback dt 1/60, got %v", s.TickDelta())
	}
}

func TestSystemFunc(t *testing.T) {
	calls := 0
	sys := SystemFunc(7, func(dt float64) { calls++ })
	if sys.Priority() != 7 {
		t.Errorf("Expected priority 7, got %d", sys.Priority())
	}
	sys.Update(0.1)
	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

func TestSchedulerRunStopsOnCancel(t *testing.T) {
	s := NewScheduler(200)
	ticks := make(chan struct{}, 1024)
	s.Register(SystemFunc(0, func(float64) {
		select {
		case ticks <- struct{}{}:
		default:
		}
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case <-ticks:
	case <-time.After(2 * time.Second):
		t.Fatal("Scheduler did not tick")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestSchedulerStopAndPause(t *testing.T) {
	s := NewScheduler(200)
	s.SetPaused(true)
	if !s.Paused() {
		t.Fatal("Expected paused")
	}

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()

	time.Sleep(50 * time.Millisecond)
	s.Stop()
	s.Stop() // idempotent

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected nil error on Stop, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}

	if s.TickCount() != 0 {
		t.Errorf("Expected no ticks while paused, got %d", s.TickCount())
	}
}
