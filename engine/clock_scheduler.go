package engine

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// ErrSchedulerRunning is returned when Run is called on a scheduler that is already looping
var ErrSchedulerRunning = errors.New("scheduler already running")

// System is a per-tick handler driven by the Scheduler
type System interface {
	// Update advances the system by dt seconds
	Update(dt float64)
	// Priority orders systems within a tick; lower values run first
	Priority() int
}

type systemFunc struct {
	priority int
	fn       func(dt float64)
}

func (s systemFunc) Update(dt float64) { s.fn(dt) }
func (s systemFunc) Priority() int     { return s.priority }

// SystemFunc adapts a plain function into a System
func SystemFunc(priority int, fn func(dt float64)) System {
	return systemFunc{priority: priority, fn: fn}
}

// Scheduler runs registered systems in priority order on a fixed tick
// Every tick passes the same dt, so simulation results do not depend on wall-clock jitter
// Step is not safe for concurrent use; Run owns the calling goroutine
type Scheduler struct {
	systems []System

	tickInterval time.Duration
	dt           float64

	tickCount atomic.Uint64
	paused    atomic.Bool
	running   atomic.Bool

	stopChan chan struct{}
	stopOnce sync.Once
}

// NewScheduler creates a scheduler ticking tickRate times per second
func NewScheduler(tickRate int) *Scheduler {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Scheduler{
		tickInterval: time.Second / time.Duration(tickRate),
		dt:           1.0 / float64(tickRate),
		stopChan:     make(chan struct{}),
	}
}

// Register adds systems; ordering among equal priorities follows registration order
func (s *Scheduler) Register(systems ...System) {
	s.systems = append(s.systems, systems...)
	slices.SortStableFunc(s.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})
}

// TickDelta returns the fixed step in seconds
func (s *Scheduler) TickDelta() float64 {
	return s.dt
}

// TickInterval returns the wall-clock period between ticks
func (s *Scheduler) TickInterval() time.Duration {
	return s.tickInterval
}

// TickCount returns the number of completed ticks
func (s *Scheduler) TickCount() uint64 {
	return s.tickCount.Load()
}

// SetPaused suspends or resumes ticking; Run keeps pacing while paused
func (s *Scheduler) SetPaused(paused bool) {
	s.paused.Store(paused)
}

// Paused reports the pause state
func (s *Scheduler) Paused() bool {
	return s.paused.Load()
}

// Step runs exactly one tick
func (s *Scheduler) Step() {
	for _, sys := range s.systems {
		sys.Update(s.dt)
	}
	s.tickCount.Add(1)
}

// Run ticks at the fixed rate until ctx is cancelled or Stop is called
// Deadlines advance by whole intervals; if the loop falls more than two intervals behind it resyncs instead of bursting
func (s *Scheduler) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrSchedulerRunning
	}
	defer s.running.Store(false)

	next := time.Now().Add(s.tickInterval)
	timer := time.NewTimer(s.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stopChan:
			return nil
		case <-timer.C:
		}

		if !s.paused.Load() {
			s.Step()
		}

		now := time.Now()
		next = next.Add(s.tickInterval)
		if now.Sub(next) > 2*s.tickInterval {
			next = now.Add(s.tickInterval)
		}
		timer.Reset(max(0, time.Until(next)))
	}
}

// Stop ends Run; safe to call more than once
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
}
