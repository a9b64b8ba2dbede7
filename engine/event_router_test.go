package engine

import (
	"testing"

	"github.com/lixenwraith/sinkhole/event"
)

func TestEventRouterDispatch(t *testing.T) {
	q := event.NewQueue(nil)
	r := NewEventRouter(q)

	var collected, magnet []event.GameEvent
	r.Register(HandlerFunc(func(ev event.GameEvent) { collected = append(collected, ev) }, event.EventObjectCollected))
	r.Register(HandlerFunc(func(ev event.GameEvent) { magnet = append(magnet, ev) }, event.EventMagnetStarted, event.EventMagnetStopped))

	q.Emit(event.EventObjectCollected, &event.CollectedPayload{Reward: 3})
	q.Emit(event.EventMagnetStarted, &event.MagnetPayload{Duration: 6})
	q.Emit(event.EventHoleLevelUp, &event.LevelUpPayload{Level: 2})
	q.Emit(event.EventMagnetStopped, &event.MagnetPayload{Reason: event.MagnetExpired})

	if n := r.DispatchAll(); n != 4 {
		t.Errorf("Expected 4 events dispatched, got %d", n)
	}
	if len(collected) != 1 {
		t.Errorf("Expected 1 collected event, got %d", len(collected))
	}
	if len(magnet) != 2 || magnet[1].Type != event.EventMagnetStopped {
		t.Errorf("Expected start then stop, got %v", magnet)
	}
	if r.HandlerCount(event.EventHoleLevelUp) != 0 {
		t.Error("Expected no level-up handlers")
	}
}

func TestEventRouterAsSystem(t *testing.T) {
	q := event.NewQueue(nil)
	r := NewEventRouter(q)
	got := 0
	r.Register(HandlerFunc(func(event.GameEvent) { got++ }, event.EventGrowBoost))

	s := NewScheduler(60)
	s.Register(SystemFunc(0, func(float64) { q.Emit(event.EventGrowBoost, nil) }), r)
	s.Step()
	s.Step()

	if got != 2 {
		t.Errorf("Expected events delivered within their own tick, got %d", got)
	}
}
