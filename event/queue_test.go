package event

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/lixenwraith/sinkhole/core"
	"github.com/lixenwraith/sinkhole/parameter"
)

func TestQueueFIFO(t *testing.T) {
	tick := uint64(7)
	q := NewQueue(func() uint64 { return tick })

	q.Emit(EventMagnetStarted, nil)
	tick = 8
	q.Emit(EventMagnetStopped, nil)

	if q.Len() != 2 {
		t.Fatalf("Expected 2 pending, got %d", q.Len())
	}
	events := q.Consume()
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	if events[0].Type != EventMagnetStarted || events[0].Tick != 7 {
		t.Errorf("Event 0 mismatch: %+v", events[0])
	}
	if events[1].Type != EventMagnetStopped || events[1].Tick != 8 {
		t.Errorf("Event 1 mismatch: %+v", events[1])
	}
	if q.Consume() != nil {
		t.Error("Expected nil on empty queue")
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewQueue(nil)
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventObjectCollected, Tick: uint64(i)})
	}

	events := q.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(events))
	}
	if events[0].Tick != 10 {
		t.Errorf("Expected oldest surviving tick 10, got %d", events[0].Tick)
	}
	if q.Dropped() != 10 {
		t.Errorf("Expected 10 dropped, got %d", q.Dropped())
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue(nil)
	const producers, perProducer = 8, 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Emit(EventPermeabilityChanged, nil)
			}
		}()
	}
	wg.Wait()

	if got := len(q.Consume()); got != producers*perProducer {
		t.Errorf("Expected %d events, got %d", producers*perProducer, got)
	}
}

func TestGameEventJSON(t *testing.T) {
	ev := GameEvent{
		Type: EventObjectCollected,
		Tick: 42,
		Payload: &CollectedPayload{
			ID:       core.Entity(5),
			Category: core.CategoryCoin,
			Reward:   3,
		},
	}
	data, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded struct {
		Type    EventType `json:"type"`
		Tick    uint64    `json:"tick"`
		Payload struct {
			Category string `json:"category"`
			Reward   int    `json:"reward"`
		} `json:"payload"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.Type != EventObjectCollected || decoded.Tick != 42 {
		t.Errorf("Header mismatch: %+v", decoded)
	}
	if decoded.Payload.Category != "coin" || decoded.Payload.Reward != 3 {
		t.Errorf("Payload mismatch: %+v", decoded.Payload)
	}
}
