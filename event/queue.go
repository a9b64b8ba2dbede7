package event

import (
	"sync/atomic"

	"github.com/lixenwraith/sinkhole/parameter"
)

// Emitter accepts events from simulation components
type Emitter interface {
	Emit(t EventType, payload any)
}

// Queue is a lock-free MPSC ring buffer for engine events
// Thread-Safety:
//   - Push/Emit: lock-free CAS, multiple producers OK
//   - Consume: single consumer (sim loop)
//   - Published flags prevent reading partial writes
//
// Overflow: oldest events are overwritten when full and counted as dropped
type Queue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool
	head      atomic.Uint64
	tail      atomic.Uint64
	dropped   atomic.Uint64

	clock func() uint64
}

// NewQueue creates a queue; clock stamps emitted events with the current tick and may be nil
func NewQueue(clock func() uint64) *Queue {
	return &Queue{clock: clock}
}

// Emit stamps and pushes an event
func (q *Queue) Emit(t EventType, payload any) {
	var tick uint64
	if q.clock != nil {
		tick = q.clock()
	}
	q.Push(GameEvent{Type: t, Tick: tick, Payload: payload})
}

// Push adds an event using CAS on tail; O(1) amortized
func (q *Queue) Push(ev GameEvent) {
	for {
		tail := q.tail.Load()
		next := tail + 1
		if !q.tail.CompareAndSwap(tail, next) {
			continue
		}

		idx := tail & parameter.EventBufferMask
		q.events[idx] = ev
		q.published[idx].Store(true) // MUST be after write

		head := q.head.Load()
		if next-head > parameter.EventQueueSize {
			if q.head.CompareAndSwap(head, next-parameter.EventQueueSize) {
				q.dropped.Add(next - parameter.EventQueueSize - head)
			}
		}
		return
	}
}

// Consume returns pending events in FIFO order and advances head
// Stops early at a slot whose writer has not finished
func (q *Queue) Consume() []GameEvent {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if tail == head {
			return nil
		}

		avail := tail - head
		if avail > parameter.EventQueueSize {
			avail = parameter.EventQueueSize
			head = tail - parameter.EventQueueSize
		}

		result := make([]GameEvent, 0, avail)
		for i := uint64(0); i < avail; i++ {
			idx := (head + i) & parameter.EventBufferMask
			if !q.published[idx].Load() {
				break
			}
			result = append(result, q.events[idx])
			q.published[idx].Store(false)
		}

		if q.head.CompareAndSwap(head, head+uint64(len(result))) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// Len returns the approximate pending count
func (q *Queue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	return int(min(tail-head, parameter.EventQueueSize))
}

// Dropped returns how many events were overwritten before being consumed
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}
