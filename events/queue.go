package events

import (
	"sync"

	"github.com/lixenwraith/sprite-quest/constants"
)

// EventQueue carries player actions into the tick and gameplay outcomes out of it
//
// Two lanes with different overflow rules:
//   - Actions (requests from input) are never overwritten; when the lane is
//     full the new request is rejected
//   - Outcomes live in a ring; a crowded tick overwrites the oldest
//
// Every lost event is counted in Dropped. Push is safe from any goroutine,
// Consume belongs to the clock scheduler.
type EventQueue struct {
	mu sync.Mutex

	actions []GameEvent

	outcomes     [constants.OutcomeQueueSize]GameEvent
	outcomeHead  int // Index of the oldest outcome
	outcomeCount int

	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		actions: make([]GameEvent, 0, constants.ActionQueueSize),
	}
}

// Push queues an event; returns false when an action was rejected
// An outcome is always accepted, possibly at the expense of the oldest one
func (eq *EventQueue) Push(event GameEvent) bool {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if event.Type.IsAction() {
		if len(eq.actions) >= constants.ActionQueueSize {
			eq.dropped++
			return false
		}
		eq.actions = append(eq.actions, event)
		return true
	}

	if eq.outcomeCount == constants.OutcomeQueueSize {
		eq.outcomes[eq.outcomeHead] = GameEvent{}
		eq.outcomeHead = (eq.outcomeHead + 1) % constants.OutcomeQueueSize
		eq.outcomeCount--
		eq.dropped++
	}
	idx := (eq.outcomeHead + eq.outcomeCount) % constants.OutcomeQueueSize
	eq.outcomes[idx] = event
	eq.outcomeCount++
	return true
}

// Consume returns every pending event: actions first, then outcomes, each in FIFO order
func (eq *EventQueue) Consume() []GameEvent {
	return eq.ConsumeWhere(nil)
}

// ConsumeWhere returns pending outcomes and the actions accepted by keep
// Rejected actions stay queued in order; a nil keep accepts everything
func (eq *EventQueue) ConsumeWhere(keep func(EventType) bool) []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.actions) == 0 && eq.outcomeCount == 0 {
		return nil
	}

	result := make([]GameEvent, 0, len(eq.actions)+eq.outcomeCount)
	held := eq.actions[:0]
	for _, ev := range eq.actions {
		if keep == nil || keep(ev.Type) {
			result = append(result, ev)
		} else {
			held = append(held, ev)
		}
	}
	clear(eq.actions[len(held):])
	eq.actions = held

	for i := 0; i < eq.outcomeCount; i++ {
		idx := (eq.outcomeHead + i) % constants.OutcomeQueueSize
		result = append(result, eq.outcomes[idx])
		eq.outcomes[idx] = GameEvent{}
	}
	eq.outcomeHead = 0
	eq.outcomeCount = 0

	if len(result) == 0 {
		return nil
	}
	return result
}

// Len returns the number of queued events
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.actions) + eq.outcomeCount
}

// Dropped returns the number of events lost to overflow since creation
func (eq *EventQueue) Dropped() uint64 {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.dropped
}
