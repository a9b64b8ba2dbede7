// Package objective counts collected objects against per-category level goals
package objective

import (
	"github.com/lixenwraith/sinkhole/absorb"
	"github.com/lixenwraith/sinkhole/config"
	"github.com/lixenwraith/sinkhole/core"
	"github.com/lixenwraith/sinkhole/event"
)

// Progress is the state of one goal
type Progress struct {
	Category core.Category
	Current  int
	Required int
}

// Done reports whether the goal has been met
func (p Progress) Done() bool { return p.Current >= p.Required }

// Tracker holds goal counts for one run
// Counts are capped at the requirement; categories without a goal are ignored
type Tracker struct {
	goals []Progress
	index map[core.Category]int
	emit  event.Emitter

	complete bool
}

// New creates a tracker from configured goals; emit may be nil
// A category listed twice keeps its last requirement
func New(goals []config.GoalConfig, emit event.Emitter) *Tracker {
	t := &Tracker{
		index: make(map[core.Category]int, len(goals)),
		emit:  emit,
	}
	for _, g := range goals {
		if i, ok := t.index[g.Category]; ok {
			t.goals[i].Required = max(0, g.Required)
			continue
		}
		t.index[g.Category] = len(t.goals)
		t.goals = append(t.goals, Progress{Category: g.Category, Required: max(0, g.Required)})
	}
	t.Reset()
	return t
}

// Reset zeroes every count
func (t *Tracker) Reset() {
	for i := range t.goals {
		t.goals[i].Current = 0
	}
	t.complete = t.allDone()
}

// IsGoal reports whether c has a goal
func (t *Tracker) IsGoal(c core.Category) bool {
	_, ok := t.index[c]
	return ok
}

// Add counts amount objects of category c, returning true when the count moved
func (t *Tracker) Add(c core.Category, amount int) bool {
	i, ok := t.index[c]
	if !ok || amount == 0 {
		return false
	}
	g := &t.goals[i]
	next := min(max(g.Current+amount, 0), g.Required)
	if next == g.Current {
		return false
	}
	g.Current = next

	t.publish(event.EventObjectiveProgress, &event.ObjectivePayload{
		Category:  g.Category,
		Current:   g.Current,
		Required:  g.Required,
		Completed: g.Done(),
	})

	if !t.complete && t.allDone() {
		t.complete = true
		t.publish(event.EventObjectivesComplete, &event.ObjectivesCompletePayload{Goals: len(t.goals)})
	}
	return true
}

// Collected implements absorb.RewardSink: each swallowed object counts once
func (t *Tracker) Collected(c absorb.Collection) {
	t.Add(c.Category, 1)
}

// Complete reports whether every goal is met; no goals counts as complete
func (t *Tracker) Complete() bool { return t.complete }

// Current returns the count for c, zero without a goal
func (t *Tracker) Current(c core.Category) int {
	if i, ok := t.index[c]; ok {
		return t.goals[i].Current
	}
	return 0
}

// Required returns the requirement for c, zero without a goal
func (t *Tracker) Required(c core.Category) int {
	if i, ok := t.index[c]; ok {
		return t.goals[i].Required
	}
	return 0
}

// Goals returns a snapshot in configuration order
func (t *Tracker) Goals() []Progress {
	out := make([]Progress, len(t.goals))
	copy(out, t.goals)
	return out
}

func (t *Tracker) allDone() bool {
	for _, g := range t.goals {
		if !g.Done() {
			return false
		}
	}
	return true
}

func (t *Tracker) publish(et event.EventType, payload any) {
	if t.emit != nil {
		t.emit.Emit(et, payload)
	}
}
