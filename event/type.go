package event

import (
	"encoding/json"
	"fmt"
)

// EventType represents the type of engine event
type EventType int

const (
	// EventObjectCollected fires once per swallowed object
	// Trigger: swallow detector | Consumer: growth, audio, feed
	// Payload: *CollectedPayload
	EventObjectCollected EventType = iota + 1

	// EventPermeabilityChanged fires when the gate flips an object's ground pass-through
	// Trigger: admission gate | Consumer: feed
	// Payload: *PermeabilityPayload
	EventPermeabilityChanged

	// EventMagnetStarted fires on a successful magnet activation
	// Trigger: magnet | Consumer: audio, feed, render
	// Payload: *MagnetPayload
	EventMagnetStarted

	// EventMagnetStopped fires on early stop or natural expiry
	// Trigger: magnet | Consumer: feed, render
	// Payload: *MagnetPayload
	EventMagnetStopped

	// EventHoleLevelUp fires for every size gained
	// Trigger: growth | Consumer: audio, feed
	// Payload: *LevelUpPayload
	EventHoleLevelUp

	// EventGrowBoost fires when the temporary radius boost starts or ends
	// Trigger: grow boost | Consumer: feed
	// Payload: *GrowBoostPayload
	EventGrowBoost

	// EventObjectiveProgress fires when a goal count moves
	// Trigger: objective tracker | Consumer: feed
	// Payload: *ObjectivePayload
	EventObjectiveProgress

	// EventObjectivesComplete fires once when the last goal is met
	// Trigger: objective tracker | Consumer: audio, feed
	// Payload: *ObjectivesCompletePayload
	EventObjectivesComplete
)

var eventTypeNames = map[EventType]string{
	EventObjectCollected:     "object_collected",
	EventPermeabilityChanged: "permeability_changed",
	EventMagnetStarted:       "magnet_started",
	EventMagnetStopped:       "magnet_stopped",
	EventHoleLevelUp:         "hole_level_up",
	EventGrowBoost:           "grow_boost",
	EventObjectiveProgress:   "objective_progress",
	EventObjectivesComplete:  "objectives_complete",
}

// AllEventTypes lists every defined type in declaration order
func AllEventTypes() []EventType {
	return []EventType{
		EventObjectCollected,
		EventPermeabilityChanged,
		EventMagnetStarted,
		EventMagnetStopped,
		EventHoleLevelUp,
		EventGrowBoost,
		EventObjectiveProgress,
		EventObjectivesComplete,
	}
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int(t))
}

// MarshalJSON encodes the type by name
func (t EventType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a type name
func (t *EventType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for k, v := range eventTypeNames {
		if v == name {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("unknown event type %q", name)
}

// GameEvent is a typed event stamped with the tick that produced it
type GameEvent struct {
	Type    EventType `json:"type"`
	Tick    uint64    `json:"tick"`
	Payload any       `json:"payload,omitempty"`
}
