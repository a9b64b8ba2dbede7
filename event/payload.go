package event

import (
	"github.com/lixenwraith/sinkhole/core"
)

// CollectedPayload describes a swallowed object
type CollectedPayload struct {
	ID       core.Entity   `json:"id"`
	Category core.Category `json:"category"`
	Reward   int           `json:"reward"`
	Position [3]float64    `json:"position"`
}

// PermeabilityPayload reports a pass-through switch
type PermeabilityPayload struct {
	ID        core.Entity `json:"id"`
	Permeable bool        `json:"permeable"`
}

// MagnetStopReason distinguishes early stops from expiry
type MagnetStopReason string

const (
	MagnetStopped MagnetStopReason = "stopped"
	MagnetExpired MagnetStopReason = "expired"
)

// MagnetPayload carries magnet session state
type MagnetPayload struct {
	Duration  float64          `json:"duration"`
	Remaining float64          `json:"remaining"`
	Restored  int              `json:"restored"` // objects whose scale was put back
	Reason    MagnetStopReason `json:"reason,omitempty"`
}

// LevelUpPayload carries the hole's new size
type LevelUpPayload struct {
	Level  int     `json:"level"`
	Radius float64 `json:"radius"`
}

// GrowBoostPayload carries grow boost state
type GrowBoostPayload struct {
	Active     bool    `json:"active"`
	Multiplier float64 `json:"multiplier"`
	Remaining  float64 `json:"remaining"`
}

// ObjectivePayload carries one goal's count
type ObjectivePayload struct {
	Category  core.Category `json:"category"`
	Current   int           `json:"current"`
	Required  int           `json:"required"`
	Completed bool          `json:"completed"`
}

// ObjectivesCompletePayload reports that every goal is met
type ObjectivesCompletePayload struct {
	Goals int `json:"goals"`
}
