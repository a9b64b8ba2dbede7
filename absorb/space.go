// Package absorb decides which objects near the hole are pulled in, when they may sink
// through the ground, and the instant each one counts as collected
package absorb

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/sinkhole/core"
	"github.com/lixenwraith/sinkhole/physics"
)

// Space is the physics backend the engine reads and mutates
// physics.World implements it
type Space interface {
	Body(id core.Entity) (*physics.Body, bool)
	OverlapCylinder(center mgl64.Vec3, radius, minY, maxY float64, limit int, buf []core.Entity) []core.Entity
	OverlapSphere(center mgl64.Vec3, radius float64, limit int, buf []core.Entity) []core.Entity
	Raycast(origin, dir mgl64.Vec3, maxDist float64, mask uint32) (physics.RaycastHit, bool)
	RemoveBody(id core.Entity)
}

// RadiusSource reports the hole's current radius; the engine never writes it
type RadiusSource interface {
	HoleRadius() float64
}

// LevelSource reports the hole's current size level
type LevelSource interface {
	Level() int
}

// Target is a point the magnet pulls toward; ok is false once the target is gone
type Target interface {
	TargetPosition() (pos mgl64.Vec3, ok bool)
}

// Collection describes one swallowed object
type Collection struct {
	ID       core.Entity
	Category core.Category
	Reward   int
	Position mgl64.Vec3
}

// RewardSink receives exactly one call per swallowed object
type RewardSink interface {
	Collected(c Collection)
}

// RewardSinkFunc adapts a function to RewardSink
type RewardSinkFunc func(c Collection)

func (f RewardSinkFunc) Collected(c Collection) { f(c) }

// RewardSinks fans one collection out to several sinks in order
type RewardSinks []RewardSink

func (s RewardSinks) Collected(c Collection) {
	for _, sink := range s {
		if sink != nil {
			sink.Collected(c)
		}
	}
}

// FixedRadius is a constant RadiusSource
type FixedRadius float64

func (r FixedRadius) HoleRadius() float64 { return float64(r) }
