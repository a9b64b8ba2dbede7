package absorb

import (
	"github.com/lixenwraith/sinkhole/core"
	"github.com/lixenwraith/sinkhole/parameter"
	"github.com/lixenwraith/sinkhole/physics"
)

// ObjectSpec carries the gameplay attributes of a new object
type ObjectSpec struct {
	Category       core.Category
	Reward         int
	OverrideRadius float64 // zero derives the footprint from bounds
	MinLevel       int     // smallest hole level able to absorb it
}

// Object is an absorbable physical item
// Permeability mirrors the body's pass-through layer and only the gate changes it
type Object struct {
	ID             core.Entity
	Category       core.Category
	Reward         int
	OverrideRadius float64
	MinLevel       int

	body      *physics.Body
	permeable bool
}

// NewObject wraps a body; the object shares the body's id
func NewObject(body *physics.Body, spec ObjectSpec) *Object {
	return &Object{
		ID:             body.ID,
		Category:       spec.Category,
		Reward:         spec.Reward,
		OverrideRadius: spec.OverrideRadius,
		MinLevel:       spec.MinLevel,
		body:           body,
	}
}

// Body returns the physical body, nil for a detached object
func (o *Object) Body() *physics.Body {
	return o.body
}

// Permeable reports whether the object currently passes through the ground
func (o *Object) Permeable() bool {
	return o.permeable
}

// ApproxRadius is the horizontal footprint radius
// Override wins; otherwise the larger scaled half-extent on X or Z
func (o *Object) ApproxRadius() float64 {
	if o.OverrideRadius > 0 {
		return o.OverrideRadius
	}
	if o.body != nil {
		h := o.body.ScaledHalfExtents()
		return max(h[0], h[2])
	}
	return parameter.DefaultItemRadius
}

// setPermeable flips the ground pass-through switch, reporting whether it changed
func (o *Object) setPermeable(on bool) bool {
	if o.permeable == on {
		return false
	}
	o.permeable = on
	if o.body != nil {
		o.body.SetPassThrough(on)
	}
	return true
}
