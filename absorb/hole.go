package absorb

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/sinkhole/vmath"
)

// Rect is a ground-plane rectangle
type Rect struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// Hole is the player-controlled absorbing mouth
// Position is the center on the ground plane; Y is the ground height at the mouth
type Hole struct {
	Position mgl64.Vec3

	radius RadiusSource
	level  LevelSource
	bounds *Rect
}

// NewHole places a hole whose radius is read from src
func NewHole(pos mgl64.Vec3, src RadiusSource) *Hole {
	return &Hole{Position: pos, radius: src}
}

// SetLevelSource enables the absorb level gate; nil disables it
func (h *Hole) SetLevelSource(ls LevelSource) {
	h.level = ls
}

// SetBounds keeps the mouth inside r inset by the current radius
func (h *Hole) SetBounds(r Rect) {
	h.bounds = &r
	h.Clamp()
}

// Radius returns the current radius, zero without a source
func (h *Hole) Radius() float64 {
	if h.radius == nil {
		return 0
	}
	return h.radius.HoleRadius()
}

// Level returns the current size level, zero without a source
func (h *Hole) Level() int {
	if h.level == nil {
		return 0
	}
	return h.level.Level()
}

// Absorbable reports whether the hole is big enough in level terms to take obj
func (h *Hole) Absorbable(obj *Object) bool {
	if h.level == nil {
		return true
	}
	return obj.MinLevel <= h.level.Level()
}

// Move shifts the mouth horizontally and reapplies the bounds
func (h *Hole) Move(dx, dz float64) {
	h.Position[0] += dx
	h.Position[2] += dz
	h.Clamp()
}

// Clamp pulls the center back inside the bounds inset by radius
// When the rectangle is narrower than the hole the center sits on the rectangle's midline
func (h *Hole) Clamp() {
	if h.bounds == nil {
		return
	}
	r := h.Radius()
	h.Position[0] = clampAxis(h.Position[0], h.bounds.MinX, h.bounds.MaxX, r)
	h.Position[2] = clampAxis(h.Position[2], h.bounds.MinZ, h.bounds.MaxZ, r)
}

func clampAxis(v, lo, hi, inset float64) float64 {
	lo += inset
	hi -= inset
	if lo > hi {
		return (lo + hi) / 2
	}
	return vmath.Clamp(v, lo, hi)
}

// TargetPosition lets the hole serve as the magnet target
func (h *Hole) TargetPosition() (mgl64.Vec3, bool) {
	return h.Position, true
}
