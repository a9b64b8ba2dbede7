package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/sinkhole/core"
)

// Surface is a horizontal, axis-aligned rectangle of solid ground
type Surface struct {
	Height     float64
	MinX, MaxX float64
	MinZ, MaxZ float64
	Layer      Layer
	Friction   float64 // horizontal velocity loss per second while in contact
}

// Contains reports whether the ground-plane point (x, z) lies over the surface
func (s *Surface) Contains(x, z float64) bool {
	return x >= s.MinX && x <= s.MaxX && z >= s.MinZ && z <= s.MaxZ
}

// World owns bodies and static ground surfaces and advances them on a fixed step
// Only body versus surface contacts are resolved; bodies do not collide with each other
type World struct {
	Gravity mgl64.Vec3
	Filter  CollisionFilter

	bodies   map[core.Entity]*Body
	order    []core.Entity // creation order, for deterministic iteration
	surfaces []Surface
	nextID   core.Entity
}

// NewWorld creates an empty world with vertical gravity g (negative pulls down)
func NewWorld(g float64) *World {
	return &World{
		Gravity: mgl64.Vec3{0, g, 0},
		Filter:  DefaultFilter,
		bodies:  make(map[core.Entity]*Body),
		order:   make([]core.Entity, 0, 128),
		nextID:  1,
	}
}

// AddSurface registers a static ground surface
func (w *World) AddSurface(s Surface) {
	if s.Layer == (Layer{}) {
		s.Layer = GroundLayer
	}
	w.surfaces = append(w.surfaces, s)
}

// Surfaces returns the registered surfaces
func (w *World) Surfaces() []Surface {
	return w.surfaces
}

// CreateBody adds a body and returns it with a fresh id
func (w *World) CreateBody(spec BodySpec) *Body {
	scale := spec.Scale
	if scale == (mgl64.Vec3{}) {
		scale = mgl64.Vec3{1, 1, 1}
	}
	mass := spec.Mass
	if mass <= 0 {
		mass = 1
	}
	layer := spec.Layer.Normalized()

	b := &Body{
		ID:           w.nextID,
		Position:     spec.Position,
		Orientation:  mgl64.QuatIdent(),
		Scale:        scale,
		HalfExtents:  spec.HalfExtents,
		Mass:         mass,
		UseGravity:   true,
		Frozen:       spec.Frozen,
		Layer:        layer,
		defaultLayer: layer,
	}
	w.nextID++

	w.bodies[b.ID] = b
	w.order = append(w.order, b.ID)
	return b
}

// Body looks up a live body
func (w *World) Body(id core.Entity) (*Body, bool) {
	b, ok := w.bodies[id]
	return b, ok
}

// RemoveBody destroys a body; unknown ids are ignored
func (w *World) RemoveBody(id core.Entity) {
	if _, ok := w.bodies[id]; !ok {
		return
	}
	delete(w.bodies, id)
	for i, e := range w.order {
		if e == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Count returns the number of live bodies
func (w *World) Count() int {
	return len(w.bodies)
}

// Bodies returns live bodies in creation order
func (w *World) Bodies() []*Body {
	out := make([]*Body, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.bodies[id])
	}
	return out
}

// Step integrates all bodies by dt seconds and resolves ground contacts
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	for _, id := range w.order {
		b := w.bodies[id]
		Integrate(b, w.Gravity, dt)
		if b.Frozen {
			continue
		}
		for i := range w.surfaces {
			w.resolveSurface(b, &w.surfaces[i], dt)
		}
	}
}

// resolveSurface pushes a body resting into a surface back on top of it
// Only shallow penetration is resolved: once the center is below the surface the body has tunneled and is left alone
func (w *World) resolveSurface(b *Body, s *Surface, dt float64) {
	if !w.Filter(b.Layer, s.Layer) {
		return
	}
	if !s.Contains(b.Position[0], b.Position[2]) {
		return
	}

	bottom := b.Bottom()
	if bottom >= s.Height || b.Position[1] < s.Height {
		return
	}

	b.Position[1] += s.Height - bottom
	if b.Velocity[1] < 0 {
		b.Velocity[1] = 0
	}
	if s.Friction > 0 {
		keep := math.Max(0, 1-s.Friction*dt)
		b.Velocity[0] *= keep
		b.Velocity[2] *= keep
	}
}
