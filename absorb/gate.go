package absorb

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/sinkhole/config"
	"github.com/lixenwraith/sinkhole/core"
	"github.com/lixenwraith/sinkhole/vmath"
)

// GateState is an object's admission stage
type GateState int

const (
	Outside GateState = iota
	Tracking
	Permeable
)

func (s GateState) String() string {
	switch s {
	case Tracking:
		return "tracking"
	case Permeable:
		return "permeable"
	default:
		return "outside"
	}
}

// admission is the per-object record kept while inside the gate volume
type admission struct {
	dwell    float64
	fits     bool
	centered bool
	seen     bool
}

// gateResult lists what one evaluation asks the later phases to do
type gateResult struct {
	pull    []*Object
	recover []*Object
	toggled []*Object
}

func (r *gateResult) reset() {
	r.pull = r.pull[:0]
	r.recover = r.recover[:0]
	r.toggled = r.toggled[:0]
}

// Gate decides when an object may become permeable to the ground
// An object is admitted only while it fits, is centered, and has dwelt in the volume for MinDwell
type Gate struct {
	cfg     config.GateConfig
	hole    *Hole
	records map[core.Entity]*admission

	exits []core.Entity
}

func newGate(cfg config.GateConfig, hole *Hole) *Gate {
	return &Gate{
		cfg:     cfg,
		hole:    hole,
		records: make(map[core.Entity]*admission),
	}
}

// Volume returns the trigger cylinder around the mouth
func (g *Gate) Volume() (center mgl64.Vec3, radius, minY, maxY float64) {
	center = g.hole.Position
	ground := center[1]
	return center, g.hole.Radius() * g.cfg.VolumeRadiusScale, ground - g.cfg.VolumeDepth, ground + g.cfg.VolumeHeight
}

// Fits compares horizontal footprints with the configured tolerance
func (g *Gate) Fits(obj *Object) bool {
	return obj.ApproxRadius() <= g.hole.Radius()*g.cfg.FitTolerance
}

// Centered reports whether obj is within the center gate radius
func (g *Gate) Centered(obj *Object) bool {
	b := obj.Body()
	if b == nil {
		return false
	}
	return vmath.HorizontalDist(b.Position, g.hole.Position) <= g.hole.Radius()*g.cfg.CenterGateFactor
}

// State returns the admission stage of an object
func (g *Gate) State(id core.Entity, obj *Object) GateState {
	if _, ok := g.records[id]; !ok {
		return Outside
	}
	if obj != nil && obj.Permeable() {
		return Permeable
	}
	return Tracking
}

// Dwell returns the accumulated dwell time of a tracked object
func (g *Gate) Dwell(id core.Entity) (float64, bool) {
	rec, ok := g.records[id]
	if !ok {
		return 0, false
	}
	return rec.dwell, true
}

// Tracked returns the number of objects with an admission record
func (g *Gate) Tracked() int {
	return len(g.records)
}

// Forget discards the record of a destroyed object
func (g *Gate) Forget(id core.Entity) {
	delete(g.records, id)
}

// evaluate runs one tick of admission over the objects observed inside the volume
// lookup resolves ids of records whose object was not observed; a miss means it was destroyed
func (g *Gate) evaluate(inside []*Object, dt float64, lookup func(core.Entity) (*Object, bool), out *gateResult) {
	out.reset()

	for _, obj := range inside {
		rec, tracked := g.records[obj.ID]
		if !tracked {
			// Entry tick: the record starts at zero and evaluation begins next tick
			g.records[obj.ID] = &admission{seen: true}
			continue
		}
		rec.seen = true

		rec.fits = g.Fits(obj)
		if !rec.fits {
			if obj.setPermeable(false) {
				out.toggled = append(out.toggled, obj)
			}
			out.recover = append(out.recover, obj)
			rec.dwell = 0
			rec.centered = false
			continue
		}

		rec.dwell += dt
		rec.centered = g.Centered(obj)
		out.pull = append(out.pull, obj)

		allowed := rec.centered && rec.dwell >= g.cfg.MinDwell
		if obj.setPermeable(allowed) {
			out.toggled = append(out.toggled, obj)
		}
		if !allowed {
			out.recover = append(out.recover, obj)
		}
	}

	g.exits = g.exits[:0]
	for id, rec := range g.records {
		if rec.seen {
			rec.seen = false
			continue
		}
		g.exits = append(g.exits, id)
	}
	slices.Sort(g.exits)

	for _, id := range g.exits {
		delete(g.records, id)
		obj, alive := lookup(id)
		if !alive {
			continue
		}
		if obj.setPermeable(false) {
			out.toggled = append(out.toggled, obj)
		}
		out.recover = append(out.recover, obj)
	}
}
