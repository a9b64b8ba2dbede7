package absorb

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/sinkhole/config"
	"github.com/lixenwraith/sinkhole/core"
	"github.com/lixenwraith/sinkhole/event"
	"github.com/lixenwraith/sinkhole/parameter"
	"github.com/lixenwraith/sinkhole/physics"
)

// Options wires the engine to its collaborators
type Options struct {
	Space      Space
	Hole       *Hole
	Registry   *Registry     // nil creates an empty one
	Sink       RewardSink    // may be nil
	Events     event.Emitter // may be nil
	Logger     *log.Logger   // nil discards
	GroundMask uint32        // categories the recovery probe hits
}

// Stats are running totals for reporting
type Stats struct {
	Ticks      uint64
	Collected  int
	Reward     int
	Recoveries int
}

// Engine runs the absorption phases once per tick in a fixed order:
// broad-phase queries, admission, forces, recovery, swallow
// It is a scheduler System and must run before the physics step
type Engine struct {
	cfg      *config.Tuning
	space    Space
	registry *Registry
	hole     *Hole
	sink     RewardSink
	emit     event.Emitter
	log      *edgeLog

	field    *HoleField
	gate     *Gate
	magnet   *Magnet
	recovery *Recovery
	swallow  *Swallow

	stats Stats

	// Per-tick scratch, reused
	gateHits    []core.Entity
	swallowHits []core.Entity
	pullHits    []core.Entity
	inGate      []*Object
	inSwallow   []*Object
	pullSet     []*Object
	pulled      map[core.Entity]struct{}
	swallowed   []*Object
	gateOut     gateResult
}

// New builds an engine over opts; cfg must already be validated
func New(cfg *config.Tuning, opts Options) *Engine {
	registry := opts.Registry
	if registry == nil {
		registry = NewRegistry()
	}
	el := newEdgeLog(opts.Logger)

	e := &Engine{
		cfg:      cfg,
		space:    opts.Space,
		registry: registry,
		hole:     opts.Hole,
		sink:     opts.Sink,
		emit:     opts.Events,
		log:      el,
		pulled:   make(map[core.Entity]struct{}),
	}

	hole := opts.Hole
	if hole == nil {
		// Components keep a placeholder so accessors stay usable; Tick refuses to run
		hole = NewHole(mgl64.Vec3{}, nil)
	}
	e.field = NewHoleField(cfg.HoleField, hole)
	e.gate = newGate(cfg.Gate, hole)
	e.swallow = newSwallow(cfg.Swallow, hole)
	e.recovery = newRecovery(cfg.Recovery, opts.Space, opts.GroundMask, el)
	e.magnet = newMagnet(cfg.Magnet, opts.Space, registry, opts.Hole, opts.Events, el)
	return e
}

func (e *Engine) Registry() *Registry    { return e.registry }
func (e *Engine) Hole() *Hole            { return e.hole }
func (e *Engine) Field() *HoleField      { return e.field }
func (e *Engine) Gate() *Gate            { return e.gate }
func (e *Engine) Magnet() *Magnet        { return e.magnet }
func (e *Engine) Recovery() *Recovery    { return e.recovery }
func (e *Engine) Swallow() *Swallow      { return e.swallow }
func (e *Engine) Stats() Stats           { return e.stats }
func (e *Engine) Config() *config.Tuning { return e.cfg }
func (e *Engine) Priority() int          { return parameter.PriorityAbsorb }
func (e *Engine) Update(dt float64)      { e.Tick(dt) }

// Add registers an object built around an existing body
func (e *Engine) Add(body *physics.Body, spec ObjectSpec) *Object {
	obj := NewObject(body, spec)
	e.registry.Add(obj)
	return obj
}

// Destroy removes an object everywhere it is tracked
func (e *Engine) Destroy(id core.Entity) {
	e.registry.Remove(id)
	e.gate.Forget(id)
	e.magnet.Forget(id)
	if e.space != nil {
		e.space.RemoveBody(id)
	}
}

// Tick runs one absorption step of dt seconds
// Misconfiguration makes the tick a logged no-op
func (e *Engine) Tick(dt float64) {
	if e.hole == nil {
		e.log.Raise("absorb", "hole", "no hole assigned, tick skipped")
		return
	}
	e.log.Clear("hole")
	if e.space == nil {
		e.log.Raise("absorb", "space", "no physics space assigned, tick skipped")
		return
	}
	e.log.Clear("space")
	if e.hole.Radius() <= 0 {
		e.log.Raise("absorb", "radius", "hole radius is %.3f, tick skipped", e.hole.Radius())
		return
	}
	e.log.Clear("radius")

	e.stats.Ticks++

	e.query(dt)
	e.gate.evaluate(e.inGate, dt, e.registry.Get, &e.gateOut)
	e.applyForces(dt)
	e.recover()
	e.collect()
}

// query is phase one: every spatial query of the tick runs before any state changes
func (e *Engine) query(dt float64) {
	center, radius, minY, maxY := e.gate.Volume()
	e.gateHits = e.space.OverlapCylinder(center, radius, minY, maxY, 0, e.gateHits[:0])
	e.inGate = e.resolve(e.gateHits, e.inGate[:0], true)

	center, radius, minY, maxY = e.swallow.Volume()
	e.swallowHits = e.space.OverlapCylinder(center, radius, minY, maxY, 0, e.swallowHits[:0])
	e.inSwallow = e.resolve(e.swallowHits, e.inSwallow[:0], false)

	// The pull scan shares the gate's vertical span
	_, _, minY, maxY = e.gate.Volume()
	e.pullHits = e.space.OverlapCylinder(e.hole.Position, e.field.PullRadius(), minY, maxY, 0, e.pullHits[:0])

	e.magnet.Scan(dt)
}

// resolve maps body ids to live objects, dropping frozen ones and, when eligible is set, those the hole cannot take
func (e *Engine) resolve(ids []core.Entity, out []*Object, eligible bool) []*Object {
	for _, id := range ids {
		obj, ok := e.registry.Get(id)
		if !ok {
			continue
		}
		b := obj.Body()
		if b == nil || b.Frozen {
			continue
		}
		if eligible && !e.hole.Absorbable(obj) {
			continue
		}
		out = append(out, obj)
	}
	return out
}

// applyForces is phase three: gate-approved objects plus eligible objects in the pull radius, each pulled once
// Objects failing the fit check are never pulled
func (e *Engine) applyForces(dt float64) {
	clear(e.pulled)
	e.pullSet = e.pullSet[:0]

	for _, obj := range e.gateOut.pull {
		e.pulled[obj.ID] = struct{}{}
		e.pullSet = append(e.pullSet, obj)
	}
	for _, id := range e.pullHits {
		if _, done := e.pulled[id]; done {
			continue
		}
		obj, ok := e.registry.Get(id)
		if !ok || obj.Body() == nil || obj.Body().Frozen {
			continue
		}
		if !e.hole.Absorbable(obj) || !e.gate.Fits(obj) {
			continue
		}
		e.pulled[id] = struct{}{}
		e.pullSet = append(e.pullSet, obj)
	}

	for _, obj := range e.pullSet {
		e.field.ApplyForce(obj, dt)
	}

	e.magnet.Work(dt)
}

// recover is phase four
func (e *Engine) recover() {
	for _, obj := range e.gateOut.recover {
		if e.recovery.Recover(obj) {
			e.stats.Recoveries++
		}
	}
	if e.emit == nil {
		return
	}
	for _, obj := range e.gateOut.toggled {
		e.emit.Emit(event.EventPermeabilityChanged, &event.PermeabilityPayload{ID: obj.ID, Permeable: obj.Permeable()})
	}
}

// collect is phase five
func (e *Engine) collect() {
	e.swallow.sweep(e.registry.Has)
	e.swallowed = e.swallow.check(e.inSwallow, e.swallowed[:0])

	for _, obj := range e.swallowed {
		pos := obj.Body().Position
		c := Collection{ID: obj.ID, Category: obj.Category, Reward: obj.Reward, Position: pos}

		e.stats.Collected++
		e.stats.Reward += obj.Reward

		if e.sink != nil {
			e.sink.Collected(c)
		}
		if e.emit != nil {
			e.emit.Emit(event.EventObjectCollected, &event.CollectedPayload{
				ID:       obj.ID,
				Category: obj.Category,
				Reward:   obj.Reward,
				Position: [3]float64(pos),
			})
		}
		e.Destroy(obj.ID)
	}
}
