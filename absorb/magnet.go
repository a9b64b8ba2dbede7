package absorb

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/sinkhole/config"
	"github.com/lixenwraith/sinkhole/core"
	"github.com/lixenwraith/sinkhole/event"
	"github.com/lixenwraith/sinkhole/parameter"
	"github.com/lixenwraith/sinkhole/vmath"
)

// Magnet is the time-limited boost pulling nearby objects toward a target while shrinking them
// It owns object scale: originals are recorded on first contact and restored when the session ends
type Magnet struct {
	cfg      config.MagnetConfig
	space    Space
	registry *Registry
	hole     *Hole
	target   Target
	emit     event.Emitter
	log      *edgeLog

	active    bool
	remaining float64
	scanTimer float64

	hits       []core.Entity
	candidates []*Object
	originals  map[core.Entity]mgl64.Vec3
}

func newMagnet(cfg config.MagnetConfig, space Space, registry *Registry, hole *Hole, emit event.Emitter, log *edgeLog) *Magnet {
	m := &Magnet{
		cfg:       cfg,
		space:     space,
		registry:  registry,
		hole:      hole,
		emit:      emit,
		log:       log,
		originals: make(map[core.Entity]mgl64.Vec3),
	}
	if hole != nil {
		m.target = hole
	}
	return m
}

// SetTarget changes the pull point; nil leaves the magnet unable to activate
func (m *Magnet) SetTarget(t Target) {
	m.target = t
}

// Active reports whether a session is running
func (m *Magnet) Active() bool {
	return m.active
}

// Remaining returns seconds left in the session
func (m *Magnet) Remaining() float64 {
	return m.remaining
}

// Shrunk returns how many objects have a recorded original scale
func (m *Magnet) Shrunk() int {
	return len(m.originals)
}

// Original returns the recorded scale of a shrunk object
func (m *Magnet) Original(id core.Entity) (mgl64.Vec3, bool) {
	s, ok := m.originals[id]
	return s, ok
}

// Activate starts a session, returning true only when a new session began
// An already running session is left alone; a missing target is logged, an expired one is refused quietly
func (m *Magnet) Activate() bool {
	if m.active {
		return false
	}
	if m.target == nil {
		m.log.Raise("magnet", "magnet-target", "no pull target assigned, activation refused")
		return false
	}
	m.log.Clear("magnet-target")
	if _, ok := m.target.TargetPosition(); !ok {
		return false
	}

	m.active = true
	m.remaining = m.cfg.Duration
	m.scanTimer = 0
	m.emitEvent(event.EventMagnetStarted, &event.MagnetPayload{Duration: m.cfg.Duration, Remaining: m.remaining})
	return true
}

// Stop ends the session immediately with full cleanup
func (m *Magnet) Stop() {
	if !m.active {
		return
	}
	m.finish(event.MagnetStopped)
}

// Forget drops the scale record of a destroyed object
func (m *Magnet) Forget(id core.Entity) {
	delete(m.originals, id)
}

// Scan refreshes the candidate list with a bounded sphere query around the target
// Frozen and over-level bodies are dropped here; the per-scan cap is applied in Work
// With a positive ScanInterval the previous candidates are reused between scans
func (m *Magnet) Scan(dt float64) {
	if !m.active {
		return
	}
	pos, ok := m.targetPosition()
	if !ok {
		m.candidates = m.candidates[:0]
		return
	}

	if m.cfg.ScanInterval > 0 {
		m.scanTimer -= dt
		if m.scanTimer > 0 {
			return
		}
		m.scanTimer = m.cfg.ScanInterval
	}

	m.hits = m.space.OverlapSphere(pos, m.cfg.Radius, parameter.MagnetQueryLimit, m.hits[:0])
	m.candidates = m.candidates[:0]
	for _, id := range m.hits {
		obj, ok := m.registry.Get(id)
		if !ok || obj.Body() == nil || obj.Body().Frozen {
			continue
		}
		if m.hole != nil && !m.hole.Absorbable(obj) {
			continue
		}
		m.candidates = append(m.candidates, obj)
	}
}

// Work advances the countdown, shrinks and pulls candidates, and expires the session on its last tick
// Only objects actually pulled count toward MaxItemsPerScan
func (m *Magnet) Work(dt float64) {
	if !m.active {
		return
	}
	m.remaining -= dt

	if pos, ok := m.targetPosition(); ok {
		pulled := 0
		for _, obj := range m.candidates {
			if pulled >= m.cfg.MaxItemsPerScan {
				break
			}
			// Destroyed between scan and work
			if !m.registry.Has(obj.ID) {
				continue
			}
			m.shrink(obj, dt)
			if m.pull(obj, pos) {
				pulled++
			}
		}
	}

	if m.remaining <= parameter.MagnetExpiryEpsilon {
		m.finish(event.MagnetExpired)
	}
}

func (m *Magnet) targetPosition() (mgl64.Vec3, bool) {
	if m.target == nil {
		return mgl64.Vec3{}, false
	}
	return m.target.TargetPosition()
}

func (m *Magnet) shrink(obj *Object, dt float64) {
	b := obj.Body()
	original, ok := m.originals[obj.ID]
	if !ok {
		original = b.Scale
		m.originals[obj.ID] = original
	}
	target := original.Mul(vmath.Clamp(m.cfg.ShrinkMultiplier, parameter.MagnetShrinkFloor, 1))
	b.Scale = vmath.LerpVec(b.Scale, target, dt*max(parameter.MagnetShrinkSpeedFloor, m.cfg.ShrinkSpeed))
}

// pull reports false for objects already inside MinDistanceStop
func (m *Magnet) pull(obj *Object, target mgl64.Vec3) bool {
	b := obj.Body()
	toTarget := target.Sub(b.Position)
	dist := toTarget.Len()
	if dist < m.cfg.MinDistanceStop {
		return false
	}

	dir := toTarget.Mul(1 / max(vmath.DirEpsilon, dist))
	t := vmath.Clamp01(1 - dist/m.cfg.Radius)
	force := m.cfg.Force * vmath.Lerp(parameter.MagnetFalloffMin, 1, t)

	if b.Speed() < m.cfg.MaxPullSpeed {
		b.AddAcceleration(dir.Mul(force))
	}
	return true
}

func (m *Magnet) finish(reason event.MagnetStopReason) {
	remaining := max(0, m.remaining)
	m.active = false
	m.remaining = 0
	m.candidates = m.candidates[:0]

	restored := 0
	if m.cfg.RestoreScaleOnStop {
		for id, original := range m.originals {
			obj, alive := m.registry.Get(id)
			if !alive || obj.Body() == nil {
				continue
			}
			obj.Body().Scale = original
			restored++
		}
	}
	clear(m.originals)

	m.emitEvent(event.EventMagnetStopped, &event.MagnetPayload{
		Duration:  m.cfg.Duration,
		Remaining: remaining,
		Restored:  restored,
		Reason:    reason,
	})
}

func (m *Magnet) emitEvent(t event.EventType, payload any) {
	if m.emit != nil {
		m.emit.Emit(t, payload)
	}
}
