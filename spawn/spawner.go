// Package spawn scatters catalog objects over the ground and holds them still until they settle
package spawn

import (
	"io"
	"log"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/sinkhole/absorb"
	"github.com/lixenwraith/sinkhole/config"
	"github.com/lixenwraith/sinkhole/parameter"
	"github.com/lixenwraith/sinkhole/physics"
	"github.com/lixenwraith/sinkhole/vmath"
)

// BodyFactory creates physics bodies; physics.World implements it
type BodyFactory interface {
	CreateBody(spec physics.BodySpec) *physics.Body
}

// Registrar takes ownership of new objects; absorb.Engine implements it
type Registrar interface {
	Add(body *physics.Body, spec absorb.ObjectSpec) *absorb.Object
}

// Spawner places objects and releases them after the unfreeze delay
type Spawner struct {
	cfg    config.SpawnConfig
	ground config.WorldConfig
	bodies BodyFactory
	reg    Registrar
	rng    *rand.Rand
	log    *log.Logger

	pending []*physics.Body
	timer   float64
}

// New creates a spawner; the same seed always yields the same layout
func New(cfg *config.Tuning, bodies BodyFactory, reg Registrar, seed uint64, logger *log.Logger) *Spawner {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Spawner{
		cfg:    cfg.Spawn,
		ground: cfg.World,
		bodies: bodies,
		reg:    reg,
		rng:    rand.New(rand.NewPCG(seed, seed)),
		log:    logger,
	}
}

// Pending returns the number of objects still frozen
func (s *Spawner) Pending() int { return len(s.pending) }

// Priority implements engine.System
func (s *Spawner) Priority() int { return parameter.PrioritySpawn }

// Scatter creates up to Count objects on the ground, none closer than keepOut to center
// Returns the number actually placed
func (s *Spawner) Scatter(center mgl64.Vec3, keepOut float64) int {
	total := 0
	for _, e := range s.cfg.Catalog {
		total += max(0, e.Weight)
	}
	if total == 0 {
		s.log.Printf("[spawn] catalog has no weighted entries, nothing spawned")
		return 0
	}

	frozen := s.cfg.UnfreezeDelay > 0
	placed := 0
	for range s.cfg.Count {
		entry := s.pick(total)
		pos, ok := s.place(entry, center, keepOut)
		if !ok {
			continue
		}
		body := s.bodies.CreateBody(physics.BodySpec{
			Position:    pos,
			HalfExtents: mgl64.Vec3(entry.HalfExtents),
			Mass:        entry.Mass,
			Frozen:      frozen,
		})
		if frozen {
			body.UseGravity = false
			s.pending = append(s.pending, body)
		}
		s.reg.Add(body, absorb.ObjectSpec{
			Category:       entry.Category,
			Reward:         entry.Reward,
			OverrideRadius: entry.OverrideRadius,
			MinLevel:       entry.MinLevel,
		})
		placed++
	}

	if placed < s.cfg.Count {
		s.log.Printf("[spawn] placed %d of %d objects, ground too crowded", placed, s.cfg.Count)
	}
	if frozen {
		s.timer = s.cfg.UnfreezeDelay
	}
	return placed
}

// Update counts down the unfreeze delay and releases every pending body at once
func (s *Spawner) Update(dt float64) {
	if len(s.pending) == 0 {
		return
	}
	s.timer -= dt
	if s.timer > parameter.SpawnReleaseEpsilon {
		return
	}
	s.Release()
}

// Release unfreezes pending bodies immediately with zero velocity
func (s *Spawner) Release() {
	for _, b := range s.pending {
		b.Frozen = false
		b.UseGravity = true
		b.Velocity = mgl64.Vec3{}
		b.AngularVelocity = mgl64.Vec3{}
	}
	s.pending = s.pending[:0]
	s.timer = 0
}

// pick draws a catalog entry proportionally to its weight
func (s *Spawner) pick(total int) config.CatalogEntry {
	n := s.rng.IntN(total)
	for _, e := range s.cfg.Catalog {
		w := max(0, e.Weight)
		if n < w {
			return e
		}
		n -= w
	}
	return s.cfg.Catalog[len(s.cfg.Catalog)-1]
}

// place finds a ground point for entry that stays inside the ground and outside the keep-out circle
func (s *Spawner) place(entry config.CatalogEntry, center mgl64.Vec3, keepOut float64) (mgl64.Vec3, bool) {
	inset := max(entry.HalfExtents[0], entry.HalfExtents[2])
	minX, maxX := s.ground.GroundMinX+inset, s.ground.GroundMaxX-inset
	minZ, maxZ := s.ground.GroundMinZ+inset, s.ground.GroundMaxZ-inset
	if minX > maxX || minZ > maxZ {
		return mgl64.Vec3{}, false
	}

	y := s.ground.GroundHeight + entry.HalfExtents[1] + parameter.SpawnDropHeight
	for range parameter.SpawnAttempts {
		p := mgl64.Vec3{
			vmath.Lerp(minX, maxX, s.rng.Float64()),
			y,
			vmath.Lerp(minZ, maxZ, s.rng.Float64()),
		}
		if vmath.HorizontalDist(p, center) < keepOut+inset {
			continue
		}
		return p, true
	}
	return mgl64.Vec3{}, false
}
