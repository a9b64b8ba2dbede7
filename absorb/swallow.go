package absorb

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/sinkhole/config"
	"github.com/lixenwraith/sinkhole/core"
)

// Swallow fires once per object whose top has dropped below the collection line
type Swallow struct {
	cfg     config.SwallowConfig
	hole    *Hole
	counted map[core.Entity]struct{}
}

func newSwallow(cfg config.SwallowConfig, hole *Hole) *Swallow {
	return &Swallow{cfg: cfg, hole: hole, counted: make(map[core.Entity]struct{})}
}

// DetectorY is the height of the swallow detector under the mouth
func (s *Swallow) DetectorY() float64 {
	return s.hole.Position[1] - s.cfg.Depth
}

// Line is the height an object's top must drop below
func (s *Swallow) Line() float64 {
	return s.DetectorY() - s.cfg.Offset
}

// Volume returns the detector cylinder
func (s *Swallow) Volume() (center mgl64.Vec3, radius, minY, maxY float64) {
	y := s.DetectorY()
	return s.hole.Position, s.hole.Radius(), y - s.cfg.VolumeDepth, y + s.cfg.VolumeHeight
}

// Counted reports whether an object already fired
func (s *Swallow) Counted(id core.Entity) bool {
	_, ok := s.counted[id]
	return ok
}

// check returns the objects swallowed for the first time this tick
func (s *Swallow) check(inside []*Object, out []*Object) []*Object {
	line := s.Line()
	for _, obj := range inside {
		if _, done := s.counted[obj.ID]; done {
			continue
		}
		b := obj.Body()
		if b == nil || b.Top() > line {
			continue
		}
		s.counted[obj.ID] = struct{}{}
		out = append(out, obj)
	}
	return out
}

// sweep drops membership of objects that no longer exist
func (s *Swallow) sweep(alive func(core.Entity) bool) {
	for id := range s.counted {
		if !alive(id) {
			delete(s.counted, id)
		}
	}
}
