package absorb

import (
	"bytes"
	"log"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/sinkhole/config"
	"github.com/lixenwraith/sinkhole/event"
	"github.com/lixenwraith/sinkhole/physics"
)

const tickDt = 1.0 / 60.0

// recordingSink collects every reward callback
type recordingSink struct {
	got []Collection
}

func (s *recordingSink) Collected(c Collection) {
	s.got = append(s.got, c)
}

// testRig is an engine over a flat 20x20 world with a radius-1 hole at the origin
type testRig struct {
	cfg    *config.Tuning
	world  *physics.World
	hole   *Hole
	sink   *recordingSink
	queue  *event.Queue
	logBuf *bytes.Buffer
	eng    *Engine
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	return newTestRigWith(t, config.Default(), FixedRadius(1.0))
}

func newTestRigWith(t *testing.T, cfg *config.Tuning, radius RadiusSource) *testRig {
	t.Helper()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test tuning: %v", err)
	}

	world := physics.NewWorld(cfg.World.Gravity)
	world.AddSurface(physics.Surface{Height: 0, MinX: -10, MaxX: 10, MinZ: -10, MaxZ: 10})

	r := &testRig{
		cfg:    cfg,
		world:  world,
		hole:   NewHole(mgl64.Vec3{}, radius),
		sink:   &recordingSink{},
		queue:  event.NewQueue(nil),
		logBuf: &bytes.Buffer{},
	}
	r.eng = New(cfg, Options{
		Space:      world,
		Hole:       r.hole,
		Sink:       r.sink,
		Events:     r.queue,
		Logger:     log.New(r.logBuf, "", 0),
		GroundMask: physics.CategoryGround,
	})
	return r
}

// spawn adds a cube of the given half size resting at (x, z)
func (r *testRig) spawn(x, z, half float64, spec ObjectSpec) *Object {
	body := r.world.CreateBody(physics.BodySpec{
		Position:    mgl64.Vec3{x, half, z},
		HalfExtents: mgl64.Vec3{half, half, half},
	})
	return r.eng.Add(body, spec)
}

// ticks runs the engine n times without stepping physics, so positions stay where the test puts them
func (r *testRig) ticks(n int) {
	for i := 0; i < n; i++ {
		r.eng.Tick(tickDt)
	}
}

// step runs engine then physics, the way the scheduler orders them
func (r *testRig) step(n int) {
	for i := 0; i < n; i++ {
		r.eng.Tick(tickDt)
		r.world.Step(tickDt)
	}
}

func (r *testRig) events(t event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range r.queue.Consume() {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

// levelSource is a settable LevelSource
type levelSource int

func (l *levelSource) Level() int { return int(*l) }

// movableTarget is a magnet target that can disappear
type movableTarget struct {
	pos   mgl64.Vec3
	valid bool
}

func (m *movableTarget) TargetPosition() (mgl64.Vec3, bool) { return m.pos, m.valid }
