package main

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/lixenwraith/sinkhole/config"
	"github.com/lixenwraith/sinkhole/core"
	"github.com/lixenwraith/sinkhole/engine"
	"github.com/lixenwraith/sinkhole/event"
)

func newTestGame(t *testing.T, capture bool) (*game, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	g := newGame(config.Default(), 7, log.New(&buf, "", 0), capture)
	return g, &buf
}

func TestNewGameScattersCatalog(t *testing.T) {
	g, _ := newTestGame(t, false)

	if g.spawned != g.cfg.Spawn.Count {
		t.Errorf("Expected %d objects spawned, got %d", g.cfg.Spawn.Count, g.spawned)
	}
	if g.engine.Registry().Len() != g.spawned {
		t.Errorf("Expected registry to hold %d objects, got %d", g.spawned, g.engine.Registry().Len())
	}
	if g.world.Count() != g.spawned {
		t.Errorf("Expected %d bodies in the world, got %d", g.spawned, g.world.Count())
	}
	if g.spawner.Pending() != g.spawned {
		t.Errorf("Expected every object frozen at start, got %d pending", g.spawner.Pending())
	}
}

func TestGameReleasesSpawnedObjects(t *testing.T) {
	g, _ := newTestGame(t, false)
	g.runTicks(30)

	if g.spawner.Pending() != 0 {
		t.Errorf("Expected spawn release after the unfreeze delay, %d still pending", g.spawner.Pending())
	}
	if g.sched.TickCount() != 30 {
		t.Errorf("Expected 30 ticks, got %d", g.sched.TickCount())
	}
}

func TestGameRunConservesObjects(t *testing.T) {
	g, _ := newTestGame(t, false)

	// Sweep the hole across the field
	for i := 0; i < 600; i++ {
		dx := 1.0
		if (i/150)%2 == 1 {
			dx = -1
		}
		g.send(command{kind: cmdMove, dx: dx, dz: 0.3})
		g.sched.Step()
	}

	st := g.engine.Stats()
	if st.Collected+g.engine.Registry().Len() != g.spawned {
		t.Errorf("Expected collected %d + remaining %d == spawned %d", st.Collected, g.engine.Registry().Len(), g.spawned)
	}
	if g.world.Count() != g.engine.Registry().Len() {
		t.Errorf("Expected world bodies %d to match registry %d", g.world.Count(), g.engine.Registry().Len())
	}
}

func TestCollectionsFeedGoals(t *testing.T) {
	g, _ := newTestGame(t, false)

	swallowed := make(map[core.Category]int)
	g.subscribe(engine.HandlerFunc(func(ev event.GameEvent) {
		if p, ok := ev.Payload.(*event.CollectedPayload); ok {
			swallowed[p.Category]++
		}
	}, event.EventObjectCollected))

	for i := 0; i < 600; i++ {
		dx := 1.0
		if (i/150)%2 == 1 {
			dx = -1
		}
		g.send(command{kind: cmdMove, dx: dx, dz: 0.3})
		g.sched.Step()
	}

	total := 0
	for _, n := range swallowed {
		total += n
	}
	if total != g.engine.Stats().Collected {
		t.Errorf("Expected %d collection events, got %d", g.engine.Stats().Collected, total)
	}
	for _, p := range g.goals.Goals() {
		if want := min(swallowed[p.Category], p.Required); p.Current != want {
			t.Errorf("Expected %s goal at %d, got %d", p.Category, want, p.Current)
		}
	}
}

func TestMoveCommandHoldsHeading(t *testing.T) {
	g, _ := newTestGame(t, false)
	start := g.hole.Position

	g.send(command{kind: cmdMove, dx: 1})
	g.runTicks(1)
	first := g.hole.Position[0] - start[0]
	want := g.cfg.World.HoleMoveSpeed * g.sched.TickDelta()
	if first < want*0.999 || first > want*1.001 {
		t.Errorf("Expected one tick of movement %f, got %f", want, first)
	}

	// Without repeats the heading lapses after the hold window
	g.runTicks(60)
	held := g.hole.Position[0]
	g.runTicks(10)
	if g.hole.Position[0] != held {
		t.Errorf("Expected hole to stop after the hold window, moved from %f to %f", held, g.hole.Position[0])
	}
	if g.hole.Position[2] != start[2] {
		t.Errorf("Expected no vertical drift, got z %f", g.hole.Position[2])
	}
}

func TestMoveStaysInsideGround(t *testing.T) {
	g, _ := newTestGame(t, false)
	for i := 0; i < 600; i++ {
		g.send(command{kind: cmdMove, dx: -1, dz: -1})
		g.sched.Step()
	}

	r := g.hole.Radius()
	if x := g.hole.Position[0]; x < g.cfg.World.GroundMinX+r-1e-9 {
		t.Errorf("Expected x clamped to %f, got %f", g.cfg.World.GroundMinX+r, x)
	}
	if z := g.hole.Position[2]; z < g.cfg.World.GroundMinZ+r-1e-9 {
		t.Errorf("Expected z clamped to %f, got %f", g.cfg.World.GroundMinZ+r, z)
	}
}

func TestMagnetAndBoostCommands(t *testing.T) {
	g, buf := newTestGame(t, false)

	var started, boosts int
	g.subscribe(engine.HandlerFunc(func(ev event.GameEvent) {
		switch ev.Type {
		case event.EventMagnetStarted:
			started++
		case event.EventGrowBoost:
			boosts++
		}
	}, event.EventMagnetStarted, event.EventGrowBoost))

	baseRadius := g.hole.Radius()
	g.send(command{kind: cmdMagnet})
	g.send(command{kind: cmdBoost})
	g.runTicks(1)

	if !g.engine.Magnet().Active() {
		t.Error("Expected magnet active")
	}
	if !g.boost.Active() {
		t.Error("Expected grow boost active")
	}
	if g.hole.Radius() <= baseRadius {
		t.Errorf("Expected boosted radius above %f, got %f", baseRadius, g.hole.Radius())
	}
	if started != 1 || boosts != 1 {
		t.Errorf("Expected one magnet and one boost event, got %d and %d", started, boosts)
	}

	// Repeats while active are refused and logged
	g.send(command{kind: cmdMagnet})
	g.send(command{kind: cmdBoost})
	g.runTicks(1)
	if started != 1 || boosts != 1 {
		t.Errorf("Expected no extra events, got %d and %d", started, boosts)
	}
	logs := buf.String()
	if !strings.Contains(logs, "[input] magnet not started") || !strings.Contains(logs, "[input] grow boost already active") {
		t.Errorf("Expected refusals logged, got %q", logs)
	}
}

func TestInputBufferDropsOverflow(t *testing.T) {
	g, _ := newTestGame(t, false)
	accepted := 0
	for i := 0; i < cap(g.input)+10; i++ {
		if g.send(command{kind: cmdMove, dx: 1}) {
			accepted++
		}
	}
	if accepted != cap(g.input) {
		t.Errorf("Expected %d commands accepted, got %d", cap(g.input), accepted)
	}
	g.runTicks(1)
	if len(g.input) != 0 {
		t.Errorf("Expected input drained in one tick, %d left", len(g.input))
	}
}

func TestFrameCapture(t *testing.T) {
	g, _ := newTestGame(t, true)
	if f := g.Frame(); len(f.Objects) != g.spawned {
		t.Errorf("Expected initial frame with %d objects, got %d", g.spawned, len(f.Objects))
	}

	g.runTicks(5)
	f := g.Frame()
	if f.Tick != 4 {
		t.Errorf("Expected frame captured during tick 4, got %d", f.Tick)
	}
	if f.Radius != g.hole.Radius() || f.Size != g.growth.Size() {
		t.Errorf("Expected frame to mirror hole state, got radius %f size %d", f.Radius, f.Size)
	}

	headless, _ := newTestGame(t, false)
	headless.runTicks(5)
	if f := headless.Frame(); f.Tick != 0 || f.Objects != nil {
		t.Error("Expected no frames captured in headless mode")
	}
}

func TestSameSeedSameRun(t *testing.T) {
	a, _ := newTestGame(t, false)
	b, _ := newTestGame(t, false)
	for i := 0; i < 300; i++ {
		a.send(command{kind: cmdMove, dx: 1, dz: 1})
		b.send(command{kind: cmdMove, dx: 1, dz: 1})
		a.sched.Step()
		b.sched.Step()
	}
	if a.summary() != b.summary() {
		t.Errorf("Expected identical runs, got\n%s\n%s", a.summary(), b.summary())
	}
}

func TestSummary(t *testing.T) {
	g, _ := newTestGame(t, false)
	g.runTicks(3)
	s := g.summary()
	for _, want := range []string{"ticks=3", "spawned=80", "collected=", "size=1", "goals=0/3"} {
		if !strings.Contains(s, want) {
			t.Errorf("Expected summary to contain %q, got %q", want, s)
		}
	}
}
