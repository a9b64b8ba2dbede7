package main

import (
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/sinkhole/absorb"
	"github.com/lixenwraith/sinkhole/config"
	"github.com/lixenwraith/sinkhole/engine"
	"github.com/lixenwraith/sinkhole/event"
	"github.com/lixenwraith/sinkhole/growth"
	"github.com/lixenwraith/sinkhole/objective"
	"github.com/lixenwraith/sinkhole/parameter"
	"github.com/lixenwraith/sinkhole/physics"
	"github.com/lixenwraith/sinkhole/render"
	"github.com/lixenwraith/sinkhole/spawn"
)

// commandKind is a player action carried from the input goroutine into the sim loop
type commandKind int

const (
	cmdMove commandKind = iota
	cmdMagnet
	cmdBoost
)

type command struct {
	kind   commandKind
	dx, dz float64 // unit heading for cmdMove
}

// game owns the simulation; every field except input and the frame is touched only by scheduler systems
type game struct {
	cfg *config.Tuning
	log *log.Logger

	sched   *engine.Scheduler
	world   *physics.World
	queue   *event.Queue
	router  *engine.EventRouter
	growth  *growth.Growth
	boost   *growth.Boost
	goals   *objective.Tracker
	hole    *absorb.Hole
	engine  *absorb.Engine
	spawner *spawn.Spawner

	input chan command

	// Current movement heading, kept alive by key repeats
	headX, headZ float64
	hold         float64

	spawned int

	frameMu sync.Mutex
	frame   render.Frame
	capture bool
}

// newGame wires the world, the absorption engine and every supporting system onto a scheduler
// Frames are captured for the renderer only when capture is set
func newGame(cfg *config.Tuning, seed uint64, logger *log.Logger, capture bool) *game {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	g := &game{
		cfg:     cfg,
		log:     logger,
		sched:   engine.NewScheduler(cfg.TickRate),
		world:   physics.NewWorld(cfg.World.Gravity),
		input:   make(chan command, parameter.InputBufferSize),
		capture: capture,
	}

	w := cfg.World
	g.world.AddSurface(physics.Surface{
		Height:   w.GroundHeight,
		MinX:     w.GroundMinX,
		MaxX:     w.GroundMaxX,
		MinZ:     w.GroundMinZ,
		MaxZ:     w.GroundMaxZ,
		Layer:    physics.GroundLayer,
		Friction: w.ContactFriction,
	})

	g.queue = event.NewQueue(g.sched.TickCount)
	g.router = engine.NewEventRouter(g.queue)

	g.growth = growth.New(cfg.Growth, g.queue)
	g.boost = growth.NewBoost(cfg.Growth, g.growth, g.queue)
	g.goals = objective.New(cfg.Goals, g.queue)

	g.hole = absorb.NewHole(mgl64.Vec3{0, w.GroundHeight, 0}, g.growth)
	g.hole.SetLevelSource(g.growth)
	g.hole.SetBounds(absorb.Rect{MinX: w.GroundMinX, MaxX: w.GroundMaxX, MinZ: w.GroundMinZ, MaxZ: w.GroundMaxZ})

	g.engine = absorb.New(cfg, absorb.Options{
		Space:      g.world,
		Hole:       g.hole,
		Sink:       absorb.RewardSinks{g.growth, g.goals},
		Events:     g.queue,
		Logger:     logger,
		GroundMask: physics.CategoryGround,
	})

	g.spawner = spawn.New(cfg, g.world, g.engine, seed, logger)
	g.spawned = g.spawner.Scatter(g.hole.Position, g.hole.Radius()+parameter.SpawnClearance)

	g.sched.Register(
		engine.SystemFunc(parameter.PriorityInput, g.drainInput),
		g.boost,
		engine.SystemFunc(parameter.PriorityHole, g.moveHole),
		g.spawner,
		g.engine,
		engine.SystemFunc(parameter.PriorityPhysics, g.world.Step),
		g.router,
		engine.SystemFunc(parameter.PriorityFrame, g.captureFrame),
	)
	if capture {
		g.captureFrame(0)
	}
	return g
}

// subscribe attaches an event consumer to the router; call before the scheduler starts
func (g *game) subscribe(h engine.EventHandler) {
	g.router.Register(h)
}

// send queues a command without blocking; a full buffer drops it
func (g *game) send(c command) bool {
	select {
	case g.input <- c:
		return true
	default:
		return false
	}
}

func (g *game) drainInput(float64) {
	for {
		select {
		case c := <-g.input:
			g.apply(c)
		default:
			return
		}
	}
}

func (g *game) apply(c command) {
	switch c.kind {
	case cmdMove:
		g.headX, g.headZ = c.dx, c.dz
		g.hold = parameter.InputHoldDuration
	case cmdMagnet:
		if !g.engine.Magnet().Activate() {
			g.log.Printf("[input] magnet not started")
		}
	case cmdBoost:
		if !g.boost.Activate() {
			g.log.Printf("[input] grow boost already active")
		}
	}
}

func (g *game) moveHole(dt float64) {
	// Radius may have changed through growth or boost
	g.hole.Clamp()
	if g.hold <= 0 {
		return
	}
	g.hold -= dt
	step := g.cfg.World.HoleMoveSpeed * dt
	g.hole.Move(g.headX*step, g.headZ*step)
}

func (g *game) captureFrame(float64) {
	if !g.capture {
		return
	}
	f := render.Capture(g.engine, g.growth, g.boost, g.goals, g.cfg.World, g.sched.TickCount())
	g.frameMu.Lock()
	g.frame = f
	g.frameMu.Unlock()
}

// Frame returns the latest snapshot; safe from any goroutine
func (g *game) Frame() render.Frame {
	g.frameMu.Lock()
	defer g.frameMu.Unlock()
	return g.frame
}

// runTicks steps the scheduler n times on the calling goroutine
func (g *game) runTicks(n int) {
	for i := 0; i < n; i++ {
		g.sched.Step()
	}
}

// summary reports headless run totals
func (g *game) summary() string {
	st := g.engine.Stats()
	met := 0
	goals := g.goals.Goals()
	for _, p := range goals {
		if p.Done() {
			met++
		}
	}
	return fmt.Sprintf(
		"ticks=%d spawned=%d collected=%d reward=%d recoveries=%d remaining=%d size=%d radius=%.2f goals=%d/%d dropped_events=%d",
		g.sched.TickCount(), g.spawned, st.Collected, st.Reward, st.Recoveries,
		g.engine.Registry().Len(), g.growth.Size(), g.hole.Radius(), met, len(goals), g.queue.Dropped(),
	)
}
