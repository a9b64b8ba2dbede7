package render

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/sinkhole/absorb"
	"github.com/lixenwraith/sinkhole/config"
	"github.com/lixenwraith/sinkhole/core"
	"github.com/lixenwraith/sinkhole/growth"
	"github.com/lixenwraith/sinkhole/objective"
)

// ObjectView is the drawable state of one object
type ObjectView struct {
	Category  core.Category
	Position  mgl64.Vec3
	Permeable bool
}

// Frame is an immutable snapshot of everything the renderer draws
// It is captured on the sim goroutine and drawn on the render goroutine
type Frame struct {
	Ground       absorb.Rect
	GroundHeight float64

	Hole   mgl64.Vec3
	Radius float64

	Size int
	XP   int
	Need int

	MagnetActive    bool
	MagnetRemaining float64
	MagnetRadius    float64

	BoostActive    bool
	BoostRemaining float64

	Goals         []objective.Progress
	GoalsComplete bool

	Collected int
	Reward    int
	Objects   []ObjectView
	Tick      uint64
}

// Capture snapshots the engine and optional growth and goal state; g, boost and goals may be nil
func Capture(eng *absorb.Engine, g *growth.Growth, boost *growth.Boost, goals *objective.Tracker, world config.WorldConfig, tick uint64) Frame {
	hole := eng.Hole()
	f := Frame{
		Ground: absorb.Rect{
			MinX: world.GroundMinX, MaxX: world.GroundMaxX,
			MinZ: world.GroundMinZ, MaxZ: world.GroundMaxZ,
		},
		GroundHeight: world.GroundHeight,
		Collected:    eng.Stats().Collected,
		Reward:       eng.Stats().Reward,
		Tick:         tick,
	}
	if hole != nil {
		f.Hole = hole.Position
		f.Radius = hole.Radius()
	}

	if m := eng.Magnet(); m.Active() {
		f.MagnetActive = true
		f.MagnetRemaining = m.Remaining()
		f.MagnetRadius = eng.Config().Magnet.Radius
	}
	if g != nil {
		f.Size, f.XP, f.Need = g.Size(), g.XP(), g.Need()
	}
	if goals != nil {
		f.Goals = goals.Goals()
		f.GoalsComplete = goals.Complete()
	}
	if boost != nil && boost.Active() {
		f.BoostActive = true
		f.BoostRemaining = boost.Remaining()
	}

	objs := eng.Registry().Objects()
	f.Objects = make([]ObjectView, 0, len(objs))
	for _, obj := range objs {
		f.Objects = append(f.Objects, ObjectView{
			Category:  obj.Category,
			Position:  obj.Body().Position,
			Permeable: obj.Permeable(),
		})
	}
	return f
}
