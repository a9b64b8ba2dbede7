// Package growth tracks the hole's size level and the radius derived from it
package growth

import (
	"math"

	"github.com/lixenwraith/sinkhole/absorb"
	"github.com/lixenwraith/sinkhole/config"
	"github.com/lixenwraith/sinkhole/event"
	"github.com/lixenwraith/sinkhole/parameter"
)

// Growth owns size, experience and the temporary radius multiplier
// It is the hole's RadiusSource, LevelSource and RewardSink
type Growth struct {
	cfg  config.GrowthConfig
	emit event.Emitter

	size int
	xp   int
	temp float64
}

// New creates a growth tracker at the configured start size; emit may be nil
func New(cfg config.GrowthConfig, emit event.Emitter) *Growth {
	g := &Growth{cfg: cfg, emit: emit}
	g.Reset()
	return g
}

// Reset returns to the start size with no experience and no multiplier
func (g *Growth) Reset() {
	g.size = max(1, g.cfg.StartSize)
	g.xp = 0
	g.temp = 1
}

// Size returns the current size level
func (g *Growth) Size() int { return g.size }

// Level implements absorb.LevelSource
func (g *Growth) Level() int { return g.size }

// XP returns experience accumulated toward the next size
func (g *Growth) XP() int { return g.xp }

// Need returns the experience required to leave the current size
// Sizes past the end of the table reuse its last entry
func (g *Growth) Need() int {
	table := g.cfg.XPToNext
	if len(table) == 0 {
		return math.MaxInt
	}
	idx := min(max(g.size-1, 0), len(table)-1)
	return max(1, table[idx])
}

// ScaleFactor is the visual scale of the mouth including the temporary multiplier
func (g *Growth) ScaleFactor() float64 {
	return (g.cfg.StartScale + float64(g.size-1)*g.cfg.ScalePerSize) * g.temp
}

// HoleRadius implements absorb.RadiusSource
func (g *Growth) HoleRadius() float64 {
	return g.cfg.BaseRadius * g.ScaleFactor()
}

// AddXP adds experience and levels up as many times as it covers
// Returns the number of sizes gained
func (g *Growth) AddXP(amount int) int {
	if amount <= 0 {
		return 0
	}
	g.xp += amount

	gained := 0
	for g.xp >= g.Need() {
		g.xp -= g.Need()
		g.size++
		gained++
		if g.emit != nil {
			g.emit.Emit(event.EventHoleLevelUp, &event.LevelUpPayload{
				Level:  g.size,
				Radius: g.HoleRadius(),
			})
		}
	}
	return gained
}

// Collected implements absorb.RewardSink
func (g *Growth) Collected(c absorb.Collection) {
	g.AddXP(c.Reward)
}

// TempMultiplier returns the active temporary radius multiplier
func (g *Growth) TempMultiplier() float64 { return g.temp }

// SetTempMultiplier scales the radius until cleared
func (g *Growth) SetTempMultiplier(m float64) {
	g.temp = min(max(m, parameter.TempMultiplierMin), parameter.TempMultiplierMax)
}

// ClearTempMultiplier restores the unscaled radius
func (g *Growth) ClearTempMultiplier() {
	g.temp = 1
}
