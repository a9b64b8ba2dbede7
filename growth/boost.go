package growth

import (
	"github.com/lixenwraith/sinkhole/config"
	"github.com/lixenwraith/sinkhole/event"
	"github.com/lixenwraith/sinkhole/parameter"
)

// Boost temporarily enlarges the hole by a fixed multiplier
// The countdown is a plain accumulator advanced by Update
type Boost struct {
	cfg    config.GrowthConfig
	growth *Growth
	emit   event.Emitter

	active    bool
	remaining float64
}

// NewBoost creates an idle boost driving g
func NewBoost(cfg config.GrowthConfig, g *Growth, emit event.Emitter) *Boost {
	return &Boost{cfg: cfg, growth: g, emit: emit}
}

// Active reports whether the boost is running
func (b *Boost) Active() bool { return b.active }

// Remaining returns seconds left, zero when idle
func (b *Boost) Remaining() float64 { return b.remaining }

// Priority implements engine.System
func (b *Boost) Priority() int { return parameter.PriorityBoost }

// Activate starts the boost; returns false when already running or no growth is attached
func (b *Boost) Activate() bool {
	if b.active || b.growth == nil {
		return false
	}
	b.active = true
	b.remaining = b.cfg.BoostDuration
	b.growth.SetTempMultiplier(b.cfg.BoostMultiplier)
	b.publish()
	return true
}

// Stop ends the boost early and clears the multiplier
func (b *Boost) Stop() {
	if !b.active {
		return
	}
	b.finish()
}

// Update advances the countdown by dt seconds
func (b *Boost) Update(dt float64) {
	if !b.active {
		return
	}
	b.remaining -= dt
	if b.remaining <= parameter.BoostExpiryEpsilon {
		b.finish()
	}
}

func (b *Boost) finish() {
	b.active = false
	b.remaining = 0
	if b.growth != nil {
		b.growth.ClearTempMultiplier()
	}
	b.publish()
}

func (b *Boost) publish() {
	if b.emit == nil {
		return
	}
	b.emit.Emit(event.EventGrowBoost, &event.GrowBoostPayload{
		Active:     b.active,
		Multiplier: b.growth.TempMultiplier(),
		Remaining:  b.remaining,
	})
}
