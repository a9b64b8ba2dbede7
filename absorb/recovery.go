package absorb

import (
	"github.com/lixenwraith/sinkhole/config"
	"github.com/lixenwraith/sinkhole/vmath"
)

// Recovery puts impermeable objects back on top of the ground
type Recovery struct {
	cfg   config.RecoveryConfig
	space Space
	mask  uint32
	log   *edgeLog
}

func newRecovery(cfg config.RecoveryConfig, space Space, mask uint32, log *edgeLog) *Recovery {
	return &Recovery{cfg: cfg, space: space, mask: mask, log: log}
}

// Recover lifts obj so its bottom sits at ground + offset, reporting whether it moved
// Without ground under the probe nothing happens
func (r *Recovery) Recover(obj *Object) bool {
	if r.mask == 0 {
		r.log.Raise("recovery", "ground-mask", "ground mask is empty, recovery disabled")
		return false
	}
	b := obj.Body()
	if b == nil {
		return false
	}

	origin := b.Position.Add(vmath.Up.Mul(r.cfg.RayUp))
	hit, ok := r.space.Raycast(origin, vmath.Down, r.cfg.RayDown, r.mask)
	if !ok {
		return false
	}

	floor := hit.Point[1] + r.cfg.Offset
	bottom := b.Bottom()
	if bottom >= floor {
		return false
	}

	b.Position[1] += floor - bottom
	if b.Velocity[1] < 0 {
		b.Velocity[1] = 0
	}
	b.AngularVelocity = b.AngularVelocity.Mul(r.cfg.AngularCatch)
	return true
}
