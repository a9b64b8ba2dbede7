package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/sinkhole/core"
)

// RaycastHit describes the nearest surface crossed by a ray
type RaycastHit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
}

// Raycast casts a ray against surfaces whose category intersects mask
// dir need not be normalized; maxDist is measured along the normalized direction
func (w *World) Raycast(origin, dir mgl64.Vec3, maxDist float64, mask uint32) (RaycastHit, bool) {
	if mask == 0 || maxDist <= 0 {
		return RaycastHit{}, false
	}
	if dir.LenSqr() == 0 {
		return RaycastHit{}, false
	}
	dir = dir.Normalize()
	if dir[1] == 0 {
		// Surfaces are horizontal; a level ray never crosses one
		return RaycastHit{}, false
	}

	var best RaycastHit
	found := false
	for i := range w.surfaces {
		s := &w.surfaces[i]
		if s.Layer.Category&mask == 0 {
			continue
		}
		t := (s.Height - origin[1]) / dir[1]
		if t < 0 || t > maxDist {
			continue
		}
		p := origin.Add(dir.Mul(t))
		if !s.Contains(p[0], p[2]) {
			continue
		}
		if !found || t < best.Distance {
			normal := mgl64.Vec3{0, 1, 0}
			if dir[1] > 0 {
				normal = mgl64.Vec3{0, -1, 0}
			}
			best = RaycastHit{Point: p, Normal: normal, Distance: t}
			found = true
		}
	}
	return best, found
}

// OverlapCylinder appends ids of bodies whose bounds intersect a vertical cylinder
// The cylinder axis passes through center's ground-plane point and spans [minY, maxY]
// limit caps the number of appended ids; zero means unlimited
func (w *World) OverlapCylinder(center mgl64.Vec3, radius, minY, maxY float64, limit int, buf []core.Entity) []core.Entity {
	added := 0
	for _, id := range w.order {
		if limit > 0 && added >= limit {
			break
		}
		b := w.bodies[id]
		lo, hi := b.Bounds()
		if hi[1] < minY || lo[1] > maxY {
			continue
		}
		dx := axisGap(center[0], lo[0], hi[0])
		dz := axisGap(center[2], lo[2], hi[2])
		if dx*dx+dz*dz > radius*radius {
			continue
		}
		buf = append(buf, id)
		added++
	}
	return buf
}

// OverlapSphere appends ids of bodies whose bounds intersect a sphere
// limit caps the number of appended ids; zero means unlimited
func (w *World) OverlapSphere(center mgl64.Vec3, radius float64, limit int, buf []core.Entity) []core.Entity {
	added := 0
	for _, id := range w.order {
		if limit > 0 && added >= limit {
			break
		}
		b := w.bodies[id]
		lo, hi := b.Bounds()
		dx := axisGap(center[0], lo[0], hi[0])
		dy := axisGap(center[1], lo[1], hi[1])
		dz := axisGap(center[2], lo[2], hi[2])
		if dx*dx+dy*dy+dz*dz > radius*radius {
			continue
		}
		buf = append(buf, id)
		added++
	}
	return buf
}

// axisGap is the distance from v to the interval [lo, hi] along one axis
func axisGap(v, lo, hi float64) float64 {
	return math.Max(0, math.Max(lo-v, v-hi))
}
