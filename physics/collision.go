package physics

// Collision categories
// A body collides with a surface when each side's category is present in the other's mask
const (
	CategoryGround uint32 = 1 << iota
	CategoryItem
	CategoryItemPassThrough
	CategoryHole
)

// MaskAll collides with every category
const MaskAll = ^uint32(0)

// Layer pairs a category bitmask with the mask of categories it collides with
type Layer struct {
	Category uint32
	Mask     uint32
}

// Normalized applies defaults: zero category is an item, zero mask collides with all
func (l Layer) Normalized() Layer {
	if l.Category == 0 {
		l.Category = CategoryItem
	}
	if l.Mask == 0 {
		l.Mask = MaskAll
	}
	return l
}

// CollisionFilter decides whether a body layer collides with a surface layer
type CollisionFilter func(body, surface Layer) bool

// DefaultFilter is the symmetric category/mask test
func DefaultFilter(body, surface Layer) bool {
	body = body.Normalized()
	surface = surface.Normalized()
	return body.Category&surface.Mask != 0 && surface.Category&body.Mask != 0
}

// GroundLayer is a solid surface that items collide with and pass-through items ignore
var GroundLayer = Layer{Category: CategoryGround, Mask: CategoryItem}
