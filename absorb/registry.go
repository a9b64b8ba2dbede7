package absorb

import (
	"github.com/lixenwraith/sinkhole/core"
	"github.com/lixenwraith/sinkhole/engine"
)

// Registry maps stable ids to live objects
type Registry struct {
	objects *engine.Store[*Object]
}

func NewRegistry() *Registry {
	return &Registry{objects: engine.NewStore[*Object]()}
}

// Add registers an object under its id, replacing any previous entry
func (r *Registry) Add(obj *Object) {
	r.objects.Set(obj.ID, obj)
}

// Get returns a live object
func (r *Registry) Get(id core.Entity) (*Object, bool) {
	return r.objects.Get(id)
}

// Has reports whether the object is alive
func (r *Registry) Has(id core.Entity) bool {
	return r.objects.Has(id)
}

// Remove forgets an object; unknown ids are ignored
func (r *Registry) Remove(id core.Entity) {
	r.objects.Remove(id)
}

// Len returns the number of live objects
func (r *Registry) Len() int {
	return r.objects.Count()
}

// Objects returns a snapshot of live objects
func (r *Registry) Objects() []*Object {
	ids := r.objects.Entities()
	out := make([]*Object, 0, len(ids))
	for _, id := range ids {
		if obj, ok := r.objects.Get(id); ok {
			out = append(out, obj)
		}
	}
	return out
}
