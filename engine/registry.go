package engine

// Registry owns entity lifetime, partitioned into draw layers
// Entities may be added at any time; removal happens only in Purge at tick start,
// so the update pass never observes a shrinking slice
type Registry struct {
	layers [layerCount][]Entity
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends e to layer; out-of-range layers fall back to Midground
func (r *Registry) Add(layer Layer, e Entity) {
	if layer < 0 || layer >= layerCount {
		layer = Midground
	}
	r.layers[layer] = append(r.layers[layer], e)
}

// Purge physically removes dead entities and returns how many were dropped
func (r *Registry) Purge() int {
	removed := 0
	for i := range r.layers {
		live := r.layers[i][:0]
		for _, e := range r.layers[i] {
			if e.Dead() {
				removed++
				continue
			}
			live = append(live, e)
		}
		// Release references held past the new length
		for j := len(live); j < len(r.layers[i]); j++ {
			r.layers[i][j] = nil
		}
		r.layers[i] = live
	}
	return removed
}

// Each visits entities layer by layer in registration order
// Length is snapshotted per layer, so entities added during the walk wait for the next pass
func (r *Registry) Each(fn func(layer Layer, e Entity)) {
	for i := range r.layers {
		n := len(r.layers[i])
		for j := 0; j < n; j++ {
			fn(Layer(i), r.layers[i][j])
		}
	}
}

// KillAll marks every entity dead
func (r *Registry) KillAll() {
	for i := range r.layers {
		for _, e := range r.layers[i] {
			e.Kill()
		}
	}
}

// Live counts entities not marked dead
func (r *Registry) Live() int {
	n := 0
	for i := range r.layers {
		for _, e := range r.layers[i] {
			if !e.Dead() {
				n++
			}
		}
	}
	return n
}

// Len counts entities physically held, dead or alive
func (r *Registry) Len() int {
	n := 0
	for i := range r.layers {
		n += len(r.layers[i])
	}
	return n
}
