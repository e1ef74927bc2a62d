package wmediumd

//
// Station registry
//

// Registry is the set of Stations, addressable by MAC. Stations are
// created at initialization and, for this specification, live for the
// process lifetime: Registry never removes a Station as a side effect
// of frame processing.
type Registry struct {
	stations map[MacAddr]*Station
	// order preserves insertion order so delivery iteration (and thus
	// test expectations) is deterministic.
	order []MacAddr
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{stations: make(map[MacAddr]*Station)}
}

// Add registers a new Station for addr. If addr is already registered,
// the existing Station is returned unchanged.
func (r *Registry) Add(addr MacAddr) *Station {
	if st, ok := r.stations[addr]; ok {
		return st
	}
	st := NewStation(addr)
	r.stations[addr] = st
	r.order = append(r.order, addr)
	return st
}

// Lookup returns the Station registered for addr, or nil if none.
func (r *Registry) Lookup(addr MacAddr) *Station {
	return r.stations[addr]
}

// Stations returns every registered Station in registration order.
func (r *Registry) Stations() []*Station {
	out := make([]*Station, 0, len(r.order))
	for _, addr := range r.order {
		out = append(out, r.stations[addr])
	}
	return out
}

// Len returns the number of registered stations.
func (r *Registry) Len() int {
	return len(r.order)
}
