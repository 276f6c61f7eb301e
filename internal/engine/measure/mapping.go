package measure

import "github.com/Faultbox/charforge/internal/engine/morph"

// Provider supplies current measurement values, owned by an external
// body/face parameter object.
type Provider interface {
	Measurement(Source) float32
}

// Mapping converts one measurement into one channel weight. Channels are
// referenced by name, not index, since channels may be added after the
// mapping is registered.
type Mapping struct {
	Channel string
	Source  Source
	Curve   Curve
}

// Registry holds the mappings of one character.
type Registry struct {
	mappings []Mapping
}

// NewRegistry creates an empty mapping registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a mapping.
func (r *Registry) Register(m Mapping) {
	r.mappings = append(r.mappings, m)
}

// Len returns the number of registered mappings.
func (r *Registry) Len() int {
	return len(r.mappings)
}

// Mappings returns the registered mappings in registration order.
func (r *Registry) Mappings() []Mapping {
	return r.mappings
}

// UpdateWeights evaluates every mapping against the provider's current
// measurements and pushes the results into the store's channels. Mappings
// naming channels the store lacks are skipped. Runs only when called —
// callers invoke it after each parameter change, there is no polling.
// Returns the number of weights applied.
func (r *Registry) UpdateWeights(p Provider, s *morph.Store) int {
	applied := 0
	for i := range r.mappings {
		m := &r.mappings[i]
		w := m.Curve.Evaluate(p.Measurement(m.Source))
		if s.SetWeightByName(m.Channel, w) {
			applied++
		}
	}
	return applied
}
