// Package character ties one morph store, one mapping registry, and one
// body parameter set together into a configurable character.
package character

import (
	"github.com/Faultbox/charforge/internal/engine/measure"
	"github.com/Faultbox/charforge/internal/engine/morph"
	"github.com/Faultbox/charforge/internal/engine/params"
)

// Character owns the deformation state of one mesh: the store with its
// targets, channels and presets, the mappings that translate measurements
// into channel weights, and the measurements themselves.
type Character struct {
	Store    *morph.Store
	Mappings *measure.Registry
	Body     *params.Body

	lastRevision uint64
}

// New creates a character with an empty store under the given limits.
func New(limits morph.Limits) *Character {
	return &Character{
		Store:    morph.NewStore(limits),
		Mappings: measure.NewRegistry(),
		Body:     params.NewBody(),
	}
}

// SetMeasurement updates one measurement and re-runs the mapping layer.
func (c *Character) SetMeasurement(s measure.Source, v float32) {
	c.Body.Set(s, v)
	c.Refresh()
}

// Refresh pushes the current measurements through every registered mapping
// into the store's channels. Returns the number of weights applied.
func (c *Character) Refresh() int {
	c.lastRevision = c.Body.Revision()
	return c.Mappings.UpdateWeights(c.Body, c.Store)
}

// NeedsRefresh reports whether measurements changed since the last Refresh.
func (c *Character) NeedsRefresh() bool {
	return c.Body.Revision() != c.lastRevision
}
