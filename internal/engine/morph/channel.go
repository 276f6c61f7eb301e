package morph

import "math"

// Channel is a user-facing weighted control driving one or more targets with
// per-target multipliers. TargetIndices and TargetWeights are parallel arrays
// of the same length; a channel with no targets is legal but inert.
type Channel struct {
	Name          string
	MinWeight     float32
	MaxWeight     float32
	DefaultWeight float32
	TargetIndices []int
	TargetWeights []float32

	// weight is unexported so the clamp in SetWeight cannot be bypassed.
	weight float32
}

// NewChannel creates a channel with the standard [0,1] weight range.
func NewChannel(name string) Channel {
	return Channel{Name: name, MinWeight: 0, MaxWeight: 1}
}

// NewSymmetricChannel creates a channel with a [-1,1] weight range, used for
// shape sliders that morph both ways around a neutral midpoint.
func NewSymmetricChannel(name string) Channel {
	return Channel{Name: name, MinWeight: -1, MaxWeight: 1}
}

// AddTarget appends a target reference with the given multiplier.
func (c *Channel) AddTarget(targetIndex int, multiplier float32) {
	c.TargetIndices = append(c.TargetIndices, targetIndex)
	c.TargetWeights = append(c.TargetWeights, multiplier)
}

// Weight returns the current weight.
func (c *Channel) Weight() float32 {
	return c.weight
}

// setWeight clamps w into [MinWeight, MaxWeight] and stores it. NaN resets
// the channel to its default weight; infinities clamp to the nearest bound.
func (c *Channel) setWeight(w float32) {
	if math.IsNaN(float64(w)) {
		w = c.DefaultWeight
	}
	if w < c.MinWeight {
		w = c.MinWeight
	}
	if w > c.MaxWeight {
		w = c.MaxWeight
	}
	c.weight = w
}
