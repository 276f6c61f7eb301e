// Package morph implements the blend shape deformation engine: sparse
// per-vertex morph targets, weighted channels driving them, named presets,
// and the resolver that combines everything into a deformed mesh or a
// GPU-ready active shape list.
package morph

import "github.com/go-gl/mathgl/mgl32"

const (
	// DefaultMaxTargets bounds how many targets a store accepts. Keeps the
	// worst-case channel combination cost and GPU constant-buffer size bounded.
	DefaultMaxTargets = 256

	// DefaultMaxActiveTargets bounds the GPU active shape list.
	DefaultMaxActiveTargets = 64

	// WeightEpsilon is the noise floor below which a weight is treated as zero.
	WeightEpsilon = 0.001

	// DifferenceThreshold is the minimum displacement for a vertex to be
	// included when extracting a target from a mesh difference.
	DifferenceThreshold = 1e-4

	// normalFloor guards renormalization of near-cancelled normals.
	normalFloor = 1e-4
)

// Delta is one vertex's displacement within a target. Immutable once stored.
type Delta struct {
	VertexIndex uint32
	Position    mgl32.Vec3
	Normal      mgl32.Vec3
	Tangent     mgl32.Vec3
}

// Target is a named, sparse set of per-vertex displacement deltas (a single
// morph / shape key). Only vertices that actually move are stored.
type Target struct {
	Name     string
	Category string
	Deltas   []Delta

	// BoundsMin/BoundsMax track the running min/max of every position delta
	// ever appended. They bound the displacement vectors, not the deformed
	// mesh, and they do not shrink when deltas are compressed away.
	BoundsMin mgl32.Vec3
	BoundsMax mgl32.Vec3

	// MaxOffset is the largest position delta magnitude ever appended.
	MaxOffset float32
}

// NewTarget creates an empty target.
func NewTarget(name, category string) Target {
	return Target{Name: name, Category: category}
}

// AppendDelta adds a delta and updates the bounds bookkeeping.
func (t *Target) AppendDelta(d Delta) {
	if len(t.Deltas) == 0 {
		t.BoundsMin = d.Position
		t.BoundsMax = d.Position
	} else {
		for i := 0; i < 3; i++ {
			if d.Position[i] < t.BoundsMin[i] {
				t.BoundsMin[i] = d.Position[i]
			}
			if d.Position[i] > t.BoundsMax[i] {
				t.BoundsMax[i] = d.Position[i]
			}
		}
	}

	if l := d.Position.Len(); l > t.MaxOffset {
		t.MaxOffset = l
	}

	t.Deltas = append(t.Deltas, d)
}

// Compress drops deltas whose position delta magnitude is below threshold
// and returns the number dropped. Used after procedural generation to shrink
// storage. Bounds bookkeeping is intentionally left as appended.
func (t *Target) Compress(threshold float32) int {
	kept := t.Deltas[:0]
	for _, d := range t.Deltas {
		if d.Position.Len() >= threshold {
			kept = append(kept, d)
		}
	}
	dropped := len(t.Deltas) - len(kept)
	t.Deltas = kept
	return dropped
}

// IsEmpty reports whether the target has no deltas.
func (t *Target) IsEmpty() bool {
	return len(t.Deltas) == 0
}
