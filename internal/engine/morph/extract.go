package morph

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/charforge/internal/engine/mesh"
)

// Reason explains why an extraction or bake produced an empty target. The
// tolerant empty-return contract stands either way; the reason only lets
// authoring tools tell the user why there was nothing to bake.
type Reason int

const (
	// ReasonOK means the operation produced a non-empty target.
	ReasonOK Reason = iota
	// ReasonVertexCountMismatch means the input meshes differ in vertex count.
	ReasonVertexCountMismatch
	// ReasonNoSources means no source targets contributed (empty or
	// mismatched source/weight lists, or all weights below the noise floor).
	ReasonNoSources
	// ReasonBelowThreshold means no vertex moved beyond the threshold.
	ReasonBelowThreshold
)

func (r Reason) String() string {
	switch r {
	case ReasonOK:
		return "ok"
	case ReasonVertexCountMismatch:
		return "vertex count mismatch"
	case ReasonNoSources:
		return "no sources"
	case ReasonBelowThreshold:
		return "below threshold"
	default:
		return "unknown"
	}
}

// TargetFromDifference extracts a sparse target from the displacement
// between base and shaped, keeping only vertices whose position or normal
// moved beyond threshold (pass 0 for the default). Meshes with different
// vertex counts yield an empty target, not an error.
func TargetFromDifference(name, category string, base, shaped *mesh.Mesh, threshold float32) (Target, Reason) {
	t := NewTarget(name, category)

	if len(base.Vertices) != len(shaped.Vertices) {
		return t, ReasonVertexCountMismatch
	}
	if threshold <= 0 {
		threshold = DifferenceThreshold
	}

	for i := range base.Vertices {
		dp := shaped.Vertices[i].Position.Sub(base.Vertices[i].Position)
		dn := shaped.Vertices[i].Normal.Sub(base.Vertices[i].Normal)
		if dp.Len() <= threshold && dn.Len() <= threshold {
			continue
		}
		t.AppendDelta(Delta{
			VertexIndex: uint32(i),
			Position:    dp,
			Normal:      dn,
		})
	}

	if t.IsEmpty() {
		return t, ReasonBelowThreshold
	}
	return t, ReasonOK
}

// CombineTargets bakes parallel lists of source targets and scalar weights
// into one target whose delta at each vertex is the weight-summed
// combination of all contributing deltas. Vertices no source touches stay
// absent, preserving sparsity. Sources weighted below the noise floor are
// skipped entirely, so baking [A,B] with weights [1,0] reproduces A alone.
func CombineTargets(name string, sources []Target, weights []float32) (Target, Reason) {
	t := NewTarget(name, "")

	if len(sources) == 0 || len(sources) != len(weights) {
		return t, ReasonNoSources
	}

	type sum struct {
		position mgl32.Vec3
		normal   mgl32.Vec3
		tangent  mgl32.Vec3
	}
	acc := make(map[uint32]*sum)
	contributed := false

	for i := range sources {
		w := weights[i]
		if w < WeightEpsilon && w > -WeightEpsilon {
			continue
		}
		contributed = true
		for _, d := range sources[i].Deltas {
			s, ok := acc[d.VertexIndex]
			if !ok {
				s = &sum{}
				acc[d.VertexIndex] = s
			}
			s.position = s.position.Add(d.Position.Mul(w))
			s.normal = s.normal.Add(d.Normal.Mul(w))
			s.tangent = s.tangent.Add(d.Tangent.Mul(w))
		}
	}

	if !contributed {
		return t, ReasonNoSources
	}

	// Deterministic delta order regardless of map iteration.
	indices := make([]uint32, 0, len(acc))
	for vi := range acc {
		indices = append(indices, vi)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	for _, vi := range indices {
		s := acc[vi]
		t.AppendDelta(Delta{
			VertexIndex: vi,
			Position:    s.position,
			Normal:      s.normal,
			Tangent:     s.tangent,
		})
	}

	if t.IsEmpty() {
		return t, ReasonBelowThreshold
	}
	return t, ReasonOK
}
