package morph

import (
	"sort"

	"github.com/Faultbox/charforge/internal/engine/mesh"
)

// ActiveTarget is one entry of the GPU upload list: a target index and the
// combined weight driving it this frame.
type ActiveTarget struct {
	TargetIndex int
	Weight      float32
}

// Stats summarizes the last resolution for diagnostics.
type Stats struct {
	ActiveChannels int // channels above the noise floor
	ActiveTargets  int // accumulator entries above the noise floor
	Truncated      int // entries dropped by the active shape limit
}

// combinedWeights sums channel.weight * targetWeight per target across all
// channels above the noise floor. Overlapping channels driving the same
// target compose additively.
func (s *Store) combinedWeights() (map[int]float32, int) {
	acc := make(map[int]float32)
	activeChannels := 0

	for i := range s.channels {
		c := &s.channels[i]
		w := c.Weight()
		if w < WeightEpsilon && w > -WeightEpsilon {
			continue
		}
		activeChannels++
		for j, ti := range c.TargetIndices {
			acc[ti] += w * c.TargetWeights[j]
		}
	}
	return acc, activeChannels
}

// Apply runs the CPU deformation path: a copy of base displaced by every
// target whose combined weight is above the noise floor. Normals are
// re-normalized unless the accumulated normal nearly cancels out. Delta
// vertex indices outside the base buffer are skipped.
//
// The base mesh is never modified.
func (s *Store) Apply(base *mesh.Mesh) *mesh.Mesh {
	out := base.Clone()
	acc, _ := s.combinedWeights()

	// Apply in ascending target index order so float accumulation is
	// deterministic across frames.
	indices := make([]int, 0, len(acc))
	for ti := range acc {
		indices = append(indices, ti)
	}
	sort.Ints(indices)

	for _, ti := range indices {
		w := acc[ti]
		if w < WeightEpsilon && w > -WeightEpsilon {
			continue
		}
		t, ok := s.TargetAt(ti)
		if !ok {
			continue
		}
		for _, d := range t.Deltas {
			vi := int(d.VertexIndex)
			if vi >= len(out.Vertices) {
				continue
			}
			v := &out.Vertices[vi]
			v.Position = v.Position.Add(d.Position.Mul(w))
			n := v.Normal.Add(d.Normal.Mul(w))
			// Skip renormalization of a near-cancelled normal to avoid
			// division blow-up.
			if n.Len() >= normalFloor {
				n = n.Normalize()
			}
			v.Normal = n
		}
	}

	out.RecomputeBounds()
	return out
}

// ActiveTargetWeights runs the GPU subset path: all targets whose combined
// weight is above the noise floor, sorted descending by weight magnitude
// and truncated to the active shape limit. Truncation is a deliberate lossy
// policy; on a budget violation the least significant morphs are dropped,
// never an error. Ties sort by ascending target index.
func (s *Store) ActiveTargetWeights() []ActiveTarget {
	list, _ := s.activeTargets()
	return list
}

// ResolveStats returns the active target list statistics without building
// the deformed mesh.
func (s *Store) ResolveStats() Stats {
	acc, activeChannels := s.combinedWeights()
	active := 0
	for _, w := range acc {
		if w >= WeightEpsilon || w <= -WeightEpsilon {
			active++
		}
	}
	truncated := 0
	if active > s.limits.MaxActiveTargets {
		truncated = active - s.limits.MaxActiveTargets
	}
	return Stats{
		ActiveChannels: activeChannels,
		ActiveTargets:  active,
		Truncated:      truncated,
	}
}

func (s *Store) activeTargets() ([]ActiveTarget, int) {
	acc, activeChannels := s.combinedWeights()

	list := make([]ActiveTarget, 0, len(acc))
	for ti, w := range acc {
		if w < WeightEpsilon && w > -WeightEpsilon {
			continue
		}
		list = append(list, ActiveTarget{TargetIndex: ti, Weight: w})
	}

	sort.Slice(list, func(i, j int) bool {
		mi, mj := abs32(list[i].Weight), abs32(list[j].Weight)
		if mi != mj {
			return mi > mj
		}
		return list[i].TargetIndex < list[j].TargetIndex
	})

	if len(list) > s.limits.MaxActiveTargets {
		list = list[:s.limits.MaxActiveTargets]
	}
	return list, activeChannels
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
