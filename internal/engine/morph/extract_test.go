package morph

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTargetFromDifference(t *testing.T) {
	base := flatMesh(8)
	shaped := base.Clone()
	shaped.Vertices[3].Position = shaped.Vertices[3].Position.Add(mgl32.Vec3{0, 0.1, 0})
	shaped.Vertices[5].Position = shaped.Vertices[5].Position.Add(mgl32.Vec3{0, 1e-6, 0}) // below threshold

	tgt, reason := TargetFromDifference("lift", "face", base, shaped, 0)
	if reason != ReasonOK {
		t.Fatalf("expected ReasonOK, got %v", reason)
	}
	if len(tgt.Deltas) != 1 {
		t.Fatalf("expected 1 delta, got %d", len(tgt.Deltas))
	}
	if tgt.Deltas[0].VertexIndex != 3 {
		t.Errorf("expected delta at vertex 3, got %d", tgt.Deltas[0].VertexIndex)
	}
	if diff := tgt.Deltas[0].Position.Y() - 0.1; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("expected position delta y 0.1, got %v", tgt.Deltas[0].Position.Y())
	}
}

func TestTargetFromDifferenceNormalOnly(t *testing.T) {
	base := flatMesh(4)
	shaped := base.Clone()
	// Position untouched, normal rotated
	shaped.Vertices[2].Normal = mgl32.Vec3{1, 0, 0}

	tgt, reason := TargetFromDifference("twist", "", base, shaped, 0)
	if reason != ReasonOK {
		t.Fatalf("expected ReasonOK, got %v", reason)
	}
	if len(tgt.Deltas) != 1 || tgt.Deltas[0].VertexIndex != 2 {
		t.Errorf("normal-only displacement should still produce a delta")
	}
}

func TestTargetFromDifferenceMismatch(t *testing.T) {
	base := flatMesh(8)
	shaped := flatMesh(9)

	tgt, reason := TargetFromDifference("bad", "", base, shaped, 0)
	if reason != ReasonVertexCountMismatch {
		t.Errorf("expected ReasonVertexCountMismatch, got %v", reason)
	}
	if !tgt.IsEmpty() {
		t.Error("mismatched meshes must yield an empty target")
	}
}

func TestTargetFromDifferenceIdentical(t *testing.T) {
	base := flatMesh(8)

	tgt, reason := TargetFromDifference("noop", "", base, base.Clone(), 0)
	if reason != ReasonBelowThreshold {
		t.Errorf("expected ReasonBelowThreshold, got %v", reason)
	}
	if !tgt.IsEmpty() {
		t.Error("identical meshes must yield an empty target")
	}
}

func TestCombineTargetsRoundTripBake(t *testing.T) {
	a := NewTarget("a", "")
	a.AppendDelta(Delta{VertexIndex: 2, Position: mgl32.Vec3{0.1, 0.2, 0.3}, Normal: mgl32.Vec3{0, 0.1, 0}})
	a.AppendDelta(Delta{VertexIndex: 7, Position: mgl32.Vec3{-0.4, 0, 0}})

	b := NewTarget("b", "")
	b.AppendDelta(Delta{VertexIndex: 1, Position: mgl32.Vec3{9, 9, 9}})
	b.AppendDelta(Delta{VertexIndex: 2, Position: mgl32.Vec3{5, 5, 5}})

	baked, reason := CombineTargets("bake", []Target{a, b}, []float32{1.0, 0.0})
	if reason != ReasonOK {
		t.Fatalf("expected ReasonOK, got %v", reason)
	}

	// Zero-weight source must leave no trace: result is A, vertex for vertex
	if len(baked.Deltas) != len(a.Deltas) {
		t.Fatalf("expected %d deltas, got %d", len(a.Deltas), len(baked.Deltas))
	}
	want := map[uint32]Delta{}
	for _, d := range a.Deltas {
		want[d.VertexIndex] = d
	}
	for _, d := range baked.Deltas {
		w, ok := want[d.VertexIndex]
		if !ok {
			t.Fatalf("unexpected delta at vertex %d", d.VertexIndex)
		}
		if d.Position != w.Position || d.Normal != w.Normal {
			t.Errorf("vertex %d delta differs from source", d.VertexIndex)
		}
	}
}

func TestCombineTargetsWeightedSum(t *testing.T) {
	a := NewTarget("a", "")
	a.AppendDelta(Delta{VertexIndex: 4, Position: mgl32.Vec3{1, 0, 0}})

	b := NewTarget("b", "")
	b.AppendDelta(Delta{VertexIndex: 4, Position: mgl32.Vec3{0, 1, 0}})
	b.AppendDelta(Delta{VertexIndex: 5, Position: mgl32.Vec3{0, 0, 1}})

	baked, reason := CombineTargets("mix", []Target{a, b}, []float32{0.5, 2.0})
	if reason != ReasonOK {
		t.Fatalf("expected ReasonOK, got %v", reason)
	}
	if len(baked.Deltas) != 2 {
		t.Fatalf("expected 2 deltas, got %d", len(baked.Deltas))
	}

	// Deltas are ordered by vertex index
	if baked.Deltas[0].VertexIndex != 4 || baked.Deltas[1].VertexIndex != 5 {
		t.Fatalf("deltas not ordered by vertex index: %v", baked.Deltas)
	}
	if baked.Deltas[0].Position != (mgl32.Vec3{0.5, 2, 0}) {
		t.Errorf("vertex 4: expected (0.5,2,0), got %v", baked.Deltas[0].Position)
	}
	if baked.Deltas[1].Position != (mgl32.Vec3{0, 0, 2}) {
		t.Errorf("vertex 5: expected (0,0,2), got %v", baked.Deltas[1].Position)
	}
}

func TestCombineTargetsNoSources(t *testing.T) {
	if _, reason := CombineTargets("x", nil, nil); reason != ReasonNoSources {
		t.Errorf("empty inputs: expected ReasonNoSources, got %v", reason)
	}

	a := NewTarget("a", "")
	if _, reason := CombineTargets("x", []Target{a}, []float32{1, 2}); reason != ReasonNoSources {
		t.Errorf("length mismatch: expected ReasonNoSources, got %v", reason)
	}
	if _, reason := CombineTargets("x", []Target{a}, []float32{0}); reason != ReasonNoSources {
		t.Errorf("all-zero weights: expected ReasonNoSources, got %v", reason)
	}
}
