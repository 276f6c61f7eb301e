package measure

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/charforge/internal/engine/morph"
)

// stubProvider returns fixed measurement values.
type stubProvider map[Source]float32

func (p stubProvider) Measurement(s Source) float32 {
	return p[s]
}

func testStore(t *testing.T, channels ...string) *morph.Store {
	t.Helper()
	s := morph.NewStore(morph.Limits{})
	for i, name := range channels {
		tgt := morph.NewTarget(name, "")
		tgt.AppendDelta(morph.Delta{VertexIndex: uint32(i), Position: mgl32.Vec3{0, 1, 0}})
		s.AddTarget(tgt)
	}
	s.CreateChannelsFromTargets()
	return s
}

func TestUpdateWeights(t *testing.T) {
	store := testStore(t, "tall", "slim")

	// tall wants a symmetric channel for the centered curve
	c, _ := store.Channel("tall")
	c.MinWeight = -1

	r := NewRegistry()
	r.Register(Mapping{Channel: "tall", Source: SourceHeight, Curve: CenteredCurve()})
	r.Register(Mapping{Channel: "slim", Source: SourceWeight, Curve: InverseCurve()})

	p := stubProvider{SourceHeight: 0.75, SourceWeight: 0.2}
	applied := r.UpdateWeights(p, store)
	if applied != 2 {
		t.Errorf("expected 2 weights applied, got %d", applied)
	}

	tall, _ := store.Channel("tall")
	if got := tall.Weight(); !almostEqual(got, 0.5) {
		t.Errorf("tall weight = %v, want 0.5", got)
	}
	slim, _ := store.Channel("slim")
	if got := slim.Weight(); !almostEqual(got, 0.8) {
		t.Errorf("slim weight = %v, want 0.8", got)
	}
}

func TestUpdateWeightsUnknownChannel(t *testing.T) {
	store := testStore(t, "tall")

	r := NewRegistry()
	r.Register(Mapping{Channel: "tall", Source: SourceHeight, Curve: LinearCurve()})
	r.Register(Mapping{Channel: "not_on_this_mesh", Source: SourceAge, Curve: LinearCurve()})

	applied := r.UpdateWeights(stubProvider{SourceHeight: 1}, store)
	if applied != 1 {
		t.Errorf("unknown channel must be skipped: expected 1 applied, got %d", applied)
	}
}

func TestGenderMapping(t *testing.T) {
	// A single linear mapping interpolates between base shapes
	store := testStore(t, "feminine")

	r := NewRegistry()
	r.Register(Mapping{Channel: "feminine", Source: SourceGender, Curve: LinearCurve()})

	r.UpdateWeights(stubProvider{SourceGender: 0.25}, store)
	c, _ := store.Channel("feminine")
	if got := c.Weight(); !almostEqual(got, 0.25) {
		t.Errorf("feminine weight = %v, want 0.25", got)
	}
}

func TestUpdateWeightsMarksDirty(t *testing.T) {
	store := testStore(t, "tall")
	store.ClearDirty()

	r := NewRegistry()
	r.Register(Mapping{Channel: "tall", Source: SourceHeight, Curve: LinearCurve()})
	r.UpdateWeights(stubProvider{SourceHeight: 0.9}, store)

	if !store.IsDirty() {
		t.Error("pushing mapped weights should dirty the store")
	}
}
