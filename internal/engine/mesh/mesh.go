// Package mesh provides vertex buffer types and procedural base meshes
// for the deformation engine.
package mesh

import "github.com/go-gl/mathgl/mgl32"

// Vertex represents a mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Mesh holds mesh data ready for deformation and GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Clone returns a deep copy of the mesh. The deformation resolver works on a
// clone so the base buffer stays untouched.
func (m *Mesh) Clone() *Mesh {
	out := &Mesh{
		Vertices: make([]Vertex, len(m.Vertices)),
		Indices:  make([]uint32, len(m.Indices)),
		Bounds:   m.Bounds,
	}
	copy(out.Vertices, m.Vertices)
	copy(out.Indices, m.Indices)
	return out
}

// RecomputeBounds recalculates the bounding box from vertex positions.
func (m *Mesh) RecomputeBounds() {
	if len(m.Vertices) == 0 {
		m.Bounds = Bounds{}
		return
	}

	bounds := Bounds{
		Min: mgl32.Vec3{1e10, 1e10, 1e10},
		Max: mgl32.Vec3{-1e10, -1e10, -1e10},
	}
	for i := range m.Vertices {
		updateBounds(&bounds, m.Vertices[i].Position)
	}
	m.Bounds = bounds
}

// updateBounds expands the bounding box to include pos.
func updateBounds(bounds *Bounds, pos mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		if pos[i] < bounds.Min[i] {
			bounds.Min[i] = pos[i]
		}
		if pos[i] > bounds.Max[i] {
			bounds.Max[i] = pos[i]
		}
	}
}
