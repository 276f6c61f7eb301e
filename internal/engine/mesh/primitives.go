package mesh

import "github.com/go-gl/mathgl/mgl32"

// NewPlane builds a flat grid mesh in the XZ plane, centered at the origin.
// segments is the number of quads per side; size is the edge length.
// Normals point up (+Y).
func NewPlane(segments int, size float32) *Mesh {
	if segments < 1 {
		segments = 1
	}

	verts := segments + 1
	m := &Mesh{
		Vertices: make([]Vertex, 0, verts*verts),
		Indices:  make([]uint32, 0, segments*segments*6),
	}

	step := size / float32(segments)
	half := size / 2

	for z := 0; z < verts; z++ {
		for x := 0; x < verts; x++ {
			m.Vertices = append(m.Vertices, Vertex{
				Position: mgl32.Vec3{float32(x)*step - half, 0, float32(z)*step - half},
				Normal:   mgl32.Vec3{0, 1, 0},
				UV:       mgl32.Vec2{float32(x) / float32(segments), float32(z) / float32(segments)},
			})
		}
	}

	for z := 0; z < segments; z++ {
		for x := 0; x < segments; x++ {
			i := uint32(z*verts + x)
			m.Indices = append(m.Indices,
				i, i+uint32(verts), i+1,
				i+1, i+uint32(verts), i+uint32(verts)+1)
		}
	}

	m.RecomputeBounds()
	return m
}

// NewBox builds an axis-aligned box mesh centered at the origin with
// per-face normals (24 vertices, 36 indices).
func NewBox(size mgl32.Vec3) *Mesh {
	hx, hy, hz := size.X()/2, size.Y()/2, size.Z()/2

	faces := []struct {
		normal  mgl32.Vec3
		corners [4]mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz}}},
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{hx, -hy, -hz}, {-hx, -hy, -hz}, {-hx, hy, -hz}, {hx, hy, -hz}}},
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{hx, -hy, hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {hx, hy, hz}}},
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-hx, -hy, -hz}, {-hx, -hy, hz}, {-hx, hy, hz}, {-hx, hy, -hz}}},
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-hx, hy, hz}, {hx, hy, hz}, {hx, hy, -hz}, {-hx, hy, -hz}}},
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, -hy, hz}, {-hx, -hy, hz}}},
	}

	uvs := [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	m := &Mesh{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}

	for _, f := range faces {
		base := uint32(len(m.Vertices))
		for i, c := range f.corners {
			m.Vertices = append(m.Vertices, Vertex{Position: c, Normal: f.normal, UV: uvs[i]})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}

	m.RecomputeBounds()
	return m
}
