// Package mesh holds the in-memory triangle mesh and the codecs that convert
// it to and from binary formats.
package mesh

import (
	"errors"
	"fmt"
)

// ErrInvalid reports a mesh that fails Validate.
var ErrInvalid = errors.New("invalid mesh")

// Vec3 is a position in model space.
type Vec3 = [3]float32

// Face indexes three entries of Mesh.Vertices.
type Face = [3]uint32

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Vertices []Vec3
	Faces    []Face
}

// VertexCount returns the number of distinct vertices.
func (m *Mesh) VertexCount() int {
	if m == nil {
		return 0
	}
	return len(m.Vertices)
}

// FaceCount returns the number of triangles.
func (m *Mesh) FaceCount() int {
	if m == nil {
		return 0
	}
	return len(m.Faces)
}

// Validate checks the mesh is usable by every encoder.
func (m *Mesh) Validate() error {
	if m == nil {
		return fmt.Errorf("%w: nil mesh", ErrInvalid)
	}
	if len(m.Faces) == 0 {
		return fmt.Errorf("%w: no faces", ErrInvalid)
	}
	n := uint32(len(m.Vertices))
	for i, f := range m.Faces {
		if f[0] >= n || f[1] >= n || f[2] >= n {
			return fmt.Errorf("%w: face %d references vertex out of range", ErrInvalid, i)
		}
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			return fmt.Errorf("%w: face %d is degenerate", ErrInvalid, i)
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box.
func (m *Mesh) Bounds() (lo, hi Vec3) {
	if len(m.Vertices) == 0 {
		return lo, hi
	}
	lo, hi = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for k := 0; k < 3; k++ {
			lo[k] = min(lo[k], v[k])
			hi[k] = max(hi[k], v[k])
		}
	}
	return lo, hi
}

// welder merges triangle soup corners that share an exact position.
type welder struct {
	index map[Vec3]uint32
	mesh  *Mesh
}

func newWelder(triangles int) *welder {
	return &welder{
		index: make(map[Vec3]uint32, triangles),
		mesh: &Mesh{
			Faces: make([]Face, 0, triangles),
		},
	}
}

func (w *welder) vertex(v Vec3) uint32 {
	if i, ok := w.index[v]; ok {
		return i
	}
	i := uint32(len(w.mesh.Vertices))
	w.mesh.Vertices = append(w.mesh.Vertices, v)
	w.index[v] = i
	return i
}

// triangle appends a face unless welding collapsed it.
func (w *welder) triangle(a, b, c Vec3) {
	f := Face{w.vertex(a), w.vertex(b), w.vertex(c)}
	if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
		return
	}
	w.mesh.Faces = append(w.mesh.Faces, f)
}

// Box returns an axis-aligned box centred on the origin.
func Box(x, y, z float32) *Mesh {
	hx, hy, hz := x/2, y/2, z/2
	return &Mesh{
		Vertices: []Vec3{
			{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {-hx, hy, -hz},
			{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz},
		},
		Faces: []Face{
			{0, 2, 1}, {0, 3, 2}, // -z
			{4, 5, 6}, {4, 6, 7}, // +z
			{0, 1, 5}, {0, 5, 4}, // -y
			{3, 7, 6}, {3, 6, 2}, // +y
			{0, 4, 7}, {0, 7, 3}, // -x
			{1, 2, 6}, {1, 6, 5}, // +x
		},
	}
}
