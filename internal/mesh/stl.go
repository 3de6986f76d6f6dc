package mesh

import (
	"bytes"
	"math"

	"github.com/hschendel/stl"
)

func decodeSTL(data []byte) (*Mesh, error) {
	solid, err := stl.ReadAll(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	w := newWelder(len(solid.Triangles))
	for _, t := range solid.Triangles {
		w.triangle(Vec3(t.Vertices[0]), Vec3(t.Vertices[1]), Vec3(t.Vertices[2]))
	}
	return w.mesh, nil
}

func encodeSTL(m *Mesh) ([]byte, error) {
	solid := &stl.Solid{
		Name:      "zinspector",
		Triangles: make([]stl.Triangle, len(m.Faces)),
	}
	for i, f := range m.Faces {
		t := stl.Triangle{
			Vertices: [3]stl.Vec3{
				stl.Vec3(m.Vertices[f[0]]),
				stl.Vec3(m.Vertices[f[1]]),
				stl.Vec3(m.Vertices[f[2]]),
			},
		}
		t.Normal = faceNormal(t.Vertices[0], t.Vertices[1], t.Vertices[2])
		solid.Triangles[i] = t
	}
	var buf bytes.Buffer
	if err := solid.WriteAll(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func faceNormal(a, b, c stl.Vec3) stl.Vec3 {
	u := stl.Vec3{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	v := stl.Vec3{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
	n := stl.Vec3{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
	l := float32(math.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])))
	if l == 0 {
		return n
	}
	return stl.Vec3{n[0] / l, n[1] / l, n[2] / l}
}
