package mesh

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/udhos/gwob"
)

// gwob reports malformed records through the logger and carries on; these
// prefixes mark its parse failures as opposed to its warnings.
var objErrPrefixes = []string{"readLines: ", "scanLines: "}

// decodeOBJ reads v and f records through gwob. Triangles and quads are
// accepted; quads are split in two. Texture and normal references are
// resolved by the parser but dropped from the geometry.
func decodeOBJ(data []byte) (m *Mesh, err error) {
	var parseErr error
	opts := &gwob.ObjParserOptions{
		IgnoreNormals: true,
		Logger: func(msg string) {
			if parseErr != nil {
				return
			}
			for _, p := range objErrPrefixes {
				if strings.HasPrefix(msg, p) {
					parseErr = errors.New(strings.TrimSpace(strings.TrimPrefix(msg, p)))
					return
				}
			}
		},
	}

	// Out of range negative references index past gwob's tables.
	defer func() {
		if r := recover(); r != nil {
			m, err = nil, fmt.Errorf("malformed obj: %v", r)
		}
	}()

	o, err := gwob.NewObjFromBuf("mesh", data, opts)
	if err != nil {
		return nil, err
	}
	if parseErr != nil {
		return nil, parseErr
	}
	if len(o.Indices)%3 != 0 {
		return nil, fmt.Errorf("obj index count %d is not a multiple of 3", len(o.Indices))
	}
	unified := 0
	for _, i := range o.Indices {
		unified = max(unified, i+1)
	}
	if 4*len(o.Coord) != unified*o.StrideSize {
		return nil, errors.New("obj mixes faces with and without texture references")
	}

	w := newWelder(len(o.Indices) / 3)
	corner := func(i int) Vec3 {
		x, y, z := o.VertexCoordinates(o.Indices[i])
		return Vec3{x, y, z}
	}
	for i := 0; i < len(o.Indices); i += 3 {
		w.triangle(corner(i), corner(i+1), corner(i+2))
	}
	return w.mesh, nil
}

func encodeOBJ(m *Mesh) ([]byte, error) {
	coord := make([]float32, 0, 3*len(m.Vertices))
	for _, v := range m.Vertices {
		coord = append(coord, v[0], v[1], v[2])
	}
	indices := make([]int, 0, 3*len(m.Faces))
	for _, f := range m.Faces {
		indices = append(indices, int(f[0]), int(f[1]), int(f[2]))
	}

	o, err := gwob.NewObjFromVertex(coord, indices)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := o.ToWriter(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
