package mesh

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBox(t *testing.T) {
	b := Box(1, 2, 3)
	require.NoError(t, b.Validate())
	assert.Equal(t, 8, b.VertexCount())
	assert.Equal(t, 12, b.FaceCount())

	lo, hi := b.Bounds()
	assert.Equal(t, Vec3{-0.5, -1, -1.5}, lo)
	assert.Equal(t, Vec3{0.5, 1, 1.5}, hi)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mesh *Mesh
	}{
		{"nil", nil},
		{"no faces", &Mesh{Vertices: []Vec3{{0, 0, 0}}}},
		{"out of range", &Mesh{Vertices: []Vec3{{0, 0, 0}, {1, 0, 0}}, Faces: []Face{{0, 1, 2}}}},
		{"degenerate", &Mesh{Vertices: []Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, Faces: []Face{{0, 1, 1}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.mesh.Validate(), ErrInvalid)
		})
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"stl": FormatSTL, ".OBJ": FormatOBJ, " glb ": FormatGLB} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("ply")
	assert.ErrorIs(t, err, ErrCodec)
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("/models/box.STL")
	require.NoError(t, err)
	assert.Equal(t, FormatSTL, f)

	_, err = FormatFromPath("/models/box")
	assert.ErrorIs(t, err, ErrCodec)
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatSTL, FormatOBJ} {
		t.Run(string(format), func(t *testing.T) {
			src := Box(2, 2, 2)
			data, err := Encode(src, format)
			require.NoError(t, err)
			require.NotEmpty(t, data)

			got, err := Decode(data, format)
			require.NoError(t, err)
			assert.Equal(t, src.VertexCount(), got.VertexCount())
			assert.Equal(t, src.FaceCount(), got.FaceCount())
		})
	}
}

func TestEncodeGLB(t *testing.T) {
	data, err := Encode(Box(1, 1, 1), FormatGLB)
	require.NoError(t, err)
	require.Greater(t, len(data), 12)
	assert.Equal(t, "glTF", string(data[:4]))
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte("anything"), FormatGLB)
	assert.ErrorIs(t, err, ErrCodec, "glb decode is unsupported")

	_, err = Decode(nil, FormatSTL)
	assert.ErrorIs(t, err, ErrCodec)

	_, err = Decode([]byte("v 0 0 0\nf 1 2 3\n"), FormatOBJ)
	assert.ErrorIs(t, err, ErrCodec)

	var cerr *CodecError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "decode", cerr.Op)
	assert.Equal(t, FormatOBJ, cerr.Format)
}

func TestEncodeInvalid(t *testing.T) {
	_, err := Encode(&Mesh{}, FormatSTL)
	assert.ErrorIs(t, err, ErrCodec)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDecodeOBJ_QuadsAndNegativeIndices(t *testing.T) {
	src := `# quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
f -4/-4 -2/-2 -1/-1
`
	m, err := Decode([]byte(src), FormatOBJ)
	require.NoError(t, err)
	assert.Equal(t, 4, m.VertexCount(), "corners with distinct texture refs weld by position")
	assert.Equal(t, 3, m.FaceCount())
}

func TestDecodeOBJ_Rejects(t *testing.T) {
	tri := "v 0 0 0\nv 1 0 0\nv 0 1 0\n"
	cases := map[string]string{
		"pentagon":            tri + "v 1 1 0\nv 2 2 0\nf 1 2 3 4 5\n",
		"unknown record":      tri + "xyz 1 2\nf 1 2 3\n",
		"bad coordinate":      "v 0 zero 0\n" + tri + "f 2 3 4\n",
		"relative past start": tri + "f -9 1 2\n",
		"missing texture":     tri + "f 1/1 2/1 3/1\n",
		"mixed texture refs":  tri + "vt 0 0\nf 1/1 2/1 3/1\nf 1 2 3\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(src), FormatOBJ)
			assert.ErrorIs(t, err, ErrCodec)
		})
	}
}

func TestEncodeOBJ_Records(t *testing.T) {
	data, err := Encode(Box(1, 1, 1), FormatOBJ)
	require.NoError(t, err)

	var v, f int
	for _, line := range strings.Split(string(data), "\n") {
		switch {
		case strings.HasPrefix(line, "v "):
			v++
		case strings.HasPrefix(line, "f "):
			f++
		}
	}
	assert.Equal(t, 8, v)
	assert.Equal(t, 12, f)
}

func TestDecodeSTL_ASCII(t *testing.T) {
	src := `solid tri
facet normal 0 0 1
 outer loop
  vertex 0 0 0
  vertex 1 0 0
  vertex 0 1 0
 endloop
endfacet
endsolid tri
`
	m, err := Decode([]byte(src), FormatSTL)
	require.NoError(t, err)
	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, 1, m.FaceCount())
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	data, err := Encode(Box(1, 1, 1), FormatSTL)
	require.NoError(t, err)
	path := filepath.Join(dir, "box.stl")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	m, format, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, FormatSTL, format)
	assert.Equal(t, 12, m.FaceCount())

	_, _, err = ReadFile(filepath.Join(dir, "missing.stl"))
	assert.ErrorIs(t, err, ErrCodec)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, format, err = ReadFile(filepath.Join(dir, "missing.glb"))
	assert.ErrorIs(t, err, ErrUnsupported, "glb is rejected before the file is read")
	assert.NotErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, FormatGLB, format)
}
