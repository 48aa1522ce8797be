package mesh

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexLayout(t *testing.T) {
	assert.Equal(t, uintptr(56), unsafe.Sizeof(Vertex{}))
	assert.Equal(t, uintptr(0), unsafe.Offsetof(Vertex{}.Position))
	assert.Equal(t, uintptr(12), unsafe.Offsetof(Vertex{}.UV))
	assert.Equal(t, uintptr(20), unsafe.Offsetof(Vertex{}.Normal))
	assert.Equal(t, uintptr(32), unsafe.Offsetof(Vertex{}.Tangent))
	assert.Equal(t, uintptr(44), unsafe.Offsetof(Vertex{}.Bitangent))
}

func TestCubeGeometry(t *testing.T) {
	m := Cube()
	require.Len(t, m.Vertices, 24)
	require.Len(t, m.Indices, 36)

	for _, idx := range m.Indices {
		assert.Less(t, int(idx), len(m.Vertices))
	}

	// Every vertex sits on the unit cube surface.
	for _, v := range m.Vertices {
		for _, c := range v.Position {
			assert.LessOrEqual(t, float64(c), 0.5)
			assert.GreaterOrEqual(t, float64(c), -0.5)
		}
		n := mgl32.Vec3{v.Normal[0], v.Normal[1], v.Normal[2]}
		assert.InDelta(t, 1.0, float64(n.Len()), 1e-6)
	}
}

func TestCubeTangentFrames(t *testing.T) {
	m := Cube()
	for i, v := range m.Vertices {
		n := mgl32.Vec3{v.Normal[0], v.Normal[1], v.Normal[2]}
		tg := mgl32.Vec3{v.Tangent[0], v.Tangent[1], v.Tangent[2]}
		bt := mgl32.Vec3{v.Bitangent[0], v.Bitangent[1], v.Bitangent[2]}

		require.InDelta(t, 1.0, float64(tg.Len()), 1e-5, "vertex %d tangent", i)
		require.InDelta(t, 1.0, float64(bt.Len()), 1e-5, "vertex %d bitangent", i)
		assert.InDelta(t, 0.0, float64(n.Dot(tg)), 1e-5, "vertex %d tangent orthogonal", i)
		assert.InDelta(t, 0.0, float64(n.Dot(bt)), 1e-5, "vertex %d bitangent orthogonal", i)
	}
}

func TestComputeTangentsSkipsDegenerateUVs(t *testing.T) {
	m := &Mesh{
		Vertices: []Vertex{
			{Position: [3]float32{0, 0, 0}},
			{Position: [3]float32{1, 0, 0}},
			{Position: [3]float32{0, 1, 0}},
		},
		Indices: []uint32{0, 1, 2},
	}
	ComputeTangents(m)
	for _, v := range m.Vertices {
		assert.Equal(t, [3]float32{}, v.Tangent)
		assert.Equal(t, [3]float32{}, v.Bitangent)
	}
}

func TestBuiltinProvider(t *testing.T) {
	p := NewBuiltinProvider()

	m, tx, err := p.Load("cube")
	require.NoError(t, err)
	assert.Equal(t, "cube", m.Name)
	require.NotNil(t, tx.Diffuse)
	require.NotNil(t, tx.NormalMap)
	assert.Equal(t, 256, tx.Diffuse.Bounds().Dx())

	// Normal map texels all encode the +Z normal.
	px := tx.NormalMap.RGBAAt(3, 3)
	assert.Equal(t, uint8(128), px.R)
	assert.Equal(t, uint8(128), px.G)
	assert.Equal(t, uint8(255), px.B)

	_, _, err = p.Load("teapot")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCheckerboardAlternates(t *testing.T) {
	img := Checkerboard(64, 8)
	a := img.RGBAAt(0, 0)
	b := img.RGBAAt(8, 0)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, img.RGBAAt(16, 0))
}
