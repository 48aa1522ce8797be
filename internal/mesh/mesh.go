// Package mesh supplies geometry and textures to the renderer through a
// narrow provider interface. The built-in provider generates everything
// procedurally; a file-backed provider would satisfy the same interface.
package mesh

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one mesh vertex in the GPU layout: position, texture
// coordinates, normal, and the tangent frame for normal mapping.
// 56-byte stride, shader locations 0-4.
type Vertex struct {
	Position  [3]float32
	UV        [2]float32
	Normal    [3]float32
	Tangent   [3]float32
	Bitangent [3]float32
}

// Mesh is indexed triangle geometry ready for upload.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
}

// Textures are the material images associated with a mesh.
type Textures struct {
	Diffuse   *image.RGBA
	NormalMap *image.RGBA
}

// Provider resolves a logical mesh name to geometry plus textures.
type Provider interface {
	Load(name string) (*Mesh, *Textures, error)
}

// BuiltinProvider serves the procedural meshes registered at
// construction. Load fails for unknown names.
type BuiltinProvider struct {
	meshes map[string]func() (*Mesh, *Textures)
}

// NewBuiltinProvider returns a provider knowing the "cube" mesh.
func NewBuiltinProvider() *BuiltinProvider {
	return &BuiltinProvider{
		meshes: map[string]func() (*Mesh, *Textures){
			"cube": func() (*Mesh, *Textures) {
				return Cube(), &Textures{
					Diffuse:   Checkerboard(256, 8),
					NormalMap: NeutralNormalMap(8),
				}
			},
		},
	}
}

func (p *BuiltinProvider) Load(name string) (*Mesh, *Textures, error) {
	gen, ok := p.meshes[name]
	if !ok {
		return nil, nil, fmt.Errorf("mesh %q: %w", name, ErrNotFound)
	}
	m, tx := gen()
	return m, tx, nil
}

// ErrNotFound reports a mesh name the provider does not know.
var ErrNotFound = fmt.Errorf("mesh not found")

// Cube returns a unit cube with per-face normals and UVs, tangent
// frames computed from the UV layout.
func Cube() *Mesh {
	// Four corners per face so normals and UVs stay flat per face.
	faces := []struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}}},
	}
	uvs := [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

	m := &Mesh{Name: "cube"}
	for fi, f := range faces {
		base := uint32(fi * 4)
		for ci, c := range f.corners {
			m.Vertices = append(m.Vertices, Vertex{
				Position: c,
				UV:       uvs[ci],
				Normal:   f.normal,
			})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	ComputeTangents(m)
	return m
}

// ComputeTangents fills in per-vertex tangents and bitangents from the
// triangle UV layout, averaging across the triangles sharing a vertex.
// Degenerate UV triangles contribute nothing.
func ComputeTangents(m *Mesh) {
	tangents := make([]mgl32.Vec3, len(m.Vertices))
	bitangents := make([]mgl32.Vec3, len(m.Vertices))

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		v0, v1, v2 := m.Vertices[i0], m.Vertices[i1], m.Vertices[i2]

		e1 := sub3(v1.Position, v0.Position)
		e2 := sub3(v2.Position, v0.Position)
		du1 := v1.UV[0] - v0.UV[0]
		dv1 := v1.UV[1] - v0.UV[1]
		du2 := v2.UV[0] - v0.UV[0]
		dv2 := v2.UV[1] - v0.UV[1]

		det := du1*dv2 - du2*dv1
		if det == 0 {
			continue
		}
		r := 1 / det
		tangent := e1.Mul(dv2).Sub(e2.Mul(dv1)).Mul(r)
		bitangent := e2.Mul(du1).Sub(e1.Mul(du2)).Mul(r)

		for _, idx := range []uint32{i0, i1, i2} {
			tangents[idx] = tangents[idx].Add(tangent)
			bitangents[idx] = bitangents[idx].Add(bitangent)
		}
	}

	for i := range m.Vertices {
		if tangents[i].Len() > 0 {
			t := tangents[i].Normalize()
			m.Vertices[i].Tangent = [3]float32{t.X(), t.Y(), t.Z()}
		}
		if bitangents[i].Len() > 0 {
			b := bitangents[i].Normalize()
			m.Vertices[i].Bitangent = [3]float32{b.X(), b.Y(), b.Z()}
		}
	}
}

func sub3(a, b [3]float32) mgl32.Vec3 {
	return mgl32.Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}
