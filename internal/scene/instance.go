// Package scene holds the renderable world state: the instanced
// transform grid and the point light.
package scene

import "github.com/go-gl/mathgl/mgl32"

// Rotation applied to every off-center grid instance, about the axis
// pointing from the grid center through the instance.
const gridRotationDeg = 45.0

// Instance is one placed copy of the mesh: a position and an
// orientation. Instances are generated once at startup and not mutated
// afterwards.
type Instance struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// InstanceRaw is the GPU-ready matrix pair for one instance: the full
// object transform and the linear part of the rotation for transforming
// normals. Uploaded as a contiguous array; 100-byte stride.
type InstanceRaw struct {
	Object mgl32.Mat4
	Normal mgl32.Mat3
}

// Raw derives the matrix pair from the instance transform.
func (in Instance) Raw() InstanceRaw {
	rot := in.Rotation.Mat4()
	return InstanceRaw{
		Object: mgl32.Translate3D(in.Position.X(), in.Position.Y(), in.Position.Z()).Mul4(rot),
		Normal: rot.Mat3(),
	}
}

// NewGrid generates rows*cols instances on the XZ plane, spaced evenly
// and centered on the origin: position = spacing * (index - (n-1)/2) on
// each axis. An instance landing exactly on the origin keeps the
// identity rotation, since a zero vector has no axis to rotate about;
// every other instance is tilted 45 degrees about its radial axis.
func NewGrid(rows, cols int, spacing float32) []Instance {
	instances := make([]Instance, 0, rows*cols)
	for zi := 0; zi < rows; zi++ {
		for xi := 0; xi < cols; xi++ {
			x := spacing * (float32(xi) - float32(cols-1)/2)
			z := spacing * (float32(zi) - float32(rows-1)/2)
			position := mgl32.Vec3{x, 0, z}

			rotation := mgl32.QuatIdent()
			if position.Len() > 0 {
				rotation = mgl32.QuatRotate(mgl32.DegToRad(gridRotationDeg), position.Normalize())
			}

			instances = append(instances, Instance{Position: position, Rotation: rotation})
		}
	}
	return instances
}

// RawAll derives the contiguous upload array for a set of instances.
func RawAll(instances []Instance) []InstanceRaw {
	raw := make([]InstanceRaw, len(instances))
	for i, in := range instances {
		raw[i] = in.Raw()
	}
	return raw
}
