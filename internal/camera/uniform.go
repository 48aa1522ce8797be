package camera

import "github.com/go-gl/mathgl/mgl32"

// Uniform is the GPU-visible camera snapshot: homogeneous eye position
// plus the combined view-projection matrix. 80 bytes, 16-byte aligned
// fields, uploaded verbatim to a uniform buffer.
type Uniform struct {
	ViewPosition   [4]float32
	ViewProjection mgl32.Mat4
}

// UniformFrom derives the uniform from the camera's current state. Pure
// function of the camera at call time; no identity of its own.
func UniformFrom(c *Camera) Uniform {
	return Uniform{
		ViewPosition:   [4]float32{c.Eye.X(), c.Eye.Y(), c.Eye.Z(), 1},
		ViewProjection: c.BuildViewProjection(),
	}
}
