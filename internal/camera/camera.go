// Package camera holds the viewpoint state, its controller, and the
// GPU-facing uniform derivation.
package camera

import "github.com/go-gl/mathgl/mgl32"

// Defaults: two units back, one up, looking at the origin.
const (
	DefaultFOVDeg = 45.0
	DefaultAspect = 16.0 / 9.0
	DefaultNear   = 0.1
	DefaultFar    = 100.0
)

// depthCorrection remaps clip-space depth from the [-1,1] convention
// produced by the perspective matrix to the [0,1] convention WebGPU
// requires. Column-major, matching mgl32 storage. It is applied exactly
// once, here in BuildViewProjection.
var depthCorrection = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// Camera is the mutable viewpoint state. Aspect must stay positive and
// Near < Far; Resize and the constructor maintain that, direct mutation
// is the caller's contract.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3

	Aspect float32
	FOVDeg float32
	Near   float32
	Far    float32
}

// New returns a camera with the default placement and projection.
func New() *Camera {
	return &Camera{
		Eye:    mgl32.Vec3{0, 1, 2},
		Target: mgl32.Vec3{0, 0, 0},
		Up:     AxisY.Vector(),
		Aspect: DefaultAspect,
		FOVDeg: DefaultFOVDeg,
		Near:   DefaultNear,
		Far:    DefaultFar,
	}
}

// BuildViewProjection composes correction * perspective * lookAt.
// Degenerate eye==target input is undefined; the caller guards it.
func (c *Camera) BuildViewProjection() mgl32.Mat4 {
	view := mgl32.LookAtV(c.Eye, c.Target, c.Up)
	proj := mgl32.Perspective(mgl32.DegToRad(c.FOVDeg), c.Aspect, c.Near, c.Far)
	return depthCorrection.Mul4(proj).Mul4(view)
}

// SetAspect updates the aspect ratio from pixel dimensions. The caller
// guards height > 0.
func (c *Camera) SetAspect(width, height float32) {
	c.Aspect = width / height
}

// SetUpAxis replaces the up vector with the given unit basis axis.
func (c *Camera) SetUpAxis(axis Axis) {
	c.Up = axis.Vector()
}

// Translate moves the eye by delta, leaving the target in place.
func (c *Camera) Translate(delta mgl32.Vec3) {
	c.Eye = c.Eye.Add(delta)
}
