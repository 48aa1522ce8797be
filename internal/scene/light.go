package scene

import "github.com/go-gl/mathgl/mgl32"

// DefaultRotationDegPerSecond is the light's orbital angular rate about
// the world Y axis.
const DefaultRotationDegPerSecond = 30.0

// Light is a single point light.
type Light struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// NewLight returns a light at the given position with the given color.
func NewLight(position, color mgl32.Vec3) *Light {
	return &Light{Position: position, Color: color}
}

func (l *Light) SetColor(c mgl32.Vec3)    { l.Color = c }
func (l *Light) SetPosition(p mgl32.Vec3) { l.Position = p }

// Rotate orbits the position about the world Y axis by the fixed rate
// scaled by dt seconds. The angle accumulates indefinitely; quaternion
// composition stays stable over a session's lifetime.
func (l *Light) Rotate(dt float32) {
	rot := mgl32.QuatRotate(mgl32.DegToRad(DefaultRotationDegPerSecond*dt), mgl32.Vec3{0, 1, 0})
	l.Position = rot.Rotate(l.Position)
}

// LightUniform is the GPU-visible light snapshot. Uniform blocks give
// vec3 fields 16-byte slots, hence the explicit padding.
type LightUniform struct {
	Position mgl32.Vec3
	_pad0    uint32
	Color    mgl32.Vec3
	_pad1    uint32
}

// Uniform packs the light for upload.
func (l *Light) Uniform() LightUniform {
	return LightUniform{Position: l.Position, Color: l.Color}
}
