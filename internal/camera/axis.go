package camera

import "github.com/go-gl/mathgl/mgl32"

// Axis names one of the three world basis axes, used to reorient which
// way is "up" at runtime.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Vector returns the unit basis vector for the axis.
func (a Axis) Vector() mgl32.Vec3 {
	switch a {
	case AxisX:
		return mgl32.Vec3{1, 0, 0}
	case AxisZ:
		return mgl32.Vec3{0, 0, 1}
	default:
		return mgl32.Vec3{0, 1, 0}
	}
}
