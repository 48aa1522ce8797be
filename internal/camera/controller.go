package camera

import (
	"sim-engine/internal/input"
)

// DefaultSpeed is the controller movement speed in world units per second.
const DefaultSpeed = 30.0

// Controller maps held directional keys onto camera movement. Movement
// is scaled by the delta of the previously completed frame, so pacing
// lags the display by one frame.
type Controller struct {
	Speed float32

	forwardPressed  bool
	backwardPressed bool
	leftPressed     bool
	rightPressed    bool
}

// NewController returns a controller with the given speed in world
// units per second; speed <= 0 selects the default.
func NewController(speed float32) *Controller {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	return &Controller{Speed: speed}
}

// ProcessInput tracks the four movement keys and reports whether the
// event was consumed. Anything else falls through to other handlers.
func (cc *Controller) ProcessInput(ev input.Event) bool {
	key, ok := ev.(input.KeyEvent)
	if !ok {
		return false
	}
	switch key.Key {
	case input.KeyForward:
		cc.forwardPressed = key.Pressed
	case input.KeyBackward:
		cc.backwardPressed = key.Pressed
	case input.KeyLeft:
		cc.leftPressed = key.Pressed
	case input.KeyRight:
		cc.rightPressed = key.Pressed
	default:
		return false
	}
	return true
}

// Update advances the camera eye by the held directions, with dt in
// seconds. Forward motion stops short of the target; backward motion is
// deliberately unguarded and may cross it. Strafing re-seats the eye on
// the circle of the current radius around the target, so the orbit
// radius is preserved by construction rather than by incremental drift.
func (cc *Controller) Update(cam *Camera, dt float32) {
	forward := cam.Target.Sub(cam.Eye)
	forwardNorm := forward.Normalize()
	forwardMag := forward.Len()

	step := cc.Speed * dt

	// Prevents glitching when the eye gets too close to the target.
	if cc.forwardPressed && forwardMag > step {
		cam.Eye = cam.Eye.Add(forwardNorm.Mul(step))
	}
	if cc.backwardPressed {
		cam.Eye = cam.Eye.Sub(forwardNorm.Mul(step))
	}

	right := forwardNorm.Cross(cam.Up)

	// The eye may have moved above; redo the radius before strafing.
	forward = cam.Target.Sub(cam.Eye)
	forwardMag = forward.Len()

	if cc.rightPressed {
		cam.Eye = cam.Target.Sub(forward.Sub(right.Mul(step)).Normalize().Mul(forwardMag))
	}
	if cc.leftPressed {
		cam.Eye = cam.Target.Sub(forward.Add(right.Mul(step)).Normalize().Mul(forwardMag))
	}
}
