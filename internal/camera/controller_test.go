package camera

import (
	"testing"

	"sim-engine/internal/input"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(k input.Key) input.KeyEvent   { return input.KeyEvent{Key: k, Pressed: true} }
func release(k input.Key) input.KeyEvent { return input.KeyEvent{Key: k, Pressed: false} }

func TestProcessInputConsumesOnlyMovementKeys(t *testing.T) {
	cc := NewController(0)

	assert.True(t, cc.ProcessInput(press(input.KeyForward)))
	assert.True(t, cc.ProcessInput(press(input.KeyBackward)))
	assert.True(t, cc.ProcessInput(press(input.KeyLeft)))
	assert.True(t, cc.ProcessInput(press(input.KeyRight)))

	assert.False(t, cc.ProcessInput(press(input.KeyToggleFrameRate)))
	assert.False(t, cc.ProcessInput(press(input.KeyQuit)))
	assert.False(t, cc.ProcessInput(input.PointerEvent{X: 10, Y: 10}))
}

func TestProcessInputClearsOnRelease(t *testing.T) {
	cc := NewController(0)
	cc.ProcessInput(press(input.KeyForward))
	require.True(t, cc.forwardPressed)
	cc.ProcessInput(release(input.KeyForward))
	require.False(t, cc.forwardPressed)
}

func TestForwardMovesExactlySpeedDtTowardTarget(t *testing.T) {
	cam := New()
	cam.Eye = mgl32.Vec3{0, 0, 10}
	cc := NewController(30)
	cc.ProcessInput(press(input.KeyForward))

	dt := float32(0.1) // step = 3, well short of |target-eye| = 10
	before := cam.Eye
	cc.Update(cam, dt)

	moved := cam.Eye.Sub(before)
	assert.InDelta(t, 3.0, float64(moved.Len()), 1e-5)

	dir := cam.Target.Sub(before).Normalize()
	assert.InDelta(t, 1.0, float64(moved.Normalize().Dot(dir)), 1e-6, "motion must be along the view direction")
}

func TestForwardGuardStopsShortOfTarget(t *testing.T) {
	cam := New()
	cam.Eye = mgl32.Vec3{0, 0, 1}
	cc := NewController(30)
	cc.ProcessInput(press(input.KeyForward))

	// step = 3 > distance 1: the guard must hold the eye in place.
	before := cam.Eye
	cc.Update(cam, 0.1)
	assert.Equal(t, before, cam.Eye)
}

func TestBackwardIsUnguarded(t *testing.T) {
	cam := New()
	cam.Eye = mgl32.Vec3{0, 0, 1}
	cc := NewController(30)
	cc.ProcessInput(press(input.KeyBackward))

	cc.Update(cam, 0.1)
	assert.InDelta(t, 4.0, float64(cam.Eye.Z()), 1e-5, "backward moves the full step regardless of distance")
}

func TestRightStrafePreservesOrbitRadius(t *testing.T) {
	cam := New()
	cam.Eye = mgl32.Vec3{0, 0, 10}
	cc := NewController(30)
	cc.ProcessInput(press(input.KeyRight))

	radius := cam.Target.Sub(cam.Eye).Len()
	for i := 0; i < 50; i++ {
		cc.Update(cam, 0.016)
	}
	got := cam.Target.Sub(cam.Eye).Len()
	assert.InDelta(t, float64(radius), float64(got), 1e-5)
}

func TestLeftAndRightStrafeAreSymmetric(t *testing.T) {
	right := New()
	right.Eye = mgl32.Vec3{0, 0, 10}
	left := New()
	left.Eye = mgl32.Vec3{0, 0, 10}

	ccR := NewController(30)
	ccR.ProcessInput(press(input.KeyRight))
	ccR.Update(right, 0.05)

	ccL := NewController(30)
	ccL.ProcessInput(press(input.KeyLeft))
	ccL.Update(left, 0.05)

	assert.InDelta(t, float64(right.Eye.X()), float64(-left.Eye.X()), 1e-5)
	assert.InDelta(t, float64(right.Eye.Z()), float64(left.Eye.Z()), 1e-5)
}

func TestUpdateWithNothingPressedIsIdle(t *testing.T) {
	cam := New()
	before := cam.Eye
	NewController(0).Update(cam, 0.016)
	assert.Equal(t, before, cam.Eye)
}

func TestZeroDtFreezesMovement(t *testing.T) {
	cam := New()
	cam.Eye = mgl32.Vec3{0, 0, 10}
	cc := NewController(30)
	cc.ProcessInput(press(input.KeyForward))

	before := cam.Eye
	cc.Update(cam, 0)
	assert.Equal(t, before, cam.Eye)
}
