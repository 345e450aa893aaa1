package app

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/pgr-skeleton/pkg/input"
)

// Movement bindings
const (
	KeyForward  = 'w'
	KeyBackward = 's'
	KeyLeft     = 'a'
	KeyRight    = 'd'
)

// MovementVector returns the unscaled movement direction for the held keys.
// Opposite keys are exclusive: forward beats backward and left beats right.
func MovementVector(state *input.State, forward, right mgl32.Vec3) mgl32.Vec3 {
	var movement mgl32.Vec3

	if state.IsHeld(KeyForward) {
		movement = movement.Add(forward)
	} else if state.IsHeld(KeyBackward) {
		movement = movement.Sub(forward)
	}

	if state.IsHeld(KeyLeft) {
		movement = movement.Sub(right)
	} else if state.IsHeld(KeyRight) {
		movement = movement.Add(right)
	}

	return movement
}

// RotationDelta returns the unscaled yaw and pitch directions for the held arrow keys.
// Up beats down and left beats right.
func RotationDelta(state *input.State) (yaw, pitch float32) {
	if state.IsSpecialHeld(input.SpecialUp) {
		pitch = 1
	} else if state.IsSpecialHeld(input.SpecialDown) {
		pitch = -1
	}

	if state.IsSpecialHeld(input.SpecialLeft) {
		yaw = 1
	} else if state.IsSpecialHeld(input.SpecialRight) {
		yaw = -1
	}

	return yaw, pitch
}

// tick is the fixed-interval update: move and turn the camera from the held
// keys, update the scene, then re-arm the timer and ask for a repaint.
// Both deltas scale with the time since startup, not since the last tick.
func (a *Application) tick() {
	sceneRootMatrix := mgl32.Ident4()

	elapsedTime := float32(a.surface.Time())

	movement := MovementVector(a.input, a.camera.Forward(), a.camera.Right())
	movement = movement.Mul(elapsedTime * a.camera.Speed())
	a.camera.SetPosition(a.camera.Position().Add(movement))

	yaw, pitch := RotationDelta(a.input)
	rotationScale := elapsedTime * a.camera.KeySensitivity()
	a.camera.AddYawPitch(yaw*rotationScale, pitch*rotationScale)

	a.objects.Update(elapsedTime, &sceneRootMatrix)

	a.scheduleTimer()
	a.PostRedisplay()
}
