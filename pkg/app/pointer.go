package app

// passiveMotion turns pointer movement into yaw/pitch, then warps the pointer
// back to the window centre so looking around never hits the window edge.
func (a *Application) passiveMotion(x, y int) {
	deltaX := a.previousMouseX - x
	deltaY := a.previousMouseY - y

	sensitivity := a.camera.MouseSensitivity()
	a.camera.AddYawPitch(float32(deltaX)*sensitivity, float32(deltaY)*sensitivity)

	width, height := a.surface.Size()
	halfWidth := width / 2
	halfHeight := height / 2

	a.surface.WarpPointer(float64(halfWidth), float64(halfHeight))

	a.previousMouseX = halfWidth
	a.previousMouseY = halfHeight
}
