package app

// display clears the framebuffer, draws the scene and presents the frame
func (a *Application) display() {
	a.surface.Clear(a.config.ClearColor())

	a.drawScene()

	a.surface.SwapBuffers()
}

// drawScene draws every object in list order with the camera's current matrices
func (a *Application) drawScene() {
	viewMatrix := a.camera.ViewMatrix()
	projectionMatrix := a.camera.ProjectionMatrix()

	a.objects.Draw(viewMatrix, projectionMatrix, a.camera, a.config)
}
