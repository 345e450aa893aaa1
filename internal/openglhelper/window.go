package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/glog"
)

// Required OpenGL context version
const (
	GLVersionMajor = 3
	GLVersionMinor = 3
)

// Window handles GLFW window creation and management
type Window struct {
	glfwWindow   *glfw.Window
	cursorHidden bool
}

// NewWindow creates a new GLFW window with an OpenGL core context
func NewWindow(width, height int, title string, vsync bool) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, GLVersionMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, GLVersionMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	glfwWindow, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window (OpenGL %d.%d not supported?): %w",
			GLVersionMajor, GLVersionMinor, err)
	}

	glfwWindow.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	glog.Infof("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	return &Window{
		glfwWindow: glfwWindow,
	}, nil
}

// Clear clears the colour and depth buffers
func (w *Window) Clear(color mgl32.Vec4) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers swaps the front and back buffers
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// WaitEvents blocks until events arrive or timeout seconds pass, then processes them
func (w *Window) WaitEvents(timeout float64) {
	if timeout <= 0 {
		glfw.PollEvents()
		return
	}
	glfw.WaitEventsTimeout(timeout)
}

// Wake unblocks a pending WaitEvents. Safe to call from any goroutine.
func (w *Window) Wake() {
	glfw.PostEmptyEvent()
}

// ShouldClose returns whether the window should close
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// SetShouldClose flags the window for closing
func (w *Window) SetShouldClose(close bool) {
	w.glfwWindow.SetShouldClose(close)
}

// Close releases all resources
func (w *Window) Close() {
	w.glfwWindow.Destroy()
	glfw.Terminate()
}

// Size returns the window size in screen coordinates
func (w *Window) Size() (width, height int) {
	return w.glfwWindow.GetSize()
}

// FramebufferSize returns the framebuffer size in pixels
func (w *Window) FramebufferSize() (width, height int) {
	return w.glfwWindow.GetFramebufferSize()
}

// Viewport maps the GL viewport onto a framebuffer of the given size
func (w *Window) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Time returns seconds elapsed since GLFW was initialised
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// WarpPointer moves the cursor to the given window coordinates
func (w *Window) WarpPointer(x, y float64) {
	w.glfwWindow.SetCursorPos(x, y)
}

// GLFWWindow returns the underlying GLFW window
func (w *Window) GLFWWindow() *glfw.Window {
	return w.glfwWindow
}

// SetCursorHidden hides or shows the cursor while it is over the window
func (w *Window) SetCursorHidden(hidden bool) {
	w.cursorHidden = hidden

	if hidden {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	} else {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// IsCursorHidden returns whether the cursor is currently hidden
func (w *Window) IsCursorHidden() bool {
	return w.cursorHidden
}
