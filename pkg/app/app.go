// Package app drives the application: it owns the camera, the input state and
// the scene, and turns window events into updates and repaints.
package app

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/glog"
	"github.com/leterax/pgr-skeleton/pkg/config"
	"github.com/leterax/pgr-skeleton/pkg/input"
	"github.com/leterax/pgr-skeleton/pkg/render"
	"github.com/leterax/pgr-skeleton/pkg/scene"
)

// Window constants
const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "PGR: Application Skeleton"
)

// TickInterval is the fixed cadence of the frame driver
const TickInterval = 33 * time.Millisecond

// Surface is the window the application draws into
type Surface interface {
	Clear(color mgl32.Vec4)
	SwapBuffers()
	Viewport(width, height int)
	// Size returns the window size in the coordinates pointer events use
	Size() (width, height int)
	WarpPointer(x, y float64)
	// Time returns seconds since the windowing framework started
	Time() float64
}

// Application holds all state touched by event handlers.
// Every method must be called from the thread running the event loop.
type Application struct {
	surface Surface
	config  *config.Config
	camera  *render.Camera
	input   *input.State
	objects scene.ObjectList
	onClose func()

	previousMouseX int
	previousMouseY int
	buttons        map[int]bool // mouse buttons held

	timerArmed bool
	timerDue   float64
	redisplay  bool
	quit       bool
	finalized  bool
}

// New creates the application state. The object list is owned by the
// application from now on and is released when the application finalizes.
func New(surface Surface, cfg *config.Config, objects scene.ObjectList) *Application {
	if cfg == nil {
		cfg = config.Default()
	}

	width, height := surface.Size()

	camera := render.NewCamera(cfg.CameraPosition(), width, height)
	camera.LookAt(cfg.CameraTarget())

	a := &Application{
		surface:        surface,
		camera:         camera,
		input:          input.NewState(),
		buttons:        make(map[int]bool),
		objects:        objects,
		previousMouseX: width / 2,
		previousMouseY: height / 2,
		redisplay:      true,
	}
	a.applyConfig(cfg)
	a.scheduleTimer()

	return a
}

// SetCloseHandler registers a function run once when the application finalizes
func (a *Application) SetCloseHandler(f func()) {
	a.onClose = f
}

// Camera returns the camera
func (a *Application) Camera() *render.Camera {
	return a.camera
}

// Input returns the held-key state
func (a *Application) Input() *input.State {
	return a.input
}

// Objects returns the scene objects
func (a *Application) Objects() scene.ObjectList {
	return a.objects
}

// Config returns the active configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// PreviousPointer returns the last recorded pointer position
func (a *Application) PreviousPointer() (x, y int) {
	return a.previousMouseX, a.previousMouseY
}

// ButtonHeld reports whether a mouse button is currently pressed
func (a *Application) ButtonHeld(button int) bool {
	return a.buttons[button]
}

// Done reports whether the application has been asked to quit
func (a *Application) Done() bool {
	return a.quit
}

// PostRedisplay requests a repaint after the current events are handled
func (a *Application) PostRedisplay() {
	a.redisplay = true
}

// RedisplayPending reports whether a repaint has been requested
func (a *Application) RedisplayPending() bool {
	return a.redisplay
}

// scheduleTimer arms the frame driver to fire TickInterval from now
func (a *Application) scheduleTimer() {
	a.timerArmed = true
	a.timerDue = a.surface.Time() + TickInterval.Seconds()
}

// applyConfig takes over camera tuning and render switches from cfg.
// Camera placement and the scene are only read at startup.
func (a *Application) applyConfig(cfg *config.Config) {
	a.config = cfg
	a.camera.SetSpeed(cfg.Camera.Speed)
	a.camera.SetKeySensitivity(cfg.Camera.KeySensitivity)
	a.camera.SetMouseSensitivity(cfg.Camera.MouseSensitivity)
	a.camera.SetFOV(cfg.Camera.FOV)
}

// finalize releases the scene and runs the close handler, once
func (a *Application) finalize() {
	if a.finalized {
		return
	}
	a.finalized = true

	a.objects.Delete()
	if a.onClose != nil {
		a.onClose()
	}
	glog.Info("Application finalized")
}
