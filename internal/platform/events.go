// Package platform connects GLFW window callbacks to the application's event loop.
package platform

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/pgr-skeleton/internal/openglhelper"
	"github.com/leterax/pgr-skeleton/pkg/app"
	"github.com/leterax/pgr-skeleton/pkg/input"
)

// EventQueue collects GLFW callbacks as application events.
// GLFW runs the callbacks on the main thread while events are being waited
// for, so the queue needs no locking.
type EventQueue struct {
	window  *openglhelper.Window
	pending []app.Event
	buttons int // number of mouse buttons held
}

// NewEventQueue registers the window callbacks
func NewEventQueue(window *openglhelper.Window) *EventQueue {
	q := &EventQueue{window: window}

	w := window.GLFWWindow()
	w.SetKeyCallback(q.keyCallback)
	w.SetCursorPosCallback(q.cursorPosCallback)
	w.SetMouseButtonCallback(q.mouseButtonCallback)
	w.SetFramebufferSizeCallback(q.framebufferSizeCallback)
	w.SetRefreshCallback(q.refreshCallback)
	w.SetFocusCallback(q.focusCallback)
	w.SetCloseCallback(q.closeCallback)

	return q
}

// WaitEvents implements app.EventSource
func (q *EventQueue) WaitEvents(timeout time.Duration) []app.Event {
	q.window.WaitEvents(timeout.Seconds())

	events := q.pending
	q.pending = nil
	return events
}

func (q *EventQueue) push(ev app.Event) {
	q.pending = append(q.pending, ev)
}

func (q *EventQueue) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	pressed := action != glfw.Release

	if r, ok := TranslatePrintable(key); ok {
		kind := app.EventKeyUp
		if pressed {
			kind = app.EventKeyDown
		}
		q.push(app.Event{Kind: kind, Key: r})
		return
	}

	if special := TranslateSpecial(key); special != input.SpecialUnknown {
		kind := app.EventSpecialUp
		if pressed {
			kind = app.EventSpecialDown
		}
		q.push(app.Event{Kind: kind, Special: special})
	}
}

func (q *EventQueue) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	kind := app.EventPassiveMotion
	if q.buttons > 0 {
		kind = app.EventMotion
	}
	q.push(app.Event{Kind: kind, X: int(xpos), Y: int(ypos)})
}

func (q *EventQueue) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	pressed := action == glfw.Press
	if pressed {
		q.buttons++
	} else if q.buttons > 0 {
		q.buttons--
	}

	x, y := w.GetCursorPos()
	q.push(app.Event{Kind: app.EventMouseButton, Button: int(button), Pressed: pressed, X: int(x), Y: int(y)})
}

func (q *EventQueue) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	q.push(app.Event{Kind: app.EventReshape, Width: width, Height: height})
}

func (q *EventQueue) refreshCallback(_ *glfw.Window) {
	q.push(app.Event{Kind: app.EventDisplay})
}

func (q *EventQueue) focusCallback(_ *glfw.Window, focused bool) {
	if !focused {
		q.buttons = 0
		q.push(app.Event{Kind: app.EventFocusLost})
	}
}

func (q *EventQueue) closeCallback(_ *glfw.Window) {
	q.push(app.Event{Kind: app.EventClose})
}
