package app

import (
	"fmt"
	"unicode"

	"github.com/golang/glog"
	"github.com/leterax/pgr-skeleton/pkg/config"
	"github.com/leterax/pgr-skeleton/pkg/input"
)

// EventKind enumerates everything the application reacts to
type EventKind int

const (
	EventDisplay EventKind = iota
	EventReshape
	EventKeyDown
	EventKeyUp
	EventSpecialDown
	EventSpecialUp
	EventMouseButton
	EventMotion
	EventPassiveMotion
	EventTimer
	EventFocusLost
	EventConfigReload
	EventClose
)

var eventNames = [...]string{
	EventDisplay:       "display",
	EventReshape:       "reshape",
	EventKeyDown:       "key-down",
	EventKeyUp:         "key-up",
	EventSpecialDown:   "special-down",
	EventSpecialUp:     "special-up",
	EventMouseButton:   "mouse-button",
	EventMotion:        "motion",
	EventPassiveMotion: "passive-motion",
	EventTimer:         "timer",
	EventFocusLost:     "focus-lost",
	EventConfigReload:  "config-reload",
	EventClose:         "close",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one window or application event. Only the fields relevant to Kind are set.
type Event struct {
	Kind EventKind

	// EventKeyDown, EventKeyUp
	Key rune
	// EventSpecialDown, EventSpecialUp
	Special input.SpecialKey

	// Pointer position for mouse events
	X, Y int
	// EventMouseButton
	Button  int
	Pressed bool

	// EventReshape, in framebuffer pixels
	Width, Height int

	// EventConfigReload
	Config *config.Config
}

// Dispatch runs the handler for one event to completion.
// Events arriving after the application quit are ignored.
func (a *Application) Dispatch(ev Event) {
	if a.quit {
		return
	}
	if glog.V(2) && ev.Kind != EventTimer && ev.Kind != EventDisplay {
		glog.Infof("Dispatch %s %+v", ev.Kind, ev)
	}

	switch ev.Kind {
	case EventDisplay:
		a.display()
	case EventReshape:
		a.reshape(ev.Width, ev.Height)
	case EventKeyDown:
		a.keyDown(ev.Key)
	case EventKeyUp:
		a.input.OnKeyUp(unicode.ToLower(ev.Key))
	case EventSpecialDown:
		a.input.OnSpecialDown(ev.Special)
	case EventSpecialUp:
		a.input.OnSpecialUp(ev.Special)
	case EventMouseButton:
		a.mouseButton(ev.Button, ev.Pressed)
	case EventMotion:
		// Drags do not turn the camera
	case EventPassiveMotion:
		a.passiveMotion(ev.X, ev.Y)
	case EventTimer:
		a.tick()
	case EventFocusLost:
		a.input.Reset()
		clear(a.buttons)
	case EventConfigReload:
		if ev.Config != nil {
			glog.Info("Applying reloaded config")
			a.applyConfig(ev.Config)
			a.PostRedisplay()
		}
	case EventClose:
		a.quit = true
	default:
		glog.Warningf("Unhandled event %s", ev.Kind)
	}
}

func (a *Application) keyDown(key rune) {
	if key == input.KeyEscape {
		glog.Info("Escape pressed, leaving main loop")
		a.quit = true
		return
	}
	a.input.OnKeyDown(unicode.ToLower(key))
}

func (a *Application) reshape(width, height int) {
	a.surface.Viewport(width, height)
	a.camera.UpdateProjectionMatrix(width, height)
	a.PostRedisplay()
}

func (a *Application) mouseButton(button int, pressed bool) {
	if pressed {
		a.buttons[button] = true
	} else {
		delete(a.buttons, button)
	}
}
