package app

import (
	"context"
	"time"

	"github.com/golang/glog"
	"github.com/leterax/pgr-skeleton/pkg/config"
)

// EventSource delivers window events to the loop
type EventSource interface {
	// WaitEvents blocks for at most timeout and returns the events that
	// arrived, oldest first. A zero timeout only collects pending events.
	WaitEvents(timeout time.Duration) []Event
}

// Run is the main loop. Window events are dispatched in arrival order, then
// config reloads, then the timer when due, then a repaint when one was
// requested. Run returns after the application quits or ctx is cancelled,
// and always finalizes the application.
func (a *Application) Run(ctx context.Context, events EventSource, reloads <-chan *config.Config) {
	defer a.finalize()

	glog.Info("Entering main loop")
	for !a.quit {
		if ctx.Err() != nil {
			a.Dispatch(Event{Kind: EventClose})
			break
		}

		for _, ev := range events.WaitEvents(a.waitTimeout()) {
			a.Dispatch(ev)
			if a.quit {
				break
			}
		}

		reloads = a.drainReloads(reloads)

		if !a.quit && a.timerArmed && a.surface.Time() >= a.timerDue {
			a.timerArmed = false
			a.Dispatch(Event{Kind: EventTimer})
		}

		if !a.quit && a.redisplay {
			a.redisplay = false
			a.Dispatch(Event{Kind: EventDisplay})
		}
	}
	glog.Info("Main loop finished")
}

// waitTimeout returns how long the loop may block before the next scheduled work
func (a *Application) waitTimeout() time.Duration {
	if a.redisplay {
		return 0
	}
	if !a.timerArmed {
		return TickInterval
	}

	remaining := a.timerDue - a.surface.Time()
	if remaining <= 0 {
		return 0
	}
	return time.Duration(remaining * float64(time.Second))
}

// drainReloads dispatches every config waiting on reloads without blocking.
// It returns nil once the channel is closed.
func (a *Application) drainReloads(reloads <-chan *config.Config) <-chan *config.Config {
	for !a.quit {
		select {
		case cfg, ok := <-reloads:
			if !ok {
				return nil
			}
			a.Dispatch(Event{Kind: EventConfigReload, Config: cfg})
		default:
			return reloads
		}
	}
	return reloads
}
