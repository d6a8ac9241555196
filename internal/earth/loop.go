package earth

import (
	"context"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/earthview/internal/engine/input"
)

// Display is the window the loop presents to.
type Display interface {
	SwapBuffers()
	GetSize() (int, int)
	PixelRatio() float32
}

// EventSource yields the input of one frame.
type EventSource interface {
	// Update polls pending events and reports whether a quit was requested.
	Update() bool
	Events() []input.Event
}

// Screenshotter saves the current frame.
type Screenshotter interface {
	Capture() (string, error)
}

// Loop drives an Experience until the window closes or Stop is called.
type Loop struct {
	earth   *Experience
	display Display
	events  EventSource
	shots   Screenshotter

	// ShowFPS raises the once-a-second frame rate log from debug to info.
	ShowFPS bool

	stop chan struct{}

	// Set by F12, taken after the next frame is drawn.
	shotPending bool
}

// NewLoop creates a frame loop. shots may be nil.
func NewLoop(earth *Experience, display Display, events EventSource, shots Screenshotter) *Loop {
	return &Loop{
		earth:   earth,
		display: display,
		events:  events,
		shots:   shots,
		stop:    make(chan struct{}),
	}
}

// Stop makes Run return after the current frame. Safe to call from any
// goroutine, more than once.
func (l *Loop) Stop() {
	select {
	case <-l.stop:
	default:
		close(l.stop)
	}
}

// Run ticks the experience once per presented frame. Buffer swaps are
// vsync'd, so the display sets the pace.
func (l *Loop) Run(ctx context.Context) error {
	log := l.earth.log

	w, h := l.display.GetSize()
	if err := l.earth.Resize(w, h, l.display.PixelRatio()); err != nil {
		return err
	}

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	log.Info("starting frame loop")

	for {
		select {
		case <-ctx.Done():
			log.Info("frame loop cancelled", zap.Error(ctx.Err()))
			return nil
		case <-l.stop:
			log.Info("frame loop stopped")
			return nil
		default:
		}

		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		if l.events.Update() {
			log.Info("quit requested")
			return nil
		}
		quit, err := l.handle(l.events.Events())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		l.earth.Tick()
		if l.shotPending {
			l.shotPending = false
			l.screenshot()
		}
		l.display.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			level := zap.DebugLevel
			if l.ShowFPS {
				level = zap.InfoLevel
			}
			log.Log(level, "fps", zap.Int("count", frameCount), zap.String("dt", fmt.Sprintf("%.2fms", float64(dt.Microseconds())/1000)))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
}

func (l *Loop) handle(events []input.Event) (bool, error) {
	for _, ev := range events {
		switch ev.Type {
		case input.EventWindowResize:
			if err := l.earth.Resize(ev.Width, ev.Height, l.display.PixelRatio()); err != nil {
				return false, err
			}
		case input.EventKeyDown:
			switch ev.Key {
			case sdl.SCANCODE_ESCAPE:
				return true, nil
			case sdl.SCANCODE_F12:
				l.shotPending = l.shots != nil
			}
		default:
			l.earth.HandleEvent(ev)
		}
	}
	return false, nil
}

// screenshot must run between drawing and the buffer swap; the back
// buffer is undefined once swapped.
func (l *Loop) screenshot() {
	path, err := l.shots.Capture()
	if err != nil {
		l.earth.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	l.earth.log.Info("screenshot saved", zap.String("path", path))
}
