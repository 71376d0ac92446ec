// Package widget renders the battery gauge overlay: a radial percent arc,
// battery glyph and plug-in pulse, pinned to the top-right of the terminal
// and refreshed from a once-per-second power-supply poll.
package widget

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/voltring/voltring/pkg/sensor"
)

const (
	pollInterval  = time.Second
	frameInterval = 33 * time.Millisecond // ~30fps while animating

	marginX = 2
	marginY = 1
)

// readStatus is swapped out in tests.
var readStatus = sensor.Read

// Widget owns the screen and the animation state. All fields are accessed
// only from the Run loop goroutine.
type Widget struct {
	screen tcell.Screen
	state  *State

	originX int
	originY int
}

// New initializes the terminal screen and places the gauge in the top-right
// corner.
func New() (*Widget, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "creating screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initializing screen")
	}
	screen.EnableMouse()
	screen.HideCursor()

	w := &Widget{
		screen: screen,
		state:  NewState(),
	}
	w.pin()
	return w, nil
}

// pin positions the gauge against the top-right corner with a fixed margin.
// Called at startup and again on every terminal resize.
func (w *Widget) pin() {
	sw, _ := w.screen.Size()
	w.originX = sw - boxWidth - marginX
	if w.originX < 0 {
		w.originX = 0
	}
	w.originY = marginY
}

// Run drives the widget until it is dismissed: a 1Hz poll ticker feeds the
// sensor into the state machine, a frame ticker repaints while an animation
// is in flight, and terminal events are drained from a channel.
func (w *Widget) Run() error {
	defer w.screen.Fini()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := w.screen.PollEvent()
			if ev == nil { // screen finalized
				return
			}
			events <- ev
		}
	}()

	pollTicker := time.NewTicker(pollInterval)
	defer pollTicker.Stop()
	frameTicker := time.NewTicker(frameInterval)
	defer frameTicker.Stop()

	// Initial reading so the gauge does not sit empty for a second.
	now := time.Now()
	w.poll(now)
	w.draw(now)

	logrus.Debug("widget loop starts")
	for {
		select {
		case ev := <-events:
			if !w.handleEvent(ev) {
				logrus.Debug("widget dismissed")
				return nil
			}
		case <-pollTicker.C:
			now := time.Now()
			w.poll(now)
			w.draw(now)
		case <-frameTicker.C:
			now := time.Now()
			if w.state.AnimatingAt(now) {
				w.draw(now)
			}
		}
	}
}

// poll reads the power supply and applies the reading. A failed read is
// logged and skipped; the gauge keeps showing the previous state until the
// next tick.
func (w *Widget) poll(now time.Time) {
	st, err := readStatus()
	if err != nil {
		logrus.Errorf("failed to read power status: %v", err)
		return
	}
	w.state.Apply(st, now)
}

// handleEvent returns false when the widget should be dismissed.
func (w *Widget) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
			return false
		}
	case *tcell.EventMouse:
		// Secondary (right) click inside the gauge dismisses; the primary
		// button is ignored.
		if ev.Buttons()&tcell.ButtonSecondary != 0 {
			x, y := ev.Position()
			if w.inBounds(x, y) {
				return false
			}
		}
	case *tcell.EventResize:
		w.screen.Sync()
		w.pin()
		w.draw(time.Now())
	}
	return true
}

func (w *Widget) inBounds(x, y int) bool {
	return x >= w.originX && x < w.originX+boxWidth &&
		y >= w.originY && y < w.originY+boxHeight
}
