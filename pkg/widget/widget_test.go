package widget

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/voltring/voltring/pkg/sensor"
)

func TestHandleEventDismissal(t *testing.T) {
	w := &Widget{state: NewState(), originX: 40, originY: 1}

	rightClick := func(x, y int) tcell.Event {
		return tcell.NewEventMouse(x, y, tcell.ButtonSecondary, tcell.ModNone)
	}
	leftClick := func(x, y int) tcell.Event {
		return tcell.NewEventMouse(x, y, tcell.ButtonPrimary, tcell.ModNone)
	}

	tests := []struct {
		name     string
		ev       tcell.Event
		wantKeep bool
	}{
		{name: "right-click inside dismisses", ev: rightClick(40+centerX, 1+centerY), wantKeep: false},
		{name: "right-click on the top-left corner dismisses", ev: rightClick(40, 1), wantKeep: false},
		{name: "right-click outside is ignored", ev: rightClick(5, 5), wantKeep: true},
		{name: "left-click inside is ignored", ev: leftClick(40+centerX, 1+centerY), wantKeep: true},
		{name: "mouse motion is ignored", ev: tcell.NewEventMouse(40+centerX, 1+centerY, tcell.ButtonNone, tcell.ModNone), wantKeep: true},
		{name: "escape dismisses", ev: tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), wantKeep: false},
		{name: "q dismisses", ev: tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), wantKeep: false},
		{name: "ctrl-c dismisses", ev: tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), wantKeep: false},
		{name: "other keys are ignored", ev: tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), wantKeep: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.handleEvent(tt.ev); got != tt.wantKeep {
				t.Errorf("handleEvent() = %t, want %t", got, tt.wantKeep)
			}
		})
	}
}

func TestInBounds(t *testing.T) {
	w := &Widget{originX: 40, originY: 1}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{name: "top-left corner", x: 40, y: 1, want: true},
		{name: "bottom-right corner", x: 40 + boxWidth - 1, y: 1 + boxHeight - 1, want: true},
		{name: "just left of the box", x: 39, y: 5, want: false},
		{name: "just past the right edge", x: 40 + boxWidth, y: 5, want: false},
		{name: "above the box", x: 45, y: 0, want: false},
		{name: "below the box", x: 45, y: 1 + boxHeight, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.inBounds(tt.x, tt.y); got != tt.want {
				t.Errorf("inBounds(%d, %d) = %t, want %t", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestAnimatingAtGoesIdle(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	s := NewState()
	if s.AnimatingAt(t0) {
		t.Error("fresh state reports animating")
	}

	s.Apply(sensor.Status{Percent: 70, Plugged: true}, t0)
	if !s.AnimatingAt(t0.Add(500 * time.Millisecond)) {
		t.Error("not animating mid-transition")
	}
	if s.AnimatingAt(t0.Add(percentAnimDuration)) {
		t.Error("still animating after percent and pulse both settled")
	}
}
