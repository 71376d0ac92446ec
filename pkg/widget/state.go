package widget

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/voltring/voltring/pkg/anim"
	"github.com/voltring/voltring/pkg/sensor"
)

const (
	percentAnimDuration = time.Second
	pulseGrowDuration   = 150 * time.Millisecond
	pulseShrinkDuration = 250 * time.Millisecond
	pulsePeakScale      = 1.1
)

// State holds the two animated values the gauge is drawn from: the displayed
// percent easing toward the last reading, and the one-shot plug-in pulse.
// It is owned by the widget's event loop and never touched concurrently.
type State struct {
	percent *anim.Scalar
	pulse   *anim.Sequence
	plugged bool
}

func NewState() *State {
	return &State{
		percent: anim.NewScalar(0),
		pulse: anim.NewSequence(1.0,
			anim.Stage{To: pulsePeakScale, Duration: pulseGrowDuration, Ease: anim.EaseOutCubic},
			anim.Stage{To: 1.0, Duration: pulseShrinkDuration, Ease: anim.EaseInCubic},
		),
	}
}

// Apply folds a fresh power-supply reading into the animation state.
//
// A plugged transition false->true fires the pulse, unless one is already
// mid-flight (a rapid unplug/replug does not restart it). The percent
// animation is always cancelled and restarted from the currently displayed
// value, so back-to-back readings stay visually continuous.
func (s *State) Apply(st sensor.Status, now time.Time) {
	if st.Plugged && !s.plugged {
		if s.pulse.RunningAt(now) {
			logrus.Debug("plug-in pulse already running, not restarting")
		} else {
			logrus.Debug("plugged in, starting pulse")
			s.pulse.Start(now)
		}
	}
	s.plugged = st.Plugged

	from := s.percent.ValueAt(now)
	s.percent.Start(from, float64(st.Percent), now, percentAnimDuration, anim.EaseOutCubic)
}

// PercentAt samples the displayed percent at time t.
func (s *State) PercentAt(t time.Time) float64 { return s.percent.ValueAt(t) }

// PulseScaleAt samples the pulse scale at time t. It is 1.0 except during
// the 400ms window after a plug-in event.
func (s *State) PulseScaleAt(t time.Time) float64 { return s.pulse.ValueAt(t) }

// Plugged reports the plugged state of the last applied reading.
func (s *State) Plugged() bool { return s.plugged }

// AnimatingAt reports whether any animated value is still changing at t.
func (s *State) AnimatingAt(t time.Time) bool {
	return !s.percent.DoneAt(t) || s.pulse.RunningAt(t)
}
