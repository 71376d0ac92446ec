// Package anim provides time-based scalar animations: a value eases from a
// start toward a target over a fixed duration, evaluated against wall-clock
// time. Nothing here owns a goroutine or a timer; callers sample values at
// whatever rate they repaint.
package anim

import (
	"time"
)

// Func maps normalized progress in [0,1] to an eased fraction in [0,1].
type Func func(x float64) float64

// Linear applies no easing.
func Linear(x float64) float64 { return x }

// EaseOutCubic decelerates toward the target.
func EaseOutCubic(x float64) float64 {
	inv := 1 - x
	return 1 - inv*inv*inv
}

// EaseInCubic accelerates away from the start.
func EaseInCubic(x float64) float64 { return x * x * x }

// Scalar animates a float64 between two values over a fixed duration.
type Scalar struct {
	from      float64
	to        float64
	startedAt time.Time
	duration  time.Duration
	ease      Func
}

// NewScalar returns a Scalar already settled at v.
func NewScalar(v float64) *Scalar {
	return &Scalar{from: v, to: v, ease: Linear}
}

// Start cancels any in-flight animation and restarts from `from` toward
// `to`, beginning at `at`.
func (s *Scalar) Start(from, to float64, at time.Time, d time.Duration, ease Func) {
	s.from = from
	s.to = to
	s.startedAt = at
	s.duration = d
	s.ease = ease
}

// ValueAt samples the animation at time t. Before the start it returns the
// start value; at or past the end it returns exactly the target.
func (s *Scalar) ValueAt(t time.Time) float64 {
	if s.duration <= 0 || !t.Before(s.startedAt.Add(s.duration)) {
		return s.to
	}
	if t.Before(s.startedAt) {
		return s.from
	}
	x := float64(t.Sub(s.startedAt)) / float64(s.duration)
	return s.from + s.ease(x)*(s.to-s.from)
}

// DoneAt reports whether the animation has settled at time t.
func (s *Scalar) DoneAt(t time.Time) bool {
	return s.duration <= 0 || !t.Before(s.startedAt.Add(s.duration))
}

// Stage is one leg of a Sequence: ease from wherever the previous leg ended
// toward To over Duration.
type Stage struct {
	To       float64
	Duration time.Duration
	Ease     Func
}

// Sequence runs stages back to back, one shot per Start. Until started it
// sits at its initial value; after the last stage it sits at the final
// stage's target.
type Sequence struct {
	initial   float64
	stages    []Stage
	startedAt time.Time
	started   bool
}

// NewSequence builds an unstarted Sequence resting at initial.
func NewSequence(initial float64, stages ...Stage) *Sequence {
	return &Sequence{initial: initial, stages: stages}
}

// Start begins the sequence from its first stage at time at.
func (q *Sequence) Start(at time.Time) {
	q.startedAt = at
	q.started = true
}

// Total returns the summed duration of all stages.
func (q *Sequence) Total() time.Duration {
	var d time.Duration
	for _, st := range q.stages {
		d += st.Duration
	}
	return d
}

// ValueAt samples the sequence at time t.
func (q *Sequence) ValueAt(t time.Time) float64 {
	if !q.started {
		return q.initial
	}
	if t.Before(q.startedAt) {
		return q.initial
	}
	elapsed := t.Sub(q.startedAt)
	from := q.initial
	for _, st := range q.stages {
		if elapsed < st.Duration {
			x := float64(elapsed) / float64(st.Duration)
			return from + st.Ease(x)*(st.To-from)
		}
		elapsed -= st.Duration
		from = st.To
	}
	return from
}

// RunningAt reports whether the sequence is mid-flight at time t.
func (q *Sequence) RunningAt(t time.Time) bool {
	if !q.started || t.Before(q.startedAt) {
		return false
	}
	return t.Before(q.startedAt.Add(q.Total()))
}
