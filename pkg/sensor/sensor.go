// Package sensor reads the OS power-supply state and folds it into the
// single {percent, plugged} pair the widget displays.
package sensor

import (
	"github.com/distatus/battery"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Status is one power-supply reading.
type Status struct {
	// Percent is the battery charge in [0,100].
	Percent int
	// Plugged reports whether the machine is on external power.
	Plugged bool
}

// readBatteries is swapped out in tests.
var readBatteries = battery.GetAll

// Read queries every battery known to the OS and aggregates them into one
// Status. A machine with no battery reads as {0, false} with no error.
// Per-battery partial failures are tolerated as long as at least one
// battery yields a usable charge reading.
func Read() (Status, error) {
	bats, err := readBatteries()
	if err != nil {
		errs, partial := err.(battery.Errors)
		if !partial {
			return Status{}, errors.Wrap(err, "reading batteries")
		}
		usable := false
		for i, e := range errs {
			if chargeReadable(e) {
				usable = true
				continue
			}
			logrus.Debugf("battery %d read failed: %v", i, e)
		}
		if !usable {
			return Status{}, errors.Wrap(err, "reading batteries")
		}
	}

	var charge, capacity float64
	plugged := false
	counted := 0
	for i, bat := range bats {
		if err != nil && !chargeReadable(err.(battery.Errors)[i]) {
			continue
		}
		full := bat.Full
		if full == 0 {
			full = bat.Design
		}
		if full == 0 {
			continue
		}
		charge += bat.Current
		capacity += full
		counted++

		switch bat.State {
		case battery.Charging, battery.Full:
			plugged = true
		}
	}

	if counted == 0 || capacity == 0 {
		// No battery present: report an empty, unplugged pack rather
		// than an error.
		return Status{}, nil
	}

	return Status{Percent: clampPercent(charge / capacity * 100), Plugged: plugged}, nil
}

// chargeReadable reports whether a per-battery error from GetAll still left
// the fields we need (state and charge levels) intact.
func chargeReadable(err error) bool {
	if err == nil {
		return true
	}
	pe, ok := err.(battery.ErrPartial)
	if !ok {
		return false
	}
	return pe.State == nil && pe.Current == nil && pe.Full == nil
}

func clampPercent(v float64) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return int(v)
}
