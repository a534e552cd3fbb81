package domain

import "time"

// Direction of one sampling run.
type Direction int

const (
	Skip Direction = iota
	HomeToWork
	WorkToHome
)

func (d Direction) String() string {
	switch d {
	case HomeToWork:
		return "HOME_TO_WORK"
	case WorkToHome:
		return "WORK_TO_HOME"
	default:
		return "SKIP"
	}
}

// Sampling windows in seconds since local midnight. The two windows are
// disjoint on purpose: the 10:30-10:40 gap leaves no ambiguous boundary,
// and neither window wraps past midnight.
const (
	morningStart = 5*3600 + 30*60  // 05:30:00
	morningEnd   = 10*3600 + 30*60 // 10:30:00
	eveningStart = 10*3600 + 40*60 // 10:40:00
	eveningEnd   = 18*3600 + 30*60 // 18:30:00
)

// ChooseDirection maps the local wall-clock time to a sampling direction.
// A forced direction wins unconditionally. Both windows are inclusive at
// both ends; outside them the run is skipped, which is a normal outcome.
func ChooseDirection(now time.Time, forced Direction) Direction {
	if forced != Skip {
		return forced
	}

	secs := now.Hour()*3600 + now.Minute()*60 + now.Second()
	switch {
	case secs >= morningStart && secs <= morningEnd:
		return HomeToWork
	case secs >= eveningStart && secs <= eveningEnd:
		return WorkToHome
	}

	return Skip
}
