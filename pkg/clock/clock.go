package clock

import "time"

// Clock supplies the timestamp applied to audited writes. Every mutating
// repository call takes exactly one reading and applies it uniformly to the
// record being written.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// System returns a Clock backed by the wall clock, in UTC.
func System() Clock {
	return systemClock{}
}
