package providers

import "time"

// Clock is the single source of wall-clock time for state that expires.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func NewClockProvider() Clock {
	return systemClock{}
}
