package effects

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

type TimeSpan = timespan.TimeSpan

func NewTimeSpan(from, to time.Time) TimeSpan {
	return timespan.BetweenTimes(from, to)
}

// Timed runs fn and returns the span it took along with its result.
func Timed[T any](fn func() (T, error)) (T, TimeSpan, error) {
	start := time.Now()
	v, err := fn()
	return v, NewTimeSpan(start, time.Now()), err
}
