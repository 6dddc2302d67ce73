package testutil

import (
	"sync/atomic"
	"time"
)

// StepClock returns a Now func whose first reading is start and whose every
// later reading is step after the previous one, so an elapsed time measured
// between two calls is always exactly step.
func StepClock(start time.Time, step time.Duration) func() time.Time {
	var calls atomic.Int64
	return func() time.Time {
		n := calls.Add(1) - 1
		return start.Add(time.Duration(n) * step)
	}
}
