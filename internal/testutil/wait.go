package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds gateway and machine calls in unit tests.
const DefaultTimeout = 5 * time.Second

// Context returns a context that expires before the test deadline and is
// cancelled on cleanup.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if d, isDeadliner := t.(interface{ Deadline() (time.Time, bool) }); isDeadliner {
		if deadline, ok := d.Deadline(); ok {
			if left := time.Until(deadline) - time.Second; left > 0 && left < timeout {
				timeout = left
			}
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}

// Eventually polls cond every interval until it holds or timeout passes.
// A machine leaving Loading from another goroutine is the usual caller.
func Eventually(t testing.TB, timeout, interval time.Duration, cond func() bool, msg string) {
	t.Helper()
	ctx := Context(t, timeout)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for !cond() {
		select {
		case <-ctx.Done():
			if msg == "" {
				msg = "condition not met before timeout"
			}
			t.Fatalf("%s", msg)
		case <-ticker.C:
		}
	}
}
