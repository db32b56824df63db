package ports

import "time"

// TimerHandle is a cancellable scheduled task.
type TimerHandle interface {
	// Cancel stops the task if it has not fired yet. Returns false when
	// the task already fired or was already cancelled. Cancellation alone
	// is not relied on for correctness; the engine's sequence numbers are
	// the authoritative stale-result guard.
	Cancel() bool
}

// Scheduler schedules a function to run once after a delay.
// The default implementation wraps time.AfterFunc; tests may substitute
// their own to control timing.
type Scheduler interface {
	After(d time.Duration, fn func()) TimerHandle
}

type timerHandle struct {
	t *time.Timer
}

func (h timerHandle) Cancel() bool { return h.t.Stop() }

type clockScheduler struct{}

func (clockScheduler) After(d time.Duration, fn func()) TimerHandle {
	return timerHandle{t: time.AfterFunc(d, fn)}
}

// SystemScheduler returns the wall-clock Scheduler used in production.
func SystemScheduler() Scheduler { return clockScheduler{} }
