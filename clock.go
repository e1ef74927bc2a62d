package wmediumd

//
// Monotonic clock and absolute-deadline timer
//

import "time"

// Clock is a monotonic time source. Wall-clock time is never used by
// the engine; production code uses SystemClock, tests inject a fake.
type Clock interface {
	// Now returns the current monotonic time.
	Now() time.Time
}

// SystemClock is the production Clock, backed by time.Now (which, on
// every supported Go platform, carries a monotonic reading).
type SystemClock struct{}

var _ Clock = SystemClock{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Timer is a single absolute-deadline one-shot timer. Arm is idempotent:
// calling it again before it fires replaces the prior deadline. When no
// frame is queued, the timer is disarmed. The timer MAY fire slightly
// late; it MUST NOT fire early.
//
// Re-armed on every queue mutation rather than ticking periodically,
// since the engine needs to wake at an absolute deadline, not on a
// fixed period.
type Timer struct {
	clock Clock
	t     *time.Timer
	armed bool
}

// NewTimer creates a disarmed Timer.
func NewTimer(clock Clock) *Timer {
	t := time.NewTimer(time.Hour)
	if !t.Stop() {
		<-t.C
	}
	return &Timer{clock: clock, t: t}
}

// Arm (re-)arms the timer for deadline, replacing any previously armed
// deadline. A deadline at or before now fires as soon as possible
// rather than panicking.
func (tm *Timer) Arm(deadline time.Time) {
	tm.drainIfArmed()
	d := deadline.Sub(tm.clock.Now())
	if d <= 0 {
		d = time.Nanosecond
	}
	tm.t.Reset(d)
	tm.armed = true
}

// Disarm stops the timer without a pending fire.
func (tm *Timer) Disarm() {
	tm.drainIfArmed()
}

// drainIfArmed stops the underlying timer and drains a stale fire if
// one is already pending on the channel, so a subsequent Reset is safe
// per the time.Timer contract.
func (tm *Timer) drainIfArmed() {
	if !tm.t.Stop() && tm.armed {
		select {
		case <-tm.t.C:
		default:
		}
	}
	tm.armed = false
}

// C returns the channel that becomes readable when the timer fires.
func (tm *Timer) C() <-chan time.Time {
	return tm.t.C
}
