package wmediumd

//
// Drop-reason log rate limiting
//
// A misbehaving station or a flaky kernel can produce a tight loop of
// identical drop-reason warnings; golang.org/x/time/rate caps each
// distinct reason string to a modest steady rate instead of silencing
// it outright.
//

import (
	"sync"

	"golang.org/x/time/rate"
)

const dropLogRatePerSecond = 1
const dropLogBurst = 3

// dropRateLimiter caps how often a given drop reason may be logged,
// keyed by reason string so that "unknown-sender" spam does not also
// suppress "malformed-frame" warnings.
type dropRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newDropRateLimiter() *dropRateLimiter {
	return &dropRateLimiter{limiters: make(map[string]*rate.Limiter)}
}

// Allow reports whether a log line for reason may be emitted now.
func (d *dropRateLimiter) Allow(reason string) bool {
	d.mu.Lock()
	lim, ok := d.limiters[reason]
	if !ok {
		lim = rate.NewLimiter(dropLogRatePerSecond, dropLogBurst)
		d.limiters[reason] = lim
	}
	d.mu.Unlock()
	return lim.Allow()
}
