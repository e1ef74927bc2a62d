package wmediumd

//
// Rolling send-time statistics
//
// SendTimeStats samples computed send times and reports percentiles
// with github.com/montanaflynn/stats, on demand rather than printing
// periodically. Like Metrics, it is nil-safe so wiring it in is purely
// additive.
//

import (
	"sync"

	"github.com/montanaflynn/stats"
)

// sendTimeStatsWindow bounds memory use: only the most recent
// observations are kept, matching cmd/calibrate's fixed-size sample
// buffer.
const sendTimeStatsWindow = 4096

// SendTimeStats accumulates computed send times (in microseconds) and
// reports percentiles over a bounded trailing window.
type SendTimeStats struct {
	mu      sync.Mutex
	samples []float64
	next    int
	full    bool
}

// NewSendTimeStats returns an empty SendTimeStats.
func NewSendTimeStats() *SendTimeStats {
	return &SendTimeStats{samples: make([]float64, sendTimeStatsWindow)}
}

// Observe records one send-time sample, in microseconds.
func (s *SendTimeStats) Observe(usec int) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples[s.next] = float64(usec)
	s.next = (s.next + 1) % len(s.samples)
	if s.next == 0 {
		s.full = true
	}
}

// Percentile reports the p-th percentile (0-100) of the window
// collected so far. It returns 0, false if no samples have been
// observed yet.
func (s *SendTimeStats) Percentile(p float64) (float64, bool) {
	if s == nil {
		return 0, false
	}
	s.mu.Lock()
	var data []float64
	if s.full {
		data = append([]float64(nil), s.samples...)
	} else {
		data = append([]float64(nil), s.samples[:s.next]...)
	}
	s.mu.Unlock()
	if len(data) == 0 {
		return 0, false
	}
	v, err := stats.Percentile(data, p)
	if err != nil {
		return 0, false
	}
	return v, true
}
