package slo

import (
	"sort"
	"sync"
	"time"
)

// windowSize bounds the number of recent request durations kept for
// percentile estimation.
const windowSize = 4096

// Tracker accumulates request outcomes for SLO calculation. The HTTP
// middleware calls Record per request; a scheduled job calls Publish to
// push the derived ratios to the Prometheus gauges.
//
// Thread safety: Tracker is safe for concurrent use.
type Tracker struct {
	mu        sync.Mutex
	total     uint64
	errors    uint64
	durations []time.Duration
	next      int
	filled    bool
}

// Default is the process-wide tracker used by the HTTP middleware.
var Default = NewTracker()

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{durations: make([]time.Duration, windowSize)}
}

// Record adds one request outcome. Responses with status >= 500 count
// against availability.
func (t *Tracker) Record(status int, duration time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.total++
	if status >= 500 {
		t.errors++
	}
	t.durations[t.next] = duration
	t.next++
	if t.next == windowSize {
		t.next = 0
		t.filled = true
	}
}

// Snapshot returns the current availability ratio, error rate, and
// latency percentiles. With no recorded requests, availability is 1 and
// the other values are 0.
func (t *Tracker) Snapshot() (availability, errorRate, p95, p99 float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.total == 0 {
		return 1, 0, 0, 0
	}
	errorRate = float64(t.errors) / float64(t.total)
	availability = 1 - errorRate

	n := t.next
	if t.filled {
		n = windowSize
	}
	window := make([]time.Duration, n)
	copy(window, t.durations[:n])
	sort.Slice(window, func(a, b int) bool { return window[a] < window[b] })

	p95 = window[percentileIndex(n, 0.95)].Seconds()
	p99 = window[percentileIndex(n, 0.99)].Seconds()
	return availability, errorRate, p95, p99
}

// Publish pushes the current snapshot to the SLO gauges.
func (t *Tracker) Publish() {
	availability, errorRate, p95, p99 := t.Snapshot()
	SLOAvailability.Set(availability)
	SLOErrorRate.Set(errorRate)
	SLOLatencyP95.Set(p95)
	SLOLatencyP99.Set(p99)
}

func percentileIndex(n int, q float64) int {
	idx := int(float64(n)*q) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return idx
}
