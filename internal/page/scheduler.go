package page

import (
	"sort"
	"time"
)

// Scheduler runs presentation callbacks after a delay
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Immediate runs every callback inline, so a page is always in its end state
type Immediate struct{}

// After calls fn right away
func (Immediate) After(_ time.Duration, fn func()) { fn() }

// Manual queues callbacks until Advance is called
type Manual struct {
	now     time.Duration
	pending []scheduled
	seq     int
}

type scheduled struct {
	at  time.Duration
	seq int
	fn  func()
}

// After queues fn to run once the clock passes d from now
func (m *Manual) After(d time.Duration, fn func()) {
	m.seq++
	m.pending = append(m.pending, scheduled{at: m.now + d, seq: m.seq, fn: fn})
}

// Advance moves the clock forward and runs every callback that is due, in order
func (m *Manual) Advance(d time.Duration) {
	m.now += d
	for {
		sort.SliceStable(m.pending, func(i, j int) bool {
			if m.pending[i].at == m.pending[j].at {
				return m.pending[i].seq < m.pending[j].seq
			}
			return m.pending[i].at < m.pending[j].at
		})
		if len(m.pending) == 0 || m.pending[0].at > m.now {
			return
		}
		next := m.pending[0]
		m.pending = m.pending[1:]
		next.fn()
	}
}

// Pending returns the number of queued callbacks
func (m *Manual) Pending() int {
	return len(m.pending)
}
