package frame

import "time"

// Manual is a Scheduler advanced by hand. It drives tests, benchmarks and
// offline exports on simulated time.
type Manual struct {
	queue
	now   time.Time
	ticks int
}

var _ Scheduler = (*Manual)(nil)

// NewManual starts simulated time at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time { return m.now }

func (m *Manual) Ticks() int { return m.ticks }

// Step fires the pending callbacks at now and returns how many ran.
func (m *Manual) Step(now time.Time) int {
	m.now = now
	m.ticks++
	return m.fire(now)
}

// Advance steps n ticks spaced d apart and returns the callbacks fired.
func (m *Manual) Advance(d time.Duration, n int) int {
	fired := 0
	for i := 0; i < n; i++ {
		fired += m.Step(m.now.Add(d))
	}
	return fired
}
