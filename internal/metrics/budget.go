package metrics

import (
	"sync"
	"time"
)

// Budget is the share of frames rendered within a time budget, 1.0 when
// every frame made it.
type Budget struct {
	name    string
	mu      sync.Mutex
	limit   time.Duration
	over    int
	samples int
}

// NewBudget measures frames against the interval of the given frame rate.
func NewBudget(fps int) *Budget {
	if fps <= 0 {
		fps = 60
	}
	return &Budget{name: "within_budget", limit: time.Second / time.Duration(fps)}
}

func (b *Budget) Name() string { return b.name }

func (b *Budget) Observe(s Sample) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.samples++
	if s.Render > b.limit {
		b.over++
	}
}

func (b *Budget) Value() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(b.over)/float64(b.samples)
}

func (b *Budget) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.over, b.samples = 0, 0
}
