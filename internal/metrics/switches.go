package metrics

import (
	"sync"

	"github.com/alexgh05/ITEC-Project-sub000/internal/culture"
)

// Switches counts how often consecutive frames changed culture.
type Switches struct {
	name    string
	mu      sync.Mutex
	last    culture.ID
	started bool
	count   int
}

func NewSwitches() *Switches {
	return &Switches{name: "culture_switches"}
}

func (c *Switches) Name() string { return c.name }

func (c *Switches) Observe(s Sample) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started && s.Culture != c.last {
		c.count++
	}
	c.last, c.started = s.Culture, true
}

func (c *Switches) Value() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return float64(c.count)
}

func (c *Switches) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count, c.started, c.last = 0, false, ""
}
