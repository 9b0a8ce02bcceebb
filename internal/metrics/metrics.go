// Package metrics aggregates per-frame observations made by the dispatcher.
package metrics

import (
	"time"

	"github.com/alexgh05/ITEC-Project-sub000/internal/culture"
)

// Sample describes one rendered frame.
type Sample struct {
	Culture culture.ID
	Render  time.Duration
	Width   int
	Height  int
}

// Observer receives one sample per rendered frame.
type Observer interface {
	Observe(s Sample)
}

type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

// Set fans one sample out to several metrics.
type Set []Metric

func (s Set) Observe(sample Sample) {
	for _, m := range s {
		m.Observe(sample)
	}
}

func (s Set) Reset() {
	for _, m := range s {
		m.Reset()
	}
}

// Values maps metric names to their current values.
func (s Set) Values() map[string]float64 {
	out := make(map[string]float64, len(s))
	for _, m := range s {
		out[m.Name()] = m.Value()
	}
	return out
}
