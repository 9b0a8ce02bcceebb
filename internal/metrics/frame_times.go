package metrics

import (
	"slices"
	"sync"
	"time"
)

// DefaultWindow is how many recent render times FrameTimes keeps for
// percentiles and plots.
const DefaultWindow = 512

// FrameTimes tracks render durations. Value is the mean in milliseconds.
type FrameTimes struct {
	name    string
	mu      sync.Mutex
	window  int
	recent  []time.Duration
	total   time.Duration
	max     time.Duration
	samples int
}

func NewFrameTimes(window int) *FrameTimes {
	if window <= 0 {
		window = DefaultWindow
	}
	return &FrameTimes{name: "frame_ms", window: window}
}

func (f *FrameTimes) Name() string { return f.name }

func (f *FrameTimes) Observe(s Sample) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.samples++
	f.total += s.Render
	f.max = max(f.max, s.Render)
	f.recent = append(f.recent, s.Render)
	if len(f.recent) > f.window {
		f.recent = f.recent[len(f.recent)-f.window:]
	}
}

func (f *FrameTimes) Value() float64 {
	return ms(f.Mean())
}

func (f *FrameTimes) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recent = nil
	f.total, f.max, f.samples = 0, 0, 0
}

func (f *FrameTimes) Samples() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.samples
}

func (f *FrameTimes) Mean() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.samples == 0 {
		return 0
	}
	return f.total / time.Duration(f.samples)
}

func (f *FrameTimes) Max() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.max
}

// Percentile returns the p-th percentile (0..100) over the recent window.
func (f *FrameTimes) Percentile(p float64) time.Duration {
	f.mu.Lock()
	sorted := slices.Clone(f.recent)
	f.mu.Unlock()
	if len(sorted) == 0 {
		return 0
	}
	slices.Sort(sorted)
	p = min(max(p, 0), 100)
	idx := int(p / 100 * float64(len(sorted)-1))
	return sorted[idx]
}

// Series returns the recent window in milliseconds, oldest first.
func (f *FrameTimes) Series() []float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]float64, len(f.recent))
	for i, d := range f.recent {
		out[i] = ms(d)
	}
	return out
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
