package metrics

import (
	"math"
	"testing"
	"time"

	"github.com/alexgh05/ITEC-Project-sub000/internal/culture"
)

func TestFrameTimes(t *testing.T) {
	m := NewFrameTimes(4)
	for _, d := range []time.Duration{1, 2, 3, 4, 10} {
		m.Observe(Sample{Render: d * time.Millisecond})
	}

	if m.Samples() != 5 {
		t.Errorf("expected 5 samples, got %d", m.Samples())
	}
	if m.Mean() != 4*time.Millisecond {
		t.Errorf("expected mean 4ms, got %v", m.Mean())
	}
	if math.Abs(m.Value()-4) > 1e-9 {
		t.Errorf("expected value 4, got %f", m.Value())
	}
	if m.Max() != 10*time.Millisecond {
		t.Errorf("expected max 10ms, got %v", m.Max())
	}
	if got := m.Series(); len(got) != 4 || got[0] != 2 || got[3] != 10 {
		t.Errorf("unexpected series %v", got)
	}
	if p := m.Percentile(100); p != 10*time.Millisecond {
		t.Errorf("expected p100 10ms, got %v", p)
	}
	if p := m.Percentile(0); p != 2*time.Millisecond {
		t.Errorf("expected p0 2ms, got %v", p)
	}
}

func TestFrameTimesReset(t *testing.T) {
	m := NewFrameTimes(0)
	m.Observe(Sample{Render: time.Millisecond})
	m.Reset()
	if m.Value() != 0 || m.Samples() != 0 || len(m.Series()) != 0 {
		t.Error("expected empty metric after reset")
	}
	if m.Percentile(95) != 0 {
		t.Error("expected zero percentile when empty")
	}
}

func TestBudget(t *testing.T) {
	b := NewBudget(100)
	if b.Value() != 1.0 {
		t.Errorf("expected 1.0 with no samples, got %f", b.Value())
	}
	b.Observe(Sample{Render: 5 * time.Millisecond})
	b.Observe(Sample{Render: 20 * time.Millisecond})
	if b.Value() != 0.5 {
		t.Errorf("expected 0.5, got %f", b.Value())
	}
}

func TestSwitches(t *testing.T) {
	s := NewSwitches()
	for _, id := range []culture.ID{culture.Lagos, culture.Lagos, culture.Berlin, culture.Tokyo, culture.Tokyo} {
		s.Observe(Sample{Culture: id})
	}
	if s.Value() != 2 {
		t.Errorf("expected 2 switches, got %f", s.Value())
	}
}

func TestSetValues(t *testing.T) {
	set := Set{NewFrameTimes(8), NewBudget(60), NewSwitches()}
	set.Observe(Sample{Culture: culture.Seoul, Render: time.Millisecond})
	v := set.Values()
	if len(v) != 3 || v["within_budget"] != 1.0 {
		t.Errorf("unexpected values %v", v)
	}
	set.Reset()
	if set.Values()["frame_ms"] != 0 {
		t.Error("expected reset")
	}
}
