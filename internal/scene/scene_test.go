package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/alexgh05/ITEC-Project-sub000/internal/canvas"
	"github.com/alexgh05/ITEC-Project-sub000/internal/culture"
)

func programsUnderTest() map[culture.ID]func(*canvas.Recorder, float64) {
	c := New(rand.New(rand.NewSource(7)))
	out := make(map[culture.ID]func(*canvas.Recorder, float64))
	for _, id := range c.IDs() {
		fn := c.Resolve(id)
		out[id] = func(r *canvas.Recorder, t float64) { fn(r, t) }
	}
	return out
}

func TestNewCoversEveryRenderedCulture(t *testing.T) {
	c := New(nil)
	for _, id := range []culture.ID{culture.Default, culture.Tokyo, culture.NewYork, culture.Lagos, culture.Seoul, culture.London} {
		if !c.Has(id) {
			t.Errorf("missing program for %s", id)
		}
	}
	if c.Has(culture.Berlin) {
		t.Error("berlin should fall back to the default program")
	}
}

func TestProgramsZeroArea(t *testing.T) {
	for id, run := range programsUnderTest() {
		r := canvas.NewRecorder(0, 0)
		run(r, 1.5)
		if r.Draws() != 0 {
			t.Errorf("%s: expected no draws at 0x0, got %d", id, r.Draws())
		}
	}
}

func TestProgramsLargeSurface(t *testing.T) {
	for id, run := range programsUnderTest() {
		r := canvas.NewRecorder(4000, 4000)
		for _, ts := range []float64{0, 0.016, 5, 3600} {
			run(r, ts)
		}
		if r.Draws() == 0 {
			t.Errorf("%s: expected draws", id)
		}
		if r.NonFinite != 0 {
			t.Errorf("%s: %d non-finite coordinates", id, r.NonFinite)
		}
		if r.Depth() != 0 {
			t.Errorf("%s: unbalanced push/pop, depth %d", id, r.Depth())
		}
	}
}

func TestProgramsBoundedWork(t *testing.T) {
	for id, run := range programsUnderTest() {
		huge := canvas.NewRecorder(40000, 40000)
		run(huge, 2)
		if huge.Draws() > 200000 {
			t.Errorf("%s: draw count grew unbounded: %d", id, huge.Draws())
		}
	}
}

func TestProgramsTinySurface(t *testing.T) {
	for id, run := range programsUnderTest() {
		r := canvas.NewRecorder(1, 1)
		run(r, 0.5)
		if r.NonFinite != 0 {
			t.Errorf("%s: %d non-finite coordinates", id, r.NonFinite)
		}
	}
}

func TestProgramsOnRaster(t *testing.T) {
	c := New(rand.New(rand.NewSource(1)))
	for _, id := range c.IDs() {
		cv := canvas.New(64, 48)
		s, err := cv.Context()
		if err != nil {
			t.Fatalf("context: %v", err)
		}
		c.Resolve(id)(s, 2.5)
		img := cv.Image()
		if img == nil || img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
			t.Errorf("%s: unexpected image %v", id, img)
		}
	}
}

func TestCycle(t *testing.T) {
	tests := []struct {
		i      int
		t      float64
		period float64
		n      int
		want   int
	}{
		{0, 0, 4, 3, 0},
		{0, 4.1, 4, 3, 1},
		{1, 8.5, 4, 3, 0},
		{0, -5, 4, 3, 1},
		{2, math.NaN(), 4, 3, 2},
		{0, math.Inf(1), 4, 3, 0},
		{5, 1, 4, 0, 0},
	}
	for _, tt := range tests {
		if got := cycle(tt.i, tt.t, tt.period, tt.n); got != tt.want {
			t.Errorf("cycle(%d, %v, %v, %d) = %d, want %d", tt.i, tt.t, tt.period, tt.n, got, tt.want)
		}
	}
}

func TestWrap(t *testing.T) {
	if got := wrap(-1, 10); got != 9 {
		t.Errorf("wrap(-1, 10) = %v", got)
	}
	if got := wrap(25, 10); got != 5 {
		t.Errorf("wrap(25, 10) = %v", got)
	}
}

func TestHashStable(t *testing.T) {
	for i := 0; i < 50; i++ {
		v := hash(i)
		if v < 0 || v >= 1 || v != hash(i) {
			t.Fatalf("hash(%d) = %v", i, v)
		}
	}
}
