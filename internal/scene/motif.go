package scene

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/alexgh05/ITEC-Project-sub000/internal/render"
)

const tau = 2 * math.Pi

// hash maps an index to a stable pseudo-random value in [0, 1).
func hash(i int) float64 {
	v := math.Sin(float64(i)*12.9898+78.233) * 43758.5453
	return v - math.Floor(v)
}

// wrap returns v modulo m in [0, m). m <= 0 yields 0.
func wrap(v, m float64) float64 {
	if m <= 0 {
		return 0
	}
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	return r
}

// clampCount turns a size-derived quantity into a bounded loop count.
func clampCount(v float64, lo, hi int) int {
	if math.IsNaN(v) || v < float64(lo) {
		return lo
	}
	if v > float64(hi) {
		return hi
	}
	return int(v)
}

func clamp01(v float64) float64 { return math.Max(0, math.Min(1, v)) }

func rgba(hex string, a float64) gg.RGBA {
	c := gg.Hex(hex)
	c.A = clamp01(a)
	return c
}

// dims returns the surface size as floats and whether anything can be drawn.
func dims(s render.Surface) (w, h float64, ok bool) {
	w, h = float64(s.Width()), float64(s.Height())
	return w, h, w > 0 && h > 0
}

// flicker reports whether a window should invert this frame.
func flicker(rng render.Rand, rate float64) bool {
	return rng != nil && rng.Float64() < rate
}

func jitter(rng render.Rand, amount float64) float64 {
	if rng == nil {
		return 0
	}
	return (rng.Float64() - 0.5) * amount
}

func backdrop(s render.Surface, w, h float64, stops ...gg.ColorStop) {
	s.SetLinearGradient(0, 0, 0, h, stops...)
	s.DrawRectangle(0, 0, w, h)
	s.Fill()
}

// grid strokes a regular line grid with the given cell size and scroll offset.
func grid(s render.Surface, w, h, cell, offset float64, c gg.RGBA) {
	if cell <= 0 {
		return
	}
	s.SetColor(c)
	s.SetLineWidth(1)
	cols := clampCount(w/cell, 0, 400)
	rows := clampCount(h/cell, 0, 400)
	for i := 0; i <= cols; i++ {
		x := float64(i)*cell + wrap(offset, cell)
		s.MoveTo(x, 0)
		s.LineTo(x, h)
	}
	for j := 0; j <= rows; j++ {
		y := float64(j)*cell + wrap(offset, cell)
		s.MoveTo(0, y)
		s.LineTo(w, y)
	}
	s.Stroke()
}

// glow paints a soft radial particle.
func glow(s render.Surface, x, y, r float64, c gg.RGBA) {
	if r <= 0 {
		return
	}
	inner := c
	mid := c
	mid.A = c.A * 0.35
	outer := c
	outer.A = 0
	s.SetRadialGradient(x, y, 0, r, render.Stop(0, inner), render.Stop(0.4, mid), render.Stop(1, outer))
	s.DrawCircle(x, y, r)
	s.Fill()
}

// heart builds a heart path centred on (x, y) from two cubic lobes.
func heart(s render.Surface, x, y, size float64) {
	top := y - size*0.25
	s.MoveTo(x, top)
	s.CubicTo(x, y-size*0.55, x-size*0.6, y-size*0.55, x-size*0.6, top)
	s.CubicTo(x-size*0.6, y+size*0.15, x, y+size*0.35, x, y+size*0.6)
	s.CubicTo(x, y+size*0.35, x+size*0.6, y+size*0.15, x+size*0.6, top)
	s.CubicTo(x+size*0.6, y-size*0.55, x, y-size*0.55, x, top)
	s.ClosePath()
}

// star builds an n-point star polygon.
func star(s render.Surface, x, y, outer, inner float64, points int, rot float64) {
	if points < 2 {
		return
	}
	step := math.Pi / float64(points)
	for i := 0; i < points*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := rot - math.Pi/2 + float64(i)*step
		px, py := x+r*math.Cos(a), y+r*math.Sin(a)
		if i == 0 {
			s.MoveTo(px, py)
		} else {
			s.LineTo(px, py)
		}
	}
	s.ClosePath()
}

type tower struct {
	x, w, h float64
	seed    int
}

// windows fills a building's window grid. Lit state is stable per window and
// inverted by occasional flicker.
func windows(s render.Surface, rng render.Rand, b tower, base float64, lit, dark gg.RGBA, rate float64) {
	const cellW, cellH = 10.0, 16.0
	cols := clampCount((b.w-4)/cellW, 0, 24)
	rows := clampCount((b.h-8)/cellH, 0, 60)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			on := hash(b.seed*977+r*31+c) > 0.45
			if flicker(rng, rate) {
				on = !on
			}
			if on {
				s.SetColor(lit)
			} else {
				s.SetColor(dark)
			}
			s.DrawRectangle(b.x+3+float64(c)*cellW, base-b.h+6+float64(r)*cellH, cellW-4, cellH-7)
			s.Fill()
		}
	}
}

// skyline paints a row of buildings of hash-derived height standing on base.
func skyline(s render.Surface, rng render.Rand, w, base, maxH float64, seed int, body, lit, dark gg.RGBA) {
	n := clampCount(w/70, 3, 90)
	bw := w / float64(n)
	for i := 0; i < n; i++ {
		b := tower{
			x:    float64(i) * bw,
			w:    bw * (0.75 + 0.2*hash(seed+i*7)),
			h:    maxH * (0.3 + 0.7*hash(seed+i*13)),
			seed: seed + i,
		}
		s.SetColor(body)
		s.DrawRectangle(b.x, base-b.h, b.w, b.h)
		s.Fill()
		windows(s, rng, b, base, lit, dark, 0.002)
	}
}

// wheel paints an observation wheel with spokes and capsules orbiting at angle.
func wheel(s render.Surface, cx, cy, r, angle float64, spokes int, rim, capsule gg.RGBA) {
	if r <= 0 || spokes <= 0 {
		return
	}
	s.SetColor(rim)
	s.SetLineWidth(math.Max(1, r*0.03))
	s.DrawCircle(cx, cy, r)
	s.Stroke()
	s.DrawCircle(cx, cy, r*0.92)
	s.Stroke()

	s.SetLineWidth(math.Max(0.5, r*0.01))
	for i := 0; i < spokes; i++ {
		a := angle + tau*float64(i)/float64(spokes)
		s.MoveTo(cx, cy)
		s.LineTo(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	s.Stroke()

	// legs
	s.SetLineWidth(math.Max(1, r*0.04))
	s.MoveTo(cx, cy)
	s.LineTo(cx-r*0.5, cy+r*1.15)
	s.MoveTo(cx, cy)
	s.LineTo(cx+r*0.5, cy+r*1.15)
	s.Stroke()

	s.SetColor(capsule)
	cw := math.Max(2, r*0.1)
	for i := 0; i < spokes; i++ {
		a := angle + tau*float64(i)/float64(spokes)
		px, py := cx+r*math.Cos(a), cy+r*math.Sin(a)
		s.DrawRoundedRectangle(px-cw/2, py-cw*0.35, cw, cw*0.7, cw*0.35)
		s.Fill()
	}
}

// car paints a low-profile vehicle silhouette of width w with its wheels on y.
func car(s render.Surface, x, y, w float64, body, light gg.RGBA) {
	if w <= 0 {
		return
	}
	h := w * 0.22
	s.SetColor(body)
	s.MoveTo(x, y-h*0.35)
	s.LineTo(x+w*0.08, y-h*0.7)
	s.LineTo(x+w*0.3, y-h*0.78)
	s.QuadraticTo(x+w*0.45, y-h*1.35, x+w*0.68, y-h*0.85)
	s.LineTo(x+w*0.95, y-h*0.7)
	s.LineTo(x+w, y-h*0.35)
	s.LineTo(x+w, y-h*0.1)
	s.LineTo(x, y-h*0.1)
	s.ClosePath()
	s.Fill()

	s.SetColor(rgba("#0a0a0f", 1))
	s.DrawCircle(x+w*0.22, y-h*0.1, h*0.28)
	s.DrawCircle(x+w*0.78, y-h*0.1, h*0.28)
	s.Fill()

	glow(s, x+w, y-h*0.45, h*0.9, light)
}

// cycle returns the index into a list of n entries that advances every period
// seconds, offset by i. Safe for negative or non-finite t.
func cycle(i int, t, period float64, n int) int {
	if n <= 0 {
		return 0
	}
	step := 0
	if period > 0 && !math.IsNaN(t) && !math.IsInf(t, 0) {
		step = int(math.Mod(math.Floor(t/period), float64(n)))
	}
	return ((i+step)%n + n) % n
}
