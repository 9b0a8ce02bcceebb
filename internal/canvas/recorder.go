package canvas

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/alexgh05/ITEC-Project-sub000/internal/render"
)

// Recorder is a Surface that rasterizes nothing. It counts drawing calls and
// flags non-finite coordinates, which makes it cheap enough to drive programs
// at any size in tests and benchmarks.
type Recorder struct {
	W, H int

	// Fail makes Context report render.ErrNoContext.
	Fail bool

	Clears    int
	Fills     int
	Strokes   int
	Texts     int
	PathOps   int
	Gradients int
	NonFinite int
	MaxDepth  int

	depth int
}

var _ render.Surface = (*Recorder)(nil)

func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: max(w, 0), H: max(h, 0)}
}

func (r *Recorder) Context() (render.Surface, error) {
	if r.Fail {
		return nil, render.ErrNoContext
	}
	return r, nil
}

func (r *Recorder) Resize(w, h int) { r.W, r.H = max(w, 0), max(h, 0) }

// Depth is the current Push nesting; zero after a well-formed frame.
func (r *Recorder) Depth() int { return r.depth }

// Draws is the number of Fill, Stroke and FillText calls so far.
func (r *Recorder) Draws() int { return r.Fills + r.Strokes + r.Texts }

// Reset zeroes the counters but keeps the size.
func (r *Recorder) Reset() {
	*r = Recorder{W: r.W, H: r.H, Fail: r.Fail}
}

func (r *Recorder) check(vs ...float64) {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			r.NonFinite++
			return
		}
	}
}

func (r *Recorder) Width() int  { return r.W }
func (r *Recorder) Height() int { return r.H }
func (r *Recorder) Clear()      { r.Clears++ }

func (r *Recorder) Push() {
	r.depth++
	r.MaxDepth = max(r.MaxDepth, r.depth)
}

func (r *Recorder) Pop() {
	if r.depth > 0 {
		r.depth--
	}
}

func (r *Recorder) Translate(x, y float64) { r.check(x, y) }
func (r *Recorder) Rotate(angle float64)   { r.check(angle) }
func (r *Recorder) Scale(x, y float64)     { r.check(x, y) }

func (r *Recorder) SetColor(c gg.RGBA) { r.check(c.R, c.G, c.B, c.A) }

func (r *Recorder) SetLinearGradient(x0, y0, x1, y1 float64, stops ...gg.ColorStop) {
	r.Gradients++
	r.check(x0, y0, x1, y1)
	for _, s := range stops {
		r.check(s.Offset, s.Color.A)
	}
}

func (r *Recorder) SetRadialGradient(cx, cy, r0, r1 float64, stops ...gg.ColorStop) {
	r.Gradients++
	r.check(cx, cy, r0, r1)
	for _, s := range stops {
		r.check(s.Offset, s.Color.A)
	}
}

func (r *Recorder) SetLineWidth(w float64) { r.check(w) }

func (r *Recorder) MoveTo(x, y float64)              { r.PathOps++; r.check(x, y) }
func (r *Recorder) LineTo(x, y float64)              { r.PathOps++; r.check(x, y) }
func (r *Recorder) QuadraticTo(cx, cy, x, y float64) { r.PathOps++; r.check(cx, cy, x, y) }
func (r *Recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.PathOps++
	r.check(c1x, c1y, c2x, c2y, x, y)
}
func (r *Recorder) ClosePath() { r.PathOps++ }

func (r *Recorder) DrawRectangle(x, y, w, h float64) { r.PathOps++; r.check(x, y, w, h) }
func (r *Recorder) DrawRoundedRectangle(x, y, w, h, rad float64) {
	r.PathOps++
	r.check(x, y, w, h, rad)
}
func (r *Recorder) DrawCircle(x, y, rad float64)       { r.PathOps++; r.check(x, y, rad) }
func (r *Recorder) DrawEllipse(x, y, rx, ry float64)   { r.PathOps++; r.check(x, y, rx, ry) }
func (r *Recorder) DrawArc(x, y, rad, a1, a2 float64)  { r.PathOps++; r.check(x, y, rad, a1, a2) }
func (r *Recorder) Fill()                              { r.Fills++ }
func (r *Recorder) Stroke()                            { r.Strokes++ }
func (r *Recorder) FillText(s string, x, y, size float64) {
	r.Texts++
	r.check(x, y, size)
}
