package render

import "github.com/gogpu/gg"

// Surface is a 2D drawing context. Paths are built with the path and shape
// methods and consumed by Fill or Stroke.
type Surface interface {
	Width() int
	Height() int
	Clear()

	Push()
	Pop()
	Translate(x, y float64)
	Rotate(angle float64)
	Scale(x, y float64)

	SetColor(c gg.RGBA)
	SetLinearGradient(x0, y0, x1, y1 float64, stops ...gg.ColorStop)
	SetRadialGradient(cx, cy, r0, r1 float64, stops ...gg.ColorStop)
	SetLineWidth(w float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()

	DrawRectangle(x, y, w, h float64)
	DrawRoundedRectangle(x, y, w, h, r float64)
	DrawCircle(x, y, r float64)
	DrawEllipse(x, y, rx, ry float64)
	DrawArc(x, y, r, angle1, angle2 float64)

	Fill()
	Stroke()

	// FillText draws s with its baseline at (x, y) in the current color.
	FillText(s string, x, y, size float64)
}

// RenderFunc paints one full frame. t is the elapsed time in seconds.
type RenderFunc func(s Surface, t float64)

// Rand is the decorative randomness a program draws from. *math/rand.Rand
// satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Stop is shorthand for building gradient stops.
func Stop(offset float64, c gg.RGBA) gg.ColorStop {
	return gg.ColorStop{Offset: offset, Color: c}
}
