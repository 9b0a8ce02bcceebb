// Package canvas provides the drawing surfaces the backdrop paints into: a
// rasterizing Canvas backed by gg and a Recorder that only counts operations.
package canvas

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/alexgh05/ITEC-Project-sub000/internal/render"
	"github.com/alexgh05/ITEC-Project-sub000/internal/viewport"
)

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

func defaultFont() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
	})
	return fontSource, fontErr
}

// Canvas is a raster Surface. A zero-area canvas keeps no pixel buffer and
// turns every drawing call into a no-op.
//
// Canvas is not safe for concurrent use; its owner serializes access.
type Canvas struct {
	dc    *gg.Context
	w, h  int
	lost  bool
	faces map[float64]text.Face
}

var _ render.Surface = (*Canvas)(nil)

func New(w, h int) *Canvas {
	c := &Canvas{faces: map[float64]text.Face{}}
	c.Resize(w, h)
	return c
}

// Context returns the canvas as a drawing surface, or render.ErrNoContext
// after the context has been lost.
func (c *Canvas) Context() (render.Surface, error) {
	if c.lost {
		return nil, render.ErrNoContext
	}
	return c, nil
}

// Lose simulates a lost graphics context; Context fails until Restore.
func (c *Canvas) Lose()    { c.lost = true }
func (c *Canvas) Restore() { c.lost = false }

// Resize reallocates the pixel buffer. Sizes are clamped to
// 0..viewport.MaxSide.
func (c *Canvas) Resize(w, h int) {
	w, h = viewport.Clamp(w), viewport.Clamp(h)
	if w == c.w && h == c.h && (c.dc != nil || w == 0 || h == 0) {
		return
	}
	c.w, c.h = w, h
	if w == 0 || h == 0 {
		if c.dc != nil {
			_ = c.dc.Close()
		}
		c.dc = nil
		return
	}
	if c.dc == nil {
		c.dc = gg.NewContext(w, h)
		return
	}
	if err := c.dc.Resize(w, h); err != nil {
		c.dc = gg.NewContext(w, h)
	}
}

func (c *Canvas) Width() int  { return c.w }
func (c *Canvas) Height() int { return c.h }

func (c *Canvas) Clear() {
	if c.dc != nil {
		c.dc.Clear()
	}
}

func (c *Canvas) Push() {
	if c.dc != nil {
		c.dc.Push()
	}
}

func (c *Canvas) Pop() {
	if c.dc != nil {
		c.dc.Pop()
	}
}

func (c *Canvas) Translate(x, y float64) {
	if c.dc != nil {
		c.dc.Translate(x, y)
	}
}

func (c *Canvas) Rotate(angle float64) {
	if c.dc != nil {
		c.dc.Rotate(angle)
	}
}

func (c *Canvas) Scale(x, y float64) {
	if c.dc != nil {
		c.dc.Scale(x, y)
	}
}

func (c *Canvas) SetColor(col gg.RGBA) {
	if c.dc != nil {
		c.dc.SetFillBrush(gg.Solid(col))
	}
}

func (c *Canvas) SetLinearGradient(x0, y0, x1, y1 float64, stops ...gg.ColorStop) {
	if c.dc == nil {
		return
	}
	g := gg.NewLinearGradientBrush(x0, y0, x1, y1)
	for _, s := range stops {
		g.AddColorStop(s.Offset, s.Color)
	}
	c.dc.SetFillBrush(g)
}

func (c *Canvas) SetRadialGradient(cx, cy, r0, r1 float64, stops ...gg.ColorStop) {
	if c.dc == nil {
		return
	}
	g := gg.NewRadialGradientBrush(cx, cy, r0, r1)
	for _, s := range stops {
		g.AddColorStop(s.Offset, s.Color)
	}
	c.dc.SetFillBrush(g)
}

func (c *Canvas) SetLineWidth(w float64) {
	if c.dc != nil {
		c.dc.SetLineWidth(w)
	}
}

func (c *Canvas) MoveTo(x, y float64) {
	if c.dc != nil {
		c.dc.MoveTo(x, y)
	}
}

func (c *Canvas) LineTo(x, y float64) {
	if c.dc != nil {
		c.dc.LineTo(x, y)
	}
}

func (c *Canvas) QuadraticTo(cx, cy, x, y float64) {
	if c.dc != nil {
		c.dc.QuadraticTo(cx, cy, x, y)
	}
}

func (c *Canvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if c.dc != nil {
		c.dc.CubicTo(c1x, c1y, c2x, c2y, x, y)
	}
}

func (c *Canvas) ClosePath() {
	if c.dc != nil {
		c.dc.ClosePath()
	}
}

func (c *Canvas) DrawRectangle(x, y, w, h float64) {
	if c.dc != nil && w > 0 && h > 0 {
		c.dc.DrawRectangle(x, y, w, h)
	}
}

func (c *Canvas) DrawRoundedRectangle(x, y, w, h, r float64) {
	if c.dc != nil && w > 0 && h > 0 {
		c.dc.DrawRoundedRectangle(x, y, w, h, math.Min(r, math.Min(w, h)/2))
	}
}

func (c *Canvas) DrawCircle(x, y, r float64) {
	if c.dc != nil && r > 0 {
		c.dc.DrawCircle(x, y, r)
	}
}

func (c *Canvas) DrawEllipse(x, y, rx, ry float64) {
	if c.dc != nil && rx > 0 && ry > 0 {
		c.dc.DrawEllipse(x, y, rx, ry)
	}
}

func (c *Canvas) DrawArc(x, y, r, angle1, angle2 float64) {
	if c.dc != nil && r > 0 && angle2 > angle1 {
		c.dc.DrawArc(x, y, r, angle1, angle2)
	}
}

func (c *Canvas) Fill() {
	if c.dc != nil {
		_ = c.dc.Fill()
	}
}

func (c *Canvas) Stroke() {
	if c.dc != nil {
		_ = c.dc.Stroke()
	}
}

func (c *Canvas) FillText(s string, x, y, size float64) {
	if c.dc == nil || s == "" || size <= 0 {
		return
	}
	face := c.face(size)
	if face == nil {
		return
	}
	c.dc.SetFont(face)
	x, y = c.dc.TransformPoint(x, y)
	c.dc.Push()
	c.dc.Identity()
	c.dc.DrawString(s, x, y)
	c.dc.Pop()
}

func (c *Canvas) face(size float64) text.Face {
	size = math.Round(size)
	if f, ok := c.faces[size]; ok {
		return f
	}
	src, err := defaultFont()
	if err != nil || src == nil {
		return nil
	}
	f := src.Face(size)
	c.faces[size] = f
	return f
}

// Image returns the current frame as drawn, without compositing.
func (c *Canvas) Image() image.Image {
	if c.dc == nil {
		return image.NewRGBA(image.Rect(0, 0, c.w, c.h))
	}
	return c.dc.Image()
}

// Page colours the backdrop is composited over.
var (
	LightPage = color.RGBA{0xf8, 0xfa, 0xfc, 0xff}
	DarkPage  = color.RGBA{0x0b, 0x11, 0x20, 0xff}
)

// Page returns the page colour for the dark or light scheme.
func Page(dark bool) color.Color {
	if dark {
		return DarkPage
	}
	return LightPage
}

// Snapshot copies the current frame composited at opacity over base, the
// way the backdrop appears behind the page.
func (c *Canvas) Snapshot(opacity float64, base color.Color) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, c.w, c.h))
	if c.w == 0 || c.h == 0 {
		return dst
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(base), image.Point{}, draw.Src)
	if c.dc == nil {
		return dst
	}
	a := uint8(math.Round(math.Max(0, math.Min(1, opacity)) * 255))
	mask := image.NewUniform(color.Alpha{A: a})
	draw.DrawMask(dst, dst.Bounds(), c.dc.Image(), image.Point{}, mask, image.Point{}, draw.Over)
	return dst
}
