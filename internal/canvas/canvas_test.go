package canvas

import (
	"image/color"
	"testing"

	"github.com/gogpu/gg"

	"github.com/alexgh05/ITEC-Project-sub000/internal/render"
	"github.com/alexgh05/ITEC-Project-sub000/internal/viewport"
)

func TestCanvasZeroAreaIsInert(t *testing.T) {
	c := New(0, 0)
	s, err := c.Context()
	if err != nil {
		t.Fatalf("context: %v", err)
	}
	s.Clear()
	s.SetColor(gg.RGB(1, 0, 0))
	s.DrawCircle(10, 10, 5)
	s.Fill()
	s.FillText("x", 1, 1, 12)

	img := c.Snapshot(0.5, color.Black)
	if img.Bounds().Dx() != 0 || img.Bounds().Dy() != 0 {
		t.Errorf("expected empty snapshot, got %v", img.Bounds())
	}
}

func TestCanvasResize(t *testing.T) {
	c := New(10, 10)
	c.Resize(40, 20)
	if c.Width() != 40 || c.Height() != 20 {
		t.Fatalf("expected 40x20, got %dx%d", c.Width(), c.Height())
	}
	c.Resize(0, 20)
	if c.Width() != 0 {
		t.Fatalf("expected zero width, got %d", c.Width())
	}
	c.Resize(-5, -5)
	if c.Width() != 0 || c.Height() != 0 {
		t.Fatalf("negative sizes should clamp to zero, got %dx%d", c.Width(), c.Height())
	}
	c.Resize(8, 6)
	if b := c.Image().Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Fatalf("image bounds %v after regrow", b)
	}
}

func TestCanvasResizeClampsOversize(t *testing.T) {
	c := New(4, 4)
	c.Resize(3037000499, 3037000499)
	if c.Width() != viewport.MaxSide || c.Height() != viewport.MaxSide {
		t.Fatalf("expected %dx%d, got %dx%d", viewport.MaxSide, viewport.MaxSide, c.Width(), c.Height())
	}

	c.Resize(3037000500, 3)
	if c.Width() != viewport.MaxSide || c.Height() != 3 {
		t.Fatalf("expected %dx3, got %dx%d", viewport.MaxSide, c.Width(), c.Height())
	}
	c.Clear()
	c.SetColor(gg.RGBA{R: 1, A: 1})
	c.DrawRectangle(0, 0, float64(c.Width()), float64(c.Height()))
	c.Fill()
	if b := c.Image().Bounds(); b.Dx() != viewport.MaxSide || b.Dy() != 3 {
		t.Errorf("image bounds %v", b)
	}
}

func TestCanvasSnapshotComposites(t *testing.T) {
	c := New(4, 4)
	c.SetColor(gg.RGB(1, 1, 1))
	c.DrawRectangle(0, 0, 4, 4)
	c.Fill()

	base := color.RGBA{A: 255}
	img := c.Snapshot(0, base)
	if got := img.RGBAAt(1, 1); got != base {
		t.Errorf("zero opacity should show only the base, got %v", got)
	}

	img = c.Snapshot(1, base)
	if got := img.RGBAAt(1, 1); got.R < 200 {
		t.Errorf("full opacity should show the white fill, got %v", got)
	}
}

func TestCanvasLostContext(t *testing.T) {
	c := New(4, 4)
	c.Lose()
	if _, err := c.Context(); err != render.ErrNoContext {
		t.Fatalf("expected ErrNoContext, got %v", err)
	}
	c.Restore()
	if _, err := c.Context(); err != nil {
		t.Fatalf("restored context: %v", err)
	}
}

func TestRecorderCounts(t *testing.T) {
	r := NewRecorder(10, 10)
	r.Push()
	r.MoveTo(0, 0)
	r.LineTo(1, 1)
	r.Stroke()
	r.DrawCircle(0, 0, 1)
	r.Fill()
	r.Pop()
	r.LineTo(nan(), 0)

	if r.PathOps != 3 || r.Fills != 1 || r.Strokes != 1 {
		t.Errorf("unexpected counters %+v", r)
	}
	if r.Depth() != 0 || r.MaxDepth != 1 {
		t.Errorf("unexpected depth %d / %d", r.Depth(), r.MaxDepth)
	}
	if r.NonFinite != 1 {
		t.Errorf("expected one non-finite coordinate, got %d", r.NonFinite)
	}

	r.Fail = true
	if _, err := r.Context(); err != render.ErrNoContext {
		t.Errorf("expected ErrNoContext, got %v", err)
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}
