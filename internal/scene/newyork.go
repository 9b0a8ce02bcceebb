package scene

import (
	"math"

	"github.com/alexgh05/ITEC-Project-sub000/internal/render"
)

func (p *programs) newYork(s render.Surface, t float64) {
	w, h, ok := dims(s)
	if !ok {
		return
	}
	backdrop(s, w, h,
		render.Stop(0, rgba("#0f172a", 1)),
		render.Stop(1, rgba("#334155", 1)))

	street := h * 0.86
	lit := rgba("#fde68a", 0.85)
	dark := rgba("#1e293b", 0.9)

	// secondary buildings
	skyline(s, p.rng, w, street, h*0.45, 11, rgba("#111827", 0.95), lit, dark)

	// landmark tower
	lw := math.Max(24, w*0.08)
	lh := h * 0.68
	lx := w*0.5 - lw/2
	s.SetColor(rgba("#0b1220", 1))
	s.DrawRectangle(lx, street-lh, lw, lh)
	s.Fill()
	s.MoveTo(lx+lw*0.15, street-lh)
	s.LineTo(lx+lw/2, street-lh-lw*0.9)
	s.LineTo(lx+lw*0.85, street-lh)
	s.ClosePath()
	s.Fill()
	s.SetLineWidth(2)
	s.MoveTo(lx+lw/2, street-lh-lw*0.9)
	s.LineTo(lx+lw/2, street-lh-lw*1.6)
	s.Stroke()
	beacon := 0.5 + 0.5*math.Sin(t*4)
	glow(s, lx+lw/2, street-lh-lw*1.6, lw*0.4, rgba("#ef4444", beacon))
	windows(s, p.rng, tower{x: lx, w: lw, h: lh, seed: 7001}, street, lit, dark, 0.01)

	// street grid
	s.SetColor(rgba("#0f172a", 1))
	s.DrawRectangle(0, street, w, h-street)
	s.Fill()
	s.SetColor(rgba("#facc15", 0.25))
	s.SetLineWidth(1)
	lanes := 3
	for i := 1; i <= lanes; i++ {
		y := street + (h-street)*float64(i)/float64(lanes+1)
		s.MoveTo(0, y)
		s.LineTo(w, y)
	}
	avenues := clampCount(w/120, 2, 60)
	for i := 0; i <= avenues; i++ {
		x := w * float64(i) / float64(avenues)
		s.MoveTo(x, street)
		s.LineTo(w/2+(x-w/2)*1.6, h)
	}
	s.Stroke()

	// floating records
	rr := math.Max(8, math.Min(w, h)*0.05)
	for i := 0; i < 3; i++ {
		fi := float64(i)
		x := w*(0.18+0.32*fi) + math.Sin(t*0.4+fi*2)*40
		y := h*0.22 + math.Cos(t*0.5+fi)*30
		vinyl(s, x, y, rr, t*2+fi, neonLabel(i))
	}

	// turntable
	tw := math.Max(40, math.Min(w*0.18, 220))
	tx, ty := w-tw*1.15, street-tw*0.75
	s.SetColor(rgba("#1f2937", 0.95))
	s.DrawRoundedRectangle(tx, ty, tw, tw*0.7, 8)
	s.Fill()
	vinyl(s, tx+tw*0.4, ty+tw*0.35, tw*0.28, t*3.5, "#f97316")
	arm := 0.35 + 0.05*math.Sin(t*0.7)
	s.SetColor(rgba("#e5e7eb", 0.9))
	s.SetLineWidth(math.Max(1, tw*0.02))
	ax, ay := tx+tw*0.88, ty+tw*0.1
	s.MoveTo(ax, ay)
	s.LineTo(ax-math.Sin(arm)*tw*0.4, ay+math.Cos(arm)*tw*0.4)
	s.Stroke()
}

func neonLabel(i int) string {
	return []string{"#ef4444", "#3b82f6", "#f5b700"}[i%3]
}

// vinyl paints a record with grooves and a rotating label mark.
func vinyl(s render.Surface, x, y, r, angle float64, label string) {
	if r <= 0 {
		return
	}
	s.SetColor(rgba("#050505", 0.95))
	s.DrawCircle(x, y, r)
	s.Fill()

	s.SetColor(rgba("#3f3f46", 0.6))
	s.SetLineWidth(0.7)
	for g := 0.5; g < 0.95; g += 0.12 {
		s.DrawCircle(x, y, r*g)
	}
	s.Stroke()

	s.SetColor(rgba(label, 1))
	s.DrawCircle(x, y, r*0.32)
	s.Fill()

	s.SetColor(rgba("#fafafa", 0.8))
	s.SetLineWidth(1)
	s.MoveTo(x, y)
	s.LineTo(x+math.Cos(angle)*r*0.3, y+math.Sin(angle)*r*0.3)
	s.Stroke()
}
