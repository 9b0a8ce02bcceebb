package scene

import (
	"math"

	"github.com/alexgh05/ITEC-Project-sub000/internal/render"
)

var confettiColors = []string{"#16a34a", "#facc15", "#ef4444", "#8b5cf6", "#f97316"}

func (p *programs) lagos(s render.Surface, t float64) {
	w, h, ok := dims(s)
	if !ok {
		return
	}
	backdrop(s, w, h,
		render.Stop(0, rgba("#ffb347", 1)),
		render.Stop(0.5, rgba("#ff7e5f", 1)),
		render.Stop(1, rgba("#0077be", 1)))

	// sun
	sr := math.Min(w, h) * (0.22 + 0.015*math.Sin(t*0.8))
	glow(s, w*0.75, h*0.3, sr*1.8, rgba("#fff3b0", 0.55))
	s.SetColor(rgba("#ffd166", 0.95))
	s.DrawCircle(w*0.75, h*0.3, sr*0.45)
	s.Fill()

	step := math.Max(4, w/120)
	shore := func(x float64) float64 { return h*0.74 + math.Sin(x*0.02+t)*6 }

	// wave bands, back to front
	bands := []string{"#0369a1", "#0284c7", "#38bdf8"}
	for k, col := range bands {
		fk := float64(k)
		top := h * (0.56 + 0.05*fk)
		s.SetColor(rgba(col, 0.55+0.15*fk))
		s.MoveTo(0, shore(0))
		for x := 0.0; x <= w+step; x += step {
			s.LineTo(x, top+math.Sin(x*0.015+t*(1+0.3*fk)+fk)*8)
		}
		s.LineTo(w, shore(w))
		s.ClosePath()
		s.Fill()
	}

	// beach
	s.SetColor(rgba("#f4d03f", 1))
	s.MoveTo(0, h)
	for x := 0.0; x <= w+step; x += step {
		s.LineTo(x, shore(x))
	}
	s.LineTo(w, h)
	s.ClosePath()
	s.Fill()

	// palms
	for i, fx := range []float64{0.08, 0.3, 0.92} {
		palm(s, w*fx, shore(w*fx)+4, h*0.38, t, i)
	}

	// pineapples stay put
	n := clampCount(w/140, 3, 30)
	pr := math.Max(6, math.Min(w, h)*0.03)
	for i := 0; i < n; i++ {
		pineapple(s, w*(float64(i)+0.5)/float64(n), h-pr*1.6, pr)
	}

	// confetti
	c := clampCount(w*h/25000, 15, 90)
	for i := 0; i < c; i++ {
		fi := float64(i)
		x := wrap(hash(i+61)*w+math.Sin(t+fi)*20, w)
		y := wrap(hash(i+83)*h+t*30*(0.5+hash(i+5)), h)
		size := 4 + 6*hash(i+17)
		s.Push()
		s.Translate(x, y)
		s.Rotate(t*(0.5+hash(i+29)) + fi)
		s.Scale(1, 0.3+0.7*math.Abs(math.Sin(t*3+fi)))
		s.SetColor(rgba(confettiColors[i%len(confettiColors)], 0.85))
		switch i % 3 {
		case 0:
			s.DrawRectangle(-size/2, -size/2, size, size)
		case 1:
			s.MoveTo(0, -size/2)
			s.LineTo(size/2, size/2)
			s.LineTo(-size/2, size/2)
			s.ClosePath()
		default:
			s.DrawCircle(0, 0, size/2)
		}
		s.Fill()
		s.Pop()
	}
}

// palm paints a curved trunk whose crown fans fronds that sway and turn slowly.
func palm(s render.Surface, x, base, height, t float64, seed int) {
	if height <= 0 {
		return
	}
	lean := (hash(seed+3) - 0.5) * height * 0.4
	cx, cy := x+lean, base-height

	s.SetColor(rgba("#3f2a14", 1))
	s.SetLineWidth(math.Max(2, height*0.05))
	s.MoveTo(x, base)
	s.QuadraticTo(x+lean*0.1, base-height*0.5, cx, cy)
	s.Stroke()

	fronds := 7
	length := height * 0.45
	spin := t*0.1 + float64(seed)
	sway := math.Sin(t*1.3+float64(seed)) * 0.15
	s.SetColor(rgba("#14532d", 0.95))
	for f := 0; f < fronds; f++ {
		a := spin + sway + tau*float64(f)/float64(fronds)
		tipX, tipY := cx+math.Cos(a)*length, cy+math.Sin(a)*length*0.6+length*0.25
		nx, ny := -math.Sin(a)*length*0.12, math.Cos(a)*length*0.12
		mx, my := (cx+tipX)/2, (cy+tipY)/2-length*0.15
		s.MoveTo(cx, cy)
		s.QuadraticTo(mx+nx, my+ny, tipX, tipY)
		s.QuadraticTo(mx-nx, my-ny, cx, cy)
		s.ClosePath()
	}
	s.Fill()
}

// pineapple paints a body with a diamond pattern and a leafy crown.
func pineapple(s render.Surface, x, y, r float64) {
	s.SetColor(rgba("#eab308", 1))
	s.DrawEllipse(x, y, r*0.75, r)
	s.Fill()

	s.SetColor(rgba("#a16207", 0.8))
	s.SetLineWidth(math.Max(0.5, r*0.06))
	for k := -2; k <= 2; k++ {
		off := float64(k) * r * 0.35
		s.MoveTo(x-r*0.7+off, y-r*0.7)
		s.LineTo(x+r*0.7+off, y+r*0.7)
		s.MoveTo(x+r*0.7+off, y-r*0.7)
		s.LineTo(x-r*0.7+off, y+r*0.7)
	}
	s.Stroke()

	s.SetColor(rgba("#15803d", 1))
	for l := -2; l <= 2; l++ {
		fl := float64(l)
		s.MoveTo(x+fl*r*0.15, y-r*0.9)
		s.LineTo(x+fl*r*0.35, y-r*1.9+math.Abs(fl)*r*0.3)
		s.LineTo(x+fl*r*0.15+r*0.12, y-r*0.9)
		s.ClosePath()
	}
	s.Fill()
}
