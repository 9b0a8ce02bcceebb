package scene

import (
	"math"

	"github.com/alexgh05/ITEC-Project-sub000/internal/render"
)

func (p *programs) seoul(s render.Surface, t float64) {
	w, h, ok := dims(s)
	if !ok {
		return
	}
	s.SetLinearGradient(0, 0, w, h,
		render.Stop(0, rgba("#ffd1dc", 1)),
		render.Stop(0.35, rgba("#e0c3fc", 1)),
		render.Stop(0.7, rgba("#c2e9fb", 1)),
		render.Stop(1, rgba("#fdfcdc", 1)))
	s.DrawRectangle(0, 0, w, h)
	s.Fill()

	// twinkling stars
	stars := clampCount(w*h/40000, 8, 60)
	for i := 0; i < stars; i++ {
		fi := float64(i)
		a := 0.3 + 0.7*math.Abs(math.Sin(t*2+fi))
		r := 4 + 5*hash(i+400)
		s.SetColor(rgba("#fff7ae", a))
		star(s, hash(i+410)*w, hash(i+420)*h*0.6, r, r*0.45, 5, t*0.2+fi)
		s.Fill()
	}

	// hearts drifting upward
	hearts := clampCount(w/80, 6, 40)
	for i := 0; i < hearts; i++ {
		fi := float64(i)
		size := 10 + 14*hash(i+30)
		x := hash(i+10)*w + math.Sin(t+fi)*20
		y := h + size - wrap(t*25*(0.5+hash(i+20))+hash(i+50)*h, h+size*2)
		s.SetColor(rgba([]string{"#ff6b9d", "#ff8fc7", "#f472b6"}[i%3], 0.6))
		heart(s, x, y, size)
		s.Fill()
	}

	// music notes scrolling right
	notes := clampCount(w/150, 4, 24)
	for i := 0; i < notes; i++ {
		fi := float64(i)
		x := wrap(hash(i+70)*w+t*40, w+40) - 20
		y := h*(0.25+0.3*hash(i+80)) + math.Sin(t*1.5+fi)*15
		note(s, x, y, 8+4*hash(i+90), i%2 == 0)
	}

	// cats
	cats := clampCount(w/170, 3, 20)
	cr := math.Max(6, math.Min(w, h)*0.035)
	for i := 0; i < cats; i++ {
		cat(s, w*(float64(i)+0.5)/float64(cats), h-cr*1.2, cr, t+float64(i))
	}
}

// note paints an eighth note, or a beamed pair when double is set.
func note(s render.Surface, x, y, r float64, double bool) {
	s.SetColor(rgba("#6d28d9", 0.75))
	s.DrawEllipse(x, y, r, r*0.7)
	s.Fill()
	s.SetLineWidth(math.Max(1, r*0.2))
	s.MoveTo(x+r*0.9, y)
	s.LineTo(x+r*0.9, y-r*3.2)
	if double {
		s.LineTo(x+r*3.4, y-r*3.6)
		s.LineTo(x+r*3.4, y-r*0.4)
	} else {
		s.QuadraticTo(x+r*2.2, y-r*2.4, x+r*1.8, y-r*1.4)
	}
	s.Stroke()
	if double {
		s.DrawEllipse(x+r*2.5, y-r*0.4, r, r*0.7)
		s.Fill()
	}
}

// cat paints a sitting cat with a swaying tail; phase drives the sway.
func cat(s render.Surface, x, y, r, phase float64) {
	s.SetColor(rgba("#4b3b5c", 0.85))
	s.DrawEllipse(x, y, r*1.1, r*0.8)
	s.Fill()
	s.DrawCircle(x-r*0.2, y-r*1.1, r*0.6)
	s.Fill()

	hx, hy := x-r*0.2, y-r*1.1
	s.MoveTo(hx-r*0.55, hy-r*0.2)
	s.LineTo(hx-r*0.45, hy-r*0.95)
	s.LineTo(hx-r*0.1, hy-r*0.5)
	s.ClosePath()
	s.MoveTo(hx+r*0.55, hy-r*0.2)
	s.LineTo(hx+r*0.45, hy-r*0.95)
	s.LineTo(hx+r*0.1, hy-r*0.5)
	s.ClosePath()
	s.Fill()

	sway := math.Sin(phase*2) * r * 0.6
	s.SetLineWidth(math.Max(1, r*0.18))
	s.MoveTo(x+r, y+r*0.3)
	s.CubicTo(x+r*1.8, y, x+r*1.6+sway, y-r, x+r*1.2+sway, y-r*1.4)
	s.Stroke()

	s.SetColor(rgba("#fef3c7", 0.9))
	s.DrawCircle(hx-r*0.2, hy, r*0.08)
	s.DrawCircle(hx+r*0.2, hy, r*0.08)
	s.Fill()
}
