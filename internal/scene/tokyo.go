package scene

import (
	"math"

	"github.com/alexgh05/ITEC-Project-sub000/internal/render"
)

var signage = []string{"TOKYO", "NEON", "24H", "ARCADE", "RAMEN", "KARAOKE", "CITY POP", "SHIBUYA"}

var neon = []string{"#ff2e88", "#00e5ff", "#b026ff", "#ffe600"}

func (p *programs) tokyo(s render.Surface, t float64) {
	w, h, ok := dims(s)
	if !ok {
		return
	}
	backdrop(s, w, h,
		render.Stop(0, rgba("#2a0038", 1)),
		render.Stop(0.55, rgba("#5b0a6e", 1)),
		render.Stop(1, rgba("#14001f", 1)))

	grid(s, w, h, 48, t*18, rgba("#ff2e88", 0.12))

	// signage panels
	panels := clampCount(w/260, 2, 10)
	for i := 0; i < panels; i++ {
		fi := float64(i)
		pw := math.Max(40, math.Min(180, w*0.14))
		ph := pw * 0.45
		x := (w - pw) * (fi + 0.5) / float64(panels)
		y := h*(0.12+0.18*hash(i+40)) + math.Sin(t*0.6+fi*1.7)*12
		col := neon[i%len(neon)]
		pulse := 0.65 + 0.35*math.Sin(t*3+fi)
		if flicker(p.rng, 0.01) {
			pulse *= 0.3
		}

		glow(s, x+pw/2, y+ph/2, pw*0.9, rgba(col, 0.18*pulse))
		s.SetColor(rgba("#0d0014", 0.85))
		s.DrawRoundedRectangle(x, y, pw, ph, 6)
		s.Fill()
		s.SetColor(rgba(col, pulse))
		s.SetLineWidth(2)
		s.DrawRoundedRectangle(x, y, pw, ph, 6)
		s.Stroke()
		s.FillText(signage[cycle(i, t, 4, len(signage))], x+pw*0.1, y+ph*0.65, ph*0.42)
	}

	// vehicles
	cars := 2
	if w > 900 {
		cars = 3
	}
	for i := 0; i < cars; i++ {
		fi := float64(i)
		cw := math.Max(30, math.Min(160, w*0.1))
		speed := 90 + 50*fi
		x := wrap(t*speed+hash(i+7)*w, w+cw*2) - cw
		if i%2 == 1 {
			x = w - x - cw
		}
		y := h*0.9 + fi*cw*0.12
		car(s, x, y, cw, rgba("#1b1030", 1), rgba(neon[(i+1)%len(neon)], 0.7))
	}

	// glow particles
	n := clampCount(w*h/18000, 12, 70)
	for i := 0; i < n; i++ {
		fi := float64(i)
		x := wrap(hash(i)*w+math.Sin(t*0.4+fi)*40+t*8, w)
		y := wrap(hash(i+500)*h-t*(10+20*hash(i+900)), h)
		r := 6 + 14*hash(i+300)
		a := 0.25 + 0.2*math.Sin(t*2+fi) + jitter(p.rng, 0.1)
		glow(s, x, y, r, rgba(neon[i%len(neon)], a))
	}
}
