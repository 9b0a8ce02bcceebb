package scene

import (
	"math"

	"github.com/alexgh05/ITEC-Project-sub000/internal/render"
)

// beat is the pulse the bars and LEDs follow, roughly 140 bpm.
func beat(t float64) float64 {
	return math.Pow(math.Abs(math.Sin(t*math.Pi*140/60)), 3)
}

func (p *programs) london(s render.Surface, t float64) {
	w, h, ok := dims(s)
	if !ok {
		return
	}
	backdrop(s, w, h,
		render.Stop(0, rgba("#020617", 1)),
		render.Stop(1, rgba("#1e3a8a", 1)))
	grid(s, w, h, 48, wrap(t*6, 48), rgba("#1d4ed8", 0.12))

	street := h * 0.9
	pulse := beat(t)

	// equalizer bars
	bars := clampCount(w/30, 8, 120)
	bw := w / float64(bars)
	for i := 0; i < bars; i++ {
		level := 0.15 + 0.55*pulse*hash(i+300) + 0.3*math.Abs(math.Sin(t*3+float64(i)*0.7))
		level += jitter(p.rng, 0.05)
		bh := h * 0.25 * clamp01(level)
		s.SetColor(rgba("#38bdf8", 0.25+0.3*pulse))
		s.DrawRectangle(float64(i)*bw+1, street-bh, math.Max(1, bw-2), bh)
		s.Fill()
	}

	// skyline
	skyline(s, p.rng, w, street, h*0.35, 41, rgba("#0b1120", 0.95), rgba("#fcd34d", 0.7), rgba("#0f172a", 0.9))

	// clock tower
	tw := math.Max(16, w*0.05)
	th := h * 0.55
	tx := w*0.18 - tw/2
	s.SetColor(rgba("#1c1917", 1))
	s.DrawRectangle(tx, street-th, tw, th)
	s.Fill()
	s.MoveTo(tx-tw*0.1, street-th)
	s.LineTo(tx+tw/2, street-th-tw*1.4)
	s.LineTo(tx+tw*1.1, street-th)
	s.ClosePath()
	s.Fill()
	clock(s, tx+tw/2, street-th+tw*0.8, tw*0.38, t)

	// shard
	sx := w * 0.62
	sw := math.Max(20, w*0.07)
	sh := h * 0.62
	s.SetLinearGradient(sx-sw/2, street, sx+sw/2, street-sh,
		render.Stop(0, rgba("#334155", 1)),
		render.Stop(1, rgba("#94a3b8", 1)))
	s.MoveTo(sx-sw/2, street)
	s.LineTo(sx-sw*0.06, street-sh)
	s.LineTo(sx+sw*0.1, street-sh*0.97)
	s.LineTo(sx+sw/2, street)
	s.ClosePath()
	s.Fill()

	// eye
	er := math.Min(w, h) * 0.16
	wheel(s, w*0.84, street-er*1.15, er, t*0.05, 16, rgba("#e2e8f0", 0.75), rgba("#f472b6", 0.9))

	// led dots along the street
	leds := clampCount(w/24, 10, 200)
	for i := 0; i < leds; i++ {
		a := 0.2 + 0.8*pulse*(0.5+0.5*math.Sin(float64(i)*0.9+t*4))
		s.SetColor(rgba([]string{"#ef4444", "#3b82f6", "#f8fafc"}[i%3], a))
		s.DrawCircle((float64(i)+0.5)*w/float64(leds), street+h*0.04, math.Max(1.5, h*0.006))
		s.Fill()
	}

	// falling balaclavas
	n := clampCount(w/160, 4, 25)
	for i := 0; i < n; i++ {
		fi := float64(i)
		size := math.Max(10, math.Min(w, h)*0.035) * (0.8 + 0.5*hash(i+500))
		x := hash(i+510)*w + math.Sin(t*0.7+fi)*15
		y := wrap(hash(i+520)*h+t*40*(0.6+hash(i+530)), h+size*3) - size*1.5
		balaclava(s, x, y, size, math.Sin(t+fi)*0.3)
	}
}

// clock paints a dial with hour and minute hands turning at different rates.
func clock(s render.Surface, x, y, r, t float64) {
	s.SetColor(rgba("#fef3c7", 0.95))
	s.DrawCircle(x, y, r)
	s.Fill()
	s.SetColor(rgba("#1c1917", 1))
	s.SetLineWidth(math.Max(1, r*0.12))
	hour, minute := t*tau/120-math.Pi/2, t*tau/10-math.Pi/2
	s.MoveTo(x, y)
	s.LineTo(x+math.Cos(hour)*r*0.5, y+math.Sin(hour)*r*0.5)
	s.MoveTo(x, y)
	s.LineTo(x+math.Cos(minute)*r*0.8, y+math.Sin(minute)*r*0.8)
	s.Stroke()

	s.SetColor(rgba("#b45309", 0.6))
	s.SetLineWidth(math.Max(0.5, r*0.05))
	s.DrawArc(x, y, r*0.9, hour, hour+math.Mod(minute-hour+2*tau, tau))
	s.Stroke()
}

// balaclava paints a knitted head cover with eye and mouth openings.
func balaclava(s render.Surface, x, y, size, tilt float64) {
	s.Push()
	s.Translate(x, y)
	s.Rotate(tilt)
	s.SetColor(rgba("#111111", 0.9))
	s.DrawEllipse(0, 0, size*0.75, size)
	s.Fill()
	s.SetColor(rgba("#fcd5b5", 0.85))
	s.DrawRoundedRectangle(-size*0.5, -size*0.35, size, size*0.3, size*0.12)
	s.Fill()
	s.DrawEllipse(0, size*0.35, size*0.22, size*0.12)
	s.Fill()
	s.SetColor(rgba("#111111", 1))
	s.DrawCircle(-size*0.22, -size*0.2, size*0.08)
	s.DrawCircle(size*0.22, -size*0.2, size*0.08)
	s.Fill()
	s.Pop()
}
