package scene

import (
	"math"
	"math/rand"
	"time"

	"github.com/alexgh05/ITEC-Project-sub000/internal/culture"
	"github.com/alexgh05/ITEC-Project-sub000/internal/render"
)

// programs binds the decorative randomness shared by all six programs.
type programs struct {
	rng render.Rand
}

// New returns the catalog of culture programs drawing noise from rng. A nil
// rng gets a time-seeded source.
func New(rng render.Rand) *render.Catalog {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	p := &programs{rng: rng}
	c, err := render.NewCatalog(map[culture.ID]render.RenderFunc{
		culture.Default: p.neutral,
		culture.Tokyo:   p.tokyo,
		culture.NewYork: p.newYork,
		culture.Lagos:   p.lagos,
		culture.Seoul:   p.seoul,
		culture.London:  p.london,
	})
	if err != nil {
		// the table above always carries a default entry
		panic(err)
	}
	return c
}

// neutral is the low-energy idle backdrop.
func (p *programs) neutral(s render.Surface, t float64) {
	w, h, ok := dims(s)
	if !ok {
		return
	}
	s.SetLinearGradient(0, 0, w, h,
		render.Stop(0, rgba("#f8fafc", 0.05)),
		render.Stop(1, rgba("#cbd5e1", 0.08)))
	s.DrawRectangle(0, 0, w, h)
	s.Fill()

	for i := 0; i < 12; i++ {
		fi := float64(i)
		x := w*(0.1+0.8*hash(i)) + math.Sin(t*0.3+fi)*30
		y := h*hash(i+100) + math.Cos(t*0.2+fi*1.3)*20
		r := 2 + 3*hash(i+200)
		s.SetColor(rgba("#64748b", 0.15+0.08*math.Sin(t+fi)))
		s.DrawCircle(x, y, r)
		s.Fill()
	}
}
