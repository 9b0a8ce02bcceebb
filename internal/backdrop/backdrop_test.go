package backdrop_test

import (
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/alexgh05/ITEC-Project-sub000/internal/backdrop"
	"github.com/alexgh05/ITEC-Project-sub000/internal/canvas"
	"github.com/alexgh05/ITEC-Project-sub000/internal/culture"
	"github.com/alexgh05/ITEC-Project-sub000/internal/frame"
	"github.com/alexgh05/ITEC-Project-sub000/internal/metrics"
	"github.com/alexgh05/ITEC-Project-sub000/internal/render"
	"github.com/alexgh05/ITEC-Project-sub000/internal/scene"
	"github.com/alexgh05/ITEC-Project-sub000/internal/storage"
	"github.com/alexgh05/ITEC-Project-sub000/internal/theme"
	"github.com/alexgh05/ITEC-Project-sub000/internal/viewport"
)

const tick = time.Second / 60

type call struct {
	id   culture.ID
	w, h int
	t    float64
}

// spy is a catalog whose programs only record that they ran.
type spy struct {
	calls []call
}

func (s *spy) catalog() *render.Catalog {
	programs := map[culture.ID]render.RenderFunc{}
	for _, id := range []culture.ID{culture.Default, culture.Tokyo, culture.NewYork, culture.Lagos, culture.Seoul, culture.London} {
		programs[id] = func(surf render.Surface, t float64) {
			s.calls = append(s.calls, call{id: id, w: surf.Width(), h: surf.Height(), t: t})
		}
	}
	c, err := render.NewCatalog(programs)
	Expect(err).NotTo(HaveOccurred())
	return c
}

func (s *spy) last() call {
	Expect(s.calls).NotTo(BeEmpty())
	return s.calls[len(s.calls)-1]
}

type fixedState struct{ st theme.State }

func (f *fixedState) State() theme.State { return f.st }

var _ = Describe("Dispatcher", func() {
	var (
		rec   *canvas.Recorder
		view  *viewport.Window
		sched *frame.Manual
		store *theme.Store
		progs *spy
		d     *backdrop.Dispatcher
	)

	BeforeEach(func() {
		rec = canvas.NewRecorder(0, 0)
		view = viewport.New(800, 600)
		sched = frame.NewManual(time.Unix(1000, 0))
		store = theme.New()
		progs = &spy{}
		d = backdrop.New(rec, view, sched, store, progs.catalog(), backdrop.WithClock(sched.Now))
	})

	AfterEach(func() {
		d.Unmount()
	})

	Describe("Mount", func() {
		It("sizes the canvas to the viewport and requests one tick", func() {
			Expect(d.Mount()).To(BeTrue())
			Expect(rec.W).To(Equal(800))
			Expect(rec.H).To(Equal(600))
			Expect(sched.Pending()).To(Equal(1))
			Expect(view.Listeners()).To(Equal(1))
		})

		It("is a no-op when already mounted", func() {
			Expect(d.Mount()).To(BeTrue())
			Expect(d.Mount()).To(BeTrue())
			Expect(sched.Pending()).To(Equal(1))
			Expect(view.Listeners()).To(Equal(1))
		})

		It("starts nothing when the surface is unavailable", func() {
			rec.Fail = true
			Expect(d.Mount()).To(BeFalse())
			Expect(d.Mounted()).To(BeFalse())
			Expect(sched.Pending()).To(BeZero())
			Expect(view.Listeners()).To(BeZero())

			sched.Advance(tick, 10)
			Expect(progs.calls).To(BeEmpty())
		})
	})

	Describe("ticking", func() {
		It("invokes the active culture's program once per tick", func() {
			for _, id := range []culture.ID{culture.Default, culture.Tokyo, culture.NewYork, culture.Lagos, culture.Seoul, culture.London} {
				store.Replace(theme.State{Culture: id})
				d.Mount()
				progs.calls = nil

				sched.Advance(tick, 5)
				Expect(progs.calls).To(HaveLen(5))
				for _, c := range progs.calls {
					Expect(c.id).To(Equal(id))
				}
				d.Unmount()
			}
		})

		It("clears the surface before every draw", func() {
			d.Mount()
			sched.Advance(tick, 3)
			Expect(rec.Clears).To(Equal(3))
		})

		It("passes seconds elapsed since mount", func() {
			d.Mount()
			sched.Advance(500*time.Millisecond, 4)
			Expect(progs.last().t).To(BeNumerically("~", 2.0, 1e-9))
		})

		It("falls back to the default program for unknown cultures", func() {
			src := &fixedState{st: theme.State{Culture: culture.ID("atlantis")}}
			d = backdrop.New(rec, view, sched, src, progs.catalog(), backdrop.WithClock(sched.Now))
			Expect(d.Mount()).To(BeTrue())

			Expect(func() { sched.Advance(tick, 2) }).NotTo(Panic())
			Expect(progs.last().id).To(Equal(culture.Default))
			Expect(d.Stats().Last.Program).To(Equal(culture.Default))
			Expect(d.Stats().Last.Culture).To(Equal(culture.ID("atlantis")))
		})

		It("treats an empty culture as default", func() {
			src := &fixedState{}
			d = backdrop.New(rec, view, sched, src, progs.catalog(), backdrop.WithClock(sched.Now))
			d.Mount()
			sched.Advance(tick, 1)
			Expect(progs.last().id).To(Equal(culture.Default))
		})

		It("keeps exactly one outstanding frame across culture switches", func() {
			d.Mount()
			for _, id := range []culture.ID{culture.Tokyo, culture.Seoul, culture.Default, culture.London, culture.Berlin} {
				store.SetCulture(id)
				Expect(sched.Pending()).To(Equal(1))
				sched.Advance(tick, 2)
				Expect(sched.Pending()).To(Equal(1))
			}
			Expect(progs.calls).To(HaveLen(10))
		})

		It("skips frames while the surface is lost and resumes after", func() {
			d.Mount()
			rec.Fail = true
			sched.Advance(tick, 3)
			Expect(progs.calls).To(BeEmpty())
			Expect(sched.Pending()).To(Equal(1))

			rec.Fail = false
			sched.Advance(tick, 1)
			Expect(progs.calls).To(HaveLen(1))
		})

		It("reports each frame to hooks and metrics", func() {
			times := metrics.NewFrameTimes(16)
			d = backdrop.New(rec, view, sched, store, progs.catalog(),
				backdrop.WithClock(sched.Now), backdrop.WithMetrics(times))
			var frames []backdrop.Frame
			d.OnFrame(func(f backdrop.Frame) { frames = append(frames, f) })

			store.SetDarkMode(true)
			d.Mount()
			sched.Advance(tick, 3)

			Expect(frames).To(HaveLen(3))
			Expect(frames[2].Index).To(Equal(2))
			Expect(frames[2].DarkMode).To(BeTrue())
			Expect(frames[2].Width).To(Equal(800))
			Expect(times.Samples()).To(Equal(3))
			Expect(d.Stats().Ticks).To(Equal(3))
		})
	})

	Describe("resize", func() {
		It("resizes the canvas and the next frame sees the new size", func() {
			d.Mount()
			sched.Advance(tick, 1)
			Expect(progs.last().w).To(Equal(800))

			view.Resize(1024, 768)
			Expect(rec.W).To(Equal(1024))
			Expect(rec.H).To(Equal(768))

			sched.Advance(tick, 1)
			Expect(progs.last().w).To(Equal(1024))
			Expect(progs.last().h).To(Equal(768))
		})

		It("is ignored after unmount", func() {
			d.Mount()
			d.Unmount()
			view.Resize(10, 10)
			Expect(rec.W).To(Equal(800))
		})
	})

	Describe("Unmount", func() {
		It("cancels the outstanding frame and removes the resize listener", func() {
			d.Mount()
			sched.Advance(tick, 2)
			d.Unmount()

			Expect(sched.Pending()).To(BeZero())
			Expect(view.Listeners()).To(BeZero())
			before := len(progs.calls)
			sched.Advance(tick, 10)
			Expect(progs.calls).To(HaveLen(before))
		})

		It("is idempotent", func() {
			d.Mount()
			d.Unmount()
			Expect(func() { d.Unmount() }).NotTo(Panic())
			Expect(d.Mounted()).To(BeFalse())
		})

		It("drops a stale callback captured before a remount", func() {
			var stale frame.Callback
			tracker := &capture{Scheduler: sched, grab: func(cb frame.Callback) { stale = cb }}
			d = backdrop.New(rec, view, tracker, store, progs.catalog(), backdrop.WithClock(sched.Now))
			d.Mount()
			d.Unmount()
			d.Mount()

			stale(sched.Now())
			Expect(progs.calls).To(BeEmpty())
			sched.Advance(tick, 1)
			Expect(progs.calls).To(HaveLen(1))
		})
	})

	Describe("end to end", func() {
		It("renders lagos for five seconds then falls back for berlin", func() {
			fs := storage.New(GinkgoT().TempDir())
			Expect(fs.Init()).To(Succeed())
			store := theme.Open(fs)
			Expect(store.LastError()).NotTo(HaveOccurred())
			store.SetCulture(culture.Lagos)
			Expect(store.AudioEnabled()).To(BeTrue())

			d = backdrop.New(rec, view, sched, store, progs.catalog(), backdrop.WithClock(sched.Now))
			Expect(d.Mount()).To(BeTrue())
			sched.Advance(tick, 300)

			Expect(progs.calls).To(HaveLen(300))
			Expect(progs.last().id).To(Equal(culture.Lagos))
			Expect(progs.last().t).To(BeNumerically("~", 5.0, 1e-6))

			store.SetCulture(culture.Berlin)
			sched.Advance(tick, 1)
			Expect(progs.last().id).To(Equal(culture.Default))
			Expect(sched.Pending()).To(Equal(1))

			reopened := theme.Open(fs)
			Expect(reopened.LastError()).NotTo(HaveOccurred())
			Expect(reopened.Culture()).To(Equal(culture.Berlin))
		})

		It("drives the real programs at extreme sizes", func() {
			d = backdrop.New(rec, view, sched, store, scene.New(rand.New(rand.NewSource(3))), backdrop.WithClock(sched.Now))
			d.Mount()
			for _, size := range [][2]int{{0, 0}, {4000, 4000}} {
				view.Resize(size[0], size[1])
				for _, id := range []culture.ID{culture.Default, culture.Tokyo, culture.NewYork, culture.Lagos, culture.Seoul, culture.London, culture.Berlin} {
					store.Replace(theme.State{Culture: id})
					Expect(func() { sched.Advance(tick, 2) }).NotTo(Panic())
				}
			}
			Expect(rec.NonFinite).To(BeZero())
			Expect(rec.Depth()).To(BeZero())
		})
	})
})

// capture records every callback handed to the wrapped scheduler.
type capture struct {
	frame.Scheduler
	grab func(frame.Callback)
	n    int
}

func (c *capture) Request(cb frame.Callback) frame.ID {
	if c.n == 0 {
		c.grab(cb)
	}
	c.n++
	return c.Scheduler.Request(cb)
}
