// Package backdrop runs the background program for the active culture.
//
// A Dispatcher owns one surface. Mount starts a single long-lived frame loop
// on a scheduler; every tick re-reads the culture state, resolves the program
// from the catalog and draws it with the seconds elapsed since mount. Unmount
// cancels the outstanding frame, after which no program runs again.
package backdrop

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexgh05/ITEC-Project-sub000/internal/culture"
	"github.com/alexgh05/ITEC-Project-sub000/internal/frame"
	"github.com/alexgh05/ITEC-Project-sub000/internal/metrics"
	"github.com/alexgh05/ITEC-Project-sub000/internal/render"
	"github.com/alexgh05/ITEC-Project-sub000/internal/theme"
	"github.com/alexgh05/ITEC-Project-sub000/internal/viewport"
)

// Canvas is the surface a dispatcher draws on.
type Canvas interface {
	Context() (render.Surface, error)
	Resize(w, h int)
}

// StateSource yields the current culture state. *theme.Store satisfies it.
type StateSource interface {
	State() theme.State
}

// Frame describes a tick that has just been drawn.
type Frame struct {
	Index    int
	Culture  culture.ID // requested by the state
	Program  culture.ID // actually drawn; default when Culture has no program
	DarkMode bool
	Elapsed  float64
	Width    int
	Height   int
	Render   time.Duration
}

// Stats is a snapshot of the dispatcher's progress.
type Stats struct {
	Mounted bool
	Ticks   int
	Last    Frame
}

type Option func(*Dispatcher)

func WithLogger(l zerolog.Logger) Option {
	return func(d *Dispatcher) { d.log = l }
}

// WithClock sets the clock that marks the mount instant. Elapsed time is the
// frame timestamp minus that instant, so simulated schedulers should pass
// their own clock.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.clock = now }
}

func WithMetrics(m metrics.Observer) Option {
	return func(d *Dispatcher) { d.metric = m }
}

type Dispatcher struct {
	mu      sync.Mutex
	canvas  Canvas
	view    viewport.Viewport
	sched   frame.Scheduler
	state   StateSource
	catalog *render.Catalog
	log     zerolog.Logger
	clock   func() time.Time
	metric  metrics.Observer

	mounted bool
	gen     uint64
	token   frame.ID
	remove  func()
	start   time.Time
	hooks   []func(Frame)
	stats   Stats
}

func New(c Canvas, v viewport.Viewport, s frame.Scheduler, st StateSource, cat *render.Catalog, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		canvas:  c,
		view:    v,
		sched:   s,
		state:   st,
		catalog: cat,
		log:     zerolog.Nop(),
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// OnFrame registers fn to run after every drawn tick. Hooks run while the
// dispatcher is locked and must not call back into it.
func (d *Dispatcher) OnFrame(fn func(Frame)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hooks = append(d.hooks, fn)
}

// Mount starts the frame loop. It returns false and starts nothing when the
// canvas has no drawing context. Mounting twice is a no-op.
func (d *Dispatcher) Mount() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.mounted {
		return true
	}
	if _, err := d.canvas.Context(); err != nil {
		d.log.Debug().Err(err).Msg("background surface unavailable")
		return false
	}

	w, h := d.view.Size()
	d.canvas.Resize(w, h)
	d.remove = d.view.OnResize(d.resize)
	d.start = d.clock()
	d.gen++
	d.mounted = true
	d.stats = Stats{Mounted: true}
	d.request()

	d.log.Info().Int("width", w).Int("height", h).Msg("backdrop mounted")
	return true
}

// Unmount stops the loop. Safe to call any number of times.
func (d *Dispatcher) Unmount() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.mounted {
		return
	}
	d.sched.Cancel(d.token)
	d.token = 0
	if d.remove != nil {
		d.remove()
		d.remove = nil
	}
	d.mounted = false
	d.stats.Mounted = false
	d.gen++
	d.log.Info().Int("ticks", d.stats.Ticks).Msg("backdrop unmounted")
}

func (d *Dispatcher) Mounted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mounted
}

func (d *Dispatcher) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats
}

// request schedules the next tick for the current mount. Callers hold mu.
func (d *Dispatcher) request() {
	gen := d.gen
	d.token = d.sched.Request(func(now time.Time) { d.tick(gen, now) })
}

func (d *Dispatcher) resize(w, h int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.mounted {
		return
	}
	d.canvas.Resize(w, h)
	d.log.Debug().Int("width", w).Int("height", h).Msg("backdrop resized")
}

func (d *Dispatcher) tick(gen uint64, now time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.mounted || gen != d.gen {
		return
	}
	d.token = 0

	surface, err := d.canvas.Context()
	if err != nil {
		d.log.Debug().Err(err).Msg("surface lost, skipping frame")
		d.request()
		return
	}

	st := d.state.State()
	program, own := d.catalog.Lookup(st.Culture)
	drawn := st.Culture
	if !own {
		drawn = culture.Default
	}

	surface.Clear()
	elapsed := now.Sub(d.start).Seconds()
	began := time.Now()
	program(surface, elapsed)
	took := time.Since(began)

	f := Frame{
		Index:    d.stats.Ticks,
		Culture:  st.Culture,
		Program:  drawn,
		DarkMode: st.DarkMode,
		Elapsed:  elapsed,
		Width:    surface.Width(),
		Height:   surface.Height(),
		Render:   took,
	}
	d.stats.Ticks++
	d.stats.Last = f

	if d.metric != nil {
		d.metric.Observe(metrics.Sample{Culture: drawn, Render: took, Width: f.Width, Height: f.Height})
	}
	for _, fn := range d.hooks {
		fn(f)
	}
	d.request()
}
