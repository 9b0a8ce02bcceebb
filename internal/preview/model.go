// Package preview shows the live backdrop in a terminal. Frames are drawn by
// a real dispatcher stepped from the bubbletea tick and printed as
// half-block pixels next to the culture caption and frame statistics.
package preview

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"

	"github.com/alexgh05/ITEC-Project-sub000/internal/backdrop"
	"github.com/alexgh05/ITEC-Project-sub000/internal/canvas"
	"github.com/alexgh05/ITEC-Project-sub000/internal/culture"
	"github.com/alexgh05/ITEC-Project-sub000/internal/export"
	"github.com/alexgh05/ITEC-Project-sub000/internal/frame"
	"github.com/alexgh05/ITEC-Project-sub000/internal/metrics"
	"github.com/alexgh05/ITEC-Project-sub000/internal/overlay"
	"github.com/alexgh05/ITEC-Project-sub000/internal/render"
	"github.com/alexgh05/ITEC-Project-sub000/internal/theme"
	"github.com/alexgh05/ITEC-Project-sub000/internal/viewport"
)

const (
	panelWidth  = 44
	// pixelScale is how many canvas pixels one half-block stands for.
	pixelScale  = 4
	defaultCols = 80
	defaultRows = 24
)

type TickMsg time.Time

type Options struct {
	Store   *theme.Store
	Catalog *render.Catalog
	FPS     int
	Opacity float64
	Fade    time.Duration
	// OutDir receives PNG snapshots and GIF recordings.
	OutDir string
	Log    zerolog.Logger
}

// engine is the state shared by every copy of the bubbletea Model.
type engine struct {
	canvas  *canvas.Canvas
	view    *viewport.Window
	sched   *frame.Manual
	disp    *backdrop.Dispatcher
	overlay *overlay.Overlay
	times   *metrics.FrameTimes

	cols, rows int
	raster     string
	last       backdrop.Frame
	latest     *image.RGBA
	recording  *export.Animation
	lastTick   time.Time

	// notice describes the most recent theme change.
	notice      string
	unsubscribe func()
}

type Model struct {
	e        *engine
	opts     Options
	interval time.Duration
	paused   bool
	showHelp bool
	status   string
}

func NewModel(opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = frame.DefaultFPS
	}
	if opts.Store == nil {
		opts.Store = theme.New()
	}
	e := &engine{
		canvas: canvas.New(0, 0),
		view:   viewport.New(defaultCols*pixelScale, defaultRows*2*pixelScale),
		sched:  frame.NewManual(time.Now()),
		times:  metrics.NewFrameTimes(120),
		cols:   defaultCols,
		rows:   defaultRows,
	}
	e.overlay = overlay.New(opts.Store, overlay.WithFade(opts.Fade))
	e.disp = backdrop.New(e.canvas, e.view, e.sched, opts.Store, opts.Catalog,
		backdrop.WithLogger(opts.Log),
		backdrop.WithMetrics(e.times))
	e.disp.OnFrame(func(f backdrop.Frame) {
		e.last = f
		e.overlay.SetDark(f.DarkMode)
		e.latest = e.canvas.Snapshot(opts.Opacity, canvas.Page(f.DarkMode))
		e.raster = halfBlocks(e.latest, e.cols, e.rows)
		if e.recording != nil {
			e.recording.Add(e.latest)
		}
	})

	prev := opts.Store.State()
	e.unsubscribe = opts.Store.Subscribe(func(st theme.State) {
		e.notice = changeNotice(prev, st)
		prev = st
		opts.Log.Info().
			Str("culture", st.Culture.String()).
			Bool("dark", st.DarkMode).
			Bool("audio", st.AudioEnabled).
			Msg("theme changed")
	})

	return Model{
		e:        e,
		opts:     opts,
		interval: time.Second / time.Duration(opts.FPS),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	if !m.e.disp.Mount() {
		m.opts.Log.Warn().Msg("backdrop could not be mounted")
	}
	m.e.lastTick = time.Now()
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.key(msg.String())
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		now := time.Time(msg)
		if !m.paused {
			m.e.sched.Step(now)
			m.e.overlay.Advance(now.Sub(m.e.lastTick))
		}
		m.e.lastTick = now
		return m, m.tick()
	}
	return m, nil
}

var cultureKeys = map[string]culture.ID{
	"0": culture.Default,
	"1": culture.Tokyo,
	"2": culture.NewYork,
	"3": culture.Lagos,
	"4": culture.Seoul,
	"5": culture.London,
	"6": culture.Berlin,
}

func (m Model) key(k string) (tea.Model, tea.Cmd) {
	store := m.opts.Store
	if id, ok := cultureKeys[k]; ok {
		store.SetCulture(id)
		return m, nil
	}
	switch k {
	case "q", "ctrl+c":
		m.e.unsubscribe()
		m.e.disp.Unmount()
		return m, tea.Quit
	case "tab":
		store.SetCulture(nextCulture(store.Culture()))
	case "d":
		store.ToggleDarkMode()
	case "a":
		store.ToggleAudio()
	case " ":
		m.paused = !m.paused
	case "s":
		m.status = m.savePNG()
	case "g":
		m.status = m.toggleRecording()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// changeNotice names the fields that differ between two states, so a culture
// switch that also turned audio on says so.
func changeNotice(prev, next theme.State) string {
	var parts []string
	if prev.Culture != next.Culture {
		info, _ := culture.Lookup(next.Culture)
		parts = append(parts, "culture "+info.Name)
	}
	if prev.DarkMode != next.DarkMode {
		parts = append(parts, "dark "+onOff(next.DarkMode))
	}
	if prev.AudioEnabled != next.AudioEnabled {
		parts = append(parts, "audio "+onOff(next.AudioEnabled))
	}
	return strings.Join(parts, ", ")
}

func nextCulture(cur culture.ID) culture.ID {
	all := culture.All()
	for i, id := range all {
		if id == cur {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// resize fits the raster into the terminal beside the side panel.
func (m *Model) resize(w, h int) {
	cols := max(w-panelWidth-4, 10)
	rows := max(h-1, 5)
	m.e.cols, m.e.rows = cols, rows
	m.e.view.Resize(cols*pixelScale, rows*2*pixelScale)
}

func (m *Model) savePNG() string {
	if m.e.latest == nil {
		return "no frame yet"
	}
	path := filepath.Join(m.opts.OutDir, fmt.Sprintf("backdrop-%s-%d.png", m.e.last.Program, time.Now().Unix()))
	if err := export.SavePNG(path, m.e.latest); err != nil {
		m.opts.Log.Error().Err(err).Str("path", path).Msg("snapshot failed")
		return "snapshot failed"
	}
	m.opts.Log.Info().Str("path", path).Msg("snapshot saved")
	return "saved " + filepath.Base(path)
}

func (m *Model) toggleRecording() string {
	if m.e.recording == nil {
		m.e.recording = export.NewAnimation(m.interval)
		return "recording"
	}
	anim := m.e.recording
	m.e.recording = nil
	path := filepath.Join(m.opts.OutDir, fmt.Sprintf("backdrop-%d.gif", time.Now().Unix()))
	if err := anim.Save(path); err != nil {
		m.opts.Log.Error().Err(err).Str("path", path).Msg("recording failed")
		return "recording failed"
	}
	m.opts.Log.Info().Str("path", path).Int("frames", anim.Len()).Msg("recording saved")
	return "saved " + filepath.Base(path)
}

func (m Model) View() string {
	e := m.e
	st := m.opts.Store.State()
	info, _ := culture.Lookup(st.Culture)

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(info.Name)) + "\n")
	status := "LIVE"
	if m.paused {
		status = "PAUSED"
	}
	if e.recording != nil {
		status += " ● REC"
	}
	s.WriteString(statusStyle.Render(status) + "\n")
	if m.status != "" {
		s.WriteString(valueStyle.Render(m.status) + "\n")
	} else if e.notice != "" {
		s.WriteString(valueStyle.Render(e.notice) + "\n")
	}
	s.WriteString("\n")

	if card := e.overlay.Render(panelWidth - 4); card != "" {
		s.WriteString(card + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Culture", string(st.Culture))
	row("Program", string(e.last.Program))
	row("Dark", onOff(st.DarkMode))
	row("Audio", onOff(st.AudioEnabled))
	row("Time", fmt.Sprintf("%.1fs", e.last.Elapsed))
	row("Frames", fmt.Sprintf("%d", e.disp.Stats().Ticks))
	row("Size", fmt.Sprintf("%dx%d", e.last.Width, e.last.Height))
	row("Render", fmt.Sprintf("%.2fms avg  %.2fms p95", e.times.Value(), float64(e.times.Percentile(95))/float64(time.Millisecond)))

	if series := e.times.Series(); len(series) > 1 {
		chart := asciigraph.Plot(series, asciigraph.Height(4), asciigraph.Width(panelWidth-12), asciigraph.Caption("render ms"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	if m.showHelp {
		s.WriteString(helpStyle.Render("0-6  culture (0 classic, 6 berlin)\ntab  next culture\nd    dark mode\na    audio\nspc  pause\ns    png snapshot\ng    gif record\nq    quit"))
	} else {
		s.WriteString(helpStyle.Render("0-6/TAB:Culture D:Dark A:Audio\nS:PNG G:GIF ?:Help Q:Quit"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, e.raster, panelStyle.Render(s.String()))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
