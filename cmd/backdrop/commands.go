package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/alexgh05/ITEC-Project-sub000/internal/backdrop"
	"github.com/alexgh05/ITEC-Project-sub000/internal/canvas"
	"github.com/alexgh05/ITEC-Project-sub000/internal/config"
	"github.com/alexgh05/ITEC-Project-sub000/internal/culture"
	"github.com/alexgh05/ITEC-Project-sub000/internal/export"
	"github.com/alexgh05/ITEC-Project-sub000/internal/frame"
	"github.com/alexgh05/ITEC-Project-sub000/internal/metrics"
	"github.com/alexgh05/ITEC-Project-sub000/internal/preview"
	"github.com/alexgh05/ITEC-Project-sub000/internal/render"
	"github.com/alexgh05/ITEC-Project-sub000/internal/server"
	"github.com/alexgh05/ITEC-Project-sub000/internal/theme"
	"github.com/alexgh05/ITEC-Project-sub000/internal/viewport"
)

func fade(cfg *config.Config) time.Duration {
	return time.Duration(cfg.FadeMS) * time.Millisecond
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := openTheme(cfg)
	if err != nil {
		return err
	}

	// the alt screen owns the terminal, so logs go to a file
	f, err := logFile(cfg)
	if err != nil {
		return err
	}
	defer f.Close()
	logger := zerolog.New(f).With().Timestamp().Logger()

	m := preview.NewModel(preview.Options{
		Store:   store,
		Catalog: newCatalog(cfg),
		FPS:     cfg.FPS,
		Opacity: cfg.Opacity,
		Fade:    fade(cfg),
		OutDir:  cfg.DataDir,
		Log:     logger,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := openTheme(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Options{
		Store:   store,
		Catalog: newCatalog(cfg),
		FPS:     cfg.FPS,
		Opacity: cfg.Opacity,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Fade:    fade(cfg),
		Log:     log.Logger,
	})
	if err := srv.ListenAndServe(ctx, cfg.Addr); err != nil {
		return err
	}
	log.Info().Msg("shutting down")
	return nil
}

// offline is a dispatcher stepped on simulated time.
type offline struct {
	canvas *canvas.Canvas
	sched  *frame.Manual
	disp   *backdrop.Dispatcher
}

func newOffline(cfg *config.Config, cat *render.Catalog, src backdrop.StateSource, opts ...backdrop.Option) (*offline, error) {
	o := &offline{
		canvas: canvas.New(0, 0),
		sched:  frame.NewManual(time.Unix(0, 0)),
	}
	opts = append([]backdrop.Option{backdrop.WithClock(o.sched.Now), backdrop.WithLogger(log.Logger)}, opts...)
	o.disp = backdrop.New(o.canvas, viewport.New(cfg.Width, cfg.Height), o.sched, src, cat, opts...)
	if !o.disp.Mount() {
		return nil, fmt.Errorf("mount: %w", render.ErrNoContext)
	}
	return o, nil
}

func parseCulture(args []string, store *theme.Store) (culture.ID, error) {
	if len(args) == 0 {
		return store.Culture(), nil
	}
	return culture.Parse(args[0])
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := openTheme(cfg)
	if err != nil {
		return err
	}
	id, err := parseCulture(args, store)
	if err != nil {
		return err
	}
	src := theme.New(theme.WithState(theme.State{Culture: id, DarkMode: dark}))

	o, err := newOffline(cfg, newCatalog(cfg), src)
	if err != nil {
		return err
	}
	defer o.disp.Unmount()

	interval := time.Second / time.Duration(cfg.FPS)
	if !asGIF {
		path := outPath
		if path == "" {
			path = fmt.Sprintf("backdrop-%s.png", id)
		}
		o.sched.Step(o.sched.Now().Add(time.Duration(atSeconds * float64(time.Second))))
		if err := export.SavePNG(path, o.canvas.Snapshot(cfg.Opacity, canvas.Page(dark))); err != nil {
			return err
		}
		log.Info().Str("culture", string(id)).Str("path", path).Msg("snapshot written")
		return nil
	}

	path := outPath
	if path == "" {
		path = fmt.Sprintf("backdrop-%s.gif", id)
	}
	anim := export.NewAnimation(interval)
	o.disp.OnFrame(func(backdrop.Frame) {
		anim.Add(o.canvas.Snapshot(cfg.Opacity, canvas.Page(dark)))
	})
	n := int(math.Ceil(duration * float64(cfg.FPS)))
	o.sched.Advance(interval, max(n, 1))
	if err := anim.Save(path); err != nil {
		return err
	}
	log.Info().Str("culture", string(id)).Str("path", path).Int("frames", anim.Len()).Msg("animation written")
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ids := culture.All()
	if len(args) == 1 {
		id, err := culture.Parse(args[0])
		if err != nil {
			return err
		}
		ids = []culture.ID{id}
	}

	cat := newCatalog(cfg)
	interval := time.Second / time.Duration(cfg.FPS)
	fmt.Printf("benchmarking %d frames at %dx%d\n\n", frames, cfg.Width, cfg.Height)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CULTURE\tPROGRAM\tMEAN\tP95\tMAX\tIN BUDGET")

	report := &export.Report{Width: cfg.Width, Height: cfg.Height, FPS: cfg.FPS, Seed: cfg.Seed}
	var series []float64
	for _, id := range ids {
		times := metrics.NewFrameTimes(frames)
		budget := metrics.NewBudget(cfg.FPS)
		src := theme.New(theme.WithState(theme.State{Culture: id}))
		o, err := newOffline(cfg, cat, src, backdrop.WithMetrics(metrics.Set{times, budget}))
		if err != nil {
			return err
		}
		o.sched.Advance(interval, frames)
		last := o.disp.Stats().Last
		o.disp.Unmount()

		fmt.Fprintf(w, "%s\t%s\t%v\t%v\t%v\t%.0f%%\n",
			id, last.Program, times.Mean().Round(time.Microsecond), times.Percentile(95).Round(time.Microsecond),
			times.Max().Round(time.Microsecond), budget.Value()*100)
		report.Results = append(report.Results, export.CultureResult{
			Culture:  string(id),
			Program:  string(last.Program),
			Frames:   times.Samples(),
			MeanMS:   times.Value(),
			P95MS:    millis(times.Percentile(95)),
			MaxMS:    millis(times.Max()),
			InBudget: budget.Value(),
			Series:   times.Series(),
		})
		series = append(series, times.Series()...)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(series) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(series, asciigraph.Height(10), asciigraph.Width(70), asciigraph.Caption("render ms per frame")))
	}
	if jsonPath != "" {
		if err := export.SaveReport(jsonPath, report); err != nil {
			return err
		}
	}
	if svgPath != "" {
		limit := millis(interval)
		if err := os.WriteFile(svgPath, []byte(export.SeriesToSVG(series, 800, 240, "#00ff88", limit)), 0644); err != nil {
			return err
		}
	}
	return nil
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func listCultures(cmd *cobra.Command, args []string) error {
	cat := newCatalog(config.DefaultConfig())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tGENRE\tPROGRAM\tDESCRIPTION")
	for _, id := range culture.All() {
		info, _ := culture.Lookup(id)
		program := string(id)
		if !cat.Has(id) {
			program = string(culture.Default) + " (fallback)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", id, info.Name, info.Genre, program, info.Description)
	}
	return w.Flush()
}

func themeStore(cmd *cobra.Command) (*theme.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return openTheme(cfg)
}

func printTheme(st theme.State) {
	info, _ := culture.Lookup(st.Culture)
	fmt.Printf("culture: %s (%s)\ndark:    %s\naudio:   %s\n", st.Culture, info.Name, onOff(st.DarkMode), onOff(st.AudioEnabled))
}

func showTheme(cmd *cobra.Command, args []string) error {
	store, err := themeStore(cmd)
	if err != nil {
		return err
	}
	printTheme(store.State())
	return store.LastError()
}

func setCulture(cmd *cobra.Command, args []string) error {
	store, err := themeStore(cmd)
	if err != nil {
		return err
	}
	id, err := culture.Parse(args[0])
	if err != nil {
		return err
	}
	store.SetCulture(id)
	printTheme(store.State())
	return store.LastError()
}

func resetTheme(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStorage(cfg)
	if err != nil {
		return err
	}
	had, err := theme.Forget(st)
	if err != nil {
		return fmt.Errorf("reset theme: %w", err)
	}
	if !had {
		fmt.Println("no stored culture state")
	}
	printTheme(theme.Open(st).State())
	return nil
}

func setDark(cmd *cobra.Command, args []string) error {
	return setFlag(cmd, args[0], (*theme.Store).SetDarkMode, (*theme.Store).ToggleDarkMode)
}

func setAudio(cmd *cobra.Command, args []string) error {
	set := func(s *theme.Store, v bool) {
		if v {
			s.EnableAudio()
		} else {
			s.DisableAudio()
		}
	}
	return setFlag(cmd, args[0], set, (*theme.Store).ToggleAudio)
}

func setFlag(cmd *cobra.Command, arg string, set func(*theme.Store, bool), toggle func(*theme.Store)) error {
	store, err := themeStore(cmd)
	if err != nil {
		return err
	}
	switch strings.ToLower(arg) {
	case "on", "true", "1":
		set(store, true)
	case "off", "false", "0":
		set(store, false)
	case "toggle":
		toggle(store)
	default:
		return fmt.Errorf("expected on, off or toggle, got %q", arg)
	}
	printTheme(store.State())
	return store.LastError()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
