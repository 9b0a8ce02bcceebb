package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/alexgh05/ITEC-Project-sub000/internal/config"
	"github.com/alexgh05/ITEC-Project-sub000/internal/render"
	"github.com/alexgh05/ITEC-Project-sub000/internal/scene"
	"github.com/alexgh05/ITEC-Project-sub000/internal/storage"
	"github.com/alexgh05/ITEC-Project-sub000/internal/theme"
)

var (
	dataDir    string
	configFile string
	preset     string
	fps        int
	opacity    float64
	seed       int64
	logLevel   string
	width      int
	height     int
	addr       string
	atSeconds  float64
	duration   float64
	outPath    string
	asGIF      bool
	dark       bool
	frames     int
	svgPath    string
	jsonPath   string
	ephemeral  bool
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	rootCmd := &cobra.Command{
		Use:   "backdrop",
		Short: "culture-themed procedural backgrounds",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging()
		},
		RunE: runPreview,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "quality preset (smooth, balanced, battery)")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	rootCmd.PersistentFlags().Float64Var(&opacity, "opacity", config.DefaultOpacity, "backdrop opacity over the page")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed for decorative noise (0 = unseeded)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep the culture state in memory only")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level")

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "live terminal preview",
		RunE:  runPreview,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "stream the backdrop to browsers over websocket",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")
	serveCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "initial surface width")
	serveCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "initial surface height")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [culture]",
		Short: "render a culture to a png or gif",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().Float64Var(&atSeconds, "at", 2.0, "seconds since mount")
	snapshotCmd.Flags().BoolVar(&asGIF, "gif", false, "write an animated gif")
	snapshotCmd.Flags().Float64Var(&duration, "duration", 3.0, "gif length in seconds")
	snapshotCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file")
	snapshotCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "surface width")
	snapshotCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "surface height")
	snapshotCmd.Flags().BoolVar(&dark, "dark", false, "composite over the dark page")

	benchCmd := &cobra.Command{
		Use:   "bench [culture]",
		Short: "measure render times",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&frames, "frames", 240, "frames per culture")
	benchCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "surface width")
	benchCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "surface height")
	benchCmd.Flags().StringVar(&svgPath, "svg", "", "write the frame time plot as svg")
	benchCmd.Flags().StringVar(&jsonPath, "json", "", "write the results as json (- for stdout)")

	culturesCmd := &cobra.Command{
		Use:   "cultures",
		Short: "list cultures",
		RunE:  listCultures,
	}

	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "show or change the persisted culture state",
		RunE:  showTheme,
	}
	themeCmd.AddCommand(
		&cobra.Command{Use: "show", Short: "print the culture state", RunE: showTheme},
		&cobra.Command{Use: "culture [id]", Short: "switch culture", Args: cobra.ExactArgs(1), RunE: setCulture},
		&cobra.Command{Use: "dark [on|off|toggle]", Short: "set dark mode", Args: cobra.ExactArgs(1), RunE: setDark},
		&cobra.Command{Use: "audio [on|off|toggle]", Short: "set ambient audio", Args: cobra.ExactArgs(1), RunE: setAudio},
		&cobra.Command{Use: "reset", Short: "forget the stored culture state", Args: cobra.NoArgs, RunE: resetTheme},
	)

	rootCmd.AddCommand(previewCmd, serveCmd, snapshotCmd, benchCmd, culturesCmd, themeCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging() error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("log level %q: %w", logLevel, err)
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

// loadConfig merges the config file, the preset and explicitly set flags,
// in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if preset != "" {
		if err := cfg.Apply(preset); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("data") || configFile == "" {
		cfg.DataDir = dataDir
	}
	if flags.Changed("log-level") || configFile == "" {
		cfg.LogLevel = logLevel
	} else if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("opacity") {
		cfg.Opacity = opacity
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Lookup("width") != nil && (flags.Changed("width") || configFile == "") {
		cfg.Width = width
	}
	if flags.Lookup("height") != nil && (flags.Changed("height") || configFile == "") {
		cfg.Height = height
	}
	if flags.Lookup("addr") != nil && (flags.Changed("addr") || configFile == "") {
		cfg.Addr = addr
	}
	return cfg, cfg.Validate()
}

func newCatalog(cfg *config.Config) *render.Catalog {
	if cfg.Seed == 0 {
		return scene.New(nil)
	}
	return scene.New(rand.New(rand.NewSource(cfg.Seed)))
}

// openStorage returns the data directory store, or an in-memory one for
// --ephemeral runs.
func openStorage(cfg *config.Config) (theme.Eraser, error) {
	if ephemeral {
		return storage.NewMemory(), nil
	}
	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return nil, err
	}
	return st, nil
}

// openTheme rehydrates the persisted culture state from the data directory.
func openTheme(cfg *config.Config) (*theme.Store, error) {
	st, err := openStorage(cfg)
	if err != nil {
		return nil, err
	}
	return theme.Open(st, theme.WithLogger(log.Logger)), nil
}

func logFile(cfg *config.Config) (*os.File, error) {
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(cfg.DataDir, "backdrop.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}
