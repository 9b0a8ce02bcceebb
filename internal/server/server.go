// Package server streams the live backdrop to browsers. Frames are pushed as
// PNG over a websocket, and the culture state is readable and writable as
// JSON.
package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/alexgh05/ITEC-Project-sub000/internal/backdrop"
	"github.com/alexgh05/ITEC-Project-sub000/internal/canvas"
	"github.com/alexgh05/ITEC-Project-sub000/internal/export"
	"github.com/alexgh05/ITEC-Project-sub000/internal/frame"
	"github.com/alexgh05/ITEC-Project-sub000/internal/metrics"
	"github.com/alexgh05/ITEC-Project-sub000/internal/overlay"
	"github.com/alexgh05/ITEC-Project-sub000/internal/render"
	"github.com/alexgh05/ITEC-Project-sub000/internal/theme"
	"github.com/alexgh05/ITEC-Project-sub000/internal/viewport"
)

var ErrNotMounted = errors.New("server: backdrop could not be mounted")

type Options struct {
	Store   *theme.Store
	Catalog *render.Catalog
	FPS     int
	Opacity float64
	Width   int
	Height  int
	Fade    time.Duration
	Log     zerolog.Logger
}

type Server struct {
	mu      sync.RWMutex
	store   *theme.Store
	overlay *overlay.Overlay
	disp    *backdrop.Dispatcher
	canvas  *canvas.Canvas
	view    *viewport.Window
	loop    *frame.Loop
	set     metrics.Set
	opacity float64
	log     zerolog.Logger

	png       []byte
	frameID   uint64
	lastTime  float64
	startTime time.Time
	clients   map[*websocket.Conn]bool
	frames    chan []byte
	ctx       context.Context
}

func New(opts Options) *Server {
	if opts.Store == nil {
		opts.Store = theme.New()
	}
	s := &Server{
		store:     opts.Store,
		overlay:   overlay.New(opts.Store, overlay.WithFade(opts.Fade)),
		canvas:    canvas.New(0, 0),
		view:      viewport.New(opts.Width, opts.Height),
		loop:      frame.NewLoop(opts.FPS),
		set:       metrics.Set{metrics.NewFrameTimes(0), metrics.NewBudget(opts.FPS), metrics.NewSwitches()},
		opacity:   opts.Opacity,
		log:       opts.Log,
		startTime: time.Now(),
		clients:   map[*websocket.Conn]bool{},
		frames:    make(chan []byte, 1),
		ctx:       context.Background(),
	}
	s.disp = backdrop.New(s.canvas, s.view, s.loop, opts.Store, opts.Catalog,
		backdrop.WithLogger(opts.Log),
		backdrop.WithMetrics(s.set))
	s.disp.OnFrame(s.publish)
	return s
}

// publish runs inside the dispatcher tick, so the canvas is not being drawn.
func (s *Server) publish(f backdrop.Frame) {
	dt := time.Duration((f.Elapsed - s.lastTime) * float64(time.Second))
	s.lastTime = f.Elapsed
	s.overlay.SetDark(f.DarkMode)
	s.overlay.Advance(dt)

	s.mu.RLock()
	watching := len(s.clients) > 0
	s.mu.RUnlock()
	if !watching && f.Index%30 != 0 {
		return
	}

	var buf bytes.Buffer
	img := s.canvas.Snapshot(s.opacity, canvas.Page(f.DarkMode))
	if err := export.WritePNG(&buf, img); err != nil {
		s.log.Debug().Err(err).Msg("encode frame")
		return
	}
	b := buf.Bytes()

	s.mu.Lock()
	s.png = b
	s.frameID++
	s.mu.Unlock()

	if watching {
		select {
		case s.frames <- b:
		default:
		}
	}
}

// Start mounts the backdrop and runs the frame loop and the broadcaster until
// ctx is done.
func (s *Server) Start(ctx context.Context) error {
	if !s.disp.Mount() {
		return ErrNotMounted
	}
	s.ctx = ctx
	go func() {
		_ = s.loop.Run(ctx)
		s.disp.Unmount()
	}()
	go s.broadcast(ctx)
	return nil
}

// ListenAndServe starts the backdrop and serves HTTP on addr until ctx is
// done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shut, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shut)
	}()

	s.log.Info().Str("addr", addr).Msg("HTTP server starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/frames", s.HandleFramesWS)
	mux.HandleFunc("/api/theme", s.HandleTheme)
	mux.HandleFunc("/api/caption", s.HandleCaption)
	mux.HandleFunc("/api/stats", s.HandleStats)
	mux.HandleFunc("/frame.png", s.HandleFrame)
	mux.HandleFunc("/health", s.HandleHealth)
	return withCORS(mux)
}

func (s *Server) broadcast(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			s.closeClients()
			return
		case b := <-s.frames:
			s.mu.RLock()
			conns := make([]*websocket.Conn, 0, len(s.clients))
			for c := range s.clients {
				conns = append(conns, c)
			}
			s.mu.RUnlock()
			for _, c := range conns {
				c.SetWriteDeadline(time.Now().Add(200 * time.Millisecond))
				if err := c.WriteMessage(websocket.BinaryMessage, b); err != nil {
					s.log.Debug().Err(err).Msg("write frame")
				}
			}
		}
	}
}

func (s *Server) closeClients() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		c.Close()
		delete(s.clients, c)
	}
}

func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		h.ServeHTTP(w, r)
	})
}
