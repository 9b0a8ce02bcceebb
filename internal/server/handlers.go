package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/alexgh05/ITEC-Project-sub000/internal/culture"
	"github.com/alexgh05/ITEC-Project-sub000/internal/viewport"
)

// ThemePatch is a partial culture state update. Culture changes go through
// the store's transition rule.
type ThemePatch struct {
	Culture      *string `json:"culture,omitempty"`
	DarkMode     *bool   `json:"darkMode,omitempty"`
	AudioEnabled *bool   `json:"audioEnabled,omitempty"`
}

// control is what a frame-stream client may send.
type control struct {
	ThemePatch
	Width  *int `json:"width,omitempty"`
	Height *int `json:"height,omitempty"`
}

// ErrBadSize rejects client resize requests outside 0..viewport.MaxSide.
var ErrBadSize = errors.New("server: viewport size out of range")

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

func (s *Server) HandleFramesWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()
	s.log.Debug().Str("remote", r.RemoteAddr).Msg("frame client connected")

	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			conn.Close()
		}()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var msg control
			if err := json.Unmarshal(data, &msg); err != nil {
				continue
			}
			if err := s.applyControl(s.ctx, msg); err != nil {
				s.log.Debug().Err(err).Msg("control message rejected")
			}
		}
	}()
}

func (s *Server) applyControl(ctx context.Context, msg control) error {
	if msg.Width != nil || msg.Height != nil {
		w, h := s.view.Size()
		if msg.Width != nil {
			w = *msg.Width
		}
		if msg.Height != nil {
			h = *msg.Height
		}
		if w < 0 || h < 0 || w > viewport.MaxSide || h > viewport.MaxSide {
			return fmt.Errorf("%w: %dx%d", ErrBadSize, w, h)
		}
		if err := s.loop.Post(ctx, func() { s.view.Resize(w, h) }); err != nil {
			return err
		}
	}
	return s.applyPatch(msg.ThemePatch)
}

func (s *Server) applyPatch(p ThemePatch) error {
	if p.Culture != nil {
		id, err := culture.Parse(*p.Culture)
		if err != nil {
			return err
		}
		s.store.SetCulture(id)
	}
	if p.DarkMode != nil {
		s.store.SetDarkMode(*p.DarkMode)
	}
	if p.AudioEnabled != nil {
		if *p.AudioEnabled {
			s.store.EnableAudio()
		} else {
			s.store.DisableAudio()
		}
	}
	return nil
}

func (s *Server) HandleTheme(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
	case http.MethodPost, http.MethodPatch:
		var p ThemePatch
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, fmt.Sprintf("bad theme patch: %v", err), http.StatusBadRequest)
			return
		}
		if err := s.applyPatch(p); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	default:
		w.Header().Set("Allow", "GET, POST, PATCH")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, s.store.State())
}

func (s *Server) HandleCaption(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.overlay.Caption())
}

func (s *Server) HandleStats(w http.ResponseWriter, r *http.Request) {
	st := s.disp.Stats()
	writeJSON(w, map[string]any{
		"mounted": st.Mounted,
		"ticks":   st.Ticks,
		"last":    st.Last,
		"metrics": s.set.Values(),
	})
}

func (s *Server) HandleFrame(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	b := s.png
	s.mu.RUnlock()
	if b == nil {
		http.Error(w, "no frame yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(b)
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	mounted := s.disp.Mounted()
	s.mu.RLock()
	resp := map[string]any{
		"frame_id": s.frameID,
		"uptime_s": time.Since(s.startTime).Seconds(),
		"clients":  len(s.clients),
		"mounted":  mounted,
	}
	s.mu.RUnlock()
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

