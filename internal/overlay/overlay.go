// Package overlay presents the active culture as a caption card that fades in
// when a culture is selected and fades out when the default culture returns.
package overlay

import (
	"sync"
	"time"

	"github.com/alexgh05/ITEC-Project-sub000/internal/culture"
	"github.com/alexgh05/ITEC-Project-sub000/internal/theme"
)

const DefaultFade = 500 * time.Millisecond

type StateSource interface {
	State() theme.State
}

// Caption is what the overlay shows for a culture.
type Caption struct {
	Visible          bool       `json:"visible"`
	Culture          culture.ID `json:"culture"`
	Name             string     `json:"name"`
	Genre            string     `json:"genre"`
	Description      string     `json:"description"`
	// ThemeDescription is the optional long description of the scene.
	ThemeDescription string     `json:"themeDescription,omitempty"`
	Accent           string     `json:"accent"`
	Opacity          float64    `json:"opacity"`
}

type Option func(*Overlay)

// WithFade sets how long a full fade in or out takes. Non-positive values
// make transitions instant.
func WithFade(d time.Duration) Option {
	return func(o *Overlay) { o.fade = d }
}

// WithDark selects the palette used to blend the card into the page.
func WithDark(dark bool) Option {
	return func(o *Overlay) { o.dark = dark }
}

type Overlay struct {
	mu      sync.Mutex
	source  StateSource
	fade    time.Duration
	dark    bool
	opacity float64
	shown   culture.Info
}

func New(source StateSource, opts ...Option) *Overlay {
	o := &Overlay{source: source, fade: DefaultFade}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Caption derives the caption from the current state. While fading out it
// keeps describing the last non-default culture.
func (o *Overlay) Caption() Caption {
	o.mu.Lock()
	defer o.mu.Unlock()
	st := o.source.State()
	visible := !st.Culture.IsDefault()
	if visible {
		o.shown, _ = culture.Lookup(st.Culture)
		// unknown ids still get a caption named after themselves
		if o.shown.ID != st.Culture {
			o.shown.ID = st.Culture
			o.shown.Name = st.Culture.String()
		}
	}
	return Caption{
		Visible:          visible,
		Culture:          o.shown.ID,
		Name:             o.shown.Name,
		Genre:            o.shown.Genre,
		Description:      o.shown.Description,
		ThemeDescription: o.shown.ThemeDescription,
		Accent:           o.shown.Accent,
		Opacity:          o.opacity,
	}
}

// Advance moves the opacity toward its target by dt and returns the
// resulting caption.
func (o *Overlay) Advance(dt time.Duration) Caption {
	visible := !o.source.State().Culture.IsDefault()

	o.mu.Lock()
	target := 0.0
	if visible {
		target = 1
	}
	if o.fade <= 0 {
		o.opacity = target
	} else if dt > 0 {
		step := float64(dt) / float64(o.fade)
		if o.opacity < target {
			o.opacity = min(target, o.opacity+step)
		} else {
			o.opacity = max(target, o.opacity-step)
		}
	}
	o.mu.Unlock()

	return o.Caption()
}

func (o *Overlay) SetDark(dark bool) {
	o.mu.Lock()
	o.dark = dark
	o.mu.Unlock()
}

func (o *Overlay) Opacity() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.opacity
}
