// Package theme holds the storefront's culture state: the active culture, the
// dark-mode flag and whether ambient audio is enabled.
//
// A [Store] is the single writer-facing container for that state. Any number
// of readers subscribe to it; every effective change is delivered to every
// subscriber synchronously and written through to a [Persister].
package theme

import (
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/alexgh05/ITEC-Project-sub000/internal/culture"
)

// StorageKey is the key the state is persisted under.
const StorageKey = "backdrop.theme"

// State is the persisted culture state.
type State struct {
	DarkMode     bool       `json:"darkMode"`
	Culture      culture.ID `json:"culture"`
	AudioEnabled bool       `json:"audioEnabled"`
}

// Defaults returns the state used when nothing has been persisted yet.
func Defaults() State {
	return State{Culture: culture.Default}
}

// Persister is the durable storage the store writes through to.
type Persister interface {
	Get(key string, v any) (bool, error)
	Put(key string, v any) error
}

// Store is an observable container for State. It is safe for concurrent use;
// subscribers are called outside the lock, in registration order. A writer
// delivers its change before returning unless another goroutine is already
// delivering, in which case that goroutine delivers it.
type Store struct {
	mu        sync.Mutex
	state     State
	version   uint64
	notifying bool
	subs      []*subscription
	persist   Persister
	log       zerolog.Logger
	lastErr   error
}

type subscription struct {
	fn func(State)
}

type Option func(*Store)

func WithPersister(p Persister) Option {
	return func(s *Store) { s.persist = p }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithState seeds the container with an initial state instead of the defaults.
func WithState(st State) Option {
	return func(s *Store) { s.state = normalize(st) }
}

// New creates a store holding the defaults. It does not read from the
// persister; use Open for that.
func New(opts ...Option) *Store {
	s := &Store{state: Defaults(), log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates a store rehydrated from p. Missing state yields the defaults;
// unreadable state is logged and replaced by the defaults.
func Open(p Persister, opts ...Option) *Store {
	s := New(append([]Option{WithPersister(p)}, opts...)...)
	if p == nil {
		return s
	}

	var st State
	ok, err := p.Get(StorageKey, &st)
	switch {
	case err != nil:
		s.lastErr = err
		s.log.Warn().Err(err).Str("key", StorageKey).Msg("stored theme unreadable, using defaults")
	case ok:
		s.state = normalize(st)
		s.log.Debug().Str("culture", s.state.Culture.String()).Bool("dark", s.state.DarkMode).Msg("theme restored")
	}
	return s
}

// Eraser is a Persister that can also drop records.
type Eraser interface {
	Persister
	Delete(key string) error
	Keys() ([]string, error)
}

// Forget removes the persisted state from p and reports whether a record was
// stored. The next Open on p yields the defaults.
func Forget(p Eraser) (bool, error) {
	keys, err := p.Keys()
	if err != nil {
		return false, err
	}
	if !slices.Contains(keys, StorageKey) {
		return false, nil
	}
	return true, p.Delete(StorageKey)
}

func normalize(st State) State {
	if st.Culture == "" {
		st.Culture = culture.Default
	}
	return st
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) Culture() culture.ID { return s.State().Culture }
func (s *Store) DarkMode() bool      { return s.State().DarkMode }
func (s *Store) AudioEnabled() bool  { return s.State().AudioEnabled }

// LastError returns the most recent persistence failure, if any.
func (s *Store) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Subscribe registers fn for change notifications. The returned function
// removes the registration and may be called more than once.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	sub := &subscription{fn: fn}
	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, cur := range s.subs {
				if cur == sub {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// SetCulture switches the active culture. Leaving the default culture while
// audio is off turns audio on; nothing here ever turns audio off.
func (s *Store) SetCulture(next culture.ID) {
	if next == "" {
		next = culture.Default
	}
	s.update(func(st *State) {
		if st.Culture.IsDefault() && !next.IsDefault() && !st.AudioEnabled {
			st.AudioEnabled = true
		}
		st.Culture = next
	})
}

func (s *Store) ToggleDarkMode() {
	s.update(func(st *State) { st.DarkMode = !st.DarkMode })
}

func (s *Store) SetDarkMode(v bool) {
	s.update(func(st *State) { st.DarkMode = v })
}

func (s *Store) ToggleAudio() {
	s.update(func(st *State) { st.AudioEnabled = !st.AudioEnabled })
}

func (s *Store) EnableAudio() {
	s.update(func(st *State) { st.AudioEnabled = true })
}

func (s *Store) DisableAudio() {
	s.update(func(st *State) { st.AudioEnabled = false })
}

// Replace overwrites the whole state, bypassing the culture transition rule.
// It exists for restoring state from outside sources such as the CLI.
func (s *Store) Replace(st State) {
	st = normalize(st)
	s.update(func(cur *State) { *cur = st })
}

func (s *Store) update(mutate func(*State)) {
	s.mu.Lock()
	prev := s.state
	next := prev
	mutate(&next)
	if next == prev {
		s.mu.Unlock()
		return
	}
	s.state = next
	s.version++

	if s.persist != nil {
		if err := s.persist.Put(StorageKey, next); err != nil {
			s.lastErr = err
			s.log.Warn().Err(err).Str("key", StorageKey).Msg("persist theme")
		}
	}
	s.log.Debug().
		Str("culture", next.Culture.String()).
		Bool("dark", next.DarkMode).
		Bool("audio", next.AudioEnabled).
		Msg("theme changed")

	if s.notifying {
		s.mu.Unlock()
		return
	}
	s.notifying = true
	s.mu.Unlock()
	s.deliver()
}

// deliver hands the current state to subscribers until they have seen the
// latest version. Only one goroutine delivers at a time, so subscribers see
// changes in order and their last view always matches State(). Writes made
// meanwhile, including from inside a subscriber, are picked up by the loop.
func (s *Store) deliver() {
	done := false
	defer func() {
		if !done {
			s.mu.Lock()
			s.notifying = false
			s.mu.Unlock()
		}
	}()

	var seen uint64
	for {
		s.mu.Lock()
		if s.version == seen {
			s.notifying = false
			s.mu.Unlock()
			done = true
			return
		}
		seen = s.version
		st := s.state
		subs := make([]*subscription, len(s.subs))
		copy(subs, s.subs)
		s.mu.Unlock()

		for _, sub := range subs {
			sub.fn(st)
		}
	}
}
