// Package viewport tracks the size of the area a backdrop covers.
package viewport

import (
	"slices"
	"sync"
)

// MaxSide bounds either dimension of a viewport. Larger requests are clamped.
const MaxSide = 8192

// Clamp limits a requested side length to 0..MaxSide.
func Clamp(n int) int { return min(max(n, 0), MaxSide) }

type Viewport interface {
	Size() (w, h int)
	// OnResize registers fn and returns a function that removes it.
	OnResize(fn func(w, h int)) (remove func())
}

// Window is a Viewport whose size is set by its owner, e.g. a terminal or a
// browser client reporting its dimensions.
type Window struct {
	mu        sync.Mutex
	w, h      int
	next      int
	listeners map[int]func(w, h int)
}

var _ Viewport = (*Window)(nil)

func New(w, h int) *Window {
	return &Window{w: Clamp(w), h: Clamp(h), listeners: make(map[int]func(w, h int))}
}

func (v *Window) Size() (int, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.w, v.h
}

func (v *Window) OnResize(fn func(w, h int)) func() {
	v.mu.Lock()
	defer v.mu.Unlock()
	id := v.next
	v.next++
	v.listeners[id] = fn
	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.listeners, id)
			v.mu.Unlock()
		})
	}
}

// Resize records the new size and notifies listeners synchronously in
// registration order. Sizes are clamped to 0..MaxSide.
func (v *Window) Resize(w, h int) {
	v.mu.Lock()
	v.w, v.h = Clamp(w), Clamp(h)
	w, h = v.w, v.h
	ids := make([]int, 0, len(v.listeners))
	for id := range v.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(int, int), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, v.listeners[id])
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn(w, h)
	}
}

// Listeners is the number of registered resize handlers.
func (v *Window) Listeners() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.listeners)
}
