// Package frame schedules per-display-tick callbacks. A request yields an ID
// that can be cancelled until the callback has fired.
package frame

import (
	"sync"
	"time"
)

// ID identifies a requested callback. The zero ID is never issued.
type ID uint64

type Callback func(now time.Time)

type Scheduler interface {
	Request(cb Callback) ID
	// Cancel drops a pending callback. Unknown or fired ids are ignored.
	Cancel(id ID)
}

type entry struct {
	id ID
	cb Callback
}

// queue holds the callbacks requested since the last tick.
type queue struct {
	mu      sync.Mutex
	next    ID
	pending []entry
}

func (q *queue) Request(cb Callback) ID {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.next++
	q.pending = append(q.pending, entry{id: q.next, cb: cb})
	return q.next
}

func (q *queue) Cancel(id ID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, e := range q.pending {
		if e.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

func (q *queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// fire runs every callback requested before the call. Callbacks requested
// while firing wait for the next tick.
func (q *queue) fire(now time.Time) int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, e := range batch {
		if e.cb != nil {
			e.cb(now)
		}
	}
	return len(batch)
}
