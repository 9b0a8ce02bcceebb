package frame

import (
	"context"
	"time"
)

const DefaultFPS = 60

// Loop is a Scheduler driven by a wall-clock ticker. Callbacks and posted
// functions all run on the goroutine that called Run.
type Loop struct {
	queue
	interval time.Duration
	posts    chan func()
}

var _ Scheduler = (*Loop)(nil)

// NewLoop returns a loop ticking fps times per second. Non-positive fps falls
// back to DefaultFPS.
func NewLoop(fps int) *Loop {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Loop{
		interval: time.Second / time.Duration(fps),
		posts:    make(chan func(), 64),
	}
}

func (l *Loop) Interval() time.Duration { return l.interval }

// Post queues fn to run on the loop goroutine between ticks. It blocks when
// the backlog is full and gives up when ctx is done.
func (l *Loop) Post(ctx context.Context, fn func()) error {
	select {
	case l.posts <- fn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run ticks until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.posts:
			fn()
		case now := <-ticker.C:
			l.fire(now)
		}
	}
}
