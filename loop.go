package easel

import (
	"context"
	"sync"
	"time"
)

// DefaultTickInterval is the default tick period (40 Hz).
const DefaultTickInterval = 25 * time.Millisecond

// Loop drives a Scene at a fixed interval without a window. The goroutine
// calling Run becomes the scene's engine thread.
type Loop struct {
	scene    *Scene
	interval time.Duration

	stop     chan struct{}
	stopOnce sync.Once

	mu      sync.Mutex
	dropped int
	ticks   int
}

// NewLoop creates a loop for scene. A non-positive interval means
// DefaultTickInterval.
func NewLoop(scene *Scene, interval time.Duration) *Loop {
	if scene == nil {
		panic("easel: nil scene")
	}
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Loop{scene: scene, interval: interval, stop: make(chan struct{})}
}

// Interval returns the tick period.
func (l *Loop) Interval() time.Duration { return l.interval }

// Run ticks the scene until ctx is done or Stop is called. Posted work is
// drained as it arrives, between ticks. A tick that falls behind is not
// queued: the ticker coalesces it and Dropped counts it. Run returns
// ctx.Err() on cancellation and nil after Stop.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stop:
			return nil
		case fn := <-l.scene.events:
			fn()
		case now := <-ticker.C:
			elapsed := now.Sub(last)
			last = now
			if missed := int(elapsed/l.interval) - 1; missed > 0 {
				l.mu.Lock()
				l.dropped += missed
				l.mu.Unlock()
			}
			if err := l.scene.Tick(elapsed.Seconds()); err != nil {
				Logger().Warn("tick failed", "error", err)
			}
			l.mu.Lock()
			l.ticks++
			l.mu.Unlock()
		}
	}
}

// Stop makes Run return. Safe to call more than once and from any goroutine.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// Dropped returns how many ticks were coalesced because a tick ran long.
func (l *Loop) Dropped() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dropped
}

// Ticks returns how many ticks have run.
func (l *Loop) Ticks() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ticks
}
