package easel

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoopDefaults(t *testing.T) {
	s, _ := newTestScene()
	assert.Equal(t, DefaultTickInterval, NewLoop(s, 0).Interval())
	assert.Equal(t, time.Second, NewLoop(s, time.Second).Interval())
	assert.Panics(t, func() { NewLoop(nil, 0) })
}

func TestLoopRunTicksAndDrainsPosts(t *testing.T) {
	s, _ := newTestScene()
	var updates, posted atomic.Int32
	s.SetUpdateFunc(func(float64) error {
		updates.Add(1)
		return nil
	})

	loop := NewLoop(s, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	require.True(t, s.Post(func() { posted.Add(1) }))
	require.Eventually(t, func() bool {
		return posted.Load() == 1 && updates.Load() >= 2 && loop.Ticks() >= 2
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestLoopStop(t *testing.T) {
	s, _ := newTestScene()
	loop := NewLoop(s, time.Hour)
	loop.Stop()
	loop.Stop()
	assert.NoError(t, loop.Run(context.Background()))
	assert.Equal(t, 0, loop.Ticks(), "stopped before the first tick")

	running := NewLoop(s, time.Millisecond)
	done := make(chan error, 1)
	go func() { done <- running.Run(context.Background()) }()
	require.Eventually(t, func() bool { return running.Ticks() > 0 }, 2*time.Second, time.Millisecond)
	running.Stop()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
}

func TestLoopCountsDroppedTicks(t *testing.T) {
	s, _ := newTestScene()
	interval := 5 * time.Millisecond
	s.SetUpdateFunc(func(float64) error {
		time.Sleep(3 * interval)
		return nil
	})

	loop := NewLoop(s, interval)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	require.Eventually(t, func() bool {
		return loop.Ticks() >= 3 && loop.Dropped() > 0
	}, 5*time.Second, 10*time.Millisecond)
	assert.Zero(t, s.SkippedTicks(), "slow ticks are coalesced, never reentered")

	cancel()
	<-done
}
