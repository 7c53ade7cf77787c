package notification

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yosapark/yomogi_backend/pkg/logs"
)

func TestDispatcher_RunsAndDrains(t *testing.T) {
	d := NewDispatcher(DispatcherConfig{Workers: 2, QueueSize: 16, Timeout: time.Second}, logs.Discard())
	d.Start()

	var ran atomic.Int32
	for range 10 {
		ok := d.Enqueue(Job{Name: "count", Run: func(context.Context) error {
			ran.Add(1)
			return nil
		}})
		require.True(t, ok)
	}

	require.NoError(t, d.Stop(context.Background()))
	assert.Equal(t, int32(10), ran.Load())

	assert.False(t, d.Enqueue(Job{Name: "late", Run: func(context.Context) error { return nil }}))
	assert.NoError(t, d.Stop(context.Background()), "second stop is a no-op")
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	d := NewDispatcher(DispatcherConfig{Workers: 1, QueueSize: 1, Timeout: time.Second}, logs.Discard())
	d.Start()

	release := make(chan struct{})
	started := make(chan struct{})
	require.True(t, d.Enqueue(Job{Name: "block", Run: func(context.Context) error {
		close(started)
		<-release
		return nil
	}}))
	<-started

	require.True(t, d.Enqueue(Job{Name: "queued", Run: func(context.Context) error { return nil }}))
	assert.False(t, d.Enqueue(Job{Name: "dropped", Run: func(context.Context) error { return nil }}))

	close(release)
	require.NoError(t, d.Stop(context.Background()))
}

func TestDispatcher_SurvivesFailuresAndPanics(t *testing.T) {
	d := NewDispatcher(DispatcherConfig{Workers: 1, QueueSize: 4, Timeout: time.Second}, logs.Discard())
	d.Start()

	var mu sync.Mutex
	var order []string
	record := func(s string) {
		mu.Lock()
		defer mu.Unlock()
		order = append(order, s)
	}

	d.Enqueue(Job{Name: "fail", Run: func(context.Context) error { record("fail"); return errors.New("smtp down") }})
	d.Enqueue(Job{Name: "panic", Run: func(context.Context) error { record("panic"); panic("boom") }})
	d.Enqueue(Job{Name: "ok", Run: func(context.Context) error { record("ok"); return nil }})

	require.NoError(t, d.Stop(context.Background()))
	assert.Equal(t, []string{"fail", "panic", "ok"}, order)
}

func TestDispatcher_JobTimeout(t *testing.T) {
	d := NewDispatcher(DispatcherConfig{Workers: 1, QueueSize: 1, Timeout: 20 * time.Millisecond}, logs.Discard())
	d.Start()

	got := make(chan error, 1)
	d.Enqueue(Job{Name: "slow", Run: func(ctx context.Context) error {
		<-ctx.Done()
		got <- ctx.Err()
		return ctx.Err()
	}})

	select {
	case err := <-got:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(2 * time.Second):
		t.Fatal("job context never expired")
	}
	require.NoError(t, d.Stop(context.Background()))
}

func TestDispatcher_StopBeforeStart(t *testing.T) {
	d := NewDispatcher(DispatcherConfig{}, logs.Discard())
	assert.NoError(t, d.Stop(context.Background()))
	assert.False(t, d.Enqueue(Job{Name: "x"}))
}
