package dispatch

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hyperlocal/internal/domain/service"
	"hyperlocal/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(workers, size int) *Dispatcher {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return New(workers, size, logger, metrics.New(prometheus.NewRegistry()))
}

func TestDispatcher_RunsSubmittedTasks(t *testing.T) {
	d := newTestDispatcher(2, 8)
	d.Start()

	var count atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		require.NoError(t, d.Submit("count", func(context.Context) {
			defer wg.Done()
			count.Add(1)
		}))
	}
	wg.Wait()

	require.NoError(t, d.Stop(context.Background()))
	assert.Equal(t, int32(5), count.Load())
}

func TestDispatcher_RejectsWhenFull(t *testing.T) {
	d := newTestDispatcher(1, 1)
	d.Start()

	release := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, d.Submit("block", func(context.Context) {
		close(started)
		<-release
	}))
	<-started

	require.NoError(t, d.Submit("queued", func(context.Context) {}))
	err := d.Submit("overflow", func(context.Context) {})
	assert.ErrorIs(t, err, service.ErrDispatchQueueFull)

	close(release)
	require.NoError(t, d.Stop(context.Background()))
}

func TestDispatcher_StopDrainsAndRefuses(t *testing.T) {
	d := newTestDispatcher(1, 4)

	var ran atomic.Bool
	require.NoError(t, d.Submit("late", func(context.Context) { ran.Store(true) }))

	d.Start()
	require.NoError(t, d.Stop(context.Background()))

	assert.True(t, ran.Load(), "queued work is drained on stop")
	assert.ErrorIs(t, d.Submit("after", func(context.Context) {}), service.ErrDispatcherStopped)
	assert.NoError(t, d.Stop(context.Background()), "stop is idempotent")
}

func TestDispatcher_StopDeadlineCancelsTasks(t *testing.T) {
	d := newTestDispatcher(1, 1)
	d.Start()

	cancelled := make(chan struct{})
	require.NoError(t, d.Submit("slow", func(ctx context.Context) {
		<-ctx.Done()
		close(cancelled)
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := d.Stop(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	<-cancelled
}

func TestDispatcher_StopDeadlineDoesNotWaitForDetachedTasks(t *testing.T) {
	d := newTestDispatcher(1, 1)
	d.Start()

	release := make(chan struct{})
	started := make(chan struct{})
	finished := make(chan struct{})
	require.NoError(t, d.Submit("detached", func(context.Context) {
		close(started)
		<-release
		close(finished)
	}))
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	stopped := make(chan error, 1)
	go func() { stopped <- d.Stop(ctx) }()

	select {
	case err := <-stopped:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(2 * time.Second):
		t.Fatal("Stop blocked on a task that ignores cancellation")
	}

	close(release)
	<-finished
}

func TestDispatcher_RecoversPanics(t *testing.T) {
	d := newTestDispatcher(1, 2)
	d.Start()

	done := make(chan struct{})
	require.NoError(t, d.Submit("boom", func(context.Context) { panic("boom") }))
	require.NoError(t, d.Submit("after", func(context.Context) { close(done) }))

	<-done
	require.NoError(t, d.Stop(context.Background()))
}
