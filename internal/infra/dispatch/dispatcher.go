package dispatch

import (
	"context"
	"log/slog"
	"sync"

	"hyperlocal/config"
	"hyperlocal/internal/domain/service"
	"hyperlocal/internal/infra/metrics"

	"go.uber.org/fx"
)

type task struct {
	name string
	run  func(ctx context.Context)
}

// Dispatcher is a bounded in-process work queue drained by a fixed worker pool.
// Submit never blocks; a full queue rejects the task.
type Dispatcher struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	workers int

	queue chan task
	wg    sync.WaitGroup

	mu      sync.RWMutex
	stopped bool

	ctx    context.Context
	cancel context.CancelFunc
}

// Params holds dependencies for the dispatcher, injected by Fx
type Params struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// NewDispatcher creates the dispatcher and ties its workers to the Fx lifecycle.
func NewDispatcher(params Params) service.TaskDispatcher {
	cfg := params.Config.Notification
	d := New(cfg.DispatcherWorkers, cfg.DispatcherQueueSize, params.Logger, params.Metrics)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			d.Start()

			return nil
		},
		OnStop: d.Stop,
	})

	return d
}

// New creates a dispatcher. Call Start before submitting work.
func New(workers, queueSize int, logger *slog.Logger, m *metrics.Metrics) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Dispatcher{
		logger:  logger,
		metrics: m,
		workers: workers,
		queue:   make(chan task, queueSize),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start launches the workers.
func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.work()
	}

	d.logger.Info("[Dispatcher] Started",
		slog.Int("workers", d.workers),
		slog.Int("queue_size", cap(d.queue)),
	)
}

// Submit queues a task. It returns ErrDispatchQueueFull or ErrDispatcherStopped
// when the task was not accepted.
func (d *Dispatcher) Submit(name string, run func(ctx context.Context)) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		return service.ErrDispatcherStopped
	}

	select {
	case d.queue <- task{name: name, run: run}:
		d.metrics.SetDispatchQueueDepth(len(d.queue))

		return nil
	default:
		d.metrics.ObserveDispatch(name, "rejected")
		d.logger.Warn("[Dispatcher] Queue full, task rejected", slog.String("task", name))

		return service.ErrDispatchQueueFull
	}
}

// Stop refuses new work and drains the queue. If ctx expires first, running
// tasks see their context cancelled and Stop returns without waiting for them:
// a task that detached from its context finishes in the background.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()

		return nil
	}
	d.stopped = true
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.cancel()
		d.logger.Info("[Dispatcher] Drained and stopped")

		return nil
	case <-ctx.Done():
		d.cancel()
		d.logger.Warn("[Dispatcher] Stop deadline reached, pending tasks cancelled",
			slog.Int("queued", len(d.queue)),
		)

		return ctx.Err()
	}
}

func (d *Dispatcher) work() {
	defer d.wg.Done()

	for t := range d.queue {
		d.metrics.SetDispatchQueueDepth(len(d.queue))
		d.run(t)
	}
}

func (d *Dispatcher) run(t task) {
	defer func() {
		if r := recover(); r != nil {
			d.metrics.ObserveDispatch(t.name, "panic")
			d.logger.Error("[Dispatcher] Task panicked",
				slog.String("task", t.name),
				slog.Any("panic", r),
			)
		}
	}()

	t.run(d.ctx)
	d.metrics.ObserveDispatch(t.name, "done")
}
