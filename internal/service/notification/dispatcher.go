package notification

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"

	"github.com/yosapark/yomogi_backend/config"
)

var ErrStopped = errors.New("notification: dispatcher stopped")

// Job is one outgoing delivery. Run must honour ctx.
type Job struct {
	Name      string
	RequestID string
	Run       func(ctx context.Context) error
}

type DispatcherConfig struct {
	Workers   int
	QueueSize int
	Timeout   time.Duration
}

func DispatcherConfigFromCentral(c config.NotificationConfig) DispatcherConfig {
	return DispatcherConfig{
		Workers:   c.Workers,
		QueueSize: c.QueueSize,
		Timeout:   time.Duration(c.TimeoutSeconds) * time.Second,
	}
}

// Dispatcher runs jobs on a fixed pool of workers fed by a bounded queue.
// Delivery is at most once: a full queue drops the job, a failed job is
// logged and not retried.
type Dispatcher struct {
	cfg    DispatcherConfig
	logger *slog.Logger
	queue  chan Job
	wg     conc.WaitGroup

	mu      sync.RWMutex
	started bool
	closed  bool
}

func NewDispatcher(cfg DispatcherConfig, logger *slog.Logger) *Dispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize < 0 {
		cfg.QueueSize = 0
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Dispatcher{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "notification_dispatcher")),
		queue:  make(chan Job, cfg.QueueSize),
	}
}

// Start launches the workers. Calling it twice is a no-op.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.closed {
		return
	}
	d.started = true

	for range d.cfg.Workers {
		d.wg.Go(d.work)
	}
	d.logger.Info("started", "workers", d.cfg.Workers, "queue_size", d.cfg.QueueSize)
}

// Enqueue hands job to the workers without blocking. It reports false when
// the job was dropped.
func (d *Dispatcher) Enqueue(job Job) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn("job dropped", "job", job.Name, "request_id", job.RequestID, "error", ErrStopped)
		return false
	}

	select {
	case d.queue <- job:
		return true
	default:
		d.logger.Warn("job dropped, queue full", "job", job.Name, "request_id", job.RequestID)
		return false
	}
}

// Stop refuses new jobs, lets the workers drain the queue and waits for
// them until ctx is done.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	started := d.started
	d.mu.Unlock()

	if !started {
		return nil
	}

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) work() {
	for job := range d.queue {
		d.run(job)
	}
}

func (d *Dispatcher) run(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), d.cfg.Timeout)
	defer cancel()

	start := time.Now()
	var err error

	var pc panics.Catcher
	pc.Try(func() { err = job.Run(ctx) })
	if r := pc.Recovered(); r != nil {
		err = r.AsError()
	}

	log := d.logger.With("job", job.Name, "request_id", job.RequestID, "duration_ms", time.Since(start).Milliseconds())
	if err != nil {
		log.Warn("job failed", "error", err)
		return
	}
	log.Debug("job done")
}
