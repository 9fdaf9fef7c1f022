package forward

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/marcelsud/callback-inbox/callback"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
)

/* Runner is the background queue of auto-forward jobs
 * Enqueue never blocks the caller: when the queue is full the job waits in its own goroutine
 * Shutdown stops intake, lets queued and in-flight jobs finish until the deadline,
 * then cancels whatever is still running
 */

const (
	DefaultWorkers   = 4
	DefaultQueueSize = 1024
)

// Job asks for a recorded message to be forwarded to its receiver's enabled targets
type Job struct {
	Message callback.Message
}

// TargetLister lists the enabled forward targets of a receiver
type TargetLister interface {
	EnabledTargets(ctx context.Context, receiverID int64) ([]callback.ForwardTarget, error)
}

// BatchDispatcher forwards one message to several targets
type BatchDispatcher interface {
	DispatchAll(ctx context.Context, m callback.Message, targets []callback.ForwardTarget) []Result
}

type Runner struct {
	targets    TargetLister
	dispatcher BatchDispatcher
	workers    int
	logger     zerolog.Logger

	jobs     chan Job
	pending  atomic.Int64
	overflow sync.WaitGroup
	pool     conc.WaitGroup

	mu     sync.RWMutex
	closed bool

	runCtx context.Context
	cancel context.CancelFunc
}

func NewRunner(targets TargetLister, dispatcher BatchDispatcher, workers, queueSize int, logger zerolog.Logger) *Runner {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{
		targets:    targets,
		dispatcher: dispatcher,
		workers:    workers,
		logger:     logger,
		jobs:       make(chan Job, queueSize),
		runCtx:     ctx,
		cancel:     cancel,
	}
}

// Start launches the workers
func (r *Runner) Start() {
	for i := 0; i < r.workers; i++ {
		r.pool.Go(r.work)
	}
}

// Enqueue schedules job and reports whether it was accepted
func (r *Runner) Enqueue(job Job) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.logger.Warn().Int64("message_id", job.Message.ID).Msg("runner is shutting down, forward job dropped")
		return false
	}

	r.pending.Add(1)
	select {
	case r.jobs <- job:
	default:
		r.overflow.Add(1)
		go func() {
			defer r.overflow.Done()
			select {
			case r.jobs <- job:
			case <-r.runCtx.Done():
				r.pending.Add(-1)
				r.logger.Warn().Int64("message_id", job.Message.ID).Msg("forward job dropped at shutdown")
			}
		}()
	}
	return true
}

// Pending returns the number of accepted jobs no worker has picked up yet
func (r *Runner) Pending() int {
	return int(r.pending.Load())
}

/* Shutdown stops accepting jobs and waits for the workers
 * When ctx expires first, running forwards are cancelled; each still gets its forward log
 */
func (r *Runner) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	r.mu.Unlock()

	go func() {
		r.overflow.Wait()
		close(r.jobs)
	}()

	done := make(chan struct{})
	go func() {
		r.pool.Wait()
		close(done)
	}()

	defer r.cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		r.cancel()
		<-done
		return ctx.Err()
	}
}

func (r *Runner) work() {
	for job := range r.jobs {
		r.pending.Add(-1)
		r.run(job)
	}
}

func (r *Runner) run(job Job) {
	var pc panics.Catcher
	pc.Try(func() {
		m := job.Message
		targets, err := r.targets.EnabledTargets(r.runCtx, m.ReceiverID)
		if err != nil {
			r.logger.Error().Err(err).Int64("message_id", m.ID).Msg("listing forward targets")
			return
		}
		if len(targets) == 0 {
			return
		}

		results := r.dispatcher.DispatchAll(r.runCtx, m, targets)
		failed := 0
		for _, res := range results {
			if res.Err != nil {
				failed++
			}
		}
		r.logger.Debug().
			Int64("message_id", m.ID).
			Int("targets", len(results)).
			Int("failed", failed).
			Msg("message forwarded")
	})
	if recovered := pc.Recovered(); recovered != nil {
		r.logger.Error().Err(recovered.AsError()).Int64("message_id", job.Message.ID).Msg("forward job panicked")
	}
}
