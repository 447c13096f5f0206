package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/opsfin/invoice-engine/internal/common"
	"github.com/opsfin/invoice-engine/internal/pipeline"
)

// DocumentProcessor is the slice of the pipeline the queue drives.
type DocumentProcessor interface {
	ProcessDocument(ctx context.Context, path string) (*pipeline.Result, error)
}

// ErrQueueClosed is returned by Enqueue once Shutdown has begun; the job was
// not accepted and will not be processed.
var ErrQueueClosed = errors.New("queue is shut down")

// ProcessorQueue fans documents out to a fixed pool of workers. Each document
// runs its own pipeline attempt; there is no cross-document coordination.
type ProcessorQueue struct {
	proc    DocumentProcessor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	// mu guards closed and spans every channel send: Shutdown takes the write
	// lock before closing ch, so a send can never race the close.
	mu     sync.RWMutex
	closed bool
}

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewProcessorQueue(proc DocumentProcessor, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ProcessorQueue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: 2 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ProcessorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					res, err := q.proc.ProcessDocument(ctx, job.Path)
					cancel()

					switch {
					case errors.Is(err, common.ErrNoMatch):
						q.logger.Warn("no supplier template matched",
							"worker_id", workerID, "path", job.Path)
					case err != nil:
						q.logger.Error("processing failed",
							"worker_id", workerID, "path", job.Path, "error", err)
					default:
						q.logger.Info("document processed",
							"worker_id", workerID,
							"path", job.Path,
							"invoice_id", res.Invoice.ID,
							"status", res.Run.Status,
						)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ProcessorQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		q.logger.Warn("rejecting enqueue: queue is shut down", "path", job.Path)
		return ErrQueueClosed
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued document for processing", "path", job.Path)
	default:
		// workers keep draining, so the blocking send completes; the read
		// lock only delays Shutdown, not other producers
		q.logger.Warn("queue full, applying backpressure", "path", job.Path)
		q.ch <- job
	}
	return nil
}

func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
