package async

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/opsfin/invoice-engine/constants"
	"github.com/opsfin/invoice-engine/internal/common"
	"github.com/opsfin/invoice-engine/internal/entity"
	"github.com/opsfin/invoice-engine/internal/pipeline"
)

type fakeProcessor struct {
	mu    sync.Mutex
	paths []string
	err   error
	delay time.Duration
}

func (f *fakeProcessor) ProcessDocument(_ context.Context, path string) (*pipeline.Result, error) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	f.paths = append(f.paths, path)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	id := uuid.New()
	return &pipeline.Result{
		Invoice: &entity.Invoice{ID: id},
		Run:     &entity.ProcessingRun{InvoiceID: id, Status: constants.RunSuccess},
	}, nil
}

func (f *fakeProcessor) processed() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.paths)
}

func TestQueueProcessesAllJobs(t *testing.T) {
	proc := &fakeProcessor{}
	q := NewProcessorQueue(proc, nil, WithWorkers(3), WithQueueSize(16))

	for i := 0; i < 10; i++ {
		if err := q.Enqueue(context.Background(), Job{Path: "/tmp/doc.txt", SubmittedAt: time.Now()}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}
	q.Shutdown(context.Background())

	if got := proc.processed(); got != 10 {
		t.Errorf("processed = %d, want 10", got)
	}
}

func TestQueueContinuesAfterFailures(t *testing.T) {
	// pipeline failures are logged per document and must not stall the pool
	proc := &fakeProcessor{err: common.ErrNoMatch}
	q := NewProcessorQueue(proc, nil, WithWorkers(2))

	for i := 0; i < 5; i++ {
		_ = q.Enqueue(context.Background(), Job{Path: "/tmp/unmatched.txt"})
	}
	q.Shutdown(context.Background())

	if got := proc.processed(); got != 5 {
		t.Errorf("processed = %d, want 5", got)
	}
}

func TestQueueEnqueueAfterShutdown(t *testing.T) {
	proc := &fakeProcessor{}
	q := NewProcessorQueue(proc, nil, WithWorkers(1))
	q.Shutdown(context.Background())

	// callers must learn the job was dropped
	if err := q.Enqueue(context.Background(), Job{Path: "/tmp/late.txt"}); !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("Enqueue after shutdown: err = %v, want ErrQueueClosed", err)
	}
	if got := proc.processed(); got != 0 {
		t.Errorf("processed = %d, want 0", got)
	}
}

func TestQueueBackpressureDeliversEverything(t *testing.T) {
	// a one-slot channel forces the blocking send path on most enqueues
	proc := &fakeProcessor{delay: 5 * time.Millisecond}
	q := NewProcessorQueue(proc, nil, WithWorkers(1), WithQueueSize(1))

	for i := 0; i < 8; i++ {
		if err := q.Enqueue(context.Background(), Job{Path: "/tmp/doc.txt"}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}
	q.Shutdown(context.Background())

	if got := proc.processed(); got != 8 {
		t.Errorf("processed = %d, want 8", got)
	}
}

func TestQueueShutdownIdempotent(t *testing.T) {
	q := NewProcessorQueue(&fakeProcessor{}, nil, WithWorkers(1))
	q.Shutdown(context.Background())
	q.Shutdown(context.Background()) // must not panic on a closed channel
}

func TestQueueShutdownHonorsContext(t *testing.T) {
	proc := &fakeProcessor{delay: 200 * time.Millisecond}
	q := NewProcessorQueue(proc, nil, WithWorkers(1))

	for i := 0; i < 5; i++ {
		_ = q.Enqueue(context.Background(), Job{Path: "/tmp/slow.txt"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	q.Shutdown(ctx)
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("Shutdown blocked %v despite cancelled context", elapsed)
	}
}
