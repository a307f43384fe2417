package scanner

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gnana997/tokenlint/pkg/compliance"
)

// workerPool fans file paths out to scan workers and collects FileReports.
//
// Read failures never travel on a separate error channel: the scan contract
// turns them into diagnostic-only FileReports, so a single results channel
// carries everything and the fan-in stays trivial.
type workerPool struct {
	numWorkers int
	jobs       chan string
	results    chan compliance.FileReport
	process    func(path string) compliance.FileReport
	logger     *slog.Logger
	wg         sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc

	started    atomic.Bool
	stopped    atomic.Bool
	jobsClosed atomic.Bool

	jobsSubmitted atomic.Int64
	jobsProcessed atomic.Int64
}

func newWorkerPool(numWorkers int, process func(string) compliance.FileReport, logger *slog.Logger) *workerPool {
	ctx, cancel := context.WithCancel(context.Background())
	return &workerPool{
		numWorkers: numWorkers,
		jobs:       make(chan string, numWorkers*2),
		results:    make(chan compliance.FileReport, numWorkers),
		process:    process,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// start spawns the worker goroutines. Must be called before submit.
func (wp *workerPool) start() {
	if !wp.started.CompareAndSwap(false, true) {
		wp.logger.Warn("worker pool already started")
		return
	}
	wp.logger.Debug("starting worker pool", "workers", wp.numWorkers)
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}
}

func (wp *workerPool) worker(id int) {
	defer wp.wg.Done()
	for {
		select {
		case <-wp.ctx.Done():
			return
		case path, ok := <-wp.jobs:
			if !ok {
				return
			}
			wp.logger.Debug("scanning file", "worker_id", id, "file", path)
			wp.results <- wp.process(path)
			wp.jobsProcessed.Add(1)
		}
	}
}

// submit enqueues a file for scanning. Blocks when the queue is full; honors
// caller cancellation through the provided context.
func (wp *workerPool) submit(ctx context.Context, path string) error {
	if wp.stopped.Load() {
		return fmt.Errorf("worker pool is stopped")
	}
	// Check first: a select with a ready buffer slot could otherwise race a
	// cancelled context and keep dispatching.
	if err := ctx.Err(); err != nil {
		return err
	}
	wp.jobsSubmitted.Add(1)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.ctx.Done():
		return fmt.Errorf("worker pool cancelled")
	case wp.jobs <- path:
		return nil
	}
}

// finishSubmitting closes the jobs channel so workers drain and exit.
// Idempotent.
func (wp *workerPool) finishSubmitting() {
	if wp.jobsClosed.CompareAndSwap(false, true) {
		close(wp.jobs)
	}
}

// stop waits for in-flight jobs, then closes the results channel so the
// collector's range loop terminates. Idempotent.
func (wp *workerPool) stop() {
	if !wp.stopped.CompareAndSwap(false, true) {
		return
	}
	wp.finishSubmitting()
	wp.wg.Wait()
	close(wp.results)
	wp.cancel()
	wp.logger.Debug("worker pool stopped",
		"jobs_submitted", wp.jobsSubmitted.Load(),
		"jobs_processed", wp.jobsProcessed.Load())
}
