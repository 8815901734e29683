// Package worker provides an asynchronous worker pool for persisting
// completed fights using the provided history.Driver.
//
// The pool decouples storage from the judge's streaming hot path: the
// response stream to the client finishes at its own pace while recording
// happens in the background.
package worker

import (
	"context"
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/timscodebase/versus/pkg/history"
)

var (
	defaultNumWorkers   uint = 2
	defaultJobQueueSize uint = 64
)

// Job is a unit of work for the worker pool to execute against.
type Job struct {
	Fight *history.Fight
}

// Config is the configuration options for the worker pool.
type Config struct {
	// Driver is the storage backend for persisting fights.
	Driver history.Driver

	// NumWorkers is the number of background workers in the pool.
	NumWorkers uint

	// QueueSize is the capacity of the buffered job channel.
	QueueSize uint

	// Logger is the provided zap logger
	Logger *zap.Logger
}

// Pool processes storage jobs asynchronously via a worker pool.
type Pool struct {
	config *Config
	queue  chan Job
	wg     sync.WaitGroup
	logger *zap.Logger
}

// NewPool creates a new Pool and starts its worker goroutines.
func NewPool(c *Config) (*Pool, error) {
	if c.NumWorkers == 0 {
		c.NumWorkers = defaultNumWorkers
	}

	if c.QueueSize == 0 {
		c.QueueSize = defaultJobQueueSize
	}

	if c.NumWorkers > uint(math.MaxInt) {
		return nil, fmt.Errorf("NumWorkers %d exceeds max int", c.NumWorkers)
	}

	wp := &Pool{
		config: c,
		queue:  make(chan Job, c.QueueSize),
		logger: c.Logger,
	}

	wp.wg.Add(int(c.NumWorkers))
	for i := range c.NumWorkers {
		go wp.worker(i)
	}

	return wp, nil
}

// Enqueue submits a job for processing by the worker pool.
// Returns true if enqueued, false if the job carries no fight or the queue is
// full, resulting in the job being dropped
func (p *Pool) Enqueue(job Job) bool {
	if job.Fight == nil {
		p.logger.Error("job not queued, nil fight")
		return false
	}

	select {
	case p.queue <- job:
		p.logger.Debug("fight queued for storage",
			zap.String("fight_id", job.Fight.ID),
		)
		return true
	default:
		p.logger.Error("job not queued, queue full, job dropped",
			zap.String("fight_id", job.Fight.ID),
		)
		return false
	}
}

// Close signals workers to stop and waits for in-flight jobs to drain.
// Call this during graceful shutdown after the HTTP server has stopped.
func (p *Pool) Close() {
	close(p.queue)
	p.wg.Wait()
}

// worker is the inner worker thread that continuously pulls jobs off the jobs queue
func (p *Pool) worker(id uint) {
	defer p.wg.Done()
	p.logger.Debug("worker started", zap.Uint("worker_id", id))

	for job := range p.queue {
		p.processJob(job)
	}

	p.logger.Debug("storage worker stopped", zap.Uint("worker_id", id))
}

// processJob persists one completed fight. Enqueue rejects nil fights, so
// every job that reaches a worker carries one.
func (p *Pool) processJob(job Job) {
	ctx := context.Background()

	if err := p.config.Driver.Put(ctx, job.Fight); err != nil {
		p.logger.Error("async fight storage failed",
			zap.String("fight_id", job.Fight.ID),
			zap.Error(err),
		)
		return
	}

	p.logger.Info("fight stored",
		zap.String("fight_id", job.Fight.ID),
		zap.String("winner", string(job.Fight.Winner)),
	)
}
