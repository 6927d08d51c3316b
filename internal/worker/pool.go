package worker

import (
	"log/slog"
	"sync"

	"github.com/baharkarakas/fitgroups-api/internal/metrics"
)

// DefaultQueueSize bounds the number of tasks waiting for a worker.
const DefaultQueueSize = 1024

type task func()

type Pool struct {
	wg   sync.WaitGroup
	jobs chan task

	mu      sync.RWMutex
	stopped bool
}

func NewPool(n int) *Pool { return NewPoolWithQueue(n, DefaultQueueSize) }

func NewPoolWithQueue(n, queue int) *Pool {
	if n <= 0 {
		n = 1
	}
	if queue < 0 {
		queue = 0
	}
	p := &Pool{jobs: make(chan task, queue)}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				metrics.WorkerQueueDepth.Dec()
				run(job)
			}
		}()
	}
	return p
}

func run(job task) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("worker task panic", "err", rec)
		}
	}()
	job()
}

// Submit queues f, blocking while the queue is full. It reports false once
// the pool has been stopped.
func (p *Pool) Submit(f func()) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return false
	}
	metrics.WorkerQueueDepth.Inc()
	p.jobs <- f
	return true
}

// TrySubmit queues f without waiting. It reports false when the queue is
// full or the pool has been stopped.
func (p *Pool) TrySubmit(f func()) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return false
	}
	metrics.WorkerQueueDepth.Inc()
	select {
	case p.jobs <- f:
		return true
	default:
		metrics.WorkerQueueDepth.Dec()
		return false
	}
}

// Stop rejects further submissions, then waits for queued tasks to finish.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		p.wg.Wait()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}
