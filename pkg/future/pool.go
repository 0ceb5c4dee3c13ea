package future

import (
	"context"
	"runtime"
	"sync"

	"github.com/ib-77/asyncrop/pkg/rop/core"
)

// Pool is an Executor backed by a fixed set of workers. Worker count, queue
// size, shutdown policy and logger are read from the context passed to
// NewPool (see core.WithWorkerQueueOptions, core.WithProcessOptions and
// core.WithLogger).
type Pool struct {
	ctx    context.Context
	cancel context.CancelFunc
	tasks  chan func()
	wg     *sync.WaitGroup
	logger core.Logger

	mu     sync.RWMutex
	closed bool
}

func NewPool(ctx context.Context) *Pool {
	workers := core.GetWorkerMaxCount(ctx, runtime.NumCPU())
	queueSize := core.GetWorkerQueueSize(ctx, workers)

	ctx, cancel := context.WithCancel(ctx)
	p := &Pool{
		ctx:    ctx,
		cancel: cancel,
		tasks:  make(chan func(), queueSize),
		wg:     &sync.WaitGroup{},
		logger: core.GetLogger(ctx),
	}

	handlers := core.CancellationHandlers[func()]{
		OnCancelUnprocessed: p.onCancelled,
		OnCancel:            p.drain,
	}

	for range workers {
		p.wg.Add(1)
		go core.Locomotive(ctx, p.tasks, p.run, handlers, nil, p.wg)
	}
	p.logger.Debugf("pool: started %d workers, queue %d", workers, queueSize)

	return p
}

// Execute queues task. When the queue is full, or once the pool is closed
// or stopped, the task runs on the calling goroutine so futures depending on
// it still resolve.
func (p *Pool) Execute(task func()) {
	p.mu.RLock()
	if p.closed || p.ctx.Err() != nil {
		p.mu.RUnlock()
		p.logger.Warn("pool: not accepting tasks, running inline")
		task()
		return
	}

	select {
	case p.tasks <- task:
		p.mu.RUnlock()
		return
	default:
	}
	p.mu.RUnlock()

	p.logger.Debug("pool: queue full, running inline")
	task()
}

// Close stops accepting tasks and waits until every queued task has run.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()

	p.wg.Wait()
	p.cancel()
	p.logger.Debug("pool: closed")
}

// Stop cancels the workers. Queued tasks are run by the stopping workers
// when process-remaining is enabled (the default) and dropped otherwise.
// Futures of dropped tasks never resolve.
func (p *Pool) Stop() {
	p.cancel()
	p.wg.Wait()

	var rest []func()
	p.mu.Lock()
	for queued := true; queued; {
		select {
		case task, ok := <-p.tasks:
			if !ok {
				queued = false
				break
			}
			rest = append(rest, task)
		default:
			queued = false
		}
	}
	p.mu.Unlock()

	for _, task := range rest {
		p.onCancelled(p.ctx, task)
	}
	p.logger.Debug("pool: stopped")
}

func (p *Pool) run(_ context.Context, task func()) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warnf("pool: task panicked: %v", r)
		}
	}()
	task()
}

func (p *Pool) drain(ctx context.Context, inputCh <-chan func()) {
	for {
		select {
		case task, ok := <-inputCh:
			if !ok {
				return
			}
			p.onCancelled(ctx, task)
		default:
			return
		}
	}
}

func (p *Pool) onCancelled(ctx context.Context, task func()) {
	if core.IsProcessRemainingEnabled(ctx, true) {
		p.run(ctx, task)
		return
	}
	p.logger.Warn("pool: dropped queued task")
}
