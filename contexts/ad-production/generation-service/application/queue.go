package application

import (
	"context"
	"log/slog"
	"sync"

	domainerrors "adforge/contexts/ad-production/generation-service/domain/errors"
)

const defaultBacklog = 64

// Pool runs submitted tasks on a fixed number of workers. Tasks start in
// submission order; submissions beyond the backlog block until a slot frees
// up rather than being dropped. A task that has started is never cancelled,
// workers check the pool context only between tasks.
type Pool struct {
	name   string
	width  int
	tasks  chan func(context.Context)
	logger *slog.Logger

	closeOnce sync.Once
	closed    chan struct{}
	done      sync.WaitGroup
}

func NewPool(name string, width, backlog int, logger *slog.Logger) *Pool {
	if width <= 0 {
		width = 1
	}
	if backlog <= 0 {
		backlog = defaultBacklog
	}
	return &Pool{
		name:   name,
		width:  width,
		tasks:  make(chan func(context.Context), backlog),
		logger: ResolveLogger(logger),
		closed: make(chan struct{}),
	}
}

// Start launches the workers. The given context is handed to every task and
// stops the workers once the task channel drains after Close.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.width; i++ {
		p.done.Add(1)
		go p.worker(ctx, i)
	}
}

func (p *Pool) worker(ctx context.Context, index int) {
	defer p.done.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-p.tasks:
			if !ok {
				return
			}
			task(ctx)
		}
	}
}

// Submit enqueues one task in FIFO order. It blocks while the backlog is
// full and fails only when the caller's context ends or the pool is closed.
func (p *Pool) Submit(ctx context.Context, task func(context.Context)) error {
	select {
	case <-p.closed:
		return domainerrors.ErrQueueClosed
	default:
	}
	select {
	case p.tasks <- task:
		return nil
	case <-p.closed:
		return domainerrors.ErrQueueClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting submissions and waits for queued tasks to finish.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.closed)
		close(p.tasks)
	})
	p.done.Wait()
	p.logger.Debug("generation pool drained",
		"event", "generation_pool_drained",
		"module", "ad-production/generation-service",
		"layer", "application",
		"pool", p.name,
	)
}
