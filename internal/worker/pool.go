// Package worker splits perft subtree counts across a fixed set of
// goroutines.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/mockfish-go/internal/chess"
	"github.com/lgbarn/mockfish-go/internal/engine"
)

// Task is one root move whose subtree is to be counted. Game is the
// position after Move has been played and is owned by the task.
type Task struct {
	Game   *engine.Game
	Move   chess.Move
	Colour chess.Colour // side to move in Game
	Depth  int          // plies left below Move
	Index  int          // position of Move in the root move list
}

// Outcome is the count for one task.
type Outcome struct {
	Move  chess.Move
	Index int
	Nodes uint64
	Err   error
}

// CountFunc counts the subtree of a task.
type CountFunc func(task Task) (uint64, error)

// Pool runs a CountFunc over submitted tasks. The first failing task stops
// the pool: tasks still queued are dropped and Submit refuses new ones.
type Pool struct {
	count    CountFunc
	workers  int
	queue    int
	tasks    chan Task
	outcomes chan Outcome
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithQueueSize sets how many tasks and outcomes may wait unread.
func WithQueueSize(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.queue = n
		}
	}
}

// New returns a pool of one worker with a queue of ten unless options say
// otherwise. It does nothing until Start.
func New(count CountFunc, opts ...Option) *Pool {
	p := &Pool{count: count, workers: 1, queue: 10}
	for _, opt := range opts {
		opt(p)
	}
	p.tasks = make(chan Task, p.queue)
	p.outcomes = make(chan Outcome, p.queue)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for task := range p.tasks {
		if p.Stopped() {
			continue
		}
		nodes, err := p.count(task)
		if err != nil {
			p.Stop()
		}
		p.outcomes <- Outcome{Move: task.Move, Index: task.Index, Nodes: nodes, Err: err}
	}
}

// Submit queues task, blocking while the queue is full. It reports false
// without queueing once the pool has stopped.
func (p *Pool) Submit(task Task) bool {
	if p.Stopped() {
		return false
	}
	p.tasks <- task
	return true
}

// Stop makes the workers skip every task not yet started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and then closes Outcomes.
func (p *Pool) Close() {
	close(p.tasks)
	p.wg.Wait()
	close(p.outcomes)
}

// Outcomes delivers one Outcome per counted task. It is closed by Close.
func (p *Pool) Outcomes() <-chan Outcome {
	return p.outcomes
}
