// Package perft counts move-tree leaves for validating move generation,
// splitting the root moves across a worker pool and sharing a node cache.
package perft

import (
	"sort"
	"sync/atomic"

	"github.com/lgbarn/mockfish-go/internal/chess"
	"github.com/lgbarn/mockfish-go/internal/engine"
	"github.com/lgbarn/mockfish-go/internal/errors"
	"github.com/lgbarn/mockfish-go/internal/hashing"
	"github.com/lgbarn/mockfish-go/internal/worker"
)

// Entry is the subtree count below one root move.
type Entry struct {
	Move  chess.Move
	UCI   string
	Nodes uint64
}

// Result is a divided perft count. Entries follow legal move order.
type Result struct {
	Depth   int
	Entries []Entry
	Nodes   uint64
}

type options struct {
	workers int
	limit   uint64
	table   *hashing.ThreadSafePerftTable
}

// Option configures Divide.
type Option func(*options)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithNodeLimit aborts Divide once more than n nodes have been counted.
// Zero means no limit.
func WithNodeLimit(n uint64) Option {
	return func(o *options) {
		o.limit = n
	}
}

// WithTable shares a node cache across the workers. Without one every
// subtree is counted from scratch.
func WithTable(table *hashing.ThreadSafePerftTable) Option {
	return func(o *options) {
		o.table = table
	}
}

// Count returns the perft node count of g to depth with colour to move,
// consulting table for subtrees of depth 2 and more when table is non-nil.
func Count(g *engine.Game, colour chess.Colour, depth int, table *hashing.ThreadSafePerftTable) uint64 {
	if table == nil || depth <= 1 {
		return engine.Perft(g, colour, depth)
	}

	key := hashing.Key(g, colour)
	if nodes, ok := table.Probe(key, depth); ok {
		return nodes
	}

	var nodes uint64
	for _, m := range engine.LegalMoves(g, colour) {
		child := g.Clone()
		child.Apply(m)
		nodes += Count(child, colour.Opposite(), depth-1, table)
	}
	table.Store(key, depth, nodes)
	return nodes
}

// Divide counts each root move's subtree in parallel and returns the
// per-move counts with their total. g is not modified. With a node limit
// set, Divide fails with ErrNodeLimit once the running total passes it and
// skips the subtrees not yet started.
func Divide(g *engine.Game, colour chess.Colour, depth int, opts ...Option) (*Result, error) {
	if depth < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d", depth)
	}

	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	var total atomic.Uint64
	count := func(task worker.Task) (uint64, error) {
		nodes := Count(task.Game, task.Colour, task.Depth, o.table)
		if sum := total.Add(nodes); o.limit > 0 && sum > o.limit {
			return nodes, errors.Wrapf(errors.ErrNodeLimit, "%d nodes after %s, limit %d",
				sum, task.Move.UCI(&g.Board), o.limit)
		}
		return nodes, nil
	}

	moves := engine.LegalMoves(g, colour)
	pool := worker.New(count,
		worker.WithWorkers(o.workers),
		worker.WithQueueSize(len(moves)+1),
	)
	pool.Start()

	go func() {
		for i, m := range moves {
			child := g.Clone()
			child.Apply(m)
			task := worker.Task{Game: child, Move: m, Colour: colour.Opposite(), Depth: depth - 1, Index: i}
			if !pool.Submit(task) {
				break
			}
		}
		pool.Close()
	}()

	result := &Result{Depth: depth, Entries: make([]Entry, len(moves))}
	var firstErr error
	for out := range pool.Outcomes() {
		if out.Err != nil {
			if firstErr == nil {
				firstErr = out.Err
			}
			continue
		}
		result.Entries[out.Index] = Entry{
			Move:  out.Move,
			UCI:   out.Move.UCI(&g.Board),
			Nodes: out.Nodes,
		}
		result.Nodes += out.Nodes
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}

// Sorted returns the entries ordered by move text, the order perft
// listings are usually compared in.
func (r *Result) Sorted() []Entry {
	out := append([]Entry(nil), r.Entries...)
	sort.Slice(out, func(i, j int) bool { return out[i].UCI < out[j].UCI })
	return out
}
