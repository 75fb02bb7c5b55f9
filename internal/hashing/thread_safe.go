package hashing

import (
	"sync"
)

// ThreadSafePerftTable wraps PerftTable with mutex protection for concurrent access.
type ThreadSafePerftTable struct {
	table *PerftTable
	mu    sync.RWMutex
}

// NewThreadSafePerftTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafePerftTable(maxCapacity int) *ThreadSafePerftTable {
	return &ThreadSafePerftTable{
		table: NewPerftTable(maxCapacity),
	}
}

// Probe returns the cached node count for key at depth.
// It takes the write lock because probing updates the hit counters.
func (t *ThreadSafePerftTable) Probe(key uint64, depth int) (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Probe(key, depth)
}

// Store records the node count for key at depth.
func (t *ThreadSafePerftTable) Store(key uint64, depth int, nodes uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Store(key, depth, nodes)
}

// Len returns the number of stored entries.
func (t *ThreadSafePerftTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Len()
}

// Hits returns the number of successful probes.
func (t *ThreadSafePerftTable) Hits() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Hits()
}

// Misses returns the number of failed probes.
func (t *ThreadSafePerftTable) Misses() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Misses()
}

// IsFull returns true if the table has reached its capacity limit.
func (t *ThreadSafePerftTable) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.IsFull()
}
