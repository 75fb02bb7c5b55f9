package hashing

// entry identifies a cached subtree: the position key and remaining depth.
type entry struct {
	key   uint64
	depth int
}

// PerftTable caches perft node counts by position key and depth.
type PerftTable struct {
	nodes map[entry]uint64
	// maxCapacity limits stored entries (0 = unlimited)
	maxCapacity int
	hits        int
	misses      int
}

// NewPerftTable creates a new table. maxCapacity of 0 means unlimited capacity.
func NewPerftTable(maxCapacity int) *PerftTable {
	return &PerftTable{
		nodes:       make(map[entry]uint64),
		maxCapacity: maxCapacity,
	}
}

// Probe returns the cached node count for key at depth.
func (t *PerftTable) Probe(key uint64, depth int) (uint64, bool) {
	n, ok := t.nodes[entry{key, depth}]
	if ok {
		t.hits++
	} else {
		t.misses++
	}
	return n, ok
}

// Store records the node count for key at depth. Once the table is full,
// new entries are dropped; existing entries may still be overwritten.
func (t *PerftTable) Store(key uint64, depth int, nodes uint64) {
	e := entry{key, depth}
	if _, exists := t.nodes[e]; !exists && t.IsFull() {
		return
	}
	t.nodes[e] = nodes
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *PerftTable) IsFull() bool {
	return t.maxCapacity > 0 && len(t.nodes) >= t.maxCapacity
}

// Len returns the number of stored entries.
func (t *PerftTable) Len() int {
	return len(t.nodes)
}

// Hits returns the number of successful probes.
func (t *PerftTable) Hits() int {
	return t.hits
}

// Misses returns the number of failed probes.
func (t *PerftTable) Misses() int {
	return t.misses
}

// Reset clears the table and its counters.
func (t *PerftTable) Reset() {
	t.nodes = make(map[entry]uint64)
	t.hits = 0
	t.misses = 0
}
