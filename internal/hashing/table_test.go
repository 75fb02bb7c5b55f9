package hashing

import "testing"

func TestPerftTable_ProbeStore(t *testing.T) {
	table := NewPerftTable(0)

	if _, ok := table.Probe(42, 3); ok {
		t.Fatal("Probe on empty table succeeded")
	}
	table.Store(42, 3, 8902)

	n, ok := table.Probe(42, 3)
	if !ok || n != 8902 {
		t.Errorf("Probe(42, 3) = %d, %v; want 8902, true", n, ok)
	}
	if _, ok := table.Probe(42, 2); ok {
		t.Error("depth is not part of the entry")
	}
	if table.Hits() != 1 || table.Misses() != 2 {
		t.Errorf("Hits/Misses = %d/%d; want 1/2", table.Hits(), table.Misses())
	}
}

func TestPerftTable_Capacity(t *testing.T) {
	table := NewPerftTable(2)
	table.Store(1, 1, 10)
	table.Store(2, 1, 20)

	if !table.IsFull() {
		t.Fatal("IsFull() = false at capacity")
	}
	table.Store(3, 1, 30)
	if _, ok := table.Probe(3, 1); ok {
		t.Error("full table accepted a new entry")
	}

	table.Store(1, 1, 11)
	if n, _ := table.Probe(1, 1); n != 11 {
		t.Errorf("existing entry = %d after overwrite; want 11", n)
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d; want 2", table.Len())
	}
}

func TestPerftTable_Reset(t *testing.T) {
	table := NewPerftTable(0)
	table.Store(1, 1, 10)
	table.Probe(1, 1)
	table.Reset()

	if table.Len() != 0 || table.Hits() != 0 || table.Misses() != 0 {
		t.Error("Reset() left state behind")
	}
	if table.IsFull() {
		t.Error("unlimited table reports full")
	}
}
