package chess

import "math/bits"

// SquareSet is a 64-bit set of squares indexed by rank*8+file. It backs both
// the occupancy masks and the attacked-squares masks of a game.
//
// Every coordinate-taking method treats out-of-range input as absent: tests
// return false and mutations are no-ops. Ray walks depend on this.
type SquareSet uint64

// Test reports whether the square at file, rank is in the set.
func (s SquareSet) Test(file, rank int) bool {
	if !OnBoard(file, rank) {
		return false
	}
	return s>>uint(rank*BoardSize+file)&1 != 0
}

// Set adds the square at file, rank.
func (s *SquareSet) Set(file, rank int) {
	if !OnBoard(file, rank) {
		return
	}
	*s |= 1 << uint(rank*BoardSize+file)
}

// Clear removes the square at file, rank.
func (s *SquareSet) Clear(file, rank int) {
	if !OnBoard(file, rank) {
		return
	}
	*s &^= 1 << uint(rank*BoardSize+file)
}

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	return s.Test(sq.File, sq.Rank)
}

// Add adds sq to the set.
func (s *SquareSet) Add(sq Square) {
	s.Set(sq.File, sq.Rank)
}

// Remove removes sq from the set.
func (s *SquareSet) Remove(sq Square) {
	s.Clear(sq.File, sq.Rank)
}

// Intersects reports whether the two sets share a square.
func (s SquareSet) Intersects(other SquareSet) bool {
	return s&other != 0
}

// Count returns the number of squares in the set.
func (s SquareSet) Count() int {
	return bits.OnesCount64(uint64(s))
}

// Empty reports whether the set has no squares.
func (s SquareSet) Empty() bool {
	return s == 0
}

// Squares returns the members in ascending index order (a1, b1, ..., h8).
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Count())
	for v := uint64(s); v != 0; v &= v - 1 {
		i := bits.TrailingZeros64(v)
		out = append(out, Square{File: i % BoardSize, Rank: i / BoardSize})
	}
	return out
}
