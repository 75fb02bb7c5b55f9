package engine

import "github.com/lgbarn/mockfish-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree of the given depth,
// starting with colour to move and alternating colours each ply.
func Perft(g *Game, colour chess.Colour, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(g, colour)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child := g.Clone()
		child.Apply(m)
		nodes += Perft(child, colour.Opposite(), depth-1)
	}
	return nodes
}
