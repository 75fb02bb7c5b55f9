package engine

import "github.com/lgbarn/mockfish-go/internal/chess"

// LegalMoves returns the moves of the given colour that do not leave its
// king attacked. Each pseudo-legal candidate is applied to a clone of g and
// kept only if the clone's check flag for colour is clear. Order follows
// PseudoLegalMoves.
func LegalMoves(g *Game, colour chess.Colour) chess.MoveList {
	candidates := PseudoLegalMoves(g, colour)
	legal := candidates[:0]
	for _, m := range candidates {
		if leavesKingSafe(g, m, colour) {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMovesFrom returns the legal moves of the piece on from.
func LegalMovesFrom(g *Game, from chess.Square) chess.MoveList {
	piece := g.Board.Get(from)
	if piece.IsEmpty() {
		return nil
	}
	candidates := PseudoLegalMovesFrom(g, piece.Colour, from)
	legal := candidates[:0]
	for _, m := range candidates {
		if leavesKingSafe(g, m, piece.Colour) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(g *Game, colour chess.Colour) bool {
	for _, m := range PseudoLegalMoves(g, colour) {
		if leavesKingSafe(g, m, colour) {
			return true
		}
	}
	return false
}

// leavesKingSafe makes the move on a copy of the game and checks if the
// mover's king is attacked afterwards.
func leavesKingSafe(g *Game, m chess.Move, colour chess.Colour) bool {
	testGame := g.Clone()
	testGame.Apply(m)
	return !testGame.InCheck(colour)
}
