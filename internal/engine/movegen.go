package engine

import "github.com/lgbarn/mockfish-go/internal/chess"

// PseudoLegalMoves returns the moves of every piece of the given colour
// without testing whether they leave the king attacked. Squares are visited
// file by file (a-file first), ranks ascending within a file.
func PseudoLegalMoves(g *Game, colour chess.Colour) chess.MoveList {
	moves := chess.NewMoveList()
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			if !g.Board.Squares[file][rank].Is(colour) {
				continue
			}
			addPieceMoves(g, colour, chess.Square{File: file, Rank: rank}, &moves)
		}
	}
	return moves
}

// PseudoLegalMovesFrom returns the moves of the single piece on from, which
// the caller guarantees belongs to colour.
func PseudoLegalMovesFrom(g *Game, colour chess.Colour, from chess.Square) chess.MoveList {
	var moves chess.MoveList
	addPieceMoves(g, colour, from, &moves)
	return moves
}

// addPieceMoves dispatches on the kind of the piece on from.
func addPieceMoves(g *Game, colour chess.Colour, from chess.Square, moves *chess.MoveList) {
	piece := g.Board.Get(from)
	allies := g.Pieces(colour)

	switch piece.Kind {
	case chess.Pawn:
		pawnMoves(g, colour, from, piece, moves)

	case chess.Knight:
		offsetMoves(allies, from, piece, knightOffsets, moves)

	case chess.King:
		offsetMoves(allies, from, piece, kingOffsets, moves)
		castlingMoves(g, colour, from, piece, moves)

	case chess.Bishop, chess.Rook, chess.Queen:
		slidingMoves(g.occupied, allies, from, piece, slidingDirs(piece.Kind), moves)
	}
}

// pawnMoves adds pushes and captures. A single push needs an empty target;
// the double push from the pawn rank needs both squares empty; a capture
// needs an enemy on the diagonal.
func pawnMoves(g *Game, colour chess.Colour, from chess.Square, piece chess.Piece, moves *chess.MoveList) {
	dir := chess.ColourOffset(colour)
	enemies := g.Pieces(colour.Opposite())

	one := from.Offset(0, dir)
	if one.Valid() && !g.occupied.Has(one) {
		addPromotions(chess.NewMove(from, one, piece), moves)
		if from.Rank == chess.PawnRank(colour) {
			two := from.Offset(0, 2*dir)
			if !g.occupied.Has(two) {
				moves.Add(chess.NewMove(from, two, piece))
			}
		}
	}
	for _, df := range [...]int{-1, 1} {
		target := from.Offset(df, dir)
		if enemies.Has(target) {
			addPromotions(chess.NewMove(from, target, piece), moves)
		}
	}
}

// addPromotions adds m, expanded into one move per promotion kind when it
// lands on the far rank.
func addPromotions(m chess.Move, moves *chess.MoveList) {
	if m == chess.NoMove || !m.IsPromotion() {
		moves.Add(m)
		return
	}
	for _, kind := range chess.PromotionKinds {
		promoted := m
		promoted.Piece = chess.MakePiece(m.Piece.Colour, kind)
		moves.Add(promoted)
	}
}

// offsetMoves adds fixed-offset targets not occupied by an ally.
func offsetMoves(allies chess.SquareSet, from chess.Square, piece chess.Piece, offsets [][2]int, moves *chess.MoveList) {
	for _, off := range offsets {
		if allies.Test(from.File+off[0], from.Rank+off[1]) {
			continue
		}
		moves.Add(chess.NewMove(from, from.Offset(off[0], off[1]), piece))
	}
}

// slidingMoves walks each ray, adding squares not held by an ally and
// stopping after the first occupied square.
func slidingMoves(occupied, allies chess.SquareSet, from chess.Square, piece chess.Piece, dirs [][2]int, moves *chess.MoveList) {
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.Valid() {
			if !allies.Has(to) {
				moves.Add(chess.NewMove(from, to, piece))
			}
			if occupied.Has(to) {
				break // Blocked
			}
			to = to.Offset(dir[0], dir[1])
		}
	}
}
