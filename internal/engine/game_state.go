// Package engine implements the rules core: derived game state, attack
// computation, move generation, the legality filter and move application.
//
// A Game is mutated in place. Every mutation path ends in Update, which
// recomputes all derived masks and flags from the board alone, so callers
// only ever read derived fields that are consistent with the squares.
package engine

import "github.com/lgbarn/mockfish-go/internal/chess"

// Rules selects optional rule strictness. The zero value reproduces the
// engine's default behaviour.
type Rules struct {
	// StrictCastling additionally requires the square the king passes over
	// to be unattacked. By default only the king's origin is tested.
	StrictCastling bool
}

// Game is a board plus the state derived from it.
type Game struct {
	Board chess.Board

	// Castling rights. These are the only non-derived fields besides the board.
	Rights CastlingRights

	Rules Rules

	occupied     chess.SquareSet
	whitePieces  chess.SquareSet
	blackPieces  chess.SquareSet
	whiteKing    chess.SquareSet
	blackKing    chess.SquareSet
	whiteAttacks chess.SquareSet
	blackAttacks chess.SquareSet
	whiteInCheck bool
	blackInCheck bool
}

// NewGame returns an empty game with no castling rights.
func NewGame() *Game {
	g := &Game{}
	g.Update()
	return g
}

// NewInitialGame returns a game set up in the standard starting position
// with all four castling rights.
func NewInitialGame() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// Reset restores the standard starting position and all castling rights.
func (g *Game) Reset() {
	g.Board.SetupInitialPosition()
	g.Rights = AllCastlingRights()
	g.Update()
}

// ClearBoard removes every piece and all castling rights.
func (g *Game) ClearBoard() {
	g.Board.Clear()
	g.Rights = CastlingRights{}
	g.Update()
}

// Clone returns an independent copy of the game.
func (g *Game) Clone() *Game {
	c := *g
	return &c
}

// Place puts piece on sq and recomputes derived state.
func (g *Game) Place(sq chess.Square, piece chess.Piece) {
	g.Board.Set(sq, piece)
	g.Update()
}

// Remove clears sq and recomputes derived state.
func (g *Game) Remove(sq chess.Square) {
	g.Board.Set(sq, chess.Empty)
	g.Update()
}

// Update recomputes every derived field from the board, in dependency
// order: per-colour occupancy, combined occupancy, king masks, attacked
// squares (occluded by the combined occupancy), then check flags.
// It is idempotent.
func (g *Game) Update() {
	g.whitePieces = findPieces(&g.Board, chess.White)
	g.blackPieces = findPieces(&g.Board, chess.Black)
	g.occupied = g.whitePieces | g.blackPieces
	g.whiteKing = findKing(&g.Board, chess.White)
	g.blackKing = findKing(&g.Board, chess.Black)
	g.whiteAttacks = Attacks(&g.Board, g.occupied, chess.White)
	g.blackAttacks = Attacks(&g.Board, g.occupied, chess.Black)
	g.whiteInCheck = g.whiteKing.Intersects(g.blackAttacks)
	g.blackInCheck = g.blackKing.Intersects(g.whiteAttacks)
}

// PieceAt returns the piece on sq.
func (g *Game) PieceAt(sq chess.Square) chess.Piece {
	return g.Board.Get(sq)
}

// Occupied returns the squares holding a piece of either colour.
func (g *Game) Occupied() chess.SquareSet {
	return g.occupied
}

// Pieces returns the squares holding a piece of the given colour.
func (g *Game) Pieces(colour chess.Colour) chess.SquareSet {
	if colour == chess.White {
		return g.whitePieces
	}
	return g.blackPieces
}

// King returns the square set holding the given colour's king.
func (g *Game) King(colour chess.Colour) chess.SquareSet {
	if colour == chess.White {
		return g.whiteKing
	}
	return g.blackKing
}

// Attacks returns the squares attacked by the given colour.
func (g *Game) Attacks(colour chess.Colour) chess.SquareSet {
	if colour == chess.White {
		return g.whiteAttacks
	}
	return g.blackAttacks
}

// InCheck reports whether the given colour's king is attacked.
func (g *Game) InCheck(colour chess.Colour) bool {
	if colour == chess.White {
		return g.whiteInCheck
	}
	return g.blackInCheck
}

// IsConsistent reports whether the cached derived state matches a fresh
// recomputation from the board.
func (g *Game) IsConsistent() bool {
	fresh := g.Clone()
	fresh.Update()
	return *fresh == *g
}

// findPieces returns the squares occupied by the given colour.
func findPieces(board *chess.Board, colour chess.Colour) chess.SquareSet {
	var s chess.SquareSet
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			if board.Squares[file][rank].Is(colour) {
				s.Set(file, rank)
			}
		}
	}
	return s
}

// findKing returns the squares holding the given colour's king.
func findKing(board *chess.Board, colour chess.Colour) chess.SquareSet {
	var s chess.SquareSet
	king := chess.MakePiece(colour, chess.King)
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			if board.Squares[file][rank] == king {
				s.Set(file, rank)
			}
		}
	}
	return s
}
