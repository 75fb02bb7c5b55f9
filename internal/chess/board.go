package chess

import "fmt"

// Board is an 8x8 snapshot of piece placement, indexed [file][rank].
// It keeps no history and no derived state.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[file][0] = W(backRank[file])
		b.Squares[file][1] = W(Pawn)
		b.Squares[file][6] = B(Pawn)
		b.Squares[file][7] = B(backRank[file])
	}
}

// Clear removes every piece.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
}

// Get returns the piece on sq, or Empty when sq is off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b.Squares[sq.File][sq.Rank]
}

// Set places a piece on sq, overwriting whatever was there.
// Callers validate coordinates; an off-board square panics.
func (b *Board) Set(sq Square, piece Piece) {
	if !sq.Valid() {
		panic(fmt.Sprintf("chess: Set on off-board square %d,%d", sq.File, sq.Rank))
	}
	b.Squares[sq.File][sq.Rank] = piece
}

// KindAt returns the kind of the piece on sq.
func (b *Board) KindAt(sq Square) Kind {
	return b.Get(sq).Kind
}

// ColourAt returns the colour of the piece on sq. The result is
// meaningless for empty squares; check KindAt first.
func (b *Board) ColourAt(sq Square) Colour {
	return b.Get(sq).Colour
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
