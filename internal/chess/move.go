package chess

// MaxMoves bounds the number of moves generated for one colour in any
// position. MoveList grows dynamically; the constant is a capacity hint.
const MaxMoves = 256

// Move is a candidate move. Piece is the piece that ends up on To, so a
// promotion carries the promoted piece rather than the pawn.
type Move struct {
	From  Square
	To    Square
	Piece Piece
}

// NoMove is the sentinel invalid move. It is never generated.
var NoMove = Move{From: NoSquare, To: NoSquare}

// NewMove creates a move, or NoMove if to lies off the board.
func NewMove(from, to Square, piece Piece) Move {
	if !to.Valid() {
		return NoMove
	}
	return Move{From: from, To: to, Piece: piece}
}

// IsCastle returns true if this is a king move of more than one file.
func (m Move) IsCastle() bool {
	if m.Piece.Kind != King {
		return false
	}
	df := m.To.File - m.From.File
	return df > 1 || df < -1
}

// IsPromotion returns true if this is a pawn move onto the far rank. It
// describes a move whose promotion piece has not been chosen yet; generated
// promotions carry the promoted piece instead (see Promotes).
func (m Move) IsPromotion() bool {
	return m.Piece.Kind == Pawn && m.To.Rank == PromotionRank(m.Piece.Colour)
}

// Promotes reports whether applying m on b turns a pawn into another piece.
func (m Move) Promotes(b *Board) bool {
	return b.KindAt(m.From) == Pawn && m.Piece.Kind != Pawn && m.Piece.Kind != None
}

// String returns long algebraic notation without promotion suffix, e.g. "e2e4".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	return m.From.String() + m.To.String()
}

// UCI returns long algebraic notation as seen on b, adding the promotion
// letter when m promotes, e.g. "e7e8q".
func (m Move) UCI(b *Board) string {
	s := m.String()
	if m != NoMove && m.Promotes(b) {
		s += string(m.Piece.Kind.Letter() + ('a' - 'A'))
	}
	return s
}

// MoveList is an ordered list of moves.
type MoveList []Move

// NewMoveList returns an empty list with room for MaxMoves entries.
func NewMoveList() MoveList {
	return make(MoveList, 0, MaxMoves)
}

// Add appends m, silently discarding NoMove.
func (ml *MoveList) Add(m Move) {
	if m == NoMove {
		return
	}
	*ml = append(*ml, m)
}

// Contains reports whether m is in the list.
func (ml MoveList) Contains(m Move) bool {
	for _, candidate := range ml {
		if candidate == m {
			return true
		}
	}
	return false
}

// Destinations returns the set of squares the moves land on.
func (ml MoveList) Destinations() SquareSet {
	var s SquareSet
	for _, m := range ml {
		s.Add(m.To)
	}
	return s
}
