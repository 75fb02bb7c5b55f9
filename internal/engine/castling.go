package engine

import "github.com/lgbarn/mockfish-go/internal/chess"

// Castling sides. The queenside rook starts on file 0, the kingside rook on file 7.
const (
	QueensideRookFile = 0
	KingsideRookFile  = chess.BoardSize - 1
)

// CastlingRights holds the four independent castling flags.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights returns rights with every flag set.
func AllCastlingRights() CastlingRights {
	return CastlingRights{
		WhiteKingside:  true,
		WhiteQueenside: true,
		BlackKingside:  true,
		BlackQueenside: true,
	}
}

// Kingside reports the kingside right of the given colour.
func (r CastlingRights) Kingside(colour chess.Colour) bool {
	if colour == chess.White {
		return r.WhiteKingside
	}
	return r.BlackKingside
}

// Queenside reports the queenside right of the given colour.
func (r CastlingRights) Queenside(colour chess.Colour) bool {
	if colour == chess.White {
		return r.WhiteQueenside
	}
	return r.BlackQueenside
}

// SetKingside sets the kingside right of the given colour.
func (r *CastlingRights) SetKingside(colour chess.Colour, allowed bool) {
	if colour == chess.White {
		r.WhiteKingside = allowed
	} else {
		r.BlackKingside = allowed
	}
}

// SetQueenside sets the queenside right of the given colour.
func (r *CastlingRights) SetQueenside(colour chess.Colour, allowed bool) {
	if colour == chess.White {
		r.WhiteQueenside = allowed
	} else {
		r.BlackQueenside = allowed
	}
}

// String returns the rights in FEN style, e.g. "KQkq" or "-".
func (r CastlingRights) String() string {
	var s []byte
	if r.WhiteKingside {
		s = append(s, 'K')
	}
	if r.WhiteQueenside {
		s = append(s, 'Q')
	}
	if r.BlackKingside {
		s = append(s, 'k')
	}
	if r.BlackQueenside {
		s = append(s, 'q')
	}
	if len(s) == 0 {
		return "-"
	}
	return string(s)
}

// updateCastlingRights removes rights when a king or rook moves. A king
// move clears both sides; a rook move clears the side of the file it
// started on. Captures of a rook do not clear the victim's rights.
func updateCastlingRights(rights *CastlingRights, piece chess.Piece, from chess.Square) {
	switch piece.Kind {
	case chess.King:
		rights.SetKingside(piece.Colour, false)
		rights.SetQueenside(piece.Colour, false)
	case chess.Rook:
		if from.File == QueensideRookFile {
			rights.SetQueenside(piece.Colour, false)
		}
		if from.File == KingsideRookFile {
			rights.SetKingside(piece.Colour, false)
		}
	}
}

// castlingMoves adds the two-square king moves available to the king on
// from. The right must be set, the king must not be in check, and every
// square strictly between king and rook must be empty. Under the default
// rules the square the king passes over is not tested for attack.
func castlingMoves(g *Game, colour chess.Colour, from chess.Square, piece chess.Piece, moves *chess.MoveList) {
	if g.InCheck(colour) {
		return
	}
	enemyAttacks := g.Attacks(colour.Opposite())

	if g.Rights.Queenside(colour) && pathClear(g, from, QueensideRookFile) {
		transit := from.Offset(-1, 0)
		if !g.Rules.StrictCastling || !enemyAttacks.Has(transit) {
			moves.Add(chess.NewMove(from, from.Offset(-2, 0), piece))
		}
	}
	if g.Rights.Kingside(colour) && pathClear(g, from, KingsideRookFile) {
		transit := from.Offset(1, 0)
		if !g.Rules.StrictCastling || !enemyAttacks.Has(transit) {
			moves.Add(chess.NewMove(from, from.Offset(2, 0), piece))
		}
	}
}

// pathClear reports whether every square strictly between from and the
// rook file on from's rank is empty.
func pathClear(g *Game, from chess.Square, rookFile int) bool {
	dir := sign(rookFile - from.File)
	if dir == 0 {
		return false
	}
	for file := from.File + dir; file != rookFile; file += dir {
		if g.occupied.Test(file, from.Rank) {
			return false
		}
	}
	return true
}
