package engine

import (
	"github.com/lgbarn/mockfish-go/internal/chess"
	"github.com/lgbarn/mockfish-go/internal/errors"
)

// Apply plays m on the game and recomputes derived state.
//
// The caller must pass a member of LegalMoves for the moving colour; Apply
// does not validate legality (use ApplyChecked for that). It clears the
// castling rights the moved king or rook gives up, empties the source and
// writes the move's carried piece (already the promoted piece for
// promotions) to the destination. A castle also brings the mover's rook
// from its home corner next to the king. When that corner holds anything
// else the king moves alone.
func (g *Game) Apply(m chess.Move) {
	g.movePiece(m)
	if m.IsCastle() {
		if rook, ok := rookRelocation(g, m); ok {
			g.movePiece(rook)
		}
	}
	g.Update()
}

// ApplyChecked applies m only if it is a legal move for the colour of the
// piece it carries, returning ErrIllegalMove otherwise.
func (g *Game) ApplyChecked(m chess.Move) error {
	if m == chess.NoMove || m.Piece.IsEmpty() {
		return errors.Wrapf(errors.ErrIllegalMove, "move %s", m)
	}
	if !LegalMoves(g, m.Piece.Colour).Contains(m) {
		return errors.Wrapf(errors.ErrIllegalMove, "%s %s", m.Piece, m)
	}
	g.Apply(m)
	return nil
}

// movePiece updates rights and the mailbox for one piece move. It leaves
// derived state stale.
func (g *Game) movePiece(m chess.Move) {
	updateCastlingRights(&g.Rights, m.Piece, m.From)
	g.Board.Set(m.From, chess.Empty)
	g.Board.Set(m.To, m.Piece)
}

// rookRelocation returns the rook move implied by the castle m. It reports
// false when the home corner does not hold a rook of the castling colour.
func rookRelocation(g *Game, m chess.Move) (chess.Move, bool) {
	rank := m.To.Rank
	from := chess.Square{File: KingsideRookFile, Rank: rank}
	to := chess.Square{File: m.To.File - 1, Rank: rank}
	if m.To.File < m.From.File {
		from = chess.Square{File: QueensideRookFile, Rank: rank}
		to = chess.Square{File: m.To.File + 1, Rank: rank}
	}
	rook := g.Board.Get(from)
	if rook != chess.MakePiece(m.Piece.Colour, chess.Rook) {
		return chess.NoMove, false
	}
	return chess.Move{From: from, To: to, Piece: rook}, true
}
