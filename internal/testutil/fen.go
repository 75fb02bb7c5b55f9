package testutil

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/mockfish-go/internal/chess"
)

// StartFEN is the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Placement is a piece layout read from a FEN string.
type Placement struct {
	Pieces      map[chess.Square]chess.Piece
	WhiteToMove bool
}

// PlacementFromFEN reads the piece placement and side to move of fen using
// dragontoothmg's parser. Castling and en-passant fields are ignored; tests
// set castling rights on the game explicitly.
func PlacementFromFEN(fen string) Placement {
	board := dragontoothmg.ParseFen(fen)
	p := Placement{
		Pieces:      make(map[chess.Square]chess.Piece),
		WhiteToMove: board.Wtomove,
	}
	addBitboards(p.Pieces, chess.White, board.White)
	addBitboards(p.Pieces, chess.Black, board.Black)
	return p
}

// MustPlacement is PlacementFromFEN for test setup; it fails the test when
// the FEN yields no kings.
func MustPlacement(t testing.TB, fen string) Placement {
	t.Helper()
	p := PlacementFromFEN(fen)
	kings := 0
	for _, piece := range p.Pieces {
		if piece.Kind == chess.King {
			kings++
		}
	}
	if kings == 0 {
		t.Fatalf("FEN %q has no kings", fen)
	}
	return p
}

// SideToMove returns the colour to move in the placement.
func (p Placement) SideToMove() chess.Colour {
	if p.WhiteToMove {
		return chess.White
	}
	return chess.Black
}

// addBitboards maps dragontoothmg's little-endian rank-file bitboards
// (a1 = bit 0) onto squares.
func addBitboards(dst map[chess.Square]chess.Piece, colour chess.Colour, bb dragontoothmg.Bitboards) {
	kinds := []struct {
		bits uint64
		kind chess.Kind
	}{
		{bb.Pawns, chess.Pawn},
		{bb.Knights, chess.Knight},
		{bb.Bishops, chess.Bishop},
		{bb.Rooks, chess.Rook},
		{bb.Queens, chess.Queen},
		{bb.Kings, chess.King},
	}
	for _, k := range kinds {
		for _, sq := range chess.SquareSet(k.bits).Squares() {
			dst[sq] = chess.MakePiece(colour, k.kind)
		}
	}
}

// OracleMoveCount returns the number of legal moves dragontoothmg finds for
// the side to move in fen. Positions compared against it must have no
// castling rights or en-passant square, which this engine models differently.
func OracleMoveCount(fen string) int {
	board := dragontoothmg.ParseFen(fen)
	return len(board.GenerateLegalMoves())
}

// OraclePerft counts leaf nodes of the legal move tree of fen to depth
// using dragontoothmg.
func OraclePerft(fen string, depth int) uint64 {
	board := dragontoothmg.ParseFen(fen)
	return oraclePerft(&board, depth)
}

func oraclePerft(board *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := board.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := board.Apply(m)
		nodes += oraclePerft(board, depth-1)
		unapply()
	}
	return nodes
}
