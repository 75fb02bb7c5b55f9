// Package hashing provides Zobrist position keys and the perft node cache
// keyed by them.
package hashing

import (
	"github.com/lgbarn/mockfish-go/internal/chess"
	"github.com/lgbarn/mockfish-go/internal/engine"
)

// Zobrist keys, generated once from a fixed seed so keys are stable across runs.
var (
	zobristPiece      [2][7][64]uint64 // [Colour][Kind][Square]; index 0 of Kind is unused
	zobristCastling   [16]uint64       // One per combination of the four rights
	zobristSideToMove uint64           // XOR when black to move
)

func init() {
	initZobrist()
}

// prng is a xorshift64* generator used only to fill the key tables.
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := &prng{state: 0x98F107A2BEEF1234}

	for c := chess.White; c <= chess.Black; c++ {
		for k := chess.Pawn; k <= chess.King; k++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][k][sq] = rng.next()
			}
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// castlingIndex packs the four rights into 0-15.
func castlingIndex(r engine.CastlingRights) int {
	i := 0
	if r.WhiteKingside {
		i |= 1
	}
	if r.WhiteQueenside {
		i |= 2
	}
	if r.BlackKingside {
		i |= 4
	}
	if r.BlackQueenside {
		i |= 8
	}
	return i
}

// Key returns the Zobrist key of g with toMove to play. Positions that differ
// in placement, castling rights or side to move get different keys with
// overwhelming probability; rule options are not part of the key.
func Key(g *engine.Game, toMove chess.Colour) uint64 {
	var key uint64
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			piece := g.Board.Squares[file][rank]
			if piece.IsEmpty() {
				continue
			}
			key ^= zobristPiece[piece.Colour][piece.Kind][rank*chess.BoardSize+file]
		}
	}
	key ^= zobristCastling[castlingIndex(g.Rights)]
	if toMove == chess.Black {
		key ^= zobristSideToMove
	}
	return key
}
