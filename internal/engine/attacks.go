package engine

import "github.com/lgbarn/mockfish-go/internal/chess"

// Offset tables, each entry a {file, rank} delta.
var (
	knightOffsets = [][2]int{{-1, -2}, {1, -2}, {-1, 2}, {1, 2}, {-2, -1}, {-2, 1}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs     = append(append([][2]int{}, diagonalDirs...), straightDirs...)
)

// slidingDirs returns the ray directions of a sliding kind, or nil.
func slidingDirs(kind chess.Kind) [][2]int {
	switch kind {
	case chess.Bishop:
		return diagonalDirs
	case chess.Rook:
		return straightDirs
	case chess.Queen:
		return queenDirs
	}
	return nil
}

// Attacks returns every square attacked by a piece of the given colour.
// Sliding rays stop after the first square set in occupied, whichever
// colour occupies it. Pawn attacks do not depend on occupancy.
func Attacks(board *chess.Board, occupied chess.SquareSet, colour chess.Colour) chess.SquareSet {
	var attacked chess.SquareSet
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			piece := board.Squares[file][rank]
			if !piece.Is(colour) {
				continue
			}
			threaten(&attacked, occupied, piece, file, rank)
		}
	}
	return attacked
}

// threaten projects the attack pattern of piece standing on file, rank.
func threaten(attacked *chess.SquareSet, occupied chess.SquareSet, piece chess.Piece, file, rank int) {
	switch piece.Kind {
	case chess.Pawn:
		dir := chess.ColourOffset(piece.Colour)
		attacked.Set(file-1, rank+dir)
		attacked.Set(file+1, rank+dir)

	case chess.Knight:
		for _, off := range knightOffsets {
			attacked.Set(file+off[0], rank+off[1])
		}

	case chess.King:
		for _, off := range kingOffsets {
			attacked.Set(file+off[0], rank+off[1])
		}

	case chess.Bishop, chess.Rook, chess.Queen:
		for _, dir := range slidingDirs(piece.Kind) {
			f, r := file+dir[0], rank+dir[1]
			for chess.OnBoard(f, r) {
				attacked.Set(f, r)
				if occupied.Test(f, r) {
					break // Blocked
				}
				f += dir[0]
				r += dir[1]
			}
		}
	}
}

// IsSquareAttacked reports whether sq is attacked by the given colour in g.
func IsSquareAttacked(g *Game, sq chess.Square, byColour chess.Colour) bool {
	return g.Attacks(byColour).Has(sq)
}
