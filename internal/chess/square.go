package chess

// Square is a board coordinate. File and Rank run 0-7 (a-h, 1-8).
type Square struct {
	File int
	Rank int
}

// NoSquare is the off-board sentinel. It compares unequal to every valid square.
var NoSquare = Square{File: -1, Rank: -1}

// OnBoard reports whether file and rank are both within 0-7.
func OnBoard(file, rank int) bool {
	return file >= 0 && file < BoardSize && rank >= 0 && rank < BoardSize
}

// SquareAt returns the square at file, rank, or NoSquare when out of range.
func SquareAt(file, rank int) Square {
	if !OnBoard(file, rank) {
		return NoSquare
	}
	return Square{File: file, Rank: rank}
}

// Valid reports whether sq lies on the board.
func (sq Square) Valid() bool {
	return OnBoard(sq.File, sq.Rank)
}

// Offset returns the square displaced by df files and dr ranks,
// or NoSquare if that falls off the board.
func (sq Square) Offset(df, dr int) Square {
	if !sq.Valid() {
		return NoSquare
	}
	return SquareAt(sq.File+df, sq.Rank+dr)
}

// Index returns rank*8+file, the bit position used by SquareSet.
func (sq Square) Index() int {
	return sq.Rank*BoardSize + sq.File
}

// String returns the algebraic name ("e4"), or "-" for NoSquare.
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{byte(ColBase + sq.File), byte(RankBase + sq.Rank)})
}

// ParseSquare parses a coordinate of the form [A-Ha-h][1-8].
// Anything else, including trailing characters, yields NoSquare.
func ParseSquare(s string) Square {
	if len(s) != 2 {
		return NoSquare
	}
	c := s[0]
	if c >= 'A' && c <= 'H' {
		c += 'a' - 'A'
	}
	if c < 'a' || c > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare
	}
	return Square{File: int(c - ColBase), Rank: int(s[1] - RankBase)}
}
