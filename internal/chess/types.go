// Package chess provides core chess types and operations.
package chess

import "strings"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ParseColour converts "white" or "black" into a Colour.
// The second result is false for anything else.
func ParseColour(s string) (Colour, bool) {
	switch strings.ToLower(s) {
	case "white":
		return White, true
	case "black":
		return Black, true
	}
	return White, false
}

// Kind represents a chess piece type.
type Kind int

const (
	None Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// ParseKind converts a lowercase piece name ("pawn", "knight", ...) into a Kind.
// It returns None for unknown names.
func ParseKind(s string) Kind {
	switch strings.ToLower(s) {
	case "pawn":
		return Pawn
	case "knight":
		return Knight
	case "bishop":
		return Bishop
	case "rook":
		return Rook
	case "queen":
		return Queen
	case "king":
		return King
	}
	return None
}

// PromotionKinds lists the kinds a pawn may promote to, in generation order.
var PromotionKinds = [...]Kind{Knight, Bishop, Rook, Queen}

// Piece is a coloured piece. The zero value is the empty piece, whose
// colour carries no meaning.
type Piece struct {
	Colour Colour
	Kind   Kind
}

// Empty is the value stored on unoccupied squares.
var Empty = Piece{}

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind Kind) Piece {
	if kind == None {
		return Empty
	}
	return Piece{Colour: colour, Kind: kind}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// IsEmpty reports whether p is the empty piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == None
}

// Is reports whether p is a non-empty piece of the given colour.
func (p Piece) Is(colour Colour) bool {
	return p.Kind != None && p.Colour == colour
}

// Letter returns the FEN-style letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	if p.Kind == None {
		return '.'
	}
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight", or "Empty".
func (p Piece) String() string {
	if p.Kind == None {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Board dimensions.
const (
	BoardSize = 8

	RankBase = '1'
	ColBase  = 'a'
)

// HomeRank returns the back rank of the given colour (0 for White, 7 for Black).
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank pawns of the given colour start on.
func PawnRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the farthest rank for pawns of the given colour.
func PromotionRank(colour Colour) int {
	return HomeRank(colour.Opposite())
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}
