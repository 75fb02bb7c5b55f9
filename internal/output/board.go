package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/mockfish-go/internal/chess"
	"github.com/lgbarn/mockfish-go/internal/config"
)

var (
	whiteIcons = [...]string{" ", "♙", "♘", "♗", "♖", "♕", "♔"}
	blackIcons = [...]string{" ", "♟︎", "♞", "♝", "♜", "♛", "♚"}
)

// PieceIcon returns the glyph for p: a Unicode chess symbol, or its FEN
// letter in ASCII mode. Empty squares render as a space.
func PieceIcon(p chess.Piece, ascii bool) string {
	if p.IsEmpty() {
		return " "
	}
	if ascii {
		return string(p.Letter())
	}
	if p.Colour == chess.White {
		return whiteIcons[p.Kind]
	}
	return blackIcons[p.Kind]
}

// frame holds the box-drawing characters for one rendering mode.
type frame struct {
	top, bottom, side, split string
}

func frameFor(cfg *config.OutputConfig, double bool) frame {
	if cfg.ASCII {
		bar := strings.Repeat("-", chess.BoardSize)
		if double {
			return frame{" +" + bar + "+" + bar + "+", " +" + bar + "+" + bar + "+", "|", ":"}
		}
		return frame{" +" + bar + "+", " +" + bar + "+", "|", ""}
	}
	bar := strings.Repeat("═", chess.BoardSize)
	if double {
		return frame{" ╔" + bar + "╤" + bar + "╗", " ╚" + bar + "╧" + bar + "╝", "║", "┆"}
	}
	return frame{" ╔" + bar + "╗", " ╚" + bar + "╝", "║", ""}
}

// PrintBoard writes b with a file header and rank numbers. Rank 1 is the
// top row.
func PrintBoard(w io.Writer, b *chess.Board, cfg *config.OutputConfig) {
	f := frameFor(cfg, false)
	fmt.Fprintln(w, "  abcdefgh ")
	fmt.Fprintln(w, f.top)
	for rank := 0; rank < chess.BoardSize; rank++ {
		fmt.Fprintf(w, "%d%s%s%s\n", rank+1, f.side, rankIcons(b, rank, cfg.ASCII), f.side)
	}
	fmt.Fprintln(w, f.bottom)
}

// PrintSquareSet writes b beside a grid marking the members of set with X.
func PrintSquareSet(w io.Writer, b *chess.Board, set chess.SquareSet, cfg *config.OutputConfig) {
	f := frameFor(cfg, true)
	fmt.Fprintln(w, "  abcdefgh ")
	fmt.Fprintln(w, f.top)
	for rank := 0; rank < chess.BoardSize; rank++ {
		marks := make([]byte, chess.BoardSize)
		for file := range marks {
			marks[file] = ' '
			if set.Test(file, rank) {
				marks[file] = 'X'
			}
		}
		fmt.Fprintf(w, "%d%s%s%s%s%s\n", rank+1, f.side, rankIcons(b, rank, cfg.ASCII), f.split, marks, f.side)
	}
	fmt.Fprintln(w, f.bottom)
}

func rankIcons(b *chess.Board, rank int, ascii bool) string {
	var sb strings.Builder
	for file := 0; file < chess.BoardSize; file++ {
		sb.WriteString(PieceIcon(b.Squares[file][rank], ascii))
	}
	return sb.String()
}

// PrintMoves writes moves as "<icon> e2 to e4", cfg.MovesPerLine per line.
// The icon is the piece on the source square of b.
func PrintMoves(w io.Writer, b *chess.Board, moves chess.MoveList, cfg *config.OutputConfig) {
	cw := NewColumnWriter(w, cfg.MovesPerLine)
	for _, m := range moves {
		cw.Write(FormatMove(b, m, cfg.ASCII))
	}
	cw.NewLine()
}

// FormatMove renders a single move as "<icon> e2 to e4", adding "=Q" style
// suffixes for promotions.
func FormatMove(b *chess.Board, m chess.Move, ascii bool) string {
	s := fmt.Sprintf("%s %s to %s", PieceIcon(b.Get(m.From), ascii), m.From, m.To)
	if m.Promotes(b) {
		s += "=" + string(m.Piece.Kind.Letter())
	}
	return s
}
