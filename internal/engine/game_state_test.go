package engine

import (
	"testing"

	"github.com/lgbarn/mockfish-go/internal/chess"
	"github.com/lgbarn/mockfish-go/internal/testutil"
)

// sq parses an algebraic square name.
func sq(s string) chess.Square {
	return chess.ParseSquare(s)
}

// mustGame builds a game from fen or fails the test.
func mustGame(t testing.TB, fen string) (*Game, chess.Colour) {
	t.Helper()
	g, toMove, err := NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error: %v", fen, err)
	}
	return g, toMove
}

func TestNewGame_Empty(t *testing.T) {
	g := NewGame()

	if !g.Occupied().Empty() {
		t.Errorf("Occupied() = %#x; want empty", uint64(g.Occupied()))
	}
	if g.Rights != (CastlingRights{}) {
		t.Errorf("Rights = %v; want none", g.Rights)
	}
	if g.InCheck(chess.White) || g.InCheck(chess.Black) {
		t.Error("empty game reports check")
	}
	if got := LegalMoves(g, chess.White); len(got) != 0 {
		t.Errorf("LegalMoves on empty board = %v; want none", got)
	}
}

func TestNewInitialGame(t *testing.T) {
	g := NewInitialGame()

	testutil.AssertEqual(t, g.Rights, AllCastlingRights())
	testutil.AssertEqual(t, g.Occupied().Count(), 32)
	testutil.AssertEqual(t, g.Pieces(chess.White).Count(), 16)
	testutil.AssertEqual(t, g.Pieces(chess.Black).Count(), 16)
	testutil.AssertTrue(t, g.King(chess.White).Has(sq("e1")), "white king on e1")
	testutil.AssertTrue(t, g.King(chess.Black).Has(sq("e8")), "black king on e8")
	testutil.AssertFalse(t, g.InCheck(chess.White))
	testutil.AssertFalse(t, g.InCheck(chess.Black))

	// Both sides control their third rank entirely.
	for file := 0; file < chess.BoardSize; file++ {
		if !g.Attacks(chess.White).Test(file, 2) {
			t.Errorf("white does not attack %v", chess.Square{File: file, Rank: 2})
		}
		if !g.Attacks(chess.Black).Test(file, 5) {
			t.Errorf("black does not attack %v", chess.Square{File: file, Rank: 5})
		}
	}
}

func TestGame_PlaceRemoveRoundTrip(t *testing.T) {
	g := NewInitialGame()
	before := g.Board

	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			target := chess.Square{File: file, Rank: rank}
			clone := g.Clone()
			clone.Place(target, chess.B(chess.Knight))

			if got := clone.PieceAt(target); got != chess.B(chess.Knight) {
				t.Fatalf("PieceAt(%v) = %v after Place", target, got)
			}
			for f := 0; f < chess.BoardSize; f++ {
				for r := 0; r < chess.BoardSize; r++ {
					other := chess.Square{File: f, Rank: r}
					if other != target && clone.PieceAt(other) != before.Get(other) {
						t.Fatalf("Place(%v) disturbed %v", target, other)
					}
				}
			}
		}
	}

	g.Remove(sq("e2"))
	testutil.AssertEqual(t, g.PieceAt(sq("e2")), chess.Empty)
	testutil.AssertFalse(t, g.Occupied().Has(sq("e2")))
	testutil.AssertTrue(t, g.IsConsistent())
}

func TestGame_UpdateIdempotent(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"4r3/8/8/8/8/8/8/4K3 w - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			g, _ := mustGame(t, fen)
			g.Update()
			once := *g
			g.Update()
			testutil.AssertTrue(t, *g == once, "second Update changed derived state")
			testutil.AssertTrue(t, g.IsConsistent())
		})
	}
}

func TestGame_IsConsistent_DetectsStaleState(t *testing.T) {
	g := NewInitialGame()
	g.Board.Set(sq("e4"), chess.W(chess.Queen)) // bypasses Update

	testutil.AssertFalse(t, g.IsConsistent())
	g.Update()
	testutil.AssertTrue(t, g.IsConsistent())
}

func TestGame_CloneIsIndependent(t *testing.T) {
	g := NewInitialGame()
	c := g.Clone()
	c.Remove(sq("e1"))
	c.Rights = CastlingRights{}

	testutil.AssertEqual(t, g.PieceAt(sq("e1")), chess.W(chess.King))
	testutil.AssertEqual(t, g.Rights, AllCastlingRights())
	testutil.AssertTrue(t, g.King(chess.White).Has(sq("e1")))
}

func TestGame_ResetAndClear(t *testing.T) {
	g := NewInitialGame()
	g.ClearBoard()
	testutil.AssertTrue(t, g.Occupied().Empty())
	testutil.AssertEqual(t, g.Rights, CastlingRights{})

	g.Reset()
	testutil.AssertEqual(t, g.Occupied().Count(), 32)
	testutil.AssertEqual(t, g.Rights, AllCastlingRights())
}
