package output

import (
	"bytes"
	"testing"

	"github.com/lgbarn/mockfish-go/internal/chess"
	"github.com/lgbarn/mockfish-go/internal/engine"
	"github.com/lgbarn/mockfish-go/internal/perft"
	"github.com/lgbarn/mockfish-go/internal/storage"
	"github.com/lgbarn/mockfish-go/internal/testutil"
)

func TestPrintDivide(t *testing.T) {
	g := engine.NewInitialGame()
	r, err := perft.Divide(g, chess.White, 1)
	testutil.AssertNoError(t, err)

	var buf bytes.Buffer
	PrintDivide(&buf, r)
	out := buf.String()

	testutil.AssertContains(t, out, "a2a3: 1\n")
	testutil.AssertContains(t, out, "g1f3: 1\n")
	testutil.AssertContains(t, out, "Nodes searched: 20\n")
}

func TestPrintStats(t *testing.T) {
	s := storage.NewStats()
	s.GamesPlayed = 3
	s.WhiteWins = 2
	s.BlackWins = 1
	s.LongestGame = 55
	s.WinsByPlayer["random"] = 1
	s.WinsByPlayer["human"] = 1

	var buf bytes.Buffer
	PrintStats(&buf, s)

	want := "Games played: 3\n" +
		"White wins: 2\n" +
		"Black wins: 1\n" +
		"Longest game: 55 plies\n" +
		"  human: 1 win(s)\n" +
		"  random: 1 win(s)\n"
	testutil.AssertEqual(t, buf.String(), want)
}

func TestPrintResults(t *testing.T) {
	results := []storage.MatchResult{
		{White: "human", Black: "random", Outcome: storage.BlackWins, Plies: 4},
		{White: "random", Black: "random", Outcome: storage.WhiteWins, Plies: 31},
	}

	var buf bytes.Buffer
	PrintResults(&buf, results, 7)

	want := "Recent games:\n" +
		"  #8 random vs random: random won in 31 plies\n" +
		"  #7 human vs random: random won in 4 plies\n"
	testutil.AssertEqual(t, buf.String(), want)

	buf.Reset()
	PrintResults(&buf, nil, 1)
	testutil.AssertEqual(t, buf.String(), "")
}
