package output

import (
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/mockfish-go/internal/perft"
	"github.com/lgbarn/mockfish-go/internal/storage"
)

// PrintDivide writes one "<move>: <nodes>" line per root move, sorted by
// move text, followed by the total.
func PrintDivide(w io.Writer, r *perft.Result) {
	for _, e := range r.Sorted() {
		fmt.Fprintf(w, "%s: %d\n", e.UCI, e.Nodes)
	}
	fmt.Fprintf(w, "\nNodes searched: %d\n", r.Nodes)
}

// PrintStats writes recorded match statistics.
func PrintStats(w io.Writer, s *storage.Stats) {
	fmt.Fprintf(w, "Games played: %d\n", s.GamesPlayed)
	fmt.Fprintf(w, "White wins: %d\n", s.WhiteWins)
	fmt.Fprintf(w, "Black wins: %d\n", s.BlackWins)
	fmt.Fprintf(w, "Longest game: %d plies\n", s.LongestGame)

	players := maps.Keys(s.WinsByPlayer)
	slices.Sort(players)
	for _, p := range players {
		fmt.Fprintf(w, "  %s: %d win(s)\n", p, s.WinsByPlayer[p])
	}
}

// PrintResults lists matches newest first, numbered by their order of
// play. first is the number of results[0].
func PrintResults(w io.Writer, results []storage.MatchResult, first int) {
	if len(results) == 0 {
		return
	}
	fmt.Fprintln(w, "Recent games:")
	for i := len(results) - 1; i >= 0; i-- {
		r := results[i]
		fmt.Fprintf(w, "  #%d %s vs %s: %s won in %d plies\n",
			first+i, r.White, r.Black, r.Winner(), r.Plies)
	}
}
