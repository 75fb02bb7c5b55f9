package perft

import (
	"strings"
	"testing"

	"github.com/lgbarn/mockfish-go/internal/chess"
	"github.com/lgbarn/mockfish-go/internal/engine"
	"github.com/lgbarn/mockfish-go/internal/errors"
	"github.com/lgbarn/mockfish-go/internal/hashing"
	"github.com/lgbarn/mockfish-go/internal/testutil"
)

func TestCount_TableAgreesWithPlainPerft(t *testing.T) {
	tests := []struct {
		fen   string
		depth int
	}{
		{engine.InitialFEN, 3},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2},
		{"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1", 3},
	}

	for _, tt := range tests {
		t.Run(tt.fen, func(t *testing.T) {
			g, toMove, err := engine.NewGameFromFEN(tt.fen)
			testutil.AssertNoError(t, err)

			table := hashing.NewThreadSafePerftTable(0)
			want := engine.Perft(g, toMove, tt.depth)
			testutil.AssertEqual(t, Count(g, toMove, tt.depth, table), want)
			testutil.AssertEqual(t, Count(g, toMove, tt.depth, nil), want)
			testutil.AssertTrue(t, table.Len() > 0, "table should hold entries")
		})
	}
}

func TestCount_UsesTable(t *testing.T) {
	g := engine.NewInitialGame()
	table := hashing.NewThreadSafePerftTable(0)

	first := Count(g, chess.White, 3, table)
	hitsBefore := table.Hits()
	second := Count(g, chess.White, 3, table)

	testutil.AssertEqual(t, second, first)
	testutil.AssertTrue(t, table.Hits() > hitsBefore, "second count should hit the table")
}

func TestDivide_StartPosition(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"single worker", nil},
		{"four workers", []Option{WithWorkers(4)}},
		{"shared table", []Option{WithWorkers(4), WithTable(hashing.NewThreadSafePerftTable(0))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := engine.NewInitialGame()
			before := *g

			result, err := Divide(g, chess.White, 3, tt.opts...)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, result.Nodes, uint64(8902))
			testutil.AssertEqual(t, len(result.Entries), 20)
			testutil.AssertEqual(t, result.Entries[0].UCI, "a2a3")
			testutil.AssertTrue(t, *g == before, "Divide changed the game")

			var sum uint64
			for _, e := range result.Entries {
				sum += e.Nodes
			}
			testutil.AssertEqual(t, sum, result.Nodes)
		})
	}
}

func TestDivide_KnownSubtrees(t *testing.T) {
	g := engine.NewInitialGame()
	result, err := Divide(g, chess.White, 2, WithWorkers(2))
	testutil.AssertNoError(t, err)

	for _, e := range result.Entries {
		if e.Nodes != 20 {
			t.Errorf("%s: %d nodes; want 20", e.UCI, e.Nodes)
		}
	}

	sorted := result.Sorted()
	testutil.AssertEqual(t, sorted[0].UCI, "a2a3")
	testutil.AssertEqual(t, sorted[len(sorted)-1].UCI, "h2h4")
	testutil.AssertEqual(t, result.Entries[2].UCI, "b1a3", "Sorted must not reorder Entries")
}

func TestDivide_Promotions(t *testing.T) {
	g, toMove, err := engine.NewGameFromFEN("7k/4P3/8/8/8/8/8/K7 w - - 0 1")
	testutil.AssertNoError(t, err)

	result, err := Divide(g, toMove, 1)
	testutil.AssertNoError(t, err)

	var ucis []string
	for _, e := range result.Entries {
		ucis = append(ucis, e.UCI)
	}
	for _, want := range []string{"e7e8n", "e7e8b", "e7e8r", "e7e8q"} {
		testutil.AssertContains(t, strings.Join(ucis, " "), want)
	}
}

func TestDivide_InvalidDepth(t *testing.T) {
	_, err := Divide(engine.NewInitialGame(), chess.White, 0)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestDivide_NodeLimit(t *testing.T) {
	tests := []struct {
		name    string
		limit   uint64
		workers int
		wantErr bool
	}{
		{name: "no limit", limit: 0, workers: 2},
		{name: "limit equals total", limit: 8902, workers: 2},
		{name: "below total single worker", limit: 8901, workers: 1, wantErr: true},
		{name: "far below total", limit: 100, workers: 4, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Divide(engine.NewInitialGame(), chess.White, 3,
				WithWorkers(tt.workers), WithNodeLimit(tt.limit))
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrNodeLimit)
				testutil.AssertTrue(t, result == nil, "result alongside error")
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, result.Nodes, uint64(8902))
		})
	}
}
