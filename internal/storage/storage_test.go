package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/mockfish-go/internal/errors"
	"github.com/lgbarn/mockfish-go/internal/testutil"
)

func openTemp(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(t.TempDir())
	testutil.AssertNoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStats_Empty(t *testing.T) {
	s := openTemp(t)

	stats, err := s.Stats()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, stats, NewStats())

	results, err := s.Results()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(results), 0)
}

func TestRecordResult(t *testing.T) {
	s := openTemp(t)
	finished := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	matches := []MatchResult{
		{White: "random", Black: "min_oppt_moves", Outcome: BlackWins, Plies: 41, Finished: finished},
		{White: "human", Black: "random", Outcome: WhiteWins, Plies: 12, Finished: finished},
		{White: "random", Black: "random", Outcome: BlackWins, Plies: 88, Finished: finished},
		{White: "min_oppt_moves", Black: "human", Outcome: WhiteWins, Plies: 30, Finished: finished},
	}
	for _, m := range matches {
		testutil.AssertNoError(t, s.RecordResult(m))
	}

	stats, err := s.Stats()
	testutil.AssertNoError(t, err)
	want := &Stats{
		GamesPlayed: 4,
		WhiteWins:   2,
		BlackWins:   2,
		WinsByPlayer: map[string]int{
			"min_oppt_moves": 2,
			"human":          1,
			"random":         1,
		},
		LongestGame: 88,
	}
	testutil.AssertEqual(t, stats, want)

	results, err := s.Results()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, results, matches)
}

func TestRecordResult_SetsFinished(t *testing.T) {
	s := openTemp(t)
	testutil.AssertNoError(t, s.RecordResult(MatchResult{White: "a", Black: "b", Outcome: WhiteWins}))

	results, err := s.Results()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(results), 1)
	testutil.AssertFalse(t, results[0].Finished.IsZero(), "Finished should be set")
}

func TestStorage_Reopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, s.RecordResult(MatchResult{White: "random", Black: "random", Outcome: WhiteWins, Plies: 7}))
	testutil.AssertNoError(t, s.Close())

	s, err = Open(dir)
	testutil.AssertNoError(t, err)
	defer s.Close()

	stats, err := s.Stats()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, stats.GamesPlayed, 1)
	testutil.AssertEqual(t, stats.WhiteWins, 1)
}

func TestOpen_Error(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	testutil.AssertNoError(t, os.WriteFile(file, []byte("x"), 0o600))

	_, err := Open(file)
	testutil.AssertErrorIs(t, err, errors.ErrStorage)
}

func TestStorage_ClosedKeepsCause(t *testing.T) {
	s, err := Open(t.TempDir())
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, s.Close())

	tests := []struct {
		name string
		call func() error
	}{
		{"stats", func() error { _, err := s.Stats(); return err }},
		{"results", func() error { _, err := s.Results(); return err }},
		{"record", func() error { return s.RecordResult(MatchResult{White: "w", Black: "b", Outcome: WhiteWins}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			testutil.AssertErrorIs(t, err, errors.ErrStorage)
			testutil.AssertErrorIs(t, err, badger.ErrDBClosed)
		})
	}
}

func TestMatchResult_Winner(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{WhiteWins, "w"},
		{BlackWins, "b"},
	}
	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			r := MatchResult{White: "w", Black: "b", Outcome: tt.outcome}
			testutil.AssertEqual(t, r.Winner(), tt.want)
		})
	}
}

func TestStorage_CloseNil(t *testing.T) {
	var s Storage
	testutil.AssertNoError(t, s.Close())
}
