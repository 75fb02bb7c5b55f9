// Package storage records finished matches in a badger database.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/mockfish-go/internal/errors"
)

// Storage keys
const (
	keyStats     = "stats"
	resultPrefix = "result/"
)

// Outcome is how a match ended.
type Outcome string

const (
	WhiteWins Outcome = "white"
	BlackWins Outcome = "black"
)

// MatchResult describes one finished match. White and Black name the
// players: "human" or a strategy name.
type MatchResult struct {
	White    string        `json:"white"`
	Black    string        `json:"black"`
	Outcome  Outcome       `json:"outcome"`
	Plies    int           `json:"plies"`
	Duration time.Duration `json:"duration"`
	Finished time.Time     `json:"finished"`
}

// Winner returns the name of the winning player.
func (r MatchResult) Winner() string {
	if r.Outcome == BlackWins {
		return r.Black
	}
	return r.White
}

// Stats aggregates every recorded match.
type Stats struct {
	GamesPlayed  int            `json:"games_played"`
	WhiteWins    int            `json:"white_wins"`
	BlackWins    int            `json:"black_wins"`
	WinsByPlayer map[string]int `json:"wins_by_player"`
	LongestGame  int            `json:"longest_game"`
}

// NewStats returns empty statistics.
func NewStats() *Stats {
	return &Stats{
		WinsByPlayer: make(map[string]int),
	}
}

func (s *Stats) add(r MatchResult) {
	s.GamesPlayed++
	if r.Outcome == BlackWins {
		s.BlackWins++
	} else {
		s.WhiteWins++
	}
	s.WinsByPlayer[r.Winner()]++
	if r.Plies > s.LongestGame {
		s.LongestGame = r.Plies
	}
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// Open opens (creating if needed) the results database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", errors.ErrStorage, dir, err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("%w: closing: %w", errors.ErrStorage, err)
	}
	return nil
}

// RecordResult stores r and folds it into the running statistics in a
// single transaction. A zero Finished time is set to now.
func (s *Storage) RecordResult(r MatchResult) error {
	if r.Finished.IsZero() {
		r.Finished = time.Now()
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		stats, err := loadStats(txn)
		if err != nil {
			return err
		}
		stats.add(r)

		data, err := json.Marshal(r)
		if err != nil {
			return err
		}
		if err := txn.Set(resultKey(stats.GamesPlayed), data); err != nil {
			return err
		}

		data, err = json.Marshal(stats)
		if err != nil {
			return err
		}
		return txn.Set([]byte(keyStats), data)
	})
	if err != nil {
		return fmt.Errorf("%w: recording result: %w", errors.ErrStorage, err)
	}
	return nil
}

// Stats loads the aggregated statistics, returning empty stats if nothing
// has been recorded.
func (s *Storage) Stats() (*Stats, error) {
	var stats *Stats
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		stats, err = loadStats(txn)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: loading stats: %w", errors.ErrStorage, err)
	}
	return stats, nil
}

// Results returns every recorded match, oldest first.
func (s *Storage) Results() ([]MatchResult, error) {
	var results []MatchResult
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(resultPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var r MatchResult
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &r)
			})
			if err != nil {
				return err
			}
			results = append(results, r)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: loading results: %w", errors.ErrStorage, err)
	}
	return results, nil
}

func loadStats(txn *badger.Txn) (*Stats, error) {
	stats := NewStats()
	item, err := txn.Get([]byte(keyStats))
	if err == badger.ErrKeyNotFound {
		return stats, nil
	}
	if err != nil {
		return nil, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, stats)
	})
	if stats.WinsByPlayer == nil {
		stats.WinsByPlayer = make(map[string]int)
	}
	return stats, err
}

// resultKey zero-pads n so keys iterate in insertion order.
func resultKey(n int) []byte {
	return []byte(fmt.Sprintf("%s%012d", resultPrefix, n))
}
