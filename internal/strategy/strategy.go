// Package strategy provides the computer move pickers used by the play loop.
//
// A Strategy only consumes a legal move list produced by the engine; it never
// generates or validates moves itself.
package strategy

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/mockfish-go/internal/chess"
	"github.com/lgbarn/mockfish-go/internal/engine"
	"github.com/lgbarn/mockfish-go/internal/errors"
)

// Strategy chooses a move for colour from its legal moves in g.
type Strategy interface {
	Name() string
	Pick(g *engine.Game, colour chess.Colour, moves chess.MoveList) (chess.Move, error)
}

// Factory builds a strategy drawing randomness from rng.
type Factory func(rng *rand.Rand) Strategy

var registry = map[string]Factory{
	RandomName:           func(rng *rand.Rand) Strategy { return NewRandom(rng) },
	MinOpponentMovesName: func(rng *rand.Rand) Strategy { return NewMinOpponentMoves(rng) },
}

// Names returns the registered strategy names in sorted order.
func Names() []string {
	names := maps.Keys(registry)
	slices.Sort(names)
	return names
}

// New builds the named strategy with its own generator seeded from seed.
func New(name string, seed uint64) (Strategy, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownStrategy, "%q", name)
	}
	return factory(rand.New(rand.NewSource(seed))), nil
}

// Random picks uniformly among the legal moves.
type Random struct {
	rng *rand.Rand
}

// RandomName is the registry name of Random.
const RandomName = "random"

// NewRandom creates a Random strategy.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

// Name implements Strategy.
func (r *Random) Name() string { return RandomName }

// Pick implements Strategy.
func (r *Random) Pick(_ *engine.Game, colour chess.Colour, moves chess.MoveList) (chess.Move, error) {
	if len(moves) == 0 {
		return chess.NoMove, errors.Wrapf(errors.ErrNoLegalMoves, "%v", colour)
	}
	return moves[r.rng.Intn(len(moves))], nil
}

// MinOpponentMoves picks the move that leaves the opponent the fewest
// legal replies, breaking ties uniformly at random.
type MinOpponentMoves struct {
	rng *rand.Rand
}

// MinOpponentMovesName is the registry name of MinOpponentMoves.
const MinOpponentMovesName = "min_oppt_moves"

// NewMinOpponentMoves creates a MinOpponentMoves strategy.
func NewMinOpponentMoves(rng *rand.Rand) *MinOpponentMoves {
	return &MinOpponentMoves{rng: rng}
}

// Name implements Strategy.
func (m *MinOpponentMoves) Name() string { return MinOpponentMovesName }

// Pick implements Strategy.
func (m *MinOpponentMoves) Pick(g *engine.Game, colour chess.Colour, moves chess.MoveList) (chess.Move, error) {
	if len(moves) == 0 {
		return chess.NoMove, errors.Wrapf(errors.ErrNoLegalMoves, "%v", colour)
	}

	best := -1
	var options []chess.Move
	for _, candidate := range moves {
		replies := OpponentReplies(g, colour, candidate)
		switch {
		case best < 0 || replies < best:
			best = replies
			options = append(options[:0], candidate)
		case replies == best:
			options = append(options, candidate)
		}
	}
	return options[m.rng.Intn(len(options))], nil
}

// OpponentReplies returns how many legal moves the opponent of colour has
// after candidate is played on a copy of g.
func OpponentReplies(g *engine.Game, colour chess.Colour, candidate chess.Move) int {
	after := g.Clone()
	after.Apply(candidate)
	return len(engine.LegalMoves(after, colour.Opposite()))
}
