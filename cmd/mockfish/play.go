package main

import (
	"fmt"
	"time"

	"github.com/lgbarn/mockfish-go/internal/chess"
	"github.com/lgbarn/mockfish-go/internal/engine"
	"github.com/lgbarn/mockfish-go/internal/storage"
	"github.com/lgbarn/mockfish-go/internal/strategy"
)

// humanName names human players in recorded results.
const humanName = "human"

// strategyHelp lists the registered computer players under the play usage.
func strategyHelp() []string {
	lines := []string{"Registered AI options:"}
	for _, name := range strategy.Names() {
		lines = append(lines, " - "+name)
	}
	return lines
}

// cmdPlay runs a game from the current position, White moving first, until
// the side to move has no legal move or input ends.
func (s *Shell) cmdPlay(args []string) error {
	opponent := arg(args, 0)
	names := [2]string{humanName, humanName}

	var ai strategy.Strategy
	humanColour := chess.White
	if opponent != humanName {
		var err error
		ai, err = strategy.New(opponent, s.rng.Uint64())
		if err != nil {
			return usageError("play", err, opponent)
		}
		if humanColour, err = s.readColour(); err != nil {
			return err
		}
		names[humanColour.Opposite()] = ai.Name()
	}

	start := time.Now()
	player := chess.White
	plies := 0
	for {
		s.printBoard()

		moves := engine.LegalMoves(s.game, player)
		if len(moves) == 0 {
			winner := player.Opposite()
			fmt.Fprintf(s.out, "Checkmate! %s player wins.\n", winner)
			return s.record(names, winner, plies, time.Since(start))
		}

		fmt.Fprintf(s.out, "%s player's turn.", player)
		if s.game.InCheck(player) {
			fmt.Fprint(s.out, " You are in check.")
		}
		fmt.Fprintln(s.out)

		var m chess.Move
		var err error
		if ai != nil && player != humanColour {
			m, err = ai.Pick(s.game, player, moves)
			if err == nil && s.cfg.Verbosity > 1 {
				fmt.Fprintf(s.log, "%s plays %s\n", ai.Name(), m.UCI(&s.game.Board))
			}
		} else {
			m, err = s.readHumanMove(player, moves)
		}
		if err != nil {
			return err
		}

		s.game.Apply(m)
		plies++
		player = player.Opposite()
	}
}

// readColour asks which side the human plays.
func (s *Shell) readColour() (chess.Colour, error) {
	for {
		fmt.Fprint(s.out, "White or black?: ")
		fields, ok := s.readFields()
		if !ok {
			return chess.White, errQuit
		}
		if colour, ok := chess.ParseColour(arg(fields, 0)); ok {
			return colour, nil
		}
		fmt.Fprintln(s.log, "Please enter 'white' or 'black'.")
	}
}

// readHumanMove prompts until the player enters a member of moves.
func (s *Shell) readHumanMove(player chess.Colour, moves chess.MoveList) (chess.Move, error) {
	prompt := "⚐"
	if player == chess.Black {
		prompt = "⚑"
	}
	for {
		fmt.Fprintf(s.out, "%s ", prompt)
		fields, ok := s.readFields()
		if !ok {
			return chess.NoMove, errQuit
		}
		from, to, err := parseFromTo("move", fields)
		if err != nil {
			fmt.Fprintln(s.log, "Usage: <pos> to <pos>")
			fmt.Fprintln(s.log, posHelp)
			continue
		}

		choice := chess.NewMove(from, to, s.game.PieceAt(from))
		if choice.IsPromotion() {
			kind, err := s.readPromotion()
			if err != nil {
				return chess.NoMove, err
			}
			choice.Piece = chess.MakePiece(choice.Piece.Colour, kind)
		}

		if moves.Contains(choice) {
			return choice, nil
		}
		fmt.Fprintf(s.log, "Illegal move. Cannot move piece from %s to %s.\n", from, to)
	}
}

// readPromotion asks for the kind a pawn promotes to.
func (s *Shell) readPromotion() (chess.Kind, error) {
	for {
		fmt.Fprint(s.out, "Which piece should your pawn promote to?: ")
		fields, ok := s.readFields()
		if !ok {
			return chess.None, errQuit
		}
		switch kind := chess.ParseKind(arg(fields, 0)); kind {
		case chess.None:
			fmt.Fprintln(s.log, "Please enter any of 'knight', 'bishop', 'rook', or 'queen'.")
		case chess.Pawn:
			fmt.Fprintln(s.log, "Cannot promote to pawn.")
		default:
			return kind, nil
		}
	}
}

// record stores a finished game when a results database is open.
func (s *Shell) record(names [2]string, winner chess.Colour, plies int, elapsed time.Duration) error {
	if s.store == nil {
		return nil
	}
	outcome := storage.WhiteWins
	if winner == chess.Black {
		outcome = storage.BlackWins
	}
	err := s.store.RecordResult(storage.MatchResult{
		White:    names[chess.White],
		Black:    names[chess.Black],
		Outcome:  outcome,
		Plies:    plies,
		Duration: elapsed,
	})
	if err == nil && s.cfg.Verbosity > 1 {
		fmt.Fprintf(s.log, "Recorded %s vs %s: %s wins\n", names[chess.White], names[chess.Black], winner)
	}
	return err
}
