package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/rand"

	"github.com/lgbarn/mockfish-go/internal/chess"
	"github.com/lgbarn/mockfish-go/internal/config"
	"github.com/lgbarn/mockfish-go/internal/engine"
	"github.com/lgbarn/mockfish-go/internal/errors"
	"github.com/lgbarn/mockfish-go/internal/hashing"
	"github.com/lgbarn/mockfish-go/internal/output"
	"github.com/lgbarn/mockfish-go/internal/perft"
	"github.com/lgbarn/mockfish-go/internal/storage"
)

// Parameter help shown under usage errors.
const (
	colourHelp = " - color: either 'white' or 'black'"
	pieceHelp  = " - piece: any of 'pawn', 'knight', 'bishop', 'rook', 'queen', or 'king'"
	posHelp    = " - pos: any coordinate of the form [A-Ha-h][1-8], e.g. 'A2', 'e6'"
	depthHelp  = " - depth: a positive whole number"
)

// perftTableSize bounds the node cache used by the perft command.
const perftTableSize = 1 << 20

// recentGames is how many recorded matches the stats command lists.
const recentGames = 10

// command describes one shell command for help and usage errors.
type command struct {
	name   string
	usage  string
	params []string
	about  string
}

// commands lists every shell command in help order.
var commands = []command{
	{"help", "help", nil, "Displays this message."},
	{"print", "print", nil, "Displays the board."},
	{"reset", "reset", nil, "Resets board to initial position."},
	{"clear", "clear", nil, "Removes all pieces from the board."},
	{"place", "place <color> <piece> at <pos>", []string{colourHelp, pieceHelp, posHelp}, "Adds a piece of the provided color to the board."},
	{"remove", "remove piece at <pos>", []string{posHelp}, "Removes a piece from the board."},
	{"move", "move <pos> to <pos>", []string{posHelp}, "Moves a piece to a new position."},
	{"moves", "moves <color>", []string{colourHelp}, "Lists the legal moves of a side."},
	{"targets", "targets <color>", []string{colourHelp}, "Shows the squares a side attacks."},
	{"pieces", "pieces <color>", []string{colourHelp}, "Shows the squares a side occupies."},
	{"check", "check <color>", []string{colourHelp}, "Tells whether a side is in check."},
	{"play", "play human|<ai>", strategyHelp(), "Plays a game from the current position, White first."},
	{"perft", "perft <color> <depth>", []string{colourHelp, depthHelp}, "Counts legal move paths of the given length."},
	{"stats", "stats", nil, "Shows recorded match results."},
	{"quit", "quit", nil, "Closes the program."},
}

var commandIndex = func() map[string]command {
	m := make(map[string]command, len(commands))
	for _, c := range commands {
		m[c.name] = c
	}
	return m
}()

// errQuit stops the command loop.
var errQuit = errors.Wrap(io.EOF, "quit")

// Shell is the interactive command loop around a single game.
type Shell struct {
	cfg   *config.Config
	game  *engine.Game
	in    *bufio.Scanner
	out   io.Writer
	log   io.Writer
	store *storage.Storage
	rng   *rand.Rand

	handlers map[string]func(args []string) error
}

// NewShell creates a shell reading commands from in and writing to the
// configured output and log streams. store may be nil.
func NewShell(cfg *config.Config, in io.Reader, store *storage.Storage) *Shell {
	g := engine.NewInitialGame()
	g.Rules = engine.Rules{StrictCastling: cfg.Rules.StrictCastling}
	s := &Shell{
		cfg:   cfg,
		game:  g,
		in:    bufio.NewScanner(in),
		out:   cfg.OutputFile,
		log:   cfg.LogFile,
		store: store,
		rng:   rand.New(rand.NewSource(cfg.Play.Seed)),
	}
	s.handlers = map[string]func([]string) error{
		"help":    s.cmdHelp,
		"print":   s.cmdPrint,
		"reset":   s.cmdReset,
		"clear":   s.cmdClear,
		"place":   s.cmdPlace,
		"remove":  s.cmdRemove,
		"move":    s.cmdMove,
		"moves":   s.cmdMoves,
		"targets": s.cmdTargets,
		"pieces":  s.cmdPieces,
		"check":   s.cmdCheck,
		"play":    s.cmdPlay,
		"perft":   s.cmdPerft,
		"stats":   s.cmdStats,
		"quit":    s.cmdQuit,
	}
	return s
}

// Game returns the shell's current game.
func (s *Shell) Game() *engine.Game {
	return s.game
}

// Banner prints the welcome message.
func (s *Shell) Banner() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "╔══════════════════════════════════════╗")
	fmt.Fprintln(s.out, "║                                      ║")
	fmt.Fprintf(s.out, "║   Mockfish - Version %-16s║\n", programVersion)
	fmt.Fprintln(s.out, "║                                      ║")
	fmt.Fprintln(s.out, "╚══════════════════════════════════════╝")
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Welcome to the Mockfish Chess engine! Type commands below, or 'help' to get started!")
}

// Run reads and executes commands until quit or end of input.
func (s *Shell) Run() {
	for {
		fmt.Fprint(s.out, "➤ ")
		fields, ok := s.readFields()
		if !ok {
			fmt.Fprintln(s.out)
			return
		}
		if len(fields) == 0 {
			continue
		}
		err := s.Execute(fields[0], fields[1:])
		if errors.Is(err, errQuit) {
			return
		}
		if err != nil {
			s.reportError(err)
		}
	}
}

// Execute runs one command.
func (s *Shell) Execute(name string, args []string) error {
	run, ok := s.handlers[name]
	if !ok {
		return &errors.CommandError{Err: errors.ErrInvalidCommand, Got: name}
	}
	return run(args)
}

// reportError prints err to the log stream, followed by the usage text of
// the command it belongs to.
func (s *Shell) reportError(err error) {
	var cmdErr *errors.CommandError
	if !errors.As(err, &cmdErr) {
		fmt.Fprintf(s.log, "Error: %v\n", err)
		return
	}
	if cmdErr.Command == "" {
		fmt.Fprintf(s.log, "Unknown command '%s'. Type 'help' for a list of commands.\n", cmdErr.Got)
		return
	}
	if s.cfg.Verbosity > 1 {
		fmt.Fprintf(s.log, "%v\n", err)
	}
	fmt.Fprintf(s.log, "Usage: %s\n", cmdErr.Usage)
	for _, p := range commandIndex[cmdErr.Command].params {
		fmt.Fprintln(s.log, p)
	}
}

// usageError builds the error reported for malformed arguments to name.
func usageError(name string, err error, got string) error {
	return &errors.CommandError{
		Err:     err,
		Command: name,
		Got:     got,
		Usage:   commandIndex[name].usage,
	}
}

// readFields reads the next input line and splits it into words. The
// second result is false at end of input.
func (s *Shell) readFields() ([]string, bool) {
	if !s.in.Scan() {
		return nil, false
	}
	return strings.Fields(s.in.Text()), true
}

// arg returns args[i], or "" when absent.
func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func (s *Shell) printBoard() {
	output.PrintBoard(s.out, &s.game.Board, s.cfg.Output)
}

func (s *Shell) cmdHelp(_ []string) error {
	fmt.Fprintln(s.out, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(s.out, "➤ %s\n", c.usage)
		fmt.Fprintf(s.out, "\t%s\n", c.about)
	}
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Parameters:")
	fmt.Fprintln(s.out, colourHelp)
	fmt.Fprintln(s.out, pieceHelp)
	fmt.Fprintln(s.out, posHelp)
	fmt.Fprintln(s.out)
	return nil
}

func (s *Shell) cmdPrint(_ []string) error {
	s.printBoard()
	return nil
}

func (s *Shell) cmdReset(_ []string) error {
	s.game.Reset()
	s.printBoard()
	fmt.Fprintln(s.out, "Reset pieces to initial positions.")
	return nil
}

func (s *Shell) cmdClear(_ []string) error {
	s.game.ClearBoard()
	s.printBoard()
	fmt.Fprintln(s.out, "Cleared board.")
	return nil
}

func (s *Shell) cmdPlace(args []string) error {
	colour, ok := chess.ParseColour(arg(args, 0))
	if !ok {
		return usageError("place", errors.ErrInvalidCommand, arg(args, 0))
	}
	kind := chess.ParseKind(arg(args, 1))
	if kind == chess.None {
		return usageError("place", errors.ErrInvalidCommand, arg(args, 1))
	}
	if arg(args, 2) != "at" {
		return usageError("place", errors.ErrInvalidCommand, arg(args, 2))
	}
	sq := chess.ParseSquare(arg(args, 3))
	if !sq.Valid() {
		return usageError("place", errors.ErrInvalidSquare, arg(args, 3))
	}
	s.game.Place(sq, chess.MakePiece(colour, kind))
	s.printBoard()
	return nil
}

func (s *Shell) cmdRemove(args []string) error {
	if arg(args, 0) != "piece" {
		return usageError("remove", errors.ErrInvalidCommand, arg(args, 0))
	}
	if arg(args, 1) != "at" {
		return usageError("remove", errors.ErrInvalidCommand, arg(args, 1))
	}
	sq := chess.ParseSquare(arg(args, 2))
	if !sq.Valid() {
		return usageError("remove", errors.ErrInvalidSquare, arg(args, 2))
	}
	s.game.Remove(sq)
	s.printBoard()
	return nil
}

// parseFromTo parses "<pos> to <pos>" for the named command.
func parseFromTo(name string, args []string) (chess.Square, chess.Square, error) {
	from := chess.ParseSquare(arg(args, 0))
	if !from.Valid() {
		return chess.NoSquare, chess.NoSquare, usageError(name, errors.ErrInvalidSquare, arg(args, 0))
	}
	if arg(args, 1) != "to" {
		return chess.NoSquare, chess.NoSquare, usageError(name, errors.ErrInvalidCommand, arg(args, 1))
	}
	to := chess.ParseSquare(arg(args, 2))
	if !to.Valid() {
		return chess.NoSquare, chess.NoSquare, usageError(name, errors.ErrInvalidSquare, arg(args, 2))
	}
	return from, to, nil
}

// cmdMove applies the piece on the source square to the destination
// without checking legality, so positions can be set up freely.
func (s *Shell) cmdMove(args []string) error {
	from, to, err := parseFromTo("move", args)
	if err != nil {
		return err
	}
	s.game.Apply(chess.NewMove(from, to, s.game.PieceAt(from)))
	s.printBoard()
	return nil
}

// colourArg parses the single colour argument of name.
func colourArg(name string, args []string) (chess.Colour, error) {
	colour, ok := chess.ParseColour(arg(args, 0))
	if !ok {
		return chess.White, usageError(name, errors.ErrInvalidCommand, arg(args, 0))
	}
	return colour, nil
}

func (s *Shell) cmdMoves(args []string) error {
	colour, err := colourArg("moves", args)
	if err != nil {
		return err
	}
	moves := engine.LegalMoves(s.game, colour)
	output.PrintSquareSet(s.out, &s.game.Board, moves.Destinations(), s.cfg.Output)
	output.PrintMoves(s.out, &s.game.Board, moves, s.cfg.Output)
	return nil
}

func (s *Shell) cmdTargets(args []string) error {
	colour, err := colourArg("targets", args)
	if err != nil {
		return err
	}
	output.PrintSquareSet(s.out, &s.game.Board, s.game.Attacks(colour), s.cfg.Output)
	return nil
}

func (s *Shell) cmdPieces(args []string) error {
	colour, err := colourArg("pieces", args)
	if err != nil {
		return err
	}
	output.PrintSquareSet(s.out, &s.game.Board, s.game.Pieces(colour), s.cfg.Output)
	return nil
}

func (s *Shell) cmdCheck(args []string) error {
	colour, err := colourArg("check", args)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, s.game.InCheck(colour))
	return nil
}

func (s *Shell) cmdPerft(args []string) error {
	colour, err := colourArg("perft", args)
	if err != nil {
		return err
	}
	depth, err := strconv.Atoi(arg(args, 1))
	if err != nil || depth < 1 {
		return usageError("perft", errors.ErrInvalidCommand, arg(args, 1))
	}
	if depth > s.cfg.Perft.MaxDepth {
		return usageError("perft", errors.Wrapf(errors.ErrInvalidConfig, "depth above -maxdepth %d", s.cfg.Perft.MaxDepth), arg(args, 1))
	}

	opts := []perft.Option{
		perft.WithWorkers(s.cfg.Perft.Workers),
		perft.WithNodeLimit(s.cfg.Perft.MaxNodes),
	}
	if s.cfg.Perft.UseHashTable {
		opts = append(opts, perft.WithTable(hashing.NewThreadSafePerftTable(perftTableSize)))
	}
	result, err := perft.Divide(s.game, colour, depth, opts...)
	if err != nil {
		return err
	}
	output.PrintDivide(s.out, result)
	return nil
}

func (s *Shell) cmdStats(_ []string) error {
	if s.store == nil {
		return errors.Wrap(errors.ErrStorage, "no results database (start with -db <dir>)")
	}
	stats, err := s.store.Stats()
	if err != nil {
		return err
	}
	output.PrintStats(s.out, stats)

	results, err := s.store.Results()
	if err != nil {
		return err
	}
	first := 1
	if len(results) > recentGames {
		first = len(results) - recentGames + 1
		results = results[len(results)-recentGames:]
	}
	output.PrintResults(s.out, results, first)
	return nil
}

func (s *Shell) cmdQuit(_ []string) error {
	return errQuit
}
