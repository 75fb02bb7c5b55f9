// Package errors provides sentinel errors and error types for mockfish.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move absent from the current legal move list.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidSquare indicates a coordinate outside [A-Ha-h][1-8].
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidCommand indicates a malformed shell command.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrUnknownStrategy indicates a move picker name that is not registered.
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoLegalMoves indicates the side to move has no legal move.
	ErrNoLegalMoves = errors.New("no legal moves")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN")

	// ErrStorage indicates a failure reading or writing the results store.
	ErrStorage = errors.New("storage failure")

	// ErrNodeLimit indicates a perft count that ran past its node budget.
	ErrNodeLimit = errors.New("node limit exceeded")
)

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// CommandError wraps errors with shell command context: which command
// failed, what was received and the usage text to show. It implements the
// error interface and supports unwrapping via errors.Is() and errors.As().
type CommandError struct {
	Err     error  // The underlying error
	Command string // Command name (e.g. "place")
	Got     string // The offending argument text (if applicable)
	Usage   string // Usage text for the command (if known)
}

// Error returns a formatted error message including all available context.
func (e *CommandError) Error() string {
	var parts []string

	if e.Command != "" {
		parts = append(parts, e.Command)
	}

	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	if len(parts) == 0 {
		return "command error"
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the CommandError wrapper.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
