package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrInvalidCommand", ErrInvalidCommand, ErrInvalidCommand},
		{"ErrUnknownStrategy", ErrUnknownStrategy, ErrUnknownStrategy},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrNoLegalMoves", ErrNoLegalMoves, ErrNoLegalMoves},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrStorage", ErrStorage, ErrStorage},
		{"ErrNodeLimit", ErrNodeLimit, ErrNodeLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies no two sentinels match each other
func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{ErrIllegalMove, ErrInvalidSquare, ErrInvalidCommand, ErrUnknownStrategy, ErrInvalidConfig, ErrNoLegalMoves, ErrInvalidFEN, ErrStorage, ErrNodeLimit}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("applying e2e5: %w", ErrIllegalMove)

	if !Is(wrapped, ErrIllegalMove) {
		t.Errorf("Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

// TestCommandError_Error verifies the error message format
func TestCommandError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *CommandError
		contains []string
		want     string
	}{
		{
			name: "full context",
			err: &CommandError{
				Err:     ErrInvalidSquare,
				Command: "place",
				Got:     "z9",
				Usage:   "place <color> <piece> at <pos>",
			},
			contains: []string{"place", "z9", "invalid square"},
		},
		{
			name:     "command only",
			err:      &CommandError{Err: ErrInvalidCommand, Command: "moves"},
			contains: []string{"moves", "invalid command"},
		},
		{
			name: "empty",
			err:  &CommandError{},
			want: "command error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			if tt.want != "" && msg != tt.want {
				t.Errorf("CommandError.Error() = %q, want %q", msg, tt.want)
			}
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("CommandError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestCommandError_Unwrap verifies that CommandError properly implements Unwrap
func TestCommandError_Unwrap(t *testing.T) {
	cmdErr := &CommandError{Err: ErrUnknownStrategy, Command: "play", Got: "stockfish"}

	if unwrapped := errors.Unwrap(cmdErr); !errors.Is(unwrapped, ErrUnknownStrategy) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrUnknownStrategy)
	}
	if !errors.Is(cmdErr, ErrUnknownStrategy) {
		t.Error("errors.Is(cmdErr, ErrUnknownStrategy) = false, want true")
	}
}

// TestCommandError_As verifies that errors.As works with CommandError
func TestCommandError_As(t *testing.T) {
	cmdErr := &CommandError{Err: ErrInvalidSquare, Command: "move", Got: "i1"}
	wrapped := fmt.Errorf("shell: %w", cmdErr)

	var extracted *CommandError
	if !As(wrapped, &extracted) {
		t.Fatal("As(wrapped, &CommandError) = false, want true")
	}
	if extracted.Command != "move" {
		t.Errorf("extracted.Command = %q, want %q", extracted.Command, "move")
	}
	if extracted.Got != "i1" {
		t.Errorf("extracted.Got = %q, want %q", extracted.Got, "i1")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	t.Run("wrap nil returns nil", func(t *testing.T) {
		if got := Wrap(nil, "context"); got != nil {
			t.Errorf("Wrap(nil, ...) = %v, want nil", got)
		}
	})

	t.Run("wrap preserves error", func(t *testing.T) {
		wrapped := Wrap(ErrStorage, "recording result")
		if !errors.Is(wrapped, ErrStorage) {
			t.Error("Wrap() should preserve underlying error for errors.Is()")
		}
		if !strings.Contains(wrapped.Error(), "recording result") {
			t.Errorf("Wrap().Error() = %q, should contain context", wrapped.Error())
		}
	})
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	t.Run("wrapf nil returns nil", func(t *testing.T) {
		if got := Wrapf(nil, "context %d", 42); got != nil {
			t.Errorf("Wrapf(nil, ...) = %v, want nil", got)
		}
	})

	t.Run("wrapf formats message", func(t *testing.T) {
		wrapped := Wrapf(ErrIllegalMove, "move %s", "e2e5")
		if !errors.Is(wrapped, ErrIllegalMove) {
			t.Error("Wrapf() should preserve underlying error")
		}
		if want := "move e2e5: illegal move"; wrapped.Error() != want {
			t.Errorf("Wrapf().Error() = %q, want %q", wrapped.Error(), want)
		}
	})
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
