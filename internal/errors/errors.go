// Package errors provides sentinel errors and error types for the rules engine.
// Every rejection is signalled with one of the sentinels below, optionally
// wrapped with context, so callers can inspect it with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the engine's failure conditions.
var (
	// ErrOutOfBounds indicates an address outside the grid.
	ErrOutOfBounds = errors.New("address out of bounds")

	// ErrInvalidAddress indicates malformed address or square text.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrIllegalMove indicates a target that is not in the legal set for that square and turn.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoPendingPromotion indicates a promotion choice without a pending promotion.
	ErrNoPendingPromotion = errors.New("no pending promotion")

	// ErrInvalidColourAssignment indicates a setup colour that is neither White nor Black.
	ErrInvalidColourAssignment = errors.New("invalid colour assignment")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrNoGame indicates an operation on a game that has not been set up.
	ErrNoGame = errors.New("game not set up")

	// ErrGameInProgress indicates setup after the first move.
	ErrGameInProgress = errors.New("game in progress")

	// ErrDragInProgress indicates a drag started while another piece is held.
	ErrDragInProgress = errors.New("another piece is being dragged")

	// ErrNotDragging indicates a drop without a piece being dragged.
	ErrNotDragging = errors.New("no piece is being dragged")

	// ErrInvalidConfig indicates invalid configuration.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context. It implements the error
// interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	From   string // Source address, "row-col"
	To     string // Target address, "row-col"
	Type   string // Requested move type (if applicable)
	Turn   string // Side to move when the move was rejected (if known)
	Reason string // Extra detail (if any)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s->%s", e.From, e.To))
	}
	if e.Type != "" {
		parts = append(parts, e.Type)
	}
	if e.Turn != "" {
		parts = append(parts, fmt.Sprintf("%s to move", e.Turn))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Is reports whether err matches target, looking through wrappers.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
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
