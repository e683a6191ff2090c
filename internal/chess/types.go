// Package chess provides the core board, piece and game state types.
package chess

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return fmt.Sprintf("Colour(%d)", int(c))
	}
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Valid reports whether c is one of the two playable colours.
func (c Colour) Valid() bool {
	return c == White || c == Black
}

// PieceType represents the kind of a chess piece.
type PieceType int

const (
	King PieceType = iota
	Queen
	Bishop
	Knight
	Rook
	Pawn
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"King", "Queen", "Bishop", "Knight", "Rook", "Pawn"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{'K', 'Q', 'B', 'N', 'R', 'P'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PromotionTypes lists the piece types a pawn may be replaced by.
var PromotionTypes = []PieceType{Queen, Bishop, Knight, Rook}

// CanPromoteTo reports whether a pawn may be promoted to p.
func CanPromoteTo(p PieceType) bool {
	for _, t := range PromotionTypes {
		if t == p {
			return true
		}
	}
	return false
}

// ParsePieceLetter converts a piece letter (either case) to a piece type.
func ParsePieceLetter(c byte) (PieceType, bool) {
	switch c {
	case 'K', 'k':
		return King, true
	case 'Q', 'q':
		return Queen, true
	case 'B', 'b':
		return Bishop, true
	case 'N', 'n':
		return Knight, true
	case 'R', 'r':
		return Rook, true
	case 'P', 'p':
		return Pawn, true
	default:
		return 0, false
	}
}

// MoveType classifies a legal candidate move.
type MoveType int

const (
	Standard MoveType = iota
	EnPassant
	Promotion
	Castling
)

// String returns the string representation of a move type.
func (m MoveType) String() string {
	names := []string{"Standard", "EnPassant", "Promotion", "Castling"}
	if m >= 0 && int(m) < len(names) {
		return names[m]
	}
	return "Unknown"
}

// Turn indicates which side is to move.
type Turn int

const (
	Our Turn = iota
	Enemy
)

// String returns the string representation of a turn.
func (t Turn) String() string {
	if t == Our {
		return "Our"
	}
	return "Enemy"
}

// Next returns the turn that follows t.
func (t Turn) Next() Turn {
	if t == Our {
		return Enemy
	}
	return Our
}

// SquareColour is the colour of a board square.
type SquareColour int

const (
	Light SquareColour = iota
	Dark
)

// String returns the string representation of a square colour.
func (s SquareColour) String() string {
	if s == Light {
		return "Light"
	}
	return "Dark"
}

// Constants for board dimensions.
const (
	NumberOfSquares = 64
	BoardSize       = 8 // sqrt(NumberOfSquares)
)

// Address is a zero-based (row, column) board location.
type Address struct {
	Row int
	Col int
}

// NoSquare marks a direction that has no candidate target.
var NoSquare = Address{Row: -1, Col: -1}

// String returns the canonical "row-col" form of the address.
func (a Address) String() string {
	return strconv.Itoa(a.Row) + "-" + strconv.Itoa(a.Col)
}

// InBounds reports whether both indices lie on the board.
func (a Address) InBounds() bool {
	return isIdxInBoard(a.Row) && isIdxInBoard(a.Col)
}

// IsNone reports whether a is the NoSquare sentinel.
func (a Address) IsNone() bool {
	return a == NoSquare
}

// Offset returns the address dRow rows and dCol columns away from a.
func (a Address) Offset(dRow, dCol int) Address {
	return Address{Row: a.Row + dRow, Col: a.Col + dCol}
}

// ParseAddress parses the canonical "row-col" form.
func ParseAddress(s string) (Address, error) {
	rowText, colText, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return NoSquare, fmt.Errorf("%q: %w", s, errors.ErrInvalidAddress)
	}
	row, err := strconv.Atoi(rowText)
	if err != nil {
		return NoSquare, fmt.Errorf("%q: %w", s, errors.ErrInvalidAddress)
	}
	col, err := strconv.Atoi(colText)
	if err != nil {
		return NoSquare, fmt.Errorf("%q: %w", s, errors.ErrInvalidAddress)
	}
	a := Address{Row: row, Col: col}
	if !a.InBounds() {
		return NoSquare, fmt.Errorf("%s: %w", a, errors.ErrOutOfBounds)
	}
	return a, nil
}

// CheckBounds returns ErrOutOfBounds if a is off the board.
func CheckBounds(a Address) error {
	if !a.InBounds() {
		return fmt.Errorf("%s: %w", a, errors.ErrOutOfBounds)
	}
	return nil
}

func isIdxInBoard(idx int) bool {
	return idx >= 0 && idx < BoardSize
}
