package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// GameState is the authoritative state of a game.
type GameState struct {
	Board *Board

	// Colour assignment. Our pieces start on the last two rows.
	OurColour   Colour
	EnemyColour Colour

	// Whose turn it is.
	CurrentTurn Turn

	// Starts at 1, incremented after every completed Black move.
	MoveNumber int

	// The most recent relocation, nil before the first move.
	LastMove *LastMove

	// Castling destinations relative to the king's home square.
	Castling *CastlingOffsets

	// Set between a Promotion move and its resolution.
	Promotion *PendingPromotion
}

// NewGameState creates an empty-board state for the given colour assignment.
func NewGameState(ours Colour) (*GameState, error) {
	if !ours.Valid() {
		return nil, fmt.Errorf("%v: %w", ours, errors.ErrInvalidColourAssignment)
	}
	g := &GameState{
		Board:       NewBoard(),
		OurColour:   ours,
		EnemyColour: ours.Opposite(),
		CurrentTurn: Our,
		MoveNumber:  1,
		Castling:    castlingOffsets(ours),
	}
	if ours == Black {
		g.CurrentTurn = Enemy
	}
	return g, nil
}

// NewInitialGameState creates a state with the standard starting position.
func NewInitialGameState(ours Colour) (*GameState, error) {
	g, err := NewGameState(ours)
	if err != nil {
		return nil, err
	}
	g.Board.SetupInitialPosition(ours)
	return g, nil
}

// castlingOffsets derives the castling columns from which side is ours.
// The king stands right of centre for White and left of centre for Black.
func castlingOffsets(ours Colour) *CastlingOffsets {
	if ours == White {
		return &CastlingOffsets{Kingside: 2, Queenside: -2}
	}
	return &CastlingOffsets{Kingside: -2, Queenside: 2}
}

// TurnColour returns the colour whose turn it is.
func (g *GameState) TurnColour() Colour {
	if g.CurrentTurn == Our {
		return g.OurColour
	}
	return g.EnemyColour
}

// IsOurs reports whether colour is the colour of our pieces.
func (g *GameState) IsOurs(colour Colour) bool {
	return colour == g.OurColour
}

// Forward returns the row direction in which pawns of colour advance.
func (g *GameState) Forward(colour Colour) int {
	if g.IsOurs(colour) {
		return -1
	}
	return 1
}

// HomeRow returns the back rank row of colour.
func (g *GameState) HomeRow(colour Colour) int {
	if g.IsOurs(colour) {
		return BoardSize - 1
	}
	return 0
}

// PawnRow returns the starting row of colour's pawns.
func (g *GameState) PawnRow(colour Colour) int {
	return g.HomeRow(colour) + g.Forward(colour)
}

// FarthestRow returns the row on which pawns of colour promote.
func (g *GameState) FarthestRow(colour Colour) int {
	return g.HomeRow(colour.Opposite())
}

// SwitchTurn passes the move to the other side.
func (g *GameState) SwitchTurn() {
	if g.TurnColour() == Black {
		g.MoveNumber++
	}
	g.CurrentTurn = g.CurrentTurn.Next()
}

// SquareName returns the algebraic name ("e2") of a in this game's orientation.
func (g *GameState) SquareName(a Address) string {
	if !a.InBounds() {
		return "-"
	}
	file, rank := a.Col, BoardSize-1-a.Row
	if g.OurColour == Black {
		file, rank = BoardSize-1-a.Col, a.Row
	}
	return string([]byte{byte('a' + file), byte('1' + rank)})
}

// ParseSquareName converts an algebraic square name to an address.
func (g *GameState) ParseSquareName(name string) (Address, error) {
	if len(name) != 2 {
		return NoSquare, fmt.Errorf("%q: %w", name, errors.ErrInvalidAddress)
	}
	file, rank := int(name[0])-'a', int(name[1])-'1'
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare, fmt.Errorf("%q: %w", name, errors.ErrOutOfBounds)
	}
	return g.AddressOf(file, rank), nil
}

// AddressOf returns the address of the zero-based file and rank, as seen
// from White, in this game's orientation.
func (g *GameState) AddressOf(file, rank int) Address {
	if g.OurColour == Black {
		return Address{Row: rank, Col: BoardSize - 1 - file}
	}
	return Address{Row: BoardSize - 1 - rank, Col: file}
}

// Copy creates a deep copy of the state.
func (g *GameState) Copy() *GameState {
	newState := &GameState{}
	*newState = *g
	newState.Board = g.Board.Copy()
	if g.LastMove != nil {
		lm := *g.LastMove
		newState.LastMove = &lm
	}
	if g.Castling != nil {
		co := *g.Castling
		newState.Castling = &co
	}
	if g.Promotion != nil {
		pp := *g.Promotion
		if pp.Coordinates != nil {
			c := *pp.Coordinates
			pp.Coordinates = &c
		}
		newState.Promotion = &pp
	}
	return newState
}
