package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// emptyState returns a state with no pieces on the board.
func emptyState(t *testing.T, ours chess.Colour) *chess.GameState {
	t.Helper()
	state, err := chess.NewGameState(ours)
	if err != nil {
		t.Fatalf("NewGameState(%v) error = %v", ours, err)
	}
	return state
}

// initialState returns a state with the standard starting position.
func initialState(t *testing.T, ours chess.Colour) *chess.GameState {
	t.Helper()
	state, err := chess.NewInitialGameState(ours)
	if err != nil {
		t.Fatalf("NewInitialGameState(%v) error = %v", ours, err)
	}
	return state
}

// place puts a new piece on the board with the given step count.
func place(t *testing.T, state *chess.GameState, a chess.Address, pt chess.PieceType, colour chess.Colour, steps int) *chess.Piece {
	t.Helper()
	p := state.Board.NewPiece(pt, colour)
	p.StepCount = steps
	if err := state.Board.SetOccupant(a, p); err != nil {
		t.Fatalf("SetOccupant(%v) error = %v", a, err)
	}
	return p
}

func at(row, col int) chess.Address {
	return chess.Address{Row: row, Col: col}
}

func addressLess(a, b chess.Address) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

func candidateLess(a, b chess.Candidate) bool {
	return addressLess(a.Target, b.Target)
}

// mustApply applies a move and fails the test on error.
func mustApply(t *testing.T, r Rules, state *chess.GameState, from, to chess.Address, mt chess.MoveType) {
	t.Helper()
	if err := r.ApplyMove(state, chess.Move{From: from, To: to, Type: mt}); err != nil {
		t.Fatalf("ApplyMove(%v->%v %v) error = %v", from, to, mt, err)
	}
}
