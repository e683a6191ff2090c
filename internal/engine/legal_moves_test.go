package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestGenerateMoves_EmptyBoardGeometry(t *testing.T) {
	tests := []struct {
		name  string
		piece chess.PieceType
		from  chess.Address
		steps int
		want  int
	}{
		{"knight in corner", chess.Knight, at(7, 0), 0, 2},
		{"knight in centre", chess.Knight, at(4, 4), 1, 8},
		{"rook in centre", chess.Rook, at(4, 4), 1, 14},
		{"rook in corner", chess.Rook, at(0, 0), 1, 14},
		{"bishop in centre", chess.Bishop, at(4, 4), 1, 13},
		{"bishop in corner", chess.Bishop, at(7, 7), 1, 7},
		{"queen in centre", chess.Queen, at(4, 4), 1, 27},
		{"king in centre", chess.King, at(4, 4), 1, 8},
		{"king in corner", chess.King, at(0, 0), 1, 3},
		{"unmoved king without rooks", chess.King, at(7, 4), 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := emptyState(t, chess.White)
			place(t, state, tt.from, tt.piece, chess.White, tt.steps)

			moves, err := Rules{}.GenerateMoves(state, tt.from)
			testutil.AssertNoError(t, err)
			if len(moves) != tt.want {
				t.Errorf("GenerateMoves(%v %v) returned %d targets, want %d: %v", tt.piece, tt.from, len(moves), tt.want, moves)
			}
			for _, m := range moves {
				if !m.Target.InBounds() {
					t.Errorf("target %v is off the board", m.Target)
				}
				if m.Type != chess.Standard {
					t.Errorf("target %v classified %v, want Standard", m.Target, m.Type)
				}
			}
		})
	}
}

func TestGenerateMoves_KnightCornerTargets(t *testing.T) {
	state := emptyState(t, chess.White)
	place(t, state, at(7, 0), chess.Knight, chess.White, 0)

	moves, err := Rules{}.GenerateMoves(state, at(7, 0))
	testutil.AssertNoError(t, err)
	testutil.AssertSameElements(t, chess.Targets(moves), []chess.Address{at(5, 1), at(6, 2)}, addressLess)
}

func TestGenerateMoves_SlidingCaptureAndBlock(t *testing.T) {
	state := emptyState(t, chess.White)
	place(t, state, at(7, 2), chess.Bishop, chess.White, 0)
	place(t, state, at(5, 4), chess.Pawn, chess.Black, 3)
	place(t, state, at(6, 1), chess.Pawn, chess.White, 0)

	moves, err := Rules{}.GenerateMoves(state, at(7, 2))
	testutil.AssertNoError(t, err)
	testutil.AssertSameElements(t, chess.Targets(moves), []chess.Address{at(6, 3), at(5, 4)}, addressLess)
}

func TestGenerateMoves_NoResult(t *testing.T) {
	state := initialState(t, chess.White)
	r := Rules{}

	tests := []struct {
		name string
		from chess.Address
	}{
		{"empty square", at(4, 4)},
		{"enemy piece out of turn", at(1, 4)},
		{"boxed in rook", at(7, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves, err := r.GenerateMoves(state, tt.from)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, moves, []chess.Candidate(nil))
		})
	}
}

func TestGenerateMoves_OutOfBounds(t *testing.T) {
	state := initialState(t, chess.White)
	for _, a := range []chess.Address{at(8, 0), at(0, -1), chess.NoSquare} {
		_, err := Rules{}.GenerateMoves(state, a)
		testutil.AssertErrorIs(t, err, errors.ErrOutOfBounds, "address %v", a)
	}
}

func TestGenerateMoves_Deterministic(t *testing.T) {
	state := initialState(t, chess.Black)
	r := Rules{}
	for _, from := range state.Board.Pieces(state.TurnColour()) {
		first, err := r.GenerateMoves(state, from)
		testutil.AssertNoError(t, err)
		second, err := r.GenerateMoves(state, from)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, second, first, "square %v", from)
	}
	testutil.AssertEqual(t, r.AllMoves(state), r.AllMoves(state))
}

func TestAllMoves_InitialPosition(t *testing.T) {
	for _, ours := range []chess.Colour{chess.White, chess.Black} {
		t.Run(ours.String(), func(t *testing.T) {
			state := initialState(t, ours)
			r := Rules{}

			if got := len(r.AllMoves(state)); got != 20 {
				t.Errorf("AllMoves() for %v returned %d moves, want 20", state.TurnColour(), got)
			}
			state.CurrentTurn = state.CurrentTurn.Next()
			if got := len(r.AllMoves(state)); got != 20 {
				t.Errorf("AllMoves() for %v returned %d moves, want 20", state.TurnColour(), got)
			}
			testutil.AssertTrue(t, r.HasLegalMoves(state))
		})
	}
}

func TestHasLegalMoves_Stalemated(t *testing.T) {
	state := emptyState(t, chess.White)
	place(t, state, at(4, 4), chess.Pawn, chess.White, 2)
	place(t, state, at(3, 4), chess.Pawn, chess.Black, 2)

	testutil.AssertFalse(t, Rules{}.HasLegalMoves(state))
	testutil.AssertEqual(t, Rules{}.AllMoves(state), []chess.Move(nil))
}

func TestPawnMoves_Forward(t *testing.T) {
	tests := []struct {
		name     string
		steps    int
		blockers []chess.Address
		want     []chess.Address
	}{
		{"unmoved", 0, nil, []chess.Address{at(5, 4), at(4, 4)}},
		{"moved", 1, nil, []chess.Address{at(5, 4)}},
		{"double step target occupied", 0, []chess.Address{at(4, 4)}, []chess.Address{at(5, 4)}},
		{"path occupied", 0, []chess.Address{at(5, 4)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := emptyState(t, chess.White)
			place(t, state, at(6, 4), chess.Pawn, chess.White, tt.steps)
			for _, b := range tt.blockers {
				place(t, state, b, chess.Knight, chess.Black, 1)
			}

			moves, err := Rules{}.GenerateMoves(state, at(6, 4))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, chess.Targets(moves), tt.want)
		})
	}
}

func TestPawnMoves_EnemyAdvancesDown(t *testing.T) {
	state := initialState(t, chess.White)
	state.CurrentTurn = chess.Enemy

	moves, err := Rules{}.GenerateMoves(state, at(1, 3))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, moves, []chess.Candidate{
		{Target: at(2, 3), Type: chess.Standard},
		{Target: at(3, 3), Type: chess.Standard},
	})
}

func TestPawnMoves_DiagonalCaptures(t *testing.T) {
	state := emptyState(t, chess.White)
	place(t, state, at(5, 4), chess.Pawn, chess.White, 1)
	place(t, state, at(4, 3), chess.Knight, chess.Black, 1)
	place(t, state, at(4, 5), chess.Knight, chess.White, 1)

	moves, err := Rules{}.GenerateMoves(state, at(5, 4))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, moves, []chess.Candidate{
		{Target: at(4, 4), Type: chess.Standard},
		{Target: at(4, 3), Type: chess.Standard},
	})
}

func TestPawnMoves_OpeningDoubleStepThenDiagonalCapture(t *testing.T) {
	state := initialState(t, chess.White)
	r := Rules{}

	moves, err := r.GenerateMoves(state, at(6, 4))
	testutil.AssertNoError(t, err)
	c, ok := chess.Lookup(moves, at(4, 4))
	testutil.AssertTrue(t, ok, "white double step offered")
	testutil.AssertEqual(t, c.Type, chess.Standard)
	mustApply(t, r, state, at(6, 4), at(4, 4), chess.Standard)

	moves, err = r.GenerateMoves(state, at(1, 3))
	testutil.AssertNoError(t, err)
	c, ok = chess.Lookup(moves, at(3, 3))
	testutil.AssertTrue(t, ok, "black double step offered")
	testutil.AssertEqual(t, c.Type, chess.Standard)
	mustApply(t, r, state, at(1, 3), at(3, 3), chess.Standard)

	// The pawn landed diagonally in front, so taking it is an ordinary capture.
	moves, err = r.GenerateMoves(state, at(4, 4))
	testutil.AssertNoError(t, err)
	c, ok = chess.Lookup(moves, at(3, 3))
	testutil.AssertTrue(t, ok, "capture offered")
	testutil.AssertEqual(t, c.Type, chess.Standard)
}

// enPassantPosition plays e4, a6, e5, d5 from the starting position.
func enPassantPosition(t *testing.T, r Rules) *chess.GameState {
	t.Helper()
	state := initialState(t, chess.White)
	mustApply(t, r, state, at(6, 4), at(4, 4), chess.Standard)
	mustApply(t, r, state, at(1, 0), at(2, 0), chess.Standard)
	mustApply(t, r, state, at(4, 4), at(3, 4), chess.Standard)
	mustApply(t, r, state, at(1, 3), at(3, 3), chess.Standard)
	return state
}

func TestEnPassant_CaptureRemovesPassedPawn(t *testing.T) {
	r := Rules{}
	state := enPassantPosition(t, r)

	moves, err := r.GenerateMoves(state, at(3, 4))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, moves, []chess.Candidate{
		{Target: at(2, 4), Type: chess.Standard},
		{Target: at(2, 3), Type: chess.EnPassant},
	})

	mustApply(t, r, state, at(3, 4), at(2, 3), chess.EnPassant)

	testutil.AssertTrue(t, state.Board.Occupant(at(3, 3)) == nil, "passed pawn removed")
	p := state.Board.Occupant(at(2, 3))
	testutil.AssertTrue(t, p != nil && p.Type == chess.Pawn && p.Colour == chess.White, "capturing pawn landed")
	testutil.AssertEqual(t, state.CurrentTurn, chess.Enemy)
	testutil.AssertEqual(t, len(state.Board.Pieces(chess.Black)), 15)
}

func TestEnPassant_Conditions(t *testing.T) {
	tests := []struct {
		name    string
		beside  chess.PieceType
		steps   int
		row     int
		wantEP  bool
		wantLen int
	}{
		{"pawn after one double step", chess.Pawn, 1, 3, true, 2},
		{"pawn that moved twice", chess.Pawn, 2, 3, false, 1},
		{"knight beside", chess.Knight, 1, 3, false, 1},
		{"off the centre rows", chess.Pawn, 1, 2, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := emptyState(t, chess.White)
			place(t, state, at(tt.row, 4), chess.Pawn, chess.White, 3)
			place(t, state, at(tt.row, 5), tt.beside, chess.Black, tt.steps)

			moves, err := Rules{}.GenerateMoves(state, at(tt.row, 4))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, len(moves), tt.wantLen, "targets %v", moves)
			c, ok := chess.Lookup(moves, at(tt.row-1, 5))
			testutil.AssertEqual(t, ok && c.Type == chess.EnPassant, tt.wantEP)
		})
	}
}

func TestEnPassant_StrictRequiresImmediateReply(t *testing.T) {
	build := func(r Rules) *chess.GameState {
		state := initialState(t, chess.White)
		mustApply(t, r, state, at(6, 4), at(4, 4), chess.Standard)
		mustApply(t, r, state, at(1, 3), at(3, 3), chess.Standard)
		mustApply(t, r, state, at(4, 4), at(3, 4), chess.Standard)
		mustApply(t, r, state, at(1, 0), at(2, 0), chess.Standard)
		return state
	}

	lenient := Rules{}
	moves, err := lenient.GenerateMoves(build(lenient), at(3, 4))
	testutil.AssertNoError(t, err)
	_, ok := chess.Lookup(moves, at(2, 3))
	testutil.AssertTrue(t, ok, "step count rule still offers the capture")

	strict := Rules{StrictEnPassant: true}
	moves, err = strict.GenerateMoves(build(strict), at(3, 4))
	testutil.AssertNoError(t, err)
	_, ok = chess.Lookup(moves, at(2, 3))
	testutil.AssertFalse(t, ok, "strict rule withdraws the capture a move later")

	state := enPassantPosition(t, strict)
	moves, err = strict.GenerateMoves(state, at(3, 4))
	testutil.AssertNoError(t, err)
	c, ok := chess.Lookup(moves, at(2, 3))
	testutil.AssertTrue(t, ok && c.Type == chess.EnPassant, "strict rule allows the immediate reply")
}
