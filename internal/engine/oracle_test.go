package engine

import (
	"sort"
	"strings"
	"testing"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// The positions below have no checks, pins or attacked castling paths, so
// a full legal move generator must agree with ours square for square.

func ourMoveNames(state *chess.GameState, r Rules) []string {
	var names []string
	for _, m := range r.AllMoves(state) {
		names = append(names, state.SquareName(m.From)+state.SquareName(m.To))
	}
	sort.Strings(names)
	return names
}

func oracleMoveNames(game *nchess.Game) []string {
	seen := map[string]bool{}
	var names []string
	for _, m := range game.ValidMoves() {
		name := m.S1().String() + m.S2().String()
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func TestOracle_Positions(t *testing.T) {
	positions := []struct {
		name string
		fen  string
	}{
		{"initial", InitialFEN},
		{"initial black to move", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1"},
		{"en passant available", "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"},
		{"castling both sides", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1"},
		{"black castling both sides", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1"},
		{"castling rights lost", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w Kq - 0 1"},
		{"promotion", "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1"},
		{"black promotion with capture", "4k3/8/8/8/8/8/6p1/4K2R b - - 0 1"},
	}

	for _, pos := range positions {
		for _, ours := range []chess.Colour{chess.White, chess.Black} {
			t.Run(pos.name+"/"+ours.String(), func(t *testing.T) {
				opt, err := nchess.FEN(pos.fen)
				testutil.AssertNoError(t, err, "oracle FEN")
				game := nchess.NewGame(opt)

				state, err := NewStateFromFEN(pos.fen, ours)
				testutil.AssertNoError(t, err)

				testutil.AssertEqual(t, ourMoveNames(state, Rules{}), oracleMoveNames(game))
			})
		}
	}
}

func TestOracle_OpeningReplay(t *testing.T) {
	line := []string{"e4", "e5", "Nf3", "Nc6", "Bc4", "Nf6", "d3", "Be7", "O-O", "O-O", "c3", "d6"}

	for _, ours := range []chess.Colour{chess.White, chess.Black} {
		t.Run(ours.String(), func(t *testing.T) {
			game := nchess.NewGame()
			state := initialState(t, ours)
			r := Rules{}

			for ply, san := range line {
				testutil.AssertEqual(t, ourMoveNames(state, r), oracleMoveNames(game), "before ply %d (%s)", ply+1, san)

				if err := game.MoveStr(san); err != nil {
					t.Fatalf("oracle rejected %s: %v", san, err)
				}
				played := game.Moves()[len(game.Moves())-1]
				from, err := state.ParseSquareName(played.S1().String())
				testutil.AssertNoError(t, err)
				to, err := state.ParseSquareName(played.S2().String())
				testutil.AssertNoError(t, err)

				c, ok := chess.Lookup(r.PieceMoves(state, from), to)
				if !ok {
					t.Fatalf("ply %d (%s): %v->%v not generated", ply+1, san, from, to)
				}
				mustApply(t, r, state, from, to, c.Type)
			}

			testutil.AssertEqual(t, ourMoveNames(state, r), oracleMoveNames(game), "final position")
			// The halfmove clock is not tracked, so it is left out of the comparison.
			got, want := strings.Fields(StateToFEN(state)), strings.Fields(game.Position().String())
			testutil.AssertEqual(t, got[:4], want[:4])
			testutil.AssertEqual(t, got[5], want[5])
		})
	}
}
