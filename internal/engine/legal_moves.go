package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Rules holds the rule switches used for generation and application.
type Rules struct {
	// StrictEnPassant additionally requires the captured pawn's double step
	// to have been the last move.
	StrictEnPassant bool
}

// GenerateMoves returns the legal targets of the piece at from, in
// generation order. The result is empty if the square is empty, the piece
// is not on move, or a promotion is pending.
func (r Rules) GenerateMoves(state *chess.GameState, from chess.Address) ([]chess.Candidate, error) {
	if err := chess.CheckBounds(from); err != nil {
		return nil, err
	}
	piece := state.Board.Occupant(from)
	if piece == nil || piece.Colour != state.TurnColour() || state.Promotion != nil {
		return nil, nil
	}
	return r.PieceMoves(state, from), nil
}

// PieceMoves returns the candidates of the piece at from regardless of
// whose turn it is. It returns nil for an empty or off-board square.
func (r Rules) PieceMoves(state *chess.GameState, from chess.Address) []chess.Candidate {
	piece := state.Board.Occupant(from)
	if piece == nil {
		return nil
	}
	g := &generator{
		rules: r,
		state: state,
		from:  from,
		piece: piece,
	}
	g.generate()
	return g.moves
}

// AllMoves returns every legal move of the side to move, origins in row-major order.
func (r Rules) AllMoves(state *chess.GameState) []chess.Move {
	if state.Promotion != nil {
		return nil
	}
	var moves []chess.Move
	for _, from := range state.Board.Pieces(state.TurnColour()) {
		for _, c := range r.PieceMoves(state, from) {
			moves = append(moves, chess.Move{From: from, To: c.Target, Type: c.Type})
		}
	}
	return moves
}

// HasLegalMoves returns true if the side to move has at least one candidate.
func (r Rules) HasLegalMoves(state *chess.GameState) bool {
	for _, from := range state.Board.Pieces(state.TurnColour()) {
		if len(r.PieceMoves(state, from)) > 0 {
			return true
		}
	}
	return false
}
