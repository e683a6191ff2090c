package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ApplyMove checks move against the generated candidates and applies it.
// On error the state is left unchanged.
func (r Rules) ApplyMove(state *chess.GameState, move chess.Move) error {
	if err := r.Validate(state, move); err != nil {
		return err
	}
	applyClassified(state, move)
	return nil
}

// Validate returns nil if move is among the candidates generated for its
// origin with the same classification.
func (r Rules) Validate(state *chess.GameState, move chess.Move) error {
	if err := chess.CheckBounds(move.From); err != nil {
		return err
	}
	if err := chess.CheckBounds(move.To); err != nil {
		return err
	}

	reject := func(reason string) error {
		return &errors.MoveError{
			Err:    errors.ErrIllegalMove,
			From:   move.From.String(),
			To:     move.To.String(),
			Type:   move.Type.String(),
			Turn:   state.TurnColour().String(),
			Reason: reason,
		}
	}

	if state.Promotion != nil {
		return reject("promotion pending at " + state.Promotion.Address.String())
	}
	piece := state.Board.Occupant(move.From)
	if piece == nil {
		return reject("no piece on origin")
	}
	if piece.Colour != state.TurnColour() {
		return reject(piece.Colour.String() + " piece out of turn")
	}

	c, ok := chess.Lookup(r.PieceMoves(state, move.From), move.To)
	if !ok {
		return reject("target not reachable")
	}
	if c.Type != move.Type {
		return reject("target classified as " + c.Type.String())
	}
	return nil
}

// applyClassified mutates the state according to the move's classification.
// The move must already be validated.
func applyClassified(state *chess.GameState, move chess.Move) {
	board := state.Board
	piece := relocate(board, move.From, move.To)
	state.LastMove = &chess.LastMove{From: move.From, To: move.To}

	switch move.Type {
	case chess.EnPassant:
		// The captured pawn stands behind the landing square.
		captured := move.To.Offset(-state.Forward(piece.Colour), 0)
		board.Squares[captured.Row][captured.Col].Occupant = nil

	case chess.Promotion:
		state.Promotion = &chess.PendingPromotion{
			Address:     move.To,
			Coordinates: board.Squares[move.To.Row][move.To.Col].Coordinates,
			Colour:      piece.Colour,
		}
		return

	case chess.Castling:
		offset := move.To.Col - move.From.Col
		relocate(board, rookHome(move.From, offset), rookLanding(move.To, offset))
	}

	state.SwitchTurn()
}

// relocate moves the occupant of from onto to, discarding any piece there,
// and counts the step.
func relocate(board *chess.Board, from, to chess.Address) *chess.Piece {
	piece := board.Squares[from.Row][from.Col].Occupant
	board.Squares[to.Row][to.Col].Occupant = piece
	board.Squares[from.Row][from.Col].Occupant = nil
	piece.StepCount++
	return piece
}

// ResolvePromotion replaces the pending promoted pawn with the chosen piece
// type and passes the turn.
func (r Rules) ResolvePromotion(state *chess.GameState, at chess.Address, chosen chess.PieceType) error {
	if err := chess.CheckBounds(at); err != nil {
		return err
	}
	pending := state.Promotion
	if pending == nil || pending.Address != at {
		return errors.Wrapf(errors.ErrNoPendingPromotion, "square %s", at)
	}
	if !chess.CanPromoteTo(chosen) {
		return &errors.MoveError{
			Err:    errors.ErrIllegalMove,
			To:     at.String(),
			Type:   chess.Promotion.String(),
			Reason: "cannot promote to " + chosen.String(),
		}
	}

	state.Board.Squares[at.Row][at.Col].Occupant.Type = chosen
	state.Promotion = nil
	state.SwitchTurn()
	return nil
}
