package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castlingSteps returns the kingside and queenside pseudo-directions. Their
// targets are NoSquare once the king has moved.
func (g *generator) castlingSteps() []Step {
	offsets := g.state.Castling
	if offsets == nil {
		return nil
	}
	kingside, queenside := chess.NoSquare, chess.NoSquare
	if !g.piece.HasMoved() {
		kingside = g.from.Offset(0, offsets.Kingside)
		queenside = g.from.Offset(0, offsets.Queenside)
	}
	return []Step{
		{Direction: CastleKingside, Target: kingside},
		{Direction: CastleQueenside, Target: queenside},
	}
}

// castlingValidator accepts a castling target when neither the king nor the
// rook on that side has moved and every square between them is empty.
// Attacked squares are not considered.
func (g *generator) castlingValidator() Validator {
	board := g.state.Board
	return func(step Step) (chess.MoveType, bool) {
		if g.piece.HasMoved() {
			return 0, false
		}

		offset := step.Target.Col - g.from.Col
		rookFrom := rookHome(g.from, offset)
		rook := board.Occupant(rookFrom)
		if rook == nil || rook.Type != chess.Rook || rook.Colour != g.piece.Colour || rook.HasMoved() {
			return 0, false
		}

		lo, hi := min(g.from.Col, rookFrom.Col), max(g.from.Col, rookFrom.Col)
		for col := lo + 1; col < hi; col++ {
			if board.Occupant(chess.Address{Row: g.from.Row, Col: col}) != nil {
				return 0, false
			}
		}
		return chess.Castling, true
	}
}

// rookHome returns the home square of the rook castling on the side of offset.
func rookHome(king chess.Address, offset int) chess.Address {
	col := 0
	if offset > 0 {
		col = chess.BoardSize - 1
	}
	return chess.Address{Row: king.Row, Col: col}
}

// rookLanding returns the square next to the king's landing square, on the
// side the rook comes from.
func rookLanding(kingTo chess.Address, offset int) chess.Address {
	return kingTo.Offset(0, -sign(offset))
}
