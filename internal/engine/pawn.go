package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnMoves offers one step forward (two from the start), and the two
// forward diagonals at distance one.
func (g *generator) pawnMoves() {
	forward := g.state.Forward(g.piece.Colour)
	maxStep := 1
	if !g.piece.HasMoved() {
		maxStep = 2
	}

	for distance := 1; distance <= maxStep; distance++ {
		steps := []Step{{Direction: Forward, Target: g.from.Offset(forward*distance, 0)}}
		if distance == 1 {
			steps = append(steps,
				Step{Direction: ForwardLeft, Target: g.from.Offset(forward, forward)},
				Step{Direction: ForwardRight, Target: g.from.Offset(forward, -forward)},
			)
		}
		g.validateSteps(steps, g.pawnValidator(distance))
	}
}

// pawnValidator applies the forward/diagonal rules and classifies promotions
// and en passant captures.
func (g *generator) pawnValidator(distance int) Validator {
	board := g.state.Board
	forward := g.state.Forward(g.piece.Colour)
	lastRow := g.state.FarthestRow(g.piece.Colour)

	return func(step Step) (chess.MoveType, bool) {
		moveType := chess.Standard
		if step.Target.Row == lastRow {
			moveType = chess.Promotion
		}

		target := board.Occupant(step.Target)

		if step.Direction == Forward {
			if target != nil {
				return 0, false
			}
			if distance == 2 && board.Occupant(step.Target.Offset(-forward, 0)) != nil {
				return 0, false
			}
			return moveType, true
		}

		if target != nil {
			return moveType, true
		}

		// The square beside the pawn, on its current row.
		if g.isEnPassant(step.Target.Offset(-forward, 0)) {
			return chess.EnPassant, true
		}
		return 0, false
	}
}

// isEnPassant reports whether the pawn at beside can be taken en passant:
// an enemy pawn that has made exactly one move, a double step onto a centre row.
func (g *generator) isEnPassant(beside chess.Address) bool {
	p := g.state.Board.Occupant(beside)
	if p == nil || p.Type != chess.Pawn || p.Colour == g.piece.Colour || p.StepCount != 1 {
		return false
	}
	if !isCentreRow(beside.Row) {
		return false
	}
	if g.rules.StrictEnPassant {
		lm := g.state.LastMove
		if lm == nil || lm.To != beside || abs(lm.To.Row-lm.From.Row) != 2 {
			return false
		}
	}
	return true
}

// isCentreRow reports whether row is one of the two rows reachable only by a double step.
func isCentreRow(row int) bool {
	return row == chess.BoardSize/2-1 || row == chess.BoardSize/2
}
