package game

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// dragSession is the piece currently held by the input layer. Only one
// piece can be held at a time.
type dragSession struct {
	pieceID int
	from    chess.Address
	moves   []chess.Candidate
}

// BeginDrag picks up the piece at from, flags its targets and returns them.
// A piece that is not on move is not picked up and yields no targets.
func (g *Game) BeginDrag(from chess.Address) ([]chess.Candidate, error) {
	if err := g.started("begin drag"); err != nil {
		return nil, err
	}
	if g.drag != nil {
		return nil, errors.Wrapf(errors.ErrDragInProgress, "holding %v", g.drag.from)
	}
	moves, err := g.rules.GenerateMoves(g.state, from)
	if err != nil || len(moves) == 0 {
		return nil, err
	}

	g.drag = &dragSession{
		pieceID: g.state.Board.Occupant(from).ID,
		from:    from,
		moves:   moves,
	}
	g.state.Board.Suggest(chess.Targets(moves))
	return moves, nil
}

// Dragging returns the origin of the held piece.
func (g *Game) Dragging() (chess.Address, bool) {
	if g.drag == nil {
		return chess.NoSquare, false
	}
	return g.drag.from, true
}

// Drop releases the held piece on to. The move is classified from the
// targets offered at pick-up. The drag ends whether or not the move is legal.
func (g *Game) Drop(to chess.Address) (*chess.GameState, error) {
	if err := g.started("drop"); err != nil {
		return nil, err
	}
	if g.drag == nil {
		return nil, errors.ErrNotDragging
	}
	d := g.drag
	g.CancelDrag()

	if err := chess.CheckBounds(to); err != nil {
		return nil, err
	}
	moveType := chess.Standard
	if c, ok := chess.Lookup(d.moves, to); ok {
		moveType = c.Type
	}
	return g.ApplyMove(chess.Move{From: d.from, To: to, Type: moveType})
}

// DropAt releases the held piece on the square containing the point (x, y).
// Squares without coordinates are never hit.
func (g *Game) DropAt(x, y, squareSize float64) (*chess.GameState, error) {
	if err := g.started("drop"); err != nil {
		return nil, err
	}
	to, ok := g.SquareAtPoint(x, y, squareSize)
	if !ok {
		if g.drag == nil {
			return nil, errors.ErrNotDragging
		}
		from := g.drag.from
		g.CancelDrag()
		return nil, errors.Wrapf(errors.ErrOutOfBounds, "point (%.1f, %.1f) dropped from %v", x, y, from)
	}
	return g.Drop(to)
}

// CancelDrag puts the held piece back and clears the suggestion flags.
func (g *Game) CancelDrag() {
	if g.drag == nil {
		return
	}
	g.drag = nil
	if g.state != nil {
		g.state.Board.ClearSuggestions()
	}
}

// SquareAtPoint finds the square whose stored geometry contains (x, y).
// A square spans (X, X+squareSize] horizontally and (Y, Y+squareSize] vertically.
func (g *Game) SquareAtPoint(x, y, squareSize float64) (chess.Address, bool) {
	if g.state == nil {
		return chess.NoSquare, false
	}
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			c := g.state.Board.Squares[row][col].Coordinates
			if c == nil {
				continue
			}
			if c.X < x && x <= c.X+squareSize && c.Y < y && y <= c.Y+squareSize {
				return chess.Address{Row: row, Col: col}, true
			}
		}
	}
	return chess.NoSquare, false
}
