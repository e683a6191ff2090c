package game

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// State returns the live state, or nil before setup.
func (g *Game) State() *chess.GameState {
	return g.state
}

// Snapshot returns a deep copy of the state, or nil before setup.
func (g *Game) Snapshot() *chess.GameState {
	if g.state == nil {
		return nil
	}
	return g.state.Copy()
}

// CurrentTurn returns whose turn it is.
func (g *Game) CurrentTurn() (chess.Turn, error) {
	if err := g.started("current turn"); err != nil {
		return chess.Our, err
	}
	return g.state.CurrentTurn, nil
}

// Board returns the board, or nil before setup.
func (g *Game) Board() *chess.Board {
	if g.state == nil {
		return nil
	}
	return g.state.Board
}

// LastMove returns the most recent relocation, or nil.
func (g *Game) LastMove() *chess.LastMove {
	if g.state == nil {
		return nil
	}
	return g.state.LastMove
}

// PendingPromotion returns the promotion awaiting a choice, or nil.
func (g *Game) PendingPromotion() *chess.PendingPromotion {
	if g.state == nil {
		return nil
	}
	return g.state.Promotion
}

// History returns the moves applied since setup.
func (g *Game) History() []chess.Move {
	return append([]chess.Move(nil), g.history...)
}

// FEN returns the current position in FEN.
func (g *Game) FEN() (string, error) {
	if err := g.started("FEN"); err != nil {
		return "", err
	}
	return engine.StateToFEN(g.state), nil
}

// Suggesting reports the suggestion flag of the square at a.
func (g *Game) Suggesting(a chess.Address) (bool, error) {
	if err := g.started("suggesting"); err != nil {
		return false, err
	}
	sq, err := g.state.Board.SquareAt(a)
	if err != nil {
		return false, err
	}
	return sq.Suggesting, nil
}

// SuggestSquares flags the targets of cands for display.
func (g *Game) SuggestSquares(cands []chess.Candidate) error {
	if err := g.started("suggest squares"); err != nil {
		return err
	}
	targets := chess.Targets(cands)
	for _, a := range targets {
		if err := chess.CheckBounds(a); err != nil {
			return err
		}
	}
	g.state.Board.Suggest(targets)
	return nil
}

// ClearSuggestions resets every suggestion flag.
func (g *Game) ClearSuggestions() error {
	if err := g.started("clear suggestions"); err != nil {
		return err
	}
	g.state.Board.ClearSuggestions()
	return nil
}

// SetCoordinates stores presentation geometry for the square at a.
func (g *Game) SetCoordinates(a chess.Address, c *chess.Coordinates) error {
	if err := g.started("set coordinates"); err != nil {
		return err
	}
	return g.state.Board.SetCoordinates(a, c)
}
