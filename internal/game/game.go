// Package game exposes the rules engine to collaborators: setup, move
// generation, move application, promotion and the read accessors. Every
// operation either succeeds completely or leaves the game untouched.
package game

import (
	"fmt"
	"math/rand"

	petname "github.com/dustinkirkland/golang-petname"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Game is one session of play.
type Game struct {
	// Name is a human readable label used in log lines.
	Name string

	cfg   *config.Config
	rules engine.Rules
	state *chess.GameState

	// Moves applied since setup, in order.
	history []chess.Move

	drag *dragSession
}

// New creates a game that has not been set up yet.
func New(cfg *config.Config) *Game {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	g := &Game{
		Name: petname.Generate(2, "-"),
		cfg:  cfg,
	}
	if cfg.Rules != nil {
		g.rules = engine.Rules{StrictEnPassant: cfg.Rules.StrictEnPassant}
	}
	return g
}

// logf writes a log line when the configured verbosity is at least level.
func (g *Game) logf(level int, format string, args ...interface{}) {
	if g.cfg.Verbosity < level || g.cfg.LogFile == nil {
		return
	}
	fmt.Fprintf(g.cfg.LogFile, "[%s] "+format+"\n", append([]interface{}{g.Name}, args...)...)
}

// Setup places the starting position with ours on the lower side of the
// board. It may be repeated until the first move has been applied.
func (g *Game) Setup(ours chess.Colour) error {
	if err := g.checkNotStarted(); err != nil {
		return err
	}
	state, err := chess.NewInitialGameState(ours)
	if err != nil {
		return err
	}
	g.reset(state)
	g.logf(1, "set up, playing %v, %v to move", ours, state.TurnColour())
	return nil
}

// SetupRandom sets up the game with a randomly chosen colour for our side.
func (g *Game) SetupRandom() (chess.Colour, error) {
	ours := chess.White
	if rand.Intn(2) == 0 {
		ours = chess.Black
	}
	return ours, g.Setup(ours)
}

// LoadFEN sets up the game from a FEN position with ours on the lower side.
func (g *Game) LoadFEN(fen string, ours chess.Colour) error {
	if err := g.checkNotStarted(); err != nil {
		return err
	}
	state, err := engine.NewStateFromFEN(fen, ours)
	if err != nil {
		return err
	}
	g.reset(state)
	g.logf(1, "loaded %q, playing %v", fen, ours)
	return nil
}

func (g *Game) checkNotStarted() error {
	if len(g.history) > 0 {
		return errors.Wrapf(errors.ErrGameInProgress, "%d moves played", len(g.history))
	}
	return nil
}

func (g *Game) reset(state *chess.GameState) {
	g.state = state
	g.history = nil
	g.drag = nil
}

// started returns ErrNoGame until the game has been set up.
func (g *Game) started(op string) error {
	if g.state == nil {
		return errors.Wrap(errors.ErrNoGame, op)
	}
	return nil
}

// GenerateMoves returns the ordered legal targets of the piece at from.
func (g *Game) GenerateMoves(from chess.Address) ([]chess.Candidate, error) {
	if err := g.started("generate moves"); err != nil {
		return nil, err
	}
	return g.rules.GenerateMoves(g.state, from)
}

// LegalMoves returns every legal move of the side to move.
func (g *Game) LegalMoves() ([]chess.Move, error) {
	if err := g.started("legal moves"); err != nil {
		return nil, err
	}
	return g.rules.AllMoves(g.state), nil
}

// ApplyMove validates and applies move, returning the updated state.
func (g *Game) ApplyMove(move chess.Move) (*chess.GameState, error) {
	if err := g.started("apply move"); err != nil {
		return nil, err
	}
	mover, number := g.state.TurnColour(), g.state.MoveNumber
	if err := g.rules.ApplyMove(g.state, move); err != nil {
		g.logf(2, "rejected %v: %v", move, err)
		return nil, err
	}
	g.history = append(g.history, move)

	g.logf(2, "%d. %v %s-%s (%v)", number, mover,
		g.state.SquareName(move.From), g.state.SquareName(move.To), move.Type)
	if g.state.Promotion != nil {
		g.logf(1, "%v pawn on %s awaits promotion", mover, g.state.SquareName(move.To))
	}
	return g.state, nil
}

// ResolvePromotion replaces the pending pawn with chosen and passes the turn.
func (g *Game) ResolvePromotion(at chess.Address, chosen chess.PieceType) (*chess.GameState, error) {
	if err := g.started("resolve promotion"); err != nil {
		return nil, err
	}
	if err := g.rules.ResolvePromotion(g.state, at, chosen); err != nil {
		g.logf(2, "rejected promotion on %v: %v", at, err)
		return nil, err
	}
	g.logf(1, "promoted on %s to %v", g.state.SquareName(at), chosen)
	return g.state, nil
}
